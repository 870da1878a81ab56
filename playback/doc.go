// SPDX-License-Identifier: MIT

// Package playback replays an engine.Trace onto a surface.Surface at a
// user-selected speed, one step per interval, and can be cancelled at any time.
//
// What:
//
//   - Scheduler.Start applies step 0 immediately and every further step after
//     one Speed interval. Visit steps mark the element visited, path steps
//     mark it as part of the final path, Done finishes the session.
//   - Scheduler.Cancel invalidates the current session. The pending step never
//     applies, the scheduler returns to idle and status listeners are told.
//     Natural completion goes through the same finish path.
//   - Scheduler.Guard returns ErrRunning while a session is live; it is meant
//     to be installed as the core.Graph mutation guard.
//
// Concurrency:
//
//	Each session owns one goroutine. Step application and cancellation are
//	serialized by the scheduler mutex and a session check, so once Cancel
//	returns no further surface command from that session is issued.
//	Status listeners are invoked outside the mutex.
//
// Time:
//
//	The scheduler waits through a Clock. Production uses the wall clock;
//	tests inject a manual clock (WithClock) to step deterministically.
//
// Errors:
//
//	ErrRunning  – Start while a session is live (also the mutation guard error).
//	ErrNoSteps  – Start with an empty step slice.
//	ErrBadSpeed – speed outside 100..1000 ms or not a multiple of 100.
package playback
