// SPDX-License-Identifier: MIT

package playback

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphisual/engine"
	"github.com/katalvlaran/graphisual/surface"
)

// Session is a snapshot of the live playback session.
type Session struct {
	ID      string
	Index   int // next step to apply
	Total   int
	Speed   Speed
	Running bool
}

// Handle tracks one started session.
type Handle struct {
	id        string
	done      chan struct{}
	stop      chan struct{}
	applied   atomic.Int64
	cancelled atomic.Bool
}

// ID returns the session ID.
func (h *Handle) ID() string { return h.id }

// Done is closed once the session goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Applied returns how many steps reached the surface.
func (h *Handle) Applied() int { return int(h.applied.Load()) }

// Cancelled reports whether the session ended through Cancel.
func (h *Handle) Cancelled() bool { return h.cancelled.Load() }

// session is the scheduler-owned state behind a Handle.
type session struct {
	handle *Handle
	steps  []engine.Step
	speed  Speed
	index  int

	// announced is set once the running status went out; an idle status
	// produced before that is held in pendingIdle and delivered after it.
	announced   bool
	pendingIdle *Status
}

type statusEntry struct {
	id uint64
	fn func(Status)
}

// Scheduler replays step sequences onto a surface, one session at a time.
type Scheduler struct {
	mu    sync.Mutex
	surf  surface.Surface
	clock Clock
	log   *slog.Logger
	cur   *session

	muListeners  sync.Mutex
	listeners    []statusEntry
	nextListener uint64
}

// New returns an idle Scheduler writing to surf.
func New(surf surface.Surface, opts ...Option) *Scheduler {
	s := &Scheduler{surf: surf, clock: wallClock{}, log: defaultLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins a session over steps. Step 0 is applied right away, every
// following step one speed interval after the previous one.
//
// Errors: ErrBadSpeed, ErrNoSteps, ErrRunning.
func (s *Scheduler) Start(steps []engine.Step, speed Speed) (*Handle, error) {
	if _, err := ParseSpeed(int(speed)); err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	s.mu.Lock()
	if s.cur != nil {
		s.mu.Unlock()

		return nil, ErrRunning
	}
	h := &Handle{id: uuid.NewString(), done: make(chan struct{}), stop: make(chan struct{})}
	sess := &session{handle: h, steps: append([]engine.Step(nil), steps...), speed: speed}
	s.cur = sess
	s.mu.Unlock()

	s.log.Debug("playback started", "session", h.id, "steps", len(steps), "speed", speed.String())
	s.notify(Status{Running: true, Session: h.id, Total: len(steps)})

	s.mu.Lock()
	sess.announced = true
	pending := sess.pendingIdle
	s.mu.Unlock()
	if pending != nil {
		s.notify(*pending)
	}

	go s.play(sess)

	return h, nil
}

// play drives one session until it finishes or is cancelled.
func (s *Scheduler) play(sess *session) {
	h := sess.handle
	defer close(h.done)

	for i := range sess.steps {
		if i > 0 {
			select {
			case <-s.clock.After(sess.speed.Duration()):
			case <-h.stop:
				return
			}
		}
		if !s.apply(sess, i) {
			return
		}
	}
	s.finish(sess, false)
}

// apply issues step i to the surface if sess is still current.
// It returns false once the session is over.
func (s *Scheduler) apply(sess *session, i int) bool {
	st := sess.steps[i]
	if st.Kind == engine.Done {
		s.finish(sess, false)

		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur != sess {
		return false
	}
	if st.Kind.IsPath() {
		s.surf.SetElementState(st.ID, surface.StatePath)
	} else {
		s.surf.SetElementState(st.ID, surface.StateVisited)
	}
	sess.index = i + 1
	sess.handle.applied.Store(int64(sess.index))

	return true
}

// finish ends sess exactly once, for both completion and cancellation.
func (s *Scheduler) finish(sess *session, cancelled bool) bool {
	s.mu.Lock()
	if s.cur != sess {
		s.mu.Unlock()

		return false
	}
	s.cur = nil
	h := sess.handle
	h.cancelled.Store(cancelled)
	close(h.stop)
	st := Status{Session: h.id, Applied: sess.index, Total: len(sess.steps), Cancelled: cancelled}
	if !sess.announced {
		sess.pendingIdle = &st
		s.mu.Unlock()
		s.log.Debug("playback finished before start was announced", "session", h.id, "cancelled", cancelled)

		return true
	}
	s.mu.Unlock()

	s.log.Debug("playback finished", "session", h.id, "applied", st.Applied, "total", st.Total, "cancelled", cancelled)
	s.notify(st)

	return true
}

// Cancel stops the live session, if any. It reports whether a session was
// stopped. After Cancel returns no further step of that session reaches the
// surface.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	sess := s.cur
	s.mu.Unlock()
	if sess == nil {
		return false
	}

	return s.finish(sess, true)
}

// Running reports whether a session is live.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cur != nil
}

// Current returns a snapshot of the live session.
func (s *Scheduler) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return Session{}, false
	}

	return Session{
		ID:      s.cur.handle.id,
		Index:   s.cur.index,
		Total:   len(s.cur.steps),
		Speed:   s.cur.speed,
		Running: true,
	}, true
}

// Guard returns ErrRunning while a session is live. Install it with
// core.WithMutationGuard or Graph.SetMutationGuard.
func (s *Scheduler) Guard() error {
	if s.Running() {
		return ErrRunning
	}

	return nil
}

// OnStatus registers fn for running/idle transitions and returns a function
// that removes it.
func (s *Scheduler) OnStatus(fn func(Status)) func() {
	if fn == nil {
		return func() {}
	}
	s.muListeners.Lock()
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, statusEntry{id: id, fn: fn})
	s.muListeners.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.muListeners.Lock()
			defer s.muListeners.Unlock()
			for i, e := range s.listeners {
				if e.id == id {
					s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)

					return
				}
			}
		})
	}
}

func (s *Scheduler) notify(st Status) {
	s.muListeners.Lock()
	snapshot := make([]statusEntry, len(s.listeners))
	copy(snapshot, s.listeners)
	s.muListeners.Unlock()

	for _, e := range snapshot {
		e.fn(st)
	}
}
