// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/graphisual/ctxlog"
)

// Sentinel errors.
var (
	// ErrRunning indicates a playback session is already live.
	ErrRunning = errors.New("playback: visualization is running")
	// ErrNoSteps indicates Start was given nothing to play.
	ErrNoSteps = errors.New("playback: no steps to play")
	// ErrBadSpeed indicates a speed outside the accepted range or grid.
	ErrBadSpeed = errors.New("playback: invalid speed")
)

// Speed bounds, in milliseconds.
const (
	MinSpeed     Speed = 100
	MaxSpeed     Speed = 1000
	SpeedStep    Speed = 100
	DefaultSpeed Speed = 300
)

// Speed is the delay between two applied steps, in milliseconds.
type Speed int

// ParseSpeed validates ms and returns it as a Speed.
func ParseSpeed(ms int) (Speed, error) {
	s := Speed(ms)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d ms (want %d..%d in steps of %d)", ErrBadSpeed, ms, MinSpeed, MaxSpeed, SpeedStep)
	}

	return s, nil
}

// Valid reports whether s lies in [MinSpeed, MaxSpeed] on the SpeedStep grid.
func (s Speed) Valid() bool {
	return s >= MinSpeed && s <= MaxSpeed && s%SpeedStep == 0
}

// Duration converts s to a time.Duration.
func (s Speed) Duration() time.Duration { return time.Duration(s) * time.Millisecond }

func (s Speed) String() string { return fmt.Sprintf("%dms", int(s)) }

// Status is delivered to OnStatus listeners when a session starts or ends.
type Status struct {
	Running   bool
	Session   string // session ID
	Applied   int    // steps applied so far (final count when Running is false)
	Total     int    // steps in the session
	Cancelled bool   // set on the idle transition when the session was cancelled
}

// Clock abstracts the wait between two steps.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type wallClock struct{}

func (wallClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock. Nil is ignored.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the scheduler logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

func defaultLogger() *slog.Logger { return ctxlog.Discard() }
