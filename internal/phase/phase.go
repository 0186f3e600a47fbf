// Package phase is the generic ordered-phase driver shared by every
// test in the battery: an ordered list of phases, strictly forward
// transitions, and per-phase countdown timers whose expiry and manual
// stop funnel into one idempotent stop handler.
//
// The sequencer is purely tick-driven: the caller feeds it the current
// time (from the TUI tick loop), so phase logic never touches real
// timers and stays deterministic under test.
package phase

import (
	"errors"
	"time"
)

// ErrNotStarted is returned when input arrives for a phase whose timer
// has not been started.
var ErrNotStarted = errors.New("phase not started")

// ID names one phase within a test's sequence.
type ID string

// Spec declares one phase: its name and countdown. A zero Countdown
// means the phase is untimed and only a manual stop ends it.
type Spec struct {
	ID        ID
	Countdown time.Duration
}

// StopFunc is invoked exactly once when the current phase ends, whether
// by countdown expiry or manual stop.
type StopFunc func(id ID, expired bool)

// Sequencer walks an ordered phase list.
type Sequencer struct {
	phases []Spec
	idx    int
	onStop StopFunc

	started  bool
	stopped  bool
	deadline time.Time
	// generation invalidates stale timer expiries: any tick armed for a
	// previous phase run carries an older generation and is ignored.
	generation int
}

// NewSequencer creates a Sequencer over phases. onStop may be nil.
func NewSequencer(phases []Spec, onStop StopFunc) *Sequencer {
	return &Sequencer{phases: append([]Spec(nil), phases...), onStop: onStop}
}

// Current returns the active phase spec.
func (s *Sequencer) Current() Spec {
	if s.idx >= len(s.phases) {
		return Spec{}
	}
	return s.phases[s.idx]
}

// Generation identifies the current phase run. Ticks armed under an
// older generation must be discarded by the caller.
func (s *Sequencer) Generation() int {
	return s.generation
}

// Started reports whether the current phase's clock is running.
func (s *Sequencer) Started() bool {
	return s.started && !s.stopped
}

// Start arms the current phase's countdown at now. Starting an already
// running phase is a no-op.
func (s *Sequencer) Start(now time.Time) {
	if s.started || s.idx >= len(s.phases) {
		return
	}
	s.started = true
	s.stopped = false
	s.generation++
	if cd := s.phases[s.idx].Countdown; cd > 0 {
		s.deadline = now.Add(cd)
	} else {
		s.deadline = time.Time{}
	}
}

// Tick advances the countdown. If the deadline has passed it invokes
// the stop handler (once) and reports true. Ticks for unstarted,
// stopped, or untimed phases do nothing.
func (s *Sequencer) Tick(now time.Time) bool {
	if !s.started || s.stopped || s.deadline.IsZero() {
		return false
	}
	if now.Before(s.deadline) {
		return false
	}
	s.fireStop(true)
	return true
}

// Stop ends the current phase manually. Safe to call when a racing
// expiry already fired: the handler runs at most once per phase run.
func (s *Sequencer) Stop() {
	if !s.started || s.stopped {
		return
	}
	s.fireStop(false)
}

func (s *Sequencer) fireStop(expired bool) {
	s.stopped = true
	// Cancel the countdown before handing control to the stop handler
	// so late input for this phase is rejected.
	s.generation++
	s.deadline = time.Time{}
	if s.onStop != nil {
		s.onStop(s.phases[s.idx].ID, expired)
	}
}

// Remaining reports time left on the countdown, zero for untimed or
// stopped phases.
func (s *Sequencer) Remaining(now time.Time) time.Duration {
	if !s.started || s.stopped || s.deadline.IsZero() {
		return 0
	}
	if d := s.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Next advances one phase forward. Transitions are strictly forward; at
// the end of the list Next reports false. An unstopped running phase is
// stopped first so no phase ends without its handler.
func (s *Sequencer) Next() bool {
	if s.idx >= len(s.phases) {
		return false
	}
	if s.started && !s.stopped {
		s.fireStop(false)
	}
	if s.idx == len(s.phases)-1 {
		return false
	}
	s.idx++
	s.started = false
	s.stopped = false
	return true
}

// Done reports whether the sequencer sits on the final phase with its
// clock stopped.
func (s *Sequencer) Done() bool {
	return s.idx == len(s.phases)-1 && s.stopped
}

// Restart resets to the first phase. The caller owns clearing any data
// collected during the abandoned run.
func (s *Sequencer) Restart() {
	if s.started && !s.stopped {
		// Cancel silently: a restart discards the run, so the stop
		// handler must not score it.
		s.stopped = true
		s.generation++
		s.deadline = time.Time{}
	}
	s.idx = 0
	s.started = false
	s.stopped = false
}
