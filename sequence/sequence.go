package sequence

import (
	"errors"
	"time"

	"github.com/matt-g-everett/ledseq/motion"
)

// ErrAlreadyPlaying is returned when playback is requested while a sequence
// is still running.
var ErrAlreadyPlaying = errors.New("sequence is now playing")

// State of a compiled sequence.
type State int

const (
	Idle State = iota
	Playing
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

type step struct {
	handles  []motion.Handle
	callback func()
	duration time.Duration
}

func (st *step) finished() bool {
	for _, h := range st.handles {
		if !motion.Done(h) {
			return false
		}
	}
	return true
}

// Sequence is a compiled, replayable plan of steps. Each step starts only
// once every motion of the previous step has finished.
type Sequence struct {
	steps    []step
	duration time.Duration
	state    State
	current  int
	entered  bool
}

// Duration is the sum over steps of each step's longest motion.
func (s *Sequence) Duration() time.Duration { return s.duration }

// Len is the number of steps.
func (s *Sequence) Len() int { return len(s.steps) }

func (s *Sequence) State() State { return s.state }

func (s *Sequence) IsActive() bool { return s.state == Playing }

// Play starts the sequence from its first step. A finished or cancelled
// sequence replays from the beginning.
func (s *Sequence) Play() error {
	if s.state == Playing {
		return ErrAlreadyPlaying
	}
	s.state = Playing
	s.current = 0
	s.entered = false
	s.run()
	return nil
}

// Advance checks whether the current step has finished and, if so, moves on.
// Callbacks and the start of the next step happen within the same call.
func (s *Sequence) Advance() {
	if s.state != Playing {
		return
	}
	s.run()
}

func (s *Sequence) run() {
	for s.current < len(s.steps) {
		if s.state != Playing {
			return
		}
		st := &s.steps[s.current]
		if !s.entered {
			s.entered = true
			if st.callback != nil {
				st.callback()
				if s.state != Playing {
					return
				}
			}
			for _, h := range st.handles {
				h.Start()
			}
		}
		if !st.finished() {
			return
		}
		s.current++
		s.entered = false
	}
	s.state = Completed
}

// Complete fast-forwards: the current step and every later step are finished
// in order, firing callbacks on the way.
func (s *Sequence) Complete() {
	if s.state != Playing {
		return
	}
	for s.current < len(s.steps) {
		st := &s.steps[s.current]
		fresh := !s.entered
		if fresh {
			s.entered = true
			if st.callback != nil {
				st.callback()
				if s.state != Playing {
					return
				}
			}
		}
		for _, h := range st.handles {
			// Handles of a step this playback never reached may still be
			// terminal from an earlier one.
			if fresh && !h.IsActive() {
				h.Start()
			}
			h.Complete()
		}
		s.current++
		s.entered = false
	}
	s.state = Completed
}

// Cancel stops the motions of the current step where they are. No further
// steps start.
func (s *Sequence) Cancel() {
	if s.state != Playing {
		return
	}
	s.state = Cancelled
	if s.current >= len(s.steps) || !s.entered {
		return
	}
	for _, h := range s.steps[s.current].handles {
		if h.IsActive() {
			h.Cancel()
		}
	}
}
