// Package motion provides cancelable handles to running value interpolations
// and the per-frame pump that drives them.
package motion

import "time"

// State of a single interpolation.
type State int

const (
	Scheduled State = iota
	Playing
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// A Handle controls one interpolation. Start restarts it from the beginning,
// Complete jumps to the end value and Cancel stops it where it is.
type Handle interface {
	Start()
	Complete()
	Cancel()
	IsActive() bool
	State() State
	Duration() time.Duration
}

// Done reports whether h has reached a terminal state.
func Done(h Handle) bool {
	s := h.State()
	return s == Completed || s == Cancelled
}
