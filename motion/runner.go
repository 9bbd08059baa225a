package motion

import "time"

type runnable interface {
	advance(dt time.Duration) bool
}

// Runner pumps every playing interpolation once per frame. It is not safe for
// concurrent use; the owner drives it from a single update loop.
type Runner struct {
	now    time.Duration
	active []runnable
}

// NewRunner creates an instance of a Runner.
func NewRunner() *Runner {
	r := new(Runner)
	r.active = make([]runnable, 0, 32)
	return r
}

// Now is the total time the runner has been advanced by.
func (r *Runner) Now() time.Duration {
	return r.now
}

// Len is the number of interpolations currently being pumped.
func (r *Runner) Len() int {
	return len(r.active)
}

// Update advances the clock by dt and steps every playing interpolation.
func (r *Runner) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	r.now += dt

	live := r.active[:0]
	for _, m := range r.active {
		if m.advance(dt) {
			live = append(live, m)
		}
	}
	for i := len(live); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = live
}

func (r *Runner) add(m runnable) {
	r.active = append(r.active, m)
}
