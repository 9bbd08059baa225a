package motion

import "time"

// LerpFunc blends a towards b by t, where t is an eased progress value.
type LerpFunc[T any] func(a, b T, t float64) T

// Options shape an interpolation beyond its endpoints and length.
type Options struct {
	Ease  Ease
	Delay time.Duration
}

// A Tween interpolates a value of type T and writes it through bind.
type Tween[T any] struct {
	runner   *Runner
	from     T
	to       T
	duration time.Duration
	delay    time.Duration
	curve    func(float64) float64
	lerp     LerpFunc[T]
	bind     func(T)

	state     State
	elapsed   time.Duration
	startedAt time.Duration
	queued    bool
}

var _ Handle = (*Tween[float64])(nil)

// Create builds a scheduled Tween on runner. Nothing is written to the target
// until the tween is started.
func Create[T any](runner *Runner, from, to T, duration time.Duration, opts Options, lerp LerpFunc[T], bind func(T)) *Tween[T] {
	t := new(Tween[T])
	t.runner = runner
	t.from = from
	t.to = to
	t.duration = max(duration, 0)
	t.delay = max(opts.Delay, 0)
	t.curve = opts.Ease.Func()
	t.lerp = lerp
	t.bind = bind
	t.state = Scheduled
	return t
}

// From is the start value.
func (t *Tween[T]) From() T { return t.from }

// To is the end value.
func (t *Tween[T]) To() T { return t.to }

// StartedAt is the runner time of the most recent Start.
func (t *Tween[T]) StartedAt() time.Duration { return t.startedAt }

// Duration includes the delay.
func (t *Tween[T]) Duration() time.Duration { return t.delay + t.duration }

func (t *Tween[T]) State() State { return t.state }

func (t *Tween[T]) IsActive() bool {
	return t.state == Scheduled || t.state == Playing
}

// Start plays the tween from the beginning, restarting it if it already ran.
func (t *Tween[T]) Start() {
	t.elapsed = 0
	t.startedAt = t.runner.Now()
	t.state = Playing

	if t.Duration() == 0 {
		t.finish()
		return
	}
	if t.delay == 0 {
		t.bind(t.lerp(t.from, t.to, t.curve(0)))
	}
	if !t.queued {
		t.queued = true
		t.runner.add(t)
	}
}

// Complete writes the end value. Completing a scheduled tween is allowed and
// is how a sequence fast-forwards steps it never reached.
func (t *Tween[T]) Complete() {
	if !t.IsActive() {
		return
	}
	t.finish()
}

// Cancel leaves the target at whatever value it last received.
func (t *Tween[T]) Cancel() {
	if !t.IsActive() {
		return
	}
	t.state = Cancelled
}

func (t *Tween[T]) finish() {
	t.bind(t.to)
	t.state = Completed
}

func (t *Tween[T]) advance(dt time.Duration) bool {
	if t.state != Playing {
		t.queued = false
		return false
	}

	t.elapsed += dt
	if t.elapsed >= t.Duration() {
		t.finish()
		t.queued = false
		return false
	}
	if t.elapsed < t.delay {
		return true
	}

	p := float64(t.elapsed-t.delay) / float64(t.duration)
	t.bind(t.lerp(t.from, t.to, t.curve(p)))
	return true
}

// Lerp blends two floats.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
