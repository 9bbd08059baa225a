package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloatTween(r *Runner, from, to float64, d time.Duration, opts Options, out *float64) *Tween[float64] {
	return Create(r, from, to, d, opts, Lerp, func(v float64) { *out = v })
}

func TestTweenPlaysToEnd(t *testing.T) {
	r := NewRunner()
	var value float64
	tw := newFloatTween(r, 0, 10, time.Second, Options{}, &value)

	assert.Equal(t, Scheduled, tw.State())
	assert.True(t, tw.IsActive())
	assert.Equal(t, 0, r.Len())

	tw.Start()
	assert.Equal(t, Playing, tw.State())
	assert.Equal(t, 1, r.Len())

	r.Update(500 * time.Millisecond)
	assert.InDelta(t, 5.0, value, 1e-9)

	r.Update(500 * time.Millisecond)
	assert.Equal(t, 10.0, value)
	assert.Equal(t, Completed, tw.State())
	assert.False(t, tw.IsActive())
	assert.True(t, Done(tw))
	assert.Equal(t, 0, r.Len())
}

func TestTweenDelay(t *testing.T) {
	r := NewRunner()
	value := -1.0
	tw := newFloatTween(r, 0, 1, time.Second, Options{Delay: time.Second}, &value)
	assert.Equal(t, 2*time.Second, tw.Duration())

	tw.Start()
	assert.Equal(t, -1.0, value, "nothing is written during the delay")

	r.Update(500 * time.Millisecond)
	assert.Equal(t, -1.0, value)

	r.Update(time.Second)
	assert.InDelta(t, 0.5, value, 1e-9)

	r.Update(time.Second)
	assert.Equal(t, 1.0, value)
	assert.Equal(t, Completed, tw.State())
}

func TestTweenCompleteAndCancel(t *testing.T) {
	r := NewRunner()
	var value float64

	tw := newFloatTween(r, 0, 4, time.Second, Options{}, &value)
	tw.Complete()
	assert.Equal(t, 4.0, value, "a scheduled tween can be fast-forwarded")
	assert.Equal(t, Completed, tw.State())

	value = 0
	other := newFloatTween(r, 0, 4, time.Second, Options{}, &value)
	other.Start()
	r.Update(250 * time.Millisecond)
	other.Cancel()
	assert.Equal(t, Cancelled, other.State())
	r.Update(time.Second)
	assert.InDelta(t, 1.0, value, 1e-9, "cancel leaves the current value")
	assert.Equal(t, 0, r.Len())

	other.Complete()
	assert.Equal(t, Cancelled, other.State(), "terminal states are sticky")
}

func TestTweenRestart(t *testing.T) {
	r := NewRunner()
	var value float64
	tw := newFloatTween(r, 0, 1, time.Second, Options{}, &value)

	tw.Start()
	r.Update(2 * time.Second)
	require.Equal(t, Completed, tw.State())

	tw.Start()
	assert.Equal(t, 0.0, value)
	assert.Equal(t, 2*time.Second, tw.StartedAt())
	r.Update(500 * time.Millisecond)
	assert.InDelta(t, 0.5, value, 1e-9)
}

func TestTweenRestartWhileQueued(t *testing.T) {
	r := NewRunner()
	var value float64
	tw := newFloatTween(r, 0, 1, time.Second, Options{}, &value)

	tw.Start()
	tw.Complete()
	tw.Start()
	assert.Equal(t, 1, r.Len(), "a restarted tween is pumped once")

	r.Update(time.Second)
	assert.Equal(t, Completed, tw.State())
}

func TestTweenZeroDuration(t *testing.T) {
	r := NewRunner()
	var value float64
	tw := newFloatTween(r, 0, 3, 0, Options{}, &value)

	tw.Start()
	assert.Equal(t, Completed, tw.State())
	assert.Equal(t, 3.0, value)
	assert.Equal(t, 0, r.Len())
}

func TestTweenEase(t *testing.T) {
	r := NewRunner()
	var value float64
	tw := newFloatTween(r, 0, 1, time.Second, Options{Ease: InQuad}, &value)

	tw.Start()
	r.Update(500 * time.Millisecond)
	assert.InDelta(t, 0.25, value, 1e-9)
}

func TestParseEase(t *testing.T) {
	e, err := ParseEase("")
	require.NoError(t, err)
	assert.Equal(t, Linear, e)

	e, err = ParseEase("outBounce")
	require.NoError(t, err)
	assert.Equal(t, OutBounce, e)

	_, err = ParseEase("wobble")
	assert.Error(t, err)

	assert.Contains(t, Eases(), "inOutQuad")
	assert.InDelta(t, 0.5, Ease("wobble").Func()(0.5), 1e-9)
}

func TestRunnerNow(t *testing.T) {
	r := NewRunner()
	r.Update(time.Second)
	r.Update(-time.Second)
	assert.Equal(t, time.Second, r.Now())
}
