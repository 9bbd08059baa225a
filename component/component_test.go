package component

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/property"
	"github.com/matt-g-everett/ledseq/scene"
	"github.com/matt-g-everett/ledseq/sequence"
)

type testTable struct {
	refs   map[string]any
	values property.Table
	runner *motion.Runner
}

func newTestTable(refs map[string]any) *testTable {
	return &testTable{refs: refs, runner: motion.NewRunner()}
}

func (t *testTable) GetReferenceValue(id string) (any, bool) {
	v, ok := t.refs[id]
	return v, ok
}

func (t *testTable) InitialValues() *property.Table { return &t.values }

func (t *testTable) Motions() *motion.Runner { return t.runner }

func scaleComponent(mode MotionMode, start, end float64) *TransformScale {
	c := new(TransformScale)
	c.ResetComponent()
	c.Target = "star"
	c.Mode = mode
	c.Start = scene.Vec3{X: start}
	c.End = scene.Vec3{X: end}
	return c
}

// configureAndFinish configures c on its own writer, completes the motion so
// its end value lands on the target, and returns the motion's range.
func configureAndFinish(t *testing.T, table sequence.PropertyTable, c sequence.Component) (scene.Vec3, scene.Vec3) {
	t.Helper()
	w := sequence.NewBufferWriter()
	c.Configure(table, w)
	require.Equal(t, 1, w.Len())

	tw, ok := w.Handles()[0].(*motion.Tween[scene.Vec3])
	require.True(t, ok)
	tw.Complete()
	return tw.From(), tw.To()
}

func TestAbsoluteUsesValuesAsIs(t *testing.T) {
	tr := scene.NewTransform(0)
	tr.Scale = scene.Vec3{X: 7}
	table := newTestTable(map[string]any{"star": tr})

	from, to := configureAndFinish(t, table, scaleComponent(Absolute, 2, 3))
	assert.Equal(t, scene.Vec3{X: 2}, from)
	assert.Equal(t, scene.Vec3{X: 3}, to)
	assert.Equal(t, scene.Vec3{X: 3}, tr.Scale)
}

func TestRelativeIsOrderIndependent(t *testing.T) {
	const snapshot = 10.0
	first := scaleComponent(Relative, 0, 1)
	second := scaleComponent(Relative, 2, 3)

	run := func(order ...*TransformScale) map[*TransformScale][2]float64 {
		tr := scene.NewTransform(0)
		tr.Scale = scene.Vec3{X: snapshot}
		table := newTestTable(map[string]any{"star": tr})

		ranges := make(map[*TransformScale][2]float64)
		for _, c := range order {
			from, to := configureAndFinish(t, table, c)
			ranges[c] = [2]float64{from.X, to.X}
		}
		return ranges
	}

	forward := run(first, second)
	backward := run(second, first)

	assert.Equal(t, [2]float64{snapshot + 0, snapshot + 1}, forward[first])
	assert.Equal(t, [2]float64{snapshot + 2, snapshot + 3}, forward[second])
	assert.Equal(t, forward, backward)
}

func TestAdditiveIsOrderSensitive(t *testing.T) {
	const live = 10.0
	first := scaleComponent(Additive, 0, 1)
	second := scaleComponent(Additive, 2, 3)

	run := func(a, b *TransformScale) [2]float64 {
		tr := scene.NewTransform(0)
		tr.Scale = scene.Vec3{X: live}
		table := newTestTable(map[string]any{"star": tr})

		configureAndFinish(t, table, a)
		from, to := configureAndFinish(t, table, b)
		return [2]float64{from.X, to.X}
	}

	// second stacks on first's end value (10 + 1), not on the pre-sequence value.
	assert.Equal(t, [2]float64{live + 1 + 2, live + 1 + 3}, run(first, second))
	// swapped, first stacks on second's end value (10 + 3).
	assert.Equal(t, [2]float64{live + 3 + 0, live + 3 + 1}, run(second, first))
}

func TestFirstConfigureSeedsSnapshot(t *testing.T) {
	tr := scene.NewTransform(0)
	tr.Scale = scene.Vec3{X: 4}
	table := newTestTable(map[string]any{"star": tr})

	configureAndFinish(t, table, scaleComponent(Absolute, 9, 9))
	configureAndFinish(t, table, scaleComponent(Absolute, 1, 1))

	v, ok := table.values.Vector.TryGetInitialValue(property.Key{Target: tr, Kind: property.KindScale})
	require.True(t, ok)
	assert.Equal(t, scene.Vec3{X: 4}, v)
	assert.Equal(t, 1, table.values.Len())
}

func TestUnresolvedTargetIsNoop(t *testing.T) {
	table := newTestTable(map[string]any{"star": "not a transform"})
	components := []sequence.Component{
		scaleComponent(Relative, 0, 1),
		&LightColour{Base: Base{Target: "missing"}},
		&LightBrightness{Base: Base{Target: "star"}},
		&TransformPosition{Base: Base{Target: ""}},
	}

	w := sequence.NewBufferWriter()
	for _, c := range components {
		c.Configure(table, w)
		c.RestoreValues(table)
	}
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, table.values.Len())
}

func TestRestoreValues(t *testing.T) {
	light := scene.NewLight("star", 3, 4, colorful.Color{R: 0.2, G: 0.4, B: 0.6})
	light.Brightness = 0.8
	table := newTestTable(map[string]any{"star": light})

	pos := new(TransformPosition)
	pos.ResetComponent()
	pos.Target = "star"
	pos.Mode = Additive
	pos.End = scene.Vec3{X: 10}

	colour := new(LightColour)
	colour.ResetComponent()
	colour.Target = "star"
	colour.End = Colour{R: 1}

	bright := new(LightBrightness)
	bright.ResetComponent()
	bright.Target = "star"
	bright.End = 0

	w := sequence.NewBufferWriter()
	for _, c := range []sequence.Component{pos, colour, bright} {
		c.Configure(table, w)
	}
	require.Equal(t, 3, w.Len())
	for _, h := range w.Handles() {
		h.Complete()
	}

	assert.Equal(t, 13.0, light.Position.X)
	assert.Equal(t, colorful.Color{R: 1}, light.Colour)
	assert.Equal(t, 0.0, light.Brightness)

	for _, c := range []sequence.Component{pos, colour, bright} {
		c.RestoreValues(table)
	}
	assert.Equal(t, 3.0, light.Position.X)
	assert.Equal(t, colorful.Color{R: 0.2, G: 0.4, B: 0.6}, light.Colour)
	assert.Equal(t, 0.8, light.Brightness)
}

func TestRestoreWithoutSnapshot(t *testing.T) {
	tr := scene.NewTransform(0)
	tr.Scale = scene.Vec3{X: 5}
	table := newTestTable(map[string]any{"star": tr})

	scaleComponent(Relative, 0, 1).RestoreValues(table)
	assert.Equal(t, scene.Vec3{X: 5}, tr.Scale)
}

func TestMotionUsesBaseSettings(t *testing.T) {
	light := scene.NewLight("star", 0, 1, colorful.Color{})
	light.Brightness = 0
	table := newTestTable(map[string]any{"star": light})

	c := new(LightBrightness)
	c.ResetComponent()
	c.Target = "star"
	c.Start = 0
	c.End = 1
	c.Duration = 2 * time.Second
	c.Delay = time.Second
	c.Ease = motion.InQuad

	w := sequence.NewBufferWriter()
	c.Configure(table, w)
	h := w.Handles()[0]
	assert.Equal(t, 3*time.Second, h.Duration())

	h.Start()
	table.runner.Update(2 * time.Second)
	assert.InDelta(t, 0.25, light.Brightness, 1e-9)
}

func TestColourBlendSpaces(t *testing.T) {
	for _, space := range []BlendSpace{"", BlendRgb, BlendHcl, BlendLab, "HCL"} {
		lerp, err := space.lerp()
		require.NoError(t, err, space)
		a, b := colorful.Color{R: 1}, colorful.Color{B: 1}
		assert.True(t, lerp(a, b, 0).AlmostEqualRgb(a), space)
	}
	_, err := BlendSpace("cmyk").lerp()
	assert.Error(t, err)

	c := &LightColour{Base: Base{Target: "x", Duration: time.Second}, Blend: "cmyk"}
	assert.Error(t, c.Validate())
}

func TestColourYAML(t *testing.T) {
	var c LightColour
	c.ResetComponent()
	doc := "target: star\nblend: hcl\nstart: \"#ff0000\"\nend: {r: -0.5, g: 0.25, b: 0}\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))

	assert.Equal(t, "star", c.Target)
	assert.Equal(t, BlendHcl, c.Blend)
	assert.Equal(t, Colour{R: 1}, c.Start)
	assert.Equal(t, Colour{R: -0.5, G: 0.25}, c.End)
	assert.Equal(t, time.Second, c.Duration, "defaults survive decoding")

	assert.Error(t, yaml.Unmarshal([]byte("start: \"#zz\"\n"), &c))
}

func TestMotionModeText(t *testing.T) {
	var m MotionMode
	require.NoError(t, m.UnmarshalText([]byte("Relative")))
	assert.Equal(t, Relative, m)
	require.NoError(t, m.UnmarshalText([]byte("")))
	assert.Equal(t, Absolute, m)
	assert.Error(t, m.UnmarshalText([]byte("sideways")))

	text, err := Additive.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "additive", string(text))
}

func TestBaseValidate(t *testing.T) {
	var b Base
	b.ResetComponent()
	b.Target = "star"
	assert.NoError(t, b.Validate())
	assert.Equal(t, "star", b.Name())

	b.DisplayName = "Grow"
	assert.Equal(t, "Grow", b.Name())

	bad := Base{Duration: -time.Second, Ease: "wobble"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target is required")
	assert.Contains(t, err.Error(), "duration")
	assert.Contains(t, err.Error(), "wobble")
}

func TestRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"light/brightness", "light/colour", "transform/position", "transform/scale"}, r.Names())

	c, err := r.New("transform/scale")
	require.NoError(t, err)
	scale, ok := c.(*TransformScale)
	require.True(t, ok)
	assert.Equal(t, "Scale", scale.DisplayName)
	assert.Equal(t, scene.One, scale.Start)

	_, err = r.New("light/flicker")
	assert.ErrorIs(t, err, ErrUnknownType)

	assert.Error(t, r.Register("light/colour", func() sequence.Component { return new(LightColour) }))
	assert.Error(t, r.Register("", nil))
	assert.Panics(t, func() { r.MustRegister("light/colour", nil) })
}
