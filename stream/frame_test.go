package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledseq/scene"
)

func TestRenderSpans(t *testing.T) {
	f := NewFrame(10)
	red := scene.NewLight("red", 1, 3, colorful.Color{R: 1})
	blue := scene.NewLight("blue", 3, 2, colorful.Color{B: 1})
	blue.Scale.X = 2

	f.Render([]*scene.Light{red, blue})

	black := colorful.Color{}
	assert.Equal(t, black, f.Pixel(0))
	assert.Equal(t, colorful.Color{R: 1}, f.Pixel(1))
	assert.Equal(t, colorful.Color{R: 1}, f.Pixel(2))
	assert.Equal(t, colorful.Color{R: 1, B: 1}, f.Pixel(3), "overlap adds")
	for i := 4; i < 7; i++ {
		assert.Equal(t, colorful.Color{B: 1}, f.Pixel(i), i)
	}
	assert.Equal(t, black, f.Pixel(7))
}

func TestRenderClipsAndDims(t *testing.T) {
	f := NewFrame(4)
	off := scene.NewLight("off", 0, 4, colorful.Color{R: 1})
	off.Brightness = 0
	edge := scene.NewLight("edge", -2, 4, colorful.Color{G: 1})
	tail := scene.NewLight("tail", 3, 10, colorful.Color{B: 1})

	f.Render([]*scene.Light{off, edge, tail})
	assert.Equal(t, colorful.Color{G: 1}, f.Pixel(0))
	assert.Equal(t, colorful.Color{G: 1}, f.Pixel(1))
	assert.Equal(t, colorful.Color{}, f.Pixel(2))
	assert.Equal(t, colorful.Color{B: 1}, f.Pixel(3))

	edge.Brightness = 0.5
	f.Render([]*scene.Light{edge})
	g := f.Pixel(0).G
	assert.Greater(t, g, 0.0)
	assert.Less(t, g, 0.5, "brightness is perceptual")

	f.Render(nil)
	assert.Equal(t, colorful.Color{}, f.Pixel(0), "render starts from black")
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(3)
	over := scene.NewLight("over", 0, 1, colorful.Color{R: 2, G: -1, B: 0.5})
	f.Render([]*scene.Light{over})

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 2+3*3)
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(b))
	assert.Equal(t, []byte{255, 0, 128}, b[2:5])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, b[5:])
}
