package stream

import (
	"encoding/binary"
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledseq/scene"
	"github.com/matt-g-everett/ledseq/util"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
	lut    []float64
}

// NewFrame creates a black Frame of n pixels.
func NewFrame(n int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, n)
	f.lut = util.GenerateLut(256, ease.InQuad)
	return f
}

func (f *Frame) Len() int { return len(f.pixels) }

func (f *Frame) Pixel(i int) colorful.Color { return f.pixels[i] }

func (f *Frame) Clear() {
	clear(f.pixels)
}

// Render paints each light over its span. A light covers Count*Scale.X pixels
// from Position.X, and overlapping lights add.
func (f *Frame) Render(lights []*scene.Light) {
	f.Clear()
	for _, l := range lights {
		level := util.SampleLut(f.lut, l.Brightness)
		if level == 0 {
			continue
		}
		c := colorful.Color{R: l.Colour.R * level, G: l.Colour.G * level, B: l.Colour.B * level}

		start := int(math.Round(l.Position.X))
		end := start + int(math.Round(float64(l.Count)*l.Scale.X))
		for i := max(start, 0); i < min(end, len(f.pixels)); i++ {
			f.pixels[i] = scene.AddColour(f.pixels[i], c)
		}
	}
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
