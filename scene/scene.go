// Package scene holds the live objects that sequences animate.
package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Vec3 is a three component vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// One is the identity scale.
var One = Vec3{X: 1, Y: 1, Z: 1}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// LerpVec3 blends each component of a towards b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Transform places an object on the strip. Position.X is the first pixel and
// Scale.X stretches the object's pixel span.
type Transform struct {
	Position Vec3
	Scale    Vec3
}

// NewTransform creates a Transform at x with unit scale.
func NewTransform(x float64) *Transform {
	t := new(Transform)
	t.Position = Vec3{X: x}
	t.Scale = One
	return t
}

// Spatial is anything carrying a Transform.
type Spatial interface {
	Spatial() *Transform
}

func (t *Transform) Spatial() *Transform { return t }

// Light is a contiguous run of pixels sharing one colour.
type Light struct {
	Name       string
	Count      int
	Colour     colorful.Color
	Brightness float64
	Transform
}

// NewLight creates a Light of count pixels starting at pixel start.
func NewLight(name string, start, count int, colour colorful.Color) *Light {
	l := new(Light)
	l.Name = name
	l.Count = count
	l.Colour = colour
	l.Brightness = 1
	l.Transform = *NewTransform(float64(start))
	return l
}

func (l *Light) Spatial() *Transform { return &l.Transform }

// AddColour adds two colours component-wise without clamping.
func AddColour(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
