package component

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/property"
	"github.com/matt-g-everett/ledseq/scene"
	"github.com/matt-g-everett/ledseq/sequence"
)

// Colour is a colorful.Color that can be authored either as a hex string or
// as an {r, g, b} mapping. Offsets for relative and additive modes may be
// negative, which only the mapping form can express.
type Colour colorful.Color

func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		col, err := colorful.Hex(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = Colour(col)
		return nil
	}

	var rgb struct {
		R float64 `yaml:"r"`
		G float64 `yaml:"g"`
		B float64 `yaml:"b"`
	}
	if err := value.Decode(&rgb); err != nil {
		return err
	}
	*c = Colour{R: rgb.R, G: rgb.G, B: rgb.B}
	return nil
}

// BlendSpace is the colour space a colour motion interpolates through.
type BlendSpace string

const (
	BlendRgb BlendSpace = "rgb"
	BlendHcl BlendSpace = "hcl"
	BlendLab BlendSpace = "lab"
)

func (s BlendSpace) lerp() (motion.LerpFunc[colorful.Color], error) {
	switch BlendSpace(strings.ToLower(string(s))) {
	case "", BlendRgb:
		return colorful.Color.BlendRgb, nil
	case BlendHcl:
		return colorful.Color.BlendHcl, nil
	case BlendLab:
		return colorful.Color.BlendLab, nil
	}
	return nil, fmt.Errorf("unknown blend space %q", string(s))
}

// LightColour animates the colour of a light.
type LightColour struct {
	Base  `yaml:",inline"`
	Blend BlendSpace `yaml:"blend"`
	Start Colour     `yaml:"start"`
	End   Colour     `yaml:"end"`
}

var _ sequence.Component = (*LightColour)(nil)

func (c *LightColour) ResetComponent() {
	c.Base.ResetComponent()
	c.DisplayName = "Colour"
	c.Blend = BlendRgb
	c.Start = Colour{}
	c.End = Colour{}
}

func (c *LightColour) Validate() error {
	if _, err := c.Blend.lerp(); err != nil {
		return err
	}
	return c.Base.Validate()
}

func (c *LightColour) Configure(table sequence.PropertyTable, w *sequence.BufferWriter) {
	if p, ok := c.binding(table); ok {
		configure(&c.Base, table, w, p, colorful.Color(c.Start), colorful.Color(c.End))
	}
}

func (c *LightColour) RestoreValues(table sequence.PropertyTable) {
	if p, ok := c.binding(table); ok {
		restore(p)
	}
}

func (c *LightColour) binding(table sequence.PropertyTable) (binding[colorful.Color], bool) {
	light, ok := property.Reference[*scene.Light]{ID: c.Target}.Resolve(table)
	if !ok {
		return binding[colorful.Color]{}, false
	}
	lerp, err := c.Blend.lerp()
	if err != nil {
		lerp = colorful.Color.BlendRgb
	}
	return binding[colorful.Color]{
		key:   property.Key{Target: light, Kind: property.KindColour},
		store: &table.InitialValues().Colour,
		get:   func() colorful.Color { return light.Colour },
		set:   func(v colorful.Color) { light.Colour = v },
		add:   scene.AddColour,
		lerp:  lerp,
	}, true
}

// LightBrightness animates the brightness of a light.
type LightBrightness struct {
	Base  `yaml:",inline"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

var _ sequence.Component = (*LightBrightness)(nil)

func (c *LightBrightness) ResetComponent() {
	c.Base.ResetComponent()
	c.DisplayName = "Brightness"
	c.Start = 1
	c.End = 1
}

func (c *LightBrightness) Configure(table sequence.PropertyTable, w *sequence.BufferWriter) {
	if p, ok := c.binding(table); ok {
		configure(&c.Base, table, w, p, c.Start, c.End)
	}
}

func (c *LightBrightness) RestoreValues(table sequence.PropertyTable) {
	if p, ok := c.binding(table); ok {
		restore(p)
	}
}

func (c *LightBrightness) binding(table sequence.PropertyTable) (binding[float64], bool) {
	light, ok := property.Reference[*scene.Light]{ID: c.Target}.Resolve(table)
	if !ok {
		return binding[float64]{}, false
	}
	return binding[float64]{
		key:   property.Key{Target: light, Kind: property.KindBrightness},
		store: &table.InitialValues().Float,
		get:   func() float64 { return light.Brightness },
		set:   func(v float64) { light.Brightness = v },
		add:   func(a, b float64) float64 { return a + b },
		lerp:  motion.Lerp,
	}, true
}
