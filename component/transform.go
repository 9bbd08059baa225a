package component

import (
	"github.com/matt-g-everett/ledseq/property"
	"github.com/matt-g-everett/ledseq/scene"
	"github.com/matt-g-everett/ledseq/sequence"
)

// TransformScale animates the scale of anything spatial.
type TransformScale struct {
	Base  `yaml:",inline"`
	Start scene.Vec3 `yaml:"start"`
	End   scene.Vec3 `yaml:"end"`
}

var _ sequence.Component = (*TransformScale)(nil)

func (c *TransformScale) ResetComponent() {
	c.Base.ResetComponent()
	c.DisplayName = "Scale"
	c.Start = scene.One
	c.End = scene.One
}

func (c *TransformScale) Configure(table sequence.PropertyTable, w *sequence.BufferWriter) {
	if p, ok := c.binding(table); ok {
		configure(&c.Base, table, w, p, c.Start, c.End)
	}
}

func (c *TransformScale) RestoreValues(table sequence.PropertyTable) {
	if p, ok := c.binding(table); ok {
		restore(p)
	}
}

func (c *TransformScale) binding(table sequence.PropertyTable) (binding[scene.Vec3], bool) {
	target, ok := property.Reference[scene.Spatial]{ID: c.Target}.Resolve(table)
	if !ok {
		return binding[scene.Vec3]{}, false
	}
	t := target.Spatial()
	return binding[scene.Vec3]{
		key:   property.Key{Target: t, Kind: property.KindScale},
		store: &table.InitialValues().Vector,
		get:   func() scene.Vec3 { return t.Scale },
		set:   func(v scene.Vec3) { t.Scale = v },
		add:   scene.Vec3.Add,
		lerp:  scene.LerpVec3,
	}, true
}

// TransformPosition animates the position of anything spatial.
type TransformPosition struct {
	Base  `yaml:",inline"`
	Start scene.Vec3 `yaml:"start"`
	End   scene.Vec3 `yaml:"end"`
}

var _ sequence.Component = (*TransformPosition)(nil)

func (c *TransformPosition) ResetComponent() {
	c.Base.ResetComponent()
	c.DisplayName = "Position"
	c.Start = scene.Vec3{}
	c.End = scene.Vec3{}
}

func (c *TransformPosition) Configure(table sequence.PropertyTable, w *sequence.BufferWriter) {
	if p, ok := c.binding(table); ok {
		configure(&c.Base, table, w, p, c.Start, c.End)
	}
}

func (c *TransformPosition) RestoreValues(table sequence.PropertyTable) {
	if p, ok := c.binding(table); ok {
		restore(p)
	}
}

func (c *TransformPosition) binding(table sequence.PropertyTable) (binding[scene.Vec3], bool) {
	target, ok := property.Reference[scene.Spatial]{ID: c.Target}.Resolve(table)
	if !ok {
		return binding[scene.Vec3]{}, false
	}
	t := target.Spatial()
	return binding[scene.Vec3]{
		key:   property.Key{Target: t, Kind: property.KindPosition},
		store: &table.InitialValues().Vector,
		get:   func() scene.Vec3 { return t.Position },
		set:   func(v scene.Vec3) { t.Position = v },
		add:   scene.Vec3.Add,
		lerp:  scene.LerpVec3,
	}, true
}
