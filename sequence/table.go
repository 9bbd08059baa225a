// Package sequence composes motions into ordered and parallel steps and plays
// them back deterministically from a single update loop.
package sequence

import (
	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/property"
)

// PropertyTable is what a component sees while it is configured: live object
// lookup, the per-playback initial value snapshots and the motion pump.
type PropertyTable interface {
	property.Resolver
	InitialValues() *property.Table
	Motions() *motion.Runner
}

// A Component is a declarative animation of one property. Configure emits its
// motion into w; RestoreValues writes the snapshot back.
type Component interface {
	ResetComponent()
	Configure(table PropertyTable, w *BufferWriter)
	RestoreValues(table PropertyTable)
}
