// Package asset holds authored shows: ordered items of components that compile
// into a playable sequence.
package asset

import (
	"log"

	"github.com/matt-g-everett/ledseq/sequence"
)

// An Item is one step of a show. Its components all start together, and its
// marker, if set, fires once they have all finished.
type Item struct {
	Name       string
	Marker     string
	Components []sequence.Component
}

// Asset is an authored show.
type Asset struct {
	Name  string
	Items []Item

	// OnMarker is called as each item's marker is reached. Markers are logged
	// when it is nil.
	OnMarker func(marker string)
}

// Components lists every component of every item in declaration order.
func (a *Asset) Components() []sequence.Component {
	var out []sequence.Component
	for _, item := range a.Items {
		out = append(out, item.Components...)
	}
	return out
}

type groupState struct {
	table sequence.PropertyTable
	item  *Item
}

func configureItem(s groupState, w *sequence.BufferWriter) {
	for _, c := range s.item.Components {
		c.Configure(s.table, w)
	}
}

// CreateSequence compiles the asset against table. Every component is
// configured now, in declaration order, so additive offsets are taken from the
// values live at compile time.
func (a *Asset) CreateSequence(table sequence.PropertyTable) *sequence.Sequence {
	b := sequence.NewBuilder()
	for i := range a.Items {
		item := &a.Items[i]
		if len(item.Components) > 0 {
			sequence.AppendGroupWithState(b, groupState{table: table, item: item}, configureItem)
		}
		if item.Marker != "" {
			sequence.AppendCallbackWithState(b, item.Marker, a.marker)
		}
	}
	return b.Build()
}

func (a *Asset) marker(name string) {
	if a.OnMarker != nil {
		a.OnMarker(name)
		return
	}
	log.Printf("Marker %s reached in %s", name, a.Name)
}
