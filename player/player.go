// Package player plays an asset against live scene objects and owns the
// tables its components read and write while doing so.
package player

import (
	"log"

	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/property"
	"github.com/matt-g-everett/ledseq/sequence"
)

// Asset is anything that compiles into a sequence and can list the components
// it was built from.
type Asset interface {
	CreateSequence(table sequence.PropertyTable) *sequence.Sequence
	Components() []sequence.Component
}

// Config controls how a Player reuses compiled sequences.
type Config struct {
	// CacheCompiledSequence keeps the first compiled sequence and replays it.
	// When false every Play recompiles, so edits to the asset and to live
	// values are picked up.
	CacheCompiledSequence bool
}

// State of a Player.
type State int

const (
	Idle State = iota
	Playing
	Previewing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Previewing:
		return "previewing"
	}
	return "unknown"
}

// Player is a playback instance of one asset.
type Player struct {
	asset  Asset
	runner *motion.Runner
	config Config

	sequence   *sequence.Sequence
	previewing bool

	references map[string]any
	values     property.Table
}

var _ sequence.PropertyTable = (*Player)(nil)

// New creates a Player for asset driving motions on runner.
func New(asset Asset, runner *motion.Runner, config Config) *Player {
	p := new(Player)
	p.asset = asset
	p.runner = runner
	p.config = config
	p.references = make(map[string]any)
	return p
}

// IsPlaying reports whether a sequence is running.
func (p *Player) IsPlaying() bool {
	return p.sequence != nil && p.sequence.IsActive()
}

func (p *Player) State() State {
	switch {
	case !p.IsPlaying():
		return Idle
	case p.previewing:
		return Previewing
	}
	return Playing
}

// Play compiles the asset, unless a cached sequence exists, and starts it.
func (p *Player) Play() error {
	if p.IsPlaying() {
		return sequence.ErrAlreadyPlaying
	}
	if p.asset == nil {
		return nil
	}
	if p.sequence == nil || !p.config.CacheCompiledSequence {
		p.sequence = p.asset.CreateSequence(p)
	}
	p.previewing = false
	log.Printf("Playing sequence with %d steps over %s", p.sequence.Len(), p.sequence.Duration())
	return p.sequence.Play()
}

// Complete fast-forwards the current sequence to its end.
func (p *Player) Complete() {
	if p.sequence != nil {
		p.sequence.Complete()
	}
}

// Cancel stops the current sequence where it is.
func (p *Player) Cancel() {
	if p.sequence != nil {
		p.sequence.Cancel()
	}
}

// Advance moves the current sequence on. Call it after the runner has been
// updated for the frame.
func (p *Player) Advance() {
	if p.sequence != nil {
		p.sequence.Advance()
	}
}

// PlayPreview finishes whatever is playing, then recompiles and plays the
// asset. Snapshots taken by earlier previews are kept, so a later
// CancelAndRestoreValues goes back to the values from before the first one.
func (p *Player) PlayPreview() {
	if p.asset == nil {
		return
	}
	p.Complete()
	p.sequence = p.asset.CreateSequence(p)
	p.previewing = true
	if err := p.sequence.Play(); err != nil {
		log.Printf("Preview failed: %v", err)
	}
}

// CancelAndRestoreValues stops playback and puts every property the asset
// touched back to its snapshot.
func (p *Player) CancelAndRestoreValues() {
	p.Cancel()
	if p.asset != nil {
		for _, c := range p.asset.Components() {
			c.RestoreValues(p)
		}
	}
	if n := p.values.Len(); n > 0 {
		log.Printf("Restored %d properties", n)
	}
	p.ClearInitialValues()
	p.previewing = false
}

// IsModified reports whether any property has been snapshotted and not yet
// restored.
func (p *Player) IsModified() bool {
	return p.values.Len() > 0
}

// SetReferenceValue binds id to a live object. Empty ids are ignored.
func (p *Player) SetReferenceValue(id string, value any) {
	if id == "" {
		return
	}
	p.references[id] = value
}

func (p *Player) GetReferenceValue(id string) (any, bool) {
	v, ok := p.references[id]
	return v, ok
}

func (p *Player) ClearReferenceValue(id string) {
	delete(p.references, id)
}

func (p *Player) InitialValues() *property.Table { return &p.values }

func (p *Player) ClearInitialValues() { p.values.ClearInitialValues() }

func (p *Player) Motions() *motion.Runner { return p.runner }
