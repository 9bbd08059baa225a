// Package component contains the declarative, per-property animations that an
// asset is authored from.
package component

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/property"
	"github.com/matt-g-everett/ledseq/sequence"
)

// MotionMode decides what a component's start and end values are offsets from.
type MotionMode int

const (
	// Absolute values are used as they are.
	Absolute MotionMode = iota
	// Relative values are offsets from the snapshot taken when the property
	// was first touched this session.
	Relative
	// Additive values are offsets from the live value at configure time.
	Additive
)

func (m MotionMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case Additive:
		return "additive"
	}
	return fmt.Sprintf("MotionMode(%d)", int(m))
}

func (m MotionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MotionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "absolute":
		*m = Absolute
	case "relative":
		*m = Relative
	case "additive":
		*m = Additive
	default:
		return fmt.Errorf("unknown motion mode %q", text)
	}
	return nil
}

// Base holds the settings every component shares.
type Base struct {
	Target      string        `yaml:"target"`
	DisplayName string        `yaml:"displayName"`
	Mode        MotionMode    `yaml:"mode"`
	Duration    time.Duration `yaml:"duration"`
	Ease        motion.Ease   `yaml:"ease"`
	Delay       time.Duration `yaml:"delay"`
}

// ResetComponent restores defaults.
func (b *Base) ResetComponent() {
	b.DisplayName = ""
	b.Mode = Absolute
	b.Duration = time.Second
	b.Ease = motion.Linear
	b.Delay = 0
}

// Name is the display name, or the target id when none was given.
func (b *Base) Name() string {
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return b.Target
}

// Validate checks authored settings.
func (b *Base) Validate() error {
	var errs []error
	if b.Target == "" {
		errs = append(errs, errors.New("target is required"))
	}
	if b.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration must not be negative, got %s", b.Duration))
	}
	if b.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", b.Delay))
	}
	if _, err := motion.ParseEase(string(b.Ease)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (b *Base) options() motion.Options {
	return motion.Options{Ease: b.Ease, Delay: b.Delay}
}

// binding describes how to read, write and blend one property of a target.
type binding[V any] struct {
	key   property.Key
	store *property.Store[V]
	get   func() V
	set   func(V)
	add   func(a, b V) V
	lerp  motion.LerpFunc[V]
}

// configure seeds the snapshot, blends start and end per mode and writes the
// resulting motion to w.
func configure[V any](b *Base, table sequence.PropertyTable, w *sequence.BufferWriter, p binding[V], start, end V) {
	live := p.get()
	initial := p.store.LoadOrStore(p.key, live)

	from, to := blend(b.Mode, initial, live, start, end, p.add)
	w.Add(motion.Create(table.Motions(), from, to, b.Duration, b.options(), p.lerp, p.set))
}

// restore writes the snapshot back if there is one.
func restore[V any](p binding[V]) {
	if v, ok := p.store.TryGetInitialValue(p.key); ok {
		p.set(v)
	}
}

func blend[V any](mode MotionMode, initial, live, start, end V, add func(a, b V) V) (V, V) {
	switch mode {
	case Relative:
		return add(initial, start), add(initial, end)
	case Additive:
		return add(live, start), add(live, end)
	}
	return start, end
}
