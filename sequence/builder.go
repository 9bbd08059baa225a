package sequence

import (
	"github.com/matt-g-everett/ledseq/motion"
)

// Kind of deferred work a Configuration performs.
type Kind int

const (
	KindAppend Kind = iota
	KindCallback
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindAppend:
		return "append"
	case KindCallback:
		return "callback"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// A Configuration is one unit of sequence work. State is carried as plain
// data and handed to the function when it runs, so nothing is captured.
type Configuration struct {
	kind     Kind
	state    any
	factory  func(state any) motion.Handle
	callback func(state any)
	group    func(state any, w *BufferWriter)
}

func (c Configuration) Kind() Kind { return c.kind }

func (c Configuration) State() any { return c.state }

// Builder accumulates configurations in order. Nothing is validated or
// invoked until Build.
type Builder struct {
	Factories []Configuration
}

// NewBuilder creates an instance of a Builder.
func NewBuilder() *Builder {
	b := new(Builder)
	b.Factories = make([]Configuration, 0, 8)
	return b
}

// Append adds a step that runs the motion made by factory.
func (b *Builder) Append(factory func() motion.Handle) *Builder {
	return AppendWithState(b, factory, func(f func() motion.Handle) motion.Handle {
		return f()
	})
}

// AppendCallback adds a zero length step that calls fn when reached.
func (b *Builder) AppendCallback(fn func()) *Builder {
	return AppendCallbackWithState(b, fn, func(f func()) {
		f()
	})
}

// AppendGroup adds a step whose motions, written by configure, all start
// together.
func (b *Builder) AppendGroup(configure func(w *BufferWriter)) *Builder {
	return AppendGroupWithState(b, configure, func(f func(*BufferWriter), w *BufferWriter) {
		f(w)
	})
}

// AppendWithState is Append with state threaded through to factory.
func AppendWithState[S any](b *Builder, state S, factory func(S) motion.Handle) *Builder {
	b.Factories = append(b.Factories, Configuration{
		kind:  KindAppend,
		state: state,
		factory: func(s any) motion.Handle {
			v, _ := s.(S)
			return factory(v)
		},
	})
	return b
}

// AppendCallbackWithState is AppendCallback with state threaded through to fn.
func AppendCallbackWithState[S any](b *Builder, state S, fn func(S)) *Builder {
	b.Factories = append(b.Factories, Configuration{
		kind:  KindCallback,
		state: state,
		callback: func(s any) {
			v, _ := s.(S)
			fn(v)
		},
	})
	return b
}

// AppendGroupWithState is AppendGroup with state threaded through to configure.
func AppendGroupWithState[S any](b *Builder, state S, configure func(S, *BufferWriter)) *Builder {
	b.Factories = append(b.Factories, Configuration{
		kind:  KindGroup,
		state: state,
		group: func(s any, w *BufferWriter) {
			v, _ := s.(S)
			configure(v, w)
		},
	})
	return b
}

// Build compiles the configurations into a Sequence. Motion factories and
// group configurators run now, in order; callbacks are deferred to playback.
func (b *Builder) Build() *Sequence {
	s := new(Sequence)
	s.steps = make([]step, 0, len(b.Factories))

	for _, c := range b.Factories {
		var st step
		switch c.kind {
		case KindAppend:
			w := NewBufferWriter()
			w.Add(c.factory(c.state))
			st.handles = w.Handles()
		case KindCallback:
			cb, state := c.callback, c.state
			st.callback = func() { cb(state) }
		case KindGroup:
			w := NewBufferWriter()
			c.group(c.state, w)
			st.handles = w.Handles()
		}
		st.duration = longest(st.handles)
		s.duration += st.duration
		s.steps = append(s.steps, st)
	}
	return s
}
