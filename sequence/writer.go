package sequence

import (
	"time"

	"github.com/matt-g-everett/ledseq/motion"
)

// BufferWriter collects the motions produced while one step is configured.
// Everything written to the same writer starts together.
type BufferWriter struct {
	handles []motion.Handle
}

// NewBufferWriter creates an empty BufferWriter.
func NewBufferWriter() *BufferWriter {
	return &BufferWriter{handles: make([]motion.Handle, 0, 4)}
}

// Add appends h. Nil handles are dropped.
func (w *BufferWriter) Add(h motion.Handle) {
	if h == nil {
		return
	}
	w.handles = append(w.handles, h)
}

// Handles returns the motions in the order they were added.
func (w *BufferWriter) Handles() []motion.Handle {
	return w.handles
}

func (w *BufferWriter) Len() int {
	return len(w.handles)
}

func longest(handles []motion.Handle) time.Duration {
	var d time.Duration
	for _, h := range handles {
		d = max(d, h.Duration())
	}
	return d
}
