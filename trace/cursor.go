// Package trace: Cursor — index navigation over a finished trace.
package trace

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Seek for an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("trace: step index out of range")

// Cursor walks an immutable step sequence forward and backward.
//
// A fresh Cursor is positioned on step 0. Navigation never recomputes
// anything: each Step is self-contained, so rendering the cursor's
// current step at any position reproduces that instant of the run.
type Cursor struct {
	steps []Step
	idx   int
}

// NewCursor returns a cursor over steps, positioned at the first step.
// The caller must not mutate steps after handing it over.
func NewCursor(steps []Step) *Cursor {
	return &Cursor{steps: steps}
}

// Len returns the number of steps in the trace.
func (c *Cursor) Len() int {
	return len(c.steps)
}

// Index returns the cursor's current position.
func (c *Cursor) Index() int {
	return c.idx
}

// Current returns the step under the cursor and false when the trace is
// empty.
func (c *Cursor) Current() (Step, bool) {
	if len(c.steps) == 0 {
		return Step{}, false
	}

	return c.steps[c.idx], true
}

// Next advances one step and returns it. Returns false (cursor
// unchanged) when already on the last step.
func (c *Cursor) Next() (Step, bool) {
	if c.idx+1 >= len(c.steps) {
		return Step{}, false
	}
	c.idx++

	return c.steps[c.idx], true
}

// Prev moves one step back and returns it. Returns false (cursor
// unchanged) when already on the first step.
func (c *Cursor) Prev() (Step, bool) {
	if c.idx == 0 || len(c.steps) == 0 {
		return Step{}, false
	}
	c.idx--

	return c.steps[c.idx], true
}

// Seek positions the cursor on step i.
// Returns ErrIndexOutOfRange (wrapped with i and Len) when i is invalid.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= len(c.steps) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.steps))
	}
	c.idx = i

	return nil
}

// Rewind repositions the cursor on the first step.
func (c *Cursor) Rewind() {
	c.idx = 0
}

// AtEnd reports whether the cursor sits on the last step (or the trace
// is empty).
func (c *Cursor) AtEnd() bool {
	return c.idx >= len(c.steps)-1
}
