// Package trace_test covers the Recorder's snapshot discipline and the
// Cursor's navigation contract.
package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algostep/algostep/trace"
)

// ------------------------------------------------------------------------
// Recorder: indices, snapshot independence, handover.
// ------------------------------------------------------------------------

func TestRecorder_AssignsSequentialIndices(t *testing.T) {
	var rec trace.Recorder
	rec.Record(trace.Step{Description: "first"})
	rec.Record(trace.Step{Description: "second"})
	rec.Record(trace.Step{Description: "third"})

	steps := rec.Steps()
	require.Len(t, steps, 3)
	for i, s := range steps {
		assert.Equal(t, i, s.Index)
	}
}

func TestSnap_IndependentCopies(t *testing.T) {
	// Mutating the runner's live containers after recording must not
	// change what the step captured.
	live := []string{"A", "B"}
	liveDist := map[string]float64{"A": 0, "B": 1}

	var rec trace.Recorder
	rec.Record(trace.Step{
		Visited:   trace.Snap(live),
		Distances: trace.SnapMap(liveDist),
	})

	live[0] = "mutated"
	liveDist["A"] = 99

	steps := rec.Steps()
	assert.Equal(t, []string{"A", "B"}, steps[0].Visited)
	assert.Equal(t, 0.0, steps[0].Distances["A"])
}

func TestSnap_NilInNilOut(t *testing.T) {
	assert.Nil(t, trace.Snap(nil))
	assert.Nil(t, trace.SnapMap(nil))
}

// ------------------------------------------------------------------------
// Cursor: forward/backward navigation, seeking, bounds.
// ------------------------------------------------------------------------

// threeSteps builds a minimal trace for navigation tests.
func threeSteps() []trace.Step {
	var rec trace.Recorder
	rec.Record(trace.Step{Current: "A"})
	rec.Record(trace.Step{Current: "B"})
	rec.Record(trace.Step{Current: "C"})

	return rec.Steps()
}

func TestCursor_ForwardThenBackward(t *testing.T) {
	c := trace.NewCursor(threeSteps())

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "A", cur.Current)

	// Forward to the end.
	s, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "B", s.Current)
	s, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, "C", s.Current)
	assert.True(t, c.AtEnd())

	// Past the end: cursor stays put.
	_, ok = c.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, c.Index())

	// Backward to the start.
	s, ok = c.Prev()
	require.True(t, ok)
	assert.Equal(t, "B", s.Current)
	s, ok = c.Prev()
	require.True(t, ok)
	assert.Equal(t, "A", s.Current)

	// Before the start: cursor stays put.
	_, ok = c.Prev()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Index())
}

func TestCursor_SeekAndRewind(t *testing.T) {
	c := trace.NewCursor(threeSteps())

	require.NoError(t, c.Seek(2))
	cur, _ := c.Current()
	assert.Equal(t, "C", cur.Current)

	assert.ErrorIs(t, c.Seek(3), trace.ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Seek(-1), trace.ErrIndexOutOfRange)
	// Failed seeks leave the cursor in place.
	assert.Equal(t, 2, c.Index())

	c.Rewind()
	assert.Equal(t, 0, c.Index())
}

func TestCursor_EmptyTrace(t *testing.T) {
	c := trace.NewCursor(nil)
	assert.Zero(t, c.Len())

	_, ok := c.Current()
	assert.False(t, ok)
	_, ok = c.Next()
	assert.False(t, ok)
	_, ok = c.Prev()
	assert.False(t, ok)
	assert.ErrorIs(t, c.Seek(0), trace.ErrIndexOutOfRange)
}

func TestCursor_IndependentCursorsShareSteps(t *testing.T) {
	steps := threeSteps()
	a := trace.NewCursor(steps)
	b := trace.NewCursor(steps)

	_, _ = a.Next()
	// b is unaffected by a's movement.
	cur, _ := b.Current()
	assert.Equal(t, "A", cur.Current)
}
