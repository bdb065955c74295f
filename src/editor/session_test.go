package editor

import (
	"testing"

	"chartlab-go/src/models"
	"chartlab-go/src/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUndoRestoresBitForBit(t *testing.T) {
	base := testBase(30, 31)
	pre := models.CloneBars(base)
	s := NewSession()
	e := NewEngine(rng.Fixed(0))

	s.Begin(base)
	edited := e.EditAggregateField(base, 5, 2, FieldClose, 123)
	s.End()

	restored, ok := s.Undo(edited)
	require.True(t, ok)
	require.Equal(t, pre, restored)

	redone, ok := s.Redo(restored)
	require.True(t, ok)
	require.Equal(t, edited, redone)
}

func TestSessionGestureSnapshotsOnce(t *testing.T) {
	base := testBase(20, 32)
	pre := models.CloneBars(base)
	s := NewSession()
	e := NewEngine(rng.Fixed(0))

	// A drag: many edits inside one gesture collapse into one undo unit.
	cur := base
	for i := 0; i < 5; i++ {
		s.Begin(cur)
		cur = e.EditAggregateField(cur, 1, 3, FieldHigh, 200+float64(i))
	}
	s.End()

	restored, ok := s.Undo(cur)
	require.True(t, ok)
	assert.Equal(t, pre, restored)
	assert.False(t, s.CanUndo(), "the whole gesture must be one undo step")
}

func TestSessionNewEditClearsRedo(t *testing.T) {
	base := testBase(20, 33)
	s := NewSession()
	e := NewEngine(rng.Fixed(0))

	s.Begin(base)
	v1 := e.EditAggregateField(base, 1, 2, FieldClose, 111)
	s.End()

	v0, ok := s.Undo(v1)
	require.True(t, ok)
	require.True(t, s.CanRedo())

	s.Begin(v0)
	e.EditAggregateField(v0, 1, 2, FieldClose, 222)
	s.End()
	assert.False(t, s.CanRedo(), "a fresh edit invalidates the redo stack")
}

func TestSessionEmptyStacks(t *testing.T) {
	base := testBase(10, 34)
	s := NewSession()

	out, ok := s.Undo(base)
	assert.False(t, ok)
	assert.Equal(t, base, out)

	out, ok = s.Redo(base)
	assert.False(t, ok)
	assert.Equal(t, base, out)
}

func TestSessionDepthBound(t *testing.T) {
	base := testBase(5, 35)
	s := NewSession()
	for i := 0; i < DefaultDepth+10; i++ {
		s.Begin(base)
		s.End()
	}
	count := 0
	cur := base
	for {
		next, ok := s.Undo(cur)
		if !ok {
			break
		}
		cur = next
		count++
	}
	assert.Equal(t, DefaultDepth, count)
}

func TestSessionSnapshotIsDetached(t *testing.T) {
	base := testBase(10, 36)
	pre := models.CloneBars(base)
	s := NewSession()
	s.Begin(base)
	s.End()

	// Mutating the live sequence must not corrupt the snapshot.
	base[0].Close = -1
	restored, ok := s.Undo(base)
	require.True(t, ok)
	assert.Equal(t, pre, restored)
}
