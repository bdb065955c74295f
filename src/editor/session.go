package editor

import (
	"chartlab-go/src/models"
)

// DefaultDepth bounds the undo and redo stacks; the oldest snapshot is
// dropped when the bound is exceeded.
const DefaultDepth = 64

// Session batches a contiguous interactive gesture into one undoable
// unit. It owns two bounded stacks of full base-sequence snapshots plus
// an in-gesture flag, so independent editing contexts can each hold
// their own session.
type Session struct {
	undo      [][]models.Bar
	redo      [][]models.Bar
	inGesture bool
	depth     int
}

// NewSession creates a session with the default snapshot depth.
func NewSession() *Session {
	return &Session{depth: DefaultDepth}
}

// Begin marks the start of a gesture. The first Begin of a gesture
// snapshots the pre-edit sequence onto the undo stack and clears the
// redo stack; further Begins within the same gesture do nothing.
func (s *Session) Begin(base []models.Bar) {
	if s.inGesture {
		return
	}
	s.inGesture = true
	s.undo = append(s.undo, models.CloneBars(base))
	if len(s.undo) > s.depth {
		s.undo = s.undo[1:]
	}
	s.redo = s.redo[:0]
}

// End marks the end of the current gesture.
func (s *Session) End() {
	s.inGesture = false
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool { return len(s.redo) > 0 }

// Undo exchanges the current sequence for the most recent snapshot.
// The current state moves onto the redo stack. Returns the input
// unchanged with ok=false when nothing can be undone.
func (s *Session) Undo(current []models.Bar) ([]models.Bar, bool) {
	if len(s.undo) == 0 {
		return current, false
	}
	s.End()
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, models.CloneBars(current))
	if len(s.redo) > s.depth {
		s.redo = s.redo[1:]
	}
	return top, true
}

// Redo reverses the most recent Undo.
func (s *Session) Redo(current []models.Bar) ([]models.Bar, bool) {
	if len(s.redo) == 0 {
		return current, false
	}
	s.End()
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, models.CloneBars(current))
	if len(s.undo) > s.depth {
		s.undo = s.undo[1:]
	}
	return top, true
}
