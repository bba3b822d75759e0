package cutscene

import "github.com/duskglass/puzzlecore/theater"

// Scene holds a top-level ordered list of compiled nodes plus an index
// into that list (§4.3). It is the thing PuzzleCore actually drives per
// ClockTick.
type Scene struct {
	nodes []Node
	index int
}

// NewScene wraps a compiled node list. Prefer Compiler.CompileScene for
// building one from an Ast; NewScene is exported for tests that build
// node trees directly.
func NewScene(nodes []Node) *Scene {
	return &Scene{nodes: nodes}
}

// Empty returns a Scene that is finished on creation and a no-op.
func Empty() *Scene {
	return &Scene{}
}

// Begin begins child 0 (if any) with terminatedByPause=true — the
// top-level scene tree is, by definition, terminated by pause at its
// very end.
func (s *Scene) Begin(t *theater.Theater) {
	s.index = 0
	if len(s.nodes) > 0 {
		s.nodes[0].Begin(t, true)
	}
}

// Tick advances the current child; while its status is Done, advances
// the index and begins the next child (also with terminatedByPause
// true), reporting changed if anything moved.
func (s *Scene) Tick(t *theater.Theater) bool {
	if s.index >= len(s.nodes) {
		return false
	}
	changed := s.nodes[s.index].Tick(t, false)
	for s.nodes[s.index].Status() == Done {
		s.index++
		if s.index >= len(s.nodes) {
			break
		}
		s.nodes[s.index].Begin(t, true)
		changed = true
	}
	return changed
}

// Skip fast-forwards every remaining child to Done, in order.
func (s *Scene) Skip(t *theater.Theater) {
	for s.index < len(s.nodes) {
		s.nodes[s.index].Skip(t)
		s.index++
	}
}

// IsFinished reports whether every node has completed.
func (s *Scene) IsFinished() bool { return s.index == len(s.nodes) }

// IsPaused reports whether the current node's status is Paused.
func (s *Scene) IsPaused() bool {
	return s.index < len(s.nodes) && s.nodes[s.index].Status() == Paused
}

// Unpause forwards to the current node.
func (s *Scene) Unpause() {
	if s.index < len(s.nodes) {
		s.nodes[s.index].Unpause()
	}
}
