package cutscene

import "github.com/duskglass/puzzlecore/theater"

// SeqNode runs its children in order. A later child's Begin is never
// called before the previous child's Status is Done (ordering
// guarantee, §5). Only the last child may be begun with
// terminatedByPause set, and only when the SeqNode itself was.
type SeqNode struct {
	baseNode
	nodes             []Node
	index             int
	terminatedByPause bool
}

// NewSeq builds a SeqNode over nodes, executed in order.
func NewSeq(nodes ...Node) *SeqNode {
	return &SeqNode{nodes: nodes}
}

func (s *SeqNode) onLastNode() bool { return s.index+1 == len(s.nodes) }

func (s *SeqNode) Status() Status {
	switch {
	case s.onLastNode():
		return s.nodes[s.index].Status()
	case s.index < len(s.nodes):
		return Active
	default:
		return Done
	}
}

func (s *SeqNode) Begin(t *theater.Theater, terminatedByPause bool) {
	s.terminatedByPause = terminatedByPause
	s.index = 0
	if len(s.nodes) > 0 {
		s.nodes[0].Begin(t, terminatedByPause && len(s.nodes) == 1)
	}
}

func (s *SeqNode) Tick(t *theater.Theater, keepTwiddling bool) bool {
	changed := false
	if s.index >= len(s.nodes) {
		return false
	}
	twiddle := keepTwiddling && s.onLastNode()
	changed = s.nodes[s.index].Tick(t, twiddle)
	for s.nodes[s.index].Status() == Done {
		s.index++
		if s.index >= len(s.nodes) {
			break
		}
		pause := s.terminatedByPause && s.onLastNode()
		s.nodes[s.index].Begin(t, pause)
		changed = true
	}
	return changed
}

func (s *SeqNode) Skip(t *theater.Theater) {
	for s.index < len(s.nodes) {
		s.nodes[s.index].Skip(t)
		s.index++
	}
}

func (s *SeqNode) Reset() {
	for _, n := range s.nodes {
		n.Reset()
	}
	s.index = 0
}

func (s *SeqNode) Unpause() {
	if s.index < len(s.nodes) {
		s.nodes[s.index].Unpause()
	}
}

// ParNode begins and ticks all its children every frame. Its status is
// the minimum (Active<Paused<Twiddling<Done) over its children; the
// keepTwiddling it propagates downward is true when its own caller passed
// true or when any child is at or below Paused, letting a Loop inside one branch keep cycling while a
// Talk in another branch is still pending (§4.2, §9 "Twiddling").
type ParNode struct {
	baseNode
	nodes []Node
}

// NewPar builds a ParNode over nodes, all run concurrently.
func NewPar(nodes ...Node) *ParNode {
	return &ParNode{nodes: nodes}
}

func (p *ParNode) Status() Status {
	status := Done
	for _, n := range p.nodes {
		status = minStatus(status, n.Status())
	}
	return status
}

func (p *ParNode) Begin(t *theater.Theater, terminatedByPause bool) {
	for _, n := range p.nodes {
		n.Begin(t, terminatedByPause)
	}
}

func (p *ParNode) Tick(t *theater.Theater, keepTwiddling bool) bool {
	if !keepTwiddling {
		for _, n := range p.nodes {
			if n.Status() <= Paused {
				keepTwiddling = true
				break
			}
		}
	}
	changed := false
	for _, n := range p.nodes {
		if n.Tick(t, keepTwiddling) {
			changed = true
		}
	}
	return changed
}

func (p *ParNode) Skip(t *theater.Theater) {
	for _, n := range p.nodes {
		n.Skip(t)
	}
}

func (p *ParNode) Reset() {
	for _, n := range p.nodes {
		n.Reset()
	}
}

func (p *ParNode) Unpause() {
	for _, n := range p.nodes {
		n.Unpause()
	}
}

// LoopNode plays its body, then resets and replays it, until it has run
// at least min times and (if max is set) fewer than max times.
// max == nil means unbounded (the Ast's max=-1 sentinel).
type LoopNode struct {
	baseNode
	body      Node
	min       int
	max       *int
	iteration int
}

// NewLoop builds a LoopNode. A nil max means unbounded.
func NewLoop(body Node, min int, max *int) *LoopNode {
	return &LoopNode{body: body, min: min, max: max}
}

func (l *LoopNode) canContinue() bool {
	if l.max == nil {
		return true
	}
	return l.iteration < *l.max
}

func (l *LoopNode) Status() Status {
	switch {
	case l.iteration < l.min:
		return Active
	case l.body.Status() == Active:
		return Twiddling
	default:
		return Done
	}
}

func (l *LoopNode) Begin(t *theater.Theater, _ bool) {
	l.body.Begin(t, false)
}

func (l *LoopNode) Tick(t *theater.Theater, keepTwiddling bool) bool {
	changed := false
	if l.body.Status() != Active {
		return false
	}
	changed = l.body.Tick(t, false)
	if l.body.Status() == Done {
		if l.iteration < l.min || l.max != nil {
			l.iteration++
		}
		if l.iteration < l.min || (keepTwiddling && l.canContinue()) {
			l.body.Reset()
			l.body.Begin(t, false)
			changed = true
		}
	}
	return changed
}

func (l *LoopNode) Skip(t *theater.Theater) {
	l.body.Skip(t)
	l.iteration = l.min
}

func (l *LoopNode) Reset() {
	l.body.Reset()
	l.iteration = 0
}

func (l *LoopNode) Unpause() {
	l.body.Unpause()
}
