package cutscene

import (
	"github.com/duskglass/puzzlecore/gui"
	"github.com/duskglass/puzzlecore/theater"
)

// TalkNode sets an actor's speech bubble. When begun with
// terminatedByPause true — meaning no scene node follows it in any
// ancestor Seq still in progress — it enters Paused and blocks scene
// progress until the user clicks (Unpause). Otherwise it skips
// immediately: a dialogue with more work after it never blocks.
type TalkNode struct {
	slot   int
	speech gui.Speech
	status Status
}

// NewTalk builds a TalkNode installing speech on the actor at slot.
func NewTalk(slot int, speech gui.Speech) *TalkNode {
	return &TalkNode{slot: slot, speech: speech, status: Active}
}

func (n *TalkNode) Status() Status { return n.status }

func (n *TalkNode) Begin(t *theater.Theater, terminatedByPause bool) {
	if terminatedByPause {
		n.status = Paused
		speech := n.speech
		t.SetActorSpeech(n.slot, &speech)
	} else {
		n.Skip(t)
	}
}

func (n *TalkNode) Tick(t *theater.Theater, _ bool) bool {
	if n.status == Twiddling {
		n.Skip(t)
		return true
	}
	return false
}

func (n *TalkNode) Skip(t *theater.Theater) {
	t.ClearActorSpeech(n.slot)
	n.status = Done
}

func (n *TalkNode) Reset() { n.status = Active }

func (n *TalkNode) Unpause() {
	if n.status == Paused {
		n.status = Twiddling
	}
}
