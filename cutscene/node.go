package cutscene

import "github.com/duskglass/puzzlecore/theater"

// Node is the capability every compiled scene node implements (§4.2).
// Composite nodes (Seq, Par, Loop) hold child Nodes directly as plain
// interface values, with no separate node arena to manage.
type Node interface {
	// Status reports the node's current progress. Defaults to Done for
	// leaves that are always instantaneous.
	Status() Status

	// Begin is called once when the node becomes current.
	// terminatedByPause is true only when no scene node follows this one
	// in any ancestor Seq still in progress — see talk.go for why this
	// matters.
	Begin(t *theater.Theater, terminatedByPause bool)

	// Tick is called once per frame while the node is current. It
	// reports whether the theater visibly changed.
	Tick(t *theater.Theater, keepTwiddling bool) bool

	// Skip fast-forwards the node to Done, applying any net side effect.
	// A skip-then-resume must never produce different visible state
	// than letting the node run to completion (§5, cancellation).
	Skip(t *theater.Theater)

	// Reset returns the node to its initial state; used by Loop between
	// iterations.
	Reset()

	// Unpause is called on a Paused node when the user clicks past a
	// dialogue.
	Unpause()
}

// baseNode supplies the default (instantaneous, non-pausing) behavior
// so leaf nodes only need to override what's meaningful for them.
type baseNode struct{}

func (baseNode) Status() Status                                   { return Done }
func (baseNode) Begin(t *theater.Theater, terminatedByPause bool) {}
func (baseNode) Tick(t *theater.Theater, keepTwiddling bool) bool { return false }
func (baseNode) Skip(t *theater.Theater)                          {}
func (baseNode) Reset()                                           {}
func (baseNode) Unpause()                                         {}
