package gui

// Element is the drawable, interactive-region capability (§4.5): it
// draws against some external state S and turns events into an
// Action[A]. The theater-driven Scene runtime in package cutscene
// implements it; scene nodes use cutscene.Node instead, and the widgets
// in package widgets use a concrete Draw/HandleEvent shape without the
// state parameter.
type Element[S any, A any] interface {
	Draw(state *S, canvas Canvas)
	HandleEvent(event Event, state *S) Action[A]
}

// Elements is a slice of same-typed elements, handling events
// front-to-back and drawing back-to-front: event propagation stops at
// the first child whose Action has Stop set, and the first (frontmost)
// element draws on top.
type Elements[S any, A any] []Element[S, A]

// Draw renders back-to-front: index 0 last, so it ends up on top.
func (es Elements[S, A]) Draw(state *S, canvas Canvas) {
	for i := len(es) - 1; i >= 0; i-- {
		es[i].Draw(state, canvas)
	}
}

// HandleEvent dispatches front-to-back (index 0 first), merging actions
// and stopping at the first child that reports Stop.
func (es Elements[S, A]) HandleEvent(event Event, state *S) Action[A] {
	action := Ignore[A]()
	for _, e := range es {
		action.Merge(e.HandleEvent(event, state))
		if action.ShouldStop() {
			break
		}
	}
	return action
}
