package widgets

import "github.com/duskglass/puzzlecore/gui"

// Paragraph re-exports the shared text-layout type so puzzle code that
// imports widgets for its other views doesn't also need a direct
// import of gui just to lay out a paragraph of text.
type Paragraph = gui.Paragraph

// NewParagraph re-exports gui.NewParagraph.
func NewParagraph(font gui.Font, maxWidth int, align gui.Align, mobile bool, text string) *Paragraph {
	return gui.NewParagraph(font, maxWidth, align, mobile, text)
}
