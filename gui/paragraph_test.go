package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fixedFont is a test font in which every glyph is glyphWidth pixels
// wide with no kerning, so laid-out widths are easy to predict.
type fixedFont struct {
	glyphWidth int
}

func (f fixedFont) Glyph(r rune) (Sprite, int, int, bool) {
	if r == ' ' {
		return NewSprite(ebiten.NewImage(f.glyphWidth, 1)), 0, 0, true
	}
	if r < 'a' || r > 'z' {
		return Sprite{}, 0, 0, false
	}
	return NewSprite(ebiten.NewImage(f.glyphWidth, 10)), 0, 0, true
}

func (f fixedFont) LineHeight() int { return 12 }
func (f fixedFont) Baseline() int   { return 10 }

func TestParagraphWrapsAtMaxWidth(t *testing.T) {
	// Three 4-wide-glyph words of 4 letters each: "word word word" is
	// 4*4 + (1+4)*4 + (1+4)*4 = 56 wide unwrapped, so a 40px max width
	// forces the third word onto a second line.
	p := NewParagraph(fixedFont{glyphWidth: 4}, 40, AlignLeft, false, "word word word")
	if len(p.lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(p.lines))
	}
	if p.Height() != 24 {
		t.Errorf("Height() = %d, want 24 (2 lines * 12)", p.Height())
	}
}

func TestParagraphMobileEscapeSelectsBranch(t *testing.T) {
	narrow := NewParagraph(fixedFont{glyphWidth: 4}, 200, AlignLeft, true, "$M{ab}{abcdef}")
	wide := NewParagraph(fixedFont{glyphWidth: 4}, 200, AlignLeft, false, "$M{ab}{abcdef}")
	if narrow.lineWidth[0] != 8 {
		t.Errorf("mobile branch width = %d, want 8", narrow.lineWidth[0])
	}
	if wide.lineWidth[0] != 24 {
		t.Errorf("desktop branch width = %d, want 24", wide.lineWidth[0])
	}
}

func TestStyledParagraphSwitchesFaceMidWord(t *testing.T) {
	roman := fixedFont{glyphWidth: 4}
	italic := fixedFont{glyphWidth: 6}
	// "ab$icd$ref": two roman, two italic, two roman glyphs; the
	// escapes occur mid-word and must not split it.
	p := NewStyledParagraph(roman, italic, 200, AlignLeft, false, "ab$icd$ref")
	if len(p.lines) != 1 || len(p.lines[0]) != 6 {
		t.Fatalf("laid out %d lines / %d glyphs, want 1 line of 6", len(p.lines), len(p.lines[0]))
	}
	if got := p.lineWidth[0]; got != 4*4+2*6 {
		t.Errorf("line width = %d, want 28 (four 4-wide roman + two 6-wide italic glyphs)", got)
	}
	if w := p.lines[0][2].sprite.Width(); w != 6 {
		t.Errorf("third glyph width = %d, want 6 (italic face)", w)
	}
	if w := p.lines[0][4].sprite.Width(); w != 4 {
		t.Errorf("fifth glyph width = %d, want 4 (back to the roman face)", w)
	}
}

func TestParagraphItalicStateCarriesAcrossWords(t *testing.T) {
	roman := fixedFont{glyphWidth: 4}
	italic := fixedFont{glyphWidth: 6}
	p := NewStyledParagraph(roman, italic, 200, AlignLeft, false, "$iab cd")
	// All four letter glyphs italic; the inter-word space uses the
	// italic face too since no $r intervened.
	if got := p.lineWidth[0]; got != 5*6 {
		t.Errorf("line width = %d, want 30 (four letters plus one space, all 6-wide italic)", got)
	}
}
