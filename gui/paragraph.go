package gui

import (
	"strings"

	"github.com/duskglass/puzzlecore/geom"
)

// Align is a paragraph's horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// glyphRun is one laid-out glyph: its (style-resolved) sprite and the
// pen position to draw it at.
type glyphRun struct {
	sprite Sprite
	pos    geom.Point
}

// Paragraph is text laid out to a maximum width using a bitmap Font
// with per-glyph left/right kerning. Layout happens once, at
// construction (paragraphs are compiled into Talk nodes at
// scene-compile time along with everything else), and is immutable
// afterward.
//
// Inline style escapes:
//   $i        switches to the italic face for the following glyphs
//   $r        resets to the roman face
//   $M{a}{b}  substitutes "a" on narrow (mobile) layouts, "b" otherwise
//
// Bitmap fonts carry italics as a separate face, so glyphs are resolved
// against whichever face is in effect at layout time; the escapes may
// occur mid-word.
type Paragraph struct {
	roman     Font
	italic    Font
	maxWidth  int
	align     Align
	lines     [][]glyphRun
	lineWidth []int
	height    int
}

// NewParagraph lays out text against font, wrapping at maxWidth.
// mobile selects which branch of "$M{...}{...}" escapes is kept. The
// italic face falls back to font itself; use NewStyledParagraph when a
// real italic face is available.
func NewParagraph(font Font, maxWidth int, align Align, mobile bool, text string) *Paragraph {
	return NewStyledParagraph(font, font, maxWidth, align, mobile, text)
}

// NewStyledParagraph lays out text with distinct roman and italic
// faces, switched by the "$i"/"$r" escapes.
func NewStyledParagraph(roman, italic Font, maxWidth int, align Align, mobile bool, text string) *Paragraph {
	p := &Paragraph{roman: roman, italic: italic, maxWidth: maxWidth, align: align}
	resolved := resolveMobileEscapes(text, mobile)
	p.layout(resolved)
	return p
}

// Height returns the paragraph's total laid-out height in pixels.
func (p *Paragraph) Height() int { return p.height }

// Draw renders the paragraph with its top-left corner at origin.
func (p *Paragraph) Draw(canvas Canvas, origin geom.Point, color Color) {
	y := origin.Y
	lineHeight := 0
	if p.roman != nil {
		lineHeight = p.roman.LineHeight()
	}
	for i, line := range p.lines {
		offsetX := p.alignOffset(i)
		for _, g := range line {
			canvas.DrawSprite(g.sprite, geom.Pt(origin.X+offsetX+g.pos.X, y+g.pos.Y))
		}
		y += lineHeight
	}
}

func (p *Paragraph) alignOffset(line int) int {
	extra := p.maxWidth - p.lineWidth[line]
	if extra < 0 {
		extra = 0
	}
	switch p.align {
	case AlignCenter:
		return extra / 2
	case AlignRight:
		return extra
	default:
		return 0
	}
}

// styledRune is one rune of source text with the face in effect for it,
// produced by parseStyles after the "$i"/"$r" escapes are consumed.
type styledRune struct {
	r      rune
	italic bool
}

// layout performs word-wrapping and per-glyph kerning, resolving each
// glyph against the face its inline style escapes select. Words are
// split on spaces; a space's own advance is folded into kerning between
// the words it separates, since space width comes from the font's own
// glyph metrics rather than a fixed constant.
func (p *Paragraph) layout(text string) {
	italic := false
	var curLine []glyphRun
	curX := 0
	curWidth := 0
	flushLine := func() {
		p.lines = append(p.lines, curLine)
		p.lineWidth = append(p.lineWidth, curWidth)
		curLine = nil
		curX = 0
		curWidth = 0
	}

	words := splitKeepingSpaces(text)
	for _, word := range words {
		runes, endItalic := parseStyles(word, italic)
		italic = endItalic
		wordWidth := p.measure(runes)
		if curX > 0 && curX+wordWidth > p.maxWidth && hasPrintable(runes) {
			flushLine()
		}
		for _, sr := range runes {
			sprite, left, right, ok := glyphOrZero(p.fontFor(sr.italic), sr.r)
			if !ok {
				continue
			}
			curLine = append(curLine, glyphRun{sprite: sprite, pos: geom.Pt(curX-left, 0)})
			adv := sprite.Width() - left - right
			curX += adv
			curWidth = curX
		}
	}
	flushLine()

	lineHeight := 0
	if p.roman != nil {
		lineHeight = p.roman.LineHeight()
	}
	p.height = lineHeight * len(p.lines)
}

// parseStyles strips the "$i"/"$r" escapes out of word (they may occur
// mid-word), tagging every remaining rune with the face in effect, and
// returns the italic state left for the next word.
func parseStyles(word string, italic bool) ([]styledRune, bool) {
	runes := []rune(word)
	out := make([]styledRune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '$' && i+1 < len(runes) {
			switch runes[i+1] {
			case 'i':
				italic = true
				i++
				continue
			case 'r':
				italic = false
				i++
				continue
			}
		}
		out = append(out, styledRune{r: runes[i], italic: italic})
	}
	return out, italic
}

func hasPrintable(runes []styledRune) bool {
	for _, sr := range runes {
		if sr.r != ' ' {
			return true
		}
	}
	return false
}

func (p *Paragraph) fontFor(italic bool) Font {
	if italic && p.italic != nil {
		return p.italic
	}
	return p.roman
}

func (p *Paragraph) measure(runes []styledRune) int {
	width := 0
	for _, sr := range runes {
		sprite, left, right, ok := glyphOrZero(p.fontFor(sr.italic), sr.r)
		if !ok {
			continue
		}
		width += sprite.Width() - left - right
	}
	return width
}

func glyphOrZero(font Font, r rune) (Sprite, int, int, bool) {
	if font == nil {
		return Sprite{}, 0, 0, false
	}
	return font.Glyph(r)
}

// splitKeepingSpaces splits on word boundaries, keeping leading spaces
// attached to the following word so wrap decisions see each word's full
// printable width.
func splitKeepingSpaces(text string) []string {
	var words []string
	var cur strings.Builder
	for _, r := range text {
		if r == ' ' {
			if cur.Len() > 0 {
				words = append(words, cur.String())
				cur.Reset()
			}
			cur.WriteRune(' ')
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

// resolveMobileEscapes replaces every "$M{a}{b}" with a (mobile) or b
// (otherwise).
func resolveMobileEscapes(text string, mobile bool) string {
	var out strings.Builder
	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], "$M{") {
			rest := text[i+3:]
			a, aLen, ok := readBraced(rest)
			if !ok {
				out.WriteByte(text[i])
				i++
				continue
			}
			rest2 := rest[aLen:]
			if !strings.HasPrefix(rest2, "{") {
				out.WriteByte(text[i])
				i++
				continue
			}
			b, bLen, ok := readBraced(rest2)
			if !ok {
				out.WriteByte(text[i])
				i++
				continue
			}
			if mobile {
				out.WriteString(a)
			} else {
				out.WriteString(b)
			}
			i += 3 + aLen + bLen
			continue
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String()
}

// readBraced reads a "{...}" group from the start of s, returning its
// contents, the number of bytes consumed (including braces), and
// whether a closing brace was found.
func readBraced(s string) (string, int, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", 0, false
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return "", 0, false
	}
	return s[1:end], end + 1, true
}
