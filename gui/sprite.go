package gui

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is an immutable reference to a decoded image with known
// dimensions. Sprites are cheaply shareable: the same Sprite value is
// aliased across actors and scenes, and producers (atlases, caches) are
// long-lived. Decoding itself is an external concern; Sprite only wraps
// the already-decoded image.
type Sprite struct {
	image  *ebiten.Image
	width  int
	height int
}

// NewSprite wraps an already-decoded image as a Sprite.
func NewSprite(image *ebiten.Image) Sprite {
	w, h := 0, 0
	if image != nil {
		b := image.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	return Sprite{image: image, width: w, height: h}
}

// Width and Height return the sprite's pixel dimensions.
func (s Sprite) Width() int  { return s.width }
func (s Sprite) Height() int { return s.height }

// Image returns the underlying decoded image for drawing. Callers must
// not mutate it.
func (s Sprite) Image() *ebiten.Image { return s.image }

// IsZero reports whether s is the zero Sprite (no image).
func (s Sprite) IsZero() bool { return s.image == nil }
