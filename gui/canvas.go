package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskglass/puzzlecore/geom"
)

// Canvas is the draw target passed to Element.Draw. It wraps an
// *ebiten.Image the way willow's render pipeline wraps a *ebiten.Image
// screen target, but exposes only the handful of primitive operations
// the theater and widgets need: sprite blits, rect fills, and a clip
// rectangle for subregions.
type Canvas struct {
	target *ebiten.Image
	rect   geom.Rect
}

// NewCanvas wraps target as a full-frame Canvas of the given size.
func NewCanvas(target *ebiten.Image, width, height int) Canvas {
	return Canvas{target: target, rect: geom.NewRect(0, 0, width, height)}
}

// Rect returns the canvas's own bounds in its local coordinate space.
func (c Canvas) Rect() geom.Rect { return c.rect }

// Subcanvas returns a canvas over a sub-region of c, in region-local
// coordinates. Used by widgets that own a rectangular slice of the
// screen (e.g. a puzzle's board within the overall frame).
func (c Canvas) Subcanvas(region geom.Rect) Canvas {
	abs := region.Translate(c.rect.X, c.rect.Y)
	sub := c.target.SubImage(image.Rect(abs.Left(), abs.Top(), abs.Right(), abs.Bottom())).(*ebiten.Image)
	return Canvas{target: sub, rect: geom.NewRect(0, 0, region.Width, region.Height)}
}

// DrawSprite blits sprite with its top-left corner at p.
func (c Canvas) DrawSprite(sprite Sprite, p geom.Point) {
	if sprite.IsZero() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	c.target.DrawImage(sprite.Image(), &op)
}

// DrawSpriteTinted blits sprite tinted by tint, used for dialogue bubble
// styles and dimmed/disabled widget states.
func (c Canvas) DrawSpriteTinted(sprite Sprite, p geom.Point, tint Color, alpha float64) {
	if sprite.IsZero() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, float32(alpha))
	c.target.DrawImage(sprite.Image(), &op)
}

// DrawBackground blits a full-frame background, filling the canvas with
// its color first.
func (c Canvas) DrawBackground(bg Background) {
	c.FillRect(bg.Color, c.rect)
	if !bg.Sprite.IsZero() {
		c.DrawSprite(bg.Sprite, geom.Point{})
	}
}

// whitePixel is a 1x1 white image reused for all solid-color fills,
// tinted per call via DrawImageOptions.ColorScale.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// FillRect fills r (in canvas-local coordinates) with a solid color.
func (c Canvas) FillRect(col Color, r geom.Rect) {
	clipped, ok := r.Intersection(c.rect)
	if !ok {
		return
	}
	clipped = clipped.Translate(-c.rect.X, -c.rect.Y)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(clipped.Width), float64(clipped.Height))
	op.GeoM.Translate(float64(clipped.X), float64(clipped.Y))
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	c.target.DrawImage(whitePixel, &op)
}
