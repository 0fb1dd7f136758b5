package render

import "image"
import "image/color"
import "errors"

import "quicksilver-roguelike/world"

// Returned by [Compositor.Compose]() when a required text image is not
// available. The frame is aborted; the render loop may simply try
// again on the next tick.
var ErrMissingText = errors.New("required text image is not available")

// GlyphSource resolves glyphs to drawable images. Satisfied by
// atlas.Atlas; tests use simpler map-backed implementations.
type GlyphSource interface {
	Get(glyph rune) (image.Image, bool)
}

// A Compositor draws one full frame: background, text labels, then the
// map tiles and entities on a fixed pixel grid. It holds no mutable
// state, so composing the same inputs twice produces identical output.
type Compositor struct {
	Offset     image.Point // screen-space origin of the tile grid
	CellWidth  int
	CellHeight int
}

// Draws a complete frame onto the target surface.
//
// Labels are required assets: a nil label image aborts the frame with
// [ErrMissingText]. Glyphs missing from the atlas are tolerated and
// skipped silently instead, leaving the cell empty. Entities are drawn
// after all tiles so they visually layer on top.
func (self *Compositor) Compose(target Surface, background color.RGBA, labels []Label, glyphs GlyphSource, tiles []world.Tile, entities []world.Entity) error {
	target.Clear(background)

	for _, label := range labels {
		if label.Image == nil { return ErrMissingText }
		target.Draw(label.Image, label.X, label.Y)
	}

	for _, tile := range tiles {
		self.drawCell(target, glyphs, tile.X, tile.Y, tile.Glyph, tile.Color)
	}
	for _, entity := range entities {
		self.drawCell(target, glyphs, entity.X, entity.Y, entity.Glyph, entity.Color)
	}
	return nil
}

func (self *Compositor) drawCell(target Surface, glyphs GlyphSource, cellX, cellY int, glyph rune, tint color.RGBA) {
	img, found := glyphs.Get(glyph)
	if !found { return } // tolerated miss, the cell simply stays empty

	x := self.Offset.X + cellX*self.CellWidth
	y := self.Offset.Y + cellY*self.CellHeight
	target.DrawBlended(img, x, y, tint)
}
