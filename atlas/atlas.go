// The atlas subpackage builds the demo's glyph tile atlas: a single
// image strip with one rasterized glyph per cell, sliced into keyed
// sub-images for the compositor to look up.
package atlas

import "image"
import "image/color"
import "errors"
import "unicode/utf8"

import "golang.org/x/image/font/sfnt"

import "quicksilver-roguelike/text"

// An Atlas maps glyphs to fixed-size sub-images of a shared source
// strip. Atlases are built once during initialization and immutable
// afterwards; the sub-images share the strip's pixel storage instead
// of owning copies.
type Atlas struct {
	strip      *image.RGBA
	cellWidth  int
	cellHeight int
	tiles      map[rune]*image.RGBA
}

// Rasterizes each glyph of the given string into one contiguous
// horizontal strip (white fill, transparent background, one glyph per
// cell) and slices it into per-glyph sub-images. The glyph at index i
// occupies the strip rectangle at horizontal offset i*cellWidth.
//
// The glyph string must not contain duplicates, and both cell
// dimensions must be strictly positive. Any font or rasterization
// failure is returned as an error; there is no partial atlas.
func Build(sfntFont *sfnt.Font, glyphs string, cellWidth, cellHeight int) (*Atlas, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, errors.New("atlas cell dimensions must be strictly positive")
	}

	// render the glyph strip. the fixed advance keeps each glyph inside
	// its own cell even if the font advances disagree with the cell width
	strip := image.NewRGBA(image.Rect(0, 0, utf8.RuneCountInString(glyphs)*cellWidth, cellHeight))
	renderer := text.NewRenderer(sfntFont)
	renderer.SetSizePx(cellHeight)
	renderer.SetColor(color.White)
	renderer.SetFixedAdvance(cellWidth)
	err := renderer.Draw(strip, glyphs, 0, 0)
	if err != nil { return nil, err }

	// slice the strip into per-glyph sub-images
	tiles := make(map[rune]*image.RGBA, utf8.RuneCountInString(glyphs))
	cellIndex := 0
	for _, glyph := range glyphs {
		_, alreadyPresent := tiles[glyph]
		if alreadyPresent {
			return nil, errors.New("duplicate atlas glyph '" + string(glyph) + "'")
		}
		rect := image.Rect(cellIndex*cellWidth, 0, (cellIndex + 1)*cellWidth, cellHeight)
		tiles[glyph] = strip.SubImage(rect).(*image.RGBA)
		cellIndex += 1
	}

	return &Atlas {
		strip: strip,
		cellWidth: cellWidth,
		cellHeight: cellHeight,
		tiles: tiles,
	}, nil
}

// Returns the sub-image for the given glyph, or (nil, false) if the
// glyph was not part of the atlas source string.
func (self *Atlas) Get(glyph rune) (image.Image, bool) {
	tile, found := self.tiles[glyph]
	if !found { return nil, false }
	return tile, true
}

// Returns the number of glyphs in the atlas.
func (self *Atlas) Size() int { return len(self.tiles) }

// Returns the width and height of each atlas cell, in pixels.
func (self *Atlas) CellSize() (int, int) {
	return self.cellWidth, self.cellHeight
}

// Returns the shared source strip. Mostly useful for debugging.
func (self *Atlas) Strip() image.Image { return self.strip }
