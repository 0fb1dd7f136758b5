package text

import "image"
import "image/color"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// A Renderer rasterizes single-line strings with a fixed font, pixel
// size and color. Zero-value renderers are not valid; use [NewRenderer]().
//
// Renderers can't be used concurrently, but the demo only ever uses
// them from the initialization phase of the main goroutine.
type Renderer struct {
	font    *sfnt.Font
	buffer  sfnt.Buffer
	size    fixed.Int26_6
	color   color.Color
	advance fixed.Int26_6 // fixed advance override; 0 = font metrics
	rast    maskRasterizer
}

// Creates a new [Renderer] for the given font, with a default size of
// 16px and a white fill color. Panics if the font is nil.
func NewRenderer(sfntFont *sfnt.Font) *Renderer {
	if sfntFont == nil { panic("can't create Renderer with nil font") }
	return &Renderer {
		font:  sfntFont,
		size:  fixed.I(16),
		color: color.White,
	}
}

// Sets the font size, in pixels. Panics if the size is not strictly
// positive.
func (self *Renderer) SetSizePx(sizePx int) {
	if sizePx <= 0 { panic("font size must be strictly positive") }
	self.size = fixed.I(sizePx)
}

// Sets the fill color for subsequent draws.
func (self *Renderer) SetColor(fillColor color.Color) {
	self.color = fillColor
}

// Forces every glyph to advance the pen by the given amount of pixels,
// ignoring the font's own advances and kerning. This is what makes
// glyph strips sliceable at fixed offsets regardless of the font being
// truly monospaced or not. Passing zero restores the font metrics.
func (self *Renderer) SetFixedAdvance(advancePx int) {
	if advancePx < 0 { panic("fixed advance can't be negative") }
	self.advance = fixed.I(advancePx)
}

// Returns the width and height, in pixels, of the rectangle that
// [Renderer.Render]() would use for the given text. The height only
// depends on the font and size, not the text content.
func (self *Renderer) Measure(text string) (int, int, error) {
	metrics, err := self.font.Metrics(&self.buffer, self.size, font.HintingNone)
	if err != nil { return 0, 0, err }
	height := (metrics.Ascent + metrics.Descent).Ceil()

	width := fixed.Int26_6(0)
	prevIndex := sfnt.GlyphIndex(0)
	hasPrev := false
	for _, codePoint := range text {
		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return 0, 0, err }
		advance, err := self.glyphAdvance(index)
		if err != nil { return 0, 0, err }
		if hasPrev && self.advance == 0 {
			kern, err := self.kern(prevIndex, index)
			if err != nil { return 0, 0, err }
			width += kern
		}
		width += advance
		prevIndex, hasPrev = index, true
	}
	return width.Ceil(), height, nil
}

// Rasterizes the given text into a new, tightly sized RGBA image with
// a transparent background. The image origin is (0, 0).
func (self *Renderer) Render(text string) (*image.RGBA, error) {
	width, height, err := self.Measure(text)
	if err != nil { return nil, err }
	target := image.NewRGBA(image.Rect(0, 0, width, height))
	err = self.Draw(target, text, 0, 0)
	if err != nil { return nil, err }
	return target, nil
}

// Rasterizes the given text onto the target image, with the top-left
// corner of the line box at (x, y). The baseline sits at y plus the
// font's ascent. Pixels outside the target bounds are clipped.
func (self *Renderer) Draw(target draw.Image, text string, x, y int) error {
	metrics, err := self.font.Metrics(&self.buffer, self.size, font.HintingNone)
	if err != nil { return err }
	baselineY := y + metrics.Ascent.Ceil()

	fill := image.NewUniform(self.color)
	pen := fixed.I(x)
	prevIndex := sfnt.GlyphIndex(0)
	hasPrev := false
	for _, codePoint := range text {
		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return err }
		if hasPrev && self.advance == 0 {
			kern, err := self.kern(prevIndex, index)
			if err != nil { return err }
			pen += kern
		}

		segments, err := self.font.LoadGlyph(&self.buffer, index, self.size, nil)
		if err != nil { return err }
		mask := self.rast.Rasterize(segments)
		if mask != nil { // spaces and empty glyphs are nil
			rect := mask.Rect.Add(image.Pt(pen.Floor(), baselineY))
			draw.DrawMask(target, rect, fill, image.Point{}, mask, mask.Rect.Min, draw.Over)
		}

		advance, err := self.glyphAdvance(index)
		if err != nil { return err }
		pen += advance
		prevIndex, hasPrev = index, true
	}
	return nil
}

// ---- metric helpers ----

func (self *Renderer) glyphAdvance(index sfnt.GlyphIndex) (fixed.Int26_6, error) {
	if self.advance != 0 { return self.advance, nil }
	return self.font.GlyphAdvance(&self.buffer, index, self.size, font.HintingNone)
}

func (self *Renderer) kern(prev, curr sfnt.GlyphIndex) (fixed.Int26_6, error) {
	kern, err := self.font.Kern(&self.buffer, prev, curr, self.size, font.HintingNone)
	if err == sfnt.ErrNotFound { return 0, nil }
	return kern, err
}
