package render

import "image"
import "image/color"
import "image/draw"

var _ Surface = (*ImageSurface)(nil)

// ImageSurface is a software [Surface] backed by a plain RGBA image.
// It's the reference implementation used by the tests, and can render
// frames without any window or GPU at all.
type ImageSurface struct {
	rgba *image.RGBA
}

// Creates a software surface of the given pixel size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{ rgba: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

// Returns the underlying image. The returned image remains owned by
// the surface and changes with every new draw.
func (self *ImageSurface) RGBA() *image.RGBA { return self.rgba }

// Satisfies the [Surface] interface.
func (self *ImageSurface) Size() (int, int) {
	bounds := self.rgba.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Satisfies the [Surface] interface.
func (self *ImageSurface) Clear(clr color.RGBA) {
	draw.Draw(self.rgba, self.rgba.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Satisfies the [Surface] interface. Draws the image over the surface
// with its top-left corner at (x, y), clipped to the surface bounds.
func (self *ImageSurface) Draw(img image.Image, x, y int) {
	bounds := img.Bounds()
	rect := image.Rect(x, y, x + bounds.Dx(), y + bounds.Dy())
	draw.Draw(self.rgba, rect, img, bounds.Min, draw.Over)
}

// Satisfies the [Surface] interface. Like [ImageSurface.Draw](), but
// the source colors are modulated by the tint before blending, so a
// white glyph comes out in the tint color.
func (self *ImageSurface) DrawBlended(img image.Image, x, y int, tint color.RGBA) {
	bounds := img.Bounds()
	targetRect := image.Rect(x, y, x + bounds.Dx(), y + bounds.Dy())
	targetRect = targetRect.Intersect(self.rgba.Bounds())
	if targetRect.Empty() { return }

	shiftX := bounds.Min.X - x
	shiftY := bounds.Min.Y - y
	for ty := targetRect.Min.Y; ty < targetRect.Max.Y; ty++ {
		for tx := targetRect.Min.X; tx < targetRect.Max.X; tx++ {
			sr, sg, sb, sa := img.At(tx + shiftX, ty + shiftY).RGBA()
			if sa == 0 { continue }

			// modulate the premultiplied source by the tint
			sr = sr*uint32(tint.R)/255
			sg = sg*uint32(tint.G)/255
			sb = sb*uint32(tint.B)/255
			sa = sa*uint32(tint.A)/255

			// standard source-over blending
			dr, dg, db, da := self.rgba.At(tx, ty).RGBA()
			inverseAlpha := 0xFFFF - sa
			self.rgba.SetRGBA(tx, ty, color.RGBA {
				R: uint8((sr + dr*inverseAlpha/0xFFFF) >> 8),
				G: uint8((sg + dg*inverseAlpha/0xFFFF) >> 8),
				B: uint8((sb + db*inverseAlpha/0xFFFF) >> 8),
				A: uint8((sa + da*inverseAlpha/0xFFFF) >> 8),
			})
		}
	}
}
