// The render subpackage contains the per-frame compositing pass and
// the frame buffer abstraction it draws through. The actual windowing
// backend lives in the game package; a software implementation backed
// by a plain RGBA image is provided here for tests and headless use.
package render

import "image"
import "image/color"

// Surface is the frame buffer collaborator the compositor draws to.
// Implementations report their pixel size, clear to a solid color and
// draw images at whole-pixel positions, either as-is or modulated by
// a tint color.
type Surface interface {
	Size() (width, height int)
	Clear(clr color.RGBA)
	Draw(img image.Image, x, y int)
	DrawBlended(img image.Image, x, y int, tint color.RGBA)
}

// A Label is a pre-rasterized text image with a fixed screen position
// for its top-left corner.
type Label struct {
	Image image.Image
	X, Y  int
}

// Creates a label horizontally centered within surfaceWidth, with its
// vertical center at centerY. Used for the title.
func CenteredLabel(img image.Image, surfaceWidth, centerY int) Label {
	if img == nil { return Label{} }
	bounds := img.Bounds()
	return Label {
		Image: img,
		X: (surfaceWidth - bounds.Dx())/2,
		Y: centerY - bounds.Dy()/2,
	}
}

// Creates a label with its top-left corner at (x, y). Used for the
// attribution captions.
func AnchoredLabel(img image.Image, x, y int) Label {
	if img == nil { return Label{} }
	return Label{ Image: img, X: x, Y: y }
}
