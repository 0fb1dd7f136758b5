package text

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// maskRasterizer wraps [golang.org/x/image/vector.Rasterizer] to turn
// glyph outlines into alpha masks. Outline coordinates are y-down and
// relative to the glyph origin on the baseline; the x/image vector
// rasterizer only accepts coordinates in the positive quadrant, so the
// outline is shifted there during tracing and the resulting mask rect
// is shifted back afterwards.
type maskRasterizer struct {
	rast vector.Rasterizer
}

// Rasterizes the given outline to an alpha mask whose Rect is relative
// to the glyph origin. Returns nil if the outline contains no active
// lines or curves (e.g. space glyphs).
func (self *maskRasterizer) Rasterize(outline sfnt.Segments) *image.Alpha {
	hasContent := false
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		hasContent = true
		break
	}
	if !hasContent { return nil }

	// compute mask bounds at whole pixels
	fbounds := outline.Bounds()
	minX := floorUnits(fbounds.Min.X)
	minY := floorUnits(fbounds.Min.Y)
	width  := (fbounds.Max.X - minX).Ceil()
	height := (fbounds.Max.Y - minY).Ceil()

	// prepare rasterizer and trace the outline
	self.rast.Reset(width, height)
	self.rast.DrawOp = draw.Src
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.rast.MoveTo(
				unitsToFloat32(segment.Args[0].X - minX),
				unitsToFloat32(segment.Args[0].Y - minY),
			)
		case sfnt.SegmentOpLineTo:
			self.rast.LineTo(
				unitsToFloat32(segment.Args[0].X - minX),
				unitsToFloat32(segment.Args[0].Y - minY),
			)
		case sfnt.SegmentOpQuadTo:
			self.rast.QuadTo(
				unitsToFloat32(segment.Args[0].X - minX),
				unitsToFloat32(segment.Args[0].Y - minY),
				unitsToFloat32(segment.Args[1].X - minX),
				unitsToFloat32(segment.Args[1].Y - minY),
			)
		case sfnt.SegmentOpCubeTo:
			self.rast.CubeTo(
				unitsToFloat32(segment.Args[0].X - minX),
				unitsToFloat32(segment.Args[0].Y - minY),
				unitsToFloat32(segment.Args[1].X - minX),
				unitsToFloat32(segment.Args[1].Y - minY),
				unitsToFloat32(segment.Args[2].X - minX),
				unitsToFloat32(segment.Args[2].Y - minY),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}

	// allocate the glyph mask and draw into it
	mask := image.NewAlpha(self.rast.Bounds())

	// since the source texture is a uniform (an image that returns the
	// same color for any coordinate), the value of the point at which we
	// want to start sampling the texture (the fourth parameter) is
	// unimportant.
	self.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask back to glyph-origin-relative coordinates
	mask.Rect = mask.Rect.Add(image.Pt(minX.Floor(), minY.Floor()))
	return mask
}

// Floors the given fixed point value to a whole pixel amount.
// Bit clearing works for negative values too in two's complement.
func floorUnits(value fixed.Int26_6) fixed.Int26_6 {
	return value &^ 0x3F
}

func unitsToFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}
