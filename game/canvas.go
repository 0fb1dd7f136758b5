package game

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "quicksilver-roguelike/render"

var _ render.Surface = (*canvas)(nil)

// canvas implements [render.Surface] on top of the frame's
// *ebiten.Image. CPU-side images are uploaded to the GPU once and
// memoized per source image, so the per-frame draw pass never
// re-converts anything.
type canvas struct {
	screen    *ebiten.Image
	filter    ebiten.Filter
	converted map[image.Image]*ebiten.Image
}

func newCanvas(smoothScaling bool) *canvas {
	filter := ebiten.FilterNearest
	if smoothScaling { filter = ebiten.FilterLinear }
	return &canvas {
		filter: filter,
		converted: make(map[image.Image]*ebiten.Image),
	}
}

func (self *canvas) convert(img image.Image) *ebiten.Image {
	converted, found := self.converted[img]
	if !found {
		converted = ebiten.NewImageFromImage(img)
		self.converted[img] = converted
	}
	return converted
}

// Satisfies the [render.Surface] interface.
func (self *canvas) Size() (int, int) { return self.screen.Size() }

// Satisfies the [render.Surface] interface.
func (self *canvas) Clear(clr color.RGBA) { self.screen.Fill(clr) }

// Satisfies the [render.Surface] interface.
func (self *canvas) Draw(img image.Image, x, y int) {
	opts := &ebiten.DrawImageOptions{}
	opts.Filter = self.filter
	opts.GeoM.Translate(float64(x), float64(y))
	self.screen.DrawImage(self.convert(img), opts)
}

// Satisfies the [render.Surface] interface. The tint is applied as a
// color scale, so white glyph pixels come out in the tint color.
func (self *canvas) DrawBlended(img image.Image, x, y int, tint color.RGBA) {
	opts := &ebiten.DrawImageOptions{}
	opts.Filter = self.filter
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorM.Scale(
		float64(tint.R)/255.0,
		float64(tint.G)/255.0,
		float64(tint.B)/255.0,
		float64(tint.A)/255.0,
	)
	self.screen.DrawImage(self.convert(img), opts)
}
