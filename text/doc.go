// The text subpackage turns strings into CPU-side images.
//
// It intentionally covers only what the demo needs: single-line text,
// whole-pixel positioning, a solid fill color and an optional fixed
// advance used when rendering glyph strips for the tile atlas. Glyph
// outlines come from [golang.org/x/image/font/sfnt] and are rasterized
// to alpha masks with [golang.org/x/image/vector].
package text
