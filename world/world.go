// The world subpackage generates the demo's static scene data: the
// bordered rectangular tile map and the fixed entity catalog. Both are
// produced once at startup and never mutated afterwards.
package world

import "image/color"

// Glyphs used by the map and entity generators. All of them must be
// part of the tile atlas source string for the scene to render fully;
// glyphs missing from the atlas are silently skipped at draw time.
const (
	FloorGlyph  = '.'
	WallGlyph   = '#'
	PlayerGlyph = '@'
	GoblinGlyph = 'g'
)

// The fixed palette of the demo.
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
)

// A Tile is one static grid cell of the map, with integer grid
// coordinates, a visual glyph and a tint color.
type Tile struct {
	X, Y  int
	Glyph rune
	Color color.RGBA
}

// An Entity is a grid-positioned actor with a visual glyph and a tint
// color. Movement is out of scope for this demo, but entities are kept
// separate from tiles so they can become dynamic later.
type Entity struct {
	X, Y  int
	Glyph rune
	Color color.RGBA
}

// Generates a width x height map where every cell on the outer ring is
// a wall and every interior cell is floor. Cells are produced in
// column-major order, though the compositor doesn't depend on it.
//
// Degenerate sizes are defined rather than errors: non-positive
// dimensions yield an empty map, and a width or height of one yields
// walls only, since every cell lies on the border.
func GenerateMap(width, height int) []Tile {
	if width <= 0 || height <= 0 { return nil }

	tiles := make([]Tile, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			tile := Tile{ X: x, Y: y, Glyph: FloorGlyph, Color: Black }
			if x == 0 || x == width - 1 || y == 0 || y == height - 1 {
				tile.Glyph = WallGlyph
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// Generates the fixed entity list: two goblins followed by the
// protagonist, appended last. The second return value is the
// protagonist's index within the list, recorded for future
// input-driven movement.
func GenerateEntities() ([]Entity, int) {
	entities := []Entity {
		{ X: 9, Y: 6, Glyph: GoblinGlyph, Color: Red },
		{ X: 2, Y: 4, Glyph: GoblinGlyph, Color: Red },
	}
	playerID := len(entities)
	entities = append(entities, Entity{ X: 5, Y: 3, Glyph: PlayerGlyph, Color: Blue })
	return entities, playerID
}
