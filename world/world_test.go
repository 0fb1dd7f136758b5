package world

import "testing"

func TestGenerateMapSize(t *testing.T) {
	tests := []struct {
		width, height int
		expectedLen   int
	}{
		{20, 15, 300}, {2, 2, 4}, {3, 2, 6}, {2, 9, 18},
		{1, 5, 5}, {5, 1, 5}, {1, 1, 1},
		{0, 5, 0}, {5, 0, 0}, {-3, 4, 0},
	}

	for i, test := range tests {
		tiles := GenerateMap(test.width, test.height)
		if len(tiles) != test.expectedLen {
			str := "test #%d: %dx%d expected %d tiles, but got %d"
			t.Fatalf(str, i, test.width, test.height, test.expectedLen, len(tiles))
		}
	}
}

func TestGenerateMapBorders(t *testing.T) {
	for _, size := range [][2]int{ {20, 15}, {2, 2}, {3, 7}, {1, 4} } {
		width, height := size[0], size[1]
		tiles := GenerateMap(width, height)

		seen := make(map[[2]int]bool, len(tiles))
		for _, tile := range tiles {
			if seen[[2]int{tile.X, tile.Y}] {
				t.Fatalf("%dx%d: duplicate tile at (%d, %d)", width, height, tile.X, tile.Y)
			}
			seen[[2]int{tile.X, tile.Y}] = true

			onRing := tile.X == 0 || tile.X == width - 1 || tile.Y == 0 || tile.Y == height - 1
			if onRing && tile.Glyph != WallGlyph {
				t.Fatalf("%dx%d: expected wall at (%d, %d)", width, height, tile.X, tile.Y)
			}
			if !onRing && tile.Glyph != FloorGlyph {
				t.Fatalf("%dx%d: expected floor at (%d, %d)", width, height, tile.X, tile.Y)
			}
			if tile.Color != Black {
				t.Fatalf("%dx%d: expected black tint at (%d, %d)", width, height, tile.X, tile.Y)
			}
		}
	}
}

func TestGenerateMapOrder(t *testing.T) {
	// column-major: outer loop over x, inner loop over y
	tiles := GenerateMap(3, 2)
	expected := [][2]int{ {0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1} }
	for i, pos := range expected {
		if tiles[i].X != pos[0] || tiles[i].Y != pos[1] {
			str := "tile #%d: expected (%d, %d), got (%d, %d)"
			t.Fatalf(str, i, pos[0], pos[1], tiles[i].X, tiles[i].Y)
		}
	}
}

func TestGenerateEntities(t *testing.T) {
	entities, playerID := GenerateEntities()
	expected := []Entity {
		{ X: 9, Y: 6, Glyph: GoblinGlyph, Color: Red },
		{ X: 2, Y: 4, Glyph: GoblinGlyph, Color: Red },
		{ X: 5, Y: 3, Glyph: PlayerGlyph, Color: Blue },
	}

	if len(entities) != len(expected) {
		t.Fatalf("expected %d entities, got %d", len(expected), len(entities))
	}
	for i, entity := range expected {
		if entities[i] != entity {
			t.Fatalf("entity #%d: expected %v, got %v", i, entity, entities[i])
		}
	}
	if playerID != len(entities) - 1 {
		t.Fatalf("expected player id %d, got %d", len(entities) - 1, playerID)
	}

	// deterministic output on every call
	again, againID := GenerateEntities()
	if againID != playerID { t.Fatal("expected stable player id") }
	for i, entity := range entities {
		if again[i] != entity { t.Fatalf("entity #%d changed between calls", i) }
	}
}
