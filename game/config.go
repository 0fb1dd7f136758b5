package game

import "image/color"

// Config holds every knob of the demo explicitly, including the
// scaling behavior that used to be ambient process state in older
// renditions of this demo. There are no CLI flags and no environment
// variables; main simply passes [DefaultConfig]() around.
type Config struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int

	// The Mononoki font: https://madmalik.github.io/mononoki/
	// License: SIL Open Font License 1.1
	MononokiFontPath string
	// The Square font: http://strlen.com/square/?s[]=font
	// License: CC BY 3.0 https://creativecommons.org/licenses/by/3.0/deed.en_US
	SquareFontPath string

	AtlasGlyphs string // one atlas key per rune, no duplicates
	CellWidth   int
	CellHeight  int

	MapWidth  int
	MapHeight int

	GridOffsetX int // screen-space origin of the tile grid
	GridOffsetY int

	TitleSizePx   int
	CaptionSizePx int

	Background color.RGBA

	// When enabled, images are drawn with a bilinear filter, which
	// looks better for text if anything ends up scaled.
	SmoothScaling bool
}

// The fixed configuration of the demo.
func DefaultConfig() *Config {
	return &Config {
		WindowTitle:  "Quicksilver Roguelike",
		WindowWidth:  800,
		WindowHeight: 600,

		MononokiFontPath: "mononoki-Regular.ttf",
		SquareFontPath:   "square.ttf",

		AtlasGlyphs: "#@g.",
		CellWidth:   24,
		CellHeight:  24,

		MapWidth:  20,
		MapHeight: 15,

		GridOffsetX: 50,
		GridOffsetY: 150,

		TitleSizePx:   72,
		CaptionSizePx: 20,

		Background: color.RGBA{255, 255, 255, 255},

		SmoothScaling: true,
	}
}
