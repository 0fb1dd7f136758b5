// The game subpackage owns the demo's state: the glyph atlas, the map,
// the entity list and the pre-rasterized text images. Everything is
// loaded synchronously in [New](), so the per-frame draw pass performs
// no I/O and touches only immutable data.
package game

import "image"
import "errors"

import "github.com/hajimehoshi/ebiten/v2"

import "quicksilver-roguelike/atlas"
import "quicksilver-roguelike/font"
import "quicksilver-roguelike/render"
import "quicksilver-roguelike/text"
import "quicksilver-roguelike/world"

const (
	titleCenterY       = 40 // vertical center of the title label
	captionLeftMargin  = 2
	firstCaptionOffset = 60 // from the bottom edge
	captionSpacing     = 30

	mononokiInfoText = "Mononoki font by Matthias Tellen, terms: SIL Open Font License 1.1"
	squareInfoText   = "Square font by Wouter Van Oortmerssen, terms: CC BY 3.0"
)

var _ ebiten.Game = (*Game)(nil)

// Game implements [ebiten.Game] for the demo. Create it with [New]().
type Game struct {
	config     *Config
	compositor render.Compositor
	glyphs     *atlas.Atlas
	tiles      []world.Tile
	entities   []world.Entity
	playerID   int
	labels     []render.Label
	canvas     *canvas
	frameErr   error
}

// Loads both fonts, rasterizes the title and caption images, builds
// the tile atlas and generates the map and entity list. Every failure
// here is fatal for the demo: there is no partial or degraded startup.
func New(config *Config) (*Game, error) {
	// parse fonts (the caption font doubles as the title font)
	mononoki, _, err := font.ParseFromPath(config.MononokiFontPath)
	if err != nil { return nil, err }
	square, _, err := font.ParseFromPath(config.SquareFontPath)
	if err != nil { return nil, err }

	// fail fast if the tile font can't cover the atlas glyph set
	missing, err := font.GetMissingRunes(square, config.AtlasGlyphs)
	if err != nil { return nil, err }
	if len(missing) > 0 {
		return nil, errors.New("tile font is missing glyphs: " + string(missing))
	}

	// rasterize the title and the attribution captions
	renderer := text.NewRenderer(mononoki)
	renderer.SetColor(world.Black)
	renderer.SetSizePx(config.TitleSizePx)
	title, err := renderer.Render(config.WindowTitle)
	if err != nil { return nil, err }
	renderer.SetSizePx(config.CaptionSizePx)
	mononokiInfo, err := renderer.Render(mononokiInfoText)
	if err != nil { return nil, err }
	squareInfo, err := renderer.Render(squareInfoText)
	if err != nil { return nil, err }

	// build the tile atlas
	glyphs, err := atlas.Build(square, config.AtlasGlyphs, config.CellWidth, config.CellHeight)
	if err != nil { return nil, err }

	// generate the static scene data
	tiles := world.GenerateMap(config.MapWidth, config.MapHeight)
	entities, playerID := world.GenerateEntities()

	return &Game {
		config: config,
		compositor: render.Compositor {
			Offset:     image.Pt(config.GridOffsetX, config.GridOffsetY),
			CellWidth:  config.CellWidth,
			CellHeight: config.CellHeight,
		},
		glyphs:   glyphs,
		tiles:    tiles,
		entities: entities,
		playerID: playerID,
		labels: []render.Label {
			render.CenteredLabel(title, config.WindowWidth, titleCenterY),
			render.AnchoredLabel(mononokiInfo, captionLeftMargin, config.WindowHeight - firstCaptionOffset),
			render.AnchoredLabel(squareInfo, captionLeftMargin, config.WindowHeight - firstCaptionOffset + captionSpacing),
		},
		canvas: newCanvas(config.SmoothScaling),
	}, nil
}

// Satisfies the [ebiten.Game] interface. The demo has no per-tick
// simulation; everything interesting happens in [Game.Draw]().
func (self *Game) Update() error { return nil }

// Satisfies the [ebiten.Game] interface. Composes the full frame. A
// failed frame (see [Game.LastFrameError]) leaves the background
// cleared and is simply retried on the next tick.
func (self *Game) Draw(screen *ebiten.Image) {
	self.canvas.screen = screen
	self.frameErr = self.compositor.Compose(
		self.canvas, self.config.Background, self.labels,
		self.glyphs, self.tiles, self.entities,
	)
}

// Satisfies the [ebiten.Game] interface. The demo uses a fixed logical
// resolution; Ebitengine scales it to the actual window size.
func (self *Game) Layout(int, int) (int, int) {
	return self.config.WindowWidth, self.config.WindowHeight
}

// Returns the error of the most recently composed frame, or nil.
// Frame errors are recoverable (the next tick retries), so they are
// exposed here instead of aborting the game loop.
func (self *Game) LastFrameError() error { return self.frameErr }

// Returns the index of the protagonist within the entity list. Kept
// around for future input-driven movement.
func (self *Game) PlayerID() int { return self.playerID }
