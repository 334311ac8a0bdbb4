//go:build ebiten

package app

import (
	"image/color"
	"math"

	"ca-engine/internal/playback"
	"ca-engine/internal/render"
	"ca-engine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the pixel width of the parameter panel.
const hudWidth = 220

// Game adapts a history player to the ebiten.Game interface.
type Game struct {
	player  *playback.Player
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided player.
func New(player *playback.Player, scale int) *Game {
	size := player.Size()
	return &Game{
		player:   player,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(player, scale),
		hud:      ui.NewHUD(player, hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Reset rewinds playback to the initial generation.
func (g *Game) Reset() {
	g.player.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.paused = true
		g.player.Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.paused = true
		g.player.Seek(math.MaxInt)
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.player.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.player.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.player.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.player.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
