//go:build ebiten

package ui

import (
	"image/color"

	"ca-engine/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minGridScale is the smallest cell size at which grid lines stay readable.
const minGridScale = 4

// Overlay draws optional cell grid lines on top of the simulation view.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showGrid: scale >= minGridScale}
}

// Update toggles the grid lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.scale < minGridScale {
		return
	}
	size := o.sim.Size()
	s := float32(o.scale)
	w, h := float32(size.W)*s, float32(size.H)*s
	line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	for x := 0; x <= size.W; x++ {
		fx := float32(x) * s
		vector.StrokeLine(screen, fx, 0, fx, h, 1, line, false)
	}
	for y := 0; y <= size.H; y++ {
		fy := float32(y) * s
		vector.StrokeLine(screen, 0, fy, w, fy, 1, line, false)
	}
}
