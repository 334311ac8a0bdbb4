package main

import (
	"testing"

	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
	"ca-engine/internal/playback"
	"ca-engine/internal/rule"

	"github.com/gdamore/tcell/v2"
)

func TestDrawPaintsLiveCells(t *testing.T) {
	g, err := core.NewGrid(4, 3, core.Dead)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 2, core.Alive); err != nil {
		t.Fatal(err)
	}
	hist, err := evolve.Run(g, rule.FromTable(rule.Table{}), 0)
	if err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 10)

	draw(screen, playback.New(hist), false)

	for _, x := range []int{2, 3} {
		_, _, style, _ := screen.GetContent(x, 2)
		if _, bg, _ := style.Decompose(); bg != tcell.ColorWhite {
			t.Fatalf("cell column %d background = %v, want white", x, bg)
		}
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorBlack {
		t.Fatalf("dead cell background = %v, want black", bg)
	}
	if r, _, _, _ := screen.GetContent(0, 3); r != 'r' {
		t.Fatalf("status line starts with %q, want rule name", r)
	}
}
