package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"ca-engine/internal/app"
	"ca-engine/internal/core"
	"ca-engine/internal/playback"

	"github.com/gdamore/tcell/v2"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca-term: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	run, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	player := playback.New(run.History)
	player.Loop = cfg.Loop

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	if err := play(screen, player, cfg.TPS); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

// play runs the event loop until the user quits.
func play(screen tcell.Screen, player *playback.Player, tps int) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	step := core.NewFixedStep(tps)
	ticker := time.NewTicker(step.Interval() / 2)
	defer ticker.Stop()

	paused := false
	draw(screen, player, paused)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					player.Step()
				case ev.Rune() == 'b':
					paused = true
					player.Back()
				case ev.Rune() == 'r':
					player.Reset()
				}
			}
			draw(screen, player, paused)
		case <-ticker.C:
			if paused || !step.ShouldStep() {
				continue
			}
			if player.Done() && !player.Loop {
				continue
			}
			player.Step()
			draw(screen, player, paused)
		}
	}
}

// draw paints the current generation, two terminal columns per cell, with a
// status line underneath.
func draw(screen tcell.Screen, player *playback.Player, paused bool) {
	screen.Clear()
	g := player.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			style := deadStyle
			if g.Get(x, y) == core.Alive {
				style = aliveStyle
			}
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	state := "playing"
	if paused {
		state = "paused"
	}
	status := fmt.Sprintf("%s  gen %d  pop %d  [%s]  space pause  n step  b back  r restart  q quit",
		player.Name(), player.Generation(), g.Population(), state)
	for i, c := range status {
		screen.SetContent(i, g.H, c, nil, statusStyle)
	}
	screen.Show()
}
