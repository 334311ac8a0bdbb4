package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ca-engine/internal/app"
	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
)

// frame is the JSON form of one generation. Rows are ints so they encode
// as arrays of numbers rather than base64 strings.
type frame struct {
	Rule       string  `json:"rule"`
	Generation int     `json:"generation"`
	Population int     `json:"population"`
	Rows       [][]int `json:"rows"`
}

func newFrame(rule string, i int, g *core.Grid) frame {
	rows := make([][]int, g.H)
	for y := range rows {
		rows[y] = make([]int, g.W)
		for x := range rows[y] {
			rows[y][x] = int(g.Get(x, y))
		}
	}
	return frame{Rule: rule, Generation: i, Population: g.Population(), Rows: rows}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca-dump: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	every := flag.Int("every", 1, "print every n-th generation")
	last := flag.Bool("last", false, "print only the final generation")
	asJSON := flag.Bool("json", false, "emit one JSON object per generation")
	flag.Parse()

	run, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := dump(out, run.History, selectFrames(run.History.Len(), *every, *last), *asJSON); err != nil {
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

// selectFrames returns the generation indices to print. The final
// generation is always included.
func selectFrames(n, every int, last bool) []int {
	if n == 0 {
		return nil
	}
	if last {
		return []int{n - 1}
	}
	if every < 1 {
		every = 1
	}
	var idx []int
	for i := 0; i < n; i += every {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

func dump(w io.Writer, h *evolve.History, frames []int, asJSON bool) error {
	enc := json.NewEncoder(w)
	for _, i := range frames {
		g := h.View(i)
		if asJSON {
			if err := enc.Encode(newFrame(h.Rule(), i, g)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "generation %d (%s, population %d)\n%s\n", i, h.Rule(), g.Population(), g); err != nil {
			return err
		}
	}
	return nil
}
