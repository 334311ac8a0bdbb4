package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
	"ca-engine/internal/pattern"
	"ca-engine/internal/rule"
)

type scenario struct {
	width, height int
	steps         int
	boundary      core.Boundary
	random        bool
	seed          int64
	density       float64
}

type scenarioResult struct {
	rule        string
	population  int
	peak        int
	cycleStart  int
	period      int
	cycleFound  bool
	extinctStep int
}

func (r scenarioResult) String() string {
	cycle := "none"
	if r.cycleFound {
		cycle = fmt.Sprintf("start=%d period=%d", r.cycleStart, r.period)
	}
	extinct := "-"
	if r.extinctStep >= 0 {
		extinct = strconv.Itoa(r.extinctStep)
	}
	return fmt.Sprintf("%-14s pop=%-6d peak=%-6d extinct=%-4s cycle=%s", r.rule, r.population, r.peak, extinct, cycle)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("rule-sweep: ")

	steps := flag.Int("steps", 128, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 1, "grid height (1 evolves a single elementary row)")
	boundary := flag.String("boundary", "wrap", "boundary policy: zero, wrap or clamp")
	rules := flag.String("rules", "", "comma separated rules; empty sweeps all 256 elementary rules")
	random := flag.Bool("random", false, "seed with a random soup instead of a single centre cell")
	seed := flag.Int64("seed", 1337, "seed for -random")
	density := flag.Float64("density", 0.5, "live cell probability for -random")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	b, err := core.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	sc := scenario{width: *width, height: *height, steps: *steps, boundary: b, random: *random, seed: *seed, density: *density}

	var set []rule.Rule
	if *rules == "" {
		for n := 0; n <= 255; n++ {
			r, _ := rule.Elementary(n)
			set = append(set, r)
		}
	} else {
		for _, s := range strings.Split(*rules, ",") {
			r, err := rule.Parse(s)
			if err != nil {
				log.Fatal(err)
			}
			set = append(set, r)
		}
	}

	fmt.Printf("Sweeping %d rules (%d workers, %d steps, %dx%d %s)\n", len(set), *workers, *steps, *width, *height, b)

	jobs := make(chan rule.Rule)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				res, err := runScenario(sc, r)
				if err != nil {
					log.Printf("%s: %v", r.Name(), err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, r := range set {
			jobs <- r
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	rank(all)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%3d) %s\n", i+1, all[i])
	}
}

// rank orders results with the most long-lived behaviour first: rules that
// never cycle, then by longest cycle, then by final population.
func rank(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.cycleFound != b.cycleFound {
			return !a.cycleFound
		}
		if a.period != b.period {
			return a.period > b.period
		}
		if a.population != b.population {
			return a.population > b.population
		}
		return a.rule < b.rule
	})
}

func runScenario(sc scenario, r rule.Rule) (scenarioResult, error) {
	g, err := core.NewGrid(sc.width, sc.height, core.Dead)
	if err != nil {
		return scenarioResult{}, err
	}
	g.Boundary = sc.boundary
	if sc.random {
		pattern.Randomize(g, sc.seed, sc.density)
	} else if err := g.Set(sc.width/2, sc.height/2, core.Alive); err != nil {
		return scenarioResult{}, err
	}

	hist, err := evolve.Run(g, r, sc.steps)
	if err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{rule: r.Name(), extinctStep: -1}
	for i, pop := range hist.Populations() {
		res.peak = max(res.peak, pop)
		if pop == 0 && res.extinctStep < 0 {
			res.extinctStep = i
		}
	}
	res.population = hist.Last().Population()
	res.cycleStart, res.period, res.cycleFound = hist.Cycle()
	return res, nil
}
