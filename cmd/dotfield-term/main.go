package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"driftdots/config"
)

func main() {
	root := flag.String("root", config.DefaultRoot, "directory the config key resolves against")
	key := flag.String("config", config.DefaultKey, "config document key under -root")
	cellW := flag.Float64("cell-width", 8, "pixels covered by one terminal column")
	cellH := flag.Float64("cell-height", 16, "pixels covered by one terminal row")
	flag.Parse()

	cfg, err := config.Load(*root, *key)
	if err != nil {
		log.Fatal(err)
	}
	if *cellW <= 0 || *cellH <= 0 {
		log.Fatalf("cell size must be positive, got %vx%v", *cellW, *cellH)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newTermGame(screen, cfg, rng, *cellW, *cellH)
	run(g)
}

// run drives the terminal game until quit. Events are read on a separate
// goroutine and handed over on a channel; all game state stays on this one.
func run(g *termGame) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			g.update(now)
			g.draw()
		}
	}
}
