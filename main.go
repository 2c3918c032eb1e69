package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"driftdots/config"
	"driftdots/game"
)

func main() {
	root := flag.String("root", config.DefaultRoot, "directory the config key resolves against")
	key := flag.String("config", config.DefaultKey, "config document key under -root")
	profileDir := flag.String("profile-dir", "profiles", "where F2 writes CPU profiles (empty disables)")
	showHUD := flag.Bool("hud", false, "start with the debug HUD visible")
	flag.Parse()

	log.Printf("config = %s", config.Path(*root, *key))
	cfg, err := config.Load(*root, *key)
	if err != nil {
		log.Fatal(err)
	}

	opts := game.DefaultOptions(rand.New(rand.NewSource(time.Now().UnixNano())))
	opts.ProfileDir = *profileDir
	opts.ShowHUD = *showHUD
	g := game.NewGame(cfg, opts)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Drift Dots")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Update runs once per frame; the game's own clock decides how many
	// fixed simulation ticks each frame gets
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
