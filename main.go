package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"neuralbanner/banner"
	"neuralbanner/ebitenhost"
	"neuralbanner/profile"
)

func main() {
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	hud := flag.Bool("hud", false, "Show the debug HUD")
	overlay := flag.Bool("overlay", true, "Draw the gradient overlay over the particles")
	profileDir := flag.String("profile-dir", "", "Capture CPU profiles and traces into this directory when a frame runs over budget")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	opts := ebitenhost.Options{
		Width:   *width,
		Height:  *height,
		Seed:    *seed,
		ShowHUD: *hud,
		Overlay: *overlay,
	}
	if *profileDir != "" {
		p, err := profile.NewProfiler(*profileDir, profile.DefaultBudget)
		if err != nil {
			log.Fatalf("Failed to initialize profiler: %v", err)
		}
		opts.Profiler = p
		log.Printf("Profiling frames over %v into %s", profile.DefaultBudget, *profileDir)
	}

	g, err := ebitenhost.NewGame(banner.DefaultConfig(), opts)
	if err != nil {
		log.Fatalf("Failed to create banner: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Neural Banner")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	g.Unmount()
}
