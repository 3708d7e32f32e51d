package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"neuralbanner/banner"
	"neuralbanner/profile"
	"neuralbanner/termhost"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	profileDir := flag.String("profile-dir", "", "Capture CPU profiles and traces into this directory when a frame runs over budget")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var profiler *profile.Profiler
	if *profileDir != "" {
		p, err := profile.NewProfiler(*profileDir, profile.DefaultBudget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize profiler: %v\n", err)
			os.Exit(1)
		}
		profiler = p
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := termhost.NewHost(screen, banner.DefaultConfig(), termhost.Options{Seed: *seed, Profiler: profiler})
	if err := host.Run(ctx); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Banner failed: %v\n", err)
		os.Exit(1)
	}
}
