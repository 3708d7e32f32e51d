package termhost

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"neuralbanner/banner"
	"neuralbanner/profile"
)

// TickInterval paces host frames, ~60 per second
const TickInterval = 16 * time.Millisecond

// Options controls the terminal host
type Options struct {
	Seed     uint64
	Profiler *profile.Profiler // optional
}

// Host runs one banner animation on a tcell screen
type Host struct {
	screen   tcell.Screen
	window   *Window
	surface  *Surface
	frames   *banner.FrameQueue
	anim     *banner.Animation
	profiler *profile.Profiler
}

// NewHost mounts the animation on an initialised screen
func NewHost(screen tcell.Screen, config banner.Config, opts Options) *Host {
	h := &Host{
		screen:   screen,
		window:   NewWindow(screen),
		surface:  NewSurface(screen),
		frames:   banner.NewFrameQueue(),
		profiler: opts.Profiler,
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	h.anim = banner.Mount(config, h.surface, h.window, h.frames, rng)
	h.anim.OnFrame = h.onFrame
	return h
}

// Animation exposes the mounted animation
func (h *Host) Animation() *banner.Animation {
	return h.anim
}

// Run starts the animation and drives it until ctx ends or the user quits
func (h *Host) Run(ctx context.Context) error {
	if err := h.anim.Start(); err != nil {
		return fmt.Errorf("failed to start animation: %w", err)
	}
	defer h.anim.Stop()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				stats := h.anim.Stats()
				log.Printf("banner stopped after %d frames (%d pipeline runs)", stats.Frame, stats.Runs)
				return nil
			}

		case <-ticker.C:
			h.frames.Pump()
		}
	}
}

// handleEvent returns false when the user asked to quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.window.Notify()
	}
	return true
}

func (h *Host) onFrame(stats banner.FrameStats) {
	if h.profiler != nil {
		h.profiler.Observe(stats.Duration)
	}
}
