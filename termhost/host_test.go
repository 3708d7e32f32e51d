package termhost

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"neuralbanner/banner"
)

func TestHostMountsAtTerminalSize(t *testing.T) {
	screen := newScreen(t, 40, 12)
	h := NewHost(screen, banner.DefaultConfig(), Options{Seed: 7})

	vp := h.Animation().Viewport()
	if vp.Width != 40*CellWidth || vp.Height != 12*CellHeight {
		t.Fatalf("viewport = %vx%v, want %dx%d", vp.Width, vp.Height, 40*CellWidth, 12*CellHeight)
	}
	if n := len(h.Animation().Particles()); n != banner.DefaultConfig().ParticleCount {
		t.Fatalf("seeded %d particles", n)
	}
}

func TestHostFollowsTerminalResize(t *testing.T) {
	screen := newScreen(t, 40, 12)
	h := NewHost(screen, banner.DefaultConfig(), Options{Seed: 7})

	screen.SetSize(80, 24)
	if !h.handleEvent(tcell.NewEventResize(80, 24)) {
		t.Fatal("resize treated as quit")
	}

	vp := h.Animation().Viewport()
	if vp.Width != 80*CellWidth || vp.Height != 24*CellHeight {
		t.Fatalf("viewport = %vx%v after resize", vp.Width, vp.Height)
	}
}

func TestHostQuitKeys(t *testing.T) {
	h := NewHost(newScreen(t, 10, 5), banner.DefaultConfig(), Options{})

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := !h.handleEvent(tt.ev); got != tt.quit {
				t.Errorf("quit = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestHostRunStopsOnContext(t *testing.T) {
	screen := newScreen(t, 20, 8)
	h := NewHost(screen, banner.DefaultConfig(), Options{Seed: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 10*TickInterval)
	defer cancel()

	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.Animation().State() != banner.StateStopped {
		t.Fatalf("state = %v after Run, want stopped", h.Animation().State())
	}
	if h.Animation().Stats().Frame == 0 {
		t.Error("no frames pumped")
	}
	if err := h.Run(ctx); err == nil {
		t.Error("second Run on a stopped host succeeded")
	}
}
