package ebitenhost

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/exp/rand"

	"neuralbanner/banner"
	"neuralbanner/profile"
)

// Options controls the window host
type Options struct {
	Width, Height int
	Seed          uint64
	ShowHUD       bool
	Overlay       bool              // draw the gradient over the canvas
	Profiler      *profile.Profiler // optional
}

// Game hosts one banner animation in an ebiten window. ebiten's Update
// is the frame callback: every Update pumps the frame queue once.
type Game struct {
	config   banner.Config
	window   *window
	surface  *Surface
	frames   *banner.FrameQueue
	anim     *banner.Animation
	overlay  *overlay // nil when disabled
	profiler *profile.Profiler
	showHUD  bool
}

// NewGame mounts and starts the animation
func NewGame(config banner.Config, opts Options) (*Game, error) {
	g := &Game{
		config:   config,
		window:   newWindow(opts.Width, opts.Height),
		surface:  NewSurface(),
		frames:   banner.NewFrameQueue(),
		profiler: opts.Profiler,
		showHUD:  opts.ShowHUD,
	}
	if opts.Overlay {
		g.overlay = newOverlay()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g.anim = banner.Mount(config, g.surface, g.window, g.frames, rng)
	g.anim.OnFrame = g.onFrame
	if err := g.anim.Start(); err != nil {
		return nil, fmt.Errorf("failed to start animation: %w", err)
	}
	return g, nil
}

// Update applies pending resizes, handles input and pumps one host frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}

	g.window.apply()
	if g.overlay != nil {
		g.overlay.update(g.window.InnerSize())
	}
	g.frames.Pump()
	return nil
}

// Draw composites the canvas over the page background, then the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(banner.Background)

	if canvas := g.surface.Canvas(); canvas != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(g.config.CanvasOpacity))
		screen.DrawImage(canvas, op)
	}
	if g.overlay != nil {
		if img := g.overlay.image(); img != nil {
			screen.DrawImage(img, nil)
		}
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout follows the window size so the canvas always fills it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.layout(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Unmount stops the animation and releases the canvas
func (g *Game) Unmount() {
	if g.anim.State() == banner.StateStopped {
		return
	}
	g.anim.Stop()
	g.surface.SetSize(0, 0)
	stats := g.anim.Stats()
	log.Printf("banner stopped after %d frames (%d pipeline runs)", stats.Frame, stats.Runs)
}

func (g *Game) onFrame(stats banner.FrameStats) {
	if g.profiler != nil {
		g.profiler.Observe(stats.Duration)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.anim.Stats()
	vp := g.anim.Viewport()
	hud := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nViewport: %.0fx%.0f\nFrames: %d  Runs: %d\nEdges: %d  Pipeline: %.2fms\nF1: toggle HUD  Esc/Q: quit",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		vp.Width, vp.Height,
		stats.Frame, stats.Runs,
		stats.Edges, float64(stats.Duration.Microseconds())/1000)
	ebitenutil.DebugPrint(screen, hud)
}
