package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/rand"

	"neuralbanner/banner"
	"neuralbanner/raster"
)

// hostFPS is the display rate the GIF delays are computed for
const hostFPS = 60

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c0f748"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(10)
	value = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	box   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

// fixedWindow is a window that never resizes
type fixedWindow struct {
	width, height int
}

func (w fixedWindow) InnerSize() (int, int) { return w.width, w.height }
func (w fixedWindow) OnResize(func()) func() { return func() {} }

func main() {
	out := flag.String("out", "banner.gif", "Output file; the extension picks the format (.gif, or .png with -frames 1)")
	width := flag.Int("width", 1280, "Banner width in pixels")
	height := flag.Int("height", 400, "Banner height in pixels")
	frames := flag.Int("frames", 60, "Number of frames to capture")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	every := flag.Int("every", 1, "Capture every Nth rendered frame")
	overlay := flag.Bool("overlay", true, "Composite the hero gradient overlay")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("Invalid size %dx%d", *width, *height)
	}
	if *frames <= 0 || *every <= 0 {
		log.Fatalf("-frames and -every must be positive")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	encode, err := encoderFor(*out, *frames)
	if err != nil {
		log.Fatalf("Invalid output: %v", err)
	}

	start := time.Now()
	config := banner.DefaultConfig()
	film, stats, err := render(config, *width, *height, *frames, *every, *seed, *overlay)
	if err != nil {
		log.Fatalf("Failed to render banner: %v", err)
	}

	if err := write(film, *out, encode); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Println(summary(*out, *width, *height, len(film.Frames), *seed, stats, time.Since(start)))
}

// render pumps host frames until enough rendered frames are captured
func render(config banner.Config, width, height, frames, every int, seed uint64, withOverlay bool) (*raster.Film, banner.FrameStats, error) {
	var overlay image.Image
	if withOverlay {
		img, err := raster.Overlay(width, height)
		if err != nil {
			return nil, banner.FrameStats{}, fmt.Errorf("failed to rasterize overlay: %w", err)
		}
		overlay = img
	}

	surface := raster.NewSurface(width, height)
	queue := banner.NewFrameQueue()
	anim := banner.Mount(config, surface, fixedWindow{width, height}, queue, rand.New(rand.NewSource(seed)))

	skip := max(config.FrameSkip, 1)
	delay := int(math.Round(float64(every*skip) * 100 / hostFPS))
	film := &raster.Film{Delay: max(delay, 1)}

	anim.OnFrame = func(stats banner.FrameStats) {
		if stats.Runs%uint64(every) != 0 || len(film.Frames) >= frames {
			return
		}
		film.Capture(surface, overlay, config.CanvasOpacity, banner.Background)
		if len(film.Frames) == frames {
			anim.Stop()
		}
	}

	if err := anim.Start(); err != nil {
		return nil, banner.FrameStats{}, fmt.Errorf("failed to start animation: %w", err)
	}
	for anim.State() == banner.StateRunning {
		queue.Pump()
	}
	log.Printf("Captured %d frames over %d host frames", len(film.Frames), anim.Stats().Frame)

	return film, anim.Stats(), nil
}

// encoderFor picks the encoder from the output extension
func encoderFor(path string, frames int) (func(*raster.Film, io.Writer) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return (*raster.Film).WriteGIF, nil
	case ".png":
		if frames != 1 {
			return nil, fmt.Errorf("%s: PNG holds a single frame, use -frames 1 or a .gif output", path)
		}
		return (*raster.Film).WritePNG, nil
	default:
		return nil, fmt.Errorf("%s: unsupported output format, want .gif or .png", path)
	}
}

func write(film *raster.Film, path string, encode func(*raster.Film, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(film, f); err != nil {
		return err
	}
	return f.Close()
}

func summary(out string, width, height, frames int, seed uint64, stats banner.FrameStats, elapsed time.Duration) string {
	row := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(k), value.Render(v))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title.Render("neural banner"),
		row("output", out),
		row("size", fmt.Sprintf("%dx%d", width, height)),
		row("frames", fmt.Sprintf("%d (%d host, %d runs)", frames, stats.Frame, stats.Runs)),
		row("edges", fmt.Sprintf("%d in last frame", stats.Edges)),
		row("seed", fmt.Sprintf("%d", seed)),
		row("elapsed", elapsed.Round(time.Millisecond).String()),
	))
}
