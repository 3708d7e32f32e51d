package profile

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// DefaultBudget is the time one pipeline run may take at a 60 Hz host rate
const DefaultBudget = 16 * time.Millisecond

// Profiler captures a CPU profile and an execution trace when a pipeline
// run exceeds its frame budget
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	budget          time.Duration
	overBudget      int

	// capture runs the actual capture; replaced in tests
	capture func(baseName string)
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, budget time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	if budget <= 0 {
		budget = DefaultBudget
	}

	p := &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		budget:          budget,
	}
	p.capture = p.captureAll
	return p, nil
}

// Observe records one pipeline duration. It starts a background capture
// when the duration is over budget and no capture ran within the cooldown.
// Returns true when a capture was started.
func (p *Profiler) Observe(d time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if d <= p.budget {
		return false
	}
	p.overBudget++

	if p.isProfiling || time.Since(p.lastCaptureTime) < p.captureCooldown {
		return false
	}
	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	baseName := fmt.Sprintf("frame-budget-%s-%dms", time.Now().Format("20060102-150405"), d.Milliseconds())
	log.Printf("profile: pipeline took %v (budget %v), capturing %s", d, p.budget, baseName)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		p.capture(baseName)
	}()
	return true
}

// OverBudget returns how many observed runs exceeded the budget
func (p *Profiler) OverBudget() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overBudget
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// recorder is one runtime collector the profiler runs during a capture
type recorder struct {
	name  string
	ext   string
	start func(io.Writer) error
	stop  func()
}

var recorders = []recorder{
	{name: "CPU profile", ext: cpuProfileExt, start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{name: "trace", ext: ".trace", start: trace.Start, stop: trace.Stop},
}

const cpuProfileExt = ".cpu.prof"

// captureAll runs every recorder concurrently for captureDuration
func (p *Profiler) captureAll(baseName string) {
	var wg sync.WaitGroup
	for _, r := range recorders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := filepath.Join(p.profilesDir, baseName+r.ext)
			if err := p.record(path, r.start, r.stop); err != nil {
				log.Printf("profile: %s capture failed: %v", r.name, err)
				return
			}
			log.Printf("profile: %s saved to %s", r.name, path)
		}()
	}
	wg.Wait()
	p.report(baseName)
}

// record writes one collector's output to path, stopping it after
// captureDuration
func (p *Profiler) record(path string, start func(io.Writer) error, stop func()) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	time.Sleep(p.captureDuration)
	stop()
	return nil
}

// report logs where the capture went and the heap at capture time
func (p *Profiler) report(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+cpuProfileExt)
	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("profile: could not stat %s: %v", profilePath, err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile: %s (%.2f KB), inspect with: go tool pprof -http=:8080 %s",
		profilePath, float64(info.Size())/1024, profilePath)
	log.Printf("profile: alloc=%dKB sys=%dKB numGC=%d heapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
