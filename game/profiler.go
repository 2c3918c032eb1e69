package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"time"
)

// Profiler records a CPU profile and execution trace between two toggles.
// It runs on the game loop goroutine and never blocks a frame on I/O beyond
// creating the output files.
type Profiler struct {
	dir       string
	active    bool
	baseName  string
	cpuFile   *os.File
	traceFile *os.File
	started   time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{dir: dir}
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	return p.active
}

// Toggle starts a capture if none is running and stops it otherwise.
// Failures are logged; the game keeps running.
func (p *Profiler) Toggle(reason string) {
	if p.active {
		paths, err := p.Stop()
		if err != nil {
			log.Printf("profiler: stop failed: %v", err)
			return
		}
		for _, path := range paths {
			log.Printf("profiler: saved %s", path)
		}
		p.logMemStats()
		return
	}

	if err := p.Start(reason); err != nil {
		log.Printf("profiler: start failed: %v", err)
		return
	}
	log.Printf("profiler: capturing %s", p.baseName)
}

// Start begins a CPU profile and execution trace named after reason
func (p *Profiler) Start(reason string) error {
	if p.active {
		return errors.New("already profiling")
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	p.started = time.Now()
	p.baseName = fmt.Sprintf("dots-%s-%s", p.started.Format("20060102-150405"), reason)

	cpuFile, err := os.Create(filepath.Join(p.dir, p.baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}

	traceFile, err := os.Create(filepath.Join(p.dir, p.baseName+".trace"))
	if err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		return fmt.Errorf("create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return fmt.Errorf("start trace: %w", err)
	}

	p.cpuFile = cpuFile
	p.traceFile = traceFile
	p.active = true
	return nil
}

// Stop ends the capture and returns the written file paths
func (p *Profiler) Stop() ([]string, error) {
	if !p.active {
		return nil, nil
	}
	p.active = false

	pprof.StopCPUProfile()
	trace.Stop()

	paths := []string{p.cpuFile.Name(), p.traceFile.Name()}
	err := errors.Join(p.cpuFile.Close(), p.traceFile.Close())
	p.cpuFile, p.traceFile = nil, nil
	if err != nil {
		return nil, fmt.Errorf("close profile files: %w", err)
	}
	return paths, nil
}

// logMemStats prints a short memory summary after a capture
func (p *Profiler) logMemStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profiler: %s took %v; alloc %d KB, sys %d KB, gc %d, heap objects %d",
		p.baseName, time.Since(p.started).Round(time.Millisecond),
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
	log.Printf("profiler: view with: go tool pprof -http=:8080 %s",
		filepath.Join(p.dir, p.baseName+".cpu.prof"))
}
