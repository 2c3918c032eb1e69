package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilerStartStop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p := NewProfiler(dir)

	if err := p.Start("test"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !p.IsProfiling() {
		t.Fatal("Expected profiler to be active")
	}
	if err := p.Start("again"); err == nil {
		t.Error("Expected second Start to fail while profiling")
	}

	paths, err := p.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if p.IsProfiling() {
		t.Error("Expected profiler to be idle after Stop")
	}
	if len(paths) != 2 {
		t.Fatalf("Expected CPU profile and trace, got %v", paths)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("profile output %s missing: %v", path, err)
		}
		if filepath.Dir(path) != dir {
			t.Errorf("profile output %s not written to %s", path, dir)
		}
	}

	if paths, err := p.Stop(); paths != nil || err != nil {
		t.Errorf("Stop while idle = %v, %v; want nil, nil", paths, err)
	}
}
