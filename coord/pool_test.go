package coord

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllWorkers(t *testing.T) {
	const n = 8
	var seen atomic.Int64

	p := NewPool(n)
	p.Run(func(workerID int) {
		seen.Add(1)
	})

	if seen.Load() != n {
		t.Fatalf("expected %d workers to run, got %d", n, seen.Load())
	}
}

func TestNewPoolClampsToOne(t *testing.T) {
	p := NewPool(0)
	if p.n != 1 {
		t.Fatalf("expected pool size to clamp to 1, got %d", p.n)
	}
}

func TestCountersAddAndSnapshot(t *testing.T) {
	c := NewCounters()
	c.AddChecked(100)
	c.AddFound(3)

	checked, found, elapsed := c.Snapshot()
	if checked != 100 {
		t.Errorf("checked = %d, want 100", checked)
	}
	if found != 3 {
		t.Errorf("found = %d, want 3", found)
	}
	if elapsed < 0 {
		t.Errorf("elapsed should not be negative")
	}
}
