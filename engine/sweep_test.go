package engine

import (
	"testing"

	"ecsweep.dev"
)

func TestSweepEngineFindsKnownKey(t *testing.T) {
	var five ecsweep.Fe
	five.SetU64(5)
	var point ecsweep.Pe
	ecsweep.JacobiMulRdc(&point, &ecsweep.G1, &five)
	target := ecsweep.Addr33(&point)

	ctx, _ := newTestContext(t, target)

	var start, end ecsweep.Fe
	start.SetU64(2)
	end.SetU64(12)

	se := NewSweepEngine(ctx, start, end, 0, false)
	se.Run()

	_, found, _ := ctx.Counts.Snapshot()
	if found != 1 {
		t.Fatalf("expected to find the key for scalar 5, found=%d", found)
	}
}

func TestSweepEngineNoFalseMatches(t *testing.T) {
	ctx, _ := newTestContext(t) // empty filter

	var start, end ecsweep.Fe
	start.SetU64(100)
	end.SetU64(120)

	se := NewSweepEngine(ctx, start, end, 0, false)
	se.Run()

	checked, found, _ := ctx.Counts.Snapshot()
	if checked == 0 {
		t.Fatalf("expected some candidates to be checked")
	}
	if found != 0 {
		t.Fatalf("expected no matches against an empty filter, got %d", found)
	}
}
