package engine

import (
	"bytes"
	"strings"
	"testing"

	"ecsweep.dev"
	"ecsweep.dev/filter"
)

func newTestContext(t *testing.T, targets ...ecsweep.H160) (*Context, *bytes.Buffer) {
	t.Helper()
	b := filter.NewBloom(64)
	for _, target := range targets {
		b.Insert(target)
	}
	f := filter.NewBloomFilter(b)

	var out bytes.Buffer
	ctx := NewContext(f, 2, &out)
	ctx.CheckAddr33 = true
	ctx.Quiet = true
	return ctx, &out
}

func TestMulEngineFindsKnownKey(t *testing.T) {
	var one ecsweep.Fe
	one.SetU64(1)

	var point ecsweep.Pe
	ecsweep.JacobiMulRdc(&point, &ecsweep.G1, &one)
	target := ecsweep.Addr33(&point)

	ctx, out := newTestContext(t, target)
	gt := ecsweep.NewGTable(&ecsweep.G1, 8)

	input := strings.NewReader("0000000000000000000000000000000000000000000000000000000000000001\n")
	me := NewMulEngine(ctx, gt, false, input)
	me.Run()

	checked, found, _ := ctx.Counts.Snapshot()
	if checked != 1 {
		t.Fatalf("expected 1 checked, got %d", checked)
	}
	if found != 1 {
		t.Fatalf("expected 1 found, got %d", found)
	}
	if out.Len() == 0 {
		t.Fatalf("expected a found line written to output")
	}
}

func TestMulEngineRawTextMode(t *testing.T) {
	ctx, _ := newTestContext(t)
	gt := ecsweep.NewGTable(&ecsweep.G1, 8)

	input := strings.NewReader("hello world\nsecond line\n")
	me := NewMulEngine(ctx, gt, true, input)
	me.Run()

	checked, _, _ := ctx.Counts.Snapshot()
	if checked != 2 {
		t.Fatalf("expected 2 checked lines, got %d", checked)
	}
}

func TestScalarFromTextDeterministic(t *testing.T) {
	a := scalarFromText("same input")
	b := scalarFromText("same input")
	if a != b {
		t.Fatalf("scalarFromText should be deterministic for the same input")
	}

	c := scalarFromText("different input")
	if a == c {
		t.Fatalf("different inputs should very likely produce different scalars")
	}
}
