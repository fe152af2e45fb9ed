package engine

import (
	"testing"

	"ecsweep.dev"
)

// repeatingReader cycles through a fixed 32-byte pattern, letting tests
// drive rejectionSample deterministically instead of depending on
// crypto/rand output.
type repeatingReader struct {
	pattern []byte
}

func (r *repeatingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.pattern[i%len(r.pattern)]
	}
	return len(p), nil
}

func TestRejectionSampleStaysBelowBound(t *testing.T) {
	var bound ecsweep.Fe
	bound.SetU64(1000)

	// A reader producing all-zero bytes always satisfies x < bound.
	e := &RndEngine{Rand: &repeatingReader{pattern: []byte{0x00}}}
	x := e.rejectionSample(bound.BitLen(), &bound)
	if x.Cmp(&bound) >= 0 {
		t.Fatalf("rejectionSample returned %s, want < %s", x.Hex(), bound.Hex())
	}
}

func TestDrawSubRangeForcesBitWindow(t *testing.T) {
	var start, end ecsweep.Fe
	start.FromHex("0")
	end.FromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	e := &RndEngine{
		RangeStart: start,
		RangeEnd:   end,
		BitOffset:  4,
		BitSize:    8,
		Rand:       &repeatingReader{pattern: []byte{0xaa}},
	}

	subStart, subEnd := e.drawSubRange()

	for i := e.BitOffset; i < e.BitOffset+e.BitSize; i++ {
		if subStart[i/64]&(1<<(i%64)) != 0 {
			t.Errorf("bit %d of subStart should be forced to 0", i)
		}
		if subEnd[i/64]&(1<<(i%64)) == 0 {
			t.Errorf("bit %d of subEnd should be forced to 1", i)
		}
	}

	if subStart.Cmp(&subEnd) > 0 {
		t.Fatalf("subStart %s should not exceed subEnd %s", subStart.Hex(), subEnd.Hex())
	}
}

func TestNewRndEngineClampsOffset(t *testing.T) {
	var start, end ecsweep.Fe
	start.SetU64(0)
	end.SetU64(1000)

	e := NewRndEngine(nil, start, end, 250, 20, false)
	if e.BitOffset > 255-e.BitSize {
		t.Fatalf("BitOffset %d should be clamped so BitOffset+BitSize <= 255", e.BitOffset)
	}
}
