package ecsweep

import "testing"

func TestFeHexRoundTrip(t *testing.T) {
	cases := []string{
		"0000000000000000000000000000000000000000000000000000000000000001",
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"0",
		"f",
	}
	for _, hex := range cases {
		t.Run(hex, func(t *testing.T) {
			var a Fe
			a.FromHex(hex)

			var buf [32]byte
			a.GetB32(buf[:])

			var b Fe
			b.SetB32(buf[:])
			if a.Cmp(&b) != 0 {
				t.Fatalf("round trip mismatch: %s vs %s", a.Hex(), b.Hex())
			}
		})
	}
}

func TestFeBitLen(t *testing.T) {
	cases := []struct {
		hex  string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"ff", 8},
		{"100", 9},
		{"8000000000000000000000000000000000000000000000000000000000000000", 256},
	}
	for _, c := range cases {
		var a Fe
		a.FromHex(c.hex)
		if got := a.BitLen(); got != c.want {
			t.Errorf("BitLen(%s) = %d, want %d", c.hex, got, c.want)
		}
	}
}

func TestFeCmp(t *testing.T) {
	var a, b Fe
	a.SetU64(5)
	b.SetU64(10)
	if a.Cmp(&b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Cmp(&a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if a.Cmp(&a) != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestFeCmp64(t *testing.T) {
	var a Fe
	a.SetU64(42)
	if a.Cmp64(42) != 0 {
		t.Fatalf("expected equal")
	}
	if a.Cmp64(41) <= 0 {
		t.Fatalf("expected greater")
	}
	a.ShiftL(64)
	if a.Cmp64(0) <= 0 {
		t.Fatalf("expected a nonzero high limb to compare greater than any 64-bit value")
	}
}

func TestFeShiftL(t *testing.T) {
	var a Fe
	a.SetU64(1)
	a.ShiftL(64)
	if a[0] != 0 || a[1] != 1 {
		t.Fatalf("shift by 64 should move bit into limb 1, got %+v", a)
	}
}
