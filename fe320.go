package ecsweep

import "math/bits"

func fe320AddC(r, a, b *fe320) uint64 {
	var c uint64
	r[0], c = bits.Add64(a[0], b[0], 0)
	r[1], c = bits.Add64(a[1], b[1], c)
	r[2], c = bits.Add64(a[2], b[2], c)
	r[3], c = bits.Add64(a[3], b[3], c)
	r[4], c = bits.Add64(a[4], b[4], c)
	return c
}

func fe320SubC(r, a, b *fe320) uint64 {
	var c uint64
	r[0], c = bits.Sub64(a[0], b[0], 0)
	r[1], c = bits.Sub64(a[1], b[1], c)
	r[2], c = bits.Sub64(a[2], b[2], c)
	r[3], c = bits.Sub64(a[3], b[3], c)
	r[4], c = bits.Sub64(a[4], b[4], c)
	return c
}

// fe320AddShift computes r = (a + b) >> 64 with an extra carry-in word
// ch folded into the vacated top limb; used by the Montgomery reduction
// loop to fold one 64-bit digit per iteration.
func fe320AddShift(r, a, b *fe320, ch uint64) {
	var c uint64
	_, c = bits.Add64(a[0], b[0], 0)
	r[0], c = bits.Add64(a[1], b[1], c)
	r[1], c = bits.Add64(a[2], b[2], c)
	r[2], c = bits.Add64(a[3], b[3], c)
	r[3], c = bits.Add64(a[4], b[4], c)
	r[4] = c + ch
}
