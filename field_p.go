package ecsweep

import "math/bits"

// FeP is the secp256k1 prime 2^256 - 2^32 - 977.
var FeP = Fe{0xfffffffefffffc2f, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff}

// feP1000003D1 is 2^32 + 977, the constant used to fold the high limbs
// of a 512-bit product back in during mod-p reduction.
const feP1000003D1 = 0x1000003D1

// FeModPNeg computes r = -a mod P.
func FeModPNeg(r, a *Fe) {
	var c uint64
	r[0], c = bits.Sub64(FeP[0], a[0], 0)
	r[1], c = bits.Sub64(FeP[1], a[1], c)
	r[2], c = bits.Sub64(FeP[2], a[2], c)
	r[3], _ = bits.Sub64(FeP[3], a[3], c)
}

// FeModPAdd computes r = a + b mod P.
func FeModPAdd(r, a, b *Fe) {
	var c uint64
	r[0], c = bits.Add64(a[0], b[0], 0)
	r[1], c = bits.Add64(a[1], b[1], c)
	r[2], c = bits.Add64(a[2], b[2], c)
	r[3], c = bits.Add64(a[3], b[3], c)

	if c != 0 || r.Cmp(&FeP) >= 0 {
		r[0], c = bits.Sub64(r[0], FeP[0], 0)
		r[1], c = bits.Sub64(r[1], FeP[1], c)
		r[2], c = bits.Sub64(r[2], FeP[2], c)
		r[3], _ = bits.Sub64(r[3], FeP[3], c)
	}
}

// FeModPSub computes r = a - b mod P.
func FeModPSub(r, a, b *Fe) {
	var c uint64
	r[0], c = bits.Sub64(a[0], b[0], 0)
	r[1], c = bits.Sub64(a[1], b[1], c)
	r[2], c = bits.Sub64(a[2], b[2], c)
	r[3], c = bits.Sub64(a[3], b[3], c)

	if c != 0 {
		r[0], c = bits.Add64(r[0], FeP[0], 0)
		r[1], c = bits.Add64(r[1], FeP[1], c)
		r[2], c = bits.Add64(r[2], FeP[2], c)
		r[3], _ = bits.Add64(r[3], FeP[3], c)
	}
}

// FeModPMul computes r = a * b mod P via a schoolbook 4x4 -> 512-bit
// product followed by the 2^256 = 2^32 + 977 reduction folded in twice.
func FeModPMul(r, a, b *Fe) {
	var rr [8]uint64
	var tt fe320
	var c uint64

	mulScalar(&tt, a, b[0])
	copy(rr[0:5], tt[:])

	mulScalar(&tt, a, b[1])
	rr[1], c = bits.Add64(rr[1], tt[0], 0)
	rr[2], c = bits.Add64(rr[2], tt[1], c)
	rr[3], c = bits.Add64(rr[3], tt[2], c)
	rr[4], c = bits.Add64(rr[4], tt[3], c)
	rr[5], c = bits.Add64(rr[5], tt[4], c)

	mulScalar(&tt, a, b[2])
	rr[2], c = bits.Add64(rr[2], tt[0], 0)
	rr[3], c = bits.Add64(rr[3], tt[1], c)
	rr[4], c = bits.Add64(rr[4], tt[2], c)
	rr[5], c = bits.Add64(rr[5], tt[3], c)
	rr[6], c = bits.Add64(rr[6], tt[4], c)

	mulScalar(&tt, a, b[3])
	rr[3], c = bits.Add64(rr[3], tt[0], 0)
	rr[4], c = bits.Add64(rr[4], tt[1], c)
	rr[5], c = bits.Add64(rr[5], tt[2], c)
	rr[6], c = bits.Add64(rr[6], tt[3], c)
	rr[7], c = bits.Add64(rr[7], tt[4], c)

	feModPReduce512(r, &rr)
}

// feModPReduce512 folds an 8-limb product down to a (possibly
// unreduced) 256-bit value congruent mod P, then normalizes.
func feModPReduce512(r *Fe, rr *[8]uint64) {
	var tail Fe
	copy(tail[:], rr[4:8])

	var tt fe320
	mulScalar(&tt, &tail, feP1000003D1)

	var c uint64
	rr[0], c = bits.Add64(rr[0], tt[0], 0)
	rr[1], c = bits.Add64(rr[1], tt[1], c)
	rr[2], c = bits.Add64(rr[2], tt[2], c)
	rr[3], c = bits.Add64(rr[3], tt[3], c)

	hi, lo := bits.Mul64(tt[4]+c, feP1000003D1)
	r[0], c = bits.Add64(rr[0], lo, 0)
	r[1], c = bits.Add64(rr[1], hi, c)
	r[2], c = bits.Add64(rr[2], 0, c)
	r[3], _ = bits.Add64(rr[3], 0, c)

	if r.Cmp(&FeP) >= 0 {
		FeModPSub(r, r, &FeP)
	}
}

// FeModPSqr computes r = a^2 mod P using a dedicated schedule that
// reuses cross terms (10 64x64 multiplies instead of FeModPMul's 16).
func FeModPSqr(r, a *Fe) {
	var rr [8]uint64
	var c, t1, t2, lo, hi uint64

	rr[1], rr[0] = bits.Mul64(a[0], a[0])

	var tt3, tt4 uint64
	tt4, tt3 = bits.Mul64(a[0], a[1])
	tt3, c = bits.Add64(tt3, tt3, 0)
	tt4, c = bits.Add64(tt4, tt4, c)
	t1 = c
	tt3, c = bits.Add64(rr[1], tt3, 0)
	tt4, c = bits.Add64(tt4, 0, c)
	t1 += c
	rr[1] = tt3

	var tt0, tt1 uint64
	tt1, tt0 = bits.Mul64(a[0], a[2])
	tt0, c = bits.Add64(tt0, tt0, 0)
	tt1, c = bits.Add64(tt1, tt1, c)
	t2 = c
	hi, lo = bits.Mul64(a[1], a[1])
	tt0, c = bits.Add64(tt0, lo, 0)
	tt1, c = bits.Add64(tt1, hi, c)
	t2 += c
	tt0, c = bits.Add64(tt0, tt4, 0)
	tt1, c = bits.Add64(tt1, t1, c)
	t2 += c
	rr[2] = tt0

	tt4, tt3 = bits.Mul64(a[0], a[3])
	hi, lo = bits.Mul64(a[1], a[2])
	tt3, c = bits.Add64(tt3, lo, 0)
	tt4, c = bits.Add64(tt4, hi, c)
	t1 = c + c
	tt3, c = bits.Add64(tt3, tt3, 0)
	tt4, c = bits.Add64(tt4, tt4, c)
	t1 += c
	tt3, c = bits.Add64(tt1, tt3, 0)
	tt4, c = bits.Add64(tt4, t2, c)
	t1 += c
	rr[3] = tt3

	tt1, tt0 = bits.Mul64(a[1], a[3])
	tt0, c = bits.Add64(tt0, tt0, 0)
	tt1, c = bits.Add64(tt1, tt1, c)
	t2 = c
	hi, lo = bits.Mul64(a[2], a[2])
	tt0, c = bits.Add64(tt0, lo, 0)
	tt1, c = bits.Add64(tt1, hi, c)
	t2 += c
	tt0, c = bits.Add64(tt0, tt4, 0)
	tt1, c = bits.Add64(tt1, t1, c)
	t2 += c
	rr[4] = tt0

	tt4, tt3 = bits.Mul64(a[2], a[3])
	tt3, c = bits.Add64(tt3, tt3, 0)
	tt4, c = bits.Add64(tt4, tt4, c)
	t1 = c
	tt3, c = bits.Add64(tt3, tt1, 0)
	tt4, c = bits.Add64(tt4, t2, c)
	t1 += c
	rr[5] = tt3

	tt1, tt0 = bits.Mul64(a[3], a[3])
	tt0, c = bits.Add64(tt0, tt4, 0)
	tt1, _ = bits.Add64(tt1, t1, c)
	rr[6] = tt0
	rr[7] = tt1

	feModPReduce512(r, &rr)
}

// feModPInvAddChain computes r = a^(P-2) mod P via Brian Smith's
// addition chain for the secp256k1 field inversion (255 squarings and
// 15 multiplications).
// https://briansmith.org/ecc-inversion-addition-chains-01#secp256k1_field_inversion
func feModPInvAddChain(r, a *Fe) {
	var x2, x3, x6, x9, x11, x22, x44, x88, x176, x220, x223, t1 Fe

	FeModPSqr(&x2, a)
	FeModPMul(&x2, &x2, a)

	FeModPSqr(&x3, &x2)
	FeModPMul(&x3, &x3, a)

	x6 = x3
	for j := 0; j < 3; j++ {
		FeModPSqr(&x6, &x6)
	}
	FeModPMul(&x6, &x6, &x3)

	x9 = x6
	for j := 0; j < 3; j++ {
		FeModPSqr(&x9, &x9)
	}
	FeModPMul(&x9, &x9, &x3)

	x11 = x9
	for j := 0; j < 2; j++ {
		FeModPSqr(&x11, &x11)
	}
	FeModPMul(&x11, &x11, &x2)

	x22 = x11
	for j := 0; j < 11; j++ {
		FeModPSqr(&x22, &x22)
	}
	FeModPMul(&x22, &x22, &x11)

	x44 = x22
	for j := 0; j < 22; j++ {
		FeModPSqr(&x44, &x44)
	}
	FeModPMul(&x44, &x44, &x22)

	x88 = x44
	for j := 0; j < 44; j++ {
		FeModPSqr(&x88, &x88)
	}
	FeModPMul(&x88, &x88, &x44)

	x176 = x88
	for j := 0; j < 88; j++ {
		FeModPSqr(&x176, &x176)
	}
	FeModPMul(&x176, &x176, &x88)

	x220 = x176
	for j := 0; j < 44; j++ {
		FeModPSqr(&x220, &x220)
	}
	FeModPMul(&x220, &x220, &x44)

	x223 = x220
	for j := 0; j < 3; j++ {
		FeModPSqr(&x223, &x223)
	}
	FeModPMul(&x223, &x223, &x3)

	t1 = x223
	for j := 0; j < 23; j++ {
		FeModPSqr(&t1, &t1)
	}
	FeModPMul(&t1, &t1, &x22)
	for j := 0; j < 5; j++ {
		FeModPSqr(&t1, &t1)
	}
	FeModPMul(&t1, &t1, a)
	for j := 0; j < 3; j++ {
		FeModPSqr(&t1, &t1)
	}
	FeModPMul(&t1, &t1, &x2)
	for j := 0; j < 2; j++ {
		FeModPSqr(&t1, &t1)
	}
	FeModPMul(r, &t1, a)
}

// feModPInvBinPow is a straightforward binary-exponentiation inverse
// kept to cross-check the addition chain in tests.
func feModPInvBinPow(r, a *Fe) {
	q := Fe{1, 0, 0, 0}
	p := FeP
	t := *a
	p[0] -= 2

	for p[0] != 0 || p[1] != 0 || p[2] != 0 || p[3] != 0 {
		if (p[0] & 1) != 0 {
			FeModPMul(&q, &q, &t)
		}
		FeModPSqr(&t, &t)
		p.ShiftR64(1)
	}

	*r = q
}

// FeModPInv computes the multiplicative inverse of a mod P.
func FeModPInv(r, a *Fe) {
	feModPInvAddChain(r, a)
}

// FeModPGrpInv inverts every element of fs in place using Montgomery's
// batch-inversion trick: one real inversion plus 3(n-1) multiplies.
func FeModPGrpInv(fs []Fe) {
	n := len(fs)
	if n == 0 {
		return
	}

	zs := make([]Fe, n)
	zs[0] = fs[0]
	for i := 1; i < n; i++ {
		FeModPMul(&zs[i], &zs[i-1], &fs[i])
	}

	var t1, t2 Fe
	t1 = zs[n-1]
	FeModPInv(&t1, &t1)

	for i := n - 1; i > 0; i-- {
		FeModPMul(&t2, &t1, &zs[i-1])
		FeModPMul(&t1, &fs[i], &t1)
		fs[i] = t2
	}
	fs[0] = t1
}
