package ecsweep

import "math/bits"

// FeN is the secp256k1 group order.
var FeN = Fe{0xbfd25e8cd0364141, 0xbaaedce6af48a03b, 0xfffffffffffffffe, 0xffffffffffffffff}

// feModNNN and feModNR2 are the widened (320-bit, top limb always
// zero) Montgomery constants for multiplication modulo N: NN is N
// itself, R2 is 2^512 mod N (R^2 for R = 2^256), used to fold the Montgomery-form product
// back down to a normal residue. feModNMu is -N^-1 mod 2^64.
var feModNNN = fe320{0xbfd25e8cd0364141, 0xbaaedce6af48a03b, 0xfffffffffffffffe, 0xffffffffffffffff, 0x0}
var feModNR2 = fe320{0x896cf21467d7d140, 0x741496c20e7cf878, 0xe697f5e45bcd07c6, 0x9d671cd581c69bc5, 0x0}

var feModNNNFe = Fe{feModNNN[0], feModNNN[1], feModNNN[2], feModNNN[3]}
var feModNR2Fe = Fe{feModNR2[0], feModNR2[1], feModNR2[2], feModNR2[3]}

const feModNMu = 0x4b0dff665588b13f

// FeModNNeg computes r = -a mod N.
func FeModNNeg(r, a *Fe) {
	var c uint64
	r[0], c = bits.Sub64(FeN[0], a[0], 0)
	r[1], c = bits.Sub64(FeN[1], a[1], c)
	r[2], c = bits.Sub64(FeN[2], a[2], c)
	r[3], _ = bits.Sub64(FeN[3], a[3], c)
}

// FeModNAdd computes r = a + b mod N.
func FeModNAdd(r, a, b *Fe) {
	var c uint64
	r[0], c = bits.Add64(a[0], b[0], 0)
	r[1], c = bits.Add64(a[1], b[1], c)
	r[2], c = bits.Add64(a[2], b[2], c)
	r[3], c = bits.Add64(a[3], b[3], c)

	if c != 0 || r.Cmp(&FeN) >= 0 {
		r[0], c = bits.Sub64(r[0], FeN[0], 0)
		r[1], c = bits.Sub64(r[1], FeN[1], c)
		r[2], c = bits.Sub64(r[2], FeN[2], c)
		r[3], _ = bits.Sub64(r[3], FeN[3], c)
	}
}

// FeModNSub computes r = a - b mod N.
func FeModNSub(r, a, b *Fe) {
	var c uint64
	r[0], c = bits.Sub64(a[0], b[0], 0)
	r[1], c = bits.Sub64(a[1], b[1], c)
	r[2], c = bits.Sub64(a[2], b[2], c)
	r[3], c = bits.Sub64(a[3], b[3], c)

	if c != 0 {
		r[0], c = bits.Add64(r[0], FeN[0], 0)
		r[1], c = bits.Add64(r[1], FeN[1], c)
		r[2], c = bits.Add64(r[2], FeN[2], c)
		r[3], _ = bits.Add64(r[3], FeN[3], c)
	}
}

// feModNReduce runs the four-word Montgomery reduction loop that folds
// a 256-bit multiplicand a against the four words of m, accumulating
// into the 320-bit t, and returns the 320-bit result after one
// conditional subtraction of N.
func feModNReduce(a *Fe, m *Fe) fe320 {
	var t, pr, p fe320
	var ml, c uint64

	mulScalar(&pr, a, m[0])
	ml = pr[0] * feModNMu
	mulScalar(&p, &feModNNNFe, ml)
	c = fe320AddC(&pr, &pr, &p)
	copy(t[:4], pr[1:5])
	t[4] = c

	for i := 1; i < 4; i++ {
		mulScalar(&pr, a, m[i])
		ml = (pr[0] + t[0]) * feModNMu
		mulScalar(&p, &feModNNNFe, ml)
		c = fe320AddC(&pr, &pr, &p)
		fe320AddShift(&t, &t, &pr, c)
	}

	fe320SubC(&p, &t, &feModNNN)
	if int64(p[4]) >= 0 {
		return p
	}
	return t
}

// FeModNMul computes r = a * b mod N using Montgomery multiplication
// (CIOS-style, one word of the multiplier folded per iteration), with
// a second Montgomery pass against R^2 to return to normal form:
// https://github.com/albertobsd/keyhunt/blob/main/secp256k1/IntMod.cpp#L1109
func FeModNMul(r, a, b *Fe) {
	rr := feModNReduce(a, b)
	rrFe := Fe{rr[0], rr[1], rr[2], rr[3]}
	out := feModNReduce(&feModNR2Fe, &rrFe)
	r[0], r[1], r[2], r[3] = out[0], out[1], out[2], out[3]
}

// FeModNAddStride computes r = base + offset*stride mod N, as used by
// the sweep engine to reconstruct the scalar of a candidate point from
// its position within a batch.
func FeModNAddStride(r, base, stride *Fe, offset uint64) {
	var t Fe
	t.SetU64(offset)
	FeModNMul(&t, &t, stride)
	FeModNAdd(r, &t, base)
}

// FeModNFromHex loads a hex string and reduces it modulo N if needed.
func FeModNFromHex(r *Fe, hex string) {
	r.FromHex(hex)
	if r.Cmp(&FeN) >= 0 {
		FeModNSub(r, r, &FeN)
	}
}
