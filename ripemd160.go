package ecsweep

import "math/bits"

// H160 is a Bitcoin HASH160 value: RIPEMD-160(SHA-256(pubkey)).
type H160 [5]uint32

// ripemd160 round schedules: message word order and rotation amounts
// for the left and right parallel lines.
var rmdN = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var rmdR = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var rmdNp = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var rmdRp = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func rmdF1(x, y, z uint32) uint32 { return x ^ y ^ z }
func rmdF2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func rmdF3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func rmdF4(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func rmdF5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

var rmdK1 = [5]uint32{0, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var rmdK2 = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0}

func rmdRound(which int, x, y, z uint32) uint32 {
	switch which {
	case 0:
		return rmdF1(x, y, z)
	case 1:
		return rmdF2(x, y, z)
	case 2:
		return rmdF3(x, y, z)
	case 3:
		return rmdF4(x, y, z)
	default:
		return rmdF5(x, y, z)
	}
}

// rmd160Final runs the RIPEMD-160 compression function over a single
// 16-word (512-bit) input block x and writes the resulting 5-word
// state into out, ported from the dual-line reference schedule.
func rmd160Final(out *H160, x *[16]uint32) {
	a1, b1, c1, d1, e1 := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476), uint32(0xc3d2e1f0)
	a2, b2, c2, d2, e2 := a1, b1, c1, d1, e1

	for i := 0; i < 80; i++ {
		round := i / 16

		alpha := a1 + rmdRound(round, b1, c1, d1) + x[rmdN[i]] + rmdK1[round]
		alpha = bits.RotateLeft32(alpha, int(rmdR[i])) + e1
		beta := bits.RotateLeft32(c1, 10)
		a1, c1, e1, b1, d1 = e1, b1, d1, alpha, beta

		roundP := 4 - round
		alpha2 := a2 + rmdRound(roundP, b2, c2, d2) + x[rmdNp[i]] + rmdK2[round]
		alpha2 = bits.RotateLeft32(alpha2, int(rmdRp[i])) + e2
		beta2 := bits.RotateLeft32(c2, 10)
		a2, c2, e2, b2, d2 = e2, b2, d2, alpha2, beta2
	}

	s1 := uint32(0x67452301)
	s2 := uint32(0xefcdab89)
	s3 := uint32(0x98badcfe)
	s4 := uint32(0x10325476)
	s5 := uint32(0xc3d2e1f0)

	d2 += c1 + s2
	s2 = s3 + d1 + e2
	s3 = s4 + e1 + a2
	s4 = s5 + a1 + b2
	s5 = s1 + b1 + c2
	s1 = d2

	out[0] = bits.ReverseBytes32(s1)
	out[1] = bits.ReverseBytes32(s2)
	out[2] = bits.ReverseBytes32(s3)
	out[3] = bits.ReverseBytes32(s4)
	out[4] = bits.ReverseBytes32(s5)
}

// rmd160Batch computes RIPEMD-160 over each of blocks[i] into hashes[i].
// The reference implementation vectorizes this loop across SIMD lanes;
// lacking Go SIMD intrinsics, this is the same loop expressed over
// independent scalar calls, one per candidate in the batch.
func rmd160Batch(hashes []H160, blocks [][16]uint32) {
	for i := range blocks {
		rmd160Final(&hashes[i], &blocks[i])
	}
}
