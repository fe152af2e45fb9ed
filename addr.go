package ecsweep

import "encoding/binary"

// HashBatchSize bounds how many points addr33Batch/addr65Batch accept
// in one call, mirroring the reference's fixed-size SIMD lane count.
const HashBatchSize = 8

// prepareRmd loads a 32-byte SHA-256 digest into the 16-word RIPEMD-160
// input block, appending the standard 0x80 bit-pad and the 256-bit
// length footer.
func prepareRmd(rs *[16]uint32, digest [32]byte) {
	for i := 0; i < 8; i++ {
		rs[i] = binary.LittleEndian.Uint32(digest[i*4 : i*4+4])
	}
	rs[8] = 0x00000080
	for i := 9; i < 14; i++ {
		rs[i] = 0
	}
	rs[14] = 256
	rs[15] = 0
}

// Addr33 computes the Bitcoin HASH160 of a compressed-pubkey encoding
// of point, which must already be in affine coordinates (Z == 1).
func Addr33(point *Pe) H160 {
	var msg [33]byte
	if point.Y[0]&1 != 0 {
		msg[0] = 0x03
	} else {
		msg[0] = 0x02
	}
	encodeX(msg[1:], point)

	digest := Sum256(msg[:])
	var rs [16]uint32
	prepareRmd(&rs, digest)

	var out H160
	rmd160Final(&out, &rs)
	return out
}

// Addr65 computes the Bitcoin HASH160 of an uncompressed-pubkey
// encoding of point, which must already be in affine coordinates.
func Addr65(point *Pe) H160 {
	var msg [65]byte
	msg[0] = 0x04
	encodeX(msg[1:33], point)
	encodeY(msg[33:65], point)

	digest := Sum256(msg[:])
	var rs [16]uint32
	prepareRmd(&rs, digest)

	var out H160
	rmd160Final(&out, &rs)
	return out
}

func encodeX(out []byte, p *Pe) {
	putBeU64(out[0:8], p.X[3])
	putBeU64(out[8:16], p.X[2])
	putBeU64(out[16:24], p.X[1])
	putBeU64(out[24:32], p.X[0])
}

func encodeY(out []byte, p *Pe) {
	putBeU64(out[0:8], p.Y[3])
	putBeU64(out[8:16], p.Y[2])
	putBeU64(out[16:24], p.Y[1])
	putBeU64(out[24:32], p.Y[0])
}

// Addr33Batch computes Addr33 for each point, up to HashBatchSize at a
// time.
func Addr33Batch(hashes []H160, points []Pe) {
	n := len(points)
	if n > HashBatchSize {
		panic("ecsweep: addr batch too large")
	}

	var digests [HashBatchSize][32]byte
	var rs [HashBatchSize][16]uint32

	for i := 0; i < n; i++ {
		var msg [33]byte
		if points[i].Y[0]&1 != 0 {
			msg[0] = 0x03
		} else {
			msg[0] = 0x02
		}
		encodeX(msg[1:], &points[i])
		digests[i] = Sum256(msg[:])
	}
	for i := 0; i < n; i++ {
		prepareRmd(&rs[i], digests[i])
	}

	blocks := make([][16]uint32, n)
	copy(blocks, rs[:n])
	rmd160Batch(hashes[:n], blocks)
}

// Addr65Batch computes Addr65 for each point, up to HashBatchSize at a
// time.
func Addr65Batch(hashes []H160, points []Pe) {
	n := len(points)
	if n > HashBatchSize {
		panic("ecsweep: addr batch too large")
	}

	var digests [HashBatchSize][32]byte
	var rs [HashBatchSize][16]uint32

	for i := 0; i < n; i++ {
		var msg [65]byte
		msg[0] = 0x04
		encodeX(msg[1:33], &points[i])
		encodeY(msg[33:65], &points[i])
		digests[i] = Sum256(msg[:])
	}
	for i := 0; i < n; i++ {
		prepareRmd(&rs[i], digests[i])
	}

	blocks := make([][16]uint32, n)
	copy(blocks, rs[:n])
	rmd160Batch(hashes[:n], blocks)
}
