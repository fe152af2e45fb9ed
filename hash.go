package ecsweep

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// SHA256 wraps a SHA-256 hash context, preferring a hardware-accelerated
// implementation (ARMv8 crypto extensions, Intel SHA extensions, AVX2
// multi-buffer) when the running CPU supports it and falling back to a
// portable schedule-expansion implementation otherwise.
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context.
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write feeds data into the hash.
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Sum finalizes the hash and returns the digest, copied into out if it
// is non-nil (up to len(out) bytes) or into a new 32-byte slice.
func (h *SHA256) Sum(out []byte) []byte {
	if out == nil {
		out = make([]byte, 32)
	}
	copy(out, h.hasher.Sum(nil))
	return out
}

// Finalize finalizes the hash and writes the 32-byte digest into out32.
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("ecsweep: sha256 output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Sum256 is a one-shot SHA-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := NewSHA256()
	h.Write(data)
	var out [32]byte
	h.Finalize(out[:])
	return out
}
