// Package filter implements the two membership-test backends used to
// check whether a derived address hash is one of the targets: a bloom
// filter for probabilistic large-set membership, and a sorted hash
// list (with an auxiliary bloom) for exact membership. Filter wraps
// either one behind a single Membership method.
package filter

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/bits-and-blooms/bitset"

	"ecsweep.dev"
)

const (
	blfMagic   uint32 = 0x45434246 // FourCC: ECBF
	blfVersion uint32 = 1
)

// Bloom is a fixed-size bit array with a 20-hash derivation scheme
// tuned for 160-bit inputs, backed by bitset.BitSet for storage.
type Bloom struct {
	size uint64 // number of 64-bit words, m = size*64 bit positions
	bits *bitset.BitSet
}

// NewBloom allocates a bloom filter with size 64-bit words of storage.
func NewBloom(size uint64) *Bloom {
	return &Bloom{size: size, bits: bitset.New(uint(size * 64))}
}

// EstimateBloomSize returns the word count m/64 needed to hold n
// entries at false-positive rate 1/r, per the standard optimal-m
// formula (https://hur.st/bloomfilter/), which assumes the optimal hash
// count rather than this filter's fixed 20.
func EstimateBloomSize(n uint64, r uint64) uint64 {
	p := 1.0 / float64(r)
	m := uint64(float64(n) * math.Log(p) / math.Log(1.0/math.Pow(2.0, math.Log(2.0))))
	return (m + 63) / 64
}

func (b *Bloom) setBit(idx uint64) {
	b.bits.Set(uint(idx % (b.size * 64)))
}

func (b *Bloom) getBit(idx uint64) bool {
	return b.bits.Test(uint(idx % (b.size * 64)))
}

var blfShifts = [4]uint{24, 28, 36, 40}

// mixes derives the five 64-bit word-pair concatenations a1..a5 from
// the five 32-bit HASH160 words, cyclically overlapping by one word.
func mixes(h ecsweep.H160) [5]uint64 {
	return [5]uint64{
		uint64(h[0])<<32 | uint64(h[1]),
		uint64(h[2])<<32 | uint64(h[3]),
		uint64(h[4])<<32 | uint64(h[0]),
		uint64(h[1])<<32 | uint64(h[2]),
		uint64(h[3])<<32 | uint64(h[4]),
	}
}

// Insert sets all 20 derived bit positions for hash h.
func (b *Bloom) Insert(h ecsweep.H160) {
	a := mixes(h)
	for _, s := range blfShifts {
		for i := 0; i < 5; i++ {
			j := (i + 1) % 5
			b.setBit(a[i]<<s | a[j]>>s)
		}
	}
}

// Query reports whether all 20 derived bit positions are set: true
// means "possibly present", false means "definitely absent".
func (b *Bloom) Query(h ecsweep.H160) bool {
	a := mixes(h)
	for _, s := range blfShifts {
		for i := 0; i < 5; i++ {
			j := (i + 1) % 5
			if !b.getBit(a[i]<<s | a[j]>>s) {
				return false
			}
		}
	}
	return true
}

// Save writes the bloom filter to path in the ECBF persistence format:
// 4-byte magic, 4-byte version, 8-byte size (words), then size 64-bit
// words in native (little-endian) order.
func (b *Bloom) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, blfMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, blfVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, b.size); err != nil {
		return err
	}

	words := b.bits.Bytes()
	for _, word := range words {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadBloom reads a bloom filter previously written by Save.
func LoadBloom(path string) (*Bloom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var magic, version uint32
	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if magic != blfMagic || version != blfVersion {
		return nil, errors.New("filter: invalid bloom filter header; regenerate with blf-gen")
	}
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}

	words := make([]uint64, size)
	if err := binary.Read(r, binary.LittleEndian, &words); err != nil && err != io.EOF {
		return nil, err
	}

	b := NewBloom(size)
	for i, word := range words {
		for bit := 0; bit < 64; bit++ {
			if word&(1<<uint(bit)) != 0 {
				b.bits.Set(uint(i*64 + bit))
			}
		}
	}
	return b, nil
}
