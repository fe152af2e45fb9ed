package filter

import (
	"bufio"
	"encoding/hex"
	"os"
	"sort"

	"ecsweep.dev"
)

// HashList is a sorted, deduplicated array of target hashes, queried
// by binary search. An auxiliary bloom filter sized 2*count+1 words is
// built at load time to reject most negative queries before the
// binary search runs.
type HashList struct {
	hashes []ecsweep.H160
	aux    *Bloom
}

func less(a, b ecsweep.H160) bool {
	for i := 0; i < 5; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equal(a, b ecsweep.H160) bool {
	return a == b
}

// NewHashList builds a HashList from an unsorted, possibly
// duplicate-containing slice of hashes.
func NewHashList(hashes []ecsweep.H160) *HashList {
	sorted := make([]ecsweep.H160, len(hashes))
	copy(sorted, hashes)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	deduped := sorted[:0]
	for i, h := range sorted {
		if i == 0 || !equal(h, deduped[len(deduped)-1]) {
			deduped = append(deduped, h)
		}
	}

	aux := NewBloom(uint64(2*len(deduped) + 1))
	for _, h := range deduped {
		aux.Insert(h)
	}

	return &HashList{hashes: deduped, aux: aux}
}

// LoadHashListHex reads one hex-encoded HASH160 value per line from
// path and builds a HashList from it.
func LoadHashListHex(path string) (*HashList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var hashes []ecsweep.H160
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if len(line) != 40 {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			continue
		}
		var h ecsweep.H160
		for i := 0; i < 5; i++ {
			h[i] = uint32(raw[i*4])<<24 | uint32(raw[i*4+1])<<16 | uint32(raw[i*4+2])<<8 | uint32(raw[i*4+3])
		}
		hashes = append(hashes, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewHashList(hashes), nil
}

// Contains reports whether h is in the list, consulting the auxiliary
// bloom before falling back to binary search.
func (l *HashList) Contains(h ecsweep.H160) bool {
	if !l.aux.Query(h) {
		return false
	}
	i := sort.Search(len(l.hashes), func(i int) bool { return !less(l.hashes[i], h) })
	return i < len(l.hashes) && equal(l.hashes[i], h)
}

// Len returns the number of distinct hashes held by the list.
func (l *HashList) Len() int {
	return len(l.hashes)
}
