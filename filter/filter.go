package filter

import "ecsweep.dev"

// Filter is the polymorphic membership test against which every
// derived address hash is checked: a bloom filter alone, or a bloom
// filter guarding a sorted hash list for exact membership.
type Filter struct {
	bloom *Bloom
	list  *HashList
}

// NewBloomFilter wraps a standalone bloom filter (probabilistic
// membership only, used when the target set is too large to hold
// exactly or when false positives are an acceptable tradeoff).
func NewBloomFilter(b *Bloom) *Filter {
	return &Filter{bloom: b}
}

// NewListFilter wraps an exact hash list; its own auxiliary bloom is
// used as the first-pass reject.
func NewListFilter(l *HashList) *Filter {
	return &Filter{bloom: l.aux, list: l}
}

// Membership reports whether h passes the filter: for a bloom-only
// filter this is probabilistic; for a list filter it is exact.
func (f *Filter) Membership(h ecsweep.H160) bool {
	if !f.bloom.Query(h) {
		return false
	}
	if f.list != nil {
		return f.list.Contains(h)
	}
	return true
}
