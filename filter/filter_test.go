package filter

import (
	"testing"

	"ecsweep.dev"
)

func TestBloomFilterMembership(t *testing.T) {
	b := NewBloom(64)
	present := h(1, 2, 3, 4, 5)
	b.Insert(present)

	f := NewBloomFilter(b)
	if !f.Membership(present) {
		t.Fatalf("expected membership for inserted hash")
	}
}

func TestListFilterMembership(t *testing.T) {
	present := h(10, 20, 30, 40, 50)
	absent := h(1, 1, 1, 1, 1)

	l := NewHashList([]ecsweep.H160{present})
	f := NewListFilter(l)

	if !f.Membership(present) {
		t.Fatalf("expected membership for listed hash")
	}
	if f.Membership(absent) {
		t.Fatalf("did not expect membership for absent hash")
	}
}
