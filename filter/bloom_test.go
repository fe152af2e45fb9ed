package filter

import (
	"os"
	"path/filepath"
	"testing"

	"ecsweep.dev"
)

func h(words ...uint32) ecsweep.H160 {
	var out ecsweep.H160
	copy(out[:], words)
	return out
}

func TestBloomInsertQuery(t *testing.T) {
	b := NewBloom(64)

	present := h(1, 2, 3, 4, 5)
	absent := h(0xdead, 0xbeef, 0xcafe, 0xf00d, 0x1234)

	b.Insert(present)
	if !b.Query(present) {
		t.Fatalf("expected inserted hash to query true")
	}
	if b.Query(absent) {
		t.Fatalf("expected never-inserted hash to query false (got false positive in small test)")
	}
}

func TestBloomSaveLoadRoundTrip(t *testing.T) {
	b := NewBloom(128)
	targets := []ecsweep.H160{
		h(1, 2, 3, 4, 5),
		h(10, 20, 30, 40, 50),
		h(0xffffffff, 0, 0, 0, 1),
	}
	for _, target := range targets {
		b.Insert(target)
	}

	path := filepath.Join(t.TempDir(), "test.blf")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadBloom(path)
	if err != nil {
		t.Fatalf("LoadBloom: %v", err)
	}

	for _, target := range targets {
		if !loaded.Query(target) {
			t.Errorf("loaded filter lost membership for %v", target)
		}
	}
}

func TestLoadBloomRejectsBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.blf")
	if err := os.WriteFile(path, []byte("not a bloom filter"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadBloom(path); err == nil {
		t.Fatalf("expected error loading malformed file")
	}
}

func TestEstimateBloomSize(t *testing.T) {
	size := EstimateBloomSize(1_000_000, 1_000_000)
	if size == 0 {
		t.Fatalf("expected nonzero size estimate")
	}
}
