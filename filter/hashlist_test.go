package filter

import (
	"os"
	"path/filepath"
	"testing"

	"ecsweep.dev"
)

func TestHashListContains(t *testing.T) {
	a := h(1, 0, 0, 0, 0)
	b := h(2, 0, 0, 0, 0)
	c := h(3, 0, 0, 0, 0)
	absent := h(99, 0, 0, 0, 0)

	l := NewHashList([]ecsweep.H160{b, a, a, c})
	if l.Len() != 3 {
		t.Fatalf("expected 3 deduped hashes, got %d", l.Len())
	}

	for _, target := range []ecsweep.H160{a, b, c} {
		if !l.Contains(target) {
			t.Errorf("expected %v to be contained", target)
		}
	}
	if l.Contains(absent) {
		t.Errorf("did not expect %v to be contained", absent)
	}
}

func TestLoadHashListHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	content := "751e76e8199196d454941c45d1b3a323f1433bd6\n" +
		"466a3a45c2b862bb421862c8d12097b11db5f02d\n" +
		"not-a-valid-line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := LoadHashListHex(path)
	if err != nil {
		t.Fatalf("LoadHashListHex: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 valid hashes, got %d", l.Len())
	}
}
