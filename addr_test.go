package ecsweep

import (
	"encoding/binary"
	"encoding/hex"
	"testing"
)

func h160FromHex(s string) H160 {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 20 {
		panic("bad test vector: " + s)
	}
	var h H160
	for i := 0; i < 5; i++ {
		h[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return h
}

func TestAddr33KnownVectors(t *testing.T) {
	cases := []struct {
		k    uint64
		want string
	}{
		{1, "751e76e8199196d454941c45d1b3a323f1433bd6"},
		{2, "466a3a45c2b862bb421862c8d12097b11db5f02d"},
	}
	for _, c := range cases {
		var k Fe
		k.SetU64(c.k)

		var p Pe
		JacobiMulRdc(&p, &G1, &k)

		got := Addr33(&p)
		want := h160FromHex(c.want)
		if got != want {
			t.Errorf("k=%d: Addr33 = %x, want %x", c.k, got, want)
		}
	}
}

func TestAddr33BatchMatchesSingle(t *testing.T) {
	var ks [3]Fe
	ks[0].SetU64(1)
	ks[1].SetU64(2)
	ks[2].SetU64(3)

	points := make([]Pe, 3)
	for i := range ks {
		JacobiMulRdc(&points[i], &G1, &ks[i])
	}

	batch := make([]H160, 3)
	Addr33Batch(batch, points)

	for i := range points {
		single := Addr33(&points[i])
		if batch[i] != single {
			t.Errorf("batch[%d] = %x, want %x", i, batch[i], single)
		}
	}
}

func TestAddr65BatchMatchesSingle(t *testing.T) {
	var ks [2]Fe
	ks[0].SetU64(1)
	ks[1].SetU64(5)

	points := make([]Pe, 2)
	for i := range ks {
		JacobiMulRdc(&points[i], &G1, &ks[i])
	}

	batch := make([]H160, 2)
	Addr65Batch(batch, points)

	for i := range points {
		single := Addr65(&points[i])
		if batch[i] != single {
			t.Errorf("batch[%d] = %x, want %x", i, batch[i], single)
		}
	}
}
