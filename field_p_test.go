package ecsweep

import "testing"

func TestFeModPAddSubRoundTrip(t *testing.T) {
	var a, b, sum, back Fe
	a.FromHex("123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0")
	b.FromHex("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210")

	FeModPAdd(&sum, &a, &b)
	FeModPSub(&back, &sum, &b)
	if back.Cmp(&a) != 0 {
		t.Fatalf("(a+b)-b != a: got %s want %s", back.Hex(), a.Hex())
	}
}

func TestFeModPMulIdentity(t *testing.T) {
	var a, one, r Fe
	a.FromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	one.SetU64(1)

	FeModPMul(&r, &a, &one)
	if r.Cmp(&a) != 0 {
		t.Fatalf("a*1 != a: got %s want %s", r.Hex(), a.Hex())
	}
}

func TestFeModPInv(t *testing.T) {
	var a, inv, prod, one Fe
	a.FromHex("2")
	one.SetU64(1)

	FeModPInv(&inv, &a)
	FeModPMul(&prod, &a, &inv)
	if prod.Cmp(&one) != 0 {
		t.Fatalf("a * a^-1 != 1, got %s", prod.Hex())
	}
}

func TestFeModPInvAddChainMatchesBinPow(t *testing.T) {
	inputs := []string{
		"2",
		"3",
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"deadbeefcafebabe0011223344556677889900aabbccddeeff0123456789abc",
	}
	for _, hex := range inputs {
		var a, r1, r2 Fe
		a.FromHex(hex)

		feModPInvAddChain(&r1, &a)
		feModPInvBinPow(&r2, &a)
		if r1.Cmp(&r2) != 0 {
			t.Errorf("inverse mismatch for %s: addchain=%s binpow=%s", hex, r1.Hex(), r2.Hex())
		}
	}
}

func TestFeModPGrpInv(t *testing.T) {
	var a, b, c Fe
	a.FromHex("5")
	b.FromHex("7")
	c.FromHex("11")

	fs := []Fe{a, b, c}
	FeModPGrpInv(fs)

	var one Fe
	one.SetU64(1)
	inputs := []Fe{a, b, c}
	for i, f := range fs {
		var prod Fe
		FeModPMul(&prod, &f, &inputs[i])
		if prod.Cmp(&one) != 0 {
			t.Errorf("batch inverse %d: product != 1, got %s", i, prod.Hex())
		}
	}
}

func TestFeModPNeg(t *testing.T) {
	var a, neg, sum Fe
	a.FromHex("123")
	FeModPNeg(&neg, &a)
	FeModPAdd(&sum, &a, &neg)
	if !sum.IsZero() {
		t.Fatalf("a + (-a) != 0, got %s", sum.Hex())
	}
}
