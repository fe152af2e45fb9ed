package ecsweep

// A1, A2 are the scalar-domain endomorphism multipliers alpha and
// alpha^2 (mod n), and B1, B2 are the coordinate-domain multipliers
// beta and beta^2 (mod p), used to produce the 6 points/scalars related
// to a base point by the secp256k1 GLV endomorphism.
var (
	A1 = Fe{0xdf02967c1b23bd72, 0x122e22ea20816678, 0xa5261c028812645a, 0x5363ad4cc05c30e0}
	A2 = Fe{0xe0cfc810b51283ce, 0xa880b9fc8ec739c2, 0x5ad9e3fd77ed9ba4, 0xac9c52b33fa3cf1f}
	B1 = Fe{0xc1396c28719501ee, 0x9cf0497512f58995, 0x6e64479eac3434e9, 0x7ae96a2b657c0710}
	B2 = Fe{0x3ec693d68e6afa40, 0x630fb68aed0a766a, 0x919bb86153cbcb16, 0x851695d49a83f8ef}
)

// Companion holds one of the 6 endomorphism-derived (point, scalar)
// pairs for a base point P with scalar k: the identity point/k itself,
// plus the 5 companions obtained by negating y and/or multiplying x by
// beta or beta^2, with the matching scalar transform applied mod n.
type Companion struct {
	Point  Pe
	Scalar Fe
}

// EndoCompanions returns the 6 points/scalars related to (p, k) by the
// secp256k1 GLV endomorphism: (x,y) and (x,-y), (beta*x,y) and
// (beta*x,-y), (beta^2*x,y) and (beta^2*x,-y), with scalars k, -k,
// alpha*k, -alpha*k, alpha^2*k, -alpha^2*k (mod n) respectively. p is
// assumed already reduced to affine form (Z == 1).
func EndoCompanions(p *Pe, k *Fe) [6]Companion {
	var negY, bx, b2x, negK, a1k, a2k, na1k, na2k Fe

	FeModPNeg(&negY, &p.Y)
	FeModPMul(&bx, &B1, &p.X)
	FeModPMul(&b2x, &B2, &p.X)

	FeModNNeg(&negK, k)
	FeModNMul(&a1k, &A1, k)
	FeModNMul(&a2k, &A2, k)
	FeModNNeg(&na1k, &a1k)
	FeModNNeg(&na2k, &a2k)

	one := Fe{1, 0, 0, 0}
	return [6]Companion{
		{Point: Pe{X: p.X, Y: p.Y, Z: one}, Scalar: *k},
		{Point: Pe{X: p.X, Y: negY, Z: one}, Scalar: negK},
		{Point: Pe{X: bx, Y: p.Y, Z: one}, Scalar: a1k},
		{Point: Pe{X: bx, Y: negY, Z: one}, Scalar: na1k},
		{Point: Pe{X: b2x, Y: p.Y, Z: one}, Scalar: a2k},
		{Point: Pe{X: b2x, Y: negY, Z: one}, Scalar: na2k},
	}
}
