package ecsweep

// Pe is a point on secp256k1 held in standard projective (X, Y, Z)
// coordinates, where the affine point is (X/Z, Y/Z). JacobiMul and
// GTable.Mul mark the additive identity with X == 0 and Y == 0.
type Pe struct {
	X, Y, Z Fe
}

// G1 is the standard secp256k1 base point.
var G1 = Pe{
	X: Fe{0x59f2815b16f81798, 0x029bfcdb2dce28d9, 0x55a06295ce870b07, 0x79be667ef9dcbbac},
	Y: Fe{0x9c47d08ffb10d4b8, 0xfd17b448a6855419, 0x5da4fbfc0e1108a8, 0x483ada7726a3c465},
	Z: Fe{1, 0, 0, 0},
}

// G2 is 2*G1, used as a starting point by the benchmarks.
var G2 = Pe{
	X: Fe{0xabac09b95c709ee5, 0x5c778e4b8cef3ca7, 0x3045406e95c07cd8, 0xc6047f9441ed7d6d},
	Y: Fe{0x236431a950cfe52a, 0xf7f632653266d0e1, 0xa3c58419466ceaee, 0x1ae168fea63dc339},
	Z: Fe{1, 0, 0, 0},
}

// AffineDbl doubles an affine point p (Z assumed 1) using the textbook
// slope formula; retained alongside the projective operations for
// tests that cross-check the projective formulas.
// https://en.wikibooks.org/wiki/Cryptography/Prime_Curve/Affine_Coordinates
func AffineDbl(r, p *Pe) {
	var t1, t2, t3 Fe
	FeModPSqr(&t1, &p.X)    // x^2
	FeModPAdd(&t2, &t1, &t1) // 2*x^2
	FeModPAdd(&t2, &t2, &t1) // 3*x^2
	FeModPAdd(&t1, &p.Y, &p.Y) // 2*y
	FeModPInv(&t1, &t1)
	FeModPMul(&t1, &t2, &t1) // lambda
	FeModPSqr(&t3, &t1)      // lambda^2
	FeModPSub(&t3, &t3, &p.X)
	FeModPSub(&t3, &t3, &p.X) // x3 = lambda^2 - 2*x1
	FeModPSub(&t2, &p.X, &t3) // x1 - x3
	FeModPMul(&t2, &t1, &t2)
	FeModPSub(&r.Y, &t2, &p.Y)
	r.X = t3
	r.Z = Fe{1, 0, 0, 0}
}

// AffineAdd adds two distinct affine points p and q.
func AffineAdd(r, p, q *Pe) {
	var t1, t2, t3, t4 Fe
	FeModPSub(&t1, &p.Y, &q.Y)
	FeModPSub(&t2, &p.X, &q.X)
	FeModPInv(&t2, &t2)
	FeModPMul(&t1, &t1, &t2) // lambda
	FeModPSqr(&t3, &t1)
	FeModPSub(&t3, &t3, &p.X)
	FeModPSub(&t3, &t3, &q.X) // x3
	FeModPSub(&t4, &p.X, &t3)
	FeModPMul(&t4, &t1, &t4)
	FeModPSub(&r.Y, &t4, &p.Y)
	r.X = t3
	r.Z = Fe{1, 0, 0, 0}
}

// JacobiDbl doubles p in standard projective coordinates.
// https://en.wikibooks.org/wiki/Cryptography/Prime_Curve/Standard_Projective_Coordinates
func JacobiDbl(r, p *Pe) {
	var w, s, b, h, t Fe

	FeModPSqr(&t, &p.X)     // X^2
	FeModPAdd(&w, &t, &t)   // 2*X^2
	FeModPAdd(&w, &w, &t)   // 3*X^2
	FeModPMul(&s, &p.Y, &p.Z) // Y*Z
	FeModPMul(&b, &p.X, &p.Y) // X*Y
	FeModPMul(&b, &b, &s)     // X*Y*S
	FeModPAdd(&b, &b, &b)     // 2*B
	FeModPAdd(&b, &b, &b)     // 4*B
	FeModPAdd(&t, &b, &b)     // 8*B
	FeModPSqr(&h, &w)         // W^2
	FeModPSub(&h, &h, &t)     // W^2 - 8*B

	var rx, ry, rz Fe
	FeModPMul(&rx, &h, &s)
	FeModPAdd(&rx, &rx, &rx) // X' = 2*H*S

	FeModPSub(&t, &b, &h)
	FeModPMul(&t, &w, &t) // W*(4*B - H)
	FeModPSqr(&ry, &p.Y)  // Y^2
	FeModPSqr(&h, &s)     // S^2
	FeModPMul(&ry, &ry, &h)
	FeModPAdd(&ry, &ry, &ry)
	FeModPAdd(&ry, &ry, &ry)
	FeModPAdd(&ry, &ry, &ry) // 8*Y^2*S^2
	FeModPSub(&ry, &t, &ry)  // Y' = W*(4*B - H) - 8*Y^2*S^2

	FeModPMul(&rz, &h, &s)
	FeModPAdd(&rz, &rz, &rz)
	FeModPAdd(&rz, &rz, &rz)
	FeModPAdd(&rz, &rz, &rz) // Z' = 8*S^3

	r.X, r.Y, r.Z = rx, ry, rz
}

// JacobiAdd adds distinct points p and q in standard projective
// coordinates. The caller must ensure p and q do not share an x
// coordinate (callers that may double instead dispatch to JacobiDbl).
func JacobiAdd(r, p, q *Pe) {
	var u2, v2, u, v, w, a, vs, vc Fe

	FeModPMul(&u2, &p.Y, &q.Z) // u2 = py*qz
	FeModPMul(&v2, &p.X, &q.Z) // v2 = px*qz
	FeModPMul(&u, &q.Y, &p.Z)  // u1 = qy*pz
	FeModPMul(&v, &q.X, &p.Z)  // v1 = qx*pz
	FeModPMul(&w, &p.Z, &q.Z)  // w = pz*qz
	FeModPSub(&u, &u, &u2)     // u = u1 - u2
	FeModPSub(&v, &v, &v2)     // v = v1 - v2
	FeModPSqr(&vs, &v)         // v^2
	FeModPMul(&vc, &vs, &v)    // v^3
	FeModPMul(&vs, &vs, &v2)   // v^2 * v2

	var rz Fe
	FeModPMul(&rz, &vc, &w) // z3 = v^3 * w

	FeModPSqr(&a, &u)       // u^2
	FeModPMul(&a, &a, &w)   // u^2 * w
	FeModPAdd(&w, &vs, &vs) // 2 * v^2 * v2
	FeModPSub(&a, &a, &vc)  // u^2*w - v^3
	FeModPSub(&a, &a, &w)   // u^2*w - v^3 - 2*v^2*v2

	var rx Fe
	FeModPMul(&rx, &v, &a) // x3 = v*a

	FeModPSub(&a, &vs, &a) // v^2*v2 - a
	FeModPMul(&a, &a, &u)  // u * (v^2*v2 - a)
	FeModPMul(&u, &vc, &u2) // v^3 * u2

	var ry Fe
	FeModPSub(&ry, &a, &u) // y3 = u*(v^2*v2 - a) - v^3*u2

	r.X, r.Y, r.Z = rx, ry, rz
}

// JacobiRdc reduces a standard-projective point to affine form (Z == 1).
func JacobiRdc(r, a *Pe) {
	z := a.Z
	FeModPInv(&z, &z)
	FeModPMul(&r.X, &a.X, &z)
	FeModPMul(&r.Y, &a.Y, &z)
	r.Z = Fe{1, 0, 0, 0}
}

// JacobiGrpRdc reduces a whole slice of points to affine form using a
// single batch inversion of their Z coordinates.
func JacobiGrpRdc(ps []Pe) {
	n := len(ps)
	if n == 0 {
		return
	}
	zz := make([]Fe, n)
	for i := range ps {
		zz[i] = ps[i].Z
	}
	FeModPGrpInv(zz)

	for i := range ps {
		FeModPMul(&ps[i].X, &ps[i].X, &zz[i])
		FeModPMul(&ps[i].Y, &ps[i].Y, &zz[i])
		ps[i].Z = Fe{1, 0, 0, 0}
	}
}

// isInf reports whether p holds the sentinel point-at-infinity value
// used internally by JacobiMul (X == 0 and Y == 0, which is never a
// valid on-curve affine representative).
func (p *Pe) isInf() bool {
	return p.X[0] == 0 && p.X[1] == 0 && p.X[2] == 0 && p.X[3] == 0 &&
		p.Y[0] == 0 && p.Y[1] == 0 && p.Y[2] == 0 && p.Y[3] == 0
}

// JacobiMul computes r = k*p via double-and-add in projective space.
func JacobiMul(r *Pe, p *Pe, k *Fe) {
	t := *p
	r.X = FeZero
	r.Y = FeZero
	r.Z = Fe{1, 0, 0, 0}

	bitlen := k.BitLen()
	for i := 0; i < bitlen; i++ {
		if k[i/64]&(1<<(uint(i)%64)) != 0 {
			if r.isInf() {
				*r = t
			} else {
				JacobiAdd(r, r, &t)
			}
		}
		JacobiDbl(&t, &t)
	}
}

// JacobiAddRdc adds p and q and reduces the result to affine form.
func JacobiAddRdc(r, p, q *Pe) {
	JacobiAdd(r, p, q)
	JacobiRdc(r, r)
}

// JacobiMulRdc multiplies p by k and reduces the result to affine form.
func JacobiMulRdc(r, p *Pe, k *Fe) {
	JacobiMul(r, p, k)
	JacobiRdc(r, r)
}

// ECVerify reports whether p lies on y^2 = x^3 + 7 after reduction to
// affine coordinates.
func ECVerify(p *Pe) bool {
	var q Pe
	q = *p
	JacobiRdc(&q, &q)

	var y2, x3 Fe
	FeModPSqr(&y2, &q.Y)
	FeModPSqr(&x3, &q.X)
	FeModPMul(&x3, &x3, &q.X)
	FeModPSub(&y2, &y2, &x3)

	return y2[0] == 7 && y2[1] == 0 && y2[2] == 0 && y2[3] == 0
}
