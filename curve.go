package bsgs

import "math/big"

// Curve is the short Weierstrass curve y² = x³ + A·x + B over F_P, restricted
// to the subgroup of order N in which discrete logs are taken.
type Curve struct {
	P, A, B *big.Int
	N       *big.Int // order of the base point's subgroup
}

// CurvePoint is an affine point; Inf marks the point at infinity.
type CurvePoint struct {
	X, Y *big.Int
	Inf  bool
}

var _ Group[CurvePoint] = (*Curve)(nil)

// NewPoint returns the affine point (x, y) reduced mod P.
func (c *Curve) NewPoint(x, y *big.Int) CurvePoint {
	return CurvePoint{X: c.mod(x), Y: c.mod(y)}
}

func (c *Curve) mod(a *big.Int) *big.Int {
	z := new(big.Int).Mod(a, c.P)
	if z.Sign() < 0 {
		z.Add(z, c.P)
	}
	return z
}

// OnCurve reports whether pt satisfies the curve equation.
func (c *Curve) OnCurve(pt CurvePoint) bool {
	if pt.Inf {
		return true
	}
	rhs := new(big.Int).Mul(pt.X, pt.X)
	rhs.Mul(rhs, pt.X)
	rhs.Add(rhs, new(big.Int).Mul(c.A, pt.X))
	rhs.Add(rhs, c.B)
	y2 := new(big.Int).Mul(pt.Y, pt.Y)
	return c.mod(y2).Cmp(c.mod(rhs)) == 0
}

// Neg returns -pt.
func (c *Curve) Neg(pt CurvePoint) CurvePoint {
	if pt.Inf {
		return pt
	}
	return CurvePoint{X: new(big.Int).Set(pt.X), Y: c.mod(new(big.Int).Neg(pt.Y))}
}

// Add implements the affine group law.
func (c *Curve) Add(a, b CurvePoint) CurvePoint {
	if a.Inf {
		return b
	}
	if b.Inf {
		return a
	}
	p := c.P
	var lam *big.Int
	if a.X.Cmp(b.X) == 0 {
		// a == -b, including the vertical tangent at y = 0
		if c.mod(new(big.Int).Add(a.Y, b.Y)).Sign() == 0 {
			return CurvePoint{Inf: true}
		}
		num := new(big.Int).Mul(a.X, a.X)
		num.Mul(num, big.NewInt(3))
		num.Add(num, c.A)
		den := new(big.Int).Lsh(a.Y, 1)
		lam = num.Mul(num, den.ModInverse(c.mod(den), p))
	} else {
		num := new(big.Int).Sub(b.Y, a.Y)
		den := c.mod(new(big.Int).Sub(b.X, a.X))
		lam = num.Mul(num, den.ModInverse(den, p))
	}
	lam = c.mod(lam)

	xr := new(big.Int).Mul(lam, lam)
	xr.Sub(xr, a.X)
	xr.Sub(xr, b.X)
	xr = c.mod(xr)
	yr := new(big.Int).Sub(a.X, xr)
	yr.Mul(yr, lam)
	yr.Sub(yr, a.Y)
	return CurvePoint{X: xr, Y: c.mod(yr)}
}

// ScalarMult computes k·pt by double-and-add; negative k multiplies -pt.
func (c *Curve) ScalarMult(pt CurvePoint, k *big.Int) CurvePoint {
	if k.Sign() < 0 {
		return c.ScalarMult(c.Neg(pt), new(big.Int).Neg(k))
	}
	r := CurvePoint{Inf: true}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.Add(r, r)
		if k.Bit(i) == 1 {
			r = c.Add(r, pt)
		}
	}
	return r
}

// Order returns N, the order of the configured subgroup.
func (c *Curve) Order(CurvePoint) *big.Int { return new(big.Int).Set(c.N) }

// Characteristic returns P.
func (c *Curve) Characteristic() *big.Int { return new(big.Int).Set(c.P) }

// Coordinate returns the affine x-coordinate; the point at infinity maps to 0.
func (c *Curve) Coordinate(pt CurvePoint) *big.Int {
	if pt.Inf {
		return new(big.Int)
	}
	return new(big.Int).Set(pt.X)
}

// Equal reports whether a and b are the same point.
func (c *Curve) Equal(a, b CurvePoint) bool {
	if a.Inf || b.Inf {
		return a.Inf == b.Inf
	}
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0
}
