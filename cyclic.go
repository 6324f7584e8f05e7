package bsgs

import "math/big"

// CyclicGroup is Z/MZ under addition. Coordinate folds a and M−a together the
// way an elliptic x-coordinate folds a point and its negation, which makes it
// a small, exact model of the curve case.
type CyclicGroup struct {
	M     *big.Int
	prime *big.Int // least prime ≥ M
}

var _ Group[*big.Int] = (*CyclicGroup)(nil)

// NewCyclicGroup returns Z/mZ. m must be at least 2.
func NewCyclicGroup(m int64) *CyclicGroup {
	M := big.NewInt(m)
	p := new(big.Int).Set(M)
	for !p.ProbablyPrime(32) {
		p.Add(p, big.NewInt(1))
	}
	return &CyclicGroup{M: M, prime: p}
}

// Element returns a mod M.
func (g *CyclicGroup) Element(a int64) *big.Int {
	return new(big.Int).Mod(big.NewInt(a), g.M)
}

// Order returns M / gcd(x, M).
func (g *CyclicGroup) Order(x *big.Int) *big.Int {
	d := new(big.Int).GCD(nil, nil, x, g.M)
	if d.Sign() == 0 {
		return big.NewInt(1)
	}
	return d.Quo(g.M, d)
}

// Characteristic returns the least prime ≥ M, an upper bound for Coordinate.
func (g *CyclicGroup) Characteristic() *big.Int { return new(big.Int).Set(g.prime) }

func (g *CyclicGroup) ScalarMult(x, k *big.Int) *big.Int {
	r := new(big.Int).Mul(x, k)
	return r.Mod(r, g.M)
}

func (g *CyclicGroup) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, g.M)
}

// Coordinate returns min(a, M−a).
func (g *CyclicGroup) Coordinate(a *big.Int) *big.Int {
	neg := new(big.Int).Sub(g.M, a)
	if neg.Cmp(a) < 0 {
		return neg
	}
	return new(big.Int).Set(a)
}

func (g *CyclicGroup) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
