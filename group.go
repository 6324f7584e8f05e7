package bsgs

import "math/big"

// Group is the arithmetic the solver consumes. P is the element type.
//
// Coordinate must return a non-negative integer below Characteristic(), and
// must map an element and its inverse to the same value (an affine
// x-coordinate does); the solver corrects for the sign when verifying.
type Group[P any] interface {
	// Order returns the order of x.
	Order(x P) *big.Int
	// Characteristic returns the characteristic of the underlying field.
	Characteristic() *big.Int
	// ScalarMult returns k·x for k ≥ 0.
	ScalarMult(x P, k *big.Int) P
	// Add returns a + b.
	Add(a, b P) P
	// Coordinate returns the value stored as a record's fieldValue.
	Coordinate(a P) *big.Int
	// Equal reports whether a and b are the same element.
	Equal(a, b P) bool
}

// isPrime tests the field characteristic once per query.
func isPrime(p *big.Int) bool {
	return p.Sign() > 0 && p.ProbablyPrime(32)
}
