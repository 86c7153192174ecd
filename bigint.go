// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math/big"

// BigInt is the opaque arbitrary-precision integer type used for
// minterm/Walsh coefficients. The core only ever adds, subtracts,
// shifts and compares these values; per the package's external-collaborator
// boundary, math/big.Int is wrapped here and nowhere else in the core
// imports "math/big" directly.
type BigInt struct {
	v big.Int
}

// NewBigInt returns a BigInt initialized to n.
func NewBigInt(n int64) *BigInt {
	b := &BigInt{}
	b.v.SetInt64(n)
	return b
}

// Add returns a new BigInt equal to a+b.
func (a *BigInt) Add(b *BigInt) *BigInt {
	r := &BigInt{}
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a new BigInt equal to a-b.
func (a *BigInt) Sub(b *BigInt) *BigInt {
	r := &BigInt{}
	r.v.Sub(&a.v, &b.v)
	return r
}

// Lsh returns a new BigInt equal to a<<n.
func (a *BigInt) Lsh(n uint) *BigInt {
	r := &BigInt{}
	r.v.Lsh(&a.v, n)
	return r
}

// Cmp compares a and b the way big.Int.Cmp does.
func (a *BigInt) Cmp(b *BigInt) int {
	return a.v.Cmp(&b.v)
}

// String renders the decimal representation.
func (a *BigInt) String() string {
	return a.v.String()
}

// Int64 returns the value truncated to an int64, for callers who know it
// fits (tests, small universes).
func (a *BigInt) Int64() int64 {
	return a.v.Int64()
}
