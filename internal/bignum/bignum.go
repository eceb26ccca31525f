// Package bignum hides an arbitrary-precision integer engine behind a
// narrow interface, following Design Note §9's instruction to treat the
// bignum library as an abstract "integer engine" rather than baking a
// concrete implementation into the value model. math/big is the engine;
// nothing outside this package imports it.
package bignum

import "math/big"

// Int is an arbitrary-precision integer. The zero value is not usable;
// construct with FromInt64 or FromString.
type Int struct {
	v *big.Int
}

// FromInt64 builds an Int from a machine-word integer.
func FromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// FromString parses a decimal integer. ok is false on malformed input.
func FromString(s string) (n Int, ok bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}

	return Int{v: v}, true
}

// String renders the integer in decimal.
func (n Int) String() string { return n.v.String() }

// Sign returns -1, 0 or 1.
func (n Int) Sign() int { return n.v.Sign() }

// IsZero reports whether n is zero.
func (n Int) IsZero() bool { return n.v.Sign() == 0 }

// Cmp returns -1, 0 or 1 as n is less than, equal to, or greater than m.
func (n Int) Cmp(m Int) int { return n.v.Cmp(m.v) }

// Int64 returns n as an int64 and whether the conversion was exact.
func (n Int) Int64() (int64, bool) {
	if !n.v.IsInt64() {
		return 0, false
	}

	return n.v.Int64(), true
}

// Float64 returns the nearest float64 approximation, used when promoting a
// BigInt/Double mix to Double per §4.5.
func (n Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(n.v).Float64()

	return f
}

// Add returns n+m.
func (n Int) Add(m Int) Int { return Int{v: new(big.Int).Add(n.v, m.v)} }

// Sub returns n-m.
func (n Int) Sub(m Int) Int { return Int{v: new(big.Int).Sub(n.v, m.v)} }

// Mul returns n*m.
func (n Int) Mul(m Int) Int { return Int{v: new(big.Int).Mul(n.v, m.v)} }

// QuoRem returns the truncated quotient and remainder of n/m. The caller
// is responsible for rejecting m == 0 beforehand (DivZero is a
// runtime-error concern, not a bignum-engine concern).
func (n Int) QuoRem(m Int) (q, r Int) {
	qq, rr := new(big.Int).QuoRem(n.v, m.v, new(big.Int))

	return Int{v: qq}, Int{v: rr}
}

// Factorial returns n! for n >= 0.
func Factorial(n int64) Int {
	return Int{v: new(big.Int).MulRange(1, n)}
}

// FitsMachineWord reports whether n fits in an int64, i.e. whether the
// value could be represented as an Int instead of a BigInt per §4.5's
// "promotes to BigInt once the result exceeds the machine-word range."
func (n Int) FitsMachineWord() bool { return n.v.IsInt64() }
