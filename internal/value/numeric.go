package value

import (
	"math"

	"github.com/hipparcos/dialecte/internal/bignum"
	"github.com/hipparcos/dialecte/internal/lerr"
)

func divZeroError() error { return lerr.New(lerr.DivZero, "division by zero") }

func badOperandError(msg string) error { return lerr.New(lerr.BadOperand, "%s", msg) }

// rank orders the promotion lattice from §4.5: Int < BigInt < Double.
func rank(k Kind) int {
	switch k {
	case Int:
		return 0
	case BigInt:
		return 1
	case Double:
		return 2
	default:
		return -1
	}
}

// joinKind is the promotion lattice's join: the result kind of a binary
// numeric operation is the greater-ranked operand kind.
func joinKind(a, b Kind) Kind {
	if rank(a) >= rank(b) {
		return a
	}

	return b
}

func toBig(v *Value) bignum.Int {
	if v.Kind == BigInt {
		return v.big
	}

	return bignum.FromInt64(v.i)
}

func toDouble(v *Value) float64 {
	switch v.Kind {
	case Double:
		return v.f
	case BigInt:
		return v.big.Float64()
	default:
		return float64(v.i)
	}
}

// normalizeBig demotes a BigInt engine result back to Int only when it
// arose from an Int/Int operation that overflowed — §4.5 only promotes,
// it never asks BigInt-kind operands to demote, so this helper is used
// exclusively by the Int-overflow and Factorial/Pow paths below.
func normalizeBig(n bignum.Int) *Value {
	if n.FitsMachineWord() {
		i, _ := n.Int64()

		return NewInt(i)
	}

	return NewBigInt(n)
}

func addOverflows(a, b int64) bool {
	sum := a + b

	return (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0)
}

func subOverflows(a, b int64) bool {
	diff := a - b

	return (b < 0 && diff < a) || (b > 0 && diff > a)
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b

	return p/b != a
}

// Add implements `+`. Int+Int overflow promotes to BigInt (§4.5).
func Add(a, b *Value) *Value {
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		return NewDouble(toDouble(a) + toDouble(b))
	case BigInt:
		return NewBigInt(toBig(a).Add(toBig(b)))
	default:
		if addOverflows(a.i, b.i) {
			return normalizeBig(bignum.FromInt64(a.i).Add(bignum.FromInt64(b.i)))
		}

		return NewInt(a.i + b.i)
	}
}

// Sub implements binary `-`.
func Sub(a, b *Value) *Value {
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		return NewDouble(toDouble(a) - toDouble(b))
	case BigInt:
		return NewBigInt(toBig(a).Sub(toBig(b)))
	default:
		if subOverflows(a.i, b.i) {
			return normalizeBig(bignum.FromInt64(a.i).Sub(bignum.FromInt64(b.i)))
		}

		return NewInt(a.i - b.i)
	}
}

// Mul implements `*`.
func Mul(a, b *Value) *Value {
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		return NewDouble(toDouble(a) * toDouble(b))
	case BigInt:
		return NewBigInt(toBig(a).Mul(toBig(b)))
	default:
		if mulOverflows(a.i, b.i) {
			return normalizeBig(bignum.FromInt64(a.i).Mul(bignum.FromInt64(b.i)))
		}

		return NewInt(a.i * b.i)
	}
}

// Div implements `/`. Int/Int with no remainder stays Int; with remainder
// promotes to Double. Division by zero is DivZero regardless of kind.
func Div(a, b *Value) (*Value, error) {
	if b.IsZero() {
		return nil, divZeroError()
	}
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		return NewDouble(toDouble(a) / toDouble(b)), nil
	case BigInt:
		q, r := toBig(a).QuoRem(toBig(b))
		if r.IsZero() {
			return NewBigInt(q), nil
		}

		return NewDouble(toBig(a).Float64() / toBig(b).Float64()), nil
	default:
		if a.i%b.i == 0 {
			return NewInt(a.i / b.i), nil
		}

		return NewDouble(float64(a.i) / float64(b.i)), nil
	}
}

// Mod implements `%`.
func Mod(a, b *Value) (*Value, error) {
	if b.IsZero() {
		return nil, divZeroError()
	}
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		return NewDouble(math.Mod(toDouble(a), toDouble(b))), nil
	case BigInt:
		_, r := toBig(a).QuoRem(toBig(b))

		return NewBigInt(r), nil
	default:
		return NewInt(a.i % b.i), nil
	}
}

// Pow implements `^`. A non-negative integer exponent is computed exactly
// (promoting to BigInt on overflow, matching §4.5's Factorial rule);
// anything else falls back to floating-point exponentiation.
func Pow(a, b *Value) *Value {
	if joinKind(a.Kind, b.Kind) == Double {
		return NewDouble(math.Pow(toDouble(a), toDouble(b)))
	}
	exp, ok := exactNonNegativeInt(b)
	if !ok {
		return NewDouble(math.Pow(toDouble(a), toDouble(b)))
	}
	base := toBig(a)
	result := bignum.FromInt64(1)
	for i := int64(0); i < exp; i++ {
		result = result.Mul(base)
	}

	return normalizeBig(result)
}

func exactNonNegativeInt(v *Value) (int64, bool) {
	switch v.Kind {
	case Int:
		return v.i, v.i >= 0
	case BigInt:
		n, ok := v.big.Int64()

		return n, ok && n >= 0
	default:
		return 0, false
	}
}

// Factorial implements unary `!` on a non-negative Int/BigInt.
func Factorial(v *Value) (*Value, error) {
	n, ok := exactNonNegativeInt(v)
	if !ok {
		return nil, badOperandError("factorial requires a non-negative integer")
	}

	return normalizeBig(bignum.Factorial(n)), nil
}

// Compare returns -1, 0 or 1 for numeric a, b.
func Compare(a, b *Value) int {
	switch joinKind(a.Kind, b.Kind) {
	case Double:
		x, y := toDouble(a), toDouble(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case BigInt:
		return toBig(a).Cmp(toBig(b))
	default:
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
}

// Neg implements unary `-`.
func Neg(v *Value) *Value {
	switch v.Kind {
	case Double:
		return NewDouble(-v.f)
	case BigInt:
		return NewBigInt(bignum.FromInt64(0).Sub(v.big))
	default:
		if v.i == math.MinInt64 {
			return NewBigInt(bignum.FromInt64(0).Sub(bignum.FromInt64(v.i)))
		}

		return NewInt(-v.i)
	}
}
