package math

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

func Add(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("SafeMath: addition overflow %d + %d: %w", a, b, shared.ErrArithmeticOverflow)
	}
	return sum, nil
}

func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("SafeMath: subtraction overflow %d - %d: %w", a, b, shared.ErrArithmeticOverflow)
	}
	return a - b, nil
}

// Widen returns a + b without loss.
func Widen(a, b uint64) uint128.Uint128 {
	return uint128.From64(a).Add64(b)
}

// ToUint64 narrows v, failing if the high word is set.
func ToUint64(v uint128.Uint128) (uint64, error) {
	if v.Hi != 0 {
		return 0, fmt.Errorf("SafeMath: %s does not fit in 64 bits: %w", v, shared.ErrArithmeticOverflow)
	}
	return v.Lo, nil
}

// MulDiv computes x * y / denominator with a 128-bit product.
func MulDiv(x, y, denominator uint64, rounding shared.Rounding) (uint64, error) {
	return MulDivWide(x, y, uint128.From64(denominator), rounding)
}

// MulDivWide is MulDiv with a denominator that may already exceed 64 bits,
// such as reserve + amount.
func MulDivWide(x, y uint64, denominator uint128.Uint128, rounding shared.Rounding) (uint64, error) {
	if denominator.IsZero() {
		return 0, fmt.Errorf("MulDiv: division by zero: %w", shared.ErrInvalidTradeAmount)
	}
	// a product of two 64-bit values always fits in 128 bits
	prod := uint128.From64(x).Mul64(y)
	q, r := prod.QuoRem(denominator)
	if rounding == shared.RoundingUp && !r.IsZero() {
		q = q.Add64(1)
	}
	return ToUint64(q)
}
