package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Rounding selects the rounding direction for fixed-point operations.
type Rounding int

const (
	RoundDown Rounding = iota
	RoundUp
)

var (
	// oneShl64 is 2^64, the Q64.64 scale factor.
	oneShl64 = math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), ScaleOffset))

	// maxUint128 bounds every per-liquidity index and lifetime fee total.
	maxUint128 = oneShl64.Mul(oneShl64).SubRaw(1)
)

// OneQ64 returns the Q64.64 representation of 1.
func OneQ64() math.Int {
	return oneShl64
}

// MaxUint128 returns 2^128 - 1.
func MaxUint128() math.Int {
	return maxUint128
}

// MulShr computes (a * b) >> ScaleOffset on u128 operands. The 256-bit
// intermediate cannot overflow for in-range inputs; the shifted result must
// still fit u128.
func MulShr(a, b math.Int, rounding Rounding) (math.Int, error) {
	if a.IsNegative() || b.IsNegative() || a.GT(maxUint128) || b.GT(maxUint128) {
		return math.ZeroInt(), ErrMathOverflow.Wrap("mul_shr operand out of u128 range")
	}

	prod := a.Mul(b)
	if rounding == RoundUp {
		prod = prod.Add(oneShl64.SubRaw(1))
	}

	res := prod.Quo(oneShl64)
	if res.GT(maxUint128) {
		return math.ZeroInt(), ErrMathOverflow.Wrap("mul_shr result exceeds u128")
	}
	return res, nil
}

// MulShrUint64 is MulShr with the result cast down to u64, used for pending
// fee deltas.
func MulShrUint64(a, b math.Int, rounding Rounding) (uint64, error) {
	res, err := MulShr(a, b, rounding)
	if err != nil {
		return 0, err
	}
	if !res.IsUint64() {
		return 0, ErrTypeCastFailed.Wrap("mul_shr result exceeds u64")
	}
	return res.Uint64(), nil
}

// SafeMulDivCastUint64 computes numer / denom and casts to u64.
func SafeMulDivCastUint64(numer, denom math.Int) (uint64, error) {
	if denom.IsZero() {
		return 0, ErrMathOverflow.Wrap("division by zero")
	}
	res := numer.Quo(denom)
	if res.IsNegative() {
		return 0, ErrMathOverflow.Wrap("negative quotient")
	}
	if !res.IsUint64() {
		return 0, ErrTypeCastFailed.Wrap("quotient exceeds u64")
	}
	return res.Uint64(), nil
}

// SafeShlDiv computes (amount << ScaleOffset) / denom, the canonical
// per-liquidity delta.
func SafeShlDiv(amount, denom uint64, rounding Rounding) (math.Int, error) {
	if denom == 0 {
		return math.ZeroInt(), ErrMathOverflow.Wrap("division by zero")
	}

	numer := math.NewIntFromUint64(amount).Mul(oneShl64)
	if rounding == RoundUp {
		numer = numer.Add(math.NewIntFromUint64(denom - 1))
	}

	res := numer.Quo(math.NewIntFromUint64(denom))
	if res.GT(maxUint128) {
		return math.ZeroInt(), ErrMathOverflow.Wrap("shl_div result exceeds u128")
	}
	return res, nil
}

// SafeAddUint64 adds two u64 amounts, failing on wraparound.
func SafeAddUint64(a, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return 0, ErrMathOverflow.Wrapf("u64 add overflow: %d + %d", a, b)
	}
	return c, nil
}

// SafeSubUint64 subtracts b from a, failing on underflow.
func SafeSubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrMathOverflow.Wrapf("u64 sub underflow: %d - %d", a, b)
	}
	return a - b, nil
}

// SafeMulUint64 multiplies two u64 amounts, failing on wraparound.
func SafeMulUint64(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, ErrMathOverflow.Wrapf("u64 mul overflow: %d * %d", a, b)
	}
	return c, nil
}

// AddUint128 adds b to a, keeping the result within u128. Used for the
// lifetime fee totals and per-liquidity indices.
func AddUint128(a, b math.Int) (math.Int, error) {
	res := a.Add(b)
	if res.GT(maxUint128) {
		return math.ZeroInt(), ErrMathOverflow.Wrap("u128 add overflow")
	}
	return res, nil
}
