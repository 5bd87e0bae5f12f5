package types

import (
	"cosmossdk.io/math"
)

// Params holds AMM module parameters.
type Params struct {
	// SwapFee is the total fee charged on the input side of a swap
	SwapFee math.LegacyDec `json:"swap_fee"`
	// MinLiquidity is the minimum initial deposit per side
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		SwapFee:      math.LegacyNewDecWithPrec(3, 3), // 0.3%
		MinLiquidity: math.NewInt(1000),
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return ErrInvalidGenesis.Wrap("swap fee must be in [0, 1)")
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return ErrInvalidGenesis.Wrap("min liquidity cannot be negative")
	}
	return nil
}
