package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// CurveType identifies the pool pricing curve.
type CurveType int32

const (
	CurveConstantProduct CurveType = 0
	CurveStable          CurveType = 1
)

// Pool is a two-token liquidity pool.
type Pool struct {
	Id          uint64    `json:"id"`
	TokenA      string    `json:"token_a"`
	TokenB      string    `json:"token_b"`
	ReserveA    math.Int  `json:"reserve_a"`
	ReserveB    math.Int  `json:"reserve_b"`
	TotalShares math.Int  `json:"total_shares"`
	// Shares permanently locked across all lock escrows
	TotalLockedShares math.Int  `json:"total_locked_shares"`
	CurveType         CurveType `json:"curve_type"`
	Creator           string    `json:"creator"`
}

// IsConstantProduct reports whether the pool uses the x*y=k curve.
func (p *Pool) IsConstantProduct() bool {
	return p.CurveType == CurveConstantProduct
}

// LockEscrow holds a provider's permanently locked LP shares and the swap
// fees that have accrued to them since the last claim.
type LockEscrow struct {
	Id            uint64   `json:"id"`
	PoolId        uint64   `json:"pool_id"`
	Owner         string   `json:"owner"`
	LockedShares  math.Int `json:"locked_shares"`
	ClaimableFeeA math.Int `json:"claimable_fee_a"`
	ClaimableFeeB math.Int `json:"claimable_fee_b"`
	// Lifetime fees routed through this escrow
	TotalClaimedFeeA math.Int `json:"total_claimed_fee_a"`
	TotalClaimedFeeB math.Int `json:"total_claimed_fee_b"`
}

// SwapResult reports the outcome of a swap.
type SwapResult struct {
	AmountIn  math.Int
	AmountOut math.Int
	Fee       math.Int
}
