package types

import (
	"cosmossdk.io/math"
)

// FeeVault is the per-pool aggregate: identities of its child state, the
// drip configuration, lifetime metrics and the live top staker info.
type FeeVault struct {
	Id         uint64 `json:"id"`
	Pool       uint64 `json:"pool"`
	LockEscrow uint64 `json:"lock_escrow"`
	StakeMint  string `json:"stake_mint"`
	QuoteMint  string `json:"quote_mint"`
	TokenAMint string `json:"token_a_mint"`
	TokenBMint string `json:"token_b_mint"`
	Creator    string `json:"creator"`
	CreatedAt  int64  `json:"created_at"`

	Configuration Configuration `json:"configuration"`
	Metrics       Metrics       `json:"metrics"`
	TopStakerInfo TopStakerInfo `json:"top_staker_info"`
}

// Configuration holds the vault's drip and unstake timing parameters.
type Configuration struct {
	// Time required for locked claim fee to be fully dripped
	SecondsToFullUnlock uint64 `json:"seconds_to_full_unlock"`
	// Unstake lock duration
	UnstakeLockDuration uint64 `json:"unstake_lock_duration"`
	// Minimum time to start claim fee from lock escrow
	StartClaimFeeTimestamp int64 `json:"start_claim_fee_timestamp"`
}

// Metrics tracks vault lifetime accounting. Fee totals are u128: a busy
// vault outlives u64.
type Metrics struct {
	TotalStakedAmount                uint64   `json:"total_staked_amount"`
	TotalFeeAAmount                  math.Int `json:"total_fee_a_amount"`
	TotalFeeBAmount                  math.Int `json:"total_fee_b_amount"`
	TotalStakeEscrowCount            uint64   `json:"total_stake_escrow_count"`
	OngoingTotalPartialUnstakeAmount uint64   `json:"ongoing_total_partial_unstake_amount"`
}

// TopStakerInfo is the live state of the top staker set and the fee drip.
type TopStakerInfo struct {
	// Capacity of the top list
	TopListLength uint64 `json:"top_list_length"`
	// Occupied slots, always <= TopListLength
	CurrentLength uint64 `json:"current_length"`
	// Total stake amount in the top list; divisor of the rewards index
	EffectiveStakeAmount uint64 `json:"effective_stake_amount"`
	// Last lock escrow claim fee at
	LastClaimFeeAt int64 `json:"last_claim_fee_at"`
	// Last fee drip updated at
	LastUpdatedAt int64 `json:"last_updated_at"`
	// Locked fee a
	LockedFeeA uint64 `json:"locked_fee_a"`
	// Locked fee b
	LockedFeeB uint64 `json:"locked_fee_b"`
	// Cumulative fee a per liquidity, Q64.64
	CumulativeFeeAPerLiquidity math.Int `json:"cumulative_fee_a_per_liquidity"`
	// Cumulative fee b per liquidity, Q64.64
	CumulativeFeeBPerLiquidity math.Int `json:"cumulative_fee_b_per_liquidity"`
}

// NewTopStakerInfo returns a zeroed top staker info with the given capacity.
func NewTopStakerInfo(topListLength uint64) TopStakerInfo {
	return TopStakerInfo{
		TopListLength:              topListLength,
		CumulativeFeeAPerLiquidity: math.ZeroInt(),
		CumulativeFeeBPerLiquidity: math.ZeroInt(),
	}
}

// NewMetrics returns zeroed metrics.
func NewMetrics() Metrics {
	return Metrics{
		TotalFeeAAmount: math.ZeroInt(),
		TotalFeeBAmount: math.ZeroInt(),
	}
}

// DripResult reports a single drip step.
type DripResult struct {
	ReleasedA uint64
	ReleasedB uint64
	// IndexAdvanced is false in the no-top stall case: released amounts
	// stay in the locked buckets.
	IndexAdvanced bool
}

// Drip releases the linear time-slice of the locked buckets into the
// cumulative per-liquidity indices. It is a pure state transition on the
// vault; callers persist the vault afterwards.
//
// Before StartClaimFeeTimestamp the drip is a no-op and LastUpdatedAt is
// left untouched.
func (v *FeeVault) Drip(now int64) (DripResult, error) {
	if now < v.Configuration.StartClaimFeeTimestamp {
		return DripResult{}, nil
	}

	info := &v.TopStakerInfo
	if info.LastUpdatedAt == 0 {
		// First drip after the join window: start metering from now.
		info.LastUpdatedAt = now
	}
	if now <= info.LastUpdatedAt {
		return DripResult{}, nil
	}

	period := v.Configuration.SecondsToFullUnlock
	elapsed := uint64(now - info.LastUpdatedAt)
	if elapsed > period {
		elapsed = period
	}

	releasedA, err := releasedAmount(info.LockedFeeA, elapsed, period)
	if err != nil {
		return DripResult{}, err
	}
	releasedB, err := releasedAmount(info.LockedFeeB, elapsed, period)
	if err != nil {
		return DripResult{}, err
	}

	res := DripResult{ReleasedA: releasedA, ReleasedB: releasedB}

	if info.EffectiveStakeAmount == 0 {
		// No top holders: retain released tokens in the locked buckets and
		// do not advance the indices.
		info.LastUpdatedAt = now
		return res, nil
	}

	if releasedA > 0 {
		delta, err := SafeShlDiv(releasedA, info.EffectiveStakeAmount, RoundDown)
		if err != nil {
			return DripResult{}, err
		}
		info.CumulativeFeeAPerLiquidity, err = AddUint128(info.CumulativeFeeAPerLiquidity, delta)
		if err != nil {
			return DripResult{}, err
		}
		info.LockedFeeA, err = SafeSubUint64(info.LockedFeeA, releasedA)
		if err != nil {
			return DripResult{}, err
		}
	}
	if releasedB > 0 {
		delta, err := SafeShlDiv(releasedB, info.EffectiveStakeAmount, RoundDown)
		if err != nil {
			return DripResult{}, err
		}
		info.CumulativeFeeBPerLiquidity, err = AddUint128(info.CumulativeFeeBPerLiquidity, delta)
		if err != nil {
			return DripResult{}, err
		}
		info.LockedFeeB, err = SafeSubUint64(info.LockedFeeB, releasedB)
		if err != nil {
			return DripResult{}, err
		}
	}

	res.IndexAdvanced = releasedA > 0 || releasedB > 0
	info.LastUpdatedAt = now
	return res, nil
}

// releasedAmount computes locked * elapsed / period rounding down, releasing
// everything once elapsed reaches the period.
func releasedAmount(locked, elapsed, period uint64) (uint64, error) {
	if elapsed >= period {
		return locked, nil
	}
	// locked * elapsed exceeds u64 for large buckets; go through wide
	// arithmetic. The quotient is bounded by locked so the cast holds.
	wide := math.NewIntFromUint64(locked).Mul(math.NewIntFromUint64(elapsed))
	return SafeMulDivCastUint64(wide, math.NewIntFromUint64(period))
}

// CanPullFees reports whether the throttle allows another lock escrow claim.
func (v *FeeVault) CanPullFees(now int64) bool {
	if now < v.Configuration.StartClaimFeeTimestamp {
		return false
	}
	return now >= v.TopStakerInfo.LastClaimFeeAt+MinLockEscrowClaimFeeDuration
}
