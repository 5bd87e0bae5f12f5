package types

import (
	"cosmossdk.io/math"
)

// StakeEscrow is the per-owner record in a vault. It is created once and
// lives forever; the owner moves in and out of the top list around it.
type StakeEscrow struct {
	Owner string `json:"owner"`
	Vault uint64 `json:"vault"`
	// Stable index into the full balance list for the escrow's lifetime
	FullBalanceIndex int64  `json:"full_balance_index"`
	StakeAmount      uint64 `json:"stake_amount"`
	InTopList        bool   `json:"in_top_list"`
	// Sum over outstanding unstake tickets
	OngoingTotalPartialUnstakeAmount uint64 `json:"ongoing_total_partial_unstake_amount"`
	CreatedAt                        int64  `json:"created_at"`

	// Index values last synchronized into the pending pots
	FeeAPerLiquidityCheckpoint math.Int `json:"fee_a_per_liquidity_checkpoint"`
	FeeBPerLiquidityCheckpoint math.Int `json:"fee_b_per_liquidity_checkpoint"`

	// Accrued, not yet paid out
	FeeAPending uint64 `json:"fee_a_pending"`
	FeeBPending uint64 `json:"fee_b_pending"`

	// Lifetime paid out, u128
	FeeAClaimedAmount math.Int `json:"fee_a_claimed_amount"`
	FeeBClaimedAmount math.Int `json:"fee_b_claimed_amount"`
}

// NewStakeEscrow returns a fresh escrow checkpointed at the vault's current
// indices so it accrues nothing for the period before it existed.
func NewStakeEscrow(owner string, vault uint64, fullBalanceIndex int64, createdAt int64, info TopStakerInfo) StakeEscrow {
	return StakeEscrow{
		Owner:                      owner,
		Vault:                      vault,
		FullBalanceIndex:           fullBalanceIndex,
		CreatedAt:                  createdAt,
		FeeAPerLiquidityCheckpoint: info.CumulativeFeeAPerLiquidity,
		FeeBPerLiquidityCheckpoint: info.CumulativeFeeBPerLiquidity,
		FeeAClaimedAmount:          math.ZeroInt(),
		FeeBClaimedAmount:          math.ZeroInt(),
	}
}

// Sync settles the escrow's pending fees against the vault's cumulative
// indices and fast-forwards the checkpoints. The checkpoint always moves,
// even off the top list, so a rejoin never double-pays the period away.
func (e *StakeEscrow) Sync(cumulativeA, cumulativeB math.Int) error {
	if e.InTopList {
		deltaA, err := pendingDelta(e.StakeAmount, e.FeeAPerLiquidityCheckpoint, cumulativeA)
		if err != nil {
			return err
		}
		deltaB, err := pendingDelta(e.StakeAmount, e.FeeBPerLiquidityCheckpoint, cumulativeB)
		if err != nil {
			return err
		}
		e.FeeAPending, err = SafeAddUint64(e.FeeAPending, deltaA)
		if err != nil {
			return err
		}
		e.FeeBPending, err = SafeAddUint64(e.FeeBPending, deltaB)
		if err != nil {
			return err
		}
	}
	e.FeeAPerLiquidityCheckpoint = cumulativeA
	e.FeeBPerLiquidityCheckpoint = cumulativeB
	return nil
}

func pendingDelta(stake uint64, checkpoint, cumulative math.Int) (uint64, error) {
	diff := cumulative.Sub(checkpoint)
	if diff.IsNegative() {
		return 0, ErrMathOverflow.Wrap("checkpoint ahead of cumulative index")
	}
	if diff.IsZero() || stake == 0 {
		return 0, nil
	}
	return MulShrUint64(math.NewIntFromUint64(stake), diff, RoundDown)
}

