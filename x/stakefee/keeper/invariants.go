package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// RegisterInvariants registers all stakefee invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "stake-consistency", StakeConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "effective-stake", EffectiveStakeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "checkpoint-bound", CheckpointBoundInvariant(k))
	ir.RegisterRoute(types.ModuleName, "fee-conservation", FeeConservationInvariant(k))
}

// AllInvariants runs all invariants of the stakefee module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := StakeConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = EffectiveStakeInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = CheckpointBoundInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return FeeConservationInvariant(k)(ctx)
	}
}

// StakeConsistencyInvariant checks that each vault's total staked metric
// equals the sum of escrow stakes plus outstanding partial unstakes.
func StakeConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		vaults, err := k.GetAllVaults(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "stake-consistency", err.Error()), true
		}

		for _, vault := range vaults {
			var sum uint64
			err := k.IterateStakeEscrows(ctx, vault.Id, func(escrow types.StakeEscrow) bool {
				sum += escrow.StakeAmount + escrow.OngoingTotalPartialUnstakeAmount
				return false
			})
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "stake-consistency", err.Error()), true
			}

			if sum != vault.Metrics.TotalStakedAmount {
				count++
				msg += fmt.Sprintf("vault %d: total staked %d != escrow sum %d\n",
					vault.Id, vault.Metrics.TotalStakedAmount, sum)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "stake-consistency",
			fmt.Sprintf("found %d vaults with inconsistent stake totals\n%s", count, msg),
		), broken
	}
}

// EffectiveStakeInvariant checks that each vault's stored effective stake
// equals the sum over its occupied top list slots.
func EffectiveStakeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		vaults, err := k.GetAllVaults(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "effective-stake", err.Error()), true
		}

		for i := range vaults {
			vault := &vaults[i]
			slots, err := k.loadTopSlots(ctx, vault)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "effective-stake", err.Error()), true
			}

			sum, err := types.EffectiveStakeAmount(slots)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "effective-stake", err.Error()), true
			}

			if sum != vault.TopStakerInfo.EffectiveStakeAmount {
				count++
				msg += fmt.Sprintf("vault %d: effective stake %d != slot sum %d\n",
					vault.Id, vault.TopStakerInfo.EffectiveStakeAmount, sum)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "effective-stake",
			fmt.Sprintf("found %d vaults with inconsistent effective stake\n%s", count, msg),
		), broken
	}
}

// CheckpointBoundInvariant checks that no escrow checkpoint is ahead of its
// vault's cumulative index.
func CheckpointBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		vaults, err := k.GetAllVaults(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "checkpoint-bound", err.Error()), true
		}

		for _, vault := range vaults {
			cumA := vault.TopStakerInfo.CumulativeFeeAPerLiquidity
			cumB := vault.TopStakerInfo.CumulativeFeeBPerLiquidity
			err := k.IterateStakeEscrows(ctx, vault.Id, func(escrow types.StakeEscrow) bool {
				if escrow.FeeAPerLiquidityCheckpoint.GT(cumA) || escrow.FeeBPerLiquidityCheckpoint.GT(cumB) {
					count++
					msg += fmt.Sprintf("vault %d: escrow of %s checkpoint ahead of index\n", vault.Id, escrow.Owner)
				}
				return false
			})
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "checkpoint-bound", err.Error()), true
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "checkpoint-bound",
			fmt.Sprintf("found %d escrows with checkpoints ahead of the index\n%s", count, msg),
		), broken
	}
}

// FeeConservationInvariant checks that per vault, pending + locked + claimed
// never exceeds the lifetime pulled totals. Distribution rounds down, so
// dust may remain but nothing can be over-paid.
func FeeConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		vaults, err := k.GetAllVaults(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "fee-conservation", err.Error()), true
		}

		for _, vault := range vaults {
			pendingA := math.NewIntFromUint64(vault.TopStakerInfo.LockedFeeA)
			pendingB := math.NewIntFromUint64(vault.TopStakerInfo.LockedFeeB)
			err := k.IterateStakeEscrows(ctx, vault.Id, func(escrow types.StakeEscrow) bool {
				pendingA = pendingA.Add(math.NewIntFromUint64(escrow.FeeAPending)).Add(escrow.FeeAClaimedAmount)
				pendingB = pendingB.Add(math.NewIntFromUint64(escrow.FeeBPending)).Add(escrow.FeeBClaimedAmount)
				return false
			})
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "fee-conservation", err.Error()), true
			}

			if pendingA.GT(vault.Metrics.TotalFeeAAmount) || pendingB.GT(vault.Metrics.TotalFeeBAmount) {
				count++
				msg += fmt.Sprintf("vault %d: distributed fees exceed pulled totals\n", vault.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "fee-conservation",
			fmt.Sprintf("found %d vaults over-distributing fees\n%s", count, msg),
		), broken
	}
}
