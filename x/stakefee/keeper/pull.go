package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// maybePullPoolFees harvests newly claimable fees from the vault's lock
// escrow into the locked buckets. A pull inside the throttle window, or
// before the start claim fee timestamp, is a silent no-op. The vault is
// mutated in memory; the caller persists it.
func (k Keeper) maybePullPoolFees(ctx context.Context, vault *types.FeeVault, now int64) (claimedA, claimedB uint64, err error) {
	if !vault.CanPullFees(now) {
		return 0, 0, nil
	}

	moduleAddr := k.GetModuleAddress()

	// Measure the delta against the holding balances around the claim; the
	// AMM's own rounding decides what actually arrives.
	beforeA := k.bankKeeper.GetBalance(ctx, moduleAddr, vault.TokenAMint).Amount
	beforeB := k.bankKeeper.GetBalance(ctx, moduleAddr, vault.TokenBMint).Amount

	if _, _, err := k.ammKeeper.ClaimLockedFees(ctx, vault.LockEscrow, moduleAddr); err != nil {
		return 0, 0, fmt.Errorf("maybePullPoolFees: claim: %w", err)
	}

	deltaA := k.bankKeeper.GetBalance(ctx, moduleAddr, vault.TokenAMint).Amount.Sub(beforeA)
	deltaB := k.bankKeeper.GetBalance(ctx, moduleAddr, vault.TokenBMint).Amount.Sub(beforeB)
	if deltaA.IsNegative() || deltaB.IsNegative() {
		return 0, 0, types.ErrUndeterminedError.Wrap("holding balance decreased during claim")
	}
	if !deltaA.IsUint64() || !deltaB.IsUint64() {
		return 0, 0, types.ErrTypeCastFailed.Wrap("claimed fee exceeds u64")
	}

	claimedA = deltaA.Uint64()
	claimedB = deltaB.Uint64()

	info := &vault.TopStakerInfo
	info.LockedFeeA, err = types.SafeAddUint64(info.LockedFeeA, claimedA)
	if err != nil {
		return 0, 0, err
	}
	info.LockedFeeB, err = types.SafeAddUint64(info.LockedFeeB, claimedB)
	if err != nil {
		return 0, 0, err
	}
	info.LastClaimFeeAt = now

	// Lifetime totals are u128 so long-lived vaults cannot saturate them.
	vault.Metrics.TotalFeeAAmount, err = types.AddUint128(vault.Metrics.TotalFeeAAmount, math.NewIntFromUint64(claimedA))
	if err != nil {
		return 0, 0, err
	}
	vault.Metrics.TotalFeeBAmount, err = types.AddUint128(vault.Metrics.TotalFeeBAmount, math.NewIntFromUint64(claimedB))
	if err != nil {
		return 0, 0, err
	}

	if claimedA > 0 || claimedB > 0 {
		recordFeePull(vault.Id, claimedA, claimedB)
		k.Logger(ctx).Debug("pulled pool fees",
			"vault", vault.Id,
			"fee_a", claimedA,
			"fee_b", claimedB,
		)
	}

	return claimedA, claimedB, nil
}

// updateLiquidity runs the shared pre-amble of every vault operation: pull
// then drip. The vault is mutated in memory; the caller persists it.
func (k Keeper) updateLiquidity(ctx context.Context, vault *types.FeeVault, now int64) (types.DripResult, error) {
	if _, _, err := k.maybePullPoolFees(ctx, vault, now); err != nil {
		return types.DripResult{}, err
	}

	res, err := vault.Drip(now)
	if err != nil {
		return types.DripResult{}, err
	}
	if res.ReleasedA > 0 || res.ReleasedB > 0 {
		recordFeeDrip(vault.Id, res.ReleasedA, res.ReleasedB)
	}
	return res, nil
}
