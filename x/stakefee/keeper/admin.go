package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// UpdateUnstakeLockDuration changes a live vault's unstake lock. Only
// tickets created afterwards observe the new duration.
func (k Keeper) UpdateUnstakeLockDuration(ctx context.Context, admin string, vaultID uint64, newDuration uint64) error {
	if err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if err := types.ValidateUnstakeLockDuration(newDuration); err != nil {
		return err
	}

	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.Configuration.UnstakeLockDuration == newDuration {
		return types.ErrUpdatedValueIsTheSame.Wrapf("unstake lock duration already %d", newDuration)
	}

	old := vault.Configuration.UnstakeLockDuration
	vault.Configuration.UnstakeLockDuration = newDuration
	if err := k.SetVault(ctx, vault); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateUnstakeLockDuration,
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyUnstakeLockDuration, fmt.Sprintf("%d", newDuration)),
		),
	)

	k.Logger(ctx).Info("updated unstake lock duration",
		"vault", vaultID,
		"old", old,
		"new", newDuration,
	)
	return nil
}

// UpdateSecondsToFullUnlock changes a live vault's drip window. The locked
// buckets are dripped with the old window up to now before the switch, so
// already-metered time is not re-priced.
func (k Keeper) UpdateSecondsToFullUnlock(ctx context.Context, admin string, vaultID uint64, newSeconds uint64) error {
	if err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if err := types.ValidateSecondsToFullUnlock(newSeconds); err != nil {
		return err
	}

	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.Configuration.SecondsToFullUnlock == newSeconds {
		return types.ErrUpdatedValueIsTheSame.Wrapf("seconds to full unlock already %d", newSeconds)
	}

	now := blockNow(ctx)
	if _, err := k.updateLiquidity(ctx, vault, now); err != nil {
		return err
	}

	vault.Configuration.SecondsToFullUnlock = newSeconds
	if err := k.SetVault(ctx, vault); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateSecondsToFullUnlock,
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeySecondsToFullUnlock, fmt.Sprintf("%d", newSeconds)),
		),
	)

	return nil
}
