package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// Stake moves stake-mint tokens from the owner into the vault and
// repositions the owner in the top list.
func (k Keeper) Stake(ctx context.Context, owner sdk.AccAddress, vaultID uint64, amount uint64) (*types.StakeEscrow, error) {
	if amount == 0 {
		return nil, types.ErrZeroAmount.Wrap("stake amount must be positive")
	}

	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	now := blockNow(ctx)
	if _, err := k.updateLiquidity(ctx, vault, now); err != nil {
		return nil, err
	}

	escrow, err := k.GetStakeEscrow(ctx, vaultID, owner)
	if err != nil {
		return nil, err
	}
	if err := escrow.Sync(vault.TopStakerInfo.CumulativeFeeAPerLiquidity, vault.TopStakerInfo.CumulativeFeeBPerLiquidity); err != nil {
		return nil, err
	}

	stakeCoins := sdk.NewCoins(sdk.NewCoin(vault.StakeMint, math.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoins(ctx, owner, k.GetModuleAddress(), stakeCoins); err != nil {
		return nil, fmt.Errorf("Stake: transfer: %w", err)
	}

	newStake, err := types.SafeAddUint64(escrow.StakeAmount, amount)
	if err != nil {
		return nil, err
	}
	escrow.StakeAmount = newStake

	if err := k.setFullBalanceState(ctx, vaultID, uint64(escrow.FullBalanceIndex), newStake, escrow.InTopList); err != nil {
		return nil, err
	}
	if err := k.tryAddOrUpdate(ctx, vault, escrow, newStake); err != nil {
		return nil, err
	}

	vault.Metrics.TotalStakedAmount, err = types.SafeAddUint64(vault.Metrics.TotalStakedAmount, amount)
	if err != nil {
		return nil, err
	}

	if err := k.SetStakeEscrow(ctx, escrow); err != nil {
		return nil, err
	}
	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}

	recordStake(vaultID, amount)
	recordEffectiveStake(vaultID, vault.TopStakerInfo.EffectiveStakeAmount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUserStake,
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyStakeAmount, fmt.Sprintf("%d", amount)),
			sdk.NewAttribute(types.AttributeKeyTotalStakeAmount, fmt.Sprintf("%d", newStake)),
			sdk.NewAttribute(types.AttributeKeyFeeAPending, fmt.Sprintf("%d", escrow.FeeAPending)),
			sdk.NewAttribute(types.AttributeKeyFeeBPending, fmt.Sprintf("%d", escrow.FeeBPending)),
			sdk.NewAttribute(types.AttributeKeyFeeACheckpoint, escrow.FeeAPerLiquidityCheckpoint.String()),
			sdk.NewAttribute(types.AttributeKeyFeeBCheckpoint, escrow.FeeBPerLiquidityCheckpoint.String()),
		),
	)

	return escrow, nil
}
