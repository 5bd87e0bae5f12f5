package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// RequestUnstake immediately removes the amount from the owner's effective
// stake and opens a ticket that matures after the vault's unstake lock.
func (k Keeper) RequestUnstake(ctx context.Context, owner sdk.AccAddress, vaultID uint64, unstakeAmount uint64) (*types.Unstake, error) {
	if unstakeAmount == 0 {
		return nil, types.ErrZeroAmount.Wrap("unstake amount must be positive")
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

	if unstakeAmount > escrow.StakeAmount {
		return nil, types.ErrInsufficientStakeAmount.Wrapf("requested %d > staked %d", unstakeAmount, escrow.StakeAmount)
	}

	newStake := escrow.StakeAmount - unstakeAmount
	escrow.StakeAmount = newStake
	escrow.OngoingTotalPartialUnstakeAmount, err = types.SafeAddUint64(escrow.OngoingTotalPartialUnstakeAmount, unstakeAmount)
	if err != nil {
		return nil, err
	}

	if err := k.setFullBalanceState(ctx, vaultID, uint64(escrow.FullBalanceIndex), newStake, escrow.InTopList); err != nil {
		return nil, err
	}

	if escrow.InTopList {
		if err := k.shrinkTopStake(ctx, vault, escrow, newStake); err != nil {
			return nil, err
		}
	}

	unstake := &types.Unstake{
		Vault:     vaultID,
		Owner:     owner.String(),
		Amount:    unstakeAmount,
		CreatedAt: now,
		ReleaseAt: now + int64(vault.Configuration.UnstakeLockDuration),
	}
	unstake.Id, err = k.nextUnstakeID(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.SetUnstake(ctx, unstake); err != nil {
		return nil, err
	}

	vault.Metrics.OngoingTotalPartialUnstakeAmount, err = types.SafeAddUint64(vault.Metrics.OngoingTotalPartialUnstakeAmount, unstakeAmount)
	if err != nil {
		return nil, err
	}

	if err := k.SetStakeEscrow(ctx, escrow); err != nil {
		return nil, err
	}
	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}

	recordUnstakeRequest(vaultID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnstakeCreated,
			sdk.NewAttribute(types.AttributeKeyUnstake, fmt.Sprintf("%d", unstake.Id)),
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", unstakeAmount)),
			sdk.NewAttribute(types.AttributeKeyNewStakeAmount, fmt.Sprintf("%d", newStake)),
			sdk.NewAttribute(types.AttributeKeyOngoingUnstake, fmt.Sprintf("%d", escrow.OngoingTotalPartialUnstakeAmount)),
			sdk.NewAttribute(types.AttributeKeyFeeAPending, fmt.Sprintf("%d", escrow.FeeAPending)),
			sdk.NewAttribute(types.AttributeKeyFeeBPending, fmt.Sprintf("%d", escrow.FeeBPending)),
			sdk.NewAttribute(types.AttributeKeyStartAt, fmt.Sprintf("%d", unstake.CreatedAt)),
			sdk.NewAttribute(types.AttributeKeyEndAt, fmt.Sprintf("%d", unstake.ReleaseAt)),
		),
	)

	return unstake, nil
}

// shrinkTopStake handles a top member's stake reduction: the slot amount is
// updated in place unless the new stake falls below the smallest other
// member, in which case the staker leaves the list.
func (k Keeper) shrinkTopStake(ctx context.Context, vault *types.FeeVault, escrow *types.StakeEscrow, newStake uint64) error {
	slots, err := k.loadTopSlots(ctx, vault)
	if err != nil {
		return err
	}

	smallestOther := -1
	for i, s := range slots {
		if s.IsEmpty() || s.FullBalanceIndex == escrow.FullBalanceIndex {
			continue
		}
		if smallestOther < 0 || s.StakeAmount < slots[smallestOther].StakeAmount ||
			(s.StakeAmount == slots[smallestOther].StakeAmount && s.FullBalanceIndex < slots[smallestOther].FullBalanceIndex) {
			smallestOther = i
		}
	}

	if smallestOther >= 0 && newStake < slots[smallestOther].StakeAmount {
		return k.removeFromTop(ctx, vault, escrow, slots)
	}

	slot := types.FindSlot(slots, escrow.FullBalanceIndex)
	if slot < 0 {
		return types.ErrInvalidStakeEscrow.Wrapf("escrow of %s not in top list", escrow.Owner)
	}
	slots[slot].StakeAmount = newStake
	if err := k.saveTopSlot(ctx, vault.Id, uint64(slot), slots[slot]); err != nil {
		return err
	}
	return commitTopState(vault, slots)
}

// CancelUnstake destroys a ticket and returns its amount to the owner's
// effective stake, re-entering the top list if capacity allows.
func (k Keeper) CancelUnstake(ctx context.Context, owner sdk.AccAddress, unstakeID uint64) (*types.StakeEscrow, error) {
	unstake, err := k.GetUnstake(ctx, unstakeID)
	if err != nil {
		return nil, err
	}
	if unstake.Owner != owner.String() {
		return nil, types.ErrInvalidEscrowOwner.Wrapf("unstake %d belongs to %s", unstakeID, unstake.Owner)
	}

	vault, err := k.GetVault(ctx, unstake.Vault)
	if err != nil {
		return nil, err
	}

	now := blockNow(ctx)
	if _, err := k.updateLiquidity(ctx, vault, now); err != nil {
		return nil, err
	}

	escrow, err := k.GetStakeEscrow(ctx, unstake.Vault, owner)
	if err != nil {
		return nil, err
	}
	if err := escrow.Sync(vault.TopStakerInfo.CumulativeFeeAPerLiquidity, vault.TopStakerInfo.CumulativeFeeBPerLiquidity); err != nil {
		return nil, err
	}

	newStake, err := types.SafeAddUint64(escrow.StakeAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}
	escrow.StakeAmount = newStake
	escrow.OngoingTotalPartialUnstakeAmount, err = types.SafeSubUint64(escrow.OngoingTotalPartialUnstakeAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}

	if err := k.setFullBalanceState(ctx, unstake.Vault, uint64(escrow.FullBalanceIndex), newStake, escrow.InTopList); err != nil {
		return nil, err
	}
	if err := k.tryAddOrUpdate(ctx, vault, escrow, newStake); err != nil {
		return nil, err
	}

	vault.Metrics.OngoingTotalPartialUnstakeAmount, err = types.SafeSubUint64(vault.Metrics.OngoingTotalPartialUnstakeAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}

	k.deleteUnstake(ctx, unstakeID)
	if err := k.SetStakeEscrow(ctx, escrow); err != nil {
		return nil, err
	}
	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCancelUnstakeSucceed,
			sdk.NewAttribute(types.AttributeKeyUnstake, fmt.Sprintf("%d", unstakeID)),
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", unstake.Vault)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", unstake.Amount)),
			sdk.NewAttribute(types.AttributeKeyNewStakeAmount, fmt.Sprintf("%d", newStake)),
			sdk.NewAttribute(types.AttributeKeyOngoingUnstake, fmt.Sprintf("%d", escrow.OngoingTotalPartialUnstakeAmount)),
			sdk.NewAttribute(types.AttributeKeyFeeAPending, fmt.Sprintf("%d", escrow.FeeAPending)),
			sdk.NewAttribute(types.AttributeKeyFeeBPending, fmt.Sprintf("%d", escrow.FeeBPending)),
		),
	)

	return escrow, nil
}

// Withdraw settles a matured ticket, transferring the stake back to the
// owner. Cancel is always allowed; withdraw only after the release time.
func (k Keeper) Withdraw(ctx context.Context, owner sdk.AccAddress, unstakeID uint64) (*types.Unstake, error) {
	unstake, err := k.GetUnstake(ctx, unstakeID)
	if err != nil {
		return nil, err
	}
	if unstake.Owner != owner.String() {
		return nil, types.ErrInvalidEscrowOwner.Wrapf("unstake %d belongs to %s", unstakeID, unstake.Owner)
	}

	vault, err := k.GetVault(ctx, unstake.Vault)
	if err != nil {
		return nil, err
	}

	now := blockNow(ctx)
	if !unstake.Released(now) {
		return nil, types.ErrCannotWithdrawUnstakeAmount.Wrapf("release at %d, now %d", unstake.ReleaseAt, now)
	}

	if _, err := k.updateLiquidity(ctx, vault, now); err != nil {
		return nil, err
	}

	escrow, err := k.GetStakeEscrow(ctx, unstake.Vault, owner)
	if err != nil {
		return nil, err
	}
	if err := escrow.Sync(vault.TopStakerInfo.CumulativeFeeAPerLiquidity, vault.TopStakerInfo.CumulativeFeeBPerLiquidity); err != nil {
		return nil, err
	}

	stakeCoins := sdk.NewCoins(sdk.NewCoin(vault.StakeMint, math.NewIntFromUint64(unstake.Amount)))
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), owner, stakeCoins); err != nil {
		return nil, fmt.Errorf("Withdraw: transfer: %w", err)
	}

	escrow.OngoingTotalPartialUnstakeAmount, err = types.SafeSubUint64(escrow.OngoingTotalPartialUnstakeAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}
	vault.Metrics.TotalStakedAmount, err = types.SafeSubUint64(vault.Metrics.TotalStakedAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}
	vault.Metrics.OngoingTotalPartialUnstakeAmount, err = types.SafeSubUint64(vault.Metrics.OngoingTotalPartialUnstakeAmount, unstake.Amount)
	if err != nil {
		return nil, err
	}

	k.deleteUnstake(ctx, unstakeID)
	if err := k.SetStakeEscrow(ctx, escrow); err != nil {
		return nil, err
	}
	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}

	recordWithdraw(unstake.Vault, unstake.Amount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawSucceed,
			sdk.NewAttribute(types.AttributeKeyUnstake, fmt.Sprintf("%d", unstakeID)),
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", unstake.Vault)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", unstake.Amount)),
			sdk.NewAttribute(types.AttributeKeyOngoingUnstake, fmt.Sprintf("%d", escrow.OngoingTotalPartialUnstakeAmount)),
		),
	)

	return unstake, nil
}

// GetUnstake retrieves an unstake ticket by ID
func (k Keeper) GetUnstake(ctx context.Context, unstakeID uint64) (*types.Unstake, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetUnstakeKey(unstakeID))
	if bz == nil {
		return nil, types.ErrUnstakeNotFound.Wrapf("unstake %d not found", unstakeID)
	}

	var unstake types.Unstake
	if err := json.Unmarshal(bz, &unstake); err != nil {
		return nil, err
	}
	return &unstake, nil
}

// SetUnstake saves an unstake ticket to the store
func (k Keeper) SetUnstake(ctx context.Context, unstake *types.Unstake) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(unstake)
	if err != nil {
		return err
	}
	store.Set(types.GetUnstakeKey(unstake.Id), bz)
	return nil
}

func (k Keeper) deleteUnstake(ctx context.Context, unstakeID uint64) {
	store := k.getStore(ctx)
	store.Delete(types.GetUnstakeKey(unstakeID))
}

// GetAllUnstakes returns every outstanding unstake ticket.
func (k Keeper) GetAllUnstakes(ctx context.Context) ([]types.Unstake, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.UnstakeKeyPrefix)
	defer iterator.Close()

	var unstakes []types.Unstake
	for ; iterator.Valid(); iterator.Next() {
		var unstake types.Unstake
		if err := json.Unmarshal(iterator.Value(), &unstake); err != nil {
			return nil, err
		}
		unstakes = append(unstakes, unstake)
	}
	return unstakes, nil
}

func (k Keeper) nextUnstakeID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(types.UnstakeCountKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	store.Set(types.UnstakeCountKey, uint64Bytes(next+1))
	return next, nil
}
