package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// loadTopSlots materializes a vault's top list as a dense slot array of the
// configured capacity. Unoccupied slots carry the empty sentinel.
func (k Keeper) loadTopSlots(ctx context.Context, vault *types.FeeVault) ([]types.StakerMetadata, error) {
	slots := make([]types.StakerMetadata, vault.TopStakerInfo.TopListLength)
	for i := range slots {
		slots[i] = types.EmptyStakerMetadata()
	}

	store := k.getStore(ctx)
	for i := range slots {
		bz := store.Get(types.GetTopStakerKey(vault.Id, uint64(i)))
		if bz == nil {
			continue
		}
		if err := json.Unmarshal(bz, &slots[i]); err != nil {
			return nil, err
		}
	}
	return slots, nil
}

func (k Keeper) saveTopSlot(ctx context.Context, vaultID uint64, slot uint64, metadata types.StakerMetadata) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&metadata)
	if err != nil {
		return err
	}
	store.Set(types.GetTopStakerKey(vaultID, slot), bz)
	return nil
}

func (k Keeper) clearTopSlot(ctx context.Context, vaultID uint64, slot uint64) {
	store := k.getStore(ctx)
	store.Delete(types.GetTopStakerKey(vaultID, slot))
}

// GetTopStakers returns the occupied slots of a vault's top list.
func (k Keeper) GetTopStakers(ctx context.Context, vaultID uint64) ([]types.StakerMetadata, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	slots, err := k.loadTopSlots(ctx, vault)
	if err != nil {
		return nil, err
	}

	var occupied []types.StakerMetadata
	for _, s := range slots {
		if !s.IsEmpty() {
			occupied = append(occupied, s)
		}
	}
	return occupied, nil
}

// commitTopState recomputes the derived top list fields on the vault from
// the slot array. The caller persists the vault.
func commitTopState(vault *types.FeeVault, slots []types.StakerMetadata) error {
	effective, err := types.EffectiveStakeAmount(slots)
	if err != nil {
		return err
	}

	var occupied uint64
	for _, s := range slots {
		if !s.IsEmpty() {
			occupied++
		}
	}

	vault.TopStakerInfo.EffectiveStakeAmount = effective
	vault.TopStakerInfo.CurrentLength = occupied
	return nil
}

// tryAddOrUpdate inserts or repositions an escrow in the vault's top list
// with the given stake amount.
//
// In place when already a member; first empty slot while below capacity;
// otherwise the smallest member is evicted iff the new stake is strictly
// greater. The evictee's pending fees are settled against the current
// cumulative indices before it leaves. Equal stake never displaces.
//
// The passed escrow is mutated (InTopList) but not persisted; the evictee's
// escrow is persisted here. Derived vault fields are recomputed; the caller
// persists the vault.
func (k Keeper) tryAddOrUpdate(ctx context.Context, vault *types.FeeVault, escrow *types.StakeEscrow, newStakeAmount uint64) error {
	slots, err := k.loadTopSlots(ctx, vault)
	if err != nil {
		return err
	}

	entry := types.StakerMetadata{
		StakeAmount:      newStakeAmount,
		FullBalanceIndex: escrow.FullBalanceIndex,
		Owner:            escrow.Owner,
	}

	if slot := types.FindSlot(slots, escrow.FullBalanceIndex); slot >= 0 {
		slots[slot] = entry
		if err := k.saveTopSlot(ctx, vault.Id, uint64(slot), entry); err != nil {
			return err
		}
		return commitTopState(vault, slots)
	}

	if slot := types.FindEmptySlot(slots); slot >= 0 {
		slots[slot] = entry
		if err := k.saveTopSlot(ctx, vault.Id, uint64(slot), entry); err != nil {
			return err
		}
		if err := k.enterTopList(ctx, vault, escrow, newStakeAmount); err != nil {
			return err
		}
		return commitTopState(vault, slots)
	}

	smallest := types.SmallestOccupiedSlot(slots)
	if smallest < 0 {
		return types.ErrUndeterminedError.Wrap("top list full with no occupied slot")
	}
	if newStakeAmount <= slots[smallest].StakeAmount {
		// Strict greater-than gate: equal stake keeps the incumbent.
		return nil
	}

	if err := k.evictFromTopList(ctx, vault, slots[smallest]); err != nil {
		return err
	}

	slots[smallest] = entry
	if err := k.saveTopSlot(ctx, vault.Id, uint64(smallest), entry); err != nil {
		return err
	}
	if err := k.enterTopList(ctx, vault, escrow, newStakeAmount); err != nil {
		return err
	}
	return commitTopState(vault, slots)
}

// removeFromTop clears the escrow's slot, settling nothing: the caller has
// already synced the escrow in the operation pre-amble.
func (k Keeper) removeFromTop(ctx context.Context, vault *types.FeeVault, escrow *types.StakeEscrow, slots []types.StakerMetadata) error {
	slot := types.FindSlot(slots, escrow.FullBalanceIndex)
	if slot < 0 {
		return types.ErrInvalidStakeEscrow.Wrapf("escrow of %s not in top list", escrow.Owner)
	}

	slots[slot] = types.EmptyStakerMetadata()
	k.clearTopSlot(ctx, vault.Id, uint64(slot))

	escrow.InTopList = false
	if err := k.setFullBalanceState(ctx, vault.Id, uint64(escrow.FullBalanceIndex), escrow.StakeAmount, false); err != nil {
		return err
	}

	k.emitTopSetChange(ctx, vault, escrow, false)
	if err := commitTopState(vault, slots); err != nil {
		return err
	}
	return k.afterTopSetChanged(ctx, vault.Id, escrow.Owner, false)
}

// enterTopList flips the membership state of a joining escrow.
func (k Keeper) enterTopList(ctx context.Context, vault *types.FeeVault, escrow *types.StakeEscrow, newStakeAmount uint64) error {
	escrow.InTopList = true
	if err := k.setFullBalanceState(ctx, vault.Id, uint64(escrow.FullBalanceIndex), newStakeAmount, true); err != nil {
		return err
	}

	k.emitTopSetChange(ctx, vault, escrow, true)
	return k.afterTopSetChanged(ctx, vault.Id, escrow.Owner, true)
}

// evictFromTopList settles the smallest member's pending fees at the
// current indices and moves it off the list.
func (k Keeper) evictFromTopList(ctx context.Context, vault *types.FeeVault, slot types.StakerMetadata) error {
	owner, err := sdk.AccAddressFromBech32(slot.Owner)
	if err != nil {
		return types.ErrInvalidSmallestStakeEscrow.Wrapf("slot owner %s", slot.Owner)
	}

	evictee, err := k.GetStakeEscrow(ctx, vault.Id, owner)
	if err != nil {
		return types.ErrMissingSmallestStakeEscrow.Wrapf("owner %s", slot.Owner)
	}
	if evictee.FullBalanceIndex != slot.FullBalanceIndex {
		return types.ErrInvalidSmallestStakeEscrow.Wrapf("escrow index %d does not match slot index %d", evictee.FullBalanceIndex, slot.FullBalanceIndex)
	}

	// Settle what accrued while it was a member, then drop it.
	if err := evictee.Sync(vault.TopStakerInfo.CumulativeFeeAPerLiquidity, vault.TopStakerInfo.CumulativeFeeBPerLiquidity); err != nil {
		return err
	}
	evictee.InTopList = false
	if err := k.SetStakeEscrow(ctx, evictee); err != nil {
		return err
	}
	if err := k.setFullBalanceState(ctx, vault.Id, uint64(evictee.FullBalanceIndex), evictee.StakeAmount, false); err != nil {
		return err
	}

	k.emitTopSetChange(ctx, vault, evictee, false)
	recordTopEviction(vault.Id)
	return k.afterTopSetChanged(ctx, vault.Id, evictee.Owner, false)
}

func (k Keeper) emitTopSetChange(ctx context.Context, vault *types.FeeVault, escrow *types.StakeEscrow, joined bool) {
	eventType := types.EventTypeRemoveUserFromTopHolder
	if joined {
		eventType = types.EventTypeAddNewUserToTopHolder
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vault.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, escrow.Owner),
			sdk.NewAttribute(types.AttributeKeyStakeAmount, fmt.Sprintf("%d", escrow.StakeAmount)),
			sdk.NewAttribute(types.AttributeKeyFeeAPending, fmt.Sprintf("%d", escrow.FeeAPending)),
			sdk.NewAttribute(types.AttributeKeyFeeBPending, fmt.Sprintf("%d", escrow.FeeBPending)),
			sdk.NewAttribute(types.AttributeKeyFeeACheckpoint, escrow.FeeAPerLiquidityCheckpoint.String()),
			sdk.NewAttribute(types.AttributeKeyFeeBCheckpoint, escrow.FeeBPerLiquidityCheckpoint.String()),
		),
	)
}

func (k Keeper) afterTopSetChanged(ctx context.Context, vaultID uint64, owner string, joined bool) error {
	if k.hooks == nil {
		return nil
	}
	return k.hooks.AfterTopSetChanged(ctx, vaultID, owner, joined)
}
