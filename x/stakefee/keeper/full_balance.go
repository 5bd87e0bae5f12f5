package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// initFullBalanceList writes the empty registry metadata for a new vault.
func (k Keeper) initFullBalanceList(ctx context.Context, vaultID uint64) error {
	return k.setFullBalanceMetadata(ctx, &types.FullBalanceListMetadata{Vault: vaultID})
}

func (k Keeper) getFullBalanceMetadata(ctx context.Context, vaultID uint64) (*types.FullBalanceListMetadata, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetFullBalanceMetadataKey(vaultID))
	if bz == nil {
		return nil, types.ErrVaultNotFound.Wrapf("no full balance list for vault %d", vaultID)
	}

	var metadata types.FullBalanceListMetadata
	if err := json.Unmarshal(bz, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (k Keeper) setFullBalanceMetadata(ctx context.Context, metadata *types.FullBalanceListMetadata) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	store.Set(types.GetFullBalanceMetadataKey(metadata.Vault), bz)
	return nil
}

// GetFullBalance reads one registry entry.
func (k Keeper) GetFullBalance(ctx context.Context, vaultID, index uint64) (*types.StakerBalance, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetFullBalanceKey(vaultID, index))
	if bz == nil {
		return nil, types.ErrInvalidStakeEscrow.Wrapf("full balance index %d missing in vault %d", index, vaultID)
	}

	var balance types.StakerBalance
	if err := json.Unmarshal(bz, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SetFullBalance writes one registry entry in place.
func (k Keeper) SetFullBalance(ctx context.Context, vaultID, index uint64, balance *types.StakerBalance) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	store.Set(types.GetFullBalanceKey(vaultID, index), bz)
	return nil
}

// GetAllFullBalances returns a vault's registry entries in index order.
func (k Keeper) GetAllFullBalances(ctx context.Context, vaultID uint64) ([]types.StakerBalance, error) {
	metadata, err := k.getFullBalanceMetadata(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	balances := make([]types.StakerBalance, 0, metadata.Length)
	for i := uint64(0); i < metadata.Length; i++ {
		balance, err := k.GetFullBalance(ctx, vaultID, i)
		if err != nil {
			return nil, err
		}
		balances = append(balances, *balance)
	}
	return balances, nil
}

// registerFullBalance finds or creates the registry entry for an owner.
// Registration is idempotent: an occupied entry for the same owner returns
// its index. Otherwise the lowest reclaimable entry is reused, emitting
// ReclaimIndex; failing that the list grows by one, up to the hard limit.
// The created flag is true only for a genuinely fresh registration.
func (k Keeper) registerFullBalance(ctx context.Context, vaultID uint64, owner string) (index uint64, created bool, err error) {
	metadata, err := k.getFullBalanceMetadata(ctx, vaultID)
	if err != nil {
		return 0, false, err
	}

	reclaimable := int64(-1)
	for i := uint64(0); i < metadata.Length; i++ {
		balance, err := k.GetFullBalance(ctx, vaultID, i)
		if err != nil {
			return 0, false, err
		}
		if balance.Owner == owner {
			return i, false, nil
		}
		if reclaimable < 0 && balance.Reclaimable() {
			reclaimable = int64(i)
		}
	}

	if reclaimable >= 0 {
		index = uint64(reclaimable)
		if err := k.SetFullBalance(ctx, vaultID, index, &types.StakerBalance{Owner: owner}); err != nil {
			return 0, false, err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeReclaimIndex,
				sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
				sdk.NewAttribute(types.AttributeKeyOwner, owner),
				sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			),
		)
		return index, true, nil
	}

	if metadata.Length >= types.FullBalanceListHardLimit {
		return 0, false, types.ErrFullBalanceListFull.Wrapf("vault %d at hard limit %d", vaultID, types.FullBalanceListHardLimit)
	}

	index = metadata.Length
	if err := k.SetFullBalance(ctx, vaultID, index, &types.StakerBalance{Owner: owner}); err != nil {
		return 0, false, err
	}
	metadata.Length++
	if err := k.setFullBalanceMetadata(ctx, metadata); err != nil {
		return 0, false, err
	}
	return index, true, nil
}

// setFullBalanceState updates the balance and in_top flag at an index,
// keeping the owner.
func (k Keeper) setFullBalanceState(ctx context.Context, vaultID uint64, index uint64, newBalance uint64, inTop bool) error {
	balance, err := k.GetFullBalance(ctx, vaultID, index)
	if err != nil {
		return err
	}
	balance.Balance = newBalance
	balance.InTop = inTop
	return k.SetFullBalance(ctx, vaultID, index, balance)
}
