package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// InitializeStakeEscrow registers the owner in the vault's full balance list
// and creates their escrow, checkpointed at the current indices.
func (k Keeper) InitializeStakeEscrow(ctx context.Context, vaultID uint64, owner sdk.AccAddress) (*types.StakeEscrow, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	if _, err := k.GetStakeEscrow(ctx, vaultID, owner); err == nil {
		return nil, types.ErrStakeEscrowAlreadyExists.Wrapf("owner %s in vault %d", owner, vaultID)
	}

	index, created, err := k.registerFullBalance(ctx, vaultID, owner.String())
	if err != nil {
		return nil, err
	}

	escrow := types.NewStakeEscrow(owner.String(), vaultID, int64(index), blockNow(ctx), vault.TopStakerInfo)
	if err := k.SetStakeEscrow(ctx, &escrow); err != nil {
		return nil, err
	}

	if created {
		vault.Metrics.TotalStakeEscrowCount++
		if err := k.SetVault(ctx, vault); err != nil {
			return nil, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakeEscrowCreated,
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
		),
	)

	return &escrow, nil
}

// GetStakeEscrow retrieves an owner's escrow in a vault
func (k Keeper) GetStakeEscrow(ctx context.Context, vaultID uint64, owner sdk.AccAddress) (*types.StakeEscrow, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetStakeEscrowKey(vaultID, owner))
	if bz == nil {
		return nil, types.ErrStakeEscrowNotFound.Wrapf("owner %s in vault %d", owner, vaultID)
	}

	var escrow types.StakeEscrow
	if err := json.Unmarshal(bz, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// SetStakeEscrow saves an escrow to the store
func (k Keeper) SetStakeEscrow(ctx context.Context, escrow *types.StakeEscrow) error {
	owner, err := sdk.AccAddressFromBech32(escrow.Owner)
	if err != nil {
		return types.ErrInvalidEscrowOwner.Wrapf("owner %s", escrow.Owner)
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(escrow)
	if err != nil {
		return err
	}
	store.Set(types.GetStakeEscrowKey(escrow.Vault, owner), bz)
	return nil
}

// IterateStakeEscrows iterates over every escrow of a vault.
func (k Keeper) IterateStakeEscrows(ctx context.Context, vaultID uint64, cb func(escrow types.StakeEscrow) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := append(types.StakeEscrowKeyPrefix, uint64Bytes(vaultID)...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var escrow types.StakeEscrow
		if err := json.Unmarshal(iterator.Value(), &escrow); err != nil {
			return err
		}
		if cb(escrow) {
			break
		}
	}
	return nil
}
