package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/stakefee-chain/stakefee/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	if genState.NextPoolId > 0 {
		store.Set(types.PoolCountKey, uint64Bytes(genState.NextPoolId))
	}
	if genState.NextLockEscrowId > 0 {
		store.Set(types.LockEscrowCountKey, uint64Bytes(genState.NextLockEscrowId))
	}

	for i := range genState.Pools {
		if err := k.SetPool(ctx, &genState.Pools[i]); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", genState.Pools[i].Id, err)
		}
	}
	for i := range genState.LockEscrows {
		escrow := &genState.LockEscrows[i]
		if err := k.SetLockEscrow(ctx, escrow); err != nil {
			return fmt.Errorf("failed to set lock escrow %d: %w", escrow.Id, err)
		}
		store.Set(types.GetLockEscrowByPoolKey(escrow.PoolId, escrow.Id), uint64Bytes(escrow.Id))
	}

	return nil
}

// ExportGenesis returns the module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	var escrows []types.LockEscrow
	for _, pool := range pools {
		poolEscrows, err := k.GetLockEscrowsByPool(ctx, pool.Id)
		if err != nil {
			return nil, err
		}
		escrows = append(escrows, poolEscrows...)
	}

	store := k.getStore(ctx)
	genState := &types.GenesisState{
		Params:      params,
		Pools:       pools,
		LockEscrows: escrows,
	}
	if bz := store.Get(types.PoolCountKey); bz != nil {
		genState.NextPoolId = binary.BigEndian.Uint64(bz)
	}
	if bz := store.Get(types.LockEscrowCountKey); bz != nil {
		genState.NextLockEscrowId = binary.BigEndian.Uint64(bz)
	}

	return genState, nil
}
