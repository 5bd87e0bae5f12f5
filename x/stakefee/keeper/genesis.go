package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// InitGenesis initializes the stakefee module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	if genState.NextVaultId > 0 {
		store.Set(types.VaultCountKey, uint64Bytes(genState.NextVaultId))
	}
	if genState.NextUnstakeId > 0 {
		store.Set(types.UnstakeCountKey, uint64Bytes(genState.NextUnstakeId))
	}

	for _, config := range genState.Configs {
		bz, err := json.Marshal(&config)
		if err != nil {
			return err
		}
		store.Set(types.GetConfigKey(config.Index), bz)
	}

	for i := range genState.Vaults {
		vault := &genState.Vaults[i]
		if err := k.SetVault(ctx, vault); err != nil {
			return fmt.Errorf("failed to set vault %d: %w", vault.Id, err)
		}
		store.Set(types.GetVaultByPoolKey(vault.Pool), uint64Bytes(vault.Id))
	}

	for _, list := range genState.FullBalanceLists {
		metadata := &types.FullBalanceListMetadata{Vault: list.Vault, Length: uint64(len(list.Balances))}
		if err := k.setFullBalanceMetadata(ctx, metadata); err != nil {
			return err
		}
		for i := range list.Balances {
			if err := k.SetFullBalance(ctx, list.Vault, uint64(i), &list.Balances[i]); err != nil {
				return err
			}
		}
	}

	for _, list := range genState.TopStakerLists {
		for i, slot := range list.Slots {
			if slot.IsEmpty() {
				continue
			}
			if err := k.saveTopSlot(ctx, list.Vault, uint64(i), slot); err != nil {
				return err
			}
		}
	}

	for i := range genState.StakeEscrows {
		if err := k.SetStakeEscrow(ctx, &genState.StakeEscrows[i]); err != nil {
			return fmt.Errorf("failed to set escrow of %s: %w", genState.StakeEscrows[i].Owner, err)
		}
	}

	for i := range genState.Unstakes {
		if err := k.SetUnstake(ctx, &genState.Unstakes[i]); err != nil {
			return fmt.Errorf("failed to set unstake %d: %w", genState.Unstakes[i].Id, err)
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := k.GetAllConfigs(ctx)
	if err != nil {
		return nil, err
	}

	vaults, err := k.GetAllVaults(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:  params,
		Configs: configs,
		Vaults:  vaults,
	}

	for i := range vaults {
		vault := &vaults[i]

		balances, err := k.GetAllFullBalances(ctx, vault.Id)
		if err != nil {
			return nil, err
		}
		genState.FullBalanceLists = append(genState.FullBalanceLists, types.GenesisFullBalanceList{
			Vault:    vault.Id,
			Balances: balances,
		})

		slots, err := k.loadTopSlots(ctx, vault)
		if err != nil {
			return nil, err
		}
		genState.TopStakerLists = append(genState.TopStakerLists, types.GenesisTopStakerList{
			Vault: vault.Id,
			Slots: slots,
		})

		if err := k.IterateStakeEscrows(ctx, vault.Id, func(escrow types.StakeEscrow) bool {
			genState.StakeEscrows = append(genState.StakeEscrows, escrow)
			return false
		}); err != nil {
			return nil, err
		}
	}

	unstakes, err := k.GetAllUnstakes(ctx)
	if err != nil {
		return nil, err
	}
	genState.Unstakes = unstakes

	store := k.getStore(ctx)
	if bz := store.Get(types.VaultCountKey); bz != nil {
		genState.NextVaultId = binary.BigEndian.Uint64(bz)
	}
	if bz := store.Get(types.UnstakeCountKey); bz != nil {
		genState.NextUnstakeId = binary.BigEndian.Uint64(bz)
	}

	return genState, nil
}
