package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// InitializeConfig stores a new vault construction template under the given
// index.
func (k Keeper) InitializeConfig(ctx context.Context, admin string, config types.Config) error {
	if err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	key := types.GetConfigKey(config.Index)
	if store.Has(key) {
		return types.ErrConfigAlreadyExists.Wrapf("config index %d", config.Index)
	}

	bz, err := json.Marshal(&config)
	if err != nil {
		return err
	}
	store.Set(key, bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigCreated,
			sdk.NewAttribute(types.AttributeKeyConfig, fmt.Sprintf("%d", config.Index)),
			sdk.NewAttribute(types.AttributeKeyTopListLength, fmt.Sprintf("%d", config.TopListLength)),
			sdk.NewAttribute(types.AttributeKeySecondsToFullUnlock, fmt.Sprintf("%d", config.SecondsToFullUnlock)),
			sdk.NewAttribute(types.AttributeKeyUnstakeLockDuration, fmt.Sprintf("%d", config.UnstakeLockDuration)),
			sdk.NewAttribute(types.AttributeKeyJoinWindowDuration, fmt.Sprintf("%d", config.JoinWindowDuration)),
		),
	)

	return nil
}

// CloseConfig removes a config template.
func (k Keeper) CloseConfig(ctx context.Context, admin string, index uint64) error {
	if err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}

	store := k.getStore(ctx)
	key := types.GetConfigKey(index)
	if !store.Has(key) {
		return types.ErrConfigNotFound.Wrapf("config index %d", index)
	}
	store.Delete(key)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigClosed,
			sdk.NewAttribute(types.AttributeKeyConfig, fmt.Sprintf("%d", index)),
		),
	)

	return nil
}

// GetConfig retrieves a config template by index
func (k Keeper) GetConfig(ctx context.Context, index uint64) (*types.Config, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetConfigKey(index))
	if bz == nil {
		return nil, types.ErrConfigNotFound.Wrapf("config index %d", index)
	}

	var config types.Config
	if err := json.Unmarshal(bz, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// GetAllConfigs returns every stored config template.
func (k Keeper) GetAllConfigs(ctx context.Context) ([]types.Config, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ConfigKeyPrefix)
	defer iterator.Close()

	var configs []types.Config
	for ; iterator.Valid(); iterator.Next() {
		var config types.Config
		if err := json.Unmarshal(iterator.Value(), &config); err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}
	return configs, nil
}
