package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// Keeper of the stakefee store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper
	ammKeeper  types.AmmKeeper
	authority  string

	// ARCH-2 style hooks for cross-module notifications; nil when unused
	hooks types.StakefeeHooks
}

// NewKeeper creates a new stakefee Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	ammKeeper types.AmmKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		ammKeeper:  ammKeeper,
		authority:  authority,
	}
}

// SetHooks sets the module hooks. Panics if called twice.
func (k *Keeper) SetHooks(h types.StakefeeHooks) {
	if k.hooks != nil {
		panic("stakefee hooks already set")
	}
	k.hooks = h
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the module account address holding every vault's
// token balances
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return sdk.AccAddress([]byte(types.ModuleName))
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// GetStoreKey returns the store key for testing purposes
func (k Keeper) GetStoreKey() storetypes.StoreKey {
	return k.storeKey
}

// blockNow returns the block time as unix seconds; every operation in the
// module reads time through this single point.
func blockNow(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
}
