package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/stakefee-chain/stakefee/x/amm/keeper"
	ammtypes "github.com/stakefee-chain/stakefee/x/amm/types"
)

// AmmKeeper creates a test keeper for the AMM module with a mock bank.
func AmmKeeper(t testing.TB) (ammkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()

	k := ammkeeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		"",
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *ammtypes.DefaultGenesis()))

	return k, bank, ctx
}
