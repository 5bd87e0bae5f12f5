package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	ammtypes "github.com/stakefee-chain/stakefee/x/amm/types"
	"github.com/stakefee-chain/stakefee/x/stakefee/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// GenesisTime anchors every stakefee test context.
var GenesisTime = time.Unix(1_700_000_000, 0)

// MockAmmKeeper satisfies the stakefee module's AmmKeeper interface with
// settable pools and claimable fee buckets. ClaimLockedFees pays from its
// faucet address, which tests pre-fund through the bank mock.
type MockAmmKeeper struct {
	bank        *MockBankKeeper
	Pools       map[uint64]*ammtypes.Pool
	LockEscrows map[uint64]*ammtypes.LockEscrow
	// Pending claim amounts per lock escrow id
	PendingA map[uint64]uint64
	PendingB map[uint64]uint64
}

// NewMockAmmKeeper creates an empty mock AMM.
func NewMockAmmKeeper(bank *MockBankKeeper) *MockAmmKeeper {
	return &MockAmmKeeper{
		bank:        bank,
		Pools:       make(map[uint64]*ammtypes.Pool),
		LockEscrows: make(map[uint64]*ammtypes.LockEscrow),
		PendingA:    make(map[uint64]uint64),
		PendingB:    make(map[uint64]uint64),
	}
}

// FaucetAddr is the address the mock pays claims from.
func (m *MockAmmKeeper) FaucetAddr() sdk.AccAddress {
	return TestAddr("amm_faucet")
}

// AddPool registers a pool and its lock escrow under the same id.
func (m *MockAmmKeeper) AddPool(id uint64, tokenA, tokenB string, curve ammtypes.CurveType) {
	m.Pools[id] = &ammtypes.Pool{
		Id:                id,
		TokenA:            tokenA,
		TokenB:            tokenB,
		ReserveA:          math.NewInt(1_000_000),
		ReserveB:          math.NewInt(1_000_000),
		TotalShares:       math.NewInt(1_000_000),
		TotalLockedShares: math.NewInt(1_000_000),
		CurveType:         curve,
	}
	m.LockEscrows[id] = &ammtypes.LockEscrow{
		Id:            id,
		PoolId:        id,
		LockedShares:  math.NewInt(1_000_000),
		ClaimableFeeA: math.ZeroInt(),
		ClaimableFeeB: math.ZeroInt(),
	}
}

// SetPending queues claimable fees on a lock escrow. The faucet must hold
// the matching balances.
func (m *MockAmmKeeper) SetPending(lockEscrowID, feeA, feeB uint64) {
	m.PendingA[lockEscrowID] += feeA
	m.PendingB[lockEscrowID] += feeB
}

// GetPool implements the AmmKeeper interface
func (m *MockAmmKeeper) GetPool(ctx context.Context, poolID uint64) (*ammtypes.Pool, error) {
	pool, ok := m.Pools[poolID]
	if !ok {
		return nil, ammtypes.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}
	return pool, nil
}

// GetLockEscrow implements the AmmKeeper interface
func (m *MockAmmKeeper) GetLockEscrow(ctx context.Context, lockEscrowID uint64) (*ammtypes.LockEscrow, error) {
	escrow, ok := m.LockEscrows[lockEscrowID]
	if !ok {
		return nil, ammtypes.ErrLockEscrowNotFound.Wrapf("lock escrow %d not found", lockEscrowID)
	}
	return escrow, nil
}

// ClaimLockedFees implements the AmmKeeper interface
func (m *MockAmmKeeper) ClaimLockedFees(ctx context.Context, lockEscrowID uint64, to sdk.AccAddress) (math.Int, math.Int, error) {
	escrow, ok := m.LockEscrows[lockEscrowID]
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), ammtypes.ErrLockEscrowNotFound.Wrapf("lock escrow %d not found", lockEscrowID)
	}
	pool := m.Pools[escrow.PoolId]

	feeA := m.PendingA[lockEscrowID]
	feeB := m.PendingB[lockEscrowID]
	m.PendingA[lockEscrowID] = 0
	m.PendingB[lockEscrowID] = 0

	payout := sdk.NewCoins()
	if feeA > 0 {
		payout = payout.Add(sdk.NewCoin(pool.TokenA, math.NewIntFromUint64(feeA)))
	}
	if feeB > 0 {
		payout = payout.Add(sdk.NewCoin(pool.TokenB, math.NewIntFromUint64(feeB)))
	}
	if !payout.IsZero() {
		if err := m.bank.SendCoins(ctx, m.FaucetAddr(), to, payout); err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
	}

	return math.NewIntFromUint64(feeA), math.NewIntFromUint64(feeB), nil
}

// StakefeeKeeper creates a test keeper for the stakefee module with mock
// bank and AMM dependencies.
func StakefeeKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, *MockAmmKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	amm := NewMockAmmKeeper(bank)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		amm,
		types.DefaultParams().Admin,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, amm, ctx
}

// Admin returns the module's default admin address string.
func Admin() string {
	return types.DefaultParams().Admin
}

// TestConfig returns an in-range config template.
func TestConfig(index uint64) types.Config {
	return types.Config{
		Index:               index,
		SecondsToFullUnlock: 6 * 3600,
		UnstakeLockDuration: 6 * 3600,
		JoinWindowDuration:  0,
		TopListLength:       5,
	}
}

// SetupVault creates a pool, a config and a vault, returning the vault id.
// The pool pairs the stake mint with uusdc so the quote check passes.
func SetupVault(t testing.TB, k keeper.Keeper, amm *MockAmmKeeper, ctx sdk.Context, cfg types.Config) uint64 {
	amm.AddPool(cfg.Index, "ustake", "uusdc", ammtypes.CurveConstantProduct)

	require.NoError(t, k.InitializeConfig(ctx, Admin(), cfg))

	vault, err := k.InitializeVault(ctx, &types.MsgInitializeVault{
		Creator:     Admin(),
		PoolId:      cfg.Index,
		LockEscrow:  cfg.Index,
		StakeMint:   "ustake",
		ConfigIndex: cfg.Index,
	})
	require.NoError(t, err)
	return vault.Id
}

// SetupStaker funds an owner with stake mint, creates their escrow and
// stakes the amount.
func SetupStaker(t testing.TB, k keeper.Keeper, bank *MockBankKeeper, ctx sdk.Context, vaultID uint64, owner sdk.AccAddress, amount uint64) {
	bank.Fund(owner, Coins("ustake", amount))
	if _, err := k.GetStakeEscrow(ctx, vaultID, owner); err != nil {
		_, err = k.InitializeStakeEscrow(ctx, vaultID, owner)
		require.NoError(t, err)
	}
	_, err := k.Stake(ctx, owner, vaultID, amount)
	require.NoError(t, err)
}
