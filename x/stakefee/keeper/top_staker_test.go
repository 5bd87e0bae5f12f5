package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/stakefee-chain/stakefee/testutil/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// fillTopList stakes five holders into a K=5 vault and returns them in
// registration order.
func fillTopList(t *testing.T, amounts []uint64) (vaultID uint64, stakers []sdk.AccAddress, env testEnv) {
	env = newTestEnv(t)
	vaultID = keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	names := []string{"top_a", "top_b", "top_c", "top_d", "top_e"}
	for i, name := range names {
		addr := keepertest.TestAddr(name)
		keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, addr, amounts[i])
		stakers = append(stakers, addr)
	}
	return vaultID, stakers, env
}

func TestTopListFillsToCapacity(t *testing.T) {
	vaultID, _, env := fillTopList(t, []uint64{10, 20, 30, 40, 50})

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(5), vault.TopStakerInfo.CurrentLength)
	require.Equal(t, uint64(150), vault.TopStakerInfo.EffectiveStakeAmount)

	stakers, err := env.k.GetTopStakers(env.ctx, vaultID)
	require.NoError(t, err)
	require.Len(t, stakers, 5)
}

// TestEqualStakeDoesNotDisplace: a sixth staker matching the smallest stake
// stays outside; only strictly greater stake evicts.
func TestEqualStakeDoesNotDisplace(t *testing.T) {
	vaultID, _, env := fillTopList(t, []uint64{100, 100, 100, 100, 100})

	outsider := keepertest.TestAddr("outsider")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, outsider, 100)

	escrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, outsider)
	require.NoError(t, err)
	require.False(t, escrow.InTopList)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(500), vault.TopStakerInfo.EffectiveStakeAmount)
	require.Equal(t, uint64(5), vault.TopStakerInfo.CurrentLength)

	// The outsider's checkpoint sits at the current index, so nothing
	// accrues while outside
	require.True(t, escrow.FeeAPerLiquidityCheckpoint.Equal(vault.TopStakerInfo.CumulativeFeeAPerLiquidity))
}

// TestEvictionSettlesPendingFees: a displaced staker keeps exactly what
// accrued while they were in the set, and no more afterwards.
func TestEvictionSettlesPendingFees(t *testing.T) {
	vaultID, stakers, env := fillTopList(t, []uint64{100, 100, 100, 100, 100})

	setUnlockWindow(t, env.k, env.ctx, vaultID, 100)
	lockFees(t, env.k, env.bank, env.ctx, vaultID, 500, 0)
	require.NoError(t, env.k.ClaimFeeCrank(at(env.ctx, 100), vaultID))

	// Smallest by tie-break is the first registered staker
	victim := stakers[0]

	whale := keepertest.TestAddr("whale")
	env.bank.Fund(whale, keepertest.Coins("ustake", 500))
	_, err := env.k.InitializeStakeEscrow(at(env.ctx, 100), vaultID, whale)
	require.NoError(t, err)
	_, err = env.k.Stake(at(env.ctx, 100), whale, vaultID, 500)
	require.NoError(t, err)

	victimEscrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, victim)
	require.NoError(t, err)
	require.False(t, victimEscrow.InTopList)
	require.Equal(t, uint64(100), victimEscrow.FeeAPending, "settled at eviction")

	whaleEscrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, whale)
	require.NoError(t, err)
	require.True(t, whaleEscrow.InTopList)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(900), vault.TopStakerInfo.EffectiveStakeAmount)

	// More fees drip; the evictee's claim returns only the settled amount
	lockFees(t, env.k, env.bank, env.ctx, vaultID, 900, 0)
	require.NoError(t, env.k.ClaimFeeCrank(at(env.ctx, 200), vaultID))

	paidA, _, err := env.k.ClaimFee(at(env.ctx, 200), victim, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(100), paidA)

	paidA, _, err = env.k.ClaimFee(at(env.ctx, 200), victim, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(0), paidA, "nothing accrues after eviction")
}

// TestRejoinAfterEviction: an evicted staker who stakes back above the
// smallest member re-enters and accrues from the rejoin point only.
func TestRejoinAfterEviction(t *testing.T) {
	vaultID, stakers, env := fillTopList(t, []uint64{100, 200, 200, 200, 200})

	victim := stakers[0]

	whale := keepertest.TestAddr("whale")
	env.bank.Fund(whale, keepertest.Coins("ustake", 300))
	_, err := env.k.InitializeStakeEscrow(env.ctx, vaultID, whale)
	require.NoError(t, err)
	_, err = env.k.Stake(env.ctx, whale, vaultID, 300)
	require.NoError(t, err)

	victimEscrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, victim)
	require.NoError(t, err)
	require.False(t, victimEscrow.InTopList)

	// Index moves while the victim is outside
	setUnlockWindow(t, env.k, env.ctx, vaultID, 100)
	lockFees(t, env.k, env.bank, env.ctx, vaultID, 1100, 0)
	require.NoError(t, env.k.ClaimFeeCrank(at(env.ctx, 100), vaultID))

	// Restake enough to displace the smallest (200-stake) member
	env.bank.Fund(victim, keepertest.Coins("ustake", 150))
	_, err = env.k.Stake(at(env.ctx, 100), victim, vaultID, 150)
	require.NoError(t, err)

	victimEscrow, err = env.k.GetStakeEscrow(env.ctx, vaultID, victim)
	require.NoError(t, err)
	require.True(t, victimEscrow.InTopList)
	require.Equal(t, uint64(0), victimEscrow.FeeAPending, "period away never accrues")

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, victimEscrow.FeeAPerLiquidityCheckpoint.Equal(vault.TopStakerInfo.CumulativeFeeAPerLiquidity))
}

// TestStakeEscrowCount counts fresh registrations only.
func TestStakeEscrowCount(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	a := keepertest.TestAddr("count_a")
	b := keepertest.TestAddr("count_b")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, a, 10)
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, b, 10)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), vault.Metrics.TotalStakeEscrowCount)

	_, err = env.k.InitializeStakeEscrow(env.ctx, vaultID, a)
	require.ErrorIs(t, err, types.ErrStakeEscrowAlreadyExists)

	vault, err = env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), vault.Metrics.TotalStakeEscrowCount)
}

func requireIntZero(t *testing.T, v math.Int) {
	require.True(t, v.IsZero(), "expected zero, got %s", v)
}
