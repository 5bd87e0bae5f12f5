package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/stakefee-chain/stakefee/testutil/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func TestRequestUnstakeInsufficientStake(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("unstaker")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 100)

	before, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)

	_, err = env.k.RequestUnstake(env.ctx, p, vaultID, 101)
	require.ErrorIs(t, err, types.ErrInsufficientStakeAmount)

	// State unchanged on failure
	after, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)
	require.Equal(t, before.StakeAmount, after.StakeAmount)
	require.Equal(t, before.OngoingTotalPartialUnstakeAmount, after.OngoingTotalPartialUnstakeAmount)

	// A second request larger than the remaining active stake also fails
	_, err = env.k.RequestUnstake(env.ctx, p, vaultID, 60)
	require.NoError(t, err)
	_, err = env.k.RequestUnstake(env.ctx, p, vaultID, 60)
	require.ErrorIs(t, err, types.ErrInsufficientStakeAmount)
}

func TestRequestUnstakeReducesEffectiveStakeImmediately(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("unstaker")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 100)

	unstake, err := env.k.RequestUnstake(env.ctx, p, vaultID, 40)
	require.NoError(t, err)
	require.Equal(t, uint64(40), unstake.Amount)
	require.Equal(t, env.ctx.BlockTime().Unix()+6*3600, unstake.ReleaseAt)

	escrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)
	require.Equal(t, uint64(60), escrow.StakeAmount)
	require.Equal(t, uint64(40), escrow.OngoingTotalPartialUnstakeAmount)
	require.True(t, escrow.InTopList, "sole member keeps the slot")

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(60), vault.TopStakerInfo.EffectiveStakeAmount)
	require.Equal(t, uint64(100), vault.Metrics.TotalStakedAmount, "total includes pending unstakes")
	require.Equal(t, uint64(40), vault.Metrics.OngoingTotalPartialUnstakeAmount)
}

func TestRequestUnstakeDropsBelowSmallestOther(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	big := keepertest.TestAddr("big")
	small := keepertest.TestAddr("small")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, big, 100)
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, small, 50)

	// small drops to 20, below big's 100: leaves the set
	_, err := env.k.RequestUnstake(env.ctx, small, vaultID, 30)
	require.NoError(t, err)

	escrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, small)
	require.NoError(t, err)
	require.False(t, escrow.InTopList)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), vault.TopStakerInfo.EffectiveStakeAmount)
	require.Equal(t, uint64(1), vault.TopStakerInfo.CurrentLength)
}

func TestWithdrawGating(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("withdrawer")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 100)

	unstake, err := env.k.RequestUnstake(env.ctx, p, vaultID, 100)
	require.NoError(t, err)

	lock := int64(6 * 3600)

	_, err = env.k.Withdraw(at(env.ctx, lock-1), p, unstake.Id)
	require.ErrorIs(t, err, types.ErrCannotWithdrawUnstakeAmount)

	_, err = env.k.Withdraw(at(env.ctx, lock), p, unstake.Id)
	require.NoError(t, err)

	// Ticket gone, balance returned, metrics decremented
	_, err = env.k.GetUnstake(env.ctx, unstake.Id)
	require.ErrorIs(t, err, types.ErrUnstakeNotFound)

	require.Equal(t, uint64(100), env.bank.GetBalance(env.ctx, p, "ustake").Amount.Uint64())

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), vault.Metrics.TotalStakedAmount)
	require.Equal(t, uint64(0), vault.Metrics.OngoingTotalPartialUnstakeAmount)

	escrow, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)
	require.Equal(t, uint64(0), escrow.OngoingTotalPartialUnstakeAmount)

	// Double withdraw fails on the missing ticket
	_, err = env.k.Withdraw(at(env.ctx, lock), p, unstake.Id)
	require.ErrorIs(t, err, types.ErrUnstakeNotFound)
}

func TestWithdrawWrongOwner(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("owner_p")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 100)

	unstake, err := env.k.RequestUnstake(env.ctx, p, vaultID, 100)
	require.NoError(t, err)

	thief := keepertest.TestAddr("thief")
	_, err = env.k.Withdraw(at(env.ctx, 7*3600), thief, unstake.Id)
	require.ErrorIs(t, err, types.ErrInvalidEscrowOwner)
}

func TestCancelUnstakeRestoresEscrow(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("canceller")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 100)

	before, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)

	unstake, err := env.k.RequestUnstake(env.ctx, p, vaultID, 100)
	require.NoError(t, err)

	// Cancellation is allowed even after the release time
	_, err = env.k.CancelUnstake(at(env.ctx, 100*3600), p, unstake.Id)
	require.NoError(t, err)

	after, err := env.k.GetStakeEscrow(env.ctx, vaultID, p)
	require.NoError(t, err)
	require.Equal(t, before.StakeAmount, after.StakeAmount)
	require.Equal(t, before.OngoingTotalPartialUnstakeAmount, after.OngoingTotalPartialUnstakeAmount)
	require.Equal(t, before.InTopList, after.InTopList)

	_, err = env.k.GetUnstake(env.ctx, unstake.Id)
	require.ErrorIs(t, err, types.ErrUnstakeNotFound)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), vault.TopStakerInfo.EffectiveStakeAmount)
	require.Equal(t, uint64(0), vault.Metrics.OngoingTotalPartialUnstakeAmount)
}

func TestStakeUnstakeWithdrawRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("round_trip")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, p, 500)

	vault, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(500), vault.Metrics.TotalStakedAmount)

	unstake, err := env.k.RequestUnstake(env.ctx, p, vaultID, 500)
	require.NoError(t, err)
	_, err = env.k.Withdraw(at(env.ctx, 6*3600), p, unstake.Id)
	require.NoError(t, err)

	vault, err = env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), vault.Metrics.TotalStakedAmount)
	require.Equal(t, uint64(500), env.bank.GetBalance(env.ctx, p, "ustake").Amount.Uint64())
}
