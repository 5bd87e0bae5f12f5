package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/stakefee-chain/stakefee/testutil/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/keeper"
)

// TestInvariantsHoldThroughLifecycle runs the full user journey and checks
// every registered invariant after each step.
func TestInvariantsHoldThroughLifecycle(t *testing.T) {
	env := newTestEnv(t)
	vaultID := keepertest.SetupVault(t, env.k, env.amm, env.ctx, keepertest.TestConfig(1))

	check := func(step string) {
		msg, broken := keeper.AllInvariants(env.k)(env.ctx)
		require.False(t, broken, "invariant broken after %s: %s", step, msg)
	}

	check("vault creation")

	a := keepertest.TestAddr("inv_a")
	b := keepertest.TestAddr("inv_b")
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, a, 120)
	keepertest.SetupStaker(t, env.k, env.bank, env.ctx, vaultID, b, 80)
	check("staking")

	setUnlockWindow(t, env.k, env.ctx, vaultID, 100)
	lockFees(t, env.k, env.bank, env.ctx, vaultID, 1000, 500)
	require.NoError(t, env.k.ClaimFeeCrank(at(env.ctx, 60), vaultID))
	check("crank")

	_, _, err := env.k.ClaimFee(at(env.ctx, 60), a, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	check("claim")

	unstake, err := env.k.RequestUnstake(at(env.ctx, 60), b, vaultID, 80)
	require.NoError(t, err)
	check("request unstake")

	_, err = env.k.CancelUnstake(at(env.ctx, 120), b, unstake.Id)
	require.NoError(t, err)
	check("cancel unstake")

	unstake, err = env.k.RequestUnstake(at(env.ctx, 120), b, vaultID, 40)
	require.NoError(t, err)
	_, err = env.k.Withdraw(at(env.ctx, 120+6*3600), b, unstake.Id)
	require.NoError(t, err)
	check("withdraw")

	require.NoError(t, env.k.ClaimFeeCrank(at(env.ctx, 120+6*3600), vaultID))
	check("final crank")
}
