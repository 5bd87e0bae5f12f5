package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/stakefee-chain/stakefee/testutil/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

const maxU64 = ^uint64(0)

func at(ctx sdk.Context, seconds int64) sdk.Context {
	return ctx.WithBlockTime(keepertest.GenesisTime.Add(time.Duration(seconds) * time.Second))
}

// lockFees puts fees directly into the vault's locked bucket, backing them
// with module account balances, as if a pull had just happened.
func lockFees(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, vaultID uint64, feeA, feeB uint64) {
	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	vault.TopStakerInfo.LockedFeeA += feeA
	vault.TopStakerInfo.LockedFeeB += feeB
	vault.Metrics.TotalFeeAAmount = vault.Metrics.TotalFeeAAmount.Add(math.NewIntFromUint64(feeA))
	vault.Metrics.TotalFeeBAmount = vault.Metrics.TotalFeeBAmount.Add(math.NewIntFromUint64(feeB))
	require.NoError(t, k.SetVault(ctx, vault))

	if feeA > 0 {
		bank.Fund(k.GetModuleAddress(), keepertest.Coins(vault.TokenAMint, feeA))
	}
	if feeB > 0 {
		bank.Fund(k.GetModuleAddress(), keepertest.Coins(vault.TokenBMint, feeB))
	}
}

func setUnlockWindow(t *testing.T, k keeper.Keeper, ctx sdk.Context, vaultID, seconds uint64) {
	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	vault.Configuration.SecondsToFullUnlock = seconds
	require.NoError(t, k.SetVault(ctx, vault))
}

// TestCrankHalfWindow is the canonical two-staker scenario: 200 locked over
// a 100s window, cranked halfway through.
func TestCrankHalfWindow(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("staker_p")
	q := keepertest.TestAddr("staker_q")
	keepertest.SetupStaker(t, k, bank, ctx, vaultID, p, 100)
	keepertest.SetupStaker(t, k, bank, ctx, vaultID, q, 100)

	setUnlockWindow(t, k, ctx, vaultID, 100)
	lockFees(t, k, bank, ctx, vaultID, 200, 0)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 50), vaultID))

	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(200), vault.TopStakerInfo.EffectiveStakeAmount)

	wantIndex, err := types.SafeShlDiv(100, 200, types.RoundDown)
	require.NoError(t, err)
	require.True(t, wantIndex.Equal(vault.TopStakerInfo.CumulativeFeeAPerLiquidity))

	paidA, paidB, err := k.ClaimFee(at(ctx, 50), p, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(50), paidA)
	require.Equal(t, uint64(0), paidB)

	paidA, paidB, err = k.ClaimFee(at(ctx, 50), q, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(50), paidA)
	require.Equal(t, uint64(0), paidB)

	require.Equal(t, math.NewIntFromUint64(50), bank.GetBalance(ctx, p, "ustake").Amount)
}

// TestCrankBeforeStartIsNoop covers the join window gate: no pull, no drip,
// no state movement before the start claim fee timestamp.
func TestCrankBeforeStartIsNoop(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	cfg := keepertest.TestConfig(1)
	cfg.JoinWindowDuration = 3600
	vaultID := keepertest.SetupVault(t, k, amm, ctx, cfg)

	amm.SetPending(cfg.Index, 500, 0)
	bank.Fund(amm.FaucetAddr(), keepertest.Coins("ustake", 500))

	before, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 100), vaultID))

	after, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, before.TopStakerInfo.LastUpdatedAt, after.TopStakerInfo.LastUpdatedAt)
	require.Equal(t, before.TopStakerInfo.LastClaimFeeAt, after.TopStakerInfo.LastClaimFeeAt)
	require.Equal(t, uint64(0), after.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(500), amm.PendingA[cfg.Index], "pull must not run before start")

	// Once the join window passes, the crank pulls and starts dripping
	require.NoError(t, k.ClaimFeeCrank(at(ctx, 3600), vaultID))
	after, err = k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(500), after.TopStakerInfo.LockedFeeA)
	require.Equal(t, int64(keepertest.GenesisTime.Unix()+3600), after.TopStakerInfo.LastClaimFeeAt)
}

// TestPullThrottle verifies the minimum interval between lock escrow claims.
func TestPullThrottle(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	cfg := keepertest.TestConfig(1)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, cfg)

	amm.SetPending(cfg.Index, 100, 0)
	bank.Fund(amm.FaucetAddr(), keepertest.Coins("ustake", 100))

	// Vault creation has not pulled yet; the first crank does
	require.NoError(t, k.ClaimFeeCrank(ctx, vaultID))
	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), vault.TopStakerInfo.LockedFeeA)

	// A second pull inside the window is a no-op, not an error
	amm.SetPending(cfg.Index, 50, 0)
	bank.Fund(amm.FaucetAddr(), keepertest.Coins("ustake", 50))
	require.NoError(t, k.ClaimFeeCrank(at(ctx, types.MinLockEscrowClaimFeeDuration-1), vaultID))
	vault, err = k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), amm.PendingA[cfg.Index])

	// At the throttle boundary the pull runs again
	require.NoError(t, k.ClaimFeeCrank(at(ctx, types.MinLockEscrowClaimFeeDuration), vaultID))
	require.Equal(t, uint64(0), amm.PendingA[cfg.Index])
	vault, err = k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(150), vault.Metrics.TotalFeeAAmount)
}

// TestNoTopStallRetainsFees: with no top stakers the crank releases nothing
// and the locked bucket waits for the first staker.
func TestNoTopStallRetainsFees(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, keepertest.TestConfig(1))

	setUnlockWindow(t, k, ctx, vaultID, 100)
	lockFees(t, k, bank, ctx, vaultID, 300, 40)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 1000), vaultID))

	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(300), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(40), vault.TopStakerInfo.LockedFeeB)
	require.True(t, vault.TopStakerInfo.CumulativeFeeAPerLiquidity.IsZero())

	// First staker arrives; the full bucket now drips from this point
	p := keepertest.TestAddr("late_staker")
	bank.Fund(p, keepertest.Coins("ustake", 100))
	_, err = k.InitializeStakeEscrow(at(ctx, 1000), vaultID, p)
	require.NoError(t, err)
	_, err = k.Stake(at(ctx, 1000), p, vaultID, 100)
	require.NoError(t, err)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 1100), vaultID))
	vault, err = k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(0), vault.TopStakerInfo.LockedFeeB)

	paidA, paidB, err := k.ClaimFee(at(ctx, 1100), p, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(300), paidA)
	// (40 << 64) / 100 truncates, so one base unit stays behind as dust
	require.Equal(t, uint64(39), paidB)
}

// TestFairnessIdenticalStakes: stakers with identical stake over the same
// interval receive identical credit.
func TestFairnessIdenticalStakes(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, keepertest.TestConfig(1))

	stakers := []sdk.AccAddress{
		keepertest.TestAddr("fair_a"),
		keepertest.TestAddr("fair_b"),
		keepertest.TestAddr("fair_c"),
	}
	for _, s := range stakers {
		keepertest.SetupStaker(t, k, bank, ctx, vaultID, s, 333)
	}

	setUnlockWindow(t, k, ctx, vaultID, 1000)
	lockFees(t, k, bank, ctx, vaultID, 999_999, 0)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 700), vaultID))

	var paid []uint64
	for _, s := range stakers {
		a, _, err := k.ClaimFee(at(ctx, 700), s, vaultID, maxU64, maxU64)
		require.NoError(t, err)
		paid = append(paid, a)
	}
	require.Equal(t, paid[0], paid[1])
	require.Equal(t, paid[1], paid[2])
	require.Greater(t, paid[0], uint64(0))
}

// TestConservationNeverOverpays: however the drip is cranked, total paid out
// plus retained never exceeds what was pulled.
func TestConservationNeverOverpays(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, keepertest.TestConfig(1))

	stakers := []sdk.AccAddress{
		keepertest.TestAddr("cons_a"),
		keepertest.TestAddr("cons_b"),
	}
	keepertest.SetupStaker(t, k, bank, ctx, vaultID, stakers[0], 7)
	keepertest.SetupStaker(t, k, bank, ctx, vaultID, stakers[1], 13)

	const pulled = 1009 // awkward prime so every division truncates
	setUnlockWindow(t, k, ctx, vaultID, 997)
	lockFees(t, k, bank, ctx, vaultID, pulled, 0)

	var totalPaid uint64
	for _, step := range []int64{13, 100, 350, 800, 2000} {
		require.NoError(t, k.ClaimFeeCrank(at(ctx, step), vaultID))
		for _, s := range stakers {
			a, _, err := k.ClaimFee(at(ctx, step), s, vaultID, maxU64, maxU64)
			require.NoError(t, err)
			totalPaid += a
		}
	}

	vault, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	require.LessOrEqual(t, totalPaid+vault.TopStakerInfo.LockedFeeA, uint64(pulled))
}

// TestClaimFeeCap: the per-side cap limits the payout and leaves the rest
// pending.
func TestClaimFeeCap(t *testing.T) {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	vaultID := keepertest.SetupVault(t, k, amm, ctx, keepertest.TestConfig(1))

	p := keepertest.TestAddr("capped")
	keepertest.SetupStaker(t, k, bank, ctx, vaultID, p, 100)

	setUnlockWindow(t, k, ctx, vaultID, 100)
	lockFees(t, k, bank, ctx, vaultID, 400, 0)

	require.NoError(t, k.ClaimFeeCrank(at(ctx, 100), vaultID))

	paidA, _, err := k.ClaimFee(at(ctx, 100), p, vaultID, 150, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(150), paidA)

	escrow, err := k.GetStakeEscrow(ctx, vaultID, p)
	require.NoError(t, err)
	require.Equal(t, uint64(250), escrow.FeeAPending)
	require.Equal(t, math.NewInt(150), escrow.FeeAClaimedAmount)

	paidA, _, err = k.ClaimFee(at(ctx, 100), p, vaultID, maxU64, maxU64)
	require.NoError(t, err)
	require.Equal(t, uint64(250), paidA)
}
