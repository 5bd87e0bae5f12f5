package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func newDripVault(start int64, period uint64) *types.FeeVault {
	vault := &types.FeeVault{
		Configuration: types.Configuration{
			SecondsToFullUnlock:    period,
			StartClaimFeeTimestamp: start,
		},
		Metrics:       types.NewMetrics(),
		TopStakerInfo: types.NewTopStakerInfo(5),
	}
	vault.TopStakerInfo.LastUpdatedAt = start
	return vault
}

func TestDripLinearRelease(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 200
	vault.TopStakerInfo.EffectiveStakeAmount = 200

	res, err := vault.Drip(1050)
	require.NoError(t, err)
	require.Equal(t, uint64(100), res.ReleasedA)
	require.Equal(t, uint64(0), res.ReleasedB)
	require.True(t, res.IndexAdvanced)
	require.Equal(t, uint64(100), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, int64(1050), vault.TopStakerInfo.LastUpdatedAt)

	// (100 << 64) / 200 is half a Q64.64 unit
	wantIndex := types.OneQ64().QuoRaw(2)
	require.True(t, wantIndex.Equal(vault.TopStakerInfo.CumulativeFeeAPerLiquidity))
}

func TestDripExactEmptyAtFullUnlock(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 199 // does not divide the window evenly
	vault.TopStakerInfo.LockedFeeB = 7
	vault.TopStakerInfo.EffectiveStakeAmount = 300

	_, err := vault.Drip(1000 + 100)
	require.NoError(t, err)
	require.Equal(t, uint64(0), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(0), vault.TopStakerInfo.LockedFeeB)
}

func TestDripPastFullUnlockClamped(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 50
	vault.TopStakerInfo.EffectiveStakeAmount = 100

	_, err := vault.Drip(1000 + 10_000)
	require.NoError(t, err)
	require.Equal(t, uint64(0), vault.TopStakerInfo.LockedFeeA)
}

func TestDripBeforeStartIsNoop(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 200
	vault.TopStakerInfo.EffectiveStakeAmount = 100

	res, err := vault.Drip(999)
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.ReleasedA)
	require.False(t, res.IndexAdvanced)
	require.Equal(t, uint64(200), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, int64(1000), vault.TopStakerInfo.LastUpdatedAt)
	require.True(t, vault.TopStakerInfo.CumulativeFeeAPerLiquidity.IsZero())
}

func TestDripNoTopStallRetainsTokens(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 200
	vault.TopStakerInfo.LockedFeeB = 90
	// No top holders
	vault.TopStakerInfo.EffectiveStakeAmount = 0

	res, err := vault.Drip(1050)
	require.NoError(t, err)
	require.False(t, res.IndexAdvanced)
	require.Equal(t, uint64(200), vault.TopStakerInfo.LockedFeeA)
	require.Equal(t, uint64(90), vault.TopStakerInfo.LockedFeeB)
	require.True(t, vault.TopStakerInfo.CumulativeFeeAPerLiquidity.IsZero())
	require.Equal(t, int64(1050), vault.TopStakerInfo.LastUpdatedAt)

	// Stake appears; the retained bucket now meters from the stall point
	vault.TopStakerInfo.EffectiveStakeAmount = 100
	res, err = vault.Drip(1100)
	require.NoError(t, err)
	require.True(t, res.IndexAdvanced)
	require.Equal(t, uint64(100), res.ReleasedA)
}

func TestDripIndexMonotonic(t *testing.T) {
	vault := newDripVault(1000, 100)
	vault.TopStakerInfo.LockedFeeA = 1_000_000
	vault.TopStakerInfo.EffectiveStakeAmount = 777

	prev := vault.TopStakerInfo.CumulativeFeeAPerLiquidity
	for now := int64(1001); now <= 1200; now += 13 {
		_, err := vault.Drip(now)
		require.NoError(t, err)
		cur := vault.TopStakerInfo.CumulativeFeeAPerLiquidity
		require.True(t, cur.GTE(prev), "index decreased at %d", now)
		prev = cur
	}
}

func TestCanPullFees(t *testing.T) {
	vault := newDripVault(1000, 100)

	require.False(t, vault.CanPullFees(999), "before start")
	require.True(t, vault.CanPullFees(1000), "first pull at start")

	vault.TopStakerInfo.LastClaimFeeAt = 1000
	require.False(t, vault.CanPullFees(1000+types.MinLockEscrowClaimFeeDuration-1))
	require.True(t, vault.CanPullFees(1000+types.MinLockEscrowClaimFeeDuration))
}

func TestSyncAccruesOnlyInTop(t *testing.T) {
	info := types.NewTopStakerInfo(5)
	escrow := types.NewStakeEscrow("owner", 1, 0, 0, info)
	escrow.StakeAmount = 100

	index, err := types.SafeShlDiv(100, 200, types.RoundDown)
	require.NoError(t, err)

	// Off the top list: checkpoint advances, pending does not
	require.NoError(t, escrow.Sync(index, index))
	require.Equal(t, uint64(0), escrow.FeeAPending)
	require.True(t, index.Equal(escrow.FeeAPerLiquidityCheckpoint))

	// In the top list: the next index delta accrues on the stake
	escrow.InTopList = true
	doubled := index.Add(index)
	require.NoError(t, escrow.Sync(doubled, doubled))
	require.Equal(t, uint64(50), escrow.FeeAPending)
	require.Equal(t, uint64(50), escrow.FeeBPending)

	// Re-sync at the same index adds nothing
	require.NoError(t, escrow.Sync(doubled, doubled))
	require.Equal(t, uint64(50), escrow.FeeAPending)
}
