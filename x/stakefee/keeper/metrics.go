package keeper

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stakeVolume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_stake_volume_total",
			Help: "Total stake-mint volume staked into vaults",
		},
		[]string{"vault"},
	)

	unstakeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_unstake_requests_total",
			Help: "Total unstake requests",
		},
		[]string{"vault"},
	)

	withdrawVolume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_withdraw_volume_total",
			Help: "Total stake-mint volume withdrawn from vaults",
		},
		[]string{"vault"},
	)

	feePulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_fee_pulls_total",
			Help: "Fees pulled from lock escrows into the locked buckets",
		},
		[]string{"vault", "side"},
	)

	feeDrips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_fee_drips_total",
			Help: "Fees released from the locked buckets into the index",
		},
		[]string{"vault", "side"},
	)

	feeClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_fee_claims_total",
			Help: "Fees paid out to stakers",
		},
		[]string{"vault", "side"},
	)

	topEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakefee_top_evictions_total",
			Help: "Evictions from the top staker set",
		},
		[]string{"vault"},
	)

	effectiveStake = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stakefee_effective_stake_amount",
			Help: "Current effective stake per vault",
		},
		[]string{"vault"},
	)
)

func vaultLabel(vaultID uint64) string {
	return fmt.Sprintf("%d", vaultID)
}

func recordStake(vaultID, amount uint64) {
	stakeVolume.WithLabelValues(vaultLabel(vaultID)).Add(float64(amount))
}

func recordUnstakeRequest(vaultID uint64) {
	unstakeRequests.WithLabelValues(vaultLabel(vaultID)).Inc()
}

func recordWithdraw(vaultID, amount uint64) {
	withdrawVolume.WithLabelValues(vaultLabel(vaultID)).Add(float64(amount))
}

func recordFeePull(vaultID, feeA, feeB uint64) {
	feePulls.WithLabelValues(vaultLabel(vaultID), "a").Add(float64(feeA))
	feePulls.WithLabelValues(vaultLabel(vaultID), "b").Add(float64(feeB))
}

func recordFeeDrip(vaultID, releasedA, releasedB uint64) {
	feeDrips.WithLabelValues(vaultLabel(vaultID), "a").Add(float64(releasedA))
	feeDrips.WithLabelValues(vaultLabel(vaultID), "b").Add(float64(releasedB))
}

func recordClaim(vaultID, feeA, feeB uint64) {
	feeClaims.WithLabelValues(vaultLabel(vaultID), "a").Add(float64(feeA))
	feeClaims.WithLabelValues(vaultLabel(vaultID), "b").Add(float64(feeB))
}

func recordTopEviction(vaultID uint64) {
	topEvictions.WithLabelValues(vaultLabel(vaultID)).Inc()
}

func recordEffectiveStake(vaultID, amount uint64) {
	effectiveStake.WithLabelValues(vaultLabel(vaultID)).Set(float64(amount))
}
