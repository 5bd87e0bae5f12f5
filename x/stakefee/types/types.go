package types

const (
	// ModuleName defines the module name
	ModuleName = "stakefee"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const secondsPerDay = 86_400

// Bounds for the top staker list capacity.
const (
	MinListLength uint16 = 5
	MaxListLength uint16 = 1000
)

// Range (in seconds) for locked claim fees to be fully dripped to the top stakers.
const (
	MinSecondsToFullUnlock uint64 = secondsPerDay * 6 / 24 // 6 hours
	MaxSecondsToFullUnlock uint64 = secondsPerDay * 31     // 31 days
)

// Range (in seconds) for a requested unstake to withdraw the capital.
const (
	MinUnstakeLockDuration uint64 = secondsPerDay * 6 / 24 // 6 hours
	MaxUnstakeLockDuration uint64 = secondsPerDay * 31     // 31 days
)

// Maximum seconds for stakers to stake before the first lock escrow claim fee
// happens. Gives the list time to fill so the first claim is not distributed
// to a lone early staker.
const MaxJoinWindowDuration uint64 = secondsPerDay * 31 // 31 days

// Fixed-point scale for the per-liquidity indices (Q64.64).
const ScaleOffset uint = 64

// Maximum entries the full balance list can hold. Bounds the per-operation
// scan cost.
const FullBalanceListHardLimit uint64 = 10_000

// Minimum duration between lock escrow fee claims. The AMM claim path carries
// its own precision loss; throttling bounds the accumulated loss. The window
// this opens for the last staker is documented in the module README.
const MinLockEscrowClaimFeeDuration int64 = 60 * 5 // 5 minutes

// Empty marks an unoccupied top staker slot via FullBalanceIndex.
const EmptyFullBalanceIndex int64 = -1
