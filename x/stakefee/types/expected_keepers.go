package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/stakefee-chain/stakefee/x/amm/types"
)

// BankKeeper defines the expected interface for the bank keeper
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// AmmKeeper is the narrow capability the fee vault needs from the AMM: pool
// identity checks at vault creation and the locked fee claim path.
type AmmKeeper interface {
	GetPool(ctx context.Context, poolID uint64) (*ammtypes.Pool, error)
	GetLockEscrow(ctx context.Context, lockEscrowID uint64) (*ammtypes.LockEscrow, error)
	// ClaimLockedFees moves the lock escrow's claimable fee buckets to the
	// recipient and returns the transferred amounts.
	ClaimLockedFees(ctx context.Context, lockEscrowID uint64, to sdk.AccAddress) (feeA, feeB math.Int, err error)
}
