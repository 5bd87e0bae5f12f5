package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidPoolId         = errors.Register(ModuleName, 1, "invalid pool id")
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 4, "invalid token denomination")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 5, "insufficient liquidity in pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 6, "invalid amount")
	ErrZeroAmount            = errors.Register(ModuleName, 7, "amount cannot be zero")
	ErrSameToken             = errors.Register(ModuleName, 8, "cannot swap same token")
	ErrMinAmountOut          = errors.Register(ModuleName, 9, "output amount less than minimum required")
	ErrInvalidAddress        = errors.Register(ModuleName, 10, "invalid address")
	ErrInsufficientShares    = errors.Register(ModuleName, 11, "insufficient liquidity shares")
	ErrLockEscrowNotFound    = errors.Register(ModuleName, 12, "lock escrow not found")
	ErrInvalidGenesis        = errors.Register(ModuleName, 13, "invalid genesis state")
	ErrUnsupportedCurve      = errors.Register(ModuleName, 14, "unsupported pool curve")
)
