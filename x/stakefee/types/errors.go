package types

import (
	"cosmossdk.io/errors"
)

// Stakefee module sentinel errors
var (
	ErrInvalidEscrowOwner                  = errors.Register(ModuleName, 1, "escrow owner is not vault")
	ErrInvalidTopListLength                = errors.Register(ModuleName, 2, "invalid top list length")
	ErrInvalidSecondsToFullUnlock          = errors.Register(ModuleName, 3, "invalid seconds to full unlock")
	ErrMustHaveQuoteTokenOrInvalidStakeMint = errors.Register(ModuleName, 4, "pool missing quote token or invalid stake mint")
	ErrMissingDroppedStakeEscrow           = errors.Register(ModuleName, 5, "missing dropped stake escrow")
	ErrInvalidStakeEscrow                  = errors.Register(ModuleName, 6, "invalid stake escrow")
	ErrFullBalanceListFull                 = errors.Register(ModuleName, 7, "full balance list is full")
	ErrInvalidStakeMint                    = errors.Register(ModuleName, 8, "invalid stake mint")
	ErrInsufficientStakeAmount             = errors.Register(ModuleName, 9, "insufficient stake amount")
	ErrCannotWithdrawUnstakeAmount         = errors.Register(ModuleName, 10, "unstake amount release date not reached")
	ErrInvalidAdmin                        = errors.Register(ModuleName, 11, "invalid admin")
	ErrInvalidUnstakeLockDuration          = errors.Register(ModuleName, 12, "invalid unstake lock duration")
	ErrInvalidJoinWindowDuration           = errors.Register(ModuleName, 13, "invalid join window duration")
	ErrInvalidCustomStartClaimFeeTimestamp = errors.Register(ModuleName, 14, "invalid custom start claim fee timestamp")
	ErrInvalidSmallestStakeEscrow          = errors.Register(ModuleName, 15, "invalid smallest stake escrow")
	ErrMathOverflow                        = errors.Register(ModuleName, 16, "math overflow")
	ErrTypeCastFailed                      = errors.Register(ModuleName, 17, "type casting failed")
	ErrInvalidLockEscrowRelatedAccounts    = errors.Register(ModuleName, 18, "invalid lock escrow related accounts")
	ErrOnlyConstantProductPool             = errors.Register(ModuleName, 19, "only constant product pool is supported")
	ErrUndeterminedError                   = errors.Register(ModuleName, 20, "undetermined error")
	ErrMissingSmallestStakeEscrow          = errors.Register(ModuleName, 21, "missing smallest stake escrow")
	ErrUpdatedValueIsTheSame               = errors.Register(ModuleName, 22, "updated value is the same as the old value")
	ErrInvalidFeeCrankIx                   = errors.Register(ModuleName, 23, "claim fee crank cannot be combined with other stakefee messages")
	ErrVaultNotFound                       = errors.Register(ModuleName, 24, "vault not found")
	ErrConfigNotFound                      = errors.Register(ModuleName, 25, "config not found")
	ErrConfigAlreadyExists                 = errors.Register(ModuleName, 26, "config already exists")
	ErrVaultAlreadyExists                  = errors.Register(ModuleName, 27, "vault already exists for pool")
	ErrStakeEscrowNotFound                 = errors.Register(ModuleName, 28, "stake escrow not found")
	ErrStakeEscrowAlreadyExists            = errors.Register(ModuleName, 29, "stake escrow already exists")
	ErrUnstakeNotFound                     = errors.Register(ModuleName, 30, "unstake not found")
	ErrZeroAmount                          = errors.Register(ModuleName, 31, "amount cannot be zero")
	ErrInvalidGenesis                      = errors.Register(ModuleName, 32, "invalid genesis state")
)
