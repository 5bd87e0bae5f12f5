package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializeConfig(context.Context, *MsgInitializeConfig) (*MsgInitializeConfigResponse, error)
	CloseConfig(context.Context, *MsgCloseConfig) (*MsgCloseConfigResponse, error)
	InitializeVault(context.Context, *MsgInitializeVault) (*MsgInitializeVaultResponse, error)
	InitializeStakeEscrow(context.Context, *MsgInitializeStakeEscrow) (*MsgInitializeStakeEscrowResponse, error)
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	RequestUnstake(context.Context, *MsgRequestUnstake) (*MsgRequestUnstakeResponse, error)
	CancelUnstake(context.Context, *MsgCancelUnstake) (*MsgCancelUnstakeResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	ClaimFee(context.Context, *MsgClaimFee) (*MsgClaimFeeResponse, error)
	ClaimFeeCrank(context.Context, *MsgClaimFeeCrank) (*MsgClaimFeeCrankResponse, error)
	UpdateUnstakeLockDuration(context.Context, *MsgUpdateUnstakeLockDuration) (*MsgUpdateUnstakeLockDurationResponse, error)
	UpdateSecondsToFullUnlock(context.Context, *MsgUpdateSecondsToFullUnlock) (*MsgUpdateSecondsToFullUnlockResponse, error)
}

// Response types

// MsgInitializeConfigResponse defines the response for InitializeConfig
type MsgInitializeConfigResponse struct{}

// MsgCloseConfigResponse defines the response for CloseConfig
type MsgCloseConfigResponse struct{}

// MsgInitializeVaultResponse defines the response for InitializeVault
type MsgInitializeVaultResponse struct {
	VaultId uint64 `json:"vault_id"`
}

// MsgInitializeStakeEscrowResponse defines the response for InitializeStakeEscrow
type MsgInitializeStakeEscrowResponse struct {
	FullBalanceIndex int64 `json:"full_balance_index"`
}

// MsgStakeResponse defines the response for Stake
type MsgStakeResponse struct {
	NewStakeAmount uint64 `json:"new_stake_amount"`
	InTopList      bool   `json:"in_top_list"`
}

// MsgRequestUnstakeResponse defines the response for RequestUnstake
type MsgRequestUnstakeResponse struct {
	UnstakeId uint64 `json:"unstake_id"`
	ReleaseAt int64  `json:"release_at"`
}

// MsgCancelUnstakeResponse defines the response for CancelUnstake
type MsgCancelUnstakeResponse struct{}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	Amount uint64 `json:"amount"`
}

// MsgClaimFeeResponse defines the response for ClaimFee
type MsgClaimFeeResponse struct {
	FeeAAmount uint64 `json:"fee_a_amount"`
	FeeBAmount uint64 `json:"fee_b_amount"`
}

// MsgClaimFeeCrankResponse defines the response for ClaimFeeCrank
type MsgClaimFeeCrankResponse struct{}

// MsgUpdateUnstakeLockDurationResponse defines the response for UpdateUnstakeLockDuration
type MsgUpdateUnstakeLockDurationResponse struct{}

// MsgUpdateSecondsToFullUnlockResponse defines the response for UpdateSecondsToFullUnlock
type MsgUpdateSecondsToFullUnlockResponse struct{}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
