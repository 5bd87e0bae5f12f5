package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitializeVault       = "initialize_vault"
	TypeMsgInitializeStakeEscrow = "initialize_stake_escrow"
	TypeMsgStake                 = "stake"
	TypeMsgRequestUnstake        = "request_unstake"
	TypeMsgCancelUnstake         = "cancel_unstake"
	TypeMsgWithdraw              = "withdraw"
	TypeMsgClaimFee              = "claim_fee"
	TypeMsgClaimFeeCrank         = "claim_fee_crank"
)

var (
	_ sdk.Msg = &MsgInitializeVault{}
	_ sdk.Msg = &MsgInitializeStakeEscrow{}
	_ sdk.Msg = &MsgStake{}
	_ sdk.Msg = &MsgRequestUnstake{}
	_ sdk.Msg = &MsgCancelUnstake{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgClaimFee{}
	_ sdk.Msg = &MsgClaimFeeCrank{}
)

// MsgInitializeVault creates the fee vault for a pool from a config template.
type MsgInitializeVault struct {
	Creator     string `json:"creator"`
	PoolId      uint64 `json:"pool_id"`
	LockEscrow  uint64 `json:"lock_escrow"`
	StakeMint   string `json:"stake_mint"`
	ConfigIndex uint64 `json:"config_index"`
	// Optional first pull/drip time; zero defers to now + join window
	CustomStartClaimFeeTimestamp int64 `json:"custom_start_claim_fee_timestamp,omitempty"`
}

// ValidateBasic performs basic validation of MsgInitializeVault
func (m *MsgInitializeVault) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid creator address: %s", m.Creator)
	}
	if err := sdk.ValidateDenom(m.StakeMint); err != nil {
		return ErrInvalidStakeMint.Wrapf("invalid stake mint denom: %s", m.StakeMint)
	}
	if m.CustomStartClaimFeeTimestamp < 0 {
		return ErrInvalidCustomStartClaimFeeTimestamp.Wrapf("negative timestamp %d", m.CustomStartClaimFeeTimestamp)
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitializeVault
func (m *MsgInitializeVault) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// MsgInitializeStakeEscrow registers the owner in a vault's registry and
// creates their escrow.
type MsgInitializeStakeEscrow struct {
	Owner   string `json:"owner"`
	VaultId uint64 `json:"vault_id"`
}

// ValidateBasic performs basic validation of MsgInitializeStakeEscrow
func (m *MsgInitializeStakeEscrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitializeStakeEscrow
func (m *MsgInitializeStakeEscrow) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgStake stakes stake-mint tokens into a vault.
type MsgStake struct {
	Owner   string `json:"owner"`
	VaultId uint64 `json:"vault_id"`
	Amount  uint64 `json:"amount"`
}

// ValidateBasic performs basic validation of MsgStake
func (m *MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	if m.Amount == 0 {
		return ErrZeroAmount.Wrap("stake amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgStake
func (m *MsgStake) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgRequestUnstake starts the unstake lock for part of the owner's stake.
type MsgRequestUnstake struct {
	Owner         string `json:"owner"`
	VaultId       uint64 `json:"vault_id"`
	UnstakeAmount uint64 `json:"unstake_amount"`
}

// ValidateBasic performs basic validation of MsgRequestUnstake
func (m *MsgRequestUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	if m.UnstakeAmount == 0 {
		return ErrZeroAmount.Wrap("unstake amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgRequestUnstake
func (m *MsgRequestUnstake) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgCancelUnstake returns a pending unstake to the active stake.
type MsgCancelUnstake struct {
	Owner     string `json:"owner"`
	UnstakeId uint64 `json:"unstake_id"`
}

// ValidateBasic performs basic validation of MsgCancelUnstake
func (m *MsgCancelUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	return nil
}

// GetSigners returns the expected signers for MsgCancelUnstake
func (m *MsgCancelUnstake) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgWithdraw settles a matured unstake back to the owner's account.
type MsgWithdraw struct {
	Owner     string `json:"owner"`
	UnstakeId uint64 `json:"unstake_id"`
}

// ValidateBasic performs basic validation of MsgWithdraw
func (m *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdraw
func (m *MsgWithdraw) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgClaimFee pays out the owner's pending fees up to the per-side caps.
type MsgClaimFee struct {
	Owner   string `json:"owner"`
	VaultId uint64 `json:"vault_id"`
	MaxFeeA uint64 `json:"max_fee_a"`
	MaxFeeB uint64 `json:"max_fee_b"`
}

// ValidateBasic performs basic validation of MsgClaimFee
func (m *MsgClaimFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", m.Owner)
	}
	return nil
}

// GetSigners returns the expected signers for MsgClaimFee
func (m *MsgClaimFee) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgClaimFeeCrank is the permissionless keep-the-drip-moving operation. It
// must be the only stakefee message in its transaction.
type MsgClaimFeeCrank struct {
	Sender  string `json:"sender"`
	VaultId uint64 `json:"vault_id"`
}

// ValidateBasic performs basic validation of MsgClaimFeeCrank
func (m *MsgClaimFeeCrank) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return ErrInvalidEscrowOwner.Wrapf("invalid sender address: %s", m.Sender)
	}
	return nil
}

// GetSigners returns the expected signers for MsgClaimFeeCrank
func (m *MsgClaimFeeCrank) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}
