package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Admin message type URLs
const (
	TypeMsgInitializeConfig           = "initialize_config"
	TypeMsgCloseConfig                = "close_config"
	TypeMsgUpdateUnstakeLockDuration  = "update_unstake_lock_duration"
	TypeMsgUpdateSecondsToFullUnlock  = "update_seconds_to_full_unlock"
)

var (
	_ sdk.Msg = &MsgInitializeConfig{}
	_ sdk.Msg = &MsgCloseConfig{}
	_ sdk.Msg = &MsgUpdateUnstakeLockDuration{}
	_ sdk.Msg = &MsgUpdateSecondsToFullUnlock{}
)

// MsgInitializeConfig creates an indexed vault construction template.
type MsgInitializeConfig struct {
	Admin               string `json:"admin"`
	Index               uint64 `json:"index"`
	TopListLength       uint16 `json:"top_list_length"`
	SecondsToFullUnlock uint64 `json:"seconds_to_full_unlock"`
	UnstakeLockDuration uint64 `json:"unstake_lock_duration"`
	JoinWindowDuration  uint64 `json:"join_window_duration"`
}

// ValidateBasic performs basic validation of MsgInitializeConfig
func (m *MsgInitializeConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid admin address: %s", m.Admin)
	}
	return Config{
		Index:               m.Index,
		SecondsToFullUnlock: m.SecondsToFullUnlock,
		UnstakeLockDuration: m.UnstakeLockDuration,
		JoinWindowDuration:  m.JoinWindowDuration,
		TopListLength:       m.TopListLength,
	}.Validate()
}

// GetSigners returns the expected signers for MsgInitializeConfig
func (m *MsgInitializeConfig) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgCloseConfig removes a config template.
type MsgCloseConfig struct {
	Admin string `json:"admin"`
	Index uint64 `json:"index"`
}

// ValidateBasic performs basic validation of MsgCloseConfig
func (m *MsgCloseConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid admin address: %s", m.Admin)
	}
	return nil
}

// GetSigners returns the expected signers for MsgCloseConfig
func (m *MsgCloseConfig) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgUpdateUnstakeLockDuration changes a live vault's unstake lock.
type MsgUpdateUnstakeLockDuration struct {
	Admin               string `json:"admin"`
	VaultId             uint64 `json:"vault_id"`
	UnstakeLockDuration uint64 `json:"unstake_lock_duration"`
}

// ValidateBasic performs basic validation of MsgUpdateUnstakeLockDuration
func (m *MsgUpdateUnstakeLockDuration) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid admin address: %s", m.Admin)
	}
	return ValidateUnstakeLockDuration(m.UnstakeLockDuration)
}

// GetSigners returns the expected signers for MsgUpdateUnstakeLockDuration
func (m *MsgUpdateUnstakeLockDuration) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgUpdateSecondsToFullUnlock changes a live vault's drip window. The
// keeper drips with the old window before switching.
type MsgUpdateSecondsToFullUnlock struct {
	Admin               string `json:"admin"`
	VaultId             uint64 `json:"vault_id"`
	SecondsToFullUnlock uint64 `json:"seconds_to_full_unlock"`
}

// ValidateBasic performs basic validation of MsgUpdateSecondsToFullUnlock
func (m *MsgUpdateSecondsToFullUnlock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid admin address: %s", m.Admin)
	}
	return ValidateSecondsToFullUnlock(m.SecondsToFullUnlock)
}

// GetSigners returns the expected signers for MsgUpdateSecondsToFullUnlock
func (m *MsgUpdateSecondsToFullUnlock) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}
