package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func testAddr(seed string) string {
	bz := make([]byte, 20)
	copy(bz, seed)
	return sdk.AccAddress(bz).String()
}

func TestMsgStakeValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgStake
		wantErr bool
	}{
		{
			name: "valid",
			msg:  types.MsgStake{Owner: testAddr("alice"), VaultId: 1, Amount: 100},
		},
		{
			name:    "bad address",
			msg:     types.MsgStake{Owner: "not-an-address", VaultId: 1, Amount: 100},
			wantErr: true,
		},
		{
			name:    "zero amount",
			msg:     types.MsgStake{Owner: testAddr("alice"), VaultId: 1, Amount: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, tt.msg.GetSigners(), 1)
			}
		})
	}
}

func TestMsgRequestUnstakeValidateBasic(t *testing.T) {
	msg := types.MsgRequestUnstake{Owner: testAddr("alice"), VaultId: 1, UnstakeAmount: 10}
	require.NoError(t, msg.ValidateBasic())

	msg.UnstakeAmount = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)
}

func TestMsgInitializeVaultValidateBasic(t *testing.T) {
	msg := types.MsgInitializeVault{
		Creator:   testAddr("creator"),
		PoolId:    1,
		StakeMint: "ustake",
	}
	require.NoError(t, msg.ValidateBasic())

	bad := msg
	bad.StakeMint = ""
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidStakeMint)

	bad = msg
	bad.CustomStartClaimFeeTimestamp = -5
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidCustomStartClaimFeeTimestamp)
}

func TestMsgInitializeConfigValidateBasic(t *testing.T) {
	msg := types.MsgInitializeConfig{
		Admin:               testAddr("admin"),
		Index:               7,
		TopListLength:       types.MinListLength,
		SecondsToFullUnlock: types.MinSecondsToFullUnlock,
		UnstakeLockDuration: types.MinUnstakeLockDuration,
	}
	require.NoError(t, msg.ValidateBasic())

	bad := msg
	bad.TopListLength = 1
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidTopListLength)
}

func TestAdminMsgsValidateBasic(t *testing.T) {
	lock := types.MsgUpdateUnstakeLockDuration{
		Admin:               testAddr("admin"),
		VaultId:             1,
		UnstakeLockDuration: types.MinUnstakeLockDuration,
	}
	require.NoError(t, lock.ValidateBasic())

	lock.UnstakeLockDuration = types.MaxUnstakeLockDuration + 1
	require.ErrorIs(t, lock.ValidateBasic(), types.ErrInvalidUnstakeLockDuration)

	unlock := types.MsgUpdateSecondsToFullUnlock{
		Admin:               testAddr("admin"),
		VaultId:             1,
		SecondsToFullUnlock: types.MinSecondsToFullUnlock,
	}
	require.NoError(t, unlock.ValidateBasic())

	unlock.SecondsToFullUnlock = 0
	require.ErrorIs(t, unlock.ValidateBasic(), types.ErrInvalidSecondsToFullUnlock)
}
