package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeConfig{}, "stakefee/MsgInitializeConfig", nil)
	cdc.RegisterConcrete(&MsgCloseConfig{}, "stakefee/MsgCloseConfig", nil)
	cdc.RegisterConcrete(&MsgInitializeVault{}, "stakefee/MsgInitializeVault", nil)
	cdc.RegisterConcrete(&MsgInitializeStakeEscrow{}, "stakefee/MsgInitializeStakeEscrow", nil)
	cdc.RegisterConcrete(&MsgStake{}, "stakefee/MsgStake", nil)
	cdc.RegisterConcrete(&MsgRequestUnstake{}, "stakefee/MsgRequestUnstake", nil)
	cdc.RegisterConcrete(&MsgCancelUnstake{}, "stakefee/MsgCancelUnstake", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "stakefee/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgClaimFee{}, "stakefee/MsgClaimFee", nil)
	cdc.RegisterConcrete(&MsgClaimFeeCrank{}, "stakefee/MsgClaimFeeCrank", nil)
	cdc.RegisterConcrete(&MsgUpdateUnstakeLockDuration{}, "stakefee/MsgUpdateUnstakeLockDuration", nil)
	cdc.RegisterConcrete(&MsgUpdateSecondsToFullUnlock{}, "stakefee/MsgUpdateSecondsToFullUnlock", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializeConfig{},
		&MsgCloseConfig{},
		&MsgInitializeVault{},
		&MsgInitializeStakeEscrow{},
		&MsgStake{},
		&MsgRequestUnstake{},
		&MsgCancelUnstake{},
		&MsgWithdraw{},
		&MsgClaimFee{},
		&MsgClaimFeeCrank{},
		&MsgUpdateUnstakeLockDuration{},
		&MsgUpdateSecondsToFullUnlock{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
