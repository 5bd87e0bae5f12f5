package types

import (
	"fmt"

	"github.com/cosmos/gogoproto/proto"
)

// Hand-written proto.Message shims for the module's messages. State objects
// are JSON-marshalled; only the tx surface needs proto identity for codec
// and router registration.

func init() {
	proto.RegisterType((*MsgInitializeConfig)(nil), "stakefee.v1.MsgInitializeConfig")
	proto.RegisterType((*MsgCloseConfig)(nil), "stakefee.v1.MsgCloseConfig")
	proto.RegisterType((*MsgInitializeVault)(nil), "stakefee.v1.MsgInitializeVault")
	proto.RegisterType((*MsgInitializeStakeEscrow)(nil), "stakefee.v1.MsgInitializeStakeEscrow")
	proto.RegisterType((*MsgStake)(nil), "stakefee.v1.MsgStake")
	proto.RegisterType((*MsgRequestUnstake)(nil), "stakefee.v1.MsgRequestUnstake")
	proto.RegisterType((*MsgCancelUnstake)(nil), "stakefee.v1.MsgCancelUnstake")
	proto.RegisterType((*MsgWithdraw)(nil), "stakefee.v1.MsgWithdraw")
	proto.RegisterType((*MsgClaimFee)(nil), "stakefee.v1.MsgClaimFee")
	proto.RegisterType((*MsgClaimFeeCrank)(nil), "stakefee.v1.MsgClaimFeeCrank")
	proto.RegisterType((*MsgUpdateUnstakeLockDuration)(nil), "stakefee.v1.MsgUpdateUnstakeLockDuration")
	proto.RegisterType((*MsgUpdateSecondsToFullUnlock)(nil), "stakefee.v1.MsgUpdateSecondsToFullUnlock")
}

func (m *MsgInitializeConfig) Reset()         { *m = MsgInitializeConfig{} }
func (m *MsgInitializeConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeConfig) ProtoMessage()    {}

func (m *MsgCloseConfig) Reset()         { *m = MsgCloseConfig{} }
func (m *MsgCloseConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCloseConfig) ProtoMessage()    {}

func (m *MsgInitializeVault) Reset()         { *m = MsgInitializeVault{} }
func (m *MsgInitializeVault) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeVault) ProtoMessage()    {}

func (m *MsgInitializeStakeEscrow) Reset()         { *m = MsgInitializeStakeEscrow{} }
func (m *MsgInitializeStakeEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeStakeEscrow) ProtoMessage()    {}

func (m *MsgStake) Reset()         { *m = MsgStake{} }
func (m *MsgStake) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgStake) ProtoMessage()    {}

func (m *MsgRequestUnstake) Reset()         { *m = MsgRequestUnstake{} }
func (m *MsgRequestUnstake) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRequestUnstake) ProtoMessage()    {}

func (m *MsgCancelUnstake) Reset()         { *m = MsgCancelUnstake{} }
func (m *MsgCancelUnstake) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCancelUnstake) ProtoMessage()    {}

func (m *MsgWithdraw) Reset()         { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgWithdraw) ProtoMessage()    {}

func (m *MsgClaimFee) Reset()         { *m = MsgClaimFee{} }
func (m *MsgClaimFee) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgClaimFee) ProtoMessage()    {}

func (m *MsgClaimFeeCrank) Reset()         { *m = MsgClaimFeeCrank{} }
func (m *MsgClaimFeeCrank) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgClaimFeeCrank) ProtoMessage()    {}

func (m *MsgUpdateUnstakeLockDuration) Reset()         { *m = MsgUpdateUnstakeLockDuration{} }
func (m *MsgUpdateUnstakeLockDuration) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateUnstakeLockDuration) ProtoMessage()    {}

func (m *MsgUpdateSecondsToFullUnlock) Reset()         { *m = MsgUpdateSecondsToFullUnlock{} }
func (m *MsgUpdateSecondsToFullUnlock) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateSecondsToFullUnlock) ProtoMessage()    {}
