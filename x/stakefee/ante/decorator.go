package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// CrankDecorator rejects transactions that combine MsgClaimFeeCrank with any
// other stakefee message. The crank advances the drip for whoever is in the
// top set at that instant; letting a caller sandwich it between their own
// stake moves in one transaction would sharpen the last-staker window the
// pull throttle already opens.
type CrankDecorator struct{}

// NewCrankDecorator creates a new CrankDecorator
func NewCrankDecorator() CrankDecorator {
	return CrankDecorator{}
}

// AnteHandle implements the AnteDecorator interface
func (cd CrankDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	if err := ValidateCrankIsolation(tx.GetMsgs()); err != nil {
		return ctx, err
	}
	return next(ctx, tx, simulate)
}

// ValidateCrankIsolation checks that a crank message is the only stakefee
// message in the list.
func ValidateCrankIsolation(msgs []sdk.Msg) error {
	var cranks, module int
	for _, msg := range msgs {
		switch msg.(type) {
		case *types.MsgClaimFeeCrank:
			cranks++
			module++
		case *types.MsgInitializeConfig, *types.MsgCloseConfig, *types.MsgInitializeVault,
			*types.MsgInitializeStakeEscrow, *types.MsgStake, *types.MsgRequestUnstake,
			*types.MsgCancelUnstake, *types.MsgWithdraw, *types.MsgClaimFee,
			*types.MsgUpdateUnstakeLockDuration, *types.MsgUpdateSecondsToFullUnlock:
			module++
		}
	}

	if cranks > 0 && module > cranks {
		return types.ErrInvalidFeeCrankIx.Wrap("claim fee crank must be the only stakefee message in the transaction")
	}
	if cranks > 1 {
		return types.ErrInvalidFeeCrankIx.Wrap("only one claim fee crank per transaction")
	}
	return nil
}
