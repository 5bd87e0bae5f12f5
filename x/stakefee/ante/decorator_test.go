package ante_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/ante"
	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func TestValidateCrankIsolation(t *testing.T) {
	crank := &types.MsgClaimFeeCrank{Sender: "addr", VaultId: 1}
	stake := &types.MsgStake{Owner: "addr", VaultId: 1, Amount: 10}
	claim := &types.MsgClaimFee{Owner: "addr", VaultId: 1}

	tests := []struct {
		name    string
		msgs    []sdk.Msg
		wantErr bool
	}{
		{
			name: "lone crank",
			msgs: []sdk.Msg{crank},
		},
		{
			name: "no crank at all",
			msgs: []sdk.Msg{stake, claim},
		},
		{
			name: "empty transaction",
			msgs: nil,
		},
		{
			name:    "crank with stake",
			msgs:    []sdk.Msg{crank, stake},
			wantErr: true,
		},
		{
			name:    "stake before crank",
			msgs:    []sdk.Msg{stake, crank},
			wantErr: true,
		},
		{
			name:    "crank sandwiched by claims",
			msgs:    []sdk.Msg{claim, crank, claim},
			wantErr: true,
		},
		{
			name:    "two cranks",
			msgs:    []sdk.Msg{crank, crank},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ante.ValidateCrankIsolation(tt.msgs)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidFeeCrankIx)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
