package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func genesisWithVault() *types.GenesisState {
	gs := types.DefaultGenesis()
	vault := types.FeeVault{
		Id:            1,
		Pool:          1,
		StakeMint:     "ustake",
		QuoteMint:     "uusdc",
		Metrics:       types.NewMetrics(),
		TopStakerInfo: types.NewTopStakerInfo(5),
	}
	gs.Vaults = []types.FeeVault{vault}
	return gs
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name    string
		genesis func() *types.GenesisState
		wantErr bool
	}{
		{
			name:    "default genesis",
			genesis: types.DefaultGenesis,
		},
		{
			name:    "single vault",
			genesis: genesisWithVault,
		},
		{
			name: "duplicate vault id",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				gs.Vaults = append(gs.Vaults, gs.Vaults[0])
				return gs
			},
			wantErr: true,
		},
		{
			name: "two vaults on one pool",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				second := gs.Vaults[0]
				second.Id = 2
				gs.Vaults = append(gs.Vaults, second)
				return gs
			},
			wantErr: true,
		},
		{
			name: "current length exceeds capacity",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				gs.Vaults[0].TopStakerInfo.CurrentLength = 6
				return gs
			},
			wantErr: true,
		},
		{
			name: "escrow references unknown vault",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				escrow := types.NewStakeEscrow(testAddr("alice"), 99, 0, 0, types.NewTopStakerInfo(5))
				gs.StakeEscrows = []types.StakeEscrow{escrow}
				return gs
			},
			wantErr: true,
		},
		{
			name: "stake totals must match escrow sums",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				escrow := types.NewStakeEscrow(testAddr("alice"), 1, 0, 0, types.NewTopStakerInfo(5))
				escrow.StakeAmount = 100
				gs.StakeEscrows = []types.StakeEscrow{escrow}
				// Metrics left at zero: inconsistent
				return gs
			},
			wantErr: true,
		},
		{
			name: "consistent stake totals",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				escrow := types.NewStakeEscrow(testAddr("alice"), 1, 0, 0, types.NewTopStakerInfo(5))
				escrow.StakeAmount = 100
				gs.StakeEscrows = []types.StakeEscrow{escrow}
				gs.Vaults[0].Metrics.TotalStakedAmount = 100
				return gs
			},
		},
		{
			name: "unstake releasing before creation",
			genesis: func() *types.GenesisState {
				gs := genesisWithVault()
				gs.Unstakes = []types.Unstake{{Id: 1, Vault: 1, CreatedAt: 100, ReleaseAt: 50}}
				return gs
			},
			wantErr: true,
		},
		{
			name: "duplicate config index",
			genesis: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				cfg := types.Config{
					Index:               3,
					SecondsToFullUnlock: types.MinSecondsToFullUnlock,
					UnstakeLockDuration: types.MinUnstakeLockDuration,
					TopListLength:       types.MinListLength,
				}
				gs.Configs = []types.Config{cfg, cfg}
				return gs
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genesis().Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
