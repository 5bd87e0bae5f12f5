package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func validConfig() types.Config {
	return types.Config{
		Index:               0,
		SecondsToFullUnlock: types.MinSecondsToFullUnlock,
		UnstakeLockDuration: types.MinUnstakeLockDuration,
		JoinWindowDuration:  0,
		TopListLength:       types.MinListLength,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Config)
		wantErr error
	}{
		{
			name:   "minimum bounds valid",
			mutate: func(c *types.Config) {},
		},
		{
			name: "maximum bounds valid",
			mutate: func(c *types.Config) {
				c.SecondsToFullUnlock = types.MaxSecondsToFullUnlock
				c.UnstakeLockDuration = types.MaxUnstakeLockDuration
				c.JoinWindowDuration = types.MaxJoinWindowDuration
				c.TopListLength = types.MaxListLength
			},
		},
		{
			name:    "top list too short",
			mutate:  func(c *types.Config) { c.TopListLength = types.MinListLength - 1 },
			wantErr: types.ErrInvalidTopListLength,
		},
		{
			name:    "top list too long",
			mutate:  func(c *types.Config) { c.TopListLength = types.MaxListLength + 1 },
			wantErr: types.ErrInvalidTopListLength,
		},
		{
			name:    "unlock window too short",
			mutate:  func(c *types.Config) { c.SecondsToFullUnlock = types.MinSecondsToFullUnlock - 1 },
			wantErr: types.ErrInvalidSecondsToFullUnlock,
		},
		{
			name:    "unlock window too long",
			mutate:  func(c *types.Config) { c.SecondsToFullUnlock = types.MaxSecondsToFullUnlock + 1 },
			wantErr: types.ErrInvalidSecondsToFullUnlock,
		},
		{
			name:    "unstake lock too short",
			mutate:  func(c *types.Config) { c.UnstakeLockDuration = types.MinUnstakeLockDuration - 1 },
			wantErr: types.ErrInvalidUnstakeLockDuration,
		},
		{
			name:    "unstake lock too long",
			mutate:  func(c *types.Config) { c.UnstakeLockDuration = types.MaxUnstakeLockDuration + 1 },
			wantErr: types.ErrInvalidUnstakeLockDuration,
		},
		{
			name:    "join window too long",
			mutate:  func(c *types.Config) { c.JoinWindowDuration = types.MaxJoinWindowDuration + 1 },
			wantErr: types.ErrInvalidJoinWindowDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
