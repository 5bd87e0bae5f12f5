package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func slot(stake uint64, index int64) types.StakerMetadata {
	return types.StakerMetadata{StakeAmount: stake, FullBalanceIndex: index}
}

func TestSmallestOccupiedSlot(t *testing.T) {
	tests := []struct {
		name  string
		slots []types.StakerMetadata
		want  int
	}{
		{
			name:  "empty list",
			slots: []types.StakerMetadata{types.EmptyStakerMetadata(), types.EmptyStakerMetadata()},
			want:  -1,
		},
		{
			name:  "single occupied",
			slots: []types.StakerMetadata{types.EmptyStakerMetadata(), slot(10, 3)},
			want:  1,
		},
		{
			name:  "minimum stake wins",
			slots: []types.StakerMetadata{slot(30, 0), slot(10, 1), slot(20, 2)},
			want:  1,
		},
		{
			name:  "tie broken by lower full balance index",
			slots: []types.StakerMetadata{slot(10, 5), slot(10, 2), slot(10, 7)},
			want:  1,
		},
		{
			name:  "empty slots skipped",
			slots: []types.StakerMetadata{types.EmptyStakerMetadata(), slot(5, 9), types.EmptyStakerMetadata(), slot(4, 1)},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, types.SmallestOccupiedSlot(tt.slots))
		})
	}
}

func TestFindSlot(t *testing.T) {
	slots := []types.StakerMetadata{slot(10, 4), types.EmptyStakerMetadata(), slot(20, 9)}

	require.Equal(t, 0, types.FindSlot(slots, 4))
	require.Equal(t, 2, types.FindSlot(slots, 9))
	require.Equal(t, -1, types.FindSlot(slots, 5))

	// The empty sentinel index never matches
	require.Equal(t, -1, types.FindSlot(slots, types.EmptyFullBalanceIndex))
}

func TestFindEmptySlot(t *testing.T) {
	require.Equal(t, -1, types.FindEmptySlot([]types.StakerMetadata{slot(1, 0)}))
	require.Equal(t, 1, types.FindEmptySlot([]types.StakerMetadata{slot(1, 0), types.EmptyStakerMetadata()}))
}

func TestEffectiveStakeAmount(t *testing.T) {
	sum, err := types.EffectiveStakeAmount([]types.StakerMetadata{
		slot(10, 0), types.EmptyStakerMetadata(), slot(32, 1),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(42), sum)

	const max = ^uint64(0)
	_, err = types.EffectiveStakeAmount([]types.StakerMetadata{slot(max, 0), slot(1, 1)})
	require.ErrorIs(t, err, types.ErrMathOverflow)
}
