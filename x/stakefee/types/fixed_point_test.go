package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

func TestMulShr(t *testing.T) {
	one := types.OneQ64()

	tests := []struct {
		name     string
		a        math.Int
		b        math.Int
		rounding types.Rounding
		want     math.Int
		wantErr  bool
	}{
		{
			name:     "identity times one",
			a:        math.NewInt(12345),
			b:        one,
			rounding: types.RoundDown,
			want:     math.NewInt(12345),
		},
		{
			name:     "half rounds down",
			a:        math.NewInt(3),
			b:        one.QuoRaw(2),
			rounding: types.RoundDown,
			want:     math.NewInt(1),
		},
		{
			name:     "half rounds up",
			a:        math.NewInt(3),
			b:        one.QuoRaw(2),
			rounding: types.RoundUp,
			want:     math.NewInt(2),
		},
		{
			name:     "zero operand",
			a:        math.ZeroInt(),
			b:        one,
			rounding: types.RoundDown,
			want:     math.ZeroInt(),
		},
		{
			name:     "result exceeds u128",
			a:        types.MaxUint128(),
			b:        types.MaxUint128(),
			rounding: types.RoundDown,
			wantErr:  true,
		},
		{
			name:     "negative operand rejected",
			a:        math.NewInt(-1),
			b:        one,
			rounding: types.RoundDown,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.MulShr(tt.a, tt.b, tt.rounding)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, types.ErrMathOverflow)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestMulShrUint64CastFailure(t *testing.T) {
	// (2^65 * 2^64) >> 64 = 2^65, a valid u128 but not a u64
	big := types.OneQ64().MulRaw(2)
	_, err := types.MulShrUint64(big, types.OneQ64(), types.RoundDown)
	require.ErrorIs(t, err, types.ErrTypeCastFailed)
}

func TestSafeShlDiv(t *testing.T) {
	// (100 << 64) / 200 is half of one Q64.64 unit
	got, err := types.SafeShlDiv(100, 200, types.RoundDown)
	require.NoError(t, err)
	require.True(t, types.OneQ64().QuoRaw(2).Equal(got))

	// 1/3 rounds down; rounding up adds one ulp
	down, err := types.SafeShlDiv(1, 3, types.RoundDown)
	require.NoError(t, err)
	up, err := types.SafeShlDiv(1, 3, types.RoundUp)
	require.NoError(t, err)
	require.True(t, up.Sub(down).Equal(math.OneInt()))

	_, err = types.SafeShlDiv(1, 0, types.RoundDown)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}

func TestSafeMulDivCastUint64(t *testing.T) {
	got, err := types.SafeMulDivCastUint64(math.NewInt(1000), math.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, uint64(250), got)

	_, err = types.SafeMulDivCastUint64(math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrMathOverflow)

	_, err = types.SafeMulDivCastUint64(types.MaxUint128(), math.OneInt())
	require.ErrorIs(t, err, types.ErrTypeCastFailed)
}

func TestSafeUint64Helpers(t *testing.T) {
	const max = ^uint64(0)

	sum, err := types.SafeAddUint64(max-1, 1)
	require.NoError(t, err)
	require.Equal(t, max, sum)

	_, err = types.SafeAddUint64(max, 1)
	require.ErrorIs(t, err, types.ErrMathOverflow)

	diff, err := types.SafeSubUint64(5, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(0), diff)

	_, err = types.SafeSubUint64(4, 5)
	require.ErrorIs(t, err, types.ErrMathOverflow)

	prod, err := types.SafeMulUint64(1<<32, 1<<31)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63, prod)

	_, err = types.SafeMulUint64(1<<32, 1<<32)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}

func TestAddUint128(t *testing.T) {
	sum, err := types.AddUint128(types.MaxUint128().SubRaw(1), math.OneInt())
	require.NoError(t, err)
	require.True(t, types.MaxUint128().Equal(sum))

	_, err = types.AddUint128(types.MaxUint128(), math.OneInt())
	require.ErrorIs(t, err, types.ErrMathOverflow)
}
