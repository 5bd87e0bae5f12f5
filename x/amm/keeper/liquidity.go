package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/amm/types"
)

// AddLiquidity deposits both tokens proportionally and mints shares.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Shares minted pro-rata to the smaller side of the deposit
	sharesFromA := amountA.Mul(pool.TotalShares).Quo(pool.ReserveA)
	sharesFromB := amountB.Mul(pool.TotalShares).Quo(pool.ReserveB)
	shares := sharesFromA
	if sharesFromB.LT(shares) {
		shares = sharesFromB
	}
	if shares.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("deposit too small for one share")
	}

	deposit := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, provider, k.GetModuleAddress(), deposit); err != nil {
		return math.ZeroInt(), fmt.Errorf("AddLiquidity: fund reserves: %w", err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	existing, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.setLiquidity(ctx, poolID, provider, existing.Add(shares)); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}
