package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/amm/types"
)

// Swap executes a constant product swap. The swap fee stays in the pool's
// input-side reserve; the slice owed to permanently locked shares is pushed
// onto the pool's lock escrows so it can be claimed later.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int) (*types.SwapResult, error) {
	if !amountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.IsConstantProduct() {
		return nil, types.ErrUnsupportedCurve.Wrapf("pool %d curve %d", poolID, pool.CurveType)
	}

	var reserveIn, reserveOut math.Int
	var tokenOut string
	switch tokenIn {
	case pool.TokenA:
		reserveIn, reserveOut, tokenOut = pool.ReserveA, pool.ReserveB, pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut, tokenOut = pool.ReserveB, pool.ReserveA, pool.TokenA
	default:
		return nil, types.ErrInvalidTokenDenom.Wrapf("token %s not in pool %d", tokenIn, poolID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	fee := params.SwapFee.MulInt(amountIn).TruncateInt()
	amountInAfterFee := amountIn.Sub(fee)
	if !amountInAfterFee.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount in consumed by fee")
	}

	// x * y = k
	amountOut := reserveOut.Mul(amountInAfterFee).Quo(reserveIn.Add(amountInAfterFee))
	if amountOut.IsZero() {
		return nil, types.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
	}
	if amountOut.LT(minAmountOut) {
		return nil, types.ErrMinAmountOut.Wrapf("output %s < minimum %s", amountOut, minAmountOut)
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, trader, moduleAddr, sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return nil, fmt.Errorf("Swap: collect input: %w", err)
	}
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, trader, sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return nil, fmt.Errorf("Swap: pay output: %w", err)
	}

	// The locked-share slice of the fee leaves the reserves and becomes
	// claimable by the pool's lock escrows.
	lockedFee := math.ZeroInt()
	if pool.TotalLockedShares.IsPositive() && fee.IsPositive() {
		lockedFee = fee.Mul(pool.TotalLockedShares).Quo(pool.TotalShares)
	}

	if tokenIn == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Add(amountIn).Sub(lockedFee)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(amountIn).Sub(lockedFee)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	if lockedFee.IsPositive() {
		if err := k.accrueLockedFees(ctx, pool, tokenIn, lockedFee); err != nil {
			return nil, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, fee.String()),
		),
	)

	return &types.SwapResult{AmountIn: amountIn, AmountOut: amountOut, Fee: fee}, nil
}

// accrueLockedFees distributes a fee slice across the pool's lock escrows
// pro-rata to their locked shares. Remainders stay with the reserves.
func (k Keeper) accrueLockedFees(ctx context.Context, pool *types.Pool, denom string, amount math.Int) error {
	escrows, err := k.GetLockEscrowsByPool(ctx, pool.Id)
	if err != nil {
		return err
	}
	if len(escrows) == 0 {
		return nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	for i := range escrows {
		escrow := &escrows[i]
		share := amount.Mul(escrow.LockedShares).Quo(pool.TotalLockedShares)
		if share.IsZero() {
			continue
		}
		if denom == pool.TokenA {
			escrow.ClaimableFeeA = escrow.ClaimableFeeA.Add(share)
		} else {
			escrow.ClaimableFeeB = escrow.ClaimableFeeB.Add(share)
		}
		if err := k.SetLockEscrow(ctx, escrow); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeFeeAccrued,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
				sdk.NewAttribute(types.AttributeKeyLockEscrow, fmt.Sprintf("%d", escrow.Id)),
				sdk.NewAttribute(types.AttributeKeyFeeAmount, share.String()),
			),
		)
	}
	return nil
}
