package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// ClaimFee pays the owner's pending fees up to the per-side caps.
func (k Keeper) ClaimFee(ctx context.Context, owner sdk.AccAddress, vaultID uint64, maxFeeA, maxFeeB uint64) (paidA, paidB uint64, err error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return 0, 0, err
	}

	now := blockNow(ctx)
	if _, err := k.updateLiquidity(ctx, vault, now); err != nil {
		return 0, 0, err
	}

	escrow, err := k.GetStakeEscrow(ctx, vaultID, owner)
	if err != nil {
		return 0, 0, err
	}
	if err := escrow.Sync(vault.TopStakerInfo.CumulativeFeeAPerLiquidity, vault.TopStakerInfo.CumulativeFeeBPerLiquidity); err != nil {
		return 0, 0, err
	}

	paidA = min(escrow.FeeAPending, maxFeeA)
	paidB = min(escrow.FeeBPending, maxFeeB)

	payout := sdk.NewCoins()
	if paidA > 0 {
		payout = payout.Add(sdk.NewCoin(vault.TokenAMint, math.NewIntFromUint64(paidA)))
	}
	if paidB > 0 {
		payout = payout.Add(sdk.NewCoin(vault.TokenBMint, math.NewIntFromUint64(paidB)))
	}
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), owner, payout); err != nil {
			return 0, 0, fmt.Errorf("ClaimFee: payout: %w", err)
		}
	}

	escrow.FeeAPending -= paidA
	escrow.FeeBPending -= paidB
	escrow.FeeAClaimedAmount, err = types.AddUint128(escrow.FeeAClaimedAmount, math.NewIntFromUint64(paidA))
	if err != nil {
		return 0, 0, err
	}
	escrow.FeeBClaimedAmount, err = types.AddUint128(escrow.FeeBClaimedAmount, math.NewIntFromUint64(paidB))
	if err != nil {
		return 0, 0, err
	}

	if err := k.SetStakeEscrow(ctx, escrow); err != nil {
		return 0, 0, err
	}
	if err := k.SetVault(ctx, vault); err != nil {
		return 0, 0, err
	}

	recordClaim(vaultID, paidA, paidB)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimFeeSucceed,
			sdk.NewAttribute(types.AttributeKeyEscrow, escrow.Owner),
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyFeeAAmount, fmt.Sprintf("%d", paidA)),
			sdk.NewAttribute(types.AttributeKeyFeeBAmount, fmt.Sprintf("%d", paidB)),
			sdk.NewAttribute(types.AttributeKeyTotalFeeA, escrow.FeeAClaimedAmount.String()),
			sdk.NewAttribute(types.AttributeKeyTotalFeeB, escrow.FeeBClaimedAmount.String()),
		),
	)

	return paidA, paidB, nil
}

// ClaimFeeCrank runs the pull and drip steps with no per-user mutation,
// keeping the drip moving when no staker acts. Isolation from other module
// messages in the same transaction is enforced by the ante decorator.
func (k Keeper) ClaimFeeCrank(ctx context.Context, vaultID uint64) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}

	now := blockNow(ctx)
	claimedA, claimedB, err := k.maybePullPoolFees(ctx, vault, now)
	if err != nil {
		return err
	}

	res, err := vault.Drip(now)
	if err != nil {
		return err
	}
	if res.ReleasedA > 0 || res.ReleasedB > 0 {
		recordFeeDrip(vaultID, res.ReleasedA, res.ReleasedB)
	}

	if err := k.SetVault(ctx, vault); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeEmission,
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", vault.Pool)),
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyTokenAClaimed, fmt.Sprintf("%d", claimedA)),
			sdk.NewAttribute(types.AttributeKeyTokenBClaimed, fmt.Sprintf("%d", claimedB)),
			sdk.NewAttribute(types.AttributeKeyTokenAReleased, fmt.Sprintf("%d", res.ReleasedA)),
			sdk.NewAttribute(types.AttributeKeyTokenBReleased, fmt.Sprintf("%d", res.ReleasedB)),
			sdk.NewAttribute(types.AttributeKeyCumulativeFeeA, vault.TopStakerInfo.CumulativeFeeAPerLiquidity.String()),
			sdk.NewAttribute(types.AttributeKeyCumulativeFeeB, vault.TopStakerInfo.CumulativeFeeBPerLiquidity.String()),
			sdk.NewAttribute(types.AttributeKeyEffectiveStakeAmount, fmt.Sprintf("%d", vault.TopStakerInfo.EffectiveStakeAmount)),
		),
	)

	return nil
}
