package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/amm/types"
)

// LockLiquidity permanently locks a provider's shares into a new lock
// escrow. Locked shares keep earning swap fees but can never be withdrawn.
func (k Keeper) LockLiquidity(ctx context.Context, owner sdk.AccAddress, poolID uint64, shares math.Int) (*types.LockEscrow, error) {
	if !shares.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("locked shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	position, err := k.GetLiquidity(ctx, poolID, owner)
	if err != nil {
		return nil, err
	}
	if position.LT(shares) {
		return nil, types.ErrInsufficientShares.Wrapf("position %s < lock request %s", position, shares)
	}

	if err := k.setLiquidity(ctx, poolID, owner, position.Sub(shares)); err != nil {
		return nil, err
	}

	escrowID, err := k.nextLockEscrowID(ctx)
	if err != nil {
		return nil, err
	}

	escrow := &types.LockEscrow{
		Id:               escrowID,
		PoolId:           poolID,
		Owner:            owner.String(),
		LockedShares:     shares,
		ClaimableFeeA:    math.ZeroInt(),
		ClaimableFeeB:    math.ZeroInt(),
		TotalClaimedFeeA: math.ZeroInt(),
		TotalClaimedFeeB: math.ZeroInt(),
	}
	if err := k.SetLockEscrow(ctx, escrow); err != nil {
		return nil, err
	}

	store := k.getStore(ctx)
	store.Set(types.GetLockEscrowByPoolKey(poolID, escrowID), uint64Bytes(escrowID))

	pool.TotalLockedShares = pool.TotalLockedShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityLocked,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyLockEscrow, fmt.Sprintf("%d", escrowID)),
			sdk.NewAttribute(types.AttributeKeyProvider, owner.String()),
			sdk.NewAttribute(types.AttributeKeyLockedShares, shares.String()),
		),
	)

	return escrow, nil
}

// GetLockEscrow retrieves a lock escrow by ID
func (k Keeper) GetLockEscrow(ctx context.Context, lockEscrowID uint64) (*types.LockEscrow, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetLockEscrowKey(lockEscrowID))
	if bz == nil {
		return nil, types.ErrLockEscrowNotFound.Wrapf("lock escrow %d not found", lockEscrowID)
	}

	var escrow types.LockEscrow
	if err := json.Unmarshal(bz, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// SetLockEscrow saves a lock escrow to the store
func (k Keeper) SetLockEscrow(ctx context.Context, escrow *types.LockEscrow) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(escrow)
	if err != nil {
		return err
	}
	store.Set(types.GetLockEscrowKey(escrow.Id), bz)
	return nil
}

// GetLockEscrowsByPool returns all lock escrows of a pool, id order.
func (k Keeper) GetLockEscrowsByPool(ctx context.Context, poolID uint64) ([]types.LockEscrow, error) {
	store := k.getStore(ctx)
	prefix := append(types.LockEscrowByPoolKeyPrefix, uint64Bytes(poolID)...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var escrows []types.LockEscrow
	for ; iterator.Valid(); iterator.Next() {
		id := binary.BigEndian.Uint64(iterator.Value())
		escrow, err := k.GetLockEscrow(ctx, id)
		if err != nil {
			return nil, err
		}
		escrows = append(escrows, *escrow)
	}
	return escrows, nil
}

// ClaimLockedFees moves a lock escrow's claimable fee buckets to the
// recipient and returns the transferred amounts. A claim with nothing
// accrued transfers nothing and returns zeroes.
func (k Keeper) ClaimLockedFees(ctx context.Context, lockEscrowID uint64, to sdk.AccAddress) (math.Int, math.Int, error) {
	escrow, err := k.GetLockEscrow(ctx, lockEscrowID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	pool, err := k.GetPool(ctx, escrow.PoolId)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	feeA := escrow.ClaimableFeeA
	feeB := escrow.ClaimableFeeB
	if feeA.IsZero() && feeB.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	payout := sdk.NewCoins()
	if feeA.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenA, feeA))
	}
	if feeB.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenB, feeB))
	}
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), to, payout); err != nil {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("ClaimLockedFees: payout: %w", err)
	}

	escrow.ClaimableFeeA = math.ZeroInt()
	escrow.ClaimableFeeB = math.ZeroInt()
	escrow.TotalClaimedFeeA = escrow.TotalClaimedFeeA.Add(feeA)
	escrow.TotalClaimedFeeB = escrow.TotalClaimedFeeB.Add(feeB)
	if err := k.SetLockEscrow(ctx, escrow); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLockedFeesClaimed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", escrow.PoolId)),
			sdk.NewAttribute(types.AttributeKeyLockEscrow, fmt.Sprintf("%d", lockEscrowID)),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyFeeA, feeA.String()),
			sdk.NewAttribute(types.AttributeKeyFeeB, feeB.String()),
		),
	)

	return feeA, feeB, nil
}

func (k Keeper) nextLockEscrowID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(types.LockEscrowCountKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	store.Set(types.LockEscrowCountKey, uint64Bytes(next+1))
	return next, nil
}
