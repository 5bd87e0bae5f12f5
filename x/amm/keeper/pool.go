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

// CreatePool creates a constant product pool funded by the creator.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (*types.Pool, error) {
	if tokenA == tokenB {
		return nil, types.ErrSameToken.Wrap("pool tokens must differ")
	}
	if err := sdk.ValidateDenom(tokenA); err != nil {
		return nil, types.ErrInvalidTokenDenom.Wrapf("token_a: %s", tokenA)
	}
	if err := sdk.ValidateDenom(tokenB); err != nil {
		return nil, types.ErrInvalidTokenDenom.Wrapf("token_b: %s", tokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if amountA.LT(params.MinLiquidity) || amountB.LT(params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrap("initial deposit below minimum liquidity")
	}

	// Move the initial reserves into the module account
	deposit := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, creator, k.GetModuleAddress(), deposit); err != nil {
		return nil, fmt.Errorf("CreatePool: fund reserves: %w", err)
	}

	poolID, err := k.nextPoolID(ctx)
	if err != nil {
		return nil, err
	}

	// Geometric mean would be exact; the product-based floor is what the
	// rest of the chain's pools use.
	initialShares := amountA.Mul(amountB)

	pool := &types.Pool{
		Id:                poolID,
		TokenA:            tokenA,
		TokenB:            tokenB,
		ReserveA:          amountA,
		ReserveB:          amountB,
		TotalShares:       initialShares,
		TotalLockedShares: math.ZeroInt(),
		CurveType:         types.CurveConstantProduct,
		Creator:           creator.String(),
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}
	if err := k.setLiquidity(ctx, poolID, creator, initialShares); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
		),
	)

	return pool, nil
}

// GetPool retrieves a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(pool)
	if err != nil {
		return err
	}
	store.Set(types.GetPoolKey(pool.Id), bz)
	return nil
}

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return err
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

func (k Keeper) nextPoolID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(types.PoolCountKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	store.Set(types.PoolCountKey, uint64Bytes(next+1))
	return next, nil
}

func (k Keeper) setLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.GetLiquidityKey(poolID, provider), bz)
	return nil
}

// GetLiquidity returns a provider's unlocked share balance in a pool.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	shares := math.ZeroInt()
	if bz := store.Get(types.GetLiquidityKey(poolID, provider)); bz != nil {
		if err := shares.Unmarshal(bz); err != nil {
			return math.ZeroInt(), err
		}
	}
	return shares, nil
}

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}
