package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// InitializeVault creates the fee vault for a pool from a config template.
// The pool must be constant product, carry exactly one quote-set token, and
// the stake mint must be the non-quote side. The lock escrow must belong to
// the pool.
func (k Keeper) InitializeVault(ctx context.Context, msg *types.MsgInitializeVault) (*types.FeeVault, error) {
	now := blockNow(ctx)

	pool, err := k.ammKeeper.GetPool(ctx, msg.PoolId)
	if err != nil {
		return nil, err
	}
	if !pool.IsConstantProduct() {
		return nil, types.ErrOnlyConstantProductPool.Wrapf("pool %d", msg.PoolId)
	}

	lockEscrow, err := k.ammKeeper.GetLockEscrow(ctx, msg.LockEscrow)
	if err != nil {
		return nil, err
	}
	if lockEscrow.PoolId != msg.PoolId {
		return nil, types.ErrInvalidLockEscrowRelatedAccounts.Wrapf("lock escrow %d belongs to pool %d", msg.LockEscrow, lockEscrow.PoolId)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	// The stake mint is one pool side; the other side must be a quote mint.
	var quoteMint string
	switch msg.StakeMint {
	case pool.TokenA:
		quoteMint = pool.TokenB
	case pool.TokenB:
		quoteMint = pool.TokenA
	default:
		return nil, types.ErrMustHaveQuoteTokenOrInvalidStakeMint.Wrapf("stake mint %s not in pool %d", msg.StakeMint, msg.PoolId)
	}
	if !params.IsQuoteMint(quoteMint) {
		return nil, types.ErrMustHaveQuoteTokenOrInvalidStakeMint.Wrapf("pool %d has no quote token", msg.PoolId)
	}
	if params.IsQuoteMint(msg.StakeMint) {
		return nil, types.ErrMustHaveQuoteTokenOrInvalidStakeMint.Wrapf("stake mint %s must be the non-quote side", msg.StakeMint)
	}

	config, err := k.GetConfig(ctx, msg.ConfigIndex)
	if err != nil {
		return nil, err
	}

	startClaimFee := now + int64(config.JoinWindowDuration)
	if msg.CustomStartClaimFeeTimestamp != 0 {
		custom := msg.CustomStartClaimFeeTimestamp
		if custom < now || custom > now+int64(types.MaxJoinWindowDuration) {
			return nil, types.ErrInvalidCustomStartClaimFeeTimestamp.Wrapf("timestamp %d outside [%d, %d]", custom, now, now+int64(types.MaxJoinWindowDuration))
		}
		startClaimFee = custom
	}

	store := k.getStore(ctx)
	if store.Has(types.GetVaultByPoolKey(msg.PoolId)) {
		return nil, types.ErrVaultAlreadyExists.Wrapf("pool %d", msg.PoolId)
	}

	vaultID, err := k.nextVaultID(ctx)
	if err != nil {
		return nil, err
	}

	vault := &types.FeeVault{
		Id:         vaultID,
		Pool:       msg.PoolId,
		LockEscrow: msg.LockEscrow,
		StakeMint:  msg.StakeMint,
		QuoteMint:  quoteMint,
		TokenAMint: pool.TokenA,
		TokenBMint: pool.TokenB,
		Creator:    msg.Creator,
		CreatedAt:  now,
		Configuration: types.Configuration{
			SecondsToFullUnlock:    config.SecondsToFullUnlock,
			UnstakeLockDuration:    config.UnstakeLockDuration,
			StartClaimFeeTimestamp: startClaimFee,
		},
		Metrics:       types.NewMetrics(),
		TopStakerInfo: types.NewTopStakerInfo(uint64(config.TopListLength)),
	}
	vault.TopStakerInfo.LastUpdatedAt = startClaimFee

	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}
	store.Set(types.GetVaultByPoolKey(msg.PoolId), uint64Bytes(vaultID))

	if err := k.initFullBalanceList(ctx, vaultID); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVaultCreated,
			sdk.NewAttribute(types.AttributeKeyVault, fmt.Sprintf("%d", vaultID)),
			sdk.NewAttribute(types.AttributeKeyPool, fmt.Sprintf("%d", msg.PoolId)),
			sdk.NewAttribute(types.AttributeKeyTokenA, pool.TokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, pool.TokenB),
			sdk.NewAttribute(types.AttributeKeyStakeMint, msg.StakeMint),
			sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyTopListLength, fmt.Sprintf("%d", config.TopListLength)),
			sdk.NewAttribute(types.AttributeKeySecondsToFullUnlock, fmt.Sprintf("%d", config.SecondsToFullUnlock)),
			sdk.NewAttribute(types.AttributeKeyUnstakeLockDuration, fmt.Sprintf("%d", config.UnstakeLockDuration)),
		),
	)

	return vault, nil
}

// GetVault retrieves a vault by ID
func (k Keeper) GetVault(ctx context.Context, vaultID uint64) (*types.FeeVault, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetVaultKey(vaultID))
	if bz == nil {
		return nil, types.ErrVaultNotFound.Wrapf("vault %d not found", vaultID)
	}

	var vault types.FeeVault
	if err := json.Unmarshal(bz, &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}

// SetVault saves a vault to the store
func (k Keeper) SetVault(ctx context.Context, vault *types.FeeVault) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(vault)
	if err != nil {
		return err
	}
	store.Set(types.GetVaultKey(vault.Id), bz)
	return nil
}

// GetVaultByPool returns the vault backed by the given pool.
func (k Keeper) GetVaultByPool(ctx context.Context, poolID uint64) (*types.FeeVault, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetVaultByPoolKey(poolID))
	if bz == nil {
		return nil, types.ErrVaultNotFound.Wrapf("no vault for pool %d", poolID)
	}
	return k.GetVault(ctx, binary.BigEndian.Uint64(bz))
}

// IterateVaults iterates over all vaults
func (k Keeper) IterateVaults(ctx context.Context, cb func(vault types.FeeVault) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.VaultKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var vault types.FeeVault
		if err := json.Unmarshal(iterator.Value(), &vault); err != nil {
			return err
		}
		if cb(vault) {
			break
		}
	}
	return nil
}

// GetAllVaults returns all vaults
func (k Keeper) GetAllVaults(ctx context.Context) ([]types.FeeVault, error) {
	var vaults []types.FeeVault
	err := k.IterateVaults(ctx, func(vault types.FeeVault) bool {
		vaults = append(vaults, vault)
		return false
	})
	return vaults, err
}

func (k Keeper) nextVaultID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(types.VaultCountKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	store.Set(types.VaultCountKey, uint64Bytes(next+1))
	return next, nil
}

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}
