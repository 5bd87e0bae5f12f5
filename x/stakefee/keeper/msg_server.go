package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the stakefee MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializeConfig handles creation of a vault construction template
func (ms msgServer) InitializeConfig(goCtx context.Context, msg *types.MsgInitializeConfig) (*types.MsgInitializeConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializeConfig: validate: %w", err)
	}

	config := types.Config{
		Index:               msg.Index,
		SecondsToFullUnlock: msg.SecondsToFullUnlock,
		UnstakeLockDuration: msg.UnstakeLockDuration,
		JoinWindowDuration:  msg.JoinWindowDuration,
		TopListLength:       msg.TopListLength,
	}
	if err := ms.Keeper.InitializeConfig(goCtx, msg.Admin, config); err != nil {
		return nil, fmt.Errorf("InitializeConfig: %w", err)
	}

	return &types.MsgInitializeConfigResponse{}, nil
}

// CloseConfig handles removal of a config template
func (ms msgServer) CloseConfig(goCtx context.Context, msg *types.MsgCloseConfig) (*types.MsgCloseConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CloseConfig: validate: %w", err)
	}

	if err := ms.Keeper.CloseConfig(goCtx, msg.Admin, msg.Index); err != nil {
		return nil, fmt.Errorf("CloseConfig: %w", err)
	}

	return &types.MsgCloseConfigResponse{}, nil
}

// InitializeVault handles creation of a pool's fee vault
func (ms msgServer) InitializeVault(goCtx context.Context, msg *types.MsgInitializeVault) (*types.MsgInitializeVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializeVault: validate: %w", err)
	}

	vault, err := ms.Keeper.InitializeVault(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("InitializeVault: %w", err)
	}

	return &types.MsgInitializeVaultResponse{VaultId: vault.Id}, nil
}

// InitializeStakeEscrow handles creation of the caller's escrow in a vault
func (ms msgServer) InitializeStakeEscrow(goCtx context.Context, msg *types.MsgInitializeStakeEscrow) (*types.MsgInitializeStakeEscrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializeStakeEscrow: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("InitializeStakeEscrow: invalid owner address: %w", err)
	}

	escrow, err := ms.Keeper.InitializeStakeEscrow(goCtx, msg.VaultId, owner)
	if err != nil {
		return nil, fmt.Errorf("InitializeStakeEscrow: %w", err)
	}

	return &types.MsgInitializeStakeEscrowResponse{FullBalanceIndex: escrow.FullBalanceIndex}, nil
}

// Stake handles staking into a vault
func (ms msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Stake: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("Stake: invalid owner address: %w", err)
	}

	escrow, err := ms.Keeper.Stake(goCtx, owner, msg.VaultId, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Stake: %w", err)
	}

	return &types.MsgStakeResponse{
		NewStakeAmount: escrow.StakeAmount,
		InTopList:      escrow.InTopList,
	}, nil
}

// RequestUnstake handles starting an unstake lock
func (ms msgServer) RequestUnstake(goCtx context.Context, msg *types.MsgRequestUnstake) (*types.MsgRequestUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RequestUnstake: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("RequestUnstake: invalid owner address: %w", err)
	}

	unstake, err := ms.Keeper.RequestUnstake(goCtx, owner, msg.VaultId, msg.UnstakeAmount)
	if err != nil {
		return nil, fmt.Errorf("RequestUnstake: %w", err)
	}

	return &types.MsgRequestUnstakeResponse{
		UnstakeId: unstake.Id,
		ReleaseAt: unstake.ReleaseAt,
	}, nil
}

// CancelUnstake handles returning a pending unstake to the active stake
func (ms msgServer) CancelUnstake(goCtx context.Context, msg *types.MsgCancelUnstake) (*types.MsgCancelUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelUnstake: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("CancelUnstake: invalid owner address: %w", err)
	}

	if _, err := ms.Keeper.CancelUnstake(goCtx, owner, msg.UnstakeId); err != nil {
		return nil, fmt.Errorf("CancelUnstake: %w", err)
	}

	return &types.MsgCancelUnstakeResponse{}, nil
}

// Withdraw handles settling a matured unstake
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid owner address: %w", err)
	}

	unstake, err := ms.Keeper.Withdraw(goCtx, owner, msg.UnstakeId)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{Amount: unstake.Amount}, nil
}

// ClaimFee handles paying out pending fees
func (ms msgServer) ClaimFee(goCtx context.Context, msg *types.MsgClaimFee) (*types.MsgClaimFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimFee: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("ClaimFee: invalid owner address: %w", err)
	}

	paidA, paidB, err := ms.Keeper.ClaimFee(goCtx, owner, msg.VaultId, msg.MaxFeeA, msg.MaxFeeB)
	if err != nil {
		return nil, fmt.Errorf("ClaimFee: %w", err)
	}

	return &types.MsgClaimFeeResponse{FeeAAmount: paidA, FeeBAmount: paidB}, nil
}

// ClaimFeeCrank handles the permissionless pull+drip tick
func (ms msgServer) ClaimFeeCrank(goCtx context.Context, msg *types.MsgClaimFeeCrank) (*types.MsgClaimFeeCrankResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimFeeCrank: validate: %w", err)
	}

	if err := ms.Keeper.ClaimFeeCrank(goCtx, msg.VaultId); err != nil {
		return nil, fmt.Errorf("ClaimFeeCrank: %w", err)
	}

	return &types.MsgClaimFeeCrankResponse{}, nil
}

// UpdateUnstakeLockDuration handles the admin lock duration update
func (ms msgServer) UpdateUnstakeLockDuration(goCtx context.Context, msg *types.MsgUpdateUnstakeLockDuration) (*types.MsgUpdateUnstakeLockDurationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateUnstakeLockDuration: validate: %w", err)
	}

	if err := ms.Keeper.UpdateUnstakeLockDuration(goCtx, msg.Admin, msg.VaultId, msg.UnstakeLockDuration); err != nil {
		return nil, fmt.Errorf("UpdateUnstakeLockDuration: %w", err)
	}

	return &types.MsgUpdateUnstakeLockDurationResponse{}, nil
}

// UpdateSecondsToFullUnlock handles the admin drip window update
func (ms msgServer) UpdateSecondsToFullUnlock(goCtx context.Context, msg *types.MsgUpdateSecondsToFullUnlock) (*types.MsgUpdateSecondsToFullUnlockResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateSecondsToFullUnlock: validate: %w", err)
	}

	if err := ms.Keeper.UpdateSecondsToFullUnlock(goCtx, msg.Admin, msg.VaultId, msg.SecondsToFullUnlock); err != nil {
		return nil, fmt.Errorf("UpdateSecondsToFullUnlock: %w", err)
	}

	return &types.MsgUpdateSecondsToFullUnlockResponse{}, nil
}
