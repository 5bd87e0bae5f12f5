package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the stakefee QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Config returns one config template
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	config, err := qs.GetConfig(goCtx, req.Index)
	if err != nil {
		return nil, err
	}
	return &types.QueryConfigResponse{Config: *config}, nil
}

// Vault returns one vault
func (qs queryServer) Vault(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	vault, err := qs.GetVault(goCtx, req.VaultId)
	if err != nil {
		return nil, err
	}
	return &types.QueryVaultResponse{Vault: *vault}, nil
}

// Vaults returns all vaults
func (qs queryServer) Vaults(goCtx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	vaults, err := qs.GetAllVaults(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryVaultsResponse{Vaults: vaults}, nil
}

// StakeEscrow returns an owner's escrow in a vault
func (qs queryServer) StakeEscrow(goCtx context.Context, req *types.QueryStakeEscrowRequest) (*types.QueryStakeEscrowResponse, error) {
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, types.ErrInvalidEscrowOwner.Wrapf("invalid owner address: %s", req.Owner)
	}

	escrow, err := qs.GetStakeEscrow(goCtx, req.VaultId, owner)
	if err != nil {
		return nil, err
	}
	return &types.QueryStakeEscrowResponse{StakeEscrow: *escrow}, nil
}

// TopStakers returns a vault's occupied top list slots
func (qs queryServer) TopStakers(goCtx context.Context, req *types.QueryTopStakersRequest) (*types.QueryTopStakersResponse, error) {
	stakers, err := qs.GetTopStakers(goCtx, req.VaultId)
	if err != nil {
		return nil, err
	}
	return &types.QueryTopStakersResponse{Stakers: stakers}, nil
}

// FullBalances returns a vault's registry entries
func (qs queryServer) FullBalances(goCtx context.Context, req *types.QueryFullBalancesRequest) (*types.QueryFullBalancesResponse, error) {
	balances, err := qs.GetAllFullBalances(goCtx, req.VaultId)
	if err != nil {
		return nil, err
	}
	return &types.QueryFullBalancesResponse{Balances: balances}, nil
}

// Unstake returns one unstake ticket
func (qs queryServer) Unstake(goCtx context.Context, req *types.QueryUnstakeRequest) (*types.QueryUnstakeResponse, error) {
	unstake, err := qs.GetUnstake(goCtx, req.UnstakeId)
	if err != nil {
		return nil, err
	}
	return &types.QueryUnstakeResponse{Unstake: *unstake}, nil
}
