package types

import (
	"context"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Vault(context.Context, *QueryVaultRequest) (*QueryVaultResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
	StakeEscrow(context.Context, *QueryStakeEscrowRequest) (*QueryStakeEscrowResponse, error)
	TopStakers(context.Context, *QueryTopStakersRequest) (*QueryTopStakersResponse, error)
	FullBalances(context.Context, *QueryFullBalancesRequest) (*QueryFullBalancesResponse, error)
	Unstake(context.Context, *QueryUnstakeRequest) (*QueryUnstakeResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryConfigRequest requests one config template
type QueryConfigRequest struct {
	Index uint64 `json:"index"`
}

// QueryConfigResponse returns one config template
type QueryConfigResponse struct {
	Config Config `json:"config"`
}

// QueryVaultRequest requests one vault
type QueryVaultRequest struct {
	VaultId uint64 `json:"vault_id"`
}

// QueryVaultResponse returns one vault
type QueryVaultResponse struct {
	Vault FeeVault `json:"vault"`
}

// QueryVaultsRequest requests all vaults
type QueryVaultsRequest struct{}

// QueryVaultsResponse returns all vaults
type QueryVaultsResponse struct {
	Vaults []FeeVault `json:"vaults"`
}

// QueryStakeEscrowRequest requests an owner's escrow in a vault
type QueryStakeEscrowRequest struct {
	VaultId uint64 `json:"vault_id"`
	Owner   string `json:"owner"`
}

// QueryStakeEscrowResponse returns the escrow
type QueryStakeEscrowResponse struct {
	StakeEscrow StakeEscrow `json:"stake_escrow"`
}

// QueryTopStakersRequest requests a vault's occupied top list slots
type QueryTopStakersRequest struct {
	VaultId uint64 `json:"vault_id"`
}

// QueryTopStakersResponse returns the occupied slots, slot order
type QueryTopStakersResponse struct {
	Stakers []StakerMetadata `json:"stakers"`
}

// QueryFullBalancesRequest requests a vault's registry entries
type QueryFullBalancesRequest struct {
	VaultId uint64 `json:"vault_id"`
}

// QueryFullBalancesResponse returns the registry entries
type QueryFullBalancesResponse struct {
	Balances []StakerBalance `json:"balances"`
}

// QueryUnstakeRequest requests one unstake ticket
type QueryUnstakeRequest struct {
	UnstakeId uint64 `json:"unstake_id"`
}

// QueryUnstakeResponse returns one unstake ticket
type QueryUnstakeResponse struct {
	Unstake Unstake `json:"unstake"`
}
