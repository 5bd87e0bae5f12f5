package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*QueryConfigResponse, error)
	Vault(ctx context.Context, in *QueryVaultRequest, opts ...grpc.CallOption) (*QueryVaultResponse, error)
	Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error)
	StakeEscrow(ctx context.Context, in *QueryStakeEscrowRequest, opts ...grpc.CallOption) (*QueryStakeEscrowResponse, error)
	TopStakers(ctx context.Context, in *QueryTopStakersRequest, opts ...grpc.CallOption) (*QueryTopStakersResponse, error)
	FullBalances(ctx context.Context, in *QueryFullBalancesRequest, opts ...grpc.CallOption) (*QueryFullBalancesResponse, error)
	Unstake(ctx context.Context, in *QueryUnstakeRequest, opts ...grpc.CallOption) (*QueryUnstakeResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*QueryConfigResponse, error) {
	out := new(QueryConfigResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/Config", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Vault(ctx context.Context, in *QueryVaultRequest, opts ...grpc.CallOption) (*QueryVaultResponse, error) {
	out := new(QueryVaultResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/Vault", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error) {
	out := new(QueryVaultsResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/Vaults", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) StakeEscrow(ctx context.Context, in *QueryStakeEscrowRequest, opts ...grpc.CallOption) (*QueryStakeEscrowResponse, error) {
	out := new(QueryStakeEscrowResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/StakeEscrow", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TopStakers(ctx context.Context, in *QueryTopStakersRequest, opts ...grpc.CallOption) (*QueryTopStakersResponse, error) {
	out := new(QueryTopStakersResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/TopStakers", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) FullBalances(ctx context.Context, in *QueryFullBalancesRequest, opts ...grpc.CallOption) (*QueryFullBalancesResponse, error) {
	out := new(QueryFullBalancesResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/FullBalances", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Unstake(ctx context.Context, in *QueryUnstakeRequest, opts ...grpc.CallOption) (*QueryUnstakeResponse, error) {
	out := new(QueryUnstakeResponse)
	err := c.cc.Invoke(ctx, "/stakefee.v1.Query/Unstake", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
