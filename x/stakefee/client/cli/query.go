package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

// GetQueryCmd returns the cli query commands for the stakefee module
func GetQueryCmd() *cobra.Command {
	stakefeeQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the stakefee module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	stakefeeQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryConfig(),
		GetCmdQueryVault(),
		GetCmdQueryVaults(),
		GetCmdQueryStakeEscrow(),
		GetCmdQueryTopStakers(),
		GetCmdQueryFullBalances(),
		GetCmdQueryUnstake(),
	)

	return stakefeeQueryCmd
}

func printJSON(clientCtx client.Context, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintRaw(bz)
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current stakefee module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryConfig returns the command to query one config template
func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [index]",
		Short: "Query a vault construction template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint(args[0], "index")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Config(context.Background(), &types.QueryConfigRequest{Index: index})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryVault returns the command to query one vault
func GetCmdQueryVault() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault [vault-id]",
		Short: "Query a fee vault",
		Long: `Query a vault's configuration, metrics and top staker info.

Example:
  $ stakefeed query stakefee vault 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Vault(context.Background(), &types.QueryVaultRequest{VaultId: vaultID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryVaults returns the command to query all vaults
func GetCmdQueryVaults() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaults",
		Short: "Query all fee vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Vaults(context.Background(), &types.QueryVaultsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryStakeEscrow returns the command to query an owner's escrow
func GetCmdQueryStakeEscrow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow [vault-id] [owner]",
		Short: "Query an owner's stake escrow in a vault",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.StakeEscrow(context.Background(), &types.QueryStakeEscrowRequest{
				VaultId: vaultID,
				Owner:   args[1],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTopStakers returns the command to query a vault's top stakers
func GetCmdQueryTopStakers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-stakers [vault-id]",
		Short: "Query a vault's current top staker set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TopStakers(context.Background(), &types.QueryTopStakersRequest{VaultId: vaultID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryFullBalances returns the command to query a vault's registry
func GetCmdQueryFullBalances() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "full-balances [vault-id]",
		Short: "Query a vault's full staker balance registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.FullBalances(context.Background(), &types.QueryFullBalancesRequest{VaultId: vaultID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryUnstake returns the command to query one unstake ticket
func GetCmdQueryUnstake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unstake [unstake-id]",
		Short: "Query an unstake ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			unstakeID, err := parseUint(args[0], "unstake-id")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Unstake(context.Background(), &types.QueryUnstakeRequest{UnstakeId: unstakeID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
