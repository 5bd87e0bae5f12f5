package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/stakefee-chain/stakefee/x/stakefee/types"
)

const flagStartClaimFeeTimestamp = "start-claim-fee-timestamp"

// GetTxCmd returns the transaction commands for the stakefee module
func GetTxCmd() *cobra.Command {
	stakefeeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Stakefee transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	stakefeeTxCmd.AddCommand(
		CmdInitializeConfig(),
		CmdCloseConfig(),
		CmdInitializeVault(),
		CmdInitializeStakeEscrow(),
		CmdStake(),
		CmdRequestUnstake(),
		CmdCancelUnstake(),
		CmdWithdraw(),
		CmdClaimFee(),
		CmdClaimFeeCrank(),
		CmdUpdateUnstakeLockDuration(),
		CmdUpdateSecondsToFullUnlock(),
	)

	return stakefeeTxCmd
}

func parseUint(arg, name string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

// CmdInitializeConfig returns a CLI command handler for creating a vault
// construction template
func CmdInitializeConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [index] [top-list-length] [seconds-to-full-unlock] [unstake-lock-duration] [join-window-duration]",
		Short: "Create an indexed vault construction template (admin only)",
		Long: `Create a config template carrying the top list capacity and the drip,
unstake lock and join window durations for vaults built from it.

Example:
  $ stakefeed tx stakefee init-config 0 100 86400 86400 3600 --from admin`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint(args[0], "index")
			if err != nil {
				return err
			}
			topListLength, err := strconv.ParseUint(args[1], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid top-list-length: %w", err)
			}
			secondsToFullUnlock, err := parseUint(args[2], "seconds-to-full-unlock")
			if err != nil {
				return err
			}
			unstakeLockDuration, err := parseUint(args[3], "unstake-lock-duration")
			if err != nil {
				return err
			}
			joinWindowDuration, err := parseUint(args[4], "join-window-duration")
			if err != nil {
				return err
			}

			msg := &types.MsgInitializeConfig{
				Admin:               clientCtx.GetFromAddress().String(),
				Index:               index,
				TopListLength:       uint16(topListLength),
				SecondsToFullUnlock: secondsToFullUnlock,
				UnstakeLockDuration: unstakeLockDuration,
				JoinWindowDuration:  joinWindowDuration,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCloseConfig returns a CLI command handler for removing a config template
func CmdCloseConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close-config [index]",
		Short: "Remove a vault construction template (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint(args[0], "index")
			if err != nil {
				return err
			}

			msg := &types.MsgCloseConfig{
				Admin: clientCtx.GetFromAddress().String(),
				Index: index,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdInitializeVault returns a CLI command handler for creating a pool's fee vault
func CmdInitializeVault() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-vault [pool-id] [lock-escrow-id] [stake-mint] [config-index]",
		Short: "Create the fee vault for a pool from a config template",
		Long: `Create a fee vault. The pool must be constant product with one quote-set
token; the stake mint is the non-quote side. Pass --start-claim-fee-timestamp
to override the join window with an explicit first pull time.

Example:
  $ stakefeed tx stakefee init-vault 1 1 ustake 0 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := parseUint(args[0], "pool-id")
			if err != nil {
				return err
			}
			lockEscrowID, err := parseUint(args[1], "lock-escrow-id")
			if err != nil {
				return err
			}
			configIndex, err := parseUint(args[3], "config-index")
			if err != nil {
				return err
			}

			startClaimFee, err := cmd.Flags().GetInt64(flagStartClaimFeeTimestamp)
			if err != nil {
				return err
			}

			msg := &types.MsgInitializeVault{
				Creator:                      clientCtx.GetFromAddress().String(),
				PoolId:                       poolID,
				LockEscrow:                   lockEscrowID,
				StakeMint:                    args[2],
				ConfigIndex:                  configIndex,
				CustomStartClaimFeeTimestamp: startClaimFee,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(flagStartClaimFeeTimestamp, 0, "Explicit first pull/drip time (unix seconds); zero uses the config's join window")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateUnstakeLockDuration returns a CLI command handler for the admin
// unstake lock update
func CmdUpdateUnstakeLockDuration() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-unstake-lock-duration [vault-id] [seconds]",
		Short: "Change a vault's unstake lock duration (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}
			seconds, err := parseUint(args[1], "seconds")
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateUnstakeLockDuration{
				Admin:               clientCtx.GetFromAddress().String(),
				VaultId:             vaultID,
				UnstakeLockDuration: seconds,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateSecondsToFullUnlock returns a CLI command handler for the admin
// drip window update
func CmdUpdateSecondsToFullUnlock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-seconds-to-full-unlock [vault-id] [seconds]",
		Short: "Change a vault's drip window (admin only)",
		Long: `Change how long locked fees take to fully drip. The update drips with
the old window up to now before switching.

Example:
  $ stakefeed tx stakefee update-seconds-to-full-unlock 1 172800 --from admin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}
			seconds, err := parseUint(args[1], "seconds")
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateSecondsToFullUnlock{
				Admin:               clientCtx.GetFromAddress().String(),
				VaultId:             vaultID,
				SecondsToFullUnlock: seconds,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdInitializeStakeEscrow returns a CLI command handler for creating a stake escrow
func CmdInitializeStakeEscrow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-escrow [vault-id]",
		Short: "Create your stake escrow in a vault",
		Long: `Register in the vault's staker registry and create your escrow.

Example:
  $ stakefeed tx stakefee init-escrow 1 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			msg := &types.MsgInitializeStakeEscrow{
				Owner:   clientCtx.GetFromAddress().String(),
				VaultId: vaultID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStake returns a CLI command handler for staking into a vault
func CmdStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake [vault-id] [amount]",
		Short: "Stake stake-mint tokens into a vault",
		Long: `Stake tokens; a large enough stake enters the top staker set and
starts earning the dripped pool fees.

Example:
  $ stakefeed tx stakefee stake 1 1000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}
			amount, err := parseUint(args[1], "amount")
			if err != nil {
				return err
			}

			msg := &types.MsgStake{
				Owner:   clientCtx.GetFromAddress().String(),
				VaultId: vaultID,
				Amount:  amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRequestUnstake returns a CLI command handler for requesting an unstake
func CmdRequestUnstake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-unstake [vault-id] [amount]",
		Short: "Start the unstake lock for part of your stake",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}
			amount, err := parseUint(args[1], "amount")
			if err != nil {
				return err
			}

			msg := &types.MsgRequestUnstake{
				Owner:         clientCtx.GetFromAddress().String(),
				VaultId:       vaultID,
				UnstakeAmount: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelUnstake returns a CLI command handler for cancelling an unstake
func CmdCancelUnstake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-unstake [unstake-id]",
		Short: "Cancel a pending unstake and restore the stake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			unstakeID, err := parseUint(args[0], "unstake-id")
			if err != nil {
				return err
			}

			msg := &types.MsgCancelUnstake{
				Owner:     clientCtx.GetFromAddress().String(),
				UnstakeId: unstakeID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for withdrawing a matured unstake
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [unstake-id]",
		Short: "Withdraw a matured unstake to your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			unstakeID, err := parseUint(args[0], "unstake-id")
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Owner:     clientCtx.GetFromAddress().String(),
				UnstakeId: unstakeID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimFee returns a CLI command handler for claiming pending fees
func CmdClaimFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-fee [vault-id] [max-fee-a] [max-fee-b]",
		Short: "Claim your pending fees, capped per side",
		Long: `Claim pending fees. Pass the maximum amount per pool side; use the
u64 maximum to claim everything.

Example:
  $ stakefeed tx stakefee claim-fee 1 18446744073709551615 18446744073709551615 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}
			maxFeeA, err := parseUint(args[1], "max-fee-a")
			if err != nil {
				return err
			}
			maxFeeB, err := parseUint(args[2], "max-fee-b")
			if err != nil {
				return err
			}

			msg := &types.MsgClaimFee{
				Owner:   clientCtx.GetFromAddress().String(),
				VaultId: vaultID,
				MaxFeeA: maxFeeA,
				MaxFeeB: maxFeeB,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimFeeCrank returns a CLI command handler for the permissionless crank
func CmdClaimFeeCrank() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crank [vault-id]",
		Short: "Advance a vault's fee pull and drip",
		Long: `Run the permissionless fee crank. The message must be the only
stakefee message in its transaction.

Example:
  $ stakefeed tx stakefee crank 1 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := parseUint(args[0], "vault-id")
			if err != nil {
				return err
			}

			msg := &types.MsgClaimFeeCrank{
				Sender:  clientCtx.GetFromAddress().String(),
				VaultId: vaultID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
