package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

const (
	flagDeadline = "deadline"
	flagTo       = "to"
	flagXybk     = "xybk"
	flagBoost0   = "boost0"
	flagBoost1   = "boost1"
)

// GetTxCmd returns the transaction commands for the swap module
func GetTxCmd() *cobra.Command {
	swapTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Swap transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdAddLiquidityNative(),
		CmdRemoveLiquidity(),
		CmdRemoveLiquidityWithPermit(),
		CmdSwapExactIn(),
		CmdSwapExactOut(),
		CmdSwapNativeExactIn(),
		CmdSwapExactInForNative(),
		CmdSwapNativeForExactOut(),
		CmdSetTradeState(),
	)

	return swapTxCmd
}

func addSwapTxFlags(cmd *cobra.Command) {
	cmd.Flags().Int64(flagDeadline, 0, "Unix timestamp after which the transaction is rejected")
	cmd.Flags().String(flagTo, "", "Recipient address (defaults to the sender)")
	flags.AddTxFlagsToCmd(cmd)
}

func deadlineAndRecipient(cmd *cobra.Command, clientCtx client.Context) (int64, string, error) {
	deadline, err := cmd.Flags().GetInt64(flagDeadline)
	if err != nil {
		return 0, "", err
	}
	to, err := cmd.Flags().GetString(flagTo)
	if err != nil {
		return 0, "", err
	}
	if to == "" {
		to = clientCtx.GetFromAddress().String()
	}
	return deadline, to, nil
}

func parseInt(arg, name string) (math.Int, error) {
	v, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	return v, nil
}

// CmdCreatePool returns a CLI command handler for registering a pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [token-b]",
		Short: "Register a pool for a token pair",
		Long: `Register an empty pool for a token pair. Pass --xybk with boost
coefficients to enable the boosted invariant.

Example:
  $ swapd tx swap create-pool uusdc uusdt --xybk --boost0 10 --boost1 10 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			xybk, err := cmd.Flags().GetBool(flagXybk)
			if err != nil {
				return err
			}
			boost0Str, err := cmd.Flags().GetString(flagBoost0)
			if err != nil {
				return err
			}
			boost1Str, err := cmd.Flags().GetString(flagBoost1)
			if err != nil {
				return err
			}
			boost0, err := parseInt(boost0Str, "boost0")
			if err != nil {
				return err
			}
			boost1, err := parseInt(boost1Str, "boost1")
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0], args[1], xybk, boost0, boost1)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagXybk, false, "Enable the boosted invariant")
	cmd.Flags().String(flagBoost0, "1", "Boost coefficient for token0")
	cmd.Flags().String(flagBoost1, "1", "Boost coefficient for token1")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing liquidity
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-a] [desired-a] [min-a] [token-b] [desired-b] [min-b]",
		Short: "Deposit both pair tokens and mint liquidity shares",
		Long: `Deposit up to the desired amounts of both tokens. Later deposits are
matched to the pool ratio; each side must still reach its minimum.

Example:
  $ swapd tx swap add-liquidity uusdc 1000000 990000 uusdt 1000000 990000 --deadline 1756200000 --from mykey`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			desiredA, err := parseInt(args[1], "desired-a")
			if err != nil {
				return err
			}
			minA, err := parseInt(args[2], "min-a")
			if err != nil {
				return err
			}
			desiredB, err := parseInt(args[4], "desired-b")
			if err != nil {
				return err
			}
			minB, err := parseInt(args[5], "min-b")
			if err != nil {
				return err
			}

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), args[0], args[3], desiredA, desiredB, minA, minB, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for withdrawing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [token-a] [token-b] [shares] [min-a] [min-b]",
		Short: "Burn liquidity shares and withdraw the proportional reserves",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, err := parseInt(args[2], "shares")
			if err != nil {
				return err
			}
			minA, err := parseInt(args[3], "min-a")
			if err != nil {
				return err
			}
			minB, err := parseInt(args[4], "min-b")
			if err != nil {
				return err
			}

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), args[0], args[1], shares, minA, minB, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdSwapExactIn returns a CLI command handler for fixed-input swaps
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in [amount-in] [min-amount-out] [path]",
		Short: "Swap a fixed input along a comma-separated token path",
		Long: `Swap a fixed input amount along a path of token denoms, for example
uusdc,uusdt,uatom. The final output must reach min-amount-out.

Example:
  $ swapd tx swap swap-exact-in 1000000 990000 uusdc,uusdt --deadline 1756200000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "amount-in")
			if err != nil {
				return err
			}
			minOut, err := parseInt(args[1], "min-amount-out")
			if err != nil {
				return err
			}
			path := strings.Split(args[2], ",")

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactIn(clientCtx.GetFromAddress().String(), amountIn, minOut, path, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdSwapExactOut returns a CLI command handler for fixed-output swaps
func CmdSwapExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-out [amount-out] [max-amount-in] [path]",
		Short: "Swap for a fixed output along a comma-separated token path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountOut, err := parseInt(args[0], "amount-out")
			if err != nil {
				return err
			}
			maxIn, err := parseInt(args[1], "max-amount-in")
			if err != nil {
				return err
			}
			path := strings.Split(args[2], ",")

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactOut(clientCtx.GetFromAddress().String(), amountOut, maxIn, path, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdSetTradeState returns a CLI command handler for adjusting a pool's trade gate
func CmdSetTradeState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-trade-state [token-a] [token-b] [state]",
		Short: "Set a pool's trade-direction gate (0=all, 1=sell-token0, 2=sell-token1, 3=none)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			state, err := strconv.ParseInt(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid trade state: %w", err)
			}

			msg := types.NewMsgSetTradeState(clientCtx.GetFromAddress().String(), args[0], args[1], types.TradeState(state))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
