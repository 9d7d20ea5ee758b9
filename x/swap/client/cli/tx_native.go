package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

const flagApproveMax = "approve-max"

// CmdAddLiquidityNative returns a CLI command handler for depositing a token
// together with the chain's native asset
func CmdAddLiquidityNative() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity-native [token] [desired-token] [min-token] [native-amount] [min-native]",
		Short: "Deposit a token with the native asset and mint liquidity shares",
		Long: `Deposit a token alongside the chain's native asset. The native amount
is wrapped 1:1 into the wrapped denom; unconsumed native is refunded.

Example:
  $ swapd tx swap add-liquidity-native uusdc 1000000 990000 1000000 990000 --deadline 1756200000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			desiredToken, err := parseInt(args[1], "desired-token")
			if err != nil {
				return err
			}
			minToken, err := parseInt(args[2], "min-token")
			if err != nil {
				return err
			}
			nativeAmount, err := parseInt(args[3], "native-amount")
			if err != nil {
				return err
			}
			minNative, err := parseInt(args[4], "min-native")
			if err != nil {
				return err
			}

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidityNative(clientCtx.GetFromAddress().String(), args[0], desiredToken, nativeAmount, minToken, minNative, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdRemoveLiquidityWithPermit returns a CLI command handler for withdrawing
// liquidity authorized by an off-chain permit signature
func CmdRemoveLiquidityWithPermit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity-with-permit [token-a] [token-b] [shares] [min-a] [min-b] [signature-hex]",
		Short: "Burn liquidity shares using a permit signature instead of a prior approval",
		Args:  cobra.ExactArgs(6),
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
			signature, err := hex.DecodeString(strings.TrimPrefix(args[5], "0x"))
			if err != nil {
				return fmt.Errorf("invalid permit signature: %w", err)
			}
			approveMax, err := cmd.Flags().GetBool(flagApproveMax)
			if err != nil {
				return err
			}

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidityWithPermit(clientCtx.GetFromAddress().String(), args[0], args[1], shares, minA, minB, to, deadline, approveMax, signature)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagApproveMax, false, "Permit covers the signer's full share balance")
	addSwapTxFlags(cmd)
	return cmd
}

// CmdSwapNativeExactIn returns a CLI command handler for fixed-input swaps
// funded by the native asset
func CmdSwapNativeExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-native-exact-in [native-amount] [min-amount-out] [path]",
		Short: "Swap a fixed native amount along a path starting at the wrapped denom",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nativeAmount, err := parseInt(args[0], "native-amount")
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

			msg := types.NewMsgSwapNativeExactIn(clientCtx.GetFromAddress().String(), nativeAmount, minOut, path, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdSwapExactInForNative returns a CLI command handler for fixed-input swaps
// that pay out the native asset
func CmdSwapExactInForNative() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in-for-native [amount-in] [min-native-out] [path]",
		Short: "Swap a fixed token input along a path ending at the wrapped denom for native",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "amount-in")
			if err != nil {
				return err
			}
			minNativeOut, err := parseInt(args[1], "min-native-out")
			if err != nil {
				return err
			}
			path := strings.Split(args[2], ",")

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactInForNative(clientCtx.GetFromAddress().String(), amountIn, minNativeOut, path, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}

// CmdSwapNativeForExactOut returns a CLI command handler for fixed-output
// swaps funded by the native asset
func CmdSwapNativeForExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-native-for-exact-out [amount-out] [native-amount] [path]",
		Short: "Swap native for a fixed token output, refunding unconsumed native",
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
			nativeAmount, err := parseInt(args[1], "native-amount")
			if err != nil {
				return err
			}
			path := strings.Split(args[2], ",")

			deadline, to, err := deadlineAndRecipient(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapNativeForExactOut(clientCtx.GetFromAddress().String(), amountOut, nativeAmount, path, to, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addSwapTxFlags(cmd)
	return cmd
}
