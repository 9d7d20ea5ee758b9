package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// GetQueryCmd returns the cli query commands for the swap module
func GetQueryCmd() *cobra.Command {
	swapQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the swap module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryLiquidity(),
		GetCmdQuoteExactIn(),
		GetCmdQuoteExactOut(),
	)

	return swapQueryCmd
}

func printJSON(clientCtx client.Context, res interface{}) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current swap module parameters",
		Long: `Query the current parameters of the swap module.

Example:
  $ swapd query swap params`,
		Args: cobra.NoArgs,
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

// GetCmdQueryPool returns the command to query a pool by its token pair
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [token-a] [token-b]",
		Short: "Query a liquidity pool by token pair",
		Long: `Query a liquidity pool by its token pair, in either order.

Example:
  $ swapd query swap pool uusdc uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{
				TokenA: args[0],
				TokenB: args[1],
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

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all liquidity pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(context.Background(), &types.QueryPoolsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLiquidity returns the command to query a provider's position
func GetCmdQueryLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity [token-a] [token-b] [provider]",
		Short: "Query a provider's liquidity shares in a pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Liquidity(context.Background(), &types.QueryLiquidityRequest{
				TokenA:   args[0],
				TokenB:   args[1],
				Provider: args[2],
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

// GetCmdQuoteExactIn returns the command to price a fixed-input swap
func GetCmdQuoteExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-exact-in [amount-in] [path]",
		Short: "Quote a fixed input along a comma-separated token path",
		Long: `Quote the per-hop amounts for a fixed input along a token path
without executing the swap.

Example:
  $ swapd query swap quote-exact-in 1000000 uusdc,uusdt,uatom`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "amount-in")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.QuoteExactIn(context.Background(), &types.QueryQuoteExactInRequest{
				AmountIn: amountIn,
				Path:     strings.Split(args[1], ","),
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

// GetCmdQuoteExactOut returns the command to price a fixed-output swap
func GetCmdQuoteExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-exact-out [amount-out] [path]",
		Short: "Quote a fixed output along a comma-separated token path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amountOut, err := parseInt(args[0], "amount-out")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.QuoteExactOut(context.Background(), &types.QueryQuoteExactOutRequest{
				AmountOut: amountOut,
				Path:      strings.Split(args[1], ","),
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
