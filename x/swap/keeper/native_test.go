package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/Impossible-Finance/impossible-swap-core/testutil/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

const (
	nativeDenom  = "upaw"
	wrappedDenom = "uwpaw"
)

func TestBankNativeAdapter(t *testing.T) {
	_, ctx, bank := keepertest.SwapKeeper(t)
	adapter := keeper.NewBankNativeAdapter(bank, nativeDenom, wrappedDenom)

	amount := math.NewInt(1_000_000)
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, amount)))

	t.Run("wrap converts one to one", func(t *testing.T) {
		require.NoError(t, adapter.Wrap(ctx, traderAddr, traderAddr, amount))
		require.True(t, bank.GetBalance(ctx, traderAddr, nativeDenom).Amount.IsZero())
		require.Equal(t, amount, bank.GetBalance(ctx, traderAddr, wrappedDenom).Amount)

		// No custody: the module account holds neither denom.
		require.True(t, bank.ModuleBalance(types.ModuleName, nativeDenom).IsZero())
		require.True(t, bank.ModuleBalance(types.ModuleName, wrappedDenom).IsZero())
	})

	t.Run("unwrap reverses it", func(t *testing.T) {
		require.NoError(t, adapter.Unwrap(ctx, traderAddr, otherAddr, amount))
		require.True(t, bank.GetBalance(ctx, traderAddr, wrappedDenom).Amount.IsZero())
		require.Equal(t, amount, bank.GetBalance(ctx, otherAddr, nativeDenom).Amount)
	})

	t.Run("wrap without funds fails", func(t *testing.T) {
		err := adapter.Wrap(ctx, traderAddr, traderAddr, amount)
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	})
}

// fundNativePool seeds a token/wrapped-native pool through the native
// liquidity path.
func fundNativePool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *keepertest.MockBankKeeper, token string, tokenAmount, nativeAmount int64) {
	t.Helper()
	ta, na := math.NewInt(tokenAmount), math.NewInt(nativeAmount)
	bank.FundAccount(providerAddr, sdk.NewCoins(sdk.NewCoin(token, ta), sdk.NewCoin(nativeDenom, na)))
	_, _, _, err := k.AddLiquidityNative(ctx, providerAddr, token, ta, na, math.ZeroInt(), math.ZeroInt(), providerAddr)
	require.NoError(t, err)
}

func TestAddLiquidityNative(t *testing.T) {
	t.Run("first deposit wraps the full native amount", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		pool, err := k.GetPool(ctx, "uusdc", wrappedDenom)
		require.NoError(t, err)
		require.Equal(t, "1000000", pool.Reserve0.String())
		require.Equal(t, "1000000", pool.Reserve1.String())
		require.True(t, bank.GetBalance(ctx, providerAddr, nativeDenom).Amount.IsZero())
	})

	t.Run("unmatched native is refunded as native", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		// 2:1 desired against a 1:1 pool: only 500_000 native matches.
		bank.FundAccount(otherAddr, sdk.NewCoins(
			sdk.NewCoin("uusdc", math.NewInt(500_000)),
			sdk.NewCoin(nativeDenom, math.NewInt(1_000_000)),
		))
		usedToken, usedNative, shares, err := k.AddLiquidityNative(ctx, otherAddr, "uusdc", math.NewInt(500_000), math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt(), otherAddr)
		require.NoError(t, err)
		require.Equal(t, "500000", usedToken.String())
		require.Equal(t, "500000", usedNative.String())
		require.True(t, shares.IsPositive())

		// The leftover came back as native coins, not wrapped ones.
		require.Equal(t, "500000", bank.GetBalance(ctx, otherAddr, nativeDenom).Amount.String())
		require.True(t, bank.GetBalance(ctx, otherAddr, wrappedDenom).Amount.IsZero())
		require.True(t, bank.ModuleBalance(types.ModuleName, nativeDenom).IsZero())
	})

	t.Run("wrapped denom as the token is rejected", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		bank.FundAccount(providerAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(1_000_000))))

		_, _, _, err := k.AddLiquidityNative(ctx, providerAddr, wrappedDenom, math.NewInt(1_000_000), math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt(), providerAddr)
		require.ErrorIs(t, err, types.ErrIdenticalTokens)
	})
}

func TestSwapNativeExactIn(t *testing.T) {
	t.Run("wraps and swaps the full input", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		amountIn := math.NewInt(10_000)
		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, amountIn)))

		amounts, err := k.SwapNativeExactIn(ctx, traderAddr, traderAddr, []string{wrappedDenom, "uusdc"}, amountIn, math.ZeroInt())
		require.NoError(t, err)
		require.True(t, bank.GetBalance(ctx, traderAddr, nativeDenom).Amount.IsZero())
		require.Equal(t, amounts[1], bank.GetBalance(ctx, traderAddr, "uusdc").Amount)
		require.True(t, bank.ModuleBalance(types.ModuleName, nativeDenom).IsZero())
	})

	t.Run("path must start at the wrapped denom", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(10_000))))
		_, err := k.SwapNativeExactIn(ctx, traderAddr, traderAddr, []string{"uusdc", wrappedDenom}, math.NewInt(10_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidPath)
	})
}

func TestSwapExactInForNative(t *testing.T) {
	t.Run("unwraps the output to the recipient", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		amountIn := math.NewInt(10_000)
		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("uusdc", amountIn)))

		amounts, err := k.SwapExactInForNative(ctx, traderAddr, otherAddr, []string{"uusdc", wrappedDenom}, amountIn, math.ZeroInt())
		require.NoError(t, err)

		// The recipient holds native, never the wrapped denom.
		require.Equal(t, amounts[1], bank.GetBalance(ctx, otherAddr, nativeDenom).Amount)
		require.True(t, bank.GetBalance(ctx, otherAddr, wrappedDenom).Amount.IsZero())
		require.True(t, bank.GetBalance(ctx, traderAddr, wrappedDenom).Amount.IsZero())
	})

	t.Run("path must end at the wrapped denom", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(wrappedDenom, math.NewInt(10_000))))
		_, err := k.SwapExactInForNative(ctx, traderAddr, traderAddr, []string{wrappedDenom, "uusdc"}, math.NewInt(10_000), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidPath)
	})
}

func TestSwapNativeForExactOut(t *testing.T) {
	t.Run("refunds the unconsumed native", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		amountOut := math.NewInt(1_000)
		budget := math.NewInt(50_000)
		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, budget)))

		amounts, err := k.SwapNativeForExactOut(ctx, traderAddr, traderAddr, []string{wrappedDenom, "uusdc"}, amountOut, budget)
		require.NoError(t, err)
		require.Equal(t, amountOut, bank.GetBalance(ctx, traderAddr, "uusdc").Amount)

		// Everything beyond the quoted input came back as native dust.
		refund := budget.Sub(amounts[0])
		require.Equal(t, refund, bank.GetBalance(ctx, traderAddr, nativeDenom).Amount)
		require.True(t, bank.GetBalance(ctx, traderAddr, wrappedDenom).Amount.IsZero())
		require.True(t, bank.ModuleBalance(types.ModuleName, nativeDenom).IsZero())
		require.True(t, bank.ModuleBalance(types.ModuleName, wrappedDenom).IsZero())
	})

	t.Run("budget below the quoted input", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundNativePool(t, k, ctx, bank, "uusdc", 1_000_000, 1_000_000)

		bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin(nativeDenom, math.NewInt(500))))
		_, err := k.SwapNativeForExactOut(ctx, traderAddr, traderAddr, []string{wrappedDenom, "uusdc"}, math.NewInt(1_000), math.NewInt(500))
		require.ErrorIs(t, err, types.ErrExcessiveInputAmount)
	})
}
