package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// BankNativeAdapter converts the chain's native denom to the wrapped pool
// denom 1:1 through the module account: wrapped supply is minted against
// burned native and vice versa, so the module never accumulates a native
// balance.
type BankNativeAdapter struct {
	bank    types.BankKeeper
	native  string
	wrapped string
}

var _ types.NativeAssetAdapter = BankNativeAdapter{}

// NewBankNativeAdapter creates a BankNativeAdapter for the given denoms.
func NewBankNativeAdapter(bank types.BankKeeper, nativeDenom, wrappedDenom string) BankNativeAdapter {
	return BankNativeAdapter{bank: bank, native: nativeDenom, wrapped: wrappedDenom}
}

// Wrap pulls amount native from payer, burns it and credits recipient with
// the same amount of the wrapped denom.
func (a BankNativeAdapter) Wrap(ctx context.Context, payer, recipient sdk.AccAddress, amount math.Int) error {
	nativeCoins := sdk.NewCoins(sdk.NewCoin(a.native, amount))
	wrappedCoins := sdk.NewCoins(sdk.NewCoin(a.wrapped, amount))

	if err := a.bank.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, nativeCoins); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to collect native coins: %v", err)
	}
	if err := a.bank.BurnCoins(ctx, types.ModuleName, nativeCoins); err != nil {
		return err
	}
	if err := a.bank.MintCoins(ctx, types.ModuleName, wrappedCoins); err != nil {
		return err
	}
	return a.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, wrappedCoins)
}

// Unwrap pulls amount wrapped from payer, burns it and credits recipient
// with the same amount of the native denom.
func (a BankNativeAdapter) Unwrap(ctx context.Context, payer, recipient sdk.AccAddress, amount math.Int) error {
	nativeCoins := sdk.NewCoins(sdk.NewCoin(a.native, amount))
	wrappedCoins := sdk.NewCoins(sdk.NewCoin(a.wrapped, amount))

	if err := a.bank.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, wrappedCoins); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to collect wrapped coins: %v", err)
	}
	if err := a.bank.BurnCoins(ctx, types.ModuleName, wrappedCoins); err != nil {
		return err
	}
	if err := a.bank.MintCoins(ctx, types.ModuleName, nativeCoins); err != nil {
		return err
	}
	return a.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, nativeCoins)
}

// WrappedDenom implements types.NativeAssetAdapter.
func (a BankNativeAdapter) WrappedDenom(context.Context) string { return a.wrapped }

// NativeDenom implements types.NativeAssetAdapter.
func (a BankNativeAdapter) NativeDenom(context.Context) string { return a.native }

// NativeAdapter builds the adapter for the denoms configured in params.
func (k Keeper) NativeAdapter(ctx context.Context) (types.NativeAssetAdapter, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return NewBankNativeAdapter(k.bankKeeper, params.NativeDenom, params.WrappedNativeDenom), nil
}

// AddLiquidityNative wraps nativeAmount and deposits it alongside token. The
// unmatched wrapped remainder is unwrapped back to the provider in the same
// invocation.
func (k Keeper) AddLiquidityNative(ctx context.Context, provider sdk.AccAddress, token string, desiredToken, nativeAmount, minToken, minNative math.Int, to sdk.AccAddress) (usedToken, usedNative, shares math.Int, err error) {
	err = k.WithRouterLock(ctx, func() error {
		adapter, aerr := k.NativeAdapter(ctx)
		if aerr != nil {
			return aerr
		}
		wrapped := adapter.WrappedDenom(ctx)
		if token == wrapped {
			return types.ErrIdenticalTokens.Wrap("token cannot be the wrapped native denom")
		}

		if aerr := adapter.Wrap(ctx, provider, provider, nativeAmount); aerr != nil {
			return aerr
		}

		usedToken, usedNative, shares, err = k.addLiquidity(ctx, provider, token, wrapped, desiredToken, nativeAmount, minToken, minNative, to)
		if err != nil {
			return err
		}

		return k.refundNativeDust(ctx, adapter, provider, nativeAmount.Sub(usedNative))
	})
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	return usedToken, usedNative, shares, nil
}

// SwapNativeExactIn wraps nativeAmount and swaps it along path, which must
// start at the wrapped denom. The whole input is consumed, so no dust
// remains.
func (k Keeper) SwapNativeExactIn(ctx context.Context, trader, recipient sdk.AccAddress, path []string, nativeAmount, minAmountOut math.Int) ([]math.Int, error) {
	var amounts []math.Int
	err := k.WithRouterLock(ctx, func() error {
		adapter, err := k.NativeAdapter(ctx)
		if err != nil {
			return err
		}
		if len(path) == 0 || path[0] != adapter.WrappedDenom(ctx) {
			return types.ErrInvalidPath.Wrap("path must start at the wrapped native denom")
		}

		if err := adapter.Wrap(ctx, trader, trader, nativeAmount); err != nil {
			return err
		}

		amounts, err = k.swapExactIn(ctx, trader, recipient, path, nativeAmount, minAmountOut)
		return err
	})
	if err != nil {
		k.metrics.SwapFailed()
		return nil, err
	}
	return amounts, nil
}

// SwapExactInForNative swaps a fixed token input for native coins. The path
// must end at the wrapped denom; the wrapped output is unwrapped to the
// recipient.
func (k Keeper) SwapExactInForNative(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountIn, minNativeOut math.Int) ([]math.Int, error) {
	var amounts []math.Int
	err := k.WithRouterLock(ctx, func() error {
		adapter, err := k.NativeAdapter(ctx)
		if err != nil {
			return err
		}
		if len(path) == 0 || path[len(path)-1] != adapter.WrappedDenom(ctx) {
			return types.ErrInvalidPath.Wrap("path must end at the wrapped native denom")
		}

		// Wrapped and native are 1:1, so the slippage bound applies unchanged
		// to the wrapped output.
		amounts, err = k.swapExactIn(ctx, trader, trader, path, amountIn, minNativeOut)
		if err != nil {
			return err
		}

		return adapter.Unwrap(ctx, trader, recipient, amounts[len(amounts)-1])
	})
	if err != nil {
		k.metrics.SwapFailed()
		return nil, err
	}
	return amounts, nil
}

// SwapNativeForExactOut wraps up to nativeAmount and swaps for a fixed
// output. The unconsumed wrapped remainder is unwrapped back to the trader
// as a dust refund, leaving the module with no native balance.
func (k Keeper) SwapNativeForExactOut(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountOut, nativeAmount math.Int) ([]math.Int, error) {
	var amounts []math.Int
	err := k.WithRouterLock(ctx, func() error {
		adapter, err := k.NativeAdapter(ctx)
		if err != nil {
			return err
		}
		if len(path) == 0 || path[0] != adapter.WrappedDenom(ctx) {
			return types.ErrInvalidPath.Wrap("path must start at the wrapped native denom")
		}

		amounts, err = k.QuoteExactOut(ctx, path, amountOut)
		if err != nil {
			return err
		}
		if amounts[0].GT(nativeAmount) {
			return types.ErrExcessiveInputAmount.Wrapf(
				"required input %s above native amount %s", amounts[0], nativeAmount)
		}

		if err := adapter.Wrap(ctx, trader, trader, nativeAmount); err != nil {
			return err
		}
		if err := k.deliverInput(ctx, trader, path, amounts[0]); err != nil {
			return err
		}
		if err := k.executeSwapPath(ctx, amounts, path, recipient); err != nil {
			return err
		}

		k.emitSwapEvent(ctx, trader, recipient, path, amounts)
		k.metrics.SwapExecuted(len(path) - 1)

		return k.refundNativeDust(ctx, adapter, trader, nativeAmount.Sub(amounts[0]))
	})
	if err != nil {
		k.metrics.SwapFailed()
		return nil, err
	}
	return amounts, nil
}

// refundNativeDust unwraps an unconsumed wrapped remainder back to the
// caller and emits the refund event. A zero remainder is a no-op.
func (k Keeper) refundNativeDust(ctx context.Context, adapter types.NativeAssetAdapter, to sdk.AccAddress, refund math.Int) error {
	if !refund.IsPositive() {
		return nil
	}
	if err := adapter.Unwrap(ctx, to, to, refund); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDustRefund,
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
	)
	return nil
}
