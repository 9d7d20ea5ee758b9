package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// SwapExactIn swaps a fixed input along path under the router lock. The
// final output must reach minAmountOut or the whole message reverts with
// ErrInsufficientOutputAmount. Returns the per-hop amount vector.
func (k Keeper) SwapExactIn(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountIn, minAmountOut math.Int) ([]math.Int, error) {
	var amounts []math.Int
	err := k.WithRouterLock(ctx, func() error {
		var err error
		amounts, err = k.swapExactIn(ctx, trader, recipient, path, amountIn, minAmountOut)
		return err
	})
	if err != nil {
		k.metrics.SwapFailed()
		return nil, err
	}
	return amounts, nil
}

func (k Keeper) swapExactIn(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountIn, minAmountOut math.Int) ([]math.Int, error) {
	amounts, err := k.QuoteExactIn(ctx, path, amountIn)
	if err != nil {
		return nil, err
	}
	if amounts[len(amounts)-1].LT(minAmountOut) {
		return nil, types.ErrInsufficientOutputAmount.Wrapf(
			"output %s below minimum %s", amounts[len(amounts)-1], minAmountOut)
	}

	if err := k.deliverInput(ctx, trader, path, amounts[0]); err != nil {
		return nil, err
	}
	if err := k.executeSwapPath(ctx, amounts, path, recipient); err != nil {
		return nil, err
	}

	k.emitSwapEvent(ctx, trader, recipient, path, amounts)
	k.metrics.SwapExecuted(len(path) - 1)
	return amounts, nil
}

// SwapExactOut swaps for a fixed output along path under the router lock.
// The computed input must not exceed maxAmountIn or the message reverts with
// ErrExcessiveInputAmount. Returns the per-hop amount vector.
func (k Keeper) SwapExactOut(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountOut, maxAmountIn math.Int) ([]math.Int, error) {
	var amounts []math.Int
	err := k.WithRouterLock(ctx, func() error {
		var err error
		amounts, err = k.swapExactOut(ctx, trader, recipient, path, amountOut, maxAmountIn)
		return err
	})
	if err != nil {
		k.metrics.SwapFailed()
		return nil, err
	}
	return amounts, nil
}

func (k Keeper) swapExactOut(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amountOut, maxAmountIn math.Int) ([]math.Int, error) {
	amounts, err := k.QuoteExactOut(ctx, path, amountOut)
	if err != nil {
		return nil, err
	}
	if amounts[0].GT(maxAmountIn) {
		return nil, types.ErrExcessiveInputAmount.Wrapf(
			"required input %s above maximum %s", amounts[0], maxAmountIn)
	}

	if err := k.deliverInput(ctx, trader, path, amounts[0]); err != nil {
		return nil, err
	}
	if err := k.executeSwapPath(ctx, amounts, path, recipient); err != nil {
		return nil, err
	}

	k.emitSwapEvent(ctx, trader, recipient, path, amounts)
	k.metrics.SwapExecuted(len(path) - 1)
	return amounts, nil
}

// deliverInput moves the input amount from the trader to the first hop's
// pool escrow, establishing the executeSwapPath precondition.
func (k Keeper) deliverInput(ctx context.Context, trader sdk.AccAddress, path []string, amountIn math.Int) error {
	firstEscrow := types.PoolEscrowAddress(path[0], path[1])
	coin := sdk.NewCoin(path[0], amountIn)
	if err := k.bankKeeper.SendCoins(ctx, trader, firstEscrow, sdk.NewCoins(coin)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to collect input: %v", err)
	}
	return nil
}

// executeSwapPath settles a quoted path hop by hop. Each hop's output moves
// straight from that pool's escrow to the next pool's escrow, or to the
// recipient on the final hop, so no intermediate custody account is needed.
//
// Precondition: amounts[0] of path[0] has already been delivered to the
// first pool's escrow.
func (k Keeper) executeSwapPath(ctx context.Context, amounts []math.Int, path []string, recipient sdk.AccAddress) error {
	if len(amounts) != len(path) {
		return types.ErrInvalidPath.Wrapf("amount vector length %d does not match path length %d", len(amounts), len(path))
	}

	for i := 0; i < len(path)-1; i++ {
		pool, err := k.GetPool(ctx, path[i], path[i+1])
		if err != nil {
			return err
		}

		destination := recipient
		if i < len(path)-2 {
			destination = types.PoolEscrowAddress(path[i+1], path[i+2])
		}

		outCoin := sdk.NewCoin(path[i+1], amounts[i+1])
		if err := k.bankKeeper.SendCoins(ctx, pool.EscrowAddress(), destination, sdk.NewCoins(outCoin)); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("hop %d transfer failed: %v", i, err)
		}

		if err := k.applyReserveDelta(ctx, pool, path[i], amounts[i], amounts[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// applyReserveDelta credits the sold amount to the pool's input reserve and
// debits the bought amount from the output reserve. Plain pools additionally
// enforce that the constant product never decreases.
func (k Keeper) applyReserveDelta(ctx context.Context, pool *types.Pool, tokenIn string, amountIn, amountOut math.Int) error {
	oldK := pool.Reserve0.Mul(pool.Reserve1)

	if tokenIn == pool.Token0 {
		pool.Reserve0 = pool.Reserve0.Add(amountIn)
		pool.Reserve1 = pool.Reserve1.Sub(amountOut)
	} else {
		pool.Reserve1 = pool.Reserve1.Add(amountIn)
		pool.Reserve0 = pool.Reserve0.Sub(amountOut)
	}

	if pool.Reserve0.IsNegative() || pool.Reserve1.IsNegative() {
		return types.ErrInsufficientLiquidity.Wrapf("swap would drain pool %s", pool.PairKey())
	}

	if !pool.Xybk {
		newK := pool.Reserve0.Mul(pool.Reserve1)
		if newK.LT(oldK) {
			return types.ErrInvalidPoolState.Wrapf(
				"constant product decreased for pool %s: %s -> %s", pool.PairKey(), oldK, newK)
		}
	}

	return k.SetPool(ctx, pool)
}

func (k Keeper) emitSwapEvent(ctx context.Context, trader, recipient sdk.AccAddress, path []string, amounts []math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyPath, strings.Join(path, ",")),
			sdk.NewAttribute(types.AttributeKeyTokenIn, path[0]),
			sdk.NewAttribute(types.AttributeKeyTokenOut, path[len(path)-1]),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amounts[0].String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amounts[len(amounts)-1].String()),
		),
	)
}
