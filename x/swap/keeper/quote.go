package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// validatePathLength checks structural path validity against module params.
func (k Keeper) validatePathLength(ctx context.Context, path []string) error {
	if err := types.ValidatePath(path); err != nil {
		return err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if uint32(len(path)) > params.MaxPathLength {
		return types.ErrInvalidPath.Wrapf("path length %d exceeds maximum %d", len(path), params.MaxPathLength)
	}
	return nil
}

// QuoteExactIn walks the path forward from a fixed input. The returned vector
// has one amount per path token; amounts[0] is the input and the final
// element the deliverable output. Read-only.
func (k Keeper) QuoteExactIn(ctx context.Context, path []string, amountIn math.Int) ([]math.Int, error) {
	if err := k.validatePathLength(ctx, path); err != nil {
		return nil, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	amounts := make([]math.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		pool, err := k.GetPool(ctx, path[i], path[i+1])
		if err != nil {
			return nil, types.ErrInsufficientLiquidity.Wrapf("no pool for hop %s -> %s: %s", path[i], path[i+1], err)
		}
		out, err := pool.AmountOut(path[i], amounts[i])
		if err != nil {
			return nil, err
		}
		amounts[i+1] = out
	}
	return amounts, nil
}

// QuoteExactOut walks the path backward from a fixed output. amounts[0] is
// the required input, rounded up per hop so the delivered output never falls
// short. Read-only.
func (k Keeper) QuoteExactOut(ctx context.Context, path []string, amountOut math.Int) ([]math.Int, error) {
	if err := k.validatePathLength(ctx, path); err != nil {
		return nil, err
	}
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("output amount must be positive")
	}

	amounts := make([]math.Int, len(path))
	amounts[len(path)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		pool, err := k.GetPool(ctx, path[i-1], path[i])
		if err != nil {
			return nil, types.ErrInsufficientLiquidity.Wrapf("no pool for hop %s -> %s: %s", path[i-1], path[i], err)
		}
		in, err := pool.AmountIn(path[i], amounts[i])
		if err != nil {
			return nil, err
		}
		amounts[i-1] = in
	}
	return amounts, nil
}
