package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// MaxIterationLimit is the maximum number of items to return in unbounded queries
const MaxIterationLimit = 100

// CreatePool registers a pool for a token pair. The pool starts empty; the
// first AddLiquidity deposit funds it. Boosts above 1 require xybk mode and
// are capped by Params.MaxBoost.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, xybk bool, boost0, boost1 math.Int) (*types.Pool, error) {
	if tokenA == tokenB {
		return nil, types.ErrIdenticalTokens.Wrap("cannot create pool with identical tokens")
	}
	if tokenA == "" || tokenB == "" {
		return nil, types.ErrInvalidPath.Wrap("token denoms cannot be empty")
	}

	if existing, err := k.GetPoolByTokens(ctx, tokenA, tokenB); err == nil && existing != nil {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pool already exists for pair %s", types.PairKey(tokenA, tokenB))
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get params: %w", err)
	}

	if boost0.IsNil() || boost1.IsNil() || boost0.LT(math.OneInt()) || boost1.LT(math.OneInt()) {
		return nil, types.ErrInvalidBoost.Wrap("boosts must be >= 1")
	}
	if boost0.GT(params.MaxBoost) || boost1.GT(params.MaxBoost) {
		return nil, types.ErrInvalidBoost.Wrapf("boost exceeds maximum %s", params.MaxBoost)
	}
	if !xybk && (!boost0.Equal(math.OneInt()) || !boost1.Equal(math.OneInt())) {
		return nil, types.ErrInvalidBoost.Wrap("plain pool cannot carry boosts")
	}

	pool := types.NewPool(tokenA, tokenB, creator.String())
	pool.Xybk = xybk
	pool.Boost0 = boost0
	pool.Boost1 = boost1
	// The message declares the boosts against the caller's token order;
	// NewPool canonicalizes the pair, so swap them when that order was
	// reversed.
	if tokenA > tokenB {
		pool.Boost0, pool.Boost1 = boost1, boost0
	}

	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate pool state: %w", err)
	}

	if err := k.SetPool(ctx, &pool); err != nil {
		return nil, fmt.Errorf("CreatePool: save pool: %w", err)
	}

	k.metrics.PoolCreated()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPair, pool.PairKey()),
			sdk.NewAttribute(types.AttributeKeyTradeState, pool.TradeState.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return &pool, nil
}

// GetPool retrieves a pool by its token pair in either order.
// Returns ErrPoolNotFound if no pool exists for the pair.
func (k Keeper) GetPool(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for pair %s", types.PairKey(tokenA, tokenB))
	}

	var pool types.Pool
	// Use encoding/json for non-protobuf types
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %s: %w", types.PairKey(tokenA, tokenB), err)
	}
	return &pool, nil
}

// GetPoolByTokens is an alias kept for external consumers; identical to GetPool.
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	return k.GetPool(ctx, tokenA, tokenB)
}

// SetPool saves a pool to the store under its canonical pair key
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	// Use encoding/json for non-protobuf types
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %s: %w", pool.PairKey(), err)
	}
	store.Set(PoolKey(pool.Token0, pool.Token1), bz)
	return nil
}

// SetTradeState updates a pool's trade-direction gate. Only the pool creator
// may change it.
func (k Keeper) SetTradeState(ctx context.Context, caller sdk.AccAddress, tokenA, tokenB string, state types.TradeState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	pool, err := k.GetPool(ctx, tokenA, tokenB)
	if err != nil {
		return err
	}
	if pool.Creator != caller.String() {
		return types.ErrUnauthorized.Wrapf("only pool creator may set trade state for %s", pool.PairKey())
	}

	pool.TradeState = state
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTradeStateSet,
			sdk.NewAttribute(types.AttributeKeyPair, pool.PairKey()),
			sdk.NewAttribute(types.AttributeKeyTradeState, state.String()),
		),
	)
	return nil
}

// IteratePools iterates over all pools in pair-key order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools with a maximum limit to bound iteration
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0, MaxIterationLimit)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if len(pools) >= MaxIterationLimit {
			return true
		}
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
