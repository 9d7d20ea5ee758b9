package keeper

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// AddLiquidity deposits up to (desiredA, desiredB) into the pair's pool under
// the router lock and mints shares to the recipient. The first deposit takes
// both desired amounts and mints sqrt(a*b) shares, creating the pool if the
// pair is not yet registered. Later deposits are matched to the current
// reserve ratio; the scaled-down side must still reach its minimum.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, desiredA, desiredB, minA, minB math.Int, to sdk.AccAddress) (usedA, usedB, shares math.Int, err error) {
	err = k.WithRouterLock(ctx, func() error {
		usedA, usedB, shares, err = k.addLiquidity(ctx, provider, tokenA, tokenB, desiredA, desiredB, minA, minB, to)
		return err
	})
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	return usedA, usedB, shares, nil
}

func (k Keeper) addLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, desiredA, desiredB, minA, minB math.Int, to sdk.AccAddress) (math.Int, math.Int, math.Int, error) {
	zero := math.Int{}
	pool, err := k.GetPool(ctx, tokenA, tokenB)
	if err != nil {
		// Pool creation is permitted on the liquidity path: an unregistered
		// pair becomes a plain pool funded by this first deposit.
		pool, err = k.CreatePool(ctx, provider, tokenA, tokenB, false, math.OneInt(), math.OneInt())
		if err != nil {
			return zero, zero, zero, err
		}
	}

	usedA, usedB, err := k.matchDeposit(ctx, pool, tokenA, desiredA, desiredB, minA, minB)
	if err != nil {
		return zero, zero, zero, err
	}

	shares, err := k.sharesForDeposit(ctx, pool, tokenA, usedA, usedB)
	if err != nil {
		return zero, zero, zero, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(tokenA, usedA), sdk.NewCoin(tokenB, usedB))
	if err := k.bankKeeper.SendCoins(ctx, provider, pool.EscrowAddress(), coins); err != nil {
		return zero, zero, zero, types.ErrInvalidAmount.Wrapf("failed to collect deposit: %v", err)
	}

	amount0, amount1 := orientAmounts(pool, tokenA, usedA, usedB)
	pool.Reserve0 = pool.Reserve0.Add(amount0)
	pool.Reserve1 = pool.Reserve1.Add(amount1)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, zero, err
	}

	current := k.GetLiquidity(ctx, pool.PairKey(), to)
	k.SetLiquidity(ctx, pool.PairKey(), to, current.Add(shares))

	k.metrics.LiquidityAdded()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPair, pool.PairKey()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, usedA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, usedB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return usedA, usedB, shares, nil
}

// matchDeposit resolves the amounts actually taken from the provider. On a
// funded pool the implied counterpart of desiredA is tried first; if it
// overshoots desiredB the matching runs the other way around.
func (k Keeper) matchDeposit(ctx context.Context, pool *types.Pool, tokenA string, desiredA, desiredB, minA, minB math.Int) (math.Int, math.Int, error) {
	zero := math.Int{}
	reserveA, reserveB, err := pool.ReservesFor(tokenA)
	if err != nil {
		return zero, zero, err
	}

	if pool.TotalShares.IsZero() {
		return desiredA, desiredB, nil
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return zero, zero, types.ErrInvalidPoolState.Wrapf("funded pool %s has empty reserve", pool.PairKey())
	}

	impliedB := desiredA.Mul(reserveB).Quo(reserveA)
	if impliedB.LTE(desiredB) {
		if impliedB.LT(minB) {
			return zero, zero, types.ErrInsufficientBAmount.Wrapf("matched amount %s below minimum %s", impliedB, minB)
		}
		return desiredA, impliedB, nil
	}

	impliedA := desiredB.Mul(reserveA).Quo(reserveB)
	if impliedA.GT(desiredA) {
		return zero, zero, types.ErrInvalidAmount.Wrapf("matched amount %s exceeds desired %s", impliedA, desiredA)
	}
	if impliedA.LT(minA) {
		return zero, zero, types.ErrInsufficientAAmount.Wrapf("matched amount %s below minimum %s", impliedA, minA)
	}
	return impliedA, desiredB, nil
}

// sharesForDeposit computes the shares minted for a matched deposit. The
// first deposit mints the geometric mean of the amounts; later deposits mint
// the proportional minimum over both sides so neither side can be inflated.
func (k Keeper) sharesForDeposit(ctx context.Context, pool *types.Pool, tokenA string, usedA, usedB math.Int) (math.Int, error) {
	if pool.TotalShares.IsZero() {
		product := new(big.Int).Mul(usedA.BigInt(), usedB.BigInt())
		shares := math.NewIntFromBigInt(new(big.Int).Sqrt(product))

		params, err := k.GetParams(ctx)
		if err != nil {
			return math.Int{}, err
		}
		if shares.LT(params.MinLiquidity) {
			return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
				"initial shares %s below minimum %s", shares, params.MinLiquidity)
		}
		return shares, nil
	}

	amount0, amount1 := orientAmounts(pool, tokenA, usedA, usedB)
	shares0 := amount0.Mul(pool.TotalShares).Quo(pool.Reserve0)
	shares1 := amount1.Mul(pool.TotalShares).Quo(pool.Reserve1)
	shares := math.MinInt(shares0, shares1)
	if !shares.IsPositive() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("deposit too small to mint shares")
	}
	return shares, nil
}

// RemoveLiquidity burns shares under the router lock and pays out the
// proportional reserves, each side checked against its minimum.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, shares, minA, minB math.Int, to sdk.AccAddress) (amountA, amountB math.Int, err error) {
	err = k.WithRouterLock(ctx, func() error {
		amountA, amountB, err = k.removeLiquidity(ctx, provider, tokenA, tokenB, shares, minA, minB, to)
		return err
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountA, amountB, nil
}

func (k Keeper) removeLiquidity(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, shares, minA, minB math.Int, to sdk.AccAddress) (math.Int, math.Int, error) {
	zero := math.Int{}
	pool, err := k.GetPool(ctx, tokenA, tokenB)
	if err != nil {
		return zero, zero, err
	}

	held := k.GetLiquidity(ctx, pool.PairKey(), provider)
	if held.LT(shares) {
		return zero, zero, types.ErrInsufficientShares.Wrapf("provider holds %s, requested %s", held, shares)
	}

	reserveA, reserveB, err := pool.ReservesFor(tokenA)
	if err != nil {
		return zero, zero, err
	}

	amountA := shares.Mul(reserveA).Quo(pool.TotalShares)
	amountB := shares.Mul(reserveB).Quo(pool.TotalShares)
	if amountA.LT(minA) {
		return zero, zero, types.ErrInsufficientAAmount.Wrapf("withdrawal %s below minimum %s", amountA, minA)
	}
	if amountB.LT(minB) {
		return zero, zero, types.ErrInsufficientBAmount.Wrapf("withdrawal %s below minimum %s", amountB, minB)
	}
	if !amountA.IsPositive() && !amountB.IsPositive() {
		return zero, zero, types.ErrInsufficientShares.Wrap("shares too small to withdraw anything")
	}

	coins := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, pool.EscrowAddress(), to, coins); err != nil {
		return zero, zero, types.ErrInsufficientLiquidity.Wrapf("failed to pay out withdrawal: %v", err)
	}

	amount0, amount1 := orientAmounts(pool, tokenA, amountA, amountB)
	pool.Reserve0 = pool.Reserve0.Sub(amount0)
	pool.Reserve1 = pool.Reserve1.Sub(amount1)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}

	k.SetLiquidity(ctx, pool.PairKey(), provider, held.Sub(shares))

	k.metrics.LiquidityRemoved()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPair, pool.PairKey()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return amountA, amountB, nil
}

// RemoveLiquidityWithPermit verifies an off-chain share-spending permit and
// then removes liquidity exactly as RemoveLiquidity does.
func (k Keeper) RemoveLiquidityWithPermit(ctx context.Context, provider sdk.AccAddress, tokenA, tokenB string, shares, minA, minB math.Int, to sdk.AccAddress, approveMax bool, deadline int64, signature []byte) (math.Int, math.Int, error) {
	if k.permitKeeper == nil {
		return math.Int{}, math.Int{}, types.ErrInvalidPermit.Wrap("permit verification unavailable")
	}
	pair := types.PairKey(tokenA, tokenB)
	if err := k.permitKeeper.VerifyPermit(ctx, provider, pair, shares, approveMax, deadline, signature); err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidPermit.Wrapf("permit rejected: %v", err)
	}
	return k.RemoveLiquidity(ctx, provider, tokenA, tokenB, shares, minA, minB, to)
}

// orientAmounts maps caller-order amounts onto the pool's canonical order.
func orientAmounts(pool *types.Pool, tokenA string, amountA, amountB math.Int) (amount0, amount1 math.Int) {
	if tokenA == pool.Token0 {
		return amountA, amountB
	}
	return amountB, amountA
}

// GetLiquidity returns a provider's share balance in a pool, zero if none.
func (k Keeper) GetLiquidity(ctx context.Context, pair string, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityShareKey(pair, provider))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return shares
}

// SetLiquidity stores a provider's share balance, deleting the record when it
// reaches zero.
func (k Keeper) SetLiquidity(ctx context.Context, pair string, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := LiquidityShareKey(pair, provider)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(fmt.Errorf("SetLiquidity: marshal shares: %w", err))
	}
	store.Set(key, bz)
}

// IterateLiquidity iterates all positions in a pool.
func (k Keeper) IterateLiquidity(ctx context.Context, pair string, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) {
	store := k.getStore(ctx)
	prefix := LiquiditySharePrefixForPair(pair)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			continue
		}
		if cb(provider, shares) {
			break
		}
	}
}
