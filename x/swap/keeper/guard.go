package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// WithRouterLock executes fn under the router-wide reentrancy lock. The lock
// is a single flag in the KVStore so it persists across context boundaries;
// a second entry while it is held fails with ErrLocked. The deferred release
// runs on every exit path, including panics.
func (k Keeper) WithRouterLock(ctx context.Context, fn func() error) error {
	if err := k.acquireRouterLock(ctx); err != nil {
		return err
	}
	defer k.releaseRouterLock(ctx)

	return fn()
}

// acquireRouterLock attempts to acquire the router lock from the KVStore
func (k Keeper) acquireRouterLock(ctx context.Context) error {
	store := k.getStore(ctx)
	if store.Has(RouterLockKey) {
		return types.ErrLocked.Wrap("router operation already in progress")
	}
	store.Set(RouterLockKey, []byte{0x01})
	return nil
}

// releaseRouterLock releases the router lock from the KVStore
func (k Keeper) releaseRouterLock(ctx context.Context) {
	store := k.getStore(ctx)
	store.Delete(RouterLockKey)
}

// CheckDeadline fails with ErrExpired once block time passes the unix-seconds
// deadline. Runs before any other validation in state-mutating handlers.
func (k Keeper) CheckDeadline(ctx context.Context, deadline int64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Unix() > deadline {
		return types.ErrExpired.Wrapf("deadline %d passed at block time %d", deadline, sdkCtx.BlockTime().Unix())
	}
	return nil
}
