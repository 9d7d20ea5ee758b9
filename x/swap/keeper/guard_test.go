package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	keepertest "github.com/Impossible-Finance/impossible-swap-core/testutil/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

func TestWithRouterLock(t *testing.T) {
	t.Run("runs the callback and releases", func(t *testing.T) {
		k, ctx, _ := keepertest.SwapKeeper(t)

		ran := false
		err := k.WithRouterLock(ctx, func() error {
			ran = true
			return nil
		})
		require.NoError(t, err)
		require.True(t, ran)

		// Released: a second acquisition succeeds.
		err = k.WithRouterLock(ctx, func() error { return nil })
		require.NoError(t, err)
	})

	t.Run("nested entry is rejected", func(t *testing.T) {
		k, ctx, _ := keepertest.SwapKeeper(t)

		err := k.WithRouterLock(ctx, func() error {
			return k.WithRouterLock(ctx, func() error {
				t.Fatal("nested callback must not run")
				return nil
			})
		})
		require.ErrorIs(t, err, types.ErrLocked)
	})

	t.Run("releases after a failed callback", func(t *testing.T) {
		k, ctx, _ := keepertest.SwapKeeper(t)

		err := k.WithRouterLock(ctx, func() error {
			return types.ErrInvalidAmount.Wrap("boom")
		})
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		err = k.WithRouterLock(ctx, func() error { return nil })
		require.NoError(t, err)
	})

	t.Run("releases after a panicking callback", func(t *testing.T) {
		k, ctx, _ := keepertest.SwapKeeper(t)

		require.Panics(t, func() {
			_ = k.WithRouterLock(ctx, func() error { panic("boom") })
		})

		err := k.WithRouterLock(ctx, func() error { return nil })
		require.NoError(t, err)
	})
}

func TestCheckDeadline(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)

	now := time.Unix(1_700_000_000, 0)
	ctx = ctx.WithBlockTime(now)

	require.NoError(t, k.CheckDeadline(ctx, now.Unix()))
	require.NoError(t, k.CheckDeadline(ctx, now.Unix()+60))

	err := k.CheckDeadline(ctx, now.Unix()-1)
	require.ErrorIs(t, err, types.ErrExpired)
}
