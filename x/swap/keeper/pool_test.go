package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/Impossible-Finance/impossible-swap-core/testutil/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

var (
	creatorAddr  = sdk.AccAddress("creator_____________")
	providerAddr = sdk.AccAddress("provider____________")
	traderAddr   = sdk.AccAddress("trader______________")
	otherAddr    = sdk.AccAddress("other_______________")
)

func TestCreatePool(t *testing.T) {
	one := math.OneInt()

	tests := []struct {
		name   string
		tokenA string
		tokenB string
		xybk   bool
		boost0 math.Int
		boost1 math.Int
		expErr error
	}{
		{
			name:   "plain pool",
			tokenA: "uusdc",
			tokenB: "uusdt",
			boost0: one,
			boost1: one,
		},
		{
			name:   "xybk pool",
			tokenA: "uusdc",
			tokenB: "uusdt",
			xybk:   true,
			boost0: math.NewInt(10),
			boost1: math.NewInt(20),
		},
		{
			name:   "identical tokens",
			tokenA: "uusdc",
			tokenB: "uusdc",
			boost0: one,
			boost1: one,
			expErr: types.ErrIdenticalTokens,
		},
		{
			name:   "empty denom",
			tokenA: "",
			tokenB: "uusdt",
			boost0: one,
			boost1: one,
			expErr: types.ErrInvalidPath,
		},
		{
			name:   "plain pool with boost",
			tokenA: "uusdc",
			tokenB: "uusdt",
			boost0: math.NewInt(2),
			boost1: one,
			expErr: types.ErrInvalidBoost,
		},
		{
			name:   "boost below one",
			tokenA: "uusdc",
			tokenB: "uusdt",
			xybk:   true,
			boost0: math.ZeroInt(),
			boost1: one,
			expErr: types.ErrInvalidBoost,
		},
		{
			name:   "boost above maximum",
			tokenA: "uusdc",
			tokenB: "uusdt",
			xybk:   true,
			boost0: math.NewInt(1001),
			boost1: one,
			expErr: types.ErrInvalidBoost,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, ctx, _ := keepertest.SwapKeeper(t)

			pool, err := k.CreatePool(ctx, creatorAddr, tc.tokenA, tc.tokenB, tc.xybk, tc.boost0, tc.boost1)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, pool)
			require.Equal(t, types.PairKey(tc.tokenA, tc.tokenB), pool.PairKey())
			require.Equal(t, creatorAddr.String(), pool.Creator)
			require.True(t, pool.Reserve0.IsZero())
			require.True(t, pool.Reserve1.IsZero())
			require.Equal(t, types.TradeStateSellAll, pool.TradeState)

			stored, err := k.GetPool(ctx, tc.tokenB, tc.tokenA)
			require.NoError(t, err)
			require.Equal(t, pool, stored)
		})
	}
}

func TestCreatePoolCanonicalizesBoosts(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)

	// uusdt > uusdc, so the caller's order is reversed and the boosts must
	// follow their tokens onto the canonical sides.
	pool, err := k.CreatePool(ctx, creatorAddr, "uusdt", "uusdc", true, math.NewInt(7), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, "uusdc", pool.Token0)
	require.Equal(t, "uusdt", pool.Token1)
	require.Equal(t, math.NewInt(3), pool.Boost0)
	require.Equal(t, math.NewInt(7), pool.Boost1)
}

func TestCreatePoolDuplicate(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)
	one := math.OneInt()

	_, err := k.CreatePool(ctx, creatorAddr, "uusdc", "uusdt", false, one, one)
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, creatorAddr, "uusdt", "uusdc", false, one, one)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestGetPoolNotFound(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)

	_, err := k.GetPool(ctx, "uusdc", "uusdt")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestSetTradeState(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)
	one := math.OneInt()

	_, err := k.CreatePool(ctx, creatorAddr, "uusdc", "uusdt", false, one, one)
	require.NoError(t, err)

	t.Run("creator may change the gate", func(t *testing.T) {
		err := k.SetTradeState(ctx, creatorAddr, "uusdc", "uusdt", types.TradeStateSellNone)
		require.NoError(t, err)

		pool, err := k.GetPool(ctx, "uusdc", "uusdt")
		require.NoError(t, err)
		require.Equal(t, types.TradeStateSellNone, pool.TradeState)
	})

	t.Run("non-creator is rejected", func(t *testing.T) {
		err := k.SetTradeState(ctx, otherAddr, "uusdc", "uusdt", types.TradeStateSellAll)
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		err := k.SetTradeState(ctx, creatorAddr, "uusdc", "uusdt", types.TradeState(42))
		require.ErrorIs(t, err, types.ErrInvalidPoolState)
	})

	t.Run("missing pool", func(t *testing.T) {
		err := k.SetTradeState(ctx, creatorAddr, "uusdc", "uatom", types.TradeStateSellAll)
		require.ErrorIs(t, err, types.ErrPoolNotFound)
	})
}

func TestGetAllPools(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)
	one := math.OneInt()

	pairs := [][2]string{{"uusdc", "uusdt"}, {"uatom", "uusdc"}, {"uatom", "uusdt"}}
	for _, pair := range pairs {
		_, err := k.CreatePool(ctx, creatorAddr, pair[0], pair[1], false, one, one)
		require.NoError(t, err)
	}

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, len(pairs))

	// Iteration is ordered by pair key.
	for i := 1; i < len(pools); i++ {
		require.Less(t, pools[i-1].PairKey(), pools[i].PairKey())
	}
}
