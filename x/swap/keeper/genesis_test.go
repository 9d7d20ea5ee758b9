package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/Impossible-Finance/impossible-swap-core/testutil/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx, bank := keepertest.SwapKeeper(t)

	fundPool(t, k, ctx, bank, "uusdc", "uusdt", 1_000_000, 2_000_000)
	fundPool(t, k, ctx, bank, "uatom", "uusdc", 3_000_000, 1_500_000)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Pools, 2)
	require.Len(t, exported.Positions, 2)
	require.NoError(t, exported.Validate())

	// A fresh keeper initialized from the export carries the same state.
	k2, ctx2, _ := keepertest.SwapKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	pool, err := k2.GetPool(ctx2, "uusdc", "uusdt")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.Reserve0)
	require.Equal(t, math.NewInt(2_000_000), pool.Reserve1)
	require.Equal(t, pool.TotalShares, k2.GetLiquidity(ctx2, pool.PairKey(), providerAddr))
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, ctx, _ := keepertest.SwapKeeper(t)

	pool := types.NewPool("uusdc", "uusdt", creatorAddr.String())
	pool.Reserve0 = math.NewInt(1_000)
	pool.Reserve1 = math.NewInt(1_000)
	pool.TotalShares = math.NewInt(1_000)

	// Positions that do not sum to the pool's share total.
	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Pools:  []types.Pool{pool},
		Positions: []types.LiquidityPosition{
			{Pair: pool.PairKey(), Provider: providerAddr.String(), Shares: math.NewInt(400)},
		},
	}
	require.Error(t, k.InitGenesis(ctx, genState))
}

func TestInvariants(t *testing.T) {
	t.Run("healthy state holds", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundPool(t, k, ctx, bank, "uusdc", "uusdt", 1_000_000, 1_000_000)

		_, broken := keeper.ReservesBackedInvariant(*k)(ctx)
		require.False(t, broken)
		_, broken = keeper.SharesConsistentInvariant(*k)(ctx)
		require.False(t, broken)
	})

	t.Run("overstated reserves break the backing invariant", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundPool(t, k, ctx, bank, "uusdc", "uusdt", 1_000_000, 1_000_000)

		pool, err := k.GetPool(ctx, "uusdc", "uusdt")
		require.NoError(t, err)
		pool.Reserve0 = pool.Reserve0.Add(math.OneInt())
		require.NoError(t, k.SetPool(ctx, pool))

		msg, broken := keeper.ReservesBackedInvariant(*k)(ctx)
		require.True(t, broken, msg)
	})

	t.Run("orphaned shares break the share invariant", func(t *testing.T) {
		k, ctx, bank := keepertest.SwapKeeper(t)
		fundPool(t, k, ctx, bank, "uusdc", "uusdt", 1_000_000, 1_000_000)

		k.SetLiquidity(ctx, types.PairKey("uusdc", "uusdt"), otherAddr, math.NewInt(123))

		msg, broken := keeper.SharesConsistentInvariant(*k)(ctx)
		require.True(t, broken, msg)
	})
}
