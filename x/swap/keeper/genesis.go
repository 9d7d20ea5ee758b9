package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// InitGenesis initializes the swap module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for i := range genState.Pools {
		if err := k.SetPool(ctx, &genState.Pools[i]); err != nil {
			return err
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("InitGenesis: position provider: %w", err)
		}
		k.SetLiquidity(ctx, pos.Pair, provider, pos.Shares)
	}

	return nil
}

// ExportGenesis exports the swap module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.GenesisState{
		Params:    params,
		Pools:     []types.Pool{},
		Positions: []types.LiquidityPosition{},
	}

	err = k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		k.IterateLiquidity(ctx, pool.PairKey(), func(provider sdk.AccAddress, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.LiquidityPosition{
				Pair:     pool.PairKey(),
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		return false
	})
	if err != nil {
		return nil, err
	}

	return &genState, nil
}
