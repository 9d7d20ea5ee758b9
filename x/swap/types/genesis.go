package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisState holds the module's full exportable state.
type GenesisState struct {
	Params    Params              `json:"params"`
	Pools     []Pool              `json:"pools"`
	Positions []LiquidityPosition `json:"positions"`
}

// DefaultGenesis returns the default genesis state for the swap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Pools:     []Pool{},
		Positions: []LiquidityPosition{},
	}
}

// Validate ensures the genesis state is well-formed: valid params, valid
// canonically-ordered pools with no duplicate pairs, and positions that
// reference existing pools and sum to each pool's share total.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	shareTotals := make(map[string]sdkmath.Int, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		pair := pool.PairKey()
		if _, ok := shareTotals[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		shareTotals[pair] = pool.TotalShares
	}

	summed := make(map[string]sdkmath.Int, len(shareTotals))
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return err
		}
		if _, ok := shareTotals[pos.Pair]; !ok {
			return fmt.Errorf("position references unknown pool %s", pos.Pair)
		}
		sum, ok := summed[pos.Pair]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		summed[pos.Pair] = sum.Add(pos.Shares)
	}

	for pair, total := range shareTotals {
		sum, ok := summed[pair]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(total) {
			return fmt.Errorf("pool %s share total %s does not match position sum %s", pair, total, sum)
		}
	}

	return nil
}
