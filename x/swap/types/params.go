package types

import (
	"cosmossdk.io/math"
)

// Default module parameters.
var (
	DefaultMaxPathLength      = uint32(5)
	DefaultMinLiquidity       = math.NewInt(1000)
	DefaultMaxBoost           = math.NewInt(1000)
	DefaultNativeDenom        = "upaw"
	DefaultWrappedNativeDenom = "uwpaw"
)

// Params holds the module's governance-set configuration.
type Params struct {
	// MaxPathLength bounds the number of tokens in a swap path.
	MaxPathLength uint32 `json:"max_path_length"`
	// MinLiquidity is the smallest share total a first deposit may mint.
	MinLiquidity math.Int `json:"min_liquidity"`
	// MaxBoost caps the xybk boost coefficient on either side.
	MaxBoost math.Int `json:"max_boost"`
	// NativeDenom is the chain's native staking denom accepted by the
	// native entry points.
	NativeDenom string `json:"native_denom"`
	// WrappedNativeDenom is the 1:1 wrapped form the pools trade.
	WrappedNativeDenom string `json:"wrapped_native_denom"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		MaxPathLength:      DefaultMaxPathLength,
		MinLiquidity:       DefaultMinLiquidity,
		MaxBoost:           DefaultMaxBoost,
		NativeDenom:        DefaultNativeDenom,
		WrappedNativeDenom: DefaultWrappedNativeDenom,
	}
}

// Validate performs basic validation of the parameter set.
func (p Params) Validate() error {
	if p.MaxPathLength < 2 {
		return ErrInvalidPath.Wrapf("max path length %d below minimum 2", p.MaxPathLength)
	}
	if p.MinLiquidity.IsNil() || !p.MinLiquidity.IsPositive() {
		return ErrInvalidAmount.Wrap("min liquidity must be positive")
	}
	if p.MaxBoost.IsNil() || p.MaxBoost.LT(math.OneInt()) {
		return ErrInvalidBoost.Wrap("max boost must be >= 1")
	}
	if p.NativeDenom == "" || p.WrappedNativeDenom == "" {
		return ErrInvalidPoolState.Wrap("native denoms must be set")
	}
	if p.NativeDenom == p.WrappedNativeDenom {
		return ErrIdenticalTokens.Wrap("native and wrapped denoms must differ")
	}
	return nil
}
