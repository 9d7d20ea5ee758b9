package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

var (
	// PoolKeyPrefix is the prefix for pool records keyed by canonical pair
	PoolKeyPrefix = []byte{0x01}

	// LiquidityShareKeyPrefix is the prefix for provider share balances
	LiquidityShareKeyPrefix = []byte{0x02}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03}

	// RouterLockKey is the flag key for the router-wide reentrancy lock
	RouterLockKey = []byte{0x04}
)

// PoolKey returns the store key for a pool by its token pair, in either order
func PoolKey(tokenA, tokenB string) []byte {
	return append(PoolKeyPrefix, []byte(types.PairKey(tokenA, tokenB))...)
}

// LiquidityShareKey returns the store key for a provider's shares in a pool
func LiquidityShareKey(pair string, provider sdk.AccAddress) []byte {
	key := append(LiquidityShareKeyPrefix, []byte(pair)...)
	key = append(key, 0x00)
	return append(key, provider.Bytes()...)
}

// LiquiditySharePrefixForPair returns the prefix for all positions in a pool
func LiquiditySharePrefixForPair(pair string) []byte {
	key := append(LiquidityShareKeyPrefix, []byte(pair)...)
	return append(key, 0x00)
}
