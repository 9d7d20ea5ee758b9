package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// RegisterInvariants registers the swap module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "shares-consistent", SharesConsistentInvariant(k))
}

// ReservesBackedInvariant checks that every pool's escrow account holds at
// least the recorded reserves and that no reserve is negative.
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			if pool.Reserve0.IsNegative() || pool.Reserve1.IsNegative() {
				broken = true
				msg += fmt.Sprintf("pool %s has negative reserves\n", pool.PairKey())
				return false
			}

			escrow := pool.EscrowAddress()
			bal0 := k.bankKeeper.GetBalance(ctx, escrow, pool.Token0)
			bal1 := k.bankKeeper.GetBalance(ctx, escrow, pool.Token1)
			if bal0.Amount.LT(pool.Reserve0) || bal1.Amount.LT(pool.Reserve1) {
				broken = true
				msg += fmt.Sprintf("pool %s escrow balance below recorded reserves\n", pool.PairKey())
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "reserves-backed", msg), broken
	}
}

// SharesConsistentInvariant checks that the positions of every pool sum to
// the pool's recorded share total.
func SharesConsistentInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			k.IterateLiquidity(ctx, pool.PairKey(), func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				broken = true
				msg += fmt.Sprintf("pool %s share total %s does not match position sum %s\n",
					pool.PairKey(), pool.TotalShares, sum)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "shares-consistent", msg), broken
	}
}
