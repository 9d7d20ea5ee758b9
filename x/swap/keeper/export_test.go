package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ExecuteSwapPath exposes executeSwapPath so the external test package can
// exercise hop settlement in isolation from input delivery.
func (k Keeper) ExecuteSwapPath(ctx context.Context, amounts []math.Int, path []string, recipient sdk.AccAddress) error {
	return k.executeSwapPath(ctx, amounts, path, recipient)
}
