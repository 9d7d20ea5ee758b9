package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	swaptypes "github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// Keeper of the swap store
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          codec.BinaryCodec
	bankKeeper   swaptypes.BankKeeper
	permitKeeper swaptypes.PermitKeeper
	metrics      *RouterMetrics
}

// NewKeeper creates a new swap Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper swaptypes.BankKeeper,
	permitKeeper swaptypes.PermitKeeper,
) *Keeper {
	return &Keeper{
		storeKey:     key,
		cdc:          cdc,
		bankKeeper:   bankKeeper,
		permitKeeper: permitKeeper,
	}
}

// SetMetrics attaches prometheus metrics to the keeper. All metric hooks are
// nil-safe, so a keeper without metrics is fully functional.
func (k *Keeper) SetMetrics(m *RouterMetrics) {
	k.metrics = m
}

// getStore returns the KVStore for the swap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns the module-tagged logger from the context.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+swaptypes.ModuleName)
}
