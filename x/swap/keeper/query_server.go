package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// QueryServer implements the module's read-only query surface. Quotes are
// pure: they never mutate state and bypass the router lock and deadline
// guards.
type QueryServer struct {
	Keeper
}

// NewQueryServerImpl returns a query server over the keeper
func NewQueryServerImpl(keeper Keeper) QueryServer {
	return QueryServer{Keeper: keeper}
}

// Params returns the current module parameters
func (qs QueryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	params, err := qs.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns the pool for a token pair in either order
func (qs QueryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	pool, err := qs.GetPool(ctx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// Pools returns all registered pools
func (qs QueryServer) Pools(ctx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	pools, err := qs.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// Liquidity returns a provider's share position in a pool
func (qs QueryServer) Liquidity(ctx context.Context, req *types.QueryLiquidityRequest) (*types.QueryLiquidityResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}
	pool, err := qs.GetPool(ctx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	shares := qs.GetLiquidity(ctx, pool.PairKey(), provider)
	return &types.QueryLiquidityResponse{
		Shares:      shares,
		TotalShares: pool.TotalShares,
	}, nil
}

// QuoteExactIn prices a fixed input along a path without executing it
func (qs QueryServer) QuoteExactIn(ctx context.Context, req *types.QueryQuoteExactInRequest) (*types.QueryQuoteExactInResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	amounts, err := qs.Keeper.QuoteExactIn(ctx, req.Path, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteExactInResponse{Amounts: amounts}, nil
}

// QuoteExactOut prices a fixed output along a path without executing it
func (qs QueryServer) QuoteExactOut(ctx context.Context, req *types.QueryQuoteExactOutRequest) (*types.QueryQuoteExactOutResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	amounts, err := qs.Keeper.QuoteExactOut(ctx, req.Path, req.AmountOut)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteExactOutResponse{Amounts: amounts}, nil
}

// AmountOut quotes a single hop against explicit reserves
func (qs QueryServer) AmountOut(ctx context.Context, req *types.QueryAmountOutRequest) (*types.QueryAmountOutResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	out, err := types.GetAmountOut(req.AmountIn, req.ReserveIn, req.ReserveOut)
	if err != nil {
		return nil, err
	}
	return &types.QueryAmountOutResponse{AmountOut: out}, nil
}

// AmountIn quotes the inverse of a single hop against explicit reserves
func (qs QueryServer) AmountIn(ctx context.Context, req *types.QueryAmountInRequest) (*types.QueryAmountInResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	in, err := types.GetAmountIn(req.AmountOut, req.ReserveIn, req.ReserveOut)
	if err != nil {
		return nil, err
	}
	return &types.QueryAmountInResponse{AmountIn: in}, nil
}
