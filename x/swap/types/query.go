package types

import (
	"cosmossdk.io/math"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest looks up a pool by its token pair in either order.
type QueryPoolRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPoolResponse is the response type for the Query/Pool RPC method.
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest is the request type for the Query/Pools RPC method.
type QueryPoolsRequest struct{}

// QueryPoolsResponse is the response type for the Query/Pools RPC method.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QueryLiquidityRequest looks up a provider's share position in a pool.
type QueryLiquidityRequest struct {
	TokenA   string `json:"token_a"`
	TokenB   string `json:"token_b"`
	Provider string `json:"provider"`
}

// QueryLiquidityResponse is the response type for the Query/Liquidity RPC method.
type QueryLiquidityResponse struct {
	Shares      math.Int `json:"shares"`
	TotalShares math.Int `json:"total_shares"`
}

// QueryQuoteExactInRequest prices a fixed input along a path without
// executing it.
type QueryQuoteExactInRequest struct {
	AmountIn math.Int `json:"amount_in"`
	Path     []string `json:"path"`
}

// QueryQuoteExactInResponse carries the per-hop amount vector; the final
// element is the deliverable output.
type QueryQuoteExactInResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// QueryQuoteExactOutRequest prices a fixed output along a path without
// executing it.
type QueryQuoteExactOutRequest struct {
	AmountOut math.Int `json:"amount_out"`
	Path      []string `json:"path"`
}

// QueryQuoteExactOutResponse carries the per-hop amount vector; the first
// element is the required input.
type QueryQuoteExactOutResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// QueryAmountOutRequest is the raw single-hop quote against explicit reserves.
type QueryAmountOutRequest struct {
	AmountIn   math.Int `json:"amount_in"`
	ReserveIn  math.Int `json:"reserve_in"`
	ReserveOut math.Int `json:"reserve_out"`
}

// QueryAmountOutResponse is the response type for the Query/AmountOut RPC method.
type QueryAmountOutResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// QueryAmountInRequest is the raw single-hop inverse quote against explicit
// reserves.
type QueryAmountInRequest struct {
	AmountOut  math.Int `json:"amount_out"`
	ReserveIn  math.Int `json:"reserve_in"`
	ReserveOut math.Int `json:"reserve_out"`
}

// QueryAmountInResponse is the response type for the Query/AmountIn RPC method.
type QueryAmountInResponse struct {
	AmountIn math.Int `json:"amount_in"`
}
