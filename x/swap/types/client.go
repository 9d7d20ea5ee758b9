package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	Liquidity(ctx context.Context, in *QueryLiquidityRequest, opts ...grpc.CallOption) (*QueryLiquidityResponse, error)
	QuoteExactIn(ctx context.Context, in *QueryQuoteExactInRequest, opts ...grpc.CallOption) (*QueryQuoteExactInResponse, error)
	QuoteExactOut(ctx context.Context, in *QueryQuoteExactOutRequest, opts ...grpc.CallOption) (*QueryQuoteExactOutResponse, error)
	AmountOut(ctx context.Context, in *QueryAmountOutRequest, opts ...grpc.CallOption) (*QueryAmountOutResponse, error)
	AmountIn(ctx context.Context, in *QueryAmountInRequest, opts ...grpc.CallOption) (*QueryAmountInResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/Pools", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Liquidity(ctx context.Context, in *QueryLiquidityRequest, opts ...grpc.CallOption) (*QueryLiquidityResponse, error) {
	out := new(QueryLiquidityResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/Liquidity", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteExactIn(ctx context.Context, in *QueryQuoteExactInRequest, opts ...grpc.CallOption) (*QueryQuoteExactInResponse, error) {
	out := new(QueryQuoteExactInResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/QuoteExactIn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteExactOut(ctx context.Context, in *QueryQuoteExactOutRequest, opts ...grpc.CallOption) (*QueryQuoteExactOutResponse, error) {
	out := new(QueryQuoteExactOutResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/QuoteExactOut", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) AmountOut(ctx context.Context, in *QueryAmountOutRequest, opts ...grpc.CallOption) (*QueryAmountOutResponse, error) {
	out := new(QueryAmountOutResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/AmountOut", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) AmountIn(ctx context.Context, in *QueryAmountInRequest, opts ...grpc.CallOption) (*QueryAmountInResponse, error) {
	out := new(QueryAmountInResponse)
	err := c.cc.Invoke(ctx, "/impossible.swap.v1.Query/AmountIn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
