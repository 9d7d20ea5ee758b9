package types

import (
	"context"

	"cosmossdk.io/math"
	"google.golang.org/grpc"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	AddLiquidityNative(context.Context, *MsgAddLiquidityNative) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	RemoveLiquidityWithPermit(context.Context, *MsgRemoveLiquidityWithPermit) (*MsgRemoveLiquidityResponse, error)
	SwapExactIn(context.Context, *MsgSwapExactIn) (*MsgSwapResponse, error)
	SwapExactOut(context.Context, *MsgSwapExactOut) (*MsgSwapResponse, error)
	SwapNativeExactIn(context.Context, *MsgSwapNativeExactIn) (*MsgSwapResponse, error)
	SwapExactInForNative(context.Context, *MsgSwapExactInForNative) (*MsgSwapResponse, error)
	SwapNativeForExactOut(context.Context, *MsgSwapNativeForExactOut) (*MsgSwapResponse, error)
	SetTradeState(context.Context, *MsgSetTradeState) (*MsgSetTradeStateResponse, error)
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	Pair string `json:"pair"`
}

// MsgAddLiquidityResponse defines the response for the liquidity deposits
type MsgAddLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	Shares  math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for the liquidity withdrawals
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for all swap entry points. Amounts
// holds the full per-hop vector; Amounts[0] is the input and the final
// element the delivered output.
type MsgSwapResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// MsgSetTradeStateResponse defines the response for SetTradeState
type MsgSetTradeStateResponse struct{}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "impossible.swap.v1.Msg",
	HandlerType: (*MsgServer)(nil),
}
