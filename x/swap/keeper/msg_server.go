package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the registration of a new pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB, msg.Xybk, msg.Boost0, msg.Boost1)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		Pair: pool.PairKey(),
	}, nil
}

// AddLiquidity handles a two-token liquidity deposit
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid recipient address: %w", err)
	}

	usedA, usedB, shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.TokenA, msg.TokenB, msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB, to)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: usedA,
		AmountB: usedB,
		Shares:  shares,
	}, nil
}

// AddLiquidityNative handles a token-plus-native liquidity deposit
func (ms msgServer) AddLiquidityNative(goCtx context.Context, msg *types.MsgAddLiquidityNative) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidityNative: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidityNative: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidityNative: invalid recipient address: %w", err)
	}

	usedToken, usedNative, shares, err := ms.Keeper.AddLiquidityNative(goCtx, provider, msg.Token, msg.DesiredToken, msg.NativeAmount, msg.MinToken, msg.MinNative, to)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidityNative: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: usedToken,
		AmountB: usedNative,
		Shares:  shares,
	}, nil
}

// RemoveLiquidity handles a proportional liquidity withdrawal
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid recipient address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.TokenA, msg.TokenB, msg.Shares, msg.MinA, msg.MinB, to)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// RemoveLiquidityWithPermit handles a permit-authorized withdrawal
func (ms msgServer) RemoveLiquidityWithPermit(goCtx context.Context, msg *types.MsgRemoveLiquidityWithPermit) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidityWithPermit: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidityWithPermit: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidityWithPermit: invalid recipient address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidityWithPermit(goCtx, provider, msg.TokenA, msg.TokenB, msg.Shares, msg.MinA, msg.MinB, to, msg.ApproveMax, msg.Deadline, msg.PermitSignature)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidityWithPermit: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// SwapExactIn handles a fixed-input multi-hop swap
func (ms msgServer) SwapExactIn(goCtx context.Context, msg *types.MsgSwapExactIn) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactIn: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, to, err := swapAddresses(msg.Trader, msg.To)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	amounts, err := ms.Keeper.SwapExactIn(goCtx, trader, to, msg.Path, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	return &types.MsgSwapResponse{Amounts: amounts}, nil
}

// SwapExactOut handles a fixed-output multi-hop swap
func (ms msgServer) SwapExactOut(goCtx context.Context, msg *types.MsgSwapExactOut) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactOut: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, to, err := swapAddresses(msg.Trader, msg.To)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	amounts, err := ms.Keeper.SwapExactOut(goCtx, trader, to, msg.Path, msg.AmountOut, msg.MaxAmountIn)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	return &types.MsgSwapResponse{Amounts: amounts}, nil
}

// SwapNativeExactIn handles a fixed-input swap funded by native coins
func (ms msgServer) SwapNativeExactIn(goCtx context.Context, msg *types.MsgSwapNativeExactIn) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapNativeExactIn: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, to, err := swapAddresses(msg.Trader, msg.To)
	if err != nil {
		return nil, fmt.Errorf("SwapNativeExactIn: %w", err)
	}

	amounts, err := ms.Keeper.SwapNativeExactIn(goCtx, trader, to, msg.Path, msg.NativeAmount, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("SwapNativeExactIn: %w", err)
	}

	return &types.MsgSwapResponse{Amounts: amounts}, nil
}

// SwapExactInForNative handles a fixed-input swap paying out native coins
func (ms msgServer) SwapExactInForNative(goCtx context.Context, msg *types.MsgSwapExactInForNative) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactInForNative: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, to, err := swapAddresses(msg.Trader, msg.To)
	if err != nil {
		return nil, fmt.Errorf("SwapExactInForNative: %w", err)
	}

	amounts, err := ms.Keeper.SwapExactInForNative(goCtx, trader, to, msg.Path, msg.AmountIn, msg.MinNativeOut)
	if err != nil {
		return nil, fmt.Errorf("SwapExactInForNative: %w", err)
	}

	return &types.MsgSwapResponse{Amounts: amounts}, nil
}

// SwapNativeForExactOut handles a fixed-output swap funded by native coins
func (ms msgServer) SwapNativeForExactOut(goCtx context.Context, msg *types.MsgSwapNativeForExactOut) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapNativeForExactOut: validate: %w", err)
	}

	if err := ms.CheckDeadline(goCtx, msg.Deadline); err != nil {
		return nil, err
	}

	trader, to, err := swapAddresses(msg.Trader, msg.To)
	if err != nil {
		return nil, fmt.Errorf("SwapNativeForExactOut: %w", err)
	}

	amounts, err := ms.Keeper.SwapNativeForExactOut(goCtx, trader, to, msg.Path, msg.AmountOut, msg.NativeAmount)
	if err != nil {
		return nil, fmt.Errorf("SwapNativeForExactOut: %w", err)
	}

	return &types.MsgSwapResponse{Amounts: amounts}, nil
}

// SetTradeState handles a trade-gate change by the pool creator
func (ms msgServer) SetTradeState(goCtx context.Context, msg *types.MsgSetTradeState) (*types.MsgSetTradeStateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetTradeState: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("SetTradeState: invalid creator address: %w", err)
	}

	if err := ms.Keeper.SetTradeState(goCtx, creator, msg.TokenA, msg.TokenB, msg.TradeState); err != nil {
		return nil, fmt.Errorf("SetTradeState: %w", err)
	}

	return &types.MsgSetTradeStateResponse{}, nil
}

func swapAddresses(trader, to string) (sdk.AccAddress, sdk.AccAddress, error) {
	traderAddr, err := sdk.AccAddressFromBech32(trader)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trader address: %w", err)
	}
	toAddr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	return traderAddr, toAddr, nil
}
