package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgAddLiquidityNative{}
)

// MsgAddLiquidity defines a message to deposit both pair tokens into a pool
// and mint liquidity shares.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	DesiredA math.Int `json:"desired_a"`
	DesiredB math.Int `json:"desired_b"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
	To       string   `json:"to"`
	Deadline int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenA, tokenB string, desiredA, desiredB, minA, minB math.Int, to string, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		DesiredA: desiredA,
		DesiredB: desiredB,
		MinA:     minA,
		MinB:     minB,
		To:       to,
		Deadline: deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidPath, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrIdenticalTokens, "cannot provide identical tokens")
	}

	if msg.DesiredA.IsNil() || !msg.DesiredA.IsPositive() || msg.DesiredB.IsNil() || !msg.DesiredB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amounts must be positive")
	}

	if msg.MinA.IsNil() || msg.MinA.IsNegative() || msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot be negative")
	}

	if msg.MinA.GT(msg.DesiredA) || msg.MinB.GT(msg.DesiredB) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot exceed desired amounts")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}

// MsgAddLiquidityNative defines a message to deposit a token alongside the
// chain's native asset, which is wrapped 1:1 before entering the pool.
type MsgAddLiquidityNative struct {
	Provider     string   `json:"provider"`
	Token        string   `json:"token"`
	DesiredToken math.Int `json:"desired_token"`
	NativeAmount math.Int `json:"native_amount"`
	MinToken     math.Int `json:"min_token"`
	MinNative    math.Int `json:"min_native"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgAddLiquidityNative creates a new MsgAddLiquidityNative instance
func NewMsgAddLiquidityNative(provider, token string, desiredToken, nativeAmount, minToken, minNative math.Int, to string, deadline int64) *MsgAddLiquidityNative {
	return &MsgAddLiquidityNative{
		Provider:     provider,
		Token:        token,
		DesiredToken: desiredToken,
		NativeAmount: nativeAmount,
		MinToken:     minToken,
		MinNative:    minNative,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidityNative) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidityNative) Type() string {
	return "add_liquidity_native"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidityNative) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidityNative) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidityNative) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.Token == "" {
		return sdkerrors.Wrap(ErrInvalidPath, "token denomination cannot be empty")
	}

	if msg.DesiredToken.IsNil() || !msg.DesiredToken.IsPositive() || msg.NativeAmount.IsNil() || !msg.NativeAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amounts must be positive")
	}

	if msg.MinToken.IsNil() || msg.MinToken.IsNegative() || msg.MinNative.IsNil() || msg.MinNative.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot be negative")
	}

	if msg.MinToken.GT(msg.DesiredToken) || msg.MinNative.GT(msg.NativeAmount) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot exceed desired amounts")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}
