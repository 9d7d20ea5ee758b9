package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapExactIn{}
	_ sdk.Msg = &MsgSwapExactOut{}
)

// ValidatePath checks the structural validity of a swap path: at least two
// hops and no token repeated back to back.
func ValidatePath(path []string) error {
	if len(path) < 2 {
		return sdkerrors.Wrapf(ErrInvalidPath, "path must contain at least 2 tokens, got %d", len(path))
	}
	for i, token := range path {
		if token == "" {
			return sdkerrors.Wrapf(ErrInvalidPath, "empty token at position %d", i)
		}
		if i > 0 && token == path[i-1] {
			return sdkerrors.Wrapf(ErrInvalidPath, "token %s repeated at position %d", token, i)
		}
	}
	return nil
}

// MsgSwapExactIn defines a message to swap a fixed input amount along a path
// for as much output as the pools yield, bounded below by MinAmountOut.
type MsgSwapExactIn struct {
	Trader       string   `json:"trader"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Path         []string `json:"path"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance
func NewMsgSwapExactIn(trader string, amountIn, minAmountOut math.Int, path []string, to string, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Path:         path,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactIn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactIn) Type() string {
	return "swap_exact_in"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactIn) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if err := ValidatePath(msg.Path); err != nil {
		return err
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}

// MsgSwapExactOut defines a message to receive a fixed output amount along a
// path, spending as little input as possible, bounded above by MaxAmountIn.
type MsgSwapExactOut struct {
	Trader      string   `json:"trader"`
	AmountOut   math.Int `json:"amount_out"`
	MaxAmountIn math.Int `json:"max_amount_in"`
	Path        []string `json:"path"`
	To          string   `json:"to"`
	Deadline    int64    `json:"deadline"`
}

// NewMsgSwapExactOut creates a new MsgSwapExactOut instance
func NewMsgSwapExactOut(trader string, amountOut, maxAmountIn math.Int, path []string, to string, deadline int64) *MsgSwapExactOut {
	return &MsgSwapExactOut{
		Trader:      trader,
		AmountOut:   amountOut,
		MaxAmountIn: maxAmountIn,
		Path:        path,
		To:          to,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactOut) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactOut) Type() string {
	return "swap_exact_out"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactOut) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactOut) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactOut) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if err := ValidatePath(msg.Path); err != nil {
		return err
	}

	if msg.AmountOut.IsNil() || !msg.AmountOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount out must be positive")
	}

	if msg.MaxAmountIn.IsNil() || !msg.MaxAmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max amount in must be positive")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}
