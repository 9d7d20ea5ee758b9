package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapNativeExactIn{}
	_ sdk.Msg = &MsgSwapExactInForNative{}
	_ sdk.Msg = &MsgSwapNativeForExactOut{}
)

// MsgSwapNativeExactIn swaps a fixed amount of the chain's native asset for
// tokens. The native amount is wrapped 1:1 and the path must start at the
// wrapped denom.
type MsgSwapNativeExactIn struct {
	Trader       string   `json:"trader"`
	NativeAmount math.Int `json:"native_amount"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Path         []string `json:"path"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapNativeExactIn creates a new MsgSwapNativeExactIn instance
func NewMsgSwapNativeExactIn(trader string, nativeAmount, minAmountOut math.Int, path []string, to string, deadline int64) *MsgSwapNativeExactIn {
	return &MsgSwapNativeExactIn{
		Trader:       trader,
		NativeAmount: nativeAmount,
		MinAmountOut: minAmountOut,
		Path:         path,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapNativeExactIn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapNativeExactIn) Type() string {
	return "swap_native_exact_in"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapNativeExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapNativeExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapNativeExactIn) ValidateBasic() error {
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

	if msg.NativeAmount.IsNil() || !msg.NativeAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "native amount must be positive")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}

// MsgSwapExactInForNative swaps a fixed token input for the chain's native
// asset. The path must end at the wrapped denom, which is unwrapped 1:1 to
// the recipient.
type MsgSwapExactInForNative struct {
	Trader       string   `json:"trader"`
	AmountIn     math.Int `json:"amount_in"`
	MinNativeOut math.Int `json:"min_native_out"`
	Path         []string `json:"path"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactInForNative creates a new MsgSwapExactInForNative instance
func NewMsgSwapExactInForNative(trader string, amountIn, minNativeOut math.Int, path []string, to string, deadline int64) *MsgSwapExactInForNative {
	return &MsgSwapExactInForNative{
		Trader:       trader,
		AmountIn:     amountIn,
		MinNativeOut: minNativeOut,
		Path:         path,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactInForNative) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactInForNative) Type() string {
	return "swap_exact_in_for_native"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactInForNative) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactInForNative) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactInForNative) ValidateBasic() error {
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

	if msg.MinNativeOut.IsNil() || msg.MinNativeOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min native out cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}

// MsgSwapNativeForExactOut swaps the chain's native asset for a fixed token
// output. NativeAmount is the maximum the trader will spend; the unconsumed
// remainder is refunded in the same transaction.
type MsgSwapNativeForExactOut struct {
	Trader       string   `json:"trader"`
	AmountOut    math.Int `json:"amount_out"`
	NativeAmount math.Int `json:"native_amount"`
	Path         []string `json:"path"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapNativeForExactOut creates a new MsgSwapNativeForExactOut instance
func NewMsgSwapNativeForExactOut(trader string, amountOut, nativeAmount math.Int, path []string, to string, deadline int64) *MsgSwapNativeForExactOut {
	return &MsgSwapNativeForExactOut{
		Trader:       trader,
		AmountOut:    amountOut,
		NativeAmount: nativeAmount,
		Path:         path,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapNativeForExactOut) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapNativeForExactOut) Type() string {
	return "swap_native_for_exact_out"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapNativeForExactOut) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapNativeForExactOut) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapNativeForExactOut) ValidateBasic() error {
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

	if msg.NativeAmount.IsNil() || !msg.NativeAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "native amount must be positive")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}
