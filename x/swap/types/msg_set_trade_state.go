package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSetTradeState{}

// MsgSetTradeState adjusts a pool's trade-direction gate. Only the pool
// creator may change it.
type MsgSetTradeState struct {
	Creator    string     `json:"creator"`
	TokenA     string     `json:"token_a"`
	TokenB     string     `json:"token_b"`
	TradeState TradeState `json:"trade_state"`
}

// NewMsgSetTradeState creates a new MsgSetTradeState instance
func NewMsgSetTradeState(creator, tokenA, tokenB string, state TradeState) *MsgSetTradeState {
	return &MsgSetTradeState{
		Creator:    creator,
		TokenA:     tokenA,
		TokenB:     tokenB,
		TradeState: state,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetTradeState) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetTradeState) Type() string {
	return "set_trade_state"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetTradeState) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetTradeState) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetTradeState) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidPath, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrIdenticalTokens, "pair tokens must differ")
	}

	return msg.TradeState.Validate()
}
