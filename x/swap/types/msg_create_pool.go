package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to register a new pool for a token pair.
// Boosts above 1 select the xybk pricing mode.
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	TokenA  string   `json:"token_a"`
	TokenB  string   `json:"token_b"`
	Xybk    bool     `json:"xybk"`
	Boost0  math.Int `json:"boost0"`
	Boost1  math.Int `json:"boost1"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenA, tokenB string, xybk bool, boost0, boost1 math.Int) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		TokenA:  tokenA,
		TokenB:  tokenB,
		Xybk:    xybk,
		Boost0:  boost0,
		Boost1:  boost1,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidPath, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrIdenticalTokens, "cannot pool identical tokens")
	}

	if msg.Boost0.IsNil() || msg.Boost1.IsNil() {
		return sdkerrors.Wrap(ErrInvalidBoost, "boosts must be set")
	}

	if msg.Boost0.LT(math.OneInt()) || msg.Boost1.LT(math.OneInt()) {
		return sdkerrors.Wrap(ErrInvalidBoost, "boosts must be >= 1")
	}

	if !msg.Xybk && (!msg.Boost0.Equal(math.OneInt()) || !msg.Boost1.Equal(math.OneInt())) {
		return sdkerrors.Wrap(ErrInvalidBoost, "plain pool cannot carry boosts")
	}

	return nil
}
