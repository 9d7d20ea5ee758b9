package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidityWithPermit{}
)

// MsgRemoveLiquidity defines a message to burn liquidity shares and withdraw
// the proportional reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	Shares   math.Int `json:"shares"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
	To       string   `json:"to"`
	Deadline int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, tokenA, tokenB string, shares, minA, minB math.Int, to string, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		Shares:   shares,
		MinA:     minA,
		MinB:     minB,
		To:       to,
		Deadline: deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
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
		return sdkerrors.Wrap(ErrIdenticalTokens, "cannot withdraw identical tokens")
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	if msg.MinA.IsNil() || msg.MinA.IsNegative() || msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrExpired, "deadline must be positive")
	}

	return nil
}

// MsgRemoveLiquidityWithPermit removes liquidity authorized by an off-chain
// permit signature instead of a prior on-chain approval. Signature
// verification is delegated to the permit keeper.
type MsgRemoveLiquidityWithPermit struct {
	Provider        string   `json:"provider"`
	TokenA          string   `json:"token_a"`
	TokenB          string   `json:"token_b"`
	Shares          math.Int `json:"shares"`
	MinA            math.Int `json:"min_a"`
	MinB            math.Int `json:"min_b"`
	To              string   `json:"to"`
	Deadline        int64    `json:"deadline"`
	ApproveMax      bool     `json:"approve_max"`
	PermitSignature []byte   `json:"permit_signature"`
}

// NewMsgRemoveLiquidityWithPermit creates a new MsgRemoveLiquidityWithPermit instance
func NewMsgRemoveLiquidityWithPermit(provider, tokenA, tokenB string, shares, minA, minB math.Int, to string, deadline int64, approveMax bool, sig []byte) *MsgRemoveLiquidityWithPermit {
	return &MsgRemoveLiquidityWithPermit{
		Provider:        provider,
		TokenA:          tokenA,
		TokenB:          tokenB,
		Shares:          shares,
		MinA:            minA,
		MinB:            minB,
		To:              to,
		Deadline:        deadline,
		ApproveMax:      approveMax,
		PermitSignature: sig,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidityWithPermit) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidityWithPermit) Type() string {
	return "remove_liquidity_with_permit"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidityWithPermit) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidityWithPermit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidityWithPermit) ValidateBasic() error {
	base := MsgRemoveLiquidity{
		Provider: msg.Provider,
		TokenA:   msg.TokenA,
		TokenB:   msg.TokenB,
		Shares:   msg.Shares,
		MinA:     msg.MinA,
		MinB:     msg.MinB,
		To:       msg.To,
		Deadline: msg.Deadline,
	}
	if err := base.ValidateBasic(); err != nil {
		return err
	}

	if len(msg.PermitSignature) == 0 {
		return sdkerrors.Wrap(ErrInvalidPermit, "permit signature cannot be empty")
	}

	return nil
}
