package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LiquidityPosition is one provider's share balance in one pool.
type LiquidityPosition struct {
	Pair     string      `json:"pair"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// Validate checks structural position integrity.
func (lp LiquidityPosition) Validate() error {
	if lp.Pair == "" {
		return ErrInvalidPoolState.Wrap("position missing pair")
	}
	if _, err := sdk.AccAddressFromBech32(lp.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("position provider: %s", err)
	}
	if lp.Shares.IsNil() || !lp.Shares.IsPositive() {
		return ErrInvalidAmount.Wrapf("position shares must be positive for %s", lp.Provider)
	}
	return nil
}
