package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank keeper surface the swap module needs: escrow
// transfers between accounts, module-account custody for the native bridge,
// and balance reads for the backing invariant.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// PermitKeeper verifies off-chain share-spending permits. The router only
// needs a yes/no: signature binds (owner, pair, shares or approve-max,
// deadline).
type PermitKeeper interface {
	VerifyPermit(ctx context.Context, owner sdk.AccAddress, pair string, shares sdkmath.Int, approveMax bool, deadline int64, signature []byte) error
}

// NativeAssetAdapter converts the chain's native asset to its wrapped pool
// denom and back, always 1:1.
type NativeAssetAdapter interface {
	// Wrap pulls amount of the native denom from payer and credits the same
	// amount of the wrapped denom to recipient.
	Wrap(ctx context.Context, payer, recipient sdk.AccAddress, amount sdkmath.Int) error
	// Unwrap pulls amount of the wrapped denom from payer and credits the
	// same amount of the native denom to recipient.
	Unwrap(ctx context.Context, payer, recipient sdk.AccAddress, amount sdkmath.Int) error
	// WrappedDenom reports the wrapped denom the pools trade.
	WrappedDenom(ctx context.Context) string
	// NativeDenom reports the chain's native denom.
	NativeDenom(ctx context.Context) string
}
