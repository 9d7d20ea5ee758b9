package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/stretchr/testify/require"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/keeper"
	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

// MockBankKeeper is an in-memory bank backing the swap keeper in tests. It
// enforces balances on sends and burns the way the real bank module does.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty in-memory bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func moduleAddress(moduleName string) sdk.AccAddress {
	return address.Module(moduleName)
}

func (m *MockBankKeeper) balanceOf(addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *MockBankKeeper) setBalance(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = coins
}

func (m *MockBankKeeper) transfer(from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBal := m.balanceOf(from)
	if !amt.IsAllLTE(fromBal) {
		return fmt.Errorf("insufficient funds: %s has %s, wants to send %s", from, fromBal, amt)
	}
	m.setBalance(from, fromBal.Sub(amt...))
	m.setBalance(to, m.balanceOf(to).Add(amt...))
	return nil
}

// SendCoins implements types.BankKeeper
func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(fromAddr, toAddr, amt)
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.transfer(senderAddr, moduleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(moduleAddress(senderModule), recipientAddr, amt)
}

// MintCoins implements types.BankKeeper
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := moduleAddress(moduleName)
	m.setBalance(addr, m.balanceOf(addr).Add(amt...))
	return nil
}

// BurnCoins implements types.BankKeeper
func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := moduleAddress(moduleName)
	bal := m.balanceOf(addr)
	if !amt.IsAllLTE(bal) {
		return fmt.Errorf("insufficient funds to burn: module %s has %s, wants to burn %s", moduleName, bal, amt)
	}
	m.setBalance(addr, bal.Sub(amt...))
	return nil
}

// GetBalance implements types.BankKeeper
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balanceOf(addr).AmountOf(denom))
}

// SpendableCoins implements types.BankKeeper
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balanceOf(addr)
}

// FundAccount credits an account with coins out of thin air
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.setBalance(addr, m.balanceOf(addr).Add(coins...))
}

// ModuleBalance reads the balance of a named module account
func (m *MockBankKeeper) ModuleBalance(moduleName, denom string) math.Int {
	return m.balanceOf(moduleAddress(moduleName)).AmountOf(denom)
}

// MockPermitKeeper accepts every permit unless Err is set
type MockPermitKeeper struct {
	Err error
}

// VerifyPermit implements types.PermitKeeper
func (m *MockPermitKeeper) VerifyPermit(_ context.Context, _ sdk.AccAddress, _ string, _ math.Int, _ bool, _ int64, _ []byte) error {
	return m.Err
}

// SwapKeeper creates a test keeper for the swap module backed by an in-memory
// store and bank
func SwapKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	return SwapKeeperWithPermit(t, &MockPermitKeeper{})
}

// SwapKeeperWithPermit creates a test keeper with an explicit permit verifier
func SwapKeeperWithPermit(t testing.TB, permitKeeper types.PermitKeeper) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bankKeeper := NewMockBankKeeper()
	k := keeper.NewKeeper(cdc, storeKey, bankKeeper, permitKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bankKeeper
}
