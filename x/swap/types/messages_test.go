package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

var (
	testAddr  = sdk.AccAddress("test_address________").String()
	otherAddr = sdk.AccAddress("other_address_______").String()
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   []string
		expErr bool
	}{
		{"two tokens", []string{"uusdc", "uusdt"}, false},
		{"three tokens", []string{"uusdc", "uusdt", "uatom"}, false},
		{"revisiting a token is allowed", []string{"uusdc", "uusdt", "uusdc"}, false},
		{"single token", []string{"uusdc"}, true},
		{"empty path", nil, true},
		{"empty denom", []string{"uusdc", ""}, true},
		{"immediate repeat", []string{"uusdc", "uusdc"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := types.ValidatePath(tc.path)
			if tc.expErr {
				require.ErrorIs(t, err, types.ErrInvalidPath)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	one := math.OneInt()

	tests := []struct {
		name   string
		msg    *types.MsgCreatePool
		expErr error
	}{
		{"valid plain", types.NewMsgCreatePool(testAddr, "uusdc", "uusdt", false, one, one), nil},
		{"valid xybk", types.NewMsgCreatePool(testAddr, "uusdc", "uusdt", true, math.NewInt(10), math.NewInt(5)), nil},
		{"bad creator", types.NewMsgCreatePool("garbage", "uusdc", "uusdt", false, one, one), types.ErrInvalidAddress},
		{"identical tokens", types.NewMsgCreatePool(testAddr, "uusdc", "uusdc", false, one, one), types.ErrIdenticalTokens},
		{"empty token", types.NewMsgCreatePool(testAddr, "", "uusdt", false, one, one), types.ErrInvalidPath},
		{"nil boost", types.NewMsgCreatePool(testAddr, "uusdc", "uusdt", true, math.Int{}, one), types.ErrInvalidBoost},
		{"boost below one", types.NewMsgCreatePool(testAddr, "uusdc", "uusdt", true, math.ZeroInt(), one), types.ErrInvalidBoost},
		{"plain with boost", types.NewMsgCreatePool(testAddr, "uusdc", "uusdt", false, math.NewInt(2), one), types.ErrInvalidBoost},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := func() *types.MsgAddLiquidity {
		return types.NewMsgAddLiquidity(testAddr, "uusdc", "uusdt",
			math.NewInt(1000), math.NewInt(1000), math.NewInt(990), math.NewInt(990), otherAddr, 1_700_000_000)
	}

	require.NoError(t, valid().ValidateBasic())

	t.Run("zero desired", func(t *testing.T) {
		msg := valid()
		msg.DesiredA = math.ZeroInt()
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
	})

	t.Run("negative minimum", func(t *testing.T) {
		msg := valid()
		msg.MinB = math.NewInt(-1)
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
	})

	t.Run("minimum above desired", func(t *testing.T) {
		msg := valid()
		msg.MinA = math.NewInt(2000)
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
	})

	t.Run("zero deadline", func(t *testing.T) {
		msg := valid()
		msg.Deadline = 0
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrExpired)
	})

	t.Run("bad recipient", func(t *testing.T) {
		msg := valid()
		msg.To = "garbage"
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
	})
}

func TestMsgSwapValidateBasic(t *testing.T) {
	path := []string{"uusdc", "uusdt"}

	t.Run("exact in", func(t *testing.T) {
		require.NoError(t, types.NewMsgSwapExactIn(testAddr, math.NewInt(1000), math.ZeroInt(), path, otherAddr, 1).ValidateBasic())

		err := types.NewMsgSwapExactIn(testAddr, math.ZeroInt(), math.ZeroInt(), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		err = types.NewMsgSwapExactIn(testAddr, math.NewInt(1000), math.NewInt(-1), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		err = types.NewMsgSwapExactIn(testAddr, math.NewInt(1000), math.ZeroInt(), []string{"uusdc"}, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidPath)
	})

	t.Run("exact out", func(t *testing.T) {
		require.NoError(t, types.NewMsgSwapExactOut(testAddr, math.NewInt(1000), math.NewInt(2000), path, otherAddr, 1).ValidateBasic())

		err := types.NewMsgSwapExactOut(testAddr, math.ZeroInt(), math.NewInt(2000), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		err = types.NewMsgSwapExactOut("garbage", math.NewInt(1000), math.NewInt(2000), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAddress)
	})

	t.Run("native variants", func(t *testing.T) {
		require.NoError(t, types.NewMsgSwapNativeExactIn(testAddr, math.NewInt(1000), math.ZeroInt(), path, otherAddr, 1).ValidateBasic())
		require.NoError(t, types.NewMsgSwapExactInForNative(testAddr, math.NewInt(1000), math.ZeroInt(), path, otherAddr, 1).ValidateBasic())
		require.NoError(t, types.NewMsgSwapNativeForExactOut(testAddr, math.NewInt(1000), math.NewInt(2000), path, otherAddr, 1).ValidateBasic())

		err := types.NewMsgSwapNativeExactIn(testAddr, math.ZeroInt(), math.ZeroInt(), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAmount)

		err = types.NewMsgSwapNativeForExactOut(testAddr, math.NewInt(1000), math.ZeroInt(), path, otherAddr, 1).ValidateBasic()
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	})
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgRemoveLiquidity(testAddr, "uusdc", "uusdt",
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), otherAddr, 1)
	require.NoError(t, valid.ValidateBasic())

	t.Run("zero shares", func(t *testing.T) {
		msg := *valid
		msg.Shares = math.ZeroInt()
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
	})

	t.Run("identical tokens", func(t *testing.T) {
		msg := *valid
		msg.TokenB = msg.TokenA
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrIdenticalTokens)
	})

	t.Run("permit variant requires a signature", func(t *testing.T) {
		msg := types.NewMsgRemoveLiquidityWithPermit(testAddr, "uusdc", "uusdt",
			math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), otherAddr, 1, false, nil)
		require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidPermit)

		msg.PermitSignature = []byte{0x01}
		require.NoError(t, msg.ValidateBasic())
	})
}

func TestMsgSetTradeStateValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgSetTradeState(testAddr, "uusdc", "uusdt", types.TradeStateSellNone).ValidateBasic())

	err := types.NewMsgSetTradeState(testAddr, "uusdc", "uusdt", types.TradeState(9)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidPoolState)

	err = types.NewMsgSetTradeState("garbage", "uusdc", "uusdt", types.TradeStateSellAll).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
