package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "swap/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "swap/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgAddLiquidityNative{}, "swap/MsgAddLiquidityNative", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "swap/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidityWithPermit{}, "swap/MsgRemoveLiquidityWithPermit", nil)
	cdc.RegisterConcrete(&MsgSwapExactIn{}, "swap/MsgSwapExactIn", nil)
	cdc.RegisterConcrete(&MsgSwapExactOut{}, "swap/MsgSwapExactOut", nil)
	cdc.RegisterConcrete(&MsgSwapNativeExactIn{}, "swap/MsgSwapNativeExactIn", nil)
	cdc.RegisterConcrete(&MsgSwapExactInForNative{}, "swap/MsgSwapExactInForNative", nil)
	cdc.RegisterConcrete(&MsgSwapNativeForExactOut{}, "swap/MsgSwapNativeForExactOut", nil)
	cdc.RegisterConcrete(&MsgSetTradeState{}, "swap/MsgSetTradeState", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgAddLiquidity{},
		&MsgAddLiquidityNative{},
		&MsgRemoveLiquidity{},
		&MsgRemoveLiquidityWithPermit{},
		&MsgSwapExactIn{},
		&MsgSwapExactOut{},
		&MsgSwapNativeExactIn{},
		&MsgSwapExactInForNative{},
		&MsgSwapNativeForExactOut{},
		&MsgSetTradeState{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
