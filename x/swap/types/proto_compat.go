package types

import "fmt"

// Minimal gogoproto method boilerplate so the hand-written message structs
// satisfy the proto.Message interface required by sdk.Msg and the codecs.

func (m *MsgCreatePool) Reset()         { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePool) ProtoMessage()    {}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAddLiquidity) ProtoMessage()    {}

func (m *MsgAddLiquidityNative) Reset()         { *m = MsgAddLiquidityNative{} }
func (m *MsgAddLiquidityNative) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAddLiquidityNative) ProtoMessage()    {}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveLiquidity) ProtoMessage()    {}

func (m *MsgRemoveLiquidityWithPermit) Reset()         { *m = MsgRemoveLiquidityWithPermit{} }
func (m *MsgRemoveLiquidityWithPermit) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveLiquidityWithPermit) ProtoMessage()    {}

func (m *MsgSwapExactIn) Reset()         { *m = MsgSwapExactIn{} }
func (m *MsgSwapExactIn) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapExactIn) ProtoMessage()    {}

func (m *MsgSwapExactOut) Reset()         { *m = MsgSwapExactOut{} }
func (m *MsgSwapExactOut) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapExactOut) ProtoMessage()    {}

func (m *MsgSwapNativeExactIn) Reset()         { *m = MsgSwapNativeExactIn{} }
func (m *MsgSwapNativeExactIn) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapNativeExactIn) ProtoMessage()    {}

func (m *MsgSwapExactInForNative) Reset()         { *m = MsgSwapExactInForNative{} }
func (m *MsgSwapExactInForNative) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapExactInForNative) ProtoMessage()    {}

func (m *MsgSwapNativeForExactOut) Reset()         { *m = MsgSwapNativeForExactOut{} }
func (m *MsgSwapNativeForExactOut) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapNativeForExactOut) ProtoMessage()    {}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return fmt.Sprintf("%+v", *m) }
func (*GenesisState) ProtoMessage()    {}

func (m *MsgSetTradeState) Reset()         { *m = MsgSetTradeState{} }
func (m *MsgSetTradeState) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetTradeState) ProtoMessage()    {}
