package types

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Event types emitted by the swap module
const (
	EventTypePoolCreated     = "swap_pool_created"
	EventTypeSwap            = "swap_executed"
	EventTypeAddLiquidity    = "swap_add_liquidity"
	EventTypeRemoveLiquidity = "swap_remove_liquidity"
	EventTypeTradeStateSet   = "swap_trade_state_set"
	EventTypeDustRefund      = "swap_dust_refund"
)

// Event attribute keys
const (
	AttributeKeyPair       = "pair"
	AttributeKeyTrader     = "trader"
	AttributeKeyProvider   = "provider"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyTokenIn    = "token_in"
	AttributeKeyTokenOut   = "token_out"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyAmountA    = "amount_a"
	AttributeKeyAmountB    = "amount_b"
	AttributeKeyShares     = "shares"
	AttributeKeyPath       = "path"
	AttributeKeyTradeState = "trade_state"
	AttributeKeyRefund     = "refund"
)
