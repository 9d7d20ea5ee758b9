package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// TradeState restricts which swap direction(s) a pool currently permits.
type TradeState int32

const (
	// TradeStateSellAll permits swaps in both directions.
	TradeStateSellAll TradeState = iota
	// TradeStateSellToken0Only permits selling token0 into the pool only.
	TradeStateSellToken0Only
	// TradeStateSellToken1Only permits selling token1 into the pool only.
	TradeStateSellToken1Only
	// TradeStateSellNone halts trading in both directions.
	TradeStateSellNone
)

// Validate checks that the trade state is a known value.
func (ts TradeState) Validate() error {
	switch ts {
	case TradeStateSellAll, TradeStateSellToken0Only, TradeStateSellToken1Only, TradeStateSellNone:
		return nil
	}
	return ErrInvalidPoolState.Wrapf("unknown trade state %d", ts)
}

// String implements fmt.Stringer.
func (ts TradeState) String() string {
	switch ts {
	case TradeStateSellAll:
		return "sell_all"
	case TradeStateSellToken0Only:
		return "sell_token0_only"
	case TradeStateSellToken1Only:
		return "sell_token1_only"
	case TradeStateSellNone:
		return "sell_none"
	}
	return fmt.Sprintf("trade_state(%d)", int32(ts))
}

// Pool is the reserve record for one token pair. Tokens are stored in
// canonical order (Token0 < Token1 lexicographically) so that (A,B) and
// (B,A) resolve to the same pool. The reserves themselves are held by the
// pool's escrow account in the bank module; Reserve0/Reserve1 mirror that
// balance and are the amounts the pricing curve operates on.
type Pool struct {
	Token0      string     `json:"token0"`
	Token1      string     `json:"token1"`
	Reserve0    math.Int   `json:"reserve0"`
	Reserve1    math.Int   `json:"reserve1"`
	Xybk        bool       `json:"xybk"`
	Boost0      math.Int   `json:"boost0"`
	Boost1      math.Int   `json:"boost1"`
	TradeState  TradeState `json:"trade_state"`
	TotalShares math.Int   `json:"total_shares"`
	Creator     string     `json:"creator"`
}

// SortTokens returns the pair in canonical order.
func SortTokens(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}

// PairKey returns the canonical registry key for a token pair.
func PairKey(tokenA, tokenB string) string {
	t0, t1 := SortTokens(tokenA, tokenB)
	return t0 + "/" + t1
}

// NewPool creates a plain constant-product pool for the canonicalized pair.
func NewPool(tokenA, tokenB, creator string) Pool {
	t0, t1 := SortTokens(tokenA, tokenB)
	return Pool{
		Token0:      t0,
		Token1:      t1,
		Reserve0:    math.ZeroInt(),
		Reserve1:    math.ZeroInt(),
		Xybk:        false,
		Boost0:      math.OneInt(),
		Boost1:      math.OneInt(),
		TradeState:  TradeStateSellAll,
		TotalShares: math.ZeroInt(),
		Creator:     creator,
	}
}

// PairKey returns the pool's canonical registry key.
func (p Pool) PairKey() string {
	return p.Token0 + "/" + p.Token1
}

// EscrowAddress derives the bank account that holds this pool's reserves.
// Each pool has its own escrow so multi-hop execution can forward hop output
// directly from one pool's account to the next with no router custody.
func (p Pool) EscrowAddress() sdk.AccAddress {
	return PoolEscrowAddress(p.Token0, p.Token1)
}

// PoolEscrowAddress derives the escrow account for a token pair.
func PoolEscrowAddress(tokenA, tokenB string) sdk.AccAddress {
	return address.Module(ModuleName, []byte("pool/"+PairKey(tokenA, tokenB)))
}

// HasToken reports whether denom is one of the pool's pair.
func (p Pool) HasToken(denom string) bool {
	return denom == p.Token0 || denom == p.Token1
}

// ReservesFor orients the reserves for a swap selling tokenIn into the pool.
func (p Pool) ReservesFor(tokenIn string) (reserveIn, reserveOut math.Int, err error) {
	switch tokenIn {
	case p.Token0:
		return p.Reserve0, p.Reserve1, nil
	case p.Token1:
		return p.Reserve1, p.Reserve0, nil
	}
	return math.Int{}, math.Int{}, ErrPoolNotFound.Wrapf("token %s not in pool %s", tokenIn, p.PairKey())
}

// Validate checks structural pool integrity.
func (p Pool) Validate() error {
	if p.Token0 == p.Token1 {
		return ErrIdenticalTokens.Wrapf("pool %s", p.PairKey())
	}
	if p.Token0 > p.Token1 {
		return ErrInvalidPoolState.Wrapf("pair %s not in canonical order", p.PairKey())
	}
	if p.Reserve0.IsNil() || p.Reserve1.IsNil() || p.Reserve0.IsNegative() || p.Reserve1.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative or nil reserves in pool %s", p.PairKey())
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative or nil shares in pool %s", p.PairKey())
	}
	if (!p.Reserve0.IsZero() || !p.Reserve1.IsZero()) && p.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has reserves but no shares")
	}
	if !p.TotalShares.IsZero() && (p.Reserve0.IsZero() || p.Reserve1.IsZero()) {
		return ErrInvalidPoolState.Wrap("pool has shares but missing reserves")
	}
	if p.Boost0.IsNil() || p.Boost1.IsNil() || p.Boost0.LT(math.OneInt()) || p.Boost1.LT(math.OneInt()) {
		return ErrInvalidBoost.Wrapf("boosts must be >= 1 in pool %s", p.PairKey())
	}
	if !p.Xybk && (!p.Boost0.Equal(math.OneInt()) || !p.Boost1.Equal(math.OneInt())) {
		return ErrInvalidBoost.Wrap("plain pool cannot carry boosts")
	}
	return p.TradeState.Validate()
}
