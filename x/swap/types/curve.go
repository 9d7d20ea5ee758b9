package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Swap fee taken from the input amount: 0.3%, expressed as 997/1000.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
)

// maxIntBits mirrors the math.Int size cap so intermediate big.Int results
// convert back without panicking.
const maxIntBits = 256

func intFromBig(v *big.Int) (math.Int, error) {
	if v.BitLen() > maxIntBits {
		return math.Int{}, ErrOverflow.Wrap("amount exceeds 256 bits")
	}
	return math.NewIntFromBigInt(v), nil
}

// checkTradeDirection enforces the pool's trade-state gate for a swap that
// sells tokenIn into the pool.
func (p Pool) checkTradeDirection(tokenIn string) error {
	switch p.TradeState {
	case TradeStateSellAll:
		return nil
	case TradeStateSellToken0Only:
		if tokenIn == p.Token0 {
			return nil
		}
	case TradeStateSellToken1Only:
		if tokenIn == p.Token1 {
			return nil
		}
	case TradeStateSellNone:
	}
	return ErrTradeNotAllowed.Wrapf("pool %s state %s forbids selling %s", p.PairKey(), p.TradeState, tokenIn)
}

// GetAmountOut is the raw single-hop constant-product quote: the floored
// output for amountIn against (reserveIn, reserveOut) after the 997/1000 fee.
//
//	out = floor(in*997*reserveOut / (reserveIn*1000 + in*997))
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, ErrInvalidAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity.Wrap("empty reserves")
	}
	inWithFee := new(big.Int).Mul(amountIn.BigInt(), big.NewInt(FeeNumerator))
	numerator := new(big.Int).Mul(inWithFee, reserveOut.BigInt())
	denominator := new(big.Int).Mul(reserveIn.BigInt(), big.NewInt(FeeDenominator))
	denominator.Add(denominator, inWithFee)
	return intFromBig(numerator.Quo(numerator, denominator))
}

// GetAmountIn is the raw single-hop inverse quote: the smallest input whose
// floored output reaches amountOut.
//
//	in = floor(reserveIn*out*1000 / ((reserveOut-out)*997)) + 1
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.Int{}, ErrInvalidAmount.Wrap("output amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity.Wrap("empty reserves")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	numerator := new(big.Int).Mul(reserveIn.BigInt(), amountOut.BigInt())
	numerator.Mul(numerator, big.NewInt(FeeDenominator))
	denominator := new(big.Int).Sub(reserveOut.BigInt(), amountOut.BigInt())
	denominator.Mul(denominator, big.NewInt(FeeNumerator))
	numerator.Quo(numerator, denominator)
	return intFromBig(numerator.Add(numerator, big.NewInt(1)))
}

// AmountOut quotes selling amountIn of tokenIn into the pool, applying the
// trade-state gate and, for xybk pools, the boosted artificial reserves.
// Output is floored; rounding always favors the pool.
func (p Pool) AmountOut(tokenIn string, amountIn math.Int) (math.Int, error) {
	if err := p.checkTradeDirection(tokenIn); err != nil {
		return math.Int{}, err
	}
	reserveIn, reserveOut, err := p.ReservesFor(tokenIn)
	if err != nil {
		return math.Int{}, err
	}
	if !p.Xybk {
		return GetAmountOut(amountIn, reserveIn, reserveOut)
	}
	artIn, artOut, err := p.artificialReserves(tokenIn)
	if err != nil {
		return math.Int{}, err
	}
	out, err := GetAmountOut(amountIn, artIn, artOut)
	if err != nil {
		return math.Int{}, err
	}
	// Artificial reserves overstate depth; the real reserve still bounds output.
	if out.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s would drain reserve %s", out, reserveOut)
	}
	return out, nil
}

// AmountIn quotes the input required to receive exactly amountOut of tokenOut,
// rounded up so the pool never undercollects.
func (p Pool) AmountIn(tokenOut string, amountOut math.Int) (math.Int, error) {
	tokenIn := p.Token0
	if tokenOut == p.Token0 {
		tokenIn = p.Token1
	} else if tokenOut != p.Token1 {
		return math.Int{}, ErrPoolNotFound.Wrapf("token %s not in pool %s", tokenOut, p.PairKey())
	}
	if err := p.checkTradeDirection(tokenIn); err != nil {
		return math.Int{}, err
	}
	reserveIn, reserveOut, err := p.ReservesFor(tokenIn)
	if err != nil {
		return math.Int{}, err
	}
	if !p.Xybk {
		return GetAmountIn(amountOut, reserveIn, reserveOut)
	}
	if !amountOut.IsNil() && amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	artIn, artOut, err := p.artificialReserves(tokenIn)
	if err != nil {
		return math.Int{}, err
	}
	return GetAmountIn(amountOut, artIn, artOut)
}

// activeBoost selects the boost coefficient for the current reserve balance:
// the surplus side's boost applies, token0's winning ties.
func (p Pool) activeBoost() math.Int {
	if p.Reserve0.GTE(p.Reserve1) {
		return p.Boost0
	}
	return p.Boost1
}

// artificialReserves widens (reserveIn, reserveOut) by (b-1)*sqrtK each, where
// sqrtK is the exact integer root of the boosted invariant
//
//	b^2*K^2 - (b-1)*(x+y)*K*sqrtK = x*y  with K = sqrtK^2 scaling out to
//	(2b-1)*sqrtK^2 - (b-1)*(x+y)*sqrtK - x*y = 0
//
// solved by the quadratic formula with an exact big.Int discriminant sqrt.
// b = 1 collapses to sqrtK-free plain reserves.
func (p Pool) artificialReserves(tokenIn string) (artIn, artOut math.Int, err error) {
	reserveIn, reserveOut, err := p.ReservesFor(tokenIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	b := p.activeBoost()
	if b.IsNil() || b.LT(math.OneInt()) {
		return math.Int{}, math.Int{}, ErrInvalidBoost.Wrapf("boost %s in pool %s", b, p.PairKey())
	}
	if b.Equal(math.OneInt()) {
		return reserveIn, reserveOut, nil
	}
	sqrtK := xybkSqrtK(p.Reserve0.BigInt(), p.Reserve1.BigInt(), b.BigInt())
	widen := new(big.Int).Sub(b.BigInt(), big.NewInt(1))
	widen.Mul(widen, sqrtK)
	artIn, err = intFromBig(new(big.Int).Add(reserveIn.BigInt(), widen))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	artOut, err = intFromBig(new(big.Int).Add(reserveOut.BigInt(), widen))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return artIn, artOut, nil
}

// xybkSqrtK solves (2b-1)*s^2 - (b-1)*(x+y)*s - x*y = 0 for s >= 0:
//
//	s = ((b-1)(x+y) + sqrt((b-1)^2(x+y)^2 + 4(2b-1)xy)) / (2(2b-1))
//
// All terms are exact; big.Int.Sqrt is the integer floor sqrt. At balanced
// reserves x = y the root is exactly x.
func xybkSqrtK(x, y, b *big.Int) *big.Int {
	one := big.NewInt(1)
	bm1 := new(big.Int).Sub(b, one)              // b-1
	twoBm1 := new(big.Int).Lsh(b, 1)             // 2b
	twoBm1.Sub(twoBm1, one)                      // 2b-1
	sum := new(big.Int).Add(x, y)                // x+y
	linear := new(big.Int).Mul(bm1, sum)         // (b-1)(x+y)
	disc := new(big.Int).Mul(linear, linear)     // (b-1)^2(x+y)^2
	cross := new(big.Int).Mul(x, y)              // xy
	cross.Mul(cross, twoBm1)                     // (2b-1)xy
	disc.Add(disc, new(big.Int).Lsh(cross, 2))   // + 4(2b-1)xy
	root := new(big.Int).Sqrt(disc)
	root.Add(root, linear)
	denom := new(big.Int).Lsh(twoBm1, 1) // 2(2b-1)
	return root.Quo(root, denom)
}
