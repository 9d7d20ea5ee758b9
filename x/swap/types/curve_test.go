package types_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Impossible-Finance/impossible-swap-core/x/swap/types"
)

func intFromString(t *testing.T, s string) math.Int {
	t.Helper()
	v, ok := math.NewIntFromString(s)
	require.True(t, ok, "bad integer literal %s", s)
	return v
}

func TestGetAmountOut(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   string
		reserveIn  string
		reserveOut string
		expected   string
		expErr     error
	}{
		{
			name:       "one token into deep balanced pool",
			amountIn:   "1000000000000000000",
			reserveIn:  "100000000000000000000",
			reserveOut: "100000000000000000000",
			expected:   "987158034397061298",
		},
		{
			name:       "small pool",
			amountIn:   "1000",
			reserveIn:  "1000000",
			reserveOut: "1000000",
			expected:   "996",
		},
		{
			name:       "zero input",
			amountIn:   "0",
			reserveIn:  "1000000",
			reserveOut: "1000000",
			expErr:     types.ErrInvalidAmount,
		},
		{
			name:       "empty reserves",
			amountIn:   "1000",
			reserveIn:  "0",
			reserveOut: "1000000",
			expErr:     types.ErrInsufficientLiquidity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := types.GetAmountOut(
				intFromString(t, tc.amountIn),
				intFromString(t, tc.reserveIn),
				intFromString(t, tc.reserveOut),
			)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.String())
		})
	}
}

func TestGetAmountIn(t *testing.T) {
	tests := []struct {
		name       string
		amountOut  string
		reserveIn  string
		reserveOut string
		expected   string
		expErr     error
	}{
		{
			name:       "inverse of the balanced pool quote",
			amountOut:  "987158034397061298",
			reserveIn:  "100000000000000000000",
			reserveOut: "100000000000000000000",
			expected:   "1000000000000000000",
		},
		{
			name:       "output exceeds reserve",
			amountOut:  "1000001",
			reserveIn:  "1000000",
			reserveOut: "1000000",
			expErr:     types.ErrInsufficientLiquidity,
		},
		{
			name:       "output equals reserve",
			amountOut:  "1000000",
			reserveIn:  "1000000",
			reserveOut: "1000000",
			expErr:     types.ErrInsufficientLiquidity,
		},
		{
			name:       "zero output",
			amountOut:  "0",
			reserveIn:  "1000000",
			reserveOut: "1000000",
			expErr:     types.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := types.GetAmountIn(
				intFromString(t, tc.amountOut),
				intFromString(t, tc.reserveIn),
				intFromString(t, tc.reserveOut),
			)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, in.String())
		})
	}
}

func testPool(t *testing.T, reserve0, reserve1 string) types.Pool {
	t.Helper()
	pool := types.NewPool("tokena", "tokenb", "creator")
	pool.Reserve0 = intFromString(t, reserve0)
	pool.Reserve1 = intFromString(t, reserve1)
	pool.TotalShares = math.OneInt()
	return pool
}

func testXybkPool(t *testing.T, reserve0, reserve1 string, boost int64) types.Pool {
	t.Helper()
	pool := testPool(t, reserve0, reserve1)
	pool.Xybk = true
	pool.Boost0 = math.NewInt(boost)
	pool.Boost1 = math.NewInt(boost)
	return pool
}

func TestPoolAmountOutXybk(t *testing.T) {
	t.Run("boost widens the quote", func(t *testing.T) {
		plain := testPool(t, "100000000000000000000", "100000000000000000000")
		boosted := testXybkPool(t, "100000000000000000000", "100000000000000000000", 10)

		amountIn := intFromString(t, "1000000000000000000")

		plainOut, err := plain.AmountOut("tokena", amountIn)
		require.NoError(t, err)
		require.Equal(t, "987158034397061298", plainOut.String())

		boostedOut, err := boosted.AmountOut("tokena", amountIn)
		require.NoError(t, err)
		require.Equal(t, "996006981039903216", boostedOut.String())

		require.True(t, boostedOut.GT(plainOut))
	})

	t.Run("boost one behaves like a plain pool", func(t *testing.T) {
		plain := testPool(t, "5000000000", "7000000000")
		degenerate := testPool(t, "5000000000", "7000000000")
		degenerate.Xybk = true

		amountIn := math.NewInt(123456789)
		plainOut, err := plain.AmountOut("tokena", amountIn)
		require.NoError(t, err)
		degenerateOut, err := degenerate.AmountOut("tokena", amountIn)
		require.NoError(t, err)
		require.Equal(t, plainOut, degenerateOut)
	})

	t.Run("output never reaches the real reserve", func(t *testing.T) {
		boosted := testXybkPool(t, "1000000", "1000000", 100)

		// Against the widened reserves this input would quote more than the
		// real reserve holds.
		_, err := boosted.AmountOut("tokena", math.NewInt(100000000))
		require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
	})

	t.Run("exact-out rejects outputs at or above the real reserve", func(t *testing.T) {
		boosted := testXybkPool(t, "1000000", "1000000", 100)

		_, err := boosted.AmountIn("tokenb", math.NewInt(1000000))
		require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

		in, err := boosted.AmountIn("tokenb", math.NewInt(500000))
		require.NoError(t, err)
		require.True(t, in.IsPositive())
	})
}

func TestTradeStateGating(t *testing.T) {
	tests := []struct {
		name    string
		state   types.TradeState
		tokenIn string
		expErr  error
	}{
		{"sell all permits token0", types.TradeStateSellAll, "tokena", nil},
		{"sell all permits token1", types.TradeStateSellAll, "tokenb", nil},
		{"sell token0 only permits token0", types.TradeStateSellToken0Only, "tokena", nil},
		{"sell token0 only forbids token1", types.TradeStateSellToken0Only, "tokenb", types.ErrTradeNotAllowed},
		{"sell token1 only permits token1", types.TradeStateSellToken1Only, "tokenb", nil},
		{"sell token1 only forbids token0", types.TradeStateSellToken1Only, "tokena", types.ErrTradeNotAllowed},
		{"sell none forbids token0", types.TradeStateSellNone, "tokena", types.ErrTradeNotAllowed},
		{"sell none forbids token1", types.TradeStateSellNone, "tokenb", types.ErrTradeNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := testPool(t, "1000000", "1000000")
			pool.TradeState = tc.state

			_, err := pool.AmountOut(tc.tokenIn, math.NewInt(1000))
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}

			// The same gate applies to exact-out quotes: buying tokenOut
			// sells the opposite token into the pool.
			tokenOut := "tokenb"
			if tc.tokenIn == "tokenb" {
				tokenOut = "tokena"
			}
			_, err = pool.AmountIn(tokenOut, math.NewInt(1000))
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCurveProperties(t *testing.T) {
	reserveGen := rapid.Int64Range(1_000, 1_000_000_000_000)
	amountGen := rapid.Int64Range(1, 1_000_000_000)

	t.Run("output is bounded by the reserve and k never decreases", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			reserveIn := math.NewInt(reserveGen.Draw(rt, "reserveIn"))
			reserveOut := math.NewInt(reserveGen.Draw(rt, "reserveOut"))
			amountIn := math.NewInt(amountGen.Draw(rt, "amountIn"))

			out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
			require.NoError(rt, err)
			require.True(rt, out.LT(reserveOut), "output %s reached reserve %s", out, reserveOut)

			oldK := new(big.Int).Mul(reserveIn.BigInt(), reserveOut.BigInt())
			newK := new(big.Int).Mul(
				reserveIn.Add(amountIn).BigInt(),
				reserveOut.Sub(out).BigInt(),
			)
			require.True(rt, newK.Cmp(oldK) >= 0, "k decreased from %s to %s", oldK, newK)
		})
	})

	t.Run("output is monotone in the input", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			reserveIn := math.NewInt(reserveGen.Draw(rt, "reserveIn"))
			reserveOut := math.NewInt(reserveGen.Draw(rt, "reserveOut"))
			amountIn := math.NewInt(amountGen.Draw(rt, "amountIn"))

			out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
			require.NoError(rt, err)
			outMore, err := types.GetAmountOut(amountIn.Add(math.OneInt()), reserveIn, reserveOut)
			require.NoError(rt, err)
			require.True(rt, outMore.GTE(out))
		})
	})

	t.Run("exact-out input is minimal and sufficient", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			reserveIn := math.NewInt(reserveGen.Draw(rt, "reserveIn"))
			reserveOut := math.NewInt(reserveGen.Draw(rt, "reserveOut"))
			amountIn := math.NewInt(amountGen.Draw(rt, "amountIn"))

			out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
			require.NoError(rt, err)
			if !out.IsPositive() {
				rt.Skip("input too small to produce output")
			}

			in, err := types.GetAmountIn(out, reserveIn, reserveOut)
			require.NoError(rt, err)
			// The +1 round-up can overshoot the original input by one unit
			// when the inverse divides exactly.
			require.True(rt, in.LTE(amountIn.Add(math.OneInt())), "recovered input %s exceeds original %s", in, amountIn)

			delivered, err := types.GetAmountOut(in, reserveIn, reserveOut)
			require.NoError(rt, err)
			require.True(rt, delivered.GTE(out), "input %s delivers %s, wanted at least %s", in, delivered, out)
		})
	})

	t.Run("boosted output beats plain output and spares the reserve", func(t *testing.T) {
		boostGen := rapid.Int64Range(2, 100)
		rapid.Check(t, func(rt *rapid.T) {
			reserve := math.NewInt(reserveGen.Draw(rt, "reserve"))
			amountIn := math.NewInt(rapid.Int64Range(1, reserve.Int64()/100+1).Draw(rt, "amountIn"))
			boost := boostGen.Draw(rt, "boost")

			plain := types.NewPool("tokena", "tokenb", "creator")
			plain.Reserve0, plain.Reserve1 = reserve, reserve
			plain.TotalShares = math.OneInt()

			boosted := plain
			boosted.Xybk = true
			boosted.Boost0 = math.NewInt(boost)
			boosted.Boost1 = math.NewInt(boost)

			plainOut, err := plain.AmountOut("tokena", amountIn)
			require.NoError(rt, err)
			boostedOut, err := boosted.AmountOut("tokena", amountIn)
			if err != nil {
				require.ErrorIs(rt, err, types.ErrInsufficientLiquidity)
				return
			}
			require.True(rt, boostedOut.GTE(plainOut))
			require.True(rt, boostedOut.LT(reserve))
		})
	})
}
