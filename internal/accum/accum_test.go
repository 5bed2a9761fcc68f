package accum

import (
	"math"

	"github.com/tsatke/numparser/internal/value"
)

func (suite *AccumulatorSuite) TestEmpty() {
	acc := New(10)
	suite.assertInteger(acc.End(), 0)
}

func (suite *AccumulatorSuite) TestSingleDigit() {
	acc := New(16)
	acc.AddDigit(15)
	suite.assertInteger(acc.End(), 15)
}

func (suite *AccumulatorSuite) TestExactIntegers() {
	tests := []struct {
		name string
		base uint8
		want int64
	}{
		{"zero", 10, 0},
		{"small", 10, 42},
		{"negative", 10, -999999},
		{"binary", 2, 5},
		{"hexadecimal", 16, 255},
		{"highest base", 255, 65024},
		{"max int64", 10, math.MaxInt64},
		{"max int64 base 16", 16, math.MaxInt64},
		{"min int64 plus one", 10, math.MinInt64 + 1},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			acc := New(tt.base)

			magnitude := uint64(tt.want)
			if tt.want < 0 {
				magnitude = -magnitude
				acc.SetNegative(true)
			}
			suite.feedMagnitude(acc, magnitude)

			suite.assertInteger(acc.End(), tt.want)
		})
	}
}

func (suite *AccumulatorSuite) TestMinInt64() {
	// 1<<63 is the one magnitude that is representable with a
	// negative sign only
	acc := New(10)
	acc.SetNegative(true)
	suite.feedMagnitude(acc, 1<<63)
	suite.assertInteger(acc.End(), math.MinInt64)
}

func (suite *AccumulatorSuite) TestMinInt64MagnitudePositive() {
	acc := New(10)
	suite.feedMagnitude(acc, 1<<63)
	suite.assertFloat(acc.End(), 9223372036854775808.0)
}

func (suite *AccumulatorSuite) TestMantissaOverflowPromotes() {
	// 1<<63 + 1 does not fit the integer mantissa, so the last digit
	// must promote the number to floating-point
	acc := New(10)
	suite.feed(acc, 9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 9)
	suite.assertFloat(acc.End(), 9223372036854775808.0)
}

func (suite *AccumulatorSuite) TestNineteenNines() {
	acc := New(10)
	for i := 0; i < 19; i++ {
		acc.AddDigit(9)
	}
	suite.assertFloat(acc.End(), 1e19)
}

func (suite *AccumulatorSuite) TestRadixPointForcesFloat() {
	// "12."
	acc := New(10)
	suite.feed(acc, 1, 2)
	acc.SetRadixPoint()
	suite.assertFloat(acc.End(), 12)
}

func (suite *AccumulatorSuite) TestLeadingRadixPoint() {
	// ".5"
	acc := New(10)
	acc.SetRadixPoint()
	acc.AddDigit(5)
	suite.assertFloat(acc.End(), 0.5)
}

func (suite *AccumulatorSuite) TestFractionalDigits() {
	// "12.3"
	acc := New(10)
	suite.feed(acc, 1, 2)
	acc.SetRadixPoint()
	acc.AddDigit(3)
	suite.assertFloat(acc.End(), 12.3)
}

func (suite *AccumulatorSuite) TestRadixPointMoves() {
	// the last radix point placement wins
	acc := New(10)
	acc.AddDigit(1)
	acc.SetRadixPoint()
	acc.AddDigit(2)
	acc.SetRadixPoint()
	acc.AddDigit(3)
	suite.assertFloat(acc.End(), 12.3)
}

func (suite *AccumulatorSuite) TestExponentForcesFloat() {
	// "7e0"; even an exponent of zero makes the number a float
	acc := New(10)
	acc.AddDigit(7)
	acc.AddExponentDigit(0)
	suite.assertFloat(acc.End(), 7)
}

func (suite *AccumulatorSuite) TestExponent() {
	// "2e3"
	acc := New(10)
	acc.AddDigit(2)
	acc.AddExponentDigit(3)
	suite.assertFloat(acc.End(), 2000)
}

func (suite *AccumulatorSuite) TestNegativeExponent() {
	// "5e-1"
	acc := New(10)
	acc.AddDigit(5)
	acc.AddExponentDigit(1)
	acc.SetExponentNegative(true)
	suite.assertFloat(acc.End(), 0.5)
}

func (suite *AccumulatorSuite) TestEventOrderIndependence() {
	// "-12.3e4", with the events arriving out of order
	acc := New(10)
	acc.AddExponentDigit(4)
	acc.AddDigit(1)
	acc.AddDigit(2)
	acc.SetRadixPoint()
	acc.AddDigit(3)
	acc.SetNegative(true)
	suite.assertFloat(acc.End(), -123000)
}

func (suite *AccumulatorSuite) TestLastSignWins() {
	acc := New(10)
	acc.SetNegative(true)
	acc.AddDigit(3)
	acc.SetNegative(false)
	suite.assertInteger(acc.End(), 3)
}

func (suite *AccumulatorSuite) TestOverflowToInfinity() {
	acc := New(10)
	acc.AddDigit(1)
	suite.feedExponent(acc, 4, 0, 0)

	v := acc.End()
	suite.Require().Equal(value.TypeFloat, v.Type())
	suite.True(math.IsInf(v.(value.Float).Value(), 1), "expected +Inf, but got %v", v.(value.Float).Value())
}

func (suite *AccumulatorSuite) TestOverflowToNegativeInfinity() {
	acc := New(10)
	acc.SetNegative(true)
	acc.AddDigit(1)
	suite.feedExponent(acc, 4, 0, 0)

	v := acc.End()
	suite.Require().Equal(value.TypeFloat, v.Type())
	suite.True(math.IsInf(v.(value.Float).Value(), -1), "expected -Inf, but got %v", v.(value.Float).Value())
}

func (suite *AccumulatorSuite) TestUnderflowToZero() {
	acc := New(10)
	acc.AddDigit(1)
	acc.SetExponentNegative(true)
	suite.feedExponent(acc, 4, 0, 0)
	suite.assertFloat(acc.End(), 0)
}

func (suite *AccumulatorSuite) TestExponentCap() {
	// the exponent value saturates at maxExponent, further digits
	// must not change the result
	capped := New(10)
	capped.AddDigit(1)
	suite.feedExponent(capped, 3, 0, 8)

	overlong := New(10)
	overlong.AddDigit(1)
	suite.feedExponent(overlong, 3, 0, 8, 5, 1)

	suite.False(capped.Truncated())
	suite.True(overlong.Truncated())
	suite.assertFloat(overlong.End(), capped.End().(value.Float).Value())
}

func (suite *AccumulatorSuite) TestDigitCap() {
	// digits past the maxDigits cap must not change the result
	capped := New(10)
	for i := 0; i < maxDigits; i++ {
		capped.AddDigit(9)
	}

	overlong := New(10)
	for i := 0; i < maxDigits+5000; i++ {
		overlong.AddDigit(9)
	}

	suite.False(capped.Truncated())
	suite.True(overlong.Truncated())
	suite.assertFloat(overlong.End(), capped.End().(value.Float).Value())
}

func (suite *AccumulatorSuite) TestEndIsPure() {
	// End recomputes from the accumulated state, so a second call
	// yields the same answer
	acc := New(10)
	acc.SetNegative(true)
	suite.feed(acc, 4, 2)
	suite.assertInteger(acc.End(), -42)
	suite.assertInteger(acc.End(), -42)
}

func (suite *AccumulatorSuite) TestRoundTrip() {
	// integers within range survive a re-parse of their own digits
	// bit for bit
	values := []int64{0, 1, -1, 42, -999999, 1<<62 + 12345, math.MaxInt64, math.MinInt64 + 1, math.MinInt64}
	for _, v := range values {
		acc := New(10)
		magnitude := uint64(v)
		if v < 0 {
			magnitude = -magnitude
			acc.SetNegative(true)
		}
		suite.feedMagnitude(acc, magnitude)
		suite.assertInteger(acc.End(), v)
	}
}

func (suite *AccumulatorSuite) feedExponent(acc *Accumulator, digits ...uint8) {
	for _, digit := range digits {
		acc.AddExponentDigit(digit)
	}
}
