package accum

import (
	"math"

	"github.com/tsatke/numparser/internal/value"
)

const (
	// maxMagnitude is the largest mantissa magnitude that is still
	// representable as a signed 64 bit integer, namely the magnitude
	// of math.MinInt64.
	maxMagnitude = uint64(math.MaxInt64) + 1
	// maxPositive is the largest magnitude representable as a
	// positive signed 64 bit integer.
	maxPositive = maxMagnitude - 1
	// maxExponent is the magnitude of the smallest decimal exponent
	// of a float64. Exponent digits that would push the exponent
	// value past this are dropped.
	maxExponent = 308
	// maxDigits is the maximum amount of mantissa digits. Digits
	// past this are dropped.
	maxDigits = math.MaxInt16
)

// Accumulator builds a number from a stream of digit and control
// events. It does not see the number's text; an external tokenizer
// pushes mantissa digits, exponent digits, the radix point position
// and the signs, and End computes the final value.
//
// The number starts out as an integer and switches to floating-point
// if the mantissa grows too large to represent as an integer, the
// radix point is set or an exponent digit is added. The switch is
// one-way.
//
// Except for the digits, which must arrive most-significant first,
// events may arrive in any order.
//
//	acc := accum.New(10)
//
//	// accumulate "-12.3e4"
//	acc.AddExponentDigit(4)
//	acc.AddDigit(1)
//	acc.AddDigit(2)
//	acc.SetRadixPoint()
//	acc.AddDigit(3)
//	acc.SetNegative(true)
//
//	v := acc.End() // value.Float(-123000)
//
// An Accumulator is single-use and not safe for concurrent use.
type Accumulator struct {
	base uint64

	// digits is the amount of mantissa digits added so far, integer
	// and fractional part combined.
	digits int
	// radixOff is the digit offset of the radix point, or -1 if no
	// radix point was set.
	radixOff int
	// expVal is the accumulated exponent magnitude.
	expVal int

	negative    bool
	expNegative bool
	hasExp      bool

	// isFloat indicates that the mantissa is carried in fmag instead
	// of mag. Never reset once set.
	isFloat bool
	// mag is the mantissa magnitude while the number is an integer.
	// It never exceeds maxMagnitude; the digit that would push it
	// past that promotes the number to floating-point instead.
	mag uint64
	// fmag is the mantissa magnitude once the number is
	// floating-point.
	fmag float64

	truncated bool
}

// New creates a new accumulator for a number with the given base.
// The base must lie within [2, 255]; the caller is expected to have
// validated it.
func New(base uint8) *Accumulator {
	return &Accumulator{
		base:     uint64(base),
		radixOff: -1,
	}
}

// Base returns the base that this accumulator was created with.
func (a *Accumulator) Base() uint8 {
	return uint8(a.base)
}

// AddDigit adds the next mantissa digit, integer and fractional part
// alike. The digit must lie within [0, base). The number is promoted
// to floating-point if the digit no longer fits the integer mantissa.
//
// Digits past the maxDigits cap are dropped.
func (a *Accumulator) AddDigit(digit uint8) {
	if a.digits >= maxDigits {
		a.truncated = true
		return
	}

	d := uint64(digit)

	if !a.isFloat {
		// check if there is room for another digit, otherwise
		// promote to floating-point
		if a.mag > maxMagnitude/a.base {
			a.promote()
		}
	}

	if !a.isFloat {
		a.mag *= a.base

		// promote if the magnitude would exceed that of the most
		// negative representable integer
		if a.mag > maxMagnitude-d {
			a.promote()
			a.fmag += float64(d)
		} else {
			a.mag += d
		}
	} else {
		a.fmag = a.fmag*float64(a.base) + float64(d)
	}

	a.digits++
}

// AddExponentDigit adds the next exponent digit. The digit must lie
// within [0, base). Exponent digits that would push the exponent
// value past maxExponent are dropped.
//
// Adding an exponent digit marks the number as having an exponent,
// which makes End produce a floating-point value.
func (a *Accumulator) AddExponentDigit(digit uint8) {
	if a.expVal >= maxExponent {
		a.truncated = true
		return
	}
	a.expVal = a.expVal*int(a.base) + int(digit)
	a.hasExp = true
}

// SetRadixPoint places the radix point after the digits added so far.
// Calling it again moves the point to the then-current offset.
// Setting a radix point makes End produce a floating-point value.
func (a *Accumulator) SetRadixPoint() {
	a.radixOff = a.digits
}

// SetNegative sets whether the number is negative. The last call
// before End wins.
func (a *Accumulator) SetNegative(negative bool) {
	a.negative = negative
}

// SetExponentNegative sets whether the exponent is negative. The last
// call before End wins.
func (a *Accumulator) SetExponentNegative(negative bool) {
	a.expNegative = negative
}

// Truncated reports whether digits were dropped because the mantissa
// digit cap or the exponent value cap was reached. Such numbers still
// finalize, with reduced precision.
func (a *Accumulator) Truncated() bool {
	return a.truncated
}

// End computes the final value from the accumulated state. The result
// is a value.Integer if the number fits a signed 64 bit integer and
// neither a radix point nor an exponent was set, a value.Float
// otherwise.
//
// A floating-point result that exceeds the range of a float64 is
// ±Inf, one that vanishes below it is 0.
func (a *Accumulator) End() value.Value {
	// A positive integer maxes out one below the magnitude of its
	// negative counterpart, so a magnitude of exactly maxMagnitude is
	// representable with a negative sign only.
	if (!a.negative && a.mag > maxPositive) || a.hasExp || a.radixOff >= 0 {
		a.promote()
	}

	if !a.isFloat {
		// conversion wraps mag == maxMagnitude to math.MinInt64,
		// which the negation below maps onto itself
		i := int64(a.mag)
		if a.negative {
			i = -i
		}
		return value.NewInteger(i)
	}

	n := a.expVal
	if a.expNegative {
		n = -n
	}

	// the digits behind the radix point shift the exponent down
	if a.radixOff >= 0 {
		n -= a.digits - a.radixOff
	}

	divide := a.expNegative
	if n < 0 {
		divide = true
		n = -n
	}

	// base^n by squaring
	d := float64(a.base)
	e := 1.0
	for n != 0 {
		if n&1 == 1 {
			e *= d
		}
		n >>= 1
		d *= d
	}

	f := a.fmag
	if a.negative {
		f = -f
	}

	if divide {
		f /= e
	} else {
		f *= e
	}
	return value.NewFloat(f)
}

// promote switches the mantissa to floating-point, carrying over the
// integer magnitude. No-op if the mantissa already is floating-point.
func (a *Accumulator) promote() {
	if !a.isFloat {
		a.isFloat = true
		a.fmag = float64(a.mag)
	}
}
