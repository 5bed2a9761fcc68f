package numparser

import (
	"github.com/tsatke/numparser/internal/accum"
)

// Parser builds a single number from a stream of digit and control
// events, as pushed by an external tokenizer. It never sees the
// number's text; recognizing digits and validating them against the
// base is the tokenizer's job.
//
// The number is carried as a signed integer for as long as possible
// and switches to floating-point once the mantissa outgrows 64 bits,
// a radix point is set or an exponent digit is added.
//
//	p := numparser.New(10)
//
//	// parse the number "-12.3e4"
//	// note that the call order does not have to match the input,
//	// except for the digits
//	p.AddExponentDigit(4)
//	p.AddDigit(1)
//	p.AddDigit(2)
//	p.SetRadixPoint()
//	p.AddDigit(3)
//	p.SetNegative(true)
//
//	switch v := p.End().(type) {
//	case numparser.Int:
//		fmt.Printf("int: %d\n", int64(v))
//	case numparser.Float:
//		fmt.Printf("float: %v\n", float64(v))
//	}
//
// A Parser is designed for single use: one number, one End call.
type Parser struct {
	acc *accum.Accumulator
}

// New creates a new single-use Parser for a number with the given
// base. The base must lie within [2, 255]; the caller is expected to
// have validated it.
func New(base uint8) Parser {
	return Parser{
		acc: accum.New(base),
	}
}

// Base returns the base this parser was created with.
func (p Parser) Base() uint8 {
	return p.acc.Base()
}

// AddDigit adds the next mantissa digit, most significant first. The
// digit is the numeric digit value within [0, base), not its
// character. Digits beyond the mantissa length cap are dropped.
func (p Parser) AddDigit(digit uint8) {
	p.acc.AddDigit(digit)
}

// AddExponentDigit adds the next exponent digit, most significant
// first. Exponent digits beyond the exponent value cap are dropped.
func (p Parser) AddExponentDigit(digit uint8) {
	p.acc.AddExponentDigit(digit)
}

// SetRadixPoint places the radix point after the mantissa digits
// added so far.
func (p Parser) SetRadixPoint() {
	p.acc.SetRadixPoint()
}

// SetNegative sets whether the number is negative.
func (p Parser) SetNegative(negative bool) {
	p.acc.SetNegative(negative)
}

// SetExponentNegative sets whether the exponent is negative.
func (p Parser) SetExponentNegative(negative bool) {
	p.acc.SetExponentNegative(negative)
}

// Truncated reports whether any digits were dropped because a cap was
// reached. Truncation is not an error; the number still finalizes,
// with reduced precision.
func (p Parser) Truncated() bool {
	return p.acc.Truncated()
}

// End computes the final number from the accumulated events. The
// result is an Int if the number fits a signed 64 bit integer and
// carries neither a radix point nor an exponent, a Float otherwise.
// A Float beyond the range of a float64 is ±Inf, one below it is 0.
func (p Parser) End() Value {
	return valueFromInternal(p.acc.End())
}
