package event

//go:generate stringer -type=Type

// Type is an event type.
type Type uint8

// Known types.
const (
	TypeUnknown Type = iota

	// Digit is the event type for a mantissa digit, integer and
	// fractional part alike.
	Digit
	// ExponentDigit is the event type for an exponent digit.
	ExponentDigit
	// RadixPoint is the event type for placing the radix point at
	// the current digit offset.
	RadixPoint
	// Sign is the event type for setting the number sign.
	Sign
	// ExponentSign is the event type for setting the exponent sign.
	ExponentSign
)
