package event

import "fmt"

// Target is anything that events can be applied to, i.e. the
// operation set of an accumulator.
type Target interface {
	AddDigit(digit uint8)
	AddExponentDigit(digit uint8)
	SetRadixPoint()
	SetNegative(negative bool)
	SetExponentNegative(negative bool)
}

// Event describes a single accumulation step. A sequence of events
// fully determines a number: what an external tokenizer would push
// into an accumulator call by call, captured as data.
type Event struct {
	typ      Type
	digit    uint8
	negative bool
}

// NewDigit creates a mantissa digit event. The digit is the numeric
// digit value, not its character.
func NewDigit(digit uint8) Event {
	return Event{typ: Digit, digit: digit}
}

// NewExponentDigit creates an exponent digit event.
func NewExponentDigit(digit uint8) Event {
	return Event{typ: ExponentDigit, digit: digit}
}

// NewRadixPoint creates a radix point event.
func NewRadixPoint() Event {
	return Event{typ: RadixPoint}
}

// NewSign creates a number sign event.
func NewSign(negative bool) Event {
	return Event{typ: Sign, negative: negative}
}

// NewExponentSign creates an exponent sign event.
func NewExponentSign(negative bool) Event {
	return Event{typ: ExponentSign, negative: negative}
}

// Is determines whether this event has the given type.
func (e Event) Is(typ Type) bool {
	return e.typ == typ
}

// Digit returns the digit value of a Digit or ExponentDigit event.
func (e Event) Digit() uint8 {
	return e.digit
}

// Negative returns the sign of a Sign or ExponentSign event.
func (e Event) Negative() bool {
	return e.negative
}

// Apply performs this event's accumulation step on the given target.
func (e Event) Apply(target Target) {
	switch e.typ {
	case Digit:
		target.AddDigit(e.digit)
	case ExponentDigit:
		target.AddExponentDigit(e.digit)
	case RadixPoint:
		target.SetRadixPoint()
	case Sign:
		target.SetNegative(e.negative)
	case ExponentSign:
		target.SetExponentNegative(e.negative)
	}
}

func (e Event) String() string {
	switch e.typ {
	case Digit, ExponentDigit:
		return fmt.Sprintf("%s(%d)", e.typ, e.digit)
	case Sign, ExponentSign:
		return fmt.Sprintf("%s(negative=%t)", e.typ, e.negative)
	}
	return e.typ.String()
}
