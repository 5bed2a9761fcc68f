package numparser

import "github.com/tsatke/numparser/internal/value"

// Value is a finalized number, either an Int or a Float.
type Value interface {
	_val()
}

// Int is a number that fits a signed 64 bit integer and carries
// neither a radix point nor an exponent.
type Int int64

func (Int) _val() {}

// Float is a number that required floating-point representation.
type Float float64

func (Float) _val() {}

func valueFromInternal(v value.Value) Value {
	switch v.Type() {
	case value.TypeInteger:
		return Int(v.(value.Integer))
	case value.TypeFloat:
		return Float(v.(value.Float))
	}
	panic("unsupported")
}
