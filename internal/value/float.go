package value

type Float float64

func (Float) Type() Type       { return TypeFloat }
func (f Float) Value() float64 { return float64(f) }

func NewFloat(value float64) Float {
	return Float(value)
}
