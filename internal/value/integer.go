package value

type Integer int64

func (Integer) Type() Type     { return TypeInteger }
func (i Integer) Value() int64 { return int64(i) }

func NewInteger(value int64) Integer {
	return Integer(value)
}
