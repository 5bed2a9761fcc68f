package value

//go:generate stringer -type=Type

type Type uint8

const (
	TypeInvalid Type = iota
	TypeInteger
	TypeFloat
)
