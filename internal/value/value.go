package value

// Value is a finalized number. It is either an Integer or a Float,
// which can be determined with Type.
type Value interface {
	Type() Type
}
