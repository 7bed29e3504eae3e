package shape

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies decoded source data by shape.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindMapping
	KindSequence
	KindScalar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindMapping, KindSequence:
		return true
	}
}
