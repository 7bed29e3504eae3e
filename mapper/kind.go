package mapper

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags the variants of Template.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindFields
	KindItems
	KindResolver

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
