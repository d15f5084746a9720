package spec

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the semantic type of a declared field.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindFile
	KindEnum
	KindFlag
	KindInt
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid returns true if k is a declared kind.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// TakesValue returns true for kinds rendered as a value token.
// Flag fields render their template token alone, or nothing.
func (k Kind) TakesValue() bool {
	return k != KindFlag
}
