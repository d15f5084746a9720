package spec

// Field declares one input or output of an external tool.
type Field struct {
	// Name is the canonical identifier, unique within its Spec.
	Name string

	// Kind is the semantic type of the value.
	Kind Kind

	// ArgTemplate describes how a set value is rendered onto the command
	// line, printf-style (e.g. "-inputfile %s", "-a %d"). Flag fields carry
	// the bare token (e.g. "-nw"). An empty template means the field is
	// never rendered (outputs, environment-only fields).
	ArgTemplate string

	// Position pins the rendered token group to an explicit ordinal in the
	// final argument sequence. Negative positions count from the end. Nil
	// means declaration order.
	Position *int

	// Required marks the field as mandatory for a renderable instance.
	Required bool

	// Xor lists fields mutually exclusive with this one: at most one field
	// of {self} ∪ Xor may be set.
	Xor []string

	// Requires lists fields that must also be set whenever this field is set.
	Requires []string

	// MustExist requires a set file-path value to exist at validation time.
	MustExist bool

	// Generated marks the field for deferred default computation: when
	// unset, the owning tool's generation rule supplies the value.
	Generated bool

	// Choices enumerates the accepted values of a KindEnum field.
	Choices []string

	// Desc is the caller-facing description of the field.
	Desc string
}

// Pos returns a pointer to i, for use as a Field.Position literal.
func Pos(i int) *int {
	return &i
}

// FieldInfo is the schema-description record reported per field. It is the
// contract conformance tables check against the live Spec.
type FieldInfo struct {
	Name        string
	Kind        Kind
	ArgTemplate string
	Position    *int
	Required    bool
	Xor         []string
	Requires    []string
	MustExist   bool
	Generated   bool
	Choices     []string
}

func (f Field) info() FieldInfo {
	return FieldInfo{
		Name:        f.Name,
		Kind:        f.Kind,
		ArgTemplate: f.ArgTemplate,
		Position:    f.Position,
		Required:    f.Required,
		Xor:         append([]string(nil), f.Xor...),
		Requires:    append([]string(nil), f.Requires...),
		MustExist:   f.MustExist,
		Generated:   f.Generated,
		Choices:     append([]string(nil), f.Choices...),
	}
}
