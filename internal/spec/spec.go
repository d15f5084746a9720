package spec

import (
	"fmt"
)

// DuplicateFieldError reports a second declaration of an already-declared
// field name. A schema-definition defect, caught at construction time.
type DuplicateFieldError struct {
	Name string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("spec: duplicate field %q", e.Name)
}

// InvalidPositionError reports two fields pinned to the same explicit
// position, or a field declared with an invalid kind.
type InvalidPositionError struct {
	Name     string
	Other    string
	Position int
}

func (e InvalidPositionError) Error() string {
	return fmt.Sprintf("spec: field %q position %d collides with field %q", e.Name, e.Position, e.Other)
}

// Spec is a frozen, ordered registry of field declarations for one side
// (inputs or outputs) of an external tool. Safe for concurrent reads.
type Spec struct {
	fields []Field
	index  map[string]int
}

// New builds a Spec from field declarations. It fails with
// DuplicateFieldError on a repeated name and InvalidPositionError on a
// position collision. The returned Spec is frozen; there is no mutation API.
func New(fields ...Field) (*Spec, error) {
	s := &Spec{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	positions := make(map[int]string, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("spec: field with empty name")
		}

		if !f.Kind.IsValid() {
			return nil, fmt.Errorf("spec: field %q has invalid kind %d", f.Name, int(f.Kind))
		}

		if _, ok := s.index[f.Name]; ok {
			return nil, DuplicateFieldError{Name: f.Name}
		}

		if f.Position != nil {
			if other, ok := positions[*f.Position]; ok {
				return nil, InvalidPositionError{Name: f.Name, Other: other, Position: *f.Position}
			}

			positions[*f.Position] = f.Name
		}

		if f.Kind == KindEnum && len(f.Choices) == 0 {
			return nil, fmt.Errorf("spec: enum field %q has no choices", f.Name)
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustNew is New, panicking on error. Wrapper packages use it for their
// compile-time-constant declarations.
func MustNew(fields ...Field) *Spec {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of declared fields.
func (s *Spec) Len() int {
	return len(s.fields)
}

// Names returns the field names in declaration order.
func (s *Spec) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}

	return out
}

// Lookup returns the declaration for name.
func (s *Spec) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Fields returns a copy of the declarations in declaration order.
func (s *Spec) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Describe reports the schema-description records in declaration order.
// This is the interface conformance tables are checked against.
func (s *Spec) Describe() []FieldInfo {
	out := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.info()
	}

	return out
}
