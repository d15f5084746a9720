package spec

import (
	"fmt"
	"strconv"
)

// Instance is one concrete, caller-owned set of field values over a Spec.
// Values are collected field by field; cross-field constraints are checked
// lazily by Validate, not at assignment time. Once sealed by a successful
// render the instance refuses further mutation.
type Instance struct {
	spec   *Spec
	values map[string]fieldValue
	sealed bool
}

type fieldValue struct {
	kind Kind
	str  string
	num  int
	flag bool
}

// NewInstance creates an empty instance over spec.
func NewInstance(spec *Spec) *Instance {
	return &Instance{
		spec:   spec,
		values: make(map[string]fieldValue),
	}
}

// Spec returns the schema this instance is populated against.
func (in *Instance) Spec() *Spec {
	return in.spec
}

func (in *Instance) set(name string, want func(Kind) bool, v fieldValue) error {
	if in.sealed {
		return fmt.Errorf("instance: %q assigned after render", name)
	}

	f, ok := in.spec.Lookup(name)
	if !ok {
		return fmt.Errorf("instance: unknown field %q", name)
	}

	if !want(f.Kind) {
		return fmt.Errorf("instance: field %q is %s, value kind mismatch", name, f.Kind)
	}

	v.kind = f.Kind
	in.values[name] = v

	return nil
}

// SetFile assigns a file-path value.
func (in *Instance) SetFile(name, path string) error {
	return in.set(name, func(k Kind) bool { return k == KindFile }, fieldValue{str: path})
}

// SetString assigns a string or enum value. Enum membership is checked at
// validation time, not here.
func (in *Instance) SetString(name, v string) error {
	return in.set(name, func(k Kind) bool { return k == KindString || k == KindEnum }, fieldValue{str: v})
}

// SetInt assigns an integer value.
func (in *Instance) SetInt(name string, v int) error {
	return in.set(name, func(k Kind) bool { return k == KindInt }, fieldValue{num: v})
}

// SetFlag assigns a boolean flag value.
func (in *Instance) SetFlag(name string, v bool) error {
	return in.set(name, func(k Kind) bool { return k == KindFlag }, fieldValue{flag: v})
}

// Set assigns a value parsed from its textual form, dispatching on the
// declared kind. Used by the CLI front end.
func (in *Instance) Set(name, raw string) error {
	f, ok := in.spec.Lookup(name)
	if !ok {
		return fmt.Errorf("instance: unknown field %q", name)
	}

	switch f.Kind {
	case KindFile:
		return in.SetFile(name, raw)
	case KindString, KindEnum:
		return in.SetString(name, raw)
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("instance: field %q: %w", name, err)
		}

		return in.SetInt(name, n)
	case KindFlag:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("instance: field %q: %w", name, err)
		}

		return in.SetFlag(name, b)
	default:
		return fmt.Errorf("instance: field %q has invalid kind", name)
	}
}

// Unset removes a value, returning the field to the unset state.
func (in *Instance) Unset(name string) error {
	if in.sealed {
		return fmt.Errorf("instance: %q unset after render", name)
	}

	if _, ok := in.spec.Lookup(name); !ok {
		return fmt.Errorf("instance: unknown field %q", name)
	}

	delete(in.values, name)

	return nil
}

// IsSet returns true if the field carries a caller-supplied value.
func (in *Instance) IsSet(name string) bool {
	_, ok := in.values[name]
	return ok
}

// String returns the string form of a set file/string/enum field.
func (in *Instance) String(name string) (string, bool) {
	v, ok := in.values[name]
	if !ok || !v.kind.TakesValue() {
		return "", false
	}

	if v.kind == KindInt {
		return strconv.Itoa(v.num), true
	}

	return v.str, true
}

// Int returns the value of a set integer field.
func (in *Instance) Int(name string) (int, bool) {
	v, ok := in.values[name]
	if !ok || v.kind != KindInt {
		return 0, false
	}

	return v.num, true
}

// Flag returns the value of a set flag field.
func (in *Instance) Flag(name string) (bool, bool) {
	v, ok := in.values[name]
	if !ok || v.kind != KindFlag {
		return false, false
	}

	return v.flag, true
}

// Seal freezes the instance after a successful render. No backward
// transition: a new execution requires a new instance.
func (in *Instance) Seal() {
	in.sealed = true
}

// Sealed reports whether the instance has been rendered and frozen.
func (in *Instance) Sealed() bool {
	return in.sealed
}
