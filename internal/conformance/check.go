package conformance

import (
	"fmt"
	"sort"

	"neuroargs/internal/diagnostic"
	"neuroargs/internal/spec"
)

// Conformance finding codes.
const (
	CodeMissingField    = "missing_field"
	CodeUnexpectedField = "unexpected_field"
	CodeMismatch        = "metadata_mismatch"
)

// Check compares a live pair of specifications against the table. All
// mismatches are collected; nothing short-circuits.
func Check(t *Table, inputs, outputs *spec.Spec) diagnostic.Findings {
	var res diagnostic.Findings

	checkSide(&res, t.Tool, "inputs", t.Inputs, inputs)
	checkSide(&res, t.Tool, "outputs", t.Outputs, outputs)

	return res
}

func checkSide(res *diagnostic.Findings, toolName, side string, expected map[string]FieldExpect, live *spec.Spec) {
	declared := make(map[string]spec.FieldInfo, live.Len())
	for _, fi := range live.Describe() {
		declared[fi.Name] = fi
	}

	for _, name := range sortedKeys(expected) {
		fi, ok := declared[name]
		if !ok {
			res.AddErrorf(CodeMissingField, toolName, name,
				"%s table expects field %q, spec does not declare it", side, name)
			continue
		}

		checkField(res, toolName, name, expected[name], fi)
	}

	for _, fi := range live.Describe() {
		if _, ok := expected[fi.Name]; !ok {
			res.AddErrorf(CodeUnexpectedField, toolName, fi.Name,
				"spec declares field %q, %s table does not list it", fi.Name, side)
		}
	}
}

func checkField(res *diagnostic.Findings, toolName, name string, want FieldExpect, got spec.FieldInfo) {
	mismatch := func(meta string, wantV, gotV any) {
		res.AddErrorf(CodeMismatch, toolName, name,
			"%s: expected %v, spec declares %v", meta, wantV, gotV)
	}

	if want.ArgStr != got.ArgTemplate {
		mismatch("argstr", fmt.Sprintf("%q", want.ArgStr), fmt.Sprintf("%q", got.ArgTemplate))
	}

	if want.Mandatory != got.Required {
		mismatch("mandatory", want.Mandatory, got.Required)
	}

	if want.Exists != got.MustExist {
		mismatch("exists", want.Exists, got.MustExist)
	}

	if want.GenFile != got.Generated {
		mismatch("genfile", want.GenFile, got.Generated)
	}

	if !samePosition(want.Position, got.Position) {
		mismatch("position", describePos(want.Position), describePos(got.Position))
	}

	if !sameSet(want.Requires, got.Requires) {
		mismatch("requires", want.Requires, got.Requires)
	}

	if !sameSet(want.Xor, got.Xor) {
		mismatch("xor", want.Xor, got.Xor)
	}

	if !sameList(want.Choices, got.Choices) {
		mismatch("choices", want.Choices, got.Choices)
	}
}

func samePosition(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func describePos(p *int) string {
	if p == nil {
		return "none"
	}

	return fmt.Sprintf("%d", *p)
}

// sameSet compares name lists ignoring order.
func sameSet(a, b []string) bool {
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)

	return sameList(as, bs)
}

// sameList compares lists respecting order (choice order is part of the
// contract).
func sameList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func sortedKeys(m map[string]FieldExpect) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
