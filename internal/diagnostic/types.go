package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes shared by instance validation and conformance checking.
const (
	CodeMissingRequired   = "missing_required"
	CodeMutuallyExclusive = "mutually_exclusive"
	CodeMissingDependency = "missing_dependency"
	CodePathNotFound      = "path_not_found"
	CodeInvalidChoice     = "invalid_choice"
)

// Findings holds all findings from one validation or conformance pass.
type Findings struct {
	Errors   []Finding
	Warnings []Finding
}

// Finding represents a single validation or conformance finding.
type Finding struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Tool identifies which tool specification this relates to (if any).
	Tool string
	// Field identifies which declared field this relates to (if any).
	Field string
	// Message is the human-readable description.
	Message string
}

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error finding.
func (f *Findings) AddError(code, tool, field, message string) {
	f.Errors = append(f.Errors, Finding{
		Severity: SeverityError,
		Code:     code,
		Tool:     tool,
		Field:    field,
		Message:  message,
	})
}

// AddErrorf adds an error finding with a formatted message.
func (f *Findings) AddErrorf(code, tool, field, format string, args ...any) {
	f.AddError(code, tool, field, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning finding.
func (f *Findings) AddWarning(code, tool, field, message string) {
	f.Warnings = append(f.Warnings, Finding{
		Severity: SeverityWarning,
		Code:     code,
		Tool:     tool,
		Field:    field,
		Message:  message,
	})
}

// HasErrors returns true if there are any error findings.
func (f *Findings) HasErrors() bool {
	return len(f.Errors) > 0
}

// IsValid returns true if there are no error findings.
func (f *Findings) IsValid() bool {
	return len(f.Errors) == 0
}

// Merge merges another Findings instance into this one.
func (f *Findings) Merge(other Findings) {
	f.Errors = append(f.Errors, other.Errors...)
	f.Warnings = append(f.Warnings, other.Warnings...)
}

// ByCode returns all error findings carrying the given code.
func (f *Findings) ByCode(code string) []Finding {
	var out []Finding

	for _, e := range f.Errors {
		if e.Code == code {
			out = append(out, e)
		}
	}

	return out
}

// Error returns a combined error from all error findings, or nil if valid.
func (f *Findings) Error() error {
	if f.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range f.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted finding string.
func (d Finding) String() string {
	var prefix []string
	if d.Tool != "" {
		prefix = append(prefix, "["+d.Tool+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
