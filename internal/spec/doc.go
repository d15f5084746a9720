// Package spec provides the declarative field model for external
// command-line tools: field kinds, argument templates, cross-field
// constraints, frozen specifications, and populated instances.
//
// A Spec is the process-wide, read-only schema of one tool's accepted
// inputs or produced outputs. An Instance is one caller-owned set of
// concrete values for a single invocation. Constraint checking is lazy:
// values are collected field by field and validated in one exhaustive
// pass at render time.
//
// # Constraint model
//
// Cross-field relations are declared as per-field adjacency:
//
//   - Xor: at most one field of {self} ∪ group may be set
//   - Requires: every listed field must be set when this field is set
//
// Relations are declared on one side but enforced symmetrically.
package spec
