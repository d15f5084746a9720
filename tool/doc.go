// Package tool binds a declarative input/output specification to one
// external binary and orchestrates an invocation end to end: validate the
// populated instance, render the argv token list, execute through an
// injected runner, and resolve the output file paths.
//
// Definitions are immutable once built and safe to share across any
// number of concurrent invocations; each instance belongs to exactly one
// caller.
package tool
