// Package diagnostic provides structured findings for instance validation
// and spec conformance checks.
//
// Key capabilities:
//   - Exhaustive reporting: every violation found in one pass, not fail-fast
//   - Stable codes per violation kind
//   - A combined error listing all findings together
package diagnostic
