// Package conformance checks a live tool specification against a
// hand-declared YAML expectation table. Wrapper packages keep one table
// per tool in their tests, so a drive-by edit to a declaration cannot
// silently change the wire contract with the external binary.
//
// A table lists every input and output field with the metadata the
// schema-description interface reports:
//
//	tool: conmat
//	inputs:
//	  in_file:
//	    argstr: "-inputfile %s"
//	    mandatory: true
//	    exists: true
//	  tract_stat:
//	    argstr: "-tractstat %s"
//	    requires: [scalar_file]
//	    xor: [tract_prop]
//	outputs:
//	  conmat_sc: {}
//
// Checking is exhaustive in both directions: expected-but-undeclared and
// declared-but-unexpected fields are reported together with every
// metadata mismatch.
package conformance
