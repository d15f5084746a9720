package spec

import (
	"os"
	"sort"
	"strings"

	"neuroargs/internal/diagnostic"
)

// Statter is the injected path-existence probe used for MustExist checks.
type Statter func(path string) bool

// OSStat probes the local filesystem.
func OSStat(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate decides whether an instance is renderable. The pass is
// exhaustive: every violation is collected so callers see all problems at
// once. Checks, in order per field:
//
//  1. required fields must be set
//  2. at most one field of an exclusion group may be set
//  3. dependencies of set fields must be set
//  4. set MustExist paths must exist per stat
//  5. set enum values must be among the declared choices
func Validate(toolName string, s *Spec, inst *Instance, stat Statter) diagnostic.Findings {
	var res diagnostic.Findings

	if stat == nil {
		stat = OSStat
	}

	// One finding per exclusion group, not one per member.
	seenGroups := make(map[string]struct{})

	for _, f := range s.Fields() {
		if f.Required && !inst.IsSet(f.Name) {
			res.AddErrorf(diagnostic.CodeMissingRequired, toolName, f.Name,
				"required field %q is not set", f.Name)
		}

		if !inst.IsSet(f.Name) {
			continue
		}

		if len(f.Xor) > 0 {
			validateExclusion(&res, toolName, f, inst, seenGroups)
		}

		for _, dep := range f.Requires {
			if !inst.IsSet(dep) {
				res.AddErrorf(diagnostic.CodeMissingDependency, toolName, f.Name,
					"field %q requires %q, which is not set", f.Name, dep)
			}
		}

		if f.Kind == KindFile && f.MustExist {
			if path, ok := inst.String(f.Name); ok && !stat(path) {
				res.AddErrorf(diagnostic.CodePathNotFound, toolName, f.Name,
					"path %q does not exist", path)
			}
		}

		if f.Kind == KindEnum {
			validateChoice(&res, toolName, f, inst)
		}
	}

	return res
}

func validateExclusion(res *diagnostic.Findings, toolName string, f Field, inst *Instance, seen map[string]struct{}) {
	set := []string{f.Name}

	for _, other := range f.Xor {
		if inst.IsSet(other) {
			set = append(set, other)
		}
	}

	if len(set) < 2 {
		return
	}

	// The relation is declared on one side but enforced symmetrically;
	// dedupe so a group reported from one member is not reported again
	// from another.
	sort.Strings(set)

	key := strings.Join(set, ",")
	if _, ok := seen[key]; ok {
		return
	}

	seen[key] = struct{}{}

	res.AddErrorf(diagnostic.CodeMutuallyExclusive, toolName, f.Name,
		"mutually exclusive fields set together: %s", strings.Join(set, ", "))
}

func validateChoice(res *diagnostic.Findings, toolName string, f Field, inst *Instance) {
	v, ok := inst.String(f.Name)
	if !ok {
		return
	}

	for _, c := range f.Choices {
		if v == c {
			return
		}
	}

	res.AddErrorf(diagnostic.CodeInvalidChoice, toolName, f.Name,
		"value %q not among choices [%s]", v, strings.Join(f.Choices, ", "))
}
