package tool

import (
	"fmt"
	"path/filepath"

	"neuroargs/internal/fname"
	"neuroargs/internal/spec"
)

// DefaultRoot implements the shared default-naming policy for tools whose
// output files hang off a common filename root. When the caller set
// rootField its value is used verbatim; otherwise the root is the stem of
// the designated source input with suffix appended, anchored at the
// current working directory. Pure: the same instance always yields the
// same root.
func DefaultRoot(inst *spec.Instance, rootField, sourceField, suffix string) (string, error) {
	if root, ok := inst.String(rootField); ok {
		return root, nil
	}

	src, ok := inst.String(sourceField)
	if !ok {
		return "", fmt.Errorf("neither %q nor %q is set", rootField, sourceField)
	}

	root, err := filepath.Abs(fname.Stem(src) + suffix)
	if err != nil {
		return "", err
	}

	return root, nil
}

// SiblingName derives a default output path next to a source input: the
// source stem plus suffix, keeping the source extension, as an absolute
// path in the current working directory.
func SiblingName(inst *spec.Instance, sourceField, suffix string) (string, error) {
	src, ok := inst.String(sourceField)
	if !ok {
		return "", fmt.Errorf("source field %q is not set", sourceField)
	}

	_, stem, ext := fname.Split(src)

	return filepath.Abs(stem + suffix + ext)
}
