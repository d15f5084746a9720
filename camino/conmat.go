// Package camino declares wrappers for the Camino diffusion-MRI toolkit.
package camino

import (
	"path/filepath"

	"neuroargs/internal/spec"
	"neuroargs/tool"
)

// TractStats are the per-tract statistics conmat can aggregate from a
// scalar image.
var TractStats = []string{"mean", "min", "max", "sum", "median", "var"}

// TractProps are the tract properties conmat can average without a scalar
// image.
var TractProps = []string{"length", "endpointsep"}

// NewConmat declares the conmat wrapper.
//
// Conmat creates a connectivity matrix from a 3D label image (the target
// image) and a set of streamlines. The matrix records how many streamlines
// connect each pair of targets, and optionally a mean tractwise statistic
// (eg tract-averaged FA, or length). Output is one or two CSV files whose
// first row holds the label names; names come from the target name file
// when given, otherwise from label intensity.
//
// Per the conmat documentation, streamlines are walked from the seed point
// in both directions and only the labeled region closest to the seed on
// each side is counted. That tie-break belongs to the external binary, not
// to this wrapper.
func NewConmat() *tool.Definition {
	inputs := spec.MustNew(
		spec.Field{
			Name:        "in_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-inputfile %s",
			Required:    true,
			MustExist:   true,
			Desc:        "Streamlines as generated by the Track interface",
		},
		spec.Field{
			Name:        "target_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-targetfile %s",
			Required:    true,
			MustExist:   true,
			Desc:        "An image containing targets, as used in ProcStreamlines interface.",
		},
		spec.Field{
			Name:        "scalar_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-scalarfile %s",
			MustExist:   true,
			Requires:    []string{"tract_stat"},
			Desc: "Optional scalar file for computing tract-based statistics. " +
				"Must be in the same space as the target file.",
		},
		spec.Field{
			Name:        "targetname_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-targetnamefile %s",
			MustExist:   true,
			Desc: "Optional names of targets, one entry per line: the target " +
				"intensity followed by the name, separated by white space. " +
				"Output matrices are ordered by label intensity.",
		},
		spec.Field{
			Name:        "tract_stat",
			Kind:        spec.KindEnum,
			ArgTemplate: "-tractstat %s",
			Choices:     TractStats,
			Requires:    []string{"scalar_file"},
			Xor:         []string{"tract_prop"},
			Desc:        "Tract statistic to use. See TractStats for other options.",
		},
		spec.Field{
			Name:        "tract_prop",
			Kind:        spec.KindEnum,
			ArgTemplate: "-tractstat %s",
			Choices:     TractProps,
			Xor:         []string{"tract_stat"},
			Desc:        "Tract property average to compute in the connectivity matrix.",
		},
		spec.Field{
			Name:        "output_root",
			Kind:        spec.KindFile,
			ArgTemplate: "-outputroot %s",
			Generated:   true,
			Desc: "Filename root prepended onto the names of the output " +
				"files. The extension will be determined from the input.",
		},
	)

	outputs := spec.MustNew(
		spec.Field{
			Name: "conmat_sc",
			Kind: spec.KindFile,
			Desc: "Connectivity matrix in CSV file.",
		},
		spec.Field{
			Name: "conmat_ts",
			Kind: spec.KindFile,
			Desc: "Tract statistics in CSV file.",
		},
	)

	return &tool.Definition{
		Name:    "conmat",
		Base:    []string{"conmat"},
		Inputs:  inputs,
		Outputs: outputs,
		Defaults: map[string]tool.GenFunc{
			// Deferred on the command line: when the caller supplies no
			// root, conmat names its outputs itself and the resolver below
			// derives the same names, so no -outputroot token is emitted.
			"output_root": func(*spec.Instance) string { return "" },
		},
		OutputNames: conmatOutputs,
	}
}

// conmatOutputs resolves the two CSV paths from the effective output root:
// the caller-supplied root verbatim, else "<in_file stem>_".
func conmatOutputs(inst *spec.Instance) (map[string]string, error) {
	root, err := tool.DefaultRoot(inst, "output_root", "in_file", "_")
	if err != nil {
		return nil, err
	}

	sc, err := filepath.Abs(root + "sc.csv")
	if err != nil {
		return nil, err
	}

	ts, err := filepath.Abs(root + "ts.csv")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"conmat_sc": sc,
		"conmat_ts": ts,
	}, nil
}
