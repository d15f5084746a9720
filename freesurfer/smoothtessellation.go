// Package freesurfer declares wrappers for FreeSurfer surface tools.
package freesurfer

import (
	"path/filepath"

	"neuroargs/internal/fname"
	"neuroargs/internal/spec"
	"neuroargs/tool"
)

// NewSmoothTessellation declares the mris_smooth wrapper.
//
// Smooths a tessellated surface. The input surface is the second-to-last
// positional argument and the output surface the last; when no output name
// is supplied one is derived next to the input.
func NewSmoothTessellation() *tool.Definition {
	inputs := spec.MustNew(
		spec.Field{
			Name:        "in_file",
			Kind:        spec.KindFile,
			ArgTemplate: "%s",
			Position:    spec.Pos(-2),
			Required:    true,
			MustExist:   true,
			Desc:        "Input volume to tessellate voxels from.",
		},
		spec.Field{
			Name:        "out_file",
			Kind:        spec.KindFile,
			ArgTemplate: "%s",
			Position:    spec.Pos(-1),
			Generated:   true,
			Desc:        "output filename or True to generate one",
		},
		spec.Field{
			Name:        "curvature_averaging_iterations",
			Kind:        spec.KindInt,
			ArgTemplate: "-a %d",
			Desc:        "Number of curvature averaging iterations (default=10)",
		},
		spec.Field{
			Name:        "smoothing_iterations",
			Kind:        spec.KindInt,
			ArgTemplate: "-n %d",
			Desc:        "Number of smoothing iterations (default=10)",
		},
		spec.Field{
			Name:        "snapshot_writing_iterations",
			Kind:        spec.KindInt,
			ArgTemplate: "-w %d",
			Desc:        "Write snapshot every N iterations",
		},
		spec.Field{
			Name:        "use_gaussian_curvature_smoothing",
			Kind:        spec.KindFlag,
			ArgTemplate: "-g",
			Desc:        "Use Gaussian curvature smoothing",
		},
		spec.Field{
			Name:        "gaussian_curvature_norm_steps",
			Kind:        spec.KindInt,
			ArgTemplate: "%d ",
			Desc:        "Use Gaussian curvature smoothing with N normalization steps",
		},
		spec.Field{
			Name:        "gaussian_curvature_smoothing_steps",
			Kind:        spec.KindInt,
			ArgTemplate: "%d",
			Desc:        "Use Gaussian curvature smoothing with N smoothing steps",
		},
		spec.Field{
			Name:        "disable_estimates",
			Kind:        spec.KindFlag,
			ArgTemplate: "-nw",
			Desc:        "Disables the writing of curvature and area estimates",
		},
		spec.Field{
			Name:        "normalize_area",
			Kind:        spec.KindFlag,
			ArgTemplate: "-area",
			Desc:        "Normalizes the area after smoothing",
		},
		spec.Field{
			Name:        "use_momentum",
			Kind:        spec.KindFlag,
			ArgTemplate: "-m",
			Desc:        "Uses momentum",
		},
		spec.Field{
			Name:        "seed",
			Kind:        spec.KindInt,
			ArgTemplate: "-seed %d",
			Desc:        "Seed for setting random number generator",
		},
		spec.Field{
			Name:        "out_curvature_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-c %s",
			Desc:        "Write curvature to ?h.curvname (default \"curv\")",
		},
		spec.Field{
			Name:        "out_area_file",
			Kind:        spec.KindFile,
			ArgTemplate: "-b %s",
			Desc:        "Write area to ?h.areaname (default \"area\")",
		},
		spec.Field{
			Name: "subjects_dir",
			Kind: spec.KindFile,
			Desc: "Subjects directory; recorded for provenance, never rendered.",
		},
	)

	outputs := spec.MustNew(
		spec.Field{
			Name: "surface",
			Kind: spec.KindFile,
			Desc: "Smoothed surface file.",
		},
	)

	return &tool.Definition{
		Name:    "smooth_tessellation",
		Base:    []string{"mris_smooth"},
		Inputs:  inputs,
		Outputs: outputs,
		Defaults: map[string]tool.GenFunc{
			// The binary requires the output token, so the rule always
			// produces a name when the caller omitted one.
			"out_file": defaultOutFile,
		},
		OutputNames: smoothTessellationOutputs,
	}
}

// defaultOutFile derives "<stem>_smoothed<ext>" beside the input surface.
func defaultOutFile(inst *spec.Instance) string {
	src, ok := inst.String("in_file")
	if !ok {
		return ""
	}

	_, stem, ext := fname.Split(src)

	return stem + "_smoothed" + ext
}

func smoothTessellationOutputs(inst *spec.Instance) (map[string]string, error) {
	name, ok := inst.String("out_file")
	if !ok {
		name = defaultOutFile(inst)
	}

	surface, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}

	return map[string]string{"surface": surface}, nil
}
