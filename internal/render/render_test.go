package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroargs/internal/spec"
)

func allPathsExist(string) bool { return true }

func renderInput(t *testing.T, s *spec.Spec) Input {
	t.Helper()

	return Input{
		Tool: "fake",
		Base: []string{"fake"},
		Spec: s,
		Stat: allPathsExist,
	}
}

func TestCommand_DeclarationOrderAndTemplates(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "-inputfile %s", Required: true},
		spec.Field{Name: "target_file", Kind: spec.KindFile, ArgTemplate: "-targetfile %s", Required: true},
		spec.Field{Name: "iterations", Kind: spec.KindInt, ArgTemplate: "-n %d"},
		spec.Field{Name: "verbose", Kind: spec.KindFlag, ArgTemplate: "-v"},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))
	require.NoError(t, inst.SetFile("target_file", "atlas.nii.gz"))
	require.NoError(t, inst.SetInt("iterations", 12))
	require.NoError(t, inst.SetFlag("verbose", true))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"fake",
		"-inputfile", "tracts.Bdouble",
		"-targetfile", "atlas.nii.gz",
		"-n", "12",
		"-v",
	}, argv)
	assert.True(t, inst.Sealed())
}

func TestCommand_DeterministicAcrossRenders(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-2), Required: true},
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-1)},
		spec.Field{Name: "seed", Kind: spec.KindInt, ArgTemplate: "-seed %d"},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "lh.stl"))
	require.NoError(t, inst.SetFile("out_file", "lh_out.stl"))
	require.NoError(t, inst.SetInt("seed", 42))

	first, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)

	second, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCommand_ValidationAbortsBeforeRendering(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "-i %s", Required: true},
	)

	inst := spec.NewInstance(s)

	argv, err := Command(renderInput(t, s), inst)
	require.Error(t, err)
	assert.Nil(t, argv)
	assert.False(t, inst.Sealed())
	assert.Contains(t, err.Error(), "in_file")
}

func TestCommand_FalseFlagAndUnsetFieldsEmitNothing(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "verbose", Kind: spec.KindFlag, ArgTemplate: "-v"},
		spec.Field{Name: "label", Kind: spec.KindString, ArgTemplate: "-l %s"},
		spec.Field{Name: "hidden", Kind: spec.KindString}, // no template, never rendered
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFlag("verbose", false))
	require.NoError(t, inst.SetString("hidden", "x"))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)
	assert.Equal(t, []string{"fake"}, argv)
}

func TestCommand_NegativePositionsCountFromEnd(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-2), Required: true},
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-1)},
		spec.Field{Name: "iterations", Kind: spec.KindInt, ArgTemplate: "-n %d"},
		spec.Field{Name: "momentum", Kind: spec.KindFlag, ArgTemplate: "-m"},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "lh.stl"))
	require.NoError(t, inst.SetFile("out_file", "lh_smoothed.stl"))
	require.NoError(t, inst.SetInt("iterations", 5))
	require.NoError(t, inst.SetFlag("momentum", true))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)

	assert.Equal(t, []string{"fake", "-n", "5", "-m", "lh.stl", "lh_smoothed.stl"}, argv)
}

func TestCommand_PositionsResolveAgainstSetFieldsOnly(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-2), Required: true},
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-1)},
		spec.Field{Name: "iterations", Kind: spec.KindInt, ArgTemplate: "-n %d"},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "lh.stl"))
	require.NoError(t, inst.SetFile("out_file", "out.stl"))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)
	assert.Equal(t, []string{"fake", "lh.stl", "out.stl"}, argv)
}

func TestCommand_ResolvedSlotCollisionShiftsTowardEnd(t *testing.T) {
	// head pins slot 0; tail pins -2, which also resolves to 0 when only
	// two groups render. The later declaration shifts to the next free slot.
	s := spec.MustNew(
		spec.Field{Name: "head", Kind: spec.KindString, ArgTemplate: "%s", Position: spec.Pos(0)},
		spec.Field{Name: "tail", Kind: spec.KindString, ArgTemplate: "%s", Position: spec.Pos(-2)},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetString("head", "first"))
	require.NoError(t, inst.SetString("tail", "second"))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)
	assert.Equal(t, []string{"fake", "first", "second"}, argv)
}

func TestCommand_GeneratedFieldRules(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "-i %s", Required: true},
		spec.Field{Name: "output_root", Kind: spec.KindFile, ArgTemplate: "-outputroot %s", Generated: true},
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "-o %s", Generated: true},
	)

	in := renderInput(t, s)
	in.Defaults = map[string]GenFunc{
		// A declining rule defers entirely to output resolution.
		"output_root": func(*spec.Instance) string { return "" },
		"out_file": func(inst *spec.Instance) string {
			return "derived_out.nii.gz"
		},
	}

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))

	argv, err := Command(in, inst)
	require.NoError(t, err)
	assert.Equal(t, []string{"fake", "-i", "tracts.Bdouble", "-o", "derived_out.nii.gz"}, argv)
	assert.NotContains(t, argv, "-outputroot")
}

func TestCommand_CallerValueWinsOverGeneration(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "-o %s", Generated: true},
	)

	in := renderInput(t, s)
	in.Defaults = map[string]GenFunc{
		"out_file": func(*spec.Instance) string { return "derived.nii.gz" },
	}

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("out_file", "explicit.nii.gz"))

	argv, err := Command(in, inst)
	require.NoError(t, err)
	assert.Equal(t, []string{"fake", "-o", "explicit.nii.gz"}, argv)
}

func TestCommand_ValueWithWhitespaceStaysOneToken(t *testing.T) {
	s := spec.MustNew(
		spec.Field{Name: "in_file", Kind: spec.KindFile, ArgTemplate: "-inputfile %s", Required: true},
		spec.Field{Name: "out_file", Kind: spec.KindFile, ArgTemplate: "%s", Position: spec.Pos(-1)},
	)

	inst := spec.NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "/data/my dir/tracts.Bdouble"))
	require.NoError(t, inst.SetFile("out_file", "/data/my dir/out surface.stl"))

	argv, err := Command(renderInput(t, s), inst)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"fake",
		"-inputfile", "/data/my dir/tracts.Bdouble",
		"/data/my dir/out surface.stl",
	}, argv)
}

func TestExpandTemplate(t *testing.T) {
	cases := []struct {
		template string
		value    string
		want     []string
	}{
		{"-inputfile %s", "tracts.Bdouble", []string{"-inputfile", "tracts.Bdouble"}},
		{"-a %d", "10", []string{"-a", "10"}},
		{"%d ", "8", []string{"8"}},
		{"%s", "lh.stl", []string{"lh.stl"}},
		{"-b", "area.mgz", []string{"-b", "area.mgz"}},
		{"-inputfile %s", "/data/my dir/tracts.Bdouble", []string{"-inputfile", "/data/my dir/tracts.Bdouble"}},
		{"%s", "name with spaces.stl", []string{"name with spaces.stl"}},
	}

	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			assert.Equal(t, tc.want, expandTemplate(tc.template, tc.value))
		})
	}
}
