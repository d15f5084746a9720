package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroargs/internal/diagnostic"
)

// allPathsExist is the statter used where path existence is not under test.
func allPathsExist(string) bool { return true }

func validateSpec(t *testing.T) *Spec {
	t.Helper()

	return MustNew(
		Field{Name: "in_file", Kind: KindFile, ArgTemplate: "-i %s", Required: true, MustExist: true},
		Field{Name: "scalar_file", Kind: KindFile, ArgTemplate: "-sc %s", Requires: []string{"tract_stat"}},
		Field{Name: "tract_stat", Kind: KindEnum, ArgTemplate: "-ts %s",
			Choices: []string{"mean", "min"}, Requires: []string{"scalar_file"}, Xor: []string{"tract_prop"}},
		Field{Name: "tract_prop", Kind: KindEnum, ArgTemplate: "-ts %s",
			Choices: []string{"length"}, Xor: []string{"tract_stat"}},
	)
}

func TestValidate_CleanInstance(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))

	res := Validate("conmat", s, inst, allPathsExist)
	assert.True(t, res.IsValid(), "expected valid instance, got: %v", res.Errors)
}

func TestValidate_MissingRequiredNamesField(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)

	res := Validate("conmat", s, inst, allPathsExist)
	require.True(t, res.HasErrors())

	found := res.ByCode(diagnostic.CodeMissingRequired)
	require.Len(t, found, 1)
	assert.Equal(t, "in_file", found[0].Field)
	assert.Equal(t, "conmat", found[0].Tool)
}

func TestValidate_MutualExclusionReportedOncePerGroup(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))
	require.NoError(t, inst.SetFile("scalar_file", "fa.nii.gz"))
	require.NoError(t, inst.SetString("tract_stat", "mean"))
	require.NoError(t, inst.SetString("tract_prop", "length"))

	res := Validate("conmat", s, inst, allPathsExist)

	// Both sides declare the relation; the group must surface exactly once.
	found := res.ByCode(diagnostic.CodeMutuallyExclusive)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "tract_prop")
	assert.Contains(t, found[0].Message, "tract_stat")
}

func TestValidate_OneSideOfExclusionGroupPasses(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))
	require.NoError(t, inst.SetFile("scalar_file", "fa.nii.gz"))
	require.NoError(t, inst.SetString("tract_stat", "mean"))

	res := Validate("conmat", s, inst, allPathsExist)
	assert.True(t, res.IsValid(), "got: %v", res.Errors)
}

func TestValidate_MissingDependency(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))
	require.NoError(t, inst.SetFile("scalar_file", "fa.nii.gz"))

	res := Validate("conmat", s, inst, allPathsExist)

	found := res.ByCode(diagnostic.CodeMissingDependency)
	require.Len(t, found, 1)
	assert.Equal(t, "scalar_file", found[0].Field)
	assert.Contains(t, found[0].Message, "tract_stat")
}

func TestValidate_PathNotFoundOnlyForSetMustExist(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "/nonexistent/tracts.Bdouble"))

	missing := func(string) bool { return false }
	res := Validate("conmat", s, inst, missing)

	found := res.ByCode(diagnostic.CodePathNotFound)
	require.Len(t, found, 1, "only the set MustExist field is probed")
	assert.Equal(t, "in_file", found[0].Field)
}

func TestValidate_InvalidChoice(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)
	require.NoError(t, inst.SetFile("in_file", "tracts.Bdouble"))
	require.NoError(t, inst.SetFile("scalar_file", "fa.nii.gz"))
	require.NoError(t, inst.SetString("tract_stat", "mode"))

	res := Validate("conmat", s, inst, allPathsExist)

	found := res.ByCode(diagnostic.CodeInvalidChoice)
	require.Len(t, found, 1)
	assert.Equal(t, "tract_stat", found[0].Field)
}

func TestValidate_CollectsEveryViolationInOnePass(t *testing.T) {
	s := validateSpec(t)
	inst := NewInstance(s)

	// Missing required in_file, dangling scalar_file dependency, and a bad
	// enum value, all at once.
	require.NoError(t, inst.SetFile("scalar_file", "fa.nii.gz"))
	require.NoError(t, inst.SetString("tract_prop", "girth"))

	res := Validate("conmat", s, inst, allPathsExist)

	assert.Len(t, res.ByCode(diagnostic.CodeMissingRequired), 1)
	assert.Len(t, res.ByCode(diagnostic.CodeMissingDependency), 1)
	assert.Len(t, res.ByCode(diagnostic.CodeInvalidChoice), 1)
	assert.Len(t, res.Errors, 3)

	err := res.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), diagnostic.CodeMissingRequired)
	assert.Contains(t, err.Error(), diagnostic.CodeMissingDependency)
	assert.Contains(t, err.Error(), diagnostic.CodeInvalidChoice)
}
