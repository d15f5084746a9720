package tool

import (
	"context"
	"fmt"
	"time"

	"neuroargs/internal/diagnostic"
	"neuroargs/internal/render"
	"neuroargs/internal/spec"
	"neuroargs/internal/toolexec"
)

// GenFunc computes a deferred default for a generated field.
type GenFunc = render.GenFunc

// NameFunc resolves the output specification's field values to concrete
// file paths for one instance. It must be pure: identical instance state
// always yields identical paths.
type NameFunc func(inst *spec.Instance) (map[string]string, error)

// Definition ties a base command to its input and output specifications.
type Definition struct {
	// Name is the wrapper identifier, also used in findings.
	Name string

	// Base is the fixed leading argv (binary plus any fixed tokens).
	Base []string

	// Inputs and Outputs are the frozen field specifications.
	Inputs  *spec.Spec
	Outputs *spec.Spec

	// Defaults holds deferred default rules for generated input fields.
	Defaults map[string]GenFunc

	// OutputNames computes the output field paths after a run.
	OutputNames NameFunc

	// Stat overrides the path-existence probe; nil uses the OS.
	Stat spec.Statter

	// Desc is the caller-facing summary, including any documented
	// behavior of the external binary itself.
	Desc string
}

// Result is the typed record of one invocation.
type Result struct {
	Argv     []string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration

	// OutputFiles maps output field names to resolved paths.
	OutputFiles map[string]string
}

// NewInstance returns an empty instance over the input specification.
func (d *Definition) NewInstance() *spec.Instance {
	return spec.NewInstance(d.Inputs)
}

// Validate runs the exhaustive constraint pass without rendering.
func (d *Definition) Validate(inst *spec.Instance) diagnostic.Findings {
	return spec.Validate(d.Name, d.Inputs, inst, d.Stat)
}

// Command validates inst and renders the argv token list. All violations
// are reported together in a single error; on success the instance is
// sealed.
func (d *Definition) Command(inst *spec.Instance) ([]string, error) {
	return render.Command(render.Input{
		Tool:     d.Name,
		Base:     d.Base,
		Spec:     d.Inputs,
		Defaults: d.Defaults,
		Stat:     d.Stat,
	}, inst)
}

// OutputFiles resolves the declared outputs to concrete paths. Every
// resolved name must be a declared output field.
func (d *Definition) OutputFiles(inst *spec.Instance) (map[string]string, error) {
	if d.OutputNames == nil {
		return map[string]string{}, nil
	}

	names, err := d.OutputNames(inst)
	if err != nil {
		return nil, fmt.Errorf("%s: resolve outputs: %w", d.Name, err)
	}

	for field := range names {
		if _, ok := d.Outputs.Lookup(field); !ok {
			return nil, fmt.Errorf("%s: resolved undeclared output field %q", d.Name, field)
		}
	}

	return names, nil
}

// Run renders inst, executes it through runner in workdir, and resolves
// outputs. Execution failure propagates untouched alongside the captured
// result; the core neither retries nor reinterprets exit codes.
func (d *Definition) Run(ctx context.Context, runner toolexec.Runner, workdir string, inst *spec.Instance) (*Result, error) {
	argv, err := d.Command(inst)
	if err != nil {
		return nil, err
	}

	exec, runErr := runner.Run(ctx, workdir, argv)

	res := &Result{
		Argv:     argv,
		ExitCode: exec.ExitCode,
		Stdout:   exec.Stdout,
		Stderr:   exec.Stderr,
		Duration: exec.Duration,
	}
	if runErr != nil {
		return res, fmt.Errorf("%s: execution failed: %w", d.Name, runErr)
	}

	outputs, err := d.OutputFiles(inst)
	if err != nil {
		return res, err
	}

	res.OutputFiles = outputs

	return res, nil
}
