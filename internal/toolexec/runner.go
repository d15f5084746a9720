// Package toolexec executes rendered command lines. It is the process
// execution collaborator of the wrapper core: given an atomic token
// sequence and a working directory it runs the binary synchronously,
// captures both streams, and reports the exit status. It never retries
// and never interprets exit codes beyond succeeded versus failed.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// ExecResult reports one finished invocation.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Runner abstracts external process execution so wrapper orchestration and
// tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, workdir string, argv []string) (ExecResult, error)
}

// ExecRunner runs commands on the local host through os/exec. Timeouts and
// cancellation arrive through the context; the runner adds none of its own.
type ExecRunner struct {
	Log zerolog.Logger
}

// Run executes argv[0] with argv[1:] in workdir. Tokens are passed through
// atomically; there is no shell re-parsing. A launch failure (binary not
// found) reports exit code 127, mirroring shell convention.
func (r ExecRunner) Run(ctx context.Context, workdir string, argv []string) (ExecResult, error) {
	if len(argv) == 0 {
		return ExecResult{ExitCode: 127}, errors.New("toolexec: empty argv")
	}

	start := time.Now()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workdir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Log.Debug().Str("binary", argv[0]).Strs("argv", argv).Str("workdir", workdir).Msg("invoking tool")

	err := cmd.Run()
	res := ExecResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err == nil {
		r.Log.Info().Str("binary", argv[0]).Dur("took", res.Duration).Msg("tool finished")
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	} else {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			res.ExitCode = 127
		} else {
			res.ExitCode = 1
		}
	}

	r.Log.Error().Str("binary", argv[0]).Int("exit_code", res.ExitCode).Err(err).Msg("tool failed")

	return res, err
}
