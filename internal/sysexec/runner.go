// Package sysexec wraps subprocess execution behind a small interface so
// components that shell out to OS utilities can be tested with fakes.
package sysexec

import (
	"bytes"
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its standard output.
// A non-zero exit status is reported as an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner backed by os/exec
func NewRunner(logger *zap.Logger) Runner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Debug("Command failed",
			zap.String("command", name),
			zap.String("stderr", stderr.String()),
			zap.Error(err))
		return "", err
	}

	return stdout.String(), nil
}
