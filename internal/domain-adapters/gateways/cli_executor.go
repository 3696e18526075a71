// Package gateways contains adapters that implement the domain gateway
// interfaces on top of the operating system.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/ochairo/astwrap/internal/domain/entities"
	"github.com/ochairo/astwrap/internal/domain/interfaces"
)

const waitDelay = 2 * time.Second

// cliExecutor runs the CLI as a child process
type cliExecutor struct {
	logger  interfaces.Logger
	workDir string
	env     map[string]string
}

// CLIExecutorOption customizes a cliExecutor
type CLIExecutorOption func(*cliExecutor)

// WithWorkDir runs every process in dir
func WithWorkDir(dir string) CLIExecutorOption {
	return func(e *cliExecutor) { e.workDir = dir }
}

// WithEnv adds environment variables on top of the current environment
func WithEnv(env map[string]string) CLIExecutorOption {
	return func(e *cliExecutor) { e.env = env }
}

// NewCLIExecutor creates a new process runner
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewCLIExecutor(logger interfaces.Logger, opts ...CLIExecutorOption) *cliExecutor {
	e := &cliExecutor{logger: interfaces.OrNoOp(logger)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts args[0] with the remaining tokens and blocks until it exits.
// Stdout and stderr share one buffer, so the captured text is merged in
// arrival order. Cancelling ctx kills the process and yields an
// *entities.InterruptedError; the partial buffer is not returned.
func (e *cliExecutor) Run(ctx context.Context, args []string) (*entities.ProcessOutput, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, &entities.LaunchError{Err: errors.New("empty argument vector")}
	}
	executable := args[0]

	//nolint:gosec // G204: the argument vector is assembled by the wrapper, not a shell
	cmd := exec.CommandContext(ctx, executable, args[1:]...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}
	if len(e.env) > 0 {
		env := os.Environ()
		for key, value := range e.env {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
		cmd.Env = env
	}

	// Grandchildren holding the pipe open must not outlive a cancelled wait
	cmd.WaitDelay = waitDelay

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	e.logger.Debug("launching cli process",
		interfaces.F("executable", executable),
		interfaces.F("args", len(args)-1),
	)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		e.logger.Error("cli process interrupted",
			interfaces.F("executable", executable),
			interfaces.F("error", ctxErr.Error()),
		)
		return nil, &entities.InterruptedError{Executable: executable, Err: ctxErr}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.logger.Error("failed to launch cli process",
				interfaces.F("executable", executable),
				interfaces.F("error", err.Error()),
			)
			return nil, &entities.LaunchError{Executable: executable, Err: err}
		}
		return &entities.ProcessOutput{
			Output:   output.String(),
			ExitCode: exitErr.ExitCode(),
			Duration: duration,
		}, nil
	}

	return &entities.ProcessOutput{
		Output:   output.String(),
		ExitCode: 0,
		Duration: duration,
	}, nil
}
