package entities

import (
	"fmt"
	"strings"
)

// LaunchError means the process could not be started at all
type LaunchError struct {
	Executable string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Executable, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// InterruptedError means the wait on a started process was abandoned because
// the caller's context was cancelled or timed out
type InterruptedError struct {
	Executable string
	Err        error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("execution of %s interrupted: %v", e.Executable, e.Err)
}

func (e *InterruptedError) Unwrap() error { return e.Err }

// CLIError is a tool-reported failure: the process ran and exited nonzero
type CLIError struct {
	ExitCode int
	Output   string
}

func (e *CLIError) Error() string {
	msg := strings.TrimSpace(e.Output)
	if msg == "" {
		return fmt.Sprintf("cli exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("cli exited with code %d: %s", e.ExitCode, msg)
}

// EngineError reports a container engine that is missing or unusable.
// Message is meant to be shown to the operator as-is.
type EngineError struct {
	Engine  string
	Message string
	Err     error
}

func (e *EngineError) Error() string { return e.Message }

func (e *EngineError) Unwrap() error { return e.Err }

// UnsupportedPlatformError is a configuration failure, never a decode result
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported OS: %s", e.OS)
}
