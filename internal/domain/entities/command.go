// Package entities defines core domain models and data structures.
package entities

import "time"

// MachineOutputFlag asks the CLI for machine-readable output
const MachineOutputFlag = "--json"

// Flag is a single command-line flag. A nil Value marks a boolean flag.
type Flag struct {
	Name  string
	Value *string
}

// CommandRequest is a logical CLI command: name, positional arguments and flags.
// Flags keep insertion order; setting a flag twice replaces its value in place.
type CommandRequest struct {
	command   string
	arguments []string
	flags     []Flag
}

// NewCommandRequest creates a request for the given command name
func NewCommandRequest(command string) *CommandRequest {
	return &CommandRequest{
		command:   command,
		arguments: []string{},
		flags:     []Flag{},
	}
}

// AddArg appends a positional argument
func (r *CommandRequest) AddArg(arg string) *CommandRequest {
	r.arguments = append(r.arguments, arg)
	return r
}

// AddFlag sets a flag with a value
func (r *CommandRequest) AddFlag(name, value string) *CommandRequest {
	v := value
	return r.setFlag(name, &v)
}

// AddBoolFlag sets a flag that carries no value
func (r *CommandRequest) AddBoolFlag(name string) *CommandRequest {
	return r.setFlag(name, nil)
}

func (r *CommandRequest) setFlag(name string, value *string) *CommandRequest {
	for i := range r.flags {
		if r.flags[i].Name == name {
			r.flags[i].Value = value
			return r
		}
	}
	r.flags = append(r.flags, Flag{Name: name, Value: value})
	return r
}

// Command returns the command name
func (r *CommandRequest) Command() string {
	return r.command
}

// Arguments returns a copy of the positional arguments
func (r *CommandRequest) Arguments() []string {
	out := make([]string, len(r.arguments))
	copy(out, r.arguments)
	return out
}

// Flags returns a copy of the flags in insertion order
func (r *CommandRequest) Flags() []Flag {
	out := make([]Flag, len(r.flags))
	copy(out, r.flags)
	return out
}

// Argv builds the literal token sequence for the process:
// executable, command, positional arguments, each flag name followed by its
// value when it has one, and MachineOutputFlag last. No validation is done.
func (r *CommandRequest) Argv(executable string) []string {
	argv := make([]string, 0, 3+len(r.arguments)+2*len(r.flags))
	argv = append(argv, executable, r.command)
	argv = append(argv, r.arguments...)
	for _, f := range r.flags {
		argv = append(argv, f.Name)
		if f.Value != nil {
			argv = append(argv, *f.Value)
		}
	}
	return append(argv, MachineOutputFlag)
}

// ProcessOutput is what the process invoker captured from one run.
// Output holds stdout and stderr merged in arrival order.
type ProcessOutput struct {
	Output   string
	ExitCode int
	Duration time.Duration
}

// CommandResponse is the uniform envelope for a generic invocation.
// Success is derived from ExitCode only; JSONOutput is nil when the raw output
// was not a single JSON document, in which case ErrorMessage explains why.
type CommandResponse struct {
	ExitCode     int    `json:"exitCode"`
	Success      bool   `json:"success"`
	RawOutput    string `json:"rawOutput"`
	JSONOutput   any    `json:"jsonOutput,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
