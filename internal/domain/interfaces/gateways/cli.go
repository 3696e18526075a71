// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// CommandRunner launches a finished argument vector and captures its output.
//
// A process that starts and exits nonzero is not an error: the exit code is
// reported in ProcessOutput. Errors are reserved for processes that could not
// be started (*entities.LaunchError) or whose wait was abandoned
// (*entities.InterruptedError).
type CommandRunner interface {
	Run(ctx context.Context, args []string) (*entities.ProcessOutput, error)
}

// ExecutableResolver finds the CLI binary when no explicit path is configured
type ExecutableResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// EngineProbe checks that a container engine is installed and usable.
// It returns the engine name or path the CLI should be given.
type EngineProbe interface {
	CheckEngine(ctx context.Context, engineName string) (string, error)
}

// SignatureVerifier checks a detached signature of a local file
type SignatureVerifier interface {
	VerifyFile(filePath, signaturePath string) error
}

// OutputDecoder turns captured CLI output into domain results.
// Each Parse method handles one line and returns nil when the line carries no
// result for its domain.
type OutputDecoder interface {
	ParseOss(line string) *entities.OssResults
	ParseIac(line string) *entities.IacResults
	ParseSecrets(line string) *entities.SecretsResults
	ParseContainers(line string) *entities.ContainersResults
	ParseMask(line string) *entities.MaskResult
	ParseTenantSettings(line string) []entities.TenantSetting
	ParseNodes(line string) []entities.Node
	Envelope(out *entities.ProcessOutput) *entities.CommandResponse
}
