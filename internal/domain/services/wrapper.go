// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ochairo/astwrap/internal/domain/entities"
	"github.com/ochairo/astwrap/internal/domain/interfaces"
	"github.com/ochairo/astwrap/internal/domain/interfaces/gateways"
	"github.com/ochairo/astwrap/internal/domain/interfaces/services"
)

// ErrTenantSettings is returned when the tenant settings output cannot be decoded
var ErrTenantSettings = errors.New("unable to parse tenant settings")

// wrapper assembles argument vectors for the CLI and decodes its output.
// It holds no per-invocation state.
type wrapper struct {
	config   *entities.Config
	resolver gateways.ExecutableResolver
	runner   gateways.CommandRunner
	decoder  gateways.OutputDecoder
	probe    gateways.EngineProbe
	logger   interfaces.Logger
}

// NewWrapper creates a new wrapper service with dependency injection
func NewWrapper(
	config *entities.Config,
	resolver gateways.ExecutableResolver,
	runner gateways.CommandRunner,
	decoder gateways.OutputDecoder,
	probe gateways.EngineProbe,
	logger interfaces.Logger,
) services.WrapperService {
	if config == nil {
		config = &entities.Config{}
	}
	return &wrapper{
		config:   config,
		resolver: resolver,
		runner:   runner,
		decoder:  decoder,
		probe:    probe,
		logger:   interfaces.OrNoOp(logger),
	}
}

// lineParser decodes one output line; ok=false means the line carried no value
type lineParser[T any] func(line string) (value T, ok bool)

func pointerResult[T any](parse func(string) *T) lineParser[*T] {
	return func(line string) (*T, bool) {
		v := parse(line)
		return v, v != nil
	}
}

func sliceResult[T any](parse func(string) []T) lineParser[[]T] {
	return func(line string) ([]T, bool) {
		v := parse(line)
		return v, v != nil
	}
}

func rawLine(line string) (string, bool) { return line, true }

// executeLines runs the CLI with command plus the global config arguments,
// logs every output line at debug level and keeps the last value parse produced.
// A nonzero exit is returned as *entities.CLIError.
func executeLines[T any](ctx context.Context, w *wrapper, command []string, parse lineParser[T]) (T, error) {
	var last T

	executable, err := w.resolver.Resolve(ctx)
	if err != nil {
		return last, fmt.Errorf("failed to resolve cli executable: %w", err)
	}

	args := make([]string, 0, 1+len(command))
	args = append(args, executable)
	args = append(args, command...)
	args = append(args, w.config.ToArguments()...)

	invocation := uuid.NewString()
	w.logger.Info("executing cli command",
		interfaces.F("invocation", invocation),
		interfaces.F("command", strings.Join(command, " ")),
	)

	out, err := w.runner.Run(ctx, args)
	if err != nil {
		return last, err
	}

	for _, line := range outputLines(out.Output) {
		// Raw lines can carry unmasked secrets, keep them out of the default level
		w.logger.Debug(line, interfaces.F("invocation", invocation))
		if v, ok := parse(line); ok {
			last = v
		}
	}

	if out.ExitCode != 0 {
		var zero T
		return zero, &entities.CLIError{ExitCode: out.ExitCode, Output: out.Output}
	}
	return last, nil
}

func outputLines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// AuthValidate checks the configured credentials and returns the CLI message
func (w *wrapper) AuthValidate(ctx context.Context) (string, error) {
	return executeLines(ctx, w, []string{cmdAuth, subCmdValidate}, rawLine)
}

func realtimeCommand(subCommand, sourcePath, containerTool, ignoredFilePath string) []string {
	command := []string{cmdScan, subCommand, flagSource, sourcePath}
	if strings.TrimSpace(containerTool) != "" {
		command = append(command, flagEngine, containerTool)
	}
	if strings.TrimSpace(ignoredFilePath) != "" {
		command = append(command, flagIgnoredFilePath, ignoredFilePath)
	}
	return command
}

// OssRealtimeScan scans the dependency manifests under sourcePath
func (w *wrapper) OssRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.OssResults, error) {
	return executeLines(ctx, w,
		realtimeCommand(subCmdOssRealtime, sourcePath, "", ignoredFilePath),
		pointerResult(w.decoder.ParseOss))
}

// IacRealtimeScan scans infrastructure files, optionally through a container engine
func (w *wrapper) IacRealtimeScan(ctx context.Context, sourcePath, containerTool, ignoredFilePath string) (*entities.IacResults, error) {
	return executeLines(ctx, w,
		realtimeCommand(subCmdIacRealtime, sourcePath, containerTool, ignoredFilePath),
		pointerResult(w.decoder.ParseIac))
}

// SecretsRealtimeScan scans sourcePath for hardcoded secrets
func (w *wrapper) SecretsRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.SecretsResults, error) {
	return executeLines(ctx, w,
		realtimeCommand(subCmdSecretsRealtime, sourcePath, "", ignoredFilePath),
		pointerResult(w.decoder.ParseSecrets))
}

// ContainersRealtimeScan scans image references under sourcePath
func (w *wrapper) ContainersRealtimeScan(ctx context.Context, sourcePath, ignoredFilePath string) (*entities.ContainersResults, error) {
	return executeLines(ctx, w,
		realtimeCommand(subCmdContainersRealtime, sourcePath, "", ignoredFilePath),
		pointerResult(w.decoder.ParseContainers))
}

// MaskSecrets redacts the secrets found in filePath
func (w *wrapper) MaskSecrets(ctx context.Context, filePath string) (*entities.MaskResult, error) {
	return executeLines(ctx, w,
		[]string{cmdUtils, subCmdMask, flagResultFile, filePath},
		pointerResult(w.decoder.ParseMask))
}

// TenantSettings lists the tenant configuration. A nil slice with a nil error
// means the CLI printed nothing decodable.
func (w *wrapper) TenantSettings(ctx context.Context) ([]entities.TenantSetting, error) {
	return executeLines(ctx, w,
		[]string{flagFormat, formatJSON, cmdUtils, subCmdTenant},
		sliceResult(w.decoder.ParseTenantSettings))
}

// IdeScansEnabled reports whether the tenant allows IDE scans
func (w *wrapper) IdeScansEnabled(ctx context.Context) (bool, error) {
	return w.tenantFlag(ctx, IdeScansKey)
}

// AiMcpServerEnabled reports whether the tenant enables the AI MCP server
func (w *wrapper) AiMcpServerEnabled(ctx context.Context) (bool, error) {
	return w.tenantFlag(ctx, AiMcpServerKey)
}

func (w *wrapper) tenantFlag(ctx context.Context, key string) (bool, error) {
	settings, err := w.TenantSettings(ctx)
	if err != nil {
		return false, err
	}
	if settings == nil {
		return false, ErrTenantSettings
	}
	for _, s := range settings {
		if s.Key == key {
			return strings.EqualFold(s.Value, "true"), nil
		}
	}
	return false, nil
}

// TelemetryAIEvent reports an AI feature interaction. A blank agent falls
// back to the configured one.
func (w *wrapper) TelemetryAIEvent(ctx context.Context, event entities.TelemetryEvent) (string, error) {
	if strings.TrimSpace(event.Agent) == "" {
		event.Agent = w.config.Agent
	}
	w.logger.Info("sending ai telemetry event",
		interfaces.F("provider", event.AIProvider),
		interfaces.F("type", event.EventType),
		interfaces.F("sub_type", event.SubType),
	)
	return executeLines(ctx, w, []string{
		cmdTelemetry, subCmdTelemetryAI,
		flagAIProvider, event.AIProvider,
		flagAgent, event.Agent,
		flagType, event.EventType,
		flagSubType, event.SubType,
		flagEngine, event.Engine,
		flagProblemSeverity, event.ProblemSeverity,
		flagScanType, event.ScanType,
		flagStatus, event.Status,
		flagTotalCount, strconv.Itoa(event.TotalCount),
	}, rawLine)
}

// ResultsBFL fetches the best fix location nodes for a query and returns the
// index of the first of them found in resultNodes, or -1
func (w *wrapper) ResultsBFL(ctx context.Context, scanID uuid.UUID, queryID string, resultNodes []entities.Node) (int, error) {
	w.logger.Info("fetching best fix location",
		interfaces.F("scan_id", scanID.String()),
		interfaces.F("query_id", queryID),
	)
	bflNodes, err := executeLines(ctx, w, []string{
		cmdResults, subCmdBFL,
		flagScanID, scanID.String(),
		flagQueryID, queryID,
		flagFormat, formatJSON,
	}, sliceResult(w.decoder.ParseNodes))
	if err != nil {
		return NotFound, err
	}
	return BestFixLocationIndex(bflNodes, resultNodes), nil
}

// CheckEngineExist verifies that a container engine can be used by the CLI
func (w *wrapper) CheckEngineExist(ctx context.Context, engine string) (string, error) {
	return w.probe.CheckEngine(ctx, engine)
}

// Execute runs an arbitrary command and wraps its output in the uniform
// envelope. A nonzero exit is not an error here; it is reported through the
// envelope. Only launch and interruption failures are returned as errors.
func (w *wrapper) Execute(ctx context.Context, req *entities.CommandRequest) (*entities.CommandResponse, error) {
	executable, err := w.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cli executable: %w", err)
	}

	argv := req.Argv(executable)
	machineFlag := argv[len(argv)-1]
	args := append(argv[:len(argv)-1:len(argv)-1], w.config.ToArguments()...)
	args = append(args, machineFlag)

	w.logger.Info("executing cli command", interfaces.F("command", req.Command()))
	out, err := w.runner.Run(ctx, args)
	if err != nil {
		return nil, err
	}
	return w.decoder.Envelope(out), nil
}
