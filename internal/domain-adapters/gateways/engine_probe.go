package gateways

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
	"github.com/ochairo/astwrap/internal/domain/interfaces"
	"github.com/ochairo/astwrap/internal/domain/interfaces/gateways"
)

// MacEngineDir is where container engines must live on macOS for the CLI to find them
const MacEngineDir = "/usr/local/bin/"

type engineHandler func(ctx context.Context, engine string) (string, error)

// engineProbe checks container engine availability with one handler per platform
type engineProbe struct {
	runner   gateways.CommandRunner
	goos     string
	platform entities.Platform
	logger   interfaces.Logger
	handlers map[entities.Platform]engineHandler
}

// NewEngineProbe creates a probe for goos, normally runtime.GOOS
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewEngineProbe(runner gateways.CommandRunner, goos string, logger interfaces.Logger) *engineProbe {
	p := &engineProbe{
		runner:   runner,
		goos:     goos,
		platform: entities.PlatformFromGOOS(goos),
		logger:   interfaces.OrNoOp(logger),
	}
	p.handlers = map[entities.Platform]engineHandler{
		entities.PlatformMac:     p.checkOnMac,
		entities.PlatformLinux:   p.checkOnPath,
		entities.PlatformWindows: p.checkOnPath,
	}
	return p
}

// CheckEngine returns the engine path on macOS, or the engine name when it is
// reachable through PATH on Linux and Windows
func (p *engineProbe) CheckEngine(ctx context.Context, engine string) (string, error) {
	handler, ok := p.handlers[p.platform]
	if !ok {
		return "", &entities.UnsupportedPlatformError{OS: p.goos}
	}
	p.logger.Info("checking container engine",
		interfaces.F("engine", engine),
		interfaces.F("platform", p.platform.String()),
	)
	return handler(ctx, engine)
}

// checkOnMac resolves the engine with the shell. IDE processes on macOS do not
// inherit the login PATH, so an engine outside MacEngineDir is unusable.
func (p *engineProbe) checkOnMac(ctx context.Context, engine string) (string, error) {
	// The engine name is a positional parameter, never part of the script text
	out, err := p.runner.Run(ctx, []string{"/bin/sh", "-c", `command -v "$1"`, "sh", engine})
	if isInterrupted(err) {
		return "", err
	}
	path := ""
	if err == nil && out.ExitCode == 0 {
		path = lastLine(out.Output)
	}
	if path == "" {
		return "", &entities.EngineError{
			Engine:  engine,
			Message: fmt.Sprintf("Engine %s is not installed on the system", engine),
			Err:     err,
		}
	}

	if !strings.HasPrefix(path, MacEngineDir) {
		return "", &entities.EngineError{
			Engine: engine,
			Message: fmt.Sprintf("%s was found at: %s\nPlease create a symlink at /usr/local/bin/docker:\n\nsudo ln -s %s %s%s\n",
				engine, path, path, MacEngineDir, engine),
		}
	}
	return path, nil
}

func (p *engineProbe) checkOnPath(ctx context.Context, engine string) (string, error) {
	out, err := p.runner.Run(ctx, []string{engine, "--version"})
	if isInterrupted(err) {
		return "", err
	}
	if err != nil || out.ExitCode != 0 {
		return "", &entities.EngineError{
			Engine:  engine,
			Message: fmt.Sprintf("%s is not installed or is not accessible from the system PATH.", engine),
			Err:     err,
		}
	}
	return engine, nil
}

func isInterrupted(err error) bool {
	var interrupted *entities.InterruptedError
	return errors.As(err, &interrupted)
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimRight(output, "\r\n"), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
