package gateways

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/ochairo/astwrap/internal/domain/interfaces"
)

// DefaultExecutableName is the CLI binary looked up on PATH
const DefaultExecutableName = "cx"

// pathResolver finds the CLI binary: an explicit path wins, PATH is the fallback
type pathResolver struct {
	explicit string
	name     string
	lookPath func(string) (string, error)
	logger   interfaces.Logger
}

// NewPathResolver creates a resolver. An empty explicit path means PATH lookup
// of DefaultExecutableName.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewPathResolver(explicit string, logger interfaces.Logger) *pathResolver {
	return &pathResolver{
		explicit: explicit,
		name:     DefaultExecutableName,
		lookPath: exec.LookPath,
		logger:   interfaces.OrNoOp(logger),
	}
}

// Resolve returns the path of the executable to launch
func (r *pathResolver) Resolve(_ context.Context) (string, error) {
	if r.explicit != "" {
		info, err := os.Stat(r.explicit)
		if err != nil {
			return "", fmt.Errorf("configured executable: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("configured executable %s is a directory", r.explicit)
		}
		return r.explicit, nil
	}

	path, err := r.lookPath(r.name)
	if err != nil {
		return "", fmt.Errorf("failed to find %s on PATH: %w", r.name, err)
	}
	r.logger.Debug("resolved cli executable", interfaces.F("path", path))
	return path, nil
}
