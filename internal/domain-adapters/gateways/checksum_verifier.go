package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ochairo/astwrap/internal/domain/interfaces"
	"github.com/ochairo/astwrap/internal/domain/interfaces/gateways"
)

// checksumResolver refuses to hand out an executable whose SHA-256 digest
// differs from the pinned one
type checksumResolver struct {
	inner    gateways.ExecutableResolver
	expected string
	logger   interfaces.Logger
}

// NewChecksumResolver wraps inner with a SHA-256 pin. expected is hex,
// compared case-insensitively.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumResolver(inner gateways.ExecutableResolver, expected string, logger interfaces.Logger) *checksumResolver {
	return &checksumResolver{
		inner:    inner,
		expected: strings.ToLower(strings.TrimSpace(expected)),
		logger:   interfaces.OrNoOp(logger),
	}
}

// Resolve resolves the executable and checks its digest before returning the path
func (r *checksumResolver) Resolve(ctx context.Context) (string, error) {
	path, err := r.inner.Resolve(ctx)
	if err != nil {
		return "", err
	}

	actual, err := FileSHA256(path)
	if err != nil {
		return "", fmt.Errorf("executable %s: %w", path, err)
	}
	if actual != r.expected {
		r.logger.Error("cli executable checksum mismatch",
			interfaces.F("path", path),
			interfaces.F("expected", r.expected),
			interfaces.F("actual", actual),
		)
		return "", fmt.Errorf("executable %s: checksum mismatch: expected %s, got %s", path, r.expected, actual)
	}

	r.logger.Debug("cli executable checksum ok", interfaces.F("path", path))
	return path, nil
}

// FileSHA256 returns the hex SHA-256 digest of a file
func FileSHA256(filePath string) (string, error) {
	//nolint:gosec // G304: filePath is the resolved executable
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
