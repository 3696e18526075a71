package gateways

import (
	"context"
	"fmt"

	"github.com/ochairo/astwrap/internal/domain/interfaces"
	"github.com/ochairo/astwrap/internal/domain/interfaces/gateways"
)

// verifyingResolver refuses to hand out an executable whose detached
// signature does not check out
type verifyingResolver struct {
	inner         gateways.ExecutableResolver
	verifier      gateways.SignatureVerifier
	signaturePath string
	logger        interfaces.Logger
}

// NewVerifyingResolver wraps inner with a signature check
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewVerifyingResolver(
	inner gateways.ExecutableResolver,
	verifier gateways.SignatureVerifier,
	signaturePath string,
	logger interfaces.Logger,
) *verifyingResolver {
	return &verifyingResolver{
		inner:         inner,
		verifier:      verifier,
		signaturePath: signaturePath,
		logger:        interfaces.OrNoOp(logger),
	}
}

// Resolve resolves the executable and verifies it before returning the path
func (r *verifyingResolver) Resolve(ctx context.Context) (string, error) {
	path, err := r.inner.Resolve(ctx)
	if err != nil {
		return "", err
	}

	if err := r.verifier.VerifyFile(path, r.signaturePath); err != nil {
		r.logger.Error("cli executable failed verification",
			interfaces.F("path", path),
			interfaces.F("signature", r.signaturePath),
			interfaces.F("error", err.Error()),
		)
		return "", fmt.Errorf("executable %s: %w", path, err)
	}

	r.logger.Info("cli executable verified", interfaces.F("path", path))
	return path, nil
}
