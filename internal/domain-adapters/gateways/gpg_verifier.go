package gateways

import (
	"fmt"

	"github.com/ochairo/astwrap/internal/external-adapters/gpg"
)

// gpgVerifier wraps the external GPG adapter to implement the domain gateway interface
type gpgVerifier struct {
	verifier *gpg.Verifier
}

// NewGPGVerifier creates a verifier loaded with the keys in keyringPath
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGPGVerifier(keyringPath string) (*gpgVerifier, error) {
	v := gpg.NewVerifier()
	if err := v.ImportKeyFromFile(keyringPath); err != nil {
		return nil, fmt.Errorf("failed to import GPG keyring: %w", err)
	}
	return &gpgVerifier{verifier: v}, nil
}

// VerifyFile verifies a detached GPG signature from a local file
func (g *gpgVerifier) VerifyFile(filePath, signaturePath string) error {
	if err := g.verifier.VerifySignatureFromFile(filePath, signaturePath); err != nil {
		return fmt.Errorf("GPG signature verification failed: %w", err)
	}
	return nil
}

// KeyringSize returns the number of keys loaded
func (g *gpgVerifier) KeyringSize() int {
	return g.verifier.GetKeyringSize()
}
