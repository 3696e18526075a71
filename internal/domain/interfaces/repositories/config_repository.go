// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ConfigRepository loads wrapper configuration
type ConfigRepository interface {
	// Load returns the effective configuration, overrides applied
	Load(ctx context.Context) (*entities.Config, error)
}
