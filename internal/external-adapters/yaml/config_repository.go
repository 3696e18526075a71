package yaml

import (
	"context"
	"os"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// Environment variables that override the configuration file
const (
	EnvAPIKey           = "CX_APIKEY"
	EnvClientID         = "CX_CLIENT_ID"
	EnvClientSecret     = "CX_CLIENT_SECRET"
	EnvBaseURI          = "CX_BASE_URI"
	EnvTenant           = "CX_TENANT"
	EnvPathToExecutable = "CX_PATH_TO_EXECUTABLE"
)

// ConfigRepository implements repositories.ConfigRepository with an optional
// YAML file and environment overrides
type ConfigRepository struct {
	path      string
	parser    *ConfigParser
	lookupEnv func(string) (string, bool)
}

// NewConfigRepository creates a repository reading path. An empty path skips
// the file and uses the environment only.
func NewConfigRepository(path string) *ConfigRepository {
	return &ConfigRepository{
		path:      path,
		parser:    NewConfigParser(),
		lookupEnv: os.LookupEnv,
	}
}

// Load returns the effective configuration
func (r *ConfigRepository) Load(_ context.Context) (*entities.Config, error) {
	cfg := &entities.Config{}
	if r.path != "" {
		parsed, err := r.parser.ParseFile(r.path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	overrides := []struct {
		env string
		dst *string
	}{
		{EnvAPIKey, &cfg.APIKey},
		{EnvClientID, &cfg.ClientID},
		{EnvClientSecret, &cfg.ClientSecret},
		{EnvBaseURI, &cfg.BaseURI},
		{EnvTenant, &cfg.Tenant},
		{EnvPathToExecutable, &cfg.PathToExecutable},
	}
	for _, o := range overrides {
		if v, ok := r.lookupEnv(o.env); ok && v != "" {
			*o.dst = v
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
