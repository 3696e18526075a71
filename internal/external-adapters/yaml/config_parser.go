// Package yaml provides YAML-based configuration parsing and repository implementations.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"github.com/ochairo/astwrap/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	BaseURI              string           `yaml:"base_uri"`
	BaseAuthURI          string           `yaml:"base_auth_uri"`
	Tenant               string           `yaml:"tenant"`
	APIKey               string           `yaml:"api_key"`
	ClientID             string           `yaml:"client_id"`
	ClientSecret         string           `yaml:"client_secret"`
	AdditionalParameters string           `yaml:"additional_parameters"`
	PathToExecutable     string           `yaml:"path_to_executable"`
	Agent                string           `yaml:"agent"`
	Log                  yamlLog          `yaml:"log"`
	Verification         yamlVerification `yaml:"verification"`
}

type yamlLog struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type yamlVerification struct {
	Keyring   string `yaml:"keyring"`
	Signature string `yaml:"signature"`
	SHA256    string `yaml:"sha256"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file into a Config entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the configuration path chosen by the operator
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config entity. An empty document is a valid,
// empty configuration.
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := convertConfig(raw)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that only make sense together
func Validate(cfg *entities.Config) error {
	if (cfg.ClientID == "") != (cfg.ClientSecret == "") {
		return errors.New("client_id and client_secret must be set together")
	}
	if (cfg.Verification.KeyringPath == "") != (cfg.Verification.SignaturePath == "") {
		return errors.New("verification needs both keyring and signature")
	}
	return nil
}

func convertConfig(raw yamlConfig) *entities.Config {
	return &entities.Config{
		BaseURI:              raw.BaseURI,
		BaseAuthURI:          raw.BaseAuthURI,
		Tenant:               raw.Tenant,
		APIKey:               raw.APIKey,
		ClientID:             raw.ClientID,
		ClientSecret:         raw.ClientSecret,
		AdditionalParameters: raw.AdditionalParameters,
		PathToExecutable:     raw.PathToExecutable,
		Agent:                raw.Agent,
		Log: entities.LogConfig{
			Level: raw.Log.Level,
			File:  raw.Log.File,
		},
		Verification: entities.VerificationConfig{
			KeyringPath:   raw.Verification.Keyring,
			SignaturePath: raw.Verification.Signature,
			SHA256:        raw.Verification.SHA256,
		},
	}
}
