package entities

import (
	"strings"
	"unicode"
)

// Config holds the connection settings passed to every CLI invocation
type Config struct {
	BaseURI              string
	BaseAuthURI          string
	Tenant               string
	APIKey               string
	ClientID             string
	ClientSecret         string
	AdditionalParameters string
	PathToExecutable     string
	Agent                string
	Log                  LogConfig
	Verification         VerificationConfig
}

// LogConfig controls the wrapper's own logging
type LogConfig struct {
	Level string
	File  string
}

// VerificationConfig enables integrity checks of the executable before use:
// an OpenPGP detached signature and an optional SHA-256 pin
type VerificationConfig struct {
	KeyringPath   string
	SignaturePath string
	SHA256        string
}

// Enabled reports whether both a keyring and a signature are configured
func (v VerificationConfig) Enabled() bool {
	return v.KeyringPath != "" && v.SignaturePath != ""
}

// ToArguments renders the global arguments appended to every invocation.
// Client credentials take precedence over an API key.
func (c *Config) ToArguments() []string {
	args := []string{}

	switch {
	case c.ClientID != "" && c.ClientSecret != "":
		args = append(args, "--client-id", c.ClientID, "--client-secret", c.ClientSecret)
	case c.APIKey != "":
		args = append(args, "--apikey", c.APIKey)
	}

	if c.BaseURI != "" {
		args = append(args, "--base-uri", c.BaseURI)
	}
	if c.BaseAuthURI != "" {
		args = append(args, "--base-auth-uri", c.BaseAuthURI)
	}
	if c.Tenant != "" {
		args = append(args, "--tenant", c.Tenant)
	}

	return append(args, ParseAdditionalParameters(c.AdditionalParameters)...)
}

// ParseAdditionalParameters splits a free-form parameter string on whitespace.
// Double-quoted segments are kept together and the quotes are removed.
func ParseAdditionalParameters(params string) []string {
	tokens := []string{}
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range params {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case unicode.IsSpace(r) && !inQuotes:
			if hasToken {
				tokens = append(tokens, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	if hasToken {
		tokens = append(tokens, current.String())
	}

	return tokens
}
