package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}

// VerifyRequiredFields performs basic validation of fields the schema marks required
func VerifyRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	if cfg.Summary.Enabled {
		if cfg.Summary.Endpoint == "" {
			return fmt.Errorf("summary.endpoint is required when summaries are enabled")
		}
		if cfg.Summary.Model == "" {
			return fmt.Errorf("summary.model is required when summaries are enabled")
		}
	}

	return nil
}
