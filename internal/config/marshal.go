package config

import (
	"fmt"

	"kollama/internal/security/redaction"

	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as YAML with server URL credentials and secret-looking
// query values masked.
func Marshal(cfg Configuration) ([]byte, error) {
	cfg.ServerURL = redaction.RedactURL(cfg.ServerURL)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
