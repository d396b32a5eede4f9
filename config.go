package jddf

import "gopkg.in/yaml.v3"

// Config bounds a Validate call. Zero disables the corresponding limit.
type Config struct {
	// MaxDepth caps the number of currently active Ref chains. 0 disables it.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`
	// MaxErrors stops validation as soon as this many errors have been
	// produced. 0 disables it.
	MaxErrors int `yaml:"maxErrors" json:"maxErrors"`
}

// ConfigFromYAML decodes a Config from YAML, e.g.:
//
//	maxDepth: 32
//	maxErrors: 100
//
// Fields absent from the document keep their zero value (limit disabled).
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
