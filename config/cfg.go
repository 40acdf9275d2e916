// Package config loads and validates program configuration and prepares
// logging and the debug report.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// ResolverConfig holds defaults for the resolve command, every value
	// could be overwritten from command line.
	ResolverConfig struct {
		FontSize    float32   `yaml:"font_size" validate:"gt=0"`
		Workers     int       `yaml:"workers" validate:"gte=0"`
		Output      OutputFmt `yaml:"output"`
		InputFormat string    `yaml:"input_format" validate:"oneof=auto json yaml hcl ion"`
		Charset     string    `yaml:"charset"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Resolver  ResolverConfig `yaml:"resolver"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// decodeStrict superimposes YAML data on cfg. Unknown fields are errors.
func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

// check normalizes user supplied names, then sanitizes and validates the
// whole configuration.
func (cfg *Config) check() error {
	cfg.Resolver.InputFormat = strings.ToLower(strings.TrimSpace(cfg.Resolver.InputFormat))
	cfg.Resolver.Charset = strings.TrimSpace(cfg.Resolver.Charset)

	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	return gencfg.Validate(cfg)
}

// LoadConfiguration expands configuration template, superimposes values from
// the file at the given path (if any) on top of it and validates the result.
// Template alone is never validated when file is present: file may be fixing
// what template cannot produce on this system.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg := &Config{}
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	if len(path) > 0 {
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decodeStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("bad configuration: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns configuration in the same layout as the template uses.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return buf.Bytes(), nil
}
