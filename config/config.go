// Package config loads the configuration of the svgstyle command.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	pr "github.com/benoitkugler/svgstyle/css/properties"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	LoggingConfig struct {
		Level string `yaml:"level" validate:"required,oneof=none debug normal"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Logging LoggingConfig `yaml:"logging"`
		// Stylesheets are paths to user style sheets.
		Stylesheets []string `yaml:"stylesheets" validate:"dive,required"`
		UserAgent   bool     `yaml:"user_agent"`
		Properties  []string `yaml:"properties" validate:"dive,required"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only the fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	for _, name := range cfg.Properties {
		if !pr.LookupCSS(name).IsCSS() {
			return nil, fmt.Errorf("unknown CSS property %q", name)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposing its values on top of the default configuration.
// An empty path returns the default configuration.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() []byte { return defaultConfig }

// SelectedProperties returns the properties listed in the configuration,
// or all the CSS properties if the list is empty.
func (cfg *Config) SelectedProperties() []pr.KnownProp {
	var out []pr.KnownProp
	if len(cfg.Properties) == 0 {
		for p := pr.KnownProp(1); p < pr.NbProps; p++ {
			if p.IsCSS() {
				out = append(out, p)
			}
		}
		return out
	}
	for _, name := range cfg.Properties {
		out = append(out, pr.LookupCSS(name))
	}
	return out
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
