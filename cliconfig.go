package rrdb

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig groups the defaults the "create" subcommand falls back to when
// a flag isn't given on the command line.
type CLIConfig struct {
	// Aggregation is the default aggregation method for newly created
	// files when -aggregation isn't passed. Default: "average".
	Aggregation string `yaml:"aggregation"`

	// XFilesFactor is the default minimum-density percentage (0-100) for
	// newly created files when -xff isn't passed. Default: 0.
	XFilesFactor uint8 `yaml:"x_files_factor"`

	// Templates maps a short name to a ready-made archive spec list, so
	// `rrdb create path.rrdb @daily` can stand in for spelling out
	// "60s:1d,300s:7d,3600s:1y".
	Templates map[string][]string `yaml:"templates"`
}

// DefaultCLIConfig returns the built-in defaults used when no config file is
// given.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Aggregation:  "average",
		XFilesFactor: 0,
		Templates:    map[string][]string{},
	}
}

// LoadCLIConfig reads a YAML config file, applying its values on top of
// DefaultCLIConfig for any field the file doesn't set.
func LoadCLIConfig(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return CLIConfig{}, ioErrorf("read config", path, err)
	}

	var fileCfg CLIConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return CLIConfig{}, configErrorf(err, "invalid config file %s", path)
	}

	if fileCfg.Aggregation != "" {
		cfg.Aggregation = fileCfg.Aggregation
	}
	if fileCfg.XFilesFactor != 0 {
		cfg.XFilesFactor = fileCfg.XFilesFactor
	}
	for name, tokens := range fileCfg.Templates {
		cfg.Templates[name] = tokens
	}
	return cfg, nil
}

// ResolveSpecTokens expands a single "@name" template reference against the
// config's Templates map; any other token sequence is returned unchanged.
func (c CLIConfig) ResolveSpecTokens(tokens []string) ([]string, error) {
	if len(tokens) == 1 && len(tokens[0]) > 1 && tokens[0][0] == '@' {
		name := tokens[0][1:]
		expanded, ok := c.Templates[name]
		if !ok {
			return nil, configErrorf(nil, "unknown archive template %q", name)
		}
		return expanded, nil
	}
	return tokens, nil
}
