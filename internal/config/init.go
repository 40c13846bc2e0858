package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Example returns the configuration written by Init.
func Example() Config {
	return Config{
		Index:     "build/symbols.json",
		OutputDir: "public",
		Project: ProjectConfig{
			Name:    "example",
			Version: "1.0.0",
		},
		Repository: RepositoryConfig{
			URL:           "https://github.com/example/example",
			DefaultBranch: "main",
		},
		Homepage:            "README.md",
		MarkdownPages:       []string{"docs/getting-started.md"},
		InheritanceDiagrams: true,
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Init writes an example configuration file, as TOML when configPath ends in
// .toml and as YAML otherwise. An existing file is only replaced when force
// is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := Encode(configPath, Example())
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode serialises cfg in the format implied by name.
func Encode(name string, cfg Config) ([]byte, error) {
	if IsTOML(name) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode TOML config: %w", err)
		}
		return buf.Bytes(), nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML config: %w", err)
	}
	return data, nil
}
