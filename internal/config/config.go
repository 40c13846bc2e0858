// Package config loads the symdoc configuration file.
//
// Files are YAML unless their name ends in .toml. Before decoding, .env and
// .env.local from the working directory are loaded into the process
// environment (existing variables win) and ${VAR} references in the file
// are expanded. Relative paths are resolved against the directory holding
// the configuration file.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is used when output_dir is not configured.
const DefaultOutputDir = "site"

// Config is the complete symdoc configuration.
type Config struct {
	Index               string           `yaml:"index" toml:"index"`
	OutputDir           string           `yaml:"output_dir" toml:"output_dir"`
	Project             ProjectConfig    `yaml:"project" toml:"project"`
	Repository          RepositoryConfig `yaml:"repository,omitempty" toml:"repository,omitempty"`
	Homepage            string           `yaml:"homepage,omitempty" toml:"homepage,omitempty"`
	MarkdownPages       []string         `yaml:"markdown_pages,omitempty" toml:"markdown_pages,omitempty"`
	MinimalOutput       bool             `yaml:"minimal_output" toml:"minimal_output"`
	PageTitleSuffix     string           `yaml:"page_title_suffix,omitempty" toml:"page_title_suffix,omitempty"`
	Workers             int              `yaml:"workers,omitempty" toml:"workers,omitempty"`
	InheritanceDiagrams bool             `yaml:"inheritance_diagrams" toml:"inheritance_diagrams"`
	MetricsFile         string           `yaml:"metrics_file,omitempty" toml:"metrics_file,omitempty"`
	WriteManifest       bool             `yaml:"write_manifest" toml:"write_manifest"`
	Logging             LoggingConfig    `yaml:"logging" toml:"logging"`
}

// ProjectConfig names the documented project.
type ProjectConfig struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// RepositoryConfig controls the "Declared at" links into the repository web
// UI. When URL is empty declarations are shown as plain text.
type RepositoryConfig struct {
	URL           string `yaml:"url,omitempty" toml:"url,omitempty"`
	DefaultBranch string `yaml:"default_branch,omitempty" toml:"default_branch,omitempty"`
	// SourceRoot is the local checkout the index was generated from. Source
	// paths are made relative to it and its current branch is used when
	// DefaultBranch is empty.
	SourceRoot string `yaml:"source_root,omitempty" toml:"source_root,omitempty"`
	Forge      string `yaml:"forge,omitempty" toml:"forge,omitempty"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" toml:"level"`
	Format LogFormat `yaml:"format" toml:"format"`
}

// IsTOML reports whether path names a TOML configuration file.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads, defaults and validates the configuration at configPath.
// Validation problems are returned together as one config error.
func Load(configPath string) (*Config, error) {
	if loaded, err := loadEnvFiles(); err != nil {
		slog.Warn("Environment file could not be loaded", slog.String("error", err.Error()))
	} else if len(loaded) > 0 {
		slog.Debug("Loaded environment files", slog.Any("files", loaded))
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Decode(configPath, []byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(configPath))
	cfg.ApplyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// Decode parses data in the format implied by name without applying
// defaults or validation.
func Decode(name string, data []byte) (*Config, error) {
	var cfg Config
	if IsTOML(name) {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills every unset option. It is idempotent.
func (c *Config) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.PageTitleSuffix == "" {
		c.PageTitleSuffix = strings.Join(strings.Fields(c.Project.Name+" "+c.Project.Version+" documentation"), " ")
	}
	if c.Repository.URL != "" {
		c.Repository.URL = strings.TrimSuffix(strings.TrimSuffix(c.Repository.URL, "/"), ".git")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}
}

// normalize case-folds the enumerations once they are known to be valid.
func (c *Config) normalize() {
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

// resolvePaths makes configured file paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	resolve(&c.Index)
	resolve(&c.OutputDir)
	resolve(&c.Homepage)
	resolve(&c.MetricsFile)
	resolve(&c.Repository.SourceRoot)
	for i := range c.MarkdownPages {
		resolve(&c.MarkdownPages[i])
	}
}

// InputFiles lists the files a render reads, in the order they are
// configured.
func (c *Config) InputFiles() []string {
	var files []string
	if c.Index != "" {
		files = append(files, c.Index)
	}
	if c.Homepage != "" {
		files = append(files, c.Homepage)
	}
	return append(files, c.MarkdownPages...)
}
