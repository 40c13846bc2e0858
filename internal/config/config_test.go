package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"

	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "symdoc.yaml", "index: symbols.json\n"+
		"project:\n"+
		"  name: geo\n"+
		"  version: \"2.1\"\n"+
		"markdown_pages:\n"+
		"  - docs/intro.md\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dir := filepath.Dir(path)
	if cfg.Index != filepath.Join(dir, "symbols.json") {
		t.Errorf("index not resolved against the config directory: %s", cfg.Index)
	}
	if cfg.MarkdownPages[0] != filepath.Join(dir, "docs", "intro.md") {
		t.Errorf("markdown page not resolved: %s", cfg.MarkdownPages[0])
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers = %d, want GOMAXPROCS", cfg.Workers)
	}
	if cfg.PageTitleSuffix != "geo 2.1 documentation" {
		t.Errorf("PageTitleSuffix = %q", cfg.PageTitleSuffix)
	}
	if cfg.Logging.Level != LogLevelInfo || cfg.Logging.Format != LogFormatText {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "symdoc.toml", `index = "/abs/symbols.json"
output_dir = "out"
workers = 3
minimal_output = true

[project]
name = "geo"

[repository]
url = "https://gitlab.com/acme/geo.git/"
forge = "GitLab"

[logging]
level = "DEBUG"
format = "console"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index != "/abs/symbols.json" {
		t.Errorf("absolute index path changed: %s", cfg.Index)
	}
	if cfg.Workers != 3 || !cfg.MinimalOutput {
		t.Errorf("workers=%d minimal=%v", cfg.Workers, cfg.MinimalOutput)
	}
	if cfg.Repository.URL != "https://gitlab.com/acme/geo" {
		t.Errorf("repository url not trimmed: %s", cfg.Repository.URL)
	}
	if cfg.PageTitleSuffix != "geo documentation" {
		t.Errorf("PageTitleSuffix = %q", cfg.PageTitleSuffix)
	}
	if cfg.Logging.Level != LogLevelDebug || cfg.Logging.Format != LogFormatPretty {
		t.Errorf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SYMDOC_TEST_VERSION", "3.0")
	path := writeConfig(t, "symdoc.yaml", "index: s.json\nproject:\n  name: geo\n  version: ${SYMDOC_TEST_VERSION}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Version != "3.0" {
		t.Errorf("Version = %q, want 3.0", cfg.Project.Version)
	}
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(".env", []byte("SYMDOC_TEST_A=from-file\nSYMDOC_TEST_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYMDOC_TEST_A", "from-env")
	// Register B for restoration, then remove it so the file can set it.
	t.Setenv("SYMDOC_TEST_B", "")
	if err := os.Unsetenv("SYMDOC_TEST_B"); err != nil {
		t.Fatal(err)
	}

	path := writeConfig(t, "symdoc.yaml", "index: s.json\nproject:\n  name: ${SYMDOC_TEST_B}\n  version: ${SYMDOC_TEST_A}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Version != "from-env" {
		t.Errorf("existing variable was overridden: %q", cfg.Project.Version)
	}
	if cfg.Project.Name != "from-file" {
		t.Errorf(".env variable not loaded: %q", cfg.Project.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "symdoc.yaml", "index: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Workers:       -1,
		Repository:    RepositoryConfig{Forge: "sourcehut"},
		MarkdownPages: []string{"a/intro.md", "b/intro.md", "notes.txt"},
		Logging:       LoggingConfig{Level: "loud"},
	}
	cfg.ApplyDefaults()

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !ferrors.HasCategory(err, ferrors.CategoryConfig) {
		t.Errorf("expected config category, got %v", ferrors.GetCategory(err))
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected multierror cause, got %T", err)
	}
	// index, project.name, forge, url required, duplicate stem, notes.txt,
	// workers, logging.level
	if merr.Len() != 8 {
		t.Errorf("got %d problems, want 8:\n%v", merr.Len(), merr)
	}
	for _, want := range []string{"index", "project.name", "repository.forge", "docintro.html", "notes.txt", "workers", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q", want)
		}
	}
}

func TestValidateAcceptsExample(t *testing.T) {
	cfg := Example()
	cfg.ApplyDefaults()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("example config is invalid: %v", err)
	}
}

func TestValidateRepositoryURLScheme(t *testing.T) {
	cfg := Example()
	cfg.Repository.URL = "git@github.com:example/example.git"
	cfg.ApplyDefaults()
	err := Validate(&cfg)
	if err == nil || !strings.Contains(err.Error(), "http(s)") {
		t.Fatalf("expected URL scheme error, got %v", err)
	}
}

func TestInitRoundTrip(t *testing.T) {
	for _, name := range []string{"symdoc.yaml", "symdoc.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Init(path, false); err != nil {
				t.Fatalf("Init: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Decode(path, data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			want := Example()
			if got.Index != want.Index || got.Project != want.Project || got.Repository != want.Repository ||
				!slices.Equal(got.MarkdownPages, want.MarkdownPages) || got.Logging != want.Logging {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
			}
		})
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symdoc.yaml")
	if err := os.WriteFile(path, []byte("keep"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Init(path, false); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
	if data, _ := os.ReadFile(path); string(data) != "keep" {
		t.Fatalf("file was modified: %q", data)
	}
	if err := Init(path, true); err != nil {
		t.Fatalf("Init with force: %v", err)
	}
}

func TestLogLevelNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want LogLevel
		slog slog.Level
	}{
		{"DEBUG", LogLevelDebug, slog.LevelDebug},
		{" warning ", LogLevelWarn, slog.LevelWarn},
		{"error", LogLevelError, slog.LevelError},
		{"bogus", LogLevelInfo, slog.LevelInfo},
	}
	for _, tt := range tests {
		got := NormalizeLogLevel(tt.raw)
		if got != tt.want || got.Slog() != tt.slog {
			t.Errorf("NormalizeLogLevel(%q) = %s/%v, want %s/%v", tt.raw, got, got.Slog(), tt.want, tt.slog)
		}
	}
	if _, err := ParseLogFormat("xml"); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestInputFiles(t *testing.T) {
	cfg := Config{Index: "s.json", Homepage: "README.md", MarkdownPages: []string{"a.md", "b.md"}}
	want := []string{"s.json", "README.md", "a.md", "b.md"}
	if got := cfg.InputFiles(); !slices.Equal(got, want) {
		t.Errorf("InputFiles() = %v, want %v", got, want)
	}
}
