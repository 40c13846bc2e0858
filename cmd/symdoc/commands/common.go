// Package commands implements the symdoc subcommands.
package commands

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"git.home.luguber.info/inful/symdoc/internal/config"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/observability"
)

// Global is bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
}

// CLI definition and global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (YAML, or TOML with a .toml extension)" default:"symdoc.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json|pretty); overrides logging.format"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render RenderCmd `cmd:"" help:"Render the documentation site from a symbol index"`
	Watch  WatchCmd  `cmd:"" help:"Render, then render again whenever an input file changes"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing and installs the default logger. The
// configured logging settings are applied later, once the configuration
// has been loaded.
func (c *CLI) AfterApply() error {
	format := config.LogFormatText
	if c.LogFormat != "" {
		f, err := config.ParseLogFormat(c.LogFormat)
		if err != nil {
			return ferrors.ValidationError("invalid --log-format").WithCause(err).Build()
		}
		format = f
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return nil
}

// loadConfig reads the configuration file and reconfigures logging from it.
// Command line logging flags take precedence over the file.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		if ferrors.IsClassified(err) {
			return nil, err
		}
		b := ferrors.ConfigError("cannot load configuration").
			WithCause(err).
			WithContext("config", c.Config)
		if errors.Is(err, fs.ErrNotExist) {
			b.Hint("run 'symdoc init' to create one")
		}
		return nil, b.Build()
	}

	level := cfg.Logging.Level.Slog()
	if c.Verbose {
		level = slog.LevelDebug
	}
	format := cfg.Logging.Format
	if c.LogFormat != "" {
		format = config.NormalizeLogFormat(c.LogFormat)
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return cfg, nil
}

// newLogger builds a logger for w. The pretty format is coloured only when
// w is a terminal.
func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	var h slog.Handler
	switch format {
	case config.LogFormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case config.LogFormatPretty:
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(observability.NewHandler(h))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
