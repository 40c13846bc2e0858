package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/symdoc/internal/config"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/manifest"
)

// RenderFlags override configuration values for a single invocation.
type RenderFlags struct {
	Index   string `help:"Symbol index JSON file; overrides index"`
	Output  string `short:"o" help:"Output directory; overrides output_dir"`
	Workers int    `short:"j" help:"Maximum pages rendered at once; overrides workers"`
	Minimal bool   `help:"Write only breadcrumbs and page content, without the surrounding page"`
}

// Apply copies the set flags into cfg.
func (f RenderFlags) Apply(cfg *config.Config) error {
	if f.Workers < 0 {
		return ferrors.ValidationError("--workers must not be negative").
			WithContext("workers", f.Workers).
			Build()
	}
	if f.Index != "" {
		cfg.Index = f.Index
	}
	if f.Output != "" {
		cfg.OutputDir = f.Output
	}
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}
	if f.Minimal {
		cfg.MinimalOutput = true
	}
	return nil
}

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	RenderFlags `embed:""`
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := r.Apply(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	_, err = Execute(ctx, cfg, manifest.NewRunID())
	return err
}
