package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/manifest"
	"git.home.luguber.info/inful/symdoc/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RenderFlags `embed:""`
	Quiet       time.Duration `name:"quiet" help:"Wait this long after the last change before rendering" default:"300ms"`
	MaxDelay    time.Duration `name:"max-delay" help:"Render at the latest this long after the first change" default:"3s"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := w.Apply(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := Execute(ctx, cfg, manifest.NewRunID()); err != nil {
		return err
	}

	watcher, err := watch.New(watchedFiles(root.Config, cfg), watch.Options{QuietWindow: w.Quiet, MaxDelay: w.MaxDelay})
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	s := &watchSession{root: root, flags: w.RenderFlags, cfg: cfg, watcher: watcher}
	s.last, _ = fingerprint(cfg)
	return watcher.Run(ctx, s.onChange)
}

func watchedFiles(configPath string, cfg *config.Config) []string {
	return append([]string{configPath}, cfg.InputFiles()...)
}

// watchSession carries state between re-renders. onChange runs on the
// watcher's goroutine only.
type watchSession struct {
	root    *CLI
	flags   RenderFlags
	cfg     *config.Config
	watcher *watch.Watcher
	last    string
}

func (s *watchSession) onChange(ctx context.Context, t watch.Trigger) error {
	slog.Info("Change detected", slog.Any("files", t.Files), slog.Int("events", t.Events), slog.String("cause", t.Cause))

	// A configuration that no longer loads keeps the previous one active.
	if cfg, err := s.root.loadConfig(); err != nil {
		slog.Error("Configuration reload failed, keeping previous configuration", logfields.Error(err))
	} else if err := s.flags.Apply(cfg); err == nil {
		s.cfg = cfg
		if err := s.watcher.SetFiles(watchedFiles(s.root.Config, cfg)); err != nil {
			slog.Warn("Watched files could not be updated", logfields.Error(err))
		}
	}

	sum, err := fingerprint(s.cfg)
	if err == nil && sum == s.last {
		slog.Info("Inputs unchanged, skipping render")
		return nil
	}

	if _, err := Execute(ctx, s.cfg, manifest.NewRunID()); err != nil {
		return err
	}
	s.last = sum
	return nil
}
