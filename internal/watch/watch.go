// Package watch re-runs a render when its input files change.
//
// The parent directories of the watched files are observed with fsnotify,
// since editors commonly replace files by renaming a temporary copy over
// them. Bursts of events are coalesced: a change is acted on once no further
// event has arrived for the quiet window, or at the latest after the maximum
// delay counted from the first event of the burst. Events that arrive while
// the callback is running start a new burst, so exactly one follow-up run
// happens for them.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/util/sets"
)

// Defaults used when Options leaves a duration unset.
const (
	DefaultQuietWindow = 300 * time.Millisecond
	DefaultMaxDelay    = 3 * time.Second
)

// Options tunes the debounce behaviour.
type Options struct {
	QuietWindow time.Duration
	MaxDelay    time.Duration
}

// Trigger describes the burst of changes that caused a callback.
type Trigger struct {
	Files  []string
	Events int
	// Cause is "quiet" or "max_delay".
	Cause string
}

// Func is called once per coalesced burst. A returned error is logged and
// watching continues.
type Func func(ctx context.Context, t Trigger) error

// Watcher observes a set of files.
type Watcher struct {
	opts Options
	fs   *fsnotify.Watcher

	mu    sync.Mutex
	files sets.Set[string]
	dirs  sets.Set[string]
}

// New creates a watcher for files. Paths are made absolute.
func New(files []string, opts Options) (*Watcher, error) {
	if opts.QuietWindow <= 0 {
		opts.QuietWindow = DefaultQuietWindow
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = DefaultMaxDelay
	}
	if opts.MaxDelay < opts.QuietWindow {
		return nil, ferrors.ValidationError("max delay must not be shorter than the quiet window").
			WithContext("quiet_window", opts.QuietWindow.String()).
			WithContext("max_delay", opts.MaxDelay.String()).
			Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{opts: opts, fs: fw, files: sets.New[string](), dirs: sets.New[string]()}
	if err := w.SetFiles(files); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// SetFiles replaces the watched set, for example after the configuration
// changed the list of markdown pages. Directories no longer needed stay
// registered; their events are filtered out.
func (w *Watcher) SetFiles(files []string) error {
	next := sets.New[string]()
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		next.Add(abs)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for f := range next {
		dir := filepath.Dir(f)
		if w.dirs.Has(dir) {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		w.dirs.Add(dir)
	}
	w.files = next
	return nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return sets.Sorted(w.files)
}

func (w *Watcher) watches(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files.Has(filepath.Clean(name))
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run delivers coalesced change bursts to fn until ctx is cancelled or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	names := make(chan string)
	go func() {
		defer close(names)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if !relevant(ev) || !w.watches(ev.Name) {
					continue
				}
				slog.Debug("Watched file changed", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
				select {
				case names <- filepath.Clean(ev.Name):
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				slog.Error("File watcher error", logfields.Error(err))
			}
		}
	}()

	slog.Info("Watching for changes", slog.Int("files", len(w.Files())))
	return debounce(ctx, names, w.opts, fn)
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// debounce coalesces names into bursts and calls fn once per burst. It
// returns when ctx is done or names is closed.
func debounce(ctx context.Context, names <-chan string, opts Options, fn Func) error {
	quiet := time.NewTimer(time.Hour)
	quiet.Stop()
	maxDelay := time.NewTimer(time.Hour)
	maxDelay.Stop()
	defer quiet.Stop()
	defer maxDelay.Stop()

	var (
		quietC, maxC <-chan time.Time
		changed      = sets.New[string]()
		count        int
	)

	fire := func(cause string) {
		quiet.Stop()
		maxDelay.Stop()
		quietC, maxC = nil, nil

		t := Trigger{Files: sets.Sorted(changed), Events: count, Cause: cause}
		changed = sets.New[string]()
		count = 0

		if err := fn(ctx, t); err != nil {
			slog.Error("Re-render after change failed", logfields.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-names:
			if !ok {
				return nil
			}
			changed.Add(name)
			count++
			quiet.Reset(opts.QuietWindow)
			quietC = quiet.C
			if maxC == nil {
				maxDelay.Reset(opts.MaxDelay)
				maxC = maxDelay.C
			}
		case <-quietC:
			fire("quiet")
		case <-maxC:
			fire("max_delay")
		}
	}
}
