package commands

import (
	"context"
	"errors"
	"time"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/diagram"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/manifest"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/observability"
	"git.home.luguber.info/inful/symdoc/internal/render"
	"git.home.luguber.info/inful/symdoc/internal/sourcelink"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
	"git.home.luguber.info/inful/symdoc/internal/version"
)

// Execute performs one complete render for cfg. The returned error is
// classified; problems with individual pages, the metrics file or the
// manifest are logged and reported but do not fail the run.
func Execute(ctx context.Context, cfg *config.Config, runID string) (*render.Report, error) {
	ctx = observability.WithRunID(ctx, runID)
	started := time.Now().UTC()

	ix, err := symbols.LoadIndexFile(cfg.Index)
	if err != nil {
		return nil, ferrors.IndexError("cannot load symbol index").
			WithCause(err).
			Hint("check the index setting or pass --index").
			WithContext("index", cfg.Index).
			Build()
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	linker := sourceLinker(ctx, cfg)
	r := render.New(ix, renderOptions(cfg, started)).
		WithRecorder(recorder).
		WithSourceLinker(linker)

	if cfg.InheritanceDiagrams {
		d, err := diagram.NewRenderer(ctx)
		if err != nil {
			observability.WarnContext(ctx, "Inheritance diagrams disabled", logfields.Error(err))
		} else {
			defer func() { _ = d.Close() }()
			r.WithDiagrams(d)
		}
	}

	report, err := r.Run(ctx)
	if err != nil {
		return report, err
	}

	if prom != nil {
		if err := prom.WriteTextfile(cfg.MetricsFile); err != nil {
			observability.WarnContext(ctx, "Metrics file not written", logfields.Path(cfg.MetricsFile), logfields.Error(err))
		}
	}
	if cfg.WriteManifest {
		m, err := buildManifest(cfg, runID, linker.Branch, started, report)
		if err == nil {
			err = m.Write(cfg.OutputDir)
		}
		if err != nil {
			observability.WarnContext(ctx, "Manifest not written", logfields.Error(err))
		}
	}
	return report, nil
}

func renderOptions(cfg *config.Config, now time.Time) render.Options {
	return render.Options{
		OutputDir:        cfg.OutputDir,
		ProjectName:      cfg.Project.Name,
		ProjectVersion:   cfg.Project.Version,
		RepositoryURL:    cfg.Repository.URL,
		TitleSuffix:      cfg.PageTitleSuffix,
		Homepage:         cfg.Homepage,
		MarkdownPages:    cfg.MarkdownPages,
		Minimal:          cfg.MinimalOutput,
		Workers:          cfg.Workers,
		GeneratorVersion: version.Resolved(),
		Timestamp:        now.Format(time.RFC3339),
	}
}

// sourceLinker configures "Declared at" links. Without a configured branch
// the branch checked out in the source root is used; when neither is known
// declarations are shown without links.
func sourceLinker(ctx context.Context, cfg *config.Config) sourcelink.Linker {
	repo := cfg.Repository
	forge, _ := sourcelink.ParseForge(repo.Forge)
	l := sourcelink.Linker{
		RepoURL:    repo.URL,
		Branch:     repo.DefaultBranch,
		SourceRoot: repo.SourceRoot,
		Forge:      forge,
	}
	if l.RepoURL == "" || l.Branch != "" {
		return l
	}
	if l.SourceRoot != "" {
		branch, err := sourcelink.DetectBranch(l.SourceRoot)
		switch {
		case err == nil:
			l.Branch = branch
			observability.DebugContext(ctx, "Detected source branch", logfields.Branch(branch))
		case errors.Is(err, sourcelink.ErrDetachedHead):
			observability.WarnContext(ctx, "Source checkout is on a detached HEAD, set repository.default_branch",
				logfields.Path(l.SourceRoot))
		default:
			observability.WarnContext(ctx, "Source branch could not be detected", logfields.Error(err))
		}
	}
	if l.Branch == "" {
		observability.WarnContext(ctx, "No branch known, declarations are not linked to the repository",
			logfields.Repository(l.RepoURL))
	}
	return l
}

func manifestSettings(cfg *config.Config, branch string) manifest.Settings {
	return manifest.Settings{
		Project:             cfg.Project.Name,
		ProjectVersion:      cfg.Project.Version,
		RepositoryURL:       cfg.Repository.URL,
		Branch:              branch,
		Minimal:             cfg.MinimalOutput,
		InheritanceDiagrams: cfg.InheritanceDiagrams,
		Workers:             cfg.Workers,
	}
}

// fingerprint identifies the inputs and settings of a render. Renders with
// equal fingerprints produce the same site.
func fingerprint(cfg *config.Config) (string, error) {
	in, err := manifest.HashInputs(cfg.Index, append(optional(cfg.Homepage), cfg.MarkdownPages...))
	if err != nil {
		return "", err
	}
	m := manifest.RunManifest{
		Generator: version.Resolved(),
		Inputs:    in,
		Settings:  manifestSettings(cfg, cfg.Repository.DefaultBranch),
	}
	m.Settings.Workers = 0
	return m.Hash()
}

func buildManifest(cfg *config.Config, runID, branch string, started time.Time, report *render.Report) (*manifest.RunManifest, error) {
	in, err := manifest.HashInputs(cfg.Index, append(optional(cfg.Homepage), cfg.MarkdownPages...))
	if err != nil {
		return nil, err
	}
	return &manifest.RunManifest{
		ID:        runID,
		Timestamp: started,
		Generator: version.Resolved(),
		Inputs:    in,
		Settings:  manifestSettings(cfg, branch),
		Outputs: manifest.Outputs{
			Pages:          report.Pages,
			Failed:         report.Failed,
			Warnings:       report.Warnings,
			Bytes:          report.Bytes,
			ArtifactHashes: manifest.HashOutputs(cfg.OutputDir, report.SortedFiles()),
		},
		Status:   string(report.Outcome()),
		Duration: report.Duration().Milliseconds(),
	}, nil
}

func optional(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
