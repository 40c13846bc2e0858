package render

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"git.home.luguber.info/inful/symdoc/internal/assets"
	ferrors "git.home.luguber.info/inful/symdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/observability"
)

// Run renders the complete site into the output directory.
//
// Collections are rendered one after the other: records, enums, functions,
// aliases, the namespace tree, search and finally the standalone pages with
// the homepage. Within a collection detail pages are rendered concurrently
// and the overview page is written once all of them have finished.
//
// The only error Run returns is a fatal one: the output directory could not
// be created. Pages that cannot be produced are logged, counted in the
// report and skipped.
func (r *Renderer) Run(ctx context.Context) (*Report, error) {
	r.report = newReport()
	r.report.Start = time.Now()
	ctx = observability.WithStage(ctx, "render")
	ctx, span := observability.StartSpan(ctx, "render.run", logfields.Path(r.opts.OutputDir))
	defer span.End()

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		span.RecordError(err)
		return r.report, ferrors.FileSystemError("cannot create output directory").
			WithCause(err).
			WithContext("output_dir", r.opts.OutputDir).
			Build()
	}

	r.recorder.SetWorkers(r.opts.Workers)
	observability.InfoContext(ctx, "Rendering documentation",
		logfields.Path(r.opts.OutputDir), logfields.Workers(r.opts.Workers))

	r.writeAssets(ctx)
	r.renderRecords(ctx)
	r.renderEnums(ctx)
	r.renderFunctions(ctx)
	r.renderAliases(ctx)
	r.renderNamespaces(ctx)
	r.renderSearch(ctx)
	r.renderPages(ctx)

	r.report.End = time.Now()
	elapsed := r.report.Duration()
	r.recorder.ObserveRunDuration(elapsed)
	observability.InfoContext(ctx, "Documentation rendered",
		logfields.Pages(r.report.TotalPages()),
		logfields.Failed(r.report.Failed),
		logfields.Bytes(humanize.Bytes(uint64(max(r.report.Bytes, 0)))),
		logfields.Duration(elapsed),
		slog.String("outcome", string(r.report.Outcome())))
	return r.report, nil
}

func (r *Renderer) writeAssets(ctx context.Context) {
	n, err := assets.Write(r.opts.OutputDir)
	if err != nil {
		r.report.addFailure()
		r.warn(ctx, reasonPageFailed, "Static assets could not be written", logfields.Error(err))
		return
	}
	r.recorder.AddBytesWritten(n)
	for _, a := range assets.Bundled() {
		r.report.addFile(a.Path, len(a.Content))
	}
}
