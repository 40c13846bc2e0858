package render

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/observability"
)

// pageBuilder produces one detail page.
type pageBuilder func(ctx context.Context) (htmlpage.Page, error)

// pagePool renders the detail pages of one collection on a bounded number of
// goroutines. submit blocks while the pool is full, so at most Workers pages
// are pending at any time. wait is the barrier before the overview page.
type pagePool struct {
	r          *Renderer
	ctx        context.Context
	collection string
	group      errgroup.Group
	submitted  int
}

func (r *Renderer) newPool(ctx context.Context, collection string) *pagePool {
	p := &pagePool{r: r, ctx: ctx, collection: collection}
	p.group.SetLimit(r.opts.Workers)
	return p
}

// submit schedules build. Tasks never fail the group: a page that cannot be
// rendered is reported and skipped.
func (p *pagePool) submit(build pageBuilder) {
	p.submitted++
	p.group.Go(func() error {
		p.r.writePage(p.ctx, p.collection, build)
		return nil
	})
}

func (p *pagePool) wait() {
	_ = p.group.Wait()
}

// writePage builds and writes one page, recording the outcome.
func (r *Renderer) writePage(ctx context.Context, collection string, build pageBuilder) {
	page, err := build(ctx)
	if err == nil {
		var n int
		n, err = r.site.Write(ctx, page)
		if err == nil {
			r.recorder.IncPage(collection, metrics.PageWritten)
			r.recorder.AddBytesWritten(n)
			r.report.addPage(collection, page.Path, n)
			return
		}
	}
	r.recorder.IncPage(collection, metrics.PageFailed)
	r.report.addFailure()
	r.warn(ctx, reasonPageFailed, "Page could not be written",
		logfields.Collection(collection), logfields.Path(page.Path), logfields.Error(err))
}

// runCollection renders one collection: fill submits the detail pages and
// returns the overview page, which is written only after every detail page
// has finished.
func (r *Renderer) runCollection(ctx context.Context, collection string, fill func(p *pagePool) htmlpage.Page) {
	ctx = observability.WithCollection(ctx, collection)
	ctx, span := observability.StartSpan(ctx, "render."+collection)
	start := time.Now()

	pool := r.newPool(ctx, collection)
	overview := fill(pool)
	pool.wait()
	r.writePage(ctx, collection, func(context.Context) (htmlpage.Page, error) { return overview, nil })

	elapsed := time.Since(start)
	r.recorder.ObserveCollectionDuration(collection, elapsed)
	r.report.setCollectionDuration(collection, elapsed)
	span.SetAttribute(logfields.Pages(pool.submitted + 1))
	span.End()
	observability.InfoContext(ctx, "Collection rendered", logfields.Pages(pool.submitted+1), logfields.Duration(elapsed))
}
