package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/markdown"
	"git.home.luguber.info/inful/symdoc/internal/observability"
	"git.home.luguber.info/inful/symdoc/internal/util/sets"
)

const collectionPages = "pages"

// renderPages converts the standalone markdown pages and then writes the
// homepage, which links to them from the sidebar.
func (r *Renderer) renderPages(ctx context.Context) {
	published := sets.New[string]()
	for _, p := range r.opts.MarkdownPages {
		published.Add(markdown.PageFileName(markdown.PageStem(p)))
	}

	r.runCollection(ctx, collectionPages, func(pool *pagePool) htmlpage.Page {
		for _, path := range r.opts.MarkdownPages {
			pool.submit(func(ctx context.Context) (htmlpage.Page, error) {
				return r.markdownPage(ctx, path, published)
			})
		}
		return r.homepage(ctx, published)
	})
}

// markdownPage converts one markdown file into doc<stem>.html.
func (r *Renderer) markdownPage(ctx context.Context, path string, published sets.Set[string]) (htmlpage.Page, error) {
	stem := markdown.PageStem(path)
	page := htmlpage.Page{Path: markdown.PageFileName(stem), Title: stem, TopLevel: true}
	observability.InfoContext(ctx, "Processing markdown file", logfields.File(path))

	main, err := r.markdownMain(ctx, path, published)
	if err != nil {
		return page, err
	}
	page.Main = main
	return page, nil
}

func (r *Renderer) markdownMain(ctx context.Context, path string, published sets.Set[string]) (*html.Node, error) {
	body, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read markdown page: %w", err)
	}
	r.checkPageLinks(ctx, path, body, published)
	out, err := r.pagesMD.ToHTML(string(body))
	if err != nil {
		return nil, err
	}
	return htmlpage.Append(htmlpage.Elem("main"), htmlpage.Raw(out)), nil
}

// checkPageLinks warns about relative links to markdown files that are not
// published, since their rewritten targets will not exist.
func (r *Renderer) checkPageLinks(ctx context.Context, path string, body []byte, published sets.Set[string]) {
	for _, l := range markdown.ExtractLinks(body) {
		if file, ok := l.PageFile(); ok && !published.Has(file) {
			r.warn(ctx, reasonUnpublishedPage, "Markdown page links to a page that is not published",
				logfields.File(path), logfields.URL(l.Destination))
		}
	}
}

// homepage is index.html: the configured homepage markdown, or the title
// followed by links to the API sections when none is configured or it
// cannot be read.
func (r *Renderer) homepage(ctx context.Context, published sets.Set[string]) htmlpage.Page {
	page := htmlpage.Page{Path: "index.html", Title: r.opts.TitleSuffix, TopLevel: true}
	if r.opts.Homepage != "" {
		main, err := r.markdownMain(ctx, r.opts.Homepage, published)
		if err == nil {
			page.Main = main
			return page
		}
		r.warn(ctx, reasonPageFailed, "Homepage could not be converted, using the generated index",
			logfields.File(r.opts.Homepage), logfields.Error(err))
	}
	page.Main = htmlpage.Append(htmlpage.Elem("main"),
		htmlpage.Tag("h1", r.opts.TitleSuffix),
		htmlpage.AppendLinks(htmlpage.Elem("ul"), r.site.Sections, ""))
	return page
}
