package render

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/diagram"
	"git.home.luguber.info/inful/symdoc/internal/hierarchy"
	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/markdown"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/observability"
	"git.home.luguber.info/inful/symdoc/internal/pretty"
	"git.home.luguber.info/inful/symdoc/internal/sourcelink"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

// Warning reasons, used as the metrics label and the "reason" log attribute.
const (
	reasonMissingMember      = "missing_member"
	reasonMissingBreadcrumbs = "missing_breadcrumbs"
	reasonMarkdown           = "markdown"
	reasonPageFailed         = "page_failed"
	reasonDiagram            = "diagram"
	reasonUnpublishedPage    = "unpublished_page"
)

// Options configure a render run.
type Options struct {
	OutputDir      string
	ProjectName    string
	ProjectVersion string
	RepositoryURL  string
	// TitleSuffix is appended to every page title after a colon.
	TitleSuffix string
	// Homepage is the markdown file rendered as index.html. Empty means a
	// generated list of the API sections.
	Homepage      string
	MarkdownPages []string
	Minimal       bool
	// Workers bounds the number of detail pages rendered at once. Values
	// below one mean a single worker.
	Workers          int
	GeneratorVersion string
	Timestamp        string
}

// Renderer turns a symbol index into a static site. Page builders only read
// the index and the renderer's configuration, so they may run concurrently.
type Renderer struct {
	index    *symbols.Index
	links    *links.Resolver
	site     *htmlpage.Site
	md       *markdown.Converter
	pagesMD  *markdown.Converter
	format   pretty.Formatter
	source   sourcelink.Linker
	diagrams *diagram.Renderer
	recorder metrics.Recorder
	opts     Options
	report   *Report
}

// New returns a Renderer for ix.
func New(ix *symbols.Index, opts Options) *Renderer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Renderer{
		index:    ix,
		links:    links.NewResolver(ix),
		md:       markdown.New(markdown.Options{AllowRawHTML: true}),
		pagesMD:  markdown.New(markdown.Options{AllowRawHTML: true, RewritePageLinks: true}),
		format:   pretty.New(pretty.DefaultColumns),
		recorder: metrics.NoopRecorder{},
		opts:     opts,
		report:   newReport(),
		site: &htmlpage.Site{
			OutputDir:        opts.OutputDir,
			ProjectName:      opts.ProjectName,
			ProjectVersion:   opts.ProjectVersion,
			RepositoryURL:    opts.RepositoryURL,
			TitleSuffix:      opts.TitleSuffix,
			GeneratorVersion: opts.GeneratorVersion,
			Timestamp:        opts.Timestamp,
			Minimal:          opts.Minimal,
			Pages:            pageLinks(opts.MarkdownPages),
			Sections:         sectionLinks(),
		},
	}
}

// WithRecorder sets the metrics recorder. A nil recorder disables metrics.
func (r *Renderer) WithRecorder(rec metrics.Recorder) *Renderer {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	r.recorder = rec
	return r
}

// WithSourceLinker enables links from "Declared at" lines to the repository.
func (r *Renderer) WithSourceLinker(l sourcelink.Linker) *Renderer {
	r.source = l
	return r
}

// WithDiagrams enables inheritance diagrams on record pages.
func (r *Renderer) WithDiagrams(d *diagram.Renderer) *Renderer {
	r.diagrams = d
	return r
}

// Report returns the statistics of the last run.
func (r *Renderer) Report() *Report { return r.report }

func sectionLinks() []htmlpage.NavLink {
	return []htmlpage.NavLink{
		{Label: "Namespaces", Href: links.EntryPageURL(links.DirNamespaces, true)},
		{Label: "Records", Href: links.EntryPageURL(links.DirRecords, true)},
		{Label: "Enums", Href: links.EntryPageURL(links.DirEnums, true)},
		{Label: "Functions", Href: links.EntryPageURL(links.DirFunctions, true)},
		{Label: "Aliases", Href: links.EntryPageURL(links.DirAliases, true)},
	}
}

func pageLinks(paths []string) []htmlpage.NavLink {
	out := make([]htmlpage.NavLink, 0, len(paths))
	for _, p := range paths {
		stem := markdown.PageStem(p)
		out = append(out, htmlpage.NavLink{Label: stem, Href: markdown.PageFileName(stem)})
	}
	return out
}

func (r *Renderer) title(prefix string) string {
	if r.opts.TitleSuffix == "" {
		return prefix
	}
	return prefix + ": " + r.opts.TitleSuffix
}

func (r *Renderer) warn(ctx context.Context, reason, msg string, attrs ...slog.Attr) {
	r.recorder.IncWarning(reason)
	r.report.addWarning(reason)
	observability.WarnContext(ctx, msg, append(attrs, slog.String("reason", reason))...)
}

func (r *Renderer) missingMember(ctx context.Context, owner symbols.SymbolID, kind symbols.Kind, id symbols.SymbolID) {
	r.warn(ctx, reasonMissingMember, "Skipping member missing from index",
		logfields.SymbolID(uint64(owner)), logfields.SymbolKind(kind.String()),
		slog.Uint64("member_id", uint64(id)))
}

// appendComment adds a comment converted from markdown. When the conversion
// yields nothing the raw comment becomes a plain paragraph.
func (r *Renderer) appendComment(ctx context.Context, parent *html.Node, comment string) {
	if comment == "" {
		return
	}
	out, err := r.md.ToHTML(comment)
	if err != nil {
		r.warn(ctx, reasonMarkdown, "Markdown conversion failed", logfields.Error(err))
		out = ""
	}
	if out == "" {
		htmlpage.Append(parent, htmlpage.Tag("p", comment))
		return
	}
	htmlpage.Append(parent, htmlpage.Raw(out))
}

func hasComments(s *symbols.Symbol) bool {
	return s.BriefComment != "" || s.DocComment != ""
}

// appendDescription adds the heading (when there is anything to describe),
// the brief and doc comments and the declaration location.
func (r *Renderer) appendDescription(ctx context.Context, main *html.Node, s *symbols.Symbol, heading string) {
	if heading != "" && hasComments(s) {
		htmlpage.Append(main, htmlpage.Tag(heading, "Description"))
	}
	r.appendComment(ctx, main, s.BriefComment)
	r.appendComment(ctx, main, s.DocComment)
	htmlpage.Append(main, r.declaredAt(s))
}

// declaredAt is the "Declared at: file:line" paragraph, or nil when the
// location is unknown.
func (r *Renderer) declaredAt(s *symbols.Symbol) *html.Node {
	if s.File == "" {
		return nil
	}
	display, href := r.source.Location(s.File, s.Line)
	p := htmlpage.Append(htmlpage.Elem("p"), htmlpage.Text("Declared at: "))
	if href == "" {
		return htmlpage.Append(p, htmlpage.Tag("span", display, htmlpage.Attr("class", "is-family-code")))
	}
	return htmlpage.Append(p, htmlpage.Link(href, display, htmlpage.Attr("class", "is-family-code")))
}

// breadcrumbs renders the containment trail of s, or nil for root symbols.
func (r *Renderer) breadcrumbs(ctx context.Context, s *symbols.Symbol, label string) *html.Node {
	trail := hierarchy.Breadcrumbs(r.index, s, label)
	if len(trail) == 0 {
		return nil
	}
	if len(trail) == 1 {
		r.warn(ctx, reasonMissingBreadcrumbs, "Parent of symbol not found, breadcrumbs are incomplete",
			logfields.SymbolID(uint64(s.ID)), logfields.Symbol(s.Name))
	}

	ul := htmlpage.Elem("ul")
	for _, c := range trail {
		span := htmlpage.Tag("span", c.Label+" "+c.Name)
		if c.Current {
			a := htmlpage.Append(htmlpage.Elem("a", htmlpage.Attr("aria-current", "page")), span)
			htmlpage.Append(ul, htmlpage.Classed("li", "is-active", a))
			continue
		}
		href := links.RecordURL(c.ID, true)
		if c.Kind == symbols.KindNamespace {
			href = links.EntryPageURL(links.DirNamespaces, false) + "#" + c.ID.String()
		}
		a := htmlpage.Append(htmlpage.Elem("a", htmlpage.Attr("href", href)), span)
		htmlpage.Append(ul, htmlpage.Append(htmlpage.Elem("li"), a))
	}
	return htmlpage.Append(htmlpage.Elem("nav",
		htmlpage.Attr("class", "breadcrumb has-arrow-separator"),
		htmlpage.Attr("aria-label", "breadcrumbs")), ul)
}

// templateParams renders a definition list of template parameters under the
// given heading level, or nothing when there are none.
func templateParams(main *html.Node, heading string, params []symbols.TemplateParam) {
	if len(params) == 0 {
		return
	}
	htmlpage.Append(main, htmlpage.Tag(heading, "Template Parameters"))
	dl := htmlpage.Elem("dl")
	for _, tp := range params {
		dt := htmlpage.Classed("dt", "is-family-code", htmlpage.Text(tp.Type), htmlpage.Tag("b", " "+tp.Name))
		if tp.DefaultValue != "" {
			htmlpage.Append(dt, htmlpage.Text(" = "+tp.DefaultValue))
		}
		htmlpage.Append(dl, dt)
		if tp.DocComment != "" {
			htmlpage.Append(dl, htmlpage.Tag("dd", tp.DocComment))
		}
	}
	htmlpage.Append(main, dl)
}

// accessClass is the CSS class that de-emphasises non-public members.
func accessClass(a symbols.Access) string {
	switch a {
	case symbols.AccessProtected:
		return "hdoc-protected"
	case symbols.AccessPrivate:
		return "hdoc-private"
	default:
		return ""
	}
}

func joinClasses(classes ...string) string {
	var out []string
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// overviewItem is one entry of an overview list: a linked label followed by
// the blurb, de-emphasised for detail symbols.
func overviewItem(href, label, blurb string, detail bool) *html.Node {
	a := htmlpage.Link(href, label, htmlpage.Attr("class", "is-family-code"))
	li := htmlpage.Append(htmlpage.Elem("li"), a)
	if detail {
		htmlpage.SetAttr(li, "class", "hdoc-detail")
	}
	if blurb != "" {
		htmlpage.Append(li, htmlpage.Text(" - "+blurb))
	}
	return li
}

// overviewPage wraps an overview list: the heading, an "Overview" section and
// the list, or the empty sentence when the list has no entries.
func overviewPage(heading string, list *html.Node, empty string) *html.Node {
	main := htmlpage.Append(htmlpage.Elem("main"), htmlpage.Tag("h1", heading), htmlpage.Tag("h2", "Overview"))
	if list.FirstChild == nil {
		return htmlpage.Append(main, htmlpage.Tag("p", empty))
	}
	return htmlpage.Append(main, list)
}
