package htmlpage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/observability"
)

const generatorURL = "https://git.home.luguber.info/inful/symdoc"

// NavLink is an entry of a sidebar or overview link list.
type NavLink struct {
	Label string
	// Href is relative to the site root.
	Href string
}

// Site holds what every page of one render run shares.
type Site struct {
	OutputDir        string
	ProjectName      string
	ProjectVersion   string
	RepositoryURL    string
	TitleSuffix      string
	GeneratorVersion string
	Timestamp        string
	Minimal          bool
	// Pages are the standalone markdown pages listed in the sidebar.
	Pages []NavLink
	// Sections are the API documentation entry pages.
	Sections []NavLink
}

// Page is one output file.
type Page struct {
	// Path is slash separated and relative to the output directory.
	Path        string
	Title       string
	Main        *html.Node
	Breadcrumbs *html.Node
	// TopLevel pages live in the site root; all others are one directory
	// deep and reach shared files through "../".
	TopLevel bool
}

// ProjectLabel is the project name followed by its version, if any.
func (s *Site) ProjectLabel() string {
	if s.ProjectVersion == "" {
		return s.ProjectName
	}
	return s.ProjectName + " " + s.ProjectVersion
}

func (p Page) prefix() string {
	if p.TopLevel {
		return ""
	}
	return "../"
}

// Document renders p: a complete HTML document, or in minimal mode the
// breadcrumbs and main fragments separated by a newline.
func (s *Site) Document(ctx context.Context, p Page) ([]byte, error) {
	if s.Minimal {
		return s.fragment(ctx, p)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := Append(Elem("html", Attr("lang", "en")), s.head(p), s.body(p))
	doc.AppendChild(root)

	out, err := Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", p.Path, err)
	}
	return []byte(out), nil
}

func (s *Site) fragment(ctx context.Context, p Page) ([]byte, error) {
	crumbs := ""
	if p.Breadcrumbs != nil {
		out, err := Render(p.Breadcrumbs)
		if err != nil {
			return nil, fmt.Errorf("render breadcrumbs of %s: %w", p.Path, err)
		}
		crumbs = out
	} else if !p.TopLevel && path.Base(p.Path) != "index.html" {
		observability.WarnContext(ctx, "No breadcrumbs found for page", logfields.Path(p.Path))
	}
	main := ""
	if p.Main != nil {
		out, err := Render(p.Main)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p.Path, err)
		}
		main = out
	}
	return []byte(crumbs + "\n" + main), nil
}

func (s *Site) head(p Page) *html.Node {
	prefix := p.prefix()
	return Append(Elem("head"),
		Elem("meta", Attr("charset", "utf-8")),
		Elem("meta", Attr("name", "viewport"), Attr("content", "width=device-width, initial-scale=1")),
		Tag("title", p.Title),
		Elem("link", Attr("rel", "stylesheet"), Attr("href", prefix+"styles.css")),
		Elem("link", Attr("rel", "icon"), Attr("type", "image/svg+xml"), Attr("href", prefix+"favicon.svg")),
	)
}

func (s *Site) body(p Page) *html.Node {
	prefix := p.prefix()

	menu := Classed("ul", "menu-list",
		Classed("p", "is-size-4", Text(s.ProjectLabel())),
		Classed("p", "menu-label", Text("Navigation")),
		listItem(Link(prefix+"index.html", "Home")),
		listItem(Link(prefix+"search.html", "Search")),
	)
	if s.RepositoryURL != "" {
		Append(menu, listItem(Link(s.RepositoryURL, "Repository")))
	}
	if len(s.Pages) > 0 {
		Append(menu, Classed("p", "menu-label", Text("Pages")))
		for _, pg := range s.Pages {
			Append(menu, listItem(Link(prefix+pg.Href, pg.Label)))
		}
	}
	Append(menu, Classed("p", "menu-label", Text("API Documentation")))
	AppendLinks(menu, s.Sections, prefix)

	main := p.Main
	if main == nil {
		main = Elem("main")
	}
	SetAttr(main, "class", "content")

	column := Append(Elem("div", Attr("class", "column"), Attr("style", "overflow-x: auto")), detach(p.Breadcrumbs), detach(main))
	columns := Classed("div", "columns", Classed("aside", "column is-one-fifth", menu), column)
	wrapper := Append(Elem("div", Attr("id", "wrapper")),
		Classed("section", "section", Classed("div", "container", columns)))

	generated := Append(Elem("p"),
		Text("Generated by "),
		Link(generatorURL, "symdoc"),
		Text(" version "+s.GeneratorVersion+" on "+s.Timestamp+"."),
	)
	footer := Classed("footer", "footer",
		Tag("p", "Documentation for "+s.ProjectLabel()+"."),
		generated,
	)
	return Append(Elem("body"), wrapper, footer)
}

// AppendLinks adds one list item per link to list, with hrefs prefixed.
func AppendLinks(list *html.Node, links []NavLink, prefix string) *html.Node {
	for _, l := range links {
		Append(list, listItem(Link(prefix+l.Href, l.Label)))
	}
	return list
}

// detach unlinks n from a previous document so a Page can be rendered again.
func detach(n *html.Node) *html.Node {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return n
}

func listItem(child *html.Node) *html.Node {
	return Append(Elem("li"), child)
}

// Write renders p and stores it below the output directory, creating parent
// directories as needed. It returns the number of bytes written.
func (s *Site) Write(ctx context.Context, p Page) (int, error) {
	data, err := s.Document(ctx, p)
	if err != nil {
		return 0, err
	}
	if err := WriteFile(s.OutputDir, p.Path, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// WriteFile stores data at rel (slash separated) below dir.
func WriteFile(dir, rel string, data []byte) error {
	if cleaned := path.Clean(rel); path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("refusing to write outside output directory: %s", rel)
	}
	target := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
