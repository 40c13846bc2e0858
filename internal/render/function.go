package render

import (
	"context"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/ordering"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

const collectionFunctions = "functions"

// renderFunctions writes one page per freestanding function group and the
// functions overview. Each overview entry carries an anchor per member,
// linking to that overload on the group page, so search results for free
// functions land on their group.
func (r *Renderer) renderFunctions(ctx context.Context) {
	r.runCollection(ctx, collectionFunctions, func(pool *pagePool) htmlpage.Page {
		list := htmlpage.Elem("ul")
		for _, key := range ordering.SortGroups(r.index, r.index.GroupKeys()) {
			g := r.index.Groups[key]
			li := overviewItem(r.links.GroupURL(key, true), key.Name, ordering.GroupBlurb(r.index, g), g.IsDetail)
			for _, id := range g.Functions {
				anchor := htmlpage.Elem("a", htmlpage.Attr("id", id.String()))
				if href := r.links.FunctionURL(id, true); href != "" {
					htmlpage.SetAttr(anchor, "href", href)
				}
				htmlpage.Append(li, anchor)
			}
			htmlpage.Append(list, li)
			pool.submit(func(ctx context.Context) (htmlpage.Page, error) {
				return r.groupPage(ctx, g), nil
			})
		}
		return htmlpage.Page{
			Path:  links.EntryPageURL(links.DirFunctions, true),
			Title: r.title("Functions"),
			Main:  overviewPage("Functions", list, "No functions were declared in this project."),
		}
	})
}

// groupPage prints every overload of a group. The first member provides the
// breadcrumbs.
func (r *Renderer) groupPage(ctx context.Context, g *symbols.FunctionGroup) htmlpage.Page {
	main := htmlpage.Elem("main")
	for _, id := range g.Functions {
		f, ok := r.index.Function(id)
		if !ok {
			r.missingMember(ctx, g.Key.Namespace, symbols.KindNamespace, id)
			continue
		}
		r.functionBlock(ctx, main, f)
	}

	page := htmlpage.Page{
		Path:  r.links.GroupURL(g.Key, false),
		Title: r.title("function " + g.Key.Name),
		Main:  main,
	}
	if first, ok := ordering.Representative(r.index, g); ok {
		page.Breadcrumbs = r.breadcrumbs(ctx, &first.Symbol, "function")
	}
	return page
}

// functionBlock appends the full documentation of one function: an anchored
// header with the hyperlinked prototype, description, location, template
// parameters, parameters and return value.
func (r *Renderer) functionBlock(ctx context.Context, main *html.Node, f *symbols.Function) {
	id := f.ID.String()
	code := htmlpage.Append(htmlpage.Elem("code", htmlpage.Attr("class", "hdoc-function-code language-cpp")),
		htmlpage.Raw(r.links.ProtoHTML(r.format.Format(f.Proto), f)))
	header := htmlpage.Append(htmlpage.Elem("h3", htmlpage.Attr("id", id)),
		htmlpage.Classed("pre", "p-0 hdoc-pre-parent",
			htmlpage.Link("#"+id, "¶", htmlpage.Attr("class", "hdoc-permalink-icon")),
			code))
	htmlpage.Append(main, header)

	r.appendDescription(ctx, main, &f.Symbol, "h4")
	templateParams(main, "h4", f.TemplateParams)

	if len(f.Params) > 0 {
		dl := htmlpage.Elem("dl")
		for _, p := range f.Params {
			dt := htmlpage.Classed("dt", "is-family-code",
				htmlpage.Raw(r.links.TypeHTML(p.Type, p.Type.Name)),
				htmlpage.Tag("b", " "+p.Name))
			if p.DefaultValue != "" {
				htmlpage.Append(dt, htmlpage.Text(" = "+p.DefaultValue))
			}
			htmlpage.Append(dl, dt)
			if p.DocComment != "" {
				htmlpage.Append(dl, htmlpage.Tag("dd", p.DocComment))
			}
		}
		htmlpage.Append(main, htmlpage.Tag("h4", "Parameters"), dl)
	}

	if f.ReturnTypeDocComment != "" {
		htmlpage.Append(main, htmlpage.Tag("h4", "Returns"), htmlpage.Tag("p", f.ReturnTypeDocComment))
	}
	htmlpage.Append(main, htmlpage.Elem("hr", htmlpage.Attr("class", "member-fun-separator")))
}
