package render

import (
	"context"
	"html"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/ordering"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

const collectionAliases = "aliases"

// renderAliases writes the namespace-level aliases. Record member aliases
// are documented on their record's page only.
func (r *Renderer) renderAliases(ctx context.Context) {
	r.runCollection(ctx, collectionAliases, func(pool *pagePool) htmlpage.Page {
		list := htmlpage.Elem("ul")
		for _, id := range ordering.SortByName(r.index.AliasIDs(), ordering.Aliases(r.index)) {
			a := r.index.Aliases[id]
			if a.IsRecordMember {
				continue
			}
			htmlpage.Append(list, overviewItem(links.AliasURL(id, true), a.Name, ordering.Blurb(&a.Symbol), a.IsDetail))
			pool.submit(func(ctx context.Context) (htmlpage.Page, error) {
				return r.aliasPage(ctx, a), nil
			})
		}
		return htmlpage.Page{
			Path:  links.EntryPageURL(links.DirAliases, true),
			Title: r.title("Aliases"),
			Main:  overviewPage("Aliases", list, "No namespace-level aliases were declared in this project."),
		}
	})
}

// aliasHTML is the escaped, formatted "proto = target;" declaration.
func (r *Renderer) aliasHTML(a *symbols.Alias) string {
	return html.EscapeString(r.format.Format(a.Proto + " = " + a.Target.Name + ";"))
}

func (r *Renderer) aliasPage(ctx context.Context, a *symbols.Alias) htmlpage.Page {
	id := a.ID.String()
	main := htmlpage.Elem("main")
	code := htmlpage.Append(htmlpage.Elem("code", htmlpage.Attr("class", "hdoc-function-code language-cpp")),
		htmlpage.Raw(r.aliasHTML(a)))
	htmlpage.Append(main, htmlpage.Append(htmlpage.Elem("h3", htmlpage.Attr("id", id)),
		htmlpage.Classed("pre", "p-0 hdoc-pre-parent",
			htmlpage.Link("#"+id, "¶", htmlpage.Attr("class", "hdoc-permalink-icon")),
			code)))

	r.appendDescription(ctx, main, &a.Symbol, "h4")
	templateParams(main, "h2", a.TemplateParams)

	if a.Target.ID.IsValid() {
		htmlpage.Append(main,
			htmlpage.Tag("h4", "Target"),
			htmlpage.Append(htmlpage.Tag("p", "The target of this alias is "),
				htmlpage.Raw(r.links.TypeHTML(a.Target, a.Target.Name))))
	}

	return htmlpage.Page{
		Path:        links.AliasURL(a.ID, false),
		Title:       r.title("alias " + a.Name),
		Main:        main,
		Breadcrumbs: r.breadcrumbs(ctx, &a.Symbol, "alias"),
	}
}
