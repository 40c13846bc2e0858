package render

import (
	"context"
	"strconv"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/ordering"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

const collectionEnums = "enums"

func (r *Renderer) renderEnums(ctx context.Context) {
	r.runCollection(ctx, collectionEnums, func(pool *pagePool) htmlpage.Page {
		list := htmlpage.Elem("ul")
		for _, id := range ordering.SortByName(r.index.EnumIDs(), ordering.Enums(r.index)) {
			e := r.index.Enums[id]
			htmlpage.Append(list, overviewItem(links.EnumURL(id, true), e.Type+" "+e.Name, ordering.Blurb(&e.Symbol), e.IsDetail))
			pool.submit(func(ctx context.Context) (htmlpage.Page, error) {
				return r.enumPage(ctx, e), nil
			})
		}
		return htmlpage.Page{
			Path:  links.EntryPageURL(links.DirEnums, true),
			Title: r.title("Enums"),
			Main:  overviewPage("Enums", list, "No enums were declared in this project."),
		}
	})
}

func (r *Renderer) enumPage(ctx context.Context, e *symbols.Enum) htmlpage.Page {
	heading := e.Type + " " + e.Name
	main := htmlpage.Append(htmlpage.Elem("main"), htmlpage.Tag("h1", heading))
	r.appendDescription(ctx, main, &e.Symbol, "h2")

	htmlpage.Append(main, htmlpage.Tag("h2", "Enumerators"))
	if len(e.Members) > 0 {
		table := htmlpage.Classed("table", "table is-narrow is-hoverable",
			htmlpage.Append(htmlpage.Elem("tr"),
				htmlpage.Tag("th", "Name"), htmlpage.Tag("th", "Value"), htmlpage.Tag("th", "Comment")))
		for _, m := range e.Members {
			htmlpage.Append(table, htmlpage.Append(htmlpage.Elem("tr"),
				htmlpage.Tag("td", m.Name, htmlpage.Attr("class", "is-family-code")),
				htmlpage.Tag("td", strconv.FormatInt(m.Value, 10), htmlpage.Attr("class", "is-family-code")),
				htmlpage.Tag("td", m.DocComment)))
		}
		htmlpage.Append(main, table)
	}

	return htmlpage.Page{
		Path:        links.EnumURL(e.ID, false),
		Title:       r.title(heading),
		Main:        main,
		Breadcrumbs: r.breadcrumbs(ctx, &e.Symbol, e.Type),
	}
}
