package render

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/diagram"
	"git.home.luguber.info/inful/symdoc/internal/hierarchy"
	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/ordering"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
	"git.home.luguber.info/inful/symdoc/internal/util/sets"
)

const collectionRecords = "records"

func (r *Renderer) renderRecords(ctx context.Context) {
	r.runCollection(ctx, collectionRecords, func(pool *pagePool) htmlpage.Page {
		list := htmlpage.Elem("ul")
		for _, id := range ordering.SortByName(r.index.RecordIDs(), ordering.Records(r.index)) {
			rec := r.index.Records[id]
			label := rec.Type + " " + rec.Name
			htmlpage.Append(list, overviewItem(links.RecordURL(id, true), label, ordering.Blurb(&rec.Symbol), rec.IsDetail))
			pool.submit(func(ctx context.Context) (htmlpage.Page, error) {
				return r.recordPage(ctx, rec), nil
			})
		}
		return htmlpage.Page{
			Path:  links.EntryPageURL(links.DirRecords, true),
			Title: r.title("Records"),
			Main:  overviewPage("Records", list, "No records were declared in this project."),
		}
	})
}

// recordPage documents one struct, class or union together with the members
// it inherits through non-private bases.
func (r *Renderer) recordPage(ctx context.Context, rec *symbols.Record) htmlpage.Page {
	heading := rec.Type + " " + rec.Name
	main := htmlpage.Append(htmlpage.Elem("main"), htmlpage.Tag("h1", heading))

	decl := r.format.Format(rec.Proto) + " { /* full declaration omitted */ };"
	htmlpage.Append(main,
		htmlpage.Tag("h2", "Declaration"),
		htmlpage.Classed("pre", "p-0", htmlpage.Tag("code", decl, htmlpage.Attr("class", "hdoc-record-code language-cpp"))),
	)

	r.appendDescription(ctx, main, &rec.Symbol, "h2")
	htmlpage.Append(main, r.baseList(rec))
	r.appendDiagram(ctx, main, rec)
	templateParams(main, "h2", rec.TemplateParams)

	inherited := hierarchy.Flatten(r.index, rec)
	r.memberVariableSection(main, rec, inherited)
	r.memberAliasSection(ctx, main, rec)

	methods := ordering.SortByName(rec.Methods, ordering.Functions(r.index))
	friends := ordering.SortByName(rec.HiddenFriends, ordering.Functions(r.index))
	r.reportMissing(ctx, rec.ID, symbols.KindFunction, rec.Methods, methods)
	r.reportMissing(ctx, rec.ID, symbols.KindFunction, rec.HiddenFriends, friends)

	hasOverviewHeading := false
	if len(methods) > 0 {
		htmlpage.Append(main, htmlpage.Tag("h2", "Member Function Overview"), r.functionOverview(methods))
		hasOverviewHeading = true
	}
	for _, base := range inherited {
		list := r.inheritedMethods(base.Record)
		if list == nil {
			continue
		}
		if !hasOverviewHeading {
			htmlpage.Append(main, htmlpage.Tag("h2", "Member Function Overview"))
			hasOverviewHeading = true
		}
		htmlpage.Append(main, inheritedFrom(base.Record), list)
	}

	if len(friends) > 0 {
		htmlpage.Append(main, htmlpage.Tag("h2", "Friend Function Overview"), r.functionOverview(friends))
	}
	if len(methods) > 0 {
		htmlpage.Append(main, htmlpage.Tag("h2", "Member Functions"))
		for _, id := range methods {
			r.functionBlock(ctx, main, r.index.Functions[id])
		}
	}
	if len(friends) > 0 {
		htmlpage.Append(main, htmlpage.Tag("h2", "Friend Functions"))
		for _, id := range friends {
			r.functionBlock(ctx, main, r.index.Functions[id])
		}
	}

	return htmlpage.Page{
		Path:        links.RecordURL(rec.ID, false),
		Title:       r.title(heading),
		Main:        main,
		Breadcrumbs: r.breadcrumbs(ctx, &rec.Symbol, rec.Type),
	}
}

// reportMissing warns once per id of want that did not survive lookup.
func (r *Renderer) reportMissing(ctx context.Context, owner symbols.SymbolID, kind symbols.Kind, want, got []symbols.SymbolID) {
	if len(want) == len(got) {
		return
	}
	found := sets.New(got...)
	for _, id := range want {
		if !found.Has(id) {
			r.missingMember(ctx, owner, kind, id)
		}
	}
}

// baseList is the "Inherits from:" paragraph. Indexed bases are linked.
func (r *Renderer) baseList(rec *symbols.Record) *html.Node {
	if len(rec.Bases) == 0 {
		return nil
	}
	p := htmlpage.Tag("p", "Inherits from: ")
	for i, b := range rec.Bases {
		if i > 0 {
			htmlpage.Append(p, htmlpage.Text(", "))
		}
		if base, ok := r.index.Record(b.ID); ok {
			htmlpage.Append(p, htmlpage.Link(links.RecordURL(base.ID, true), base.Name))
			continue
		}
		htmlpage.Append(p, htmlpage.Text(b.Name))
	}
	return p
}

func (r *Renderer) appendDiagram(ctx context.Context, main *html.Node, rec *symbols.Record) {
	if r.diagrams == nil || len(rec.Bases) == 0 {
		return
	}
	svg, err := r.diagrams.SVG(ctx, diagram.InheritanceDOT(r.index, rec))
	if err != nil {
		r.warn(ctx, reasonDiagram, "Inheritance diagram could not be drawn",
			logfields.SymbolID(uint64(rec.ID)), logfields.Error(err))
		return
	}
	htmlpage.Append(main,
		htmlpage.Tag("h2", "Inheritance Diagram"),
		htmlpage.Classed("div", "hdoc-diagram", htmlpage.Raw(svg)))
}

func inheritedFrom(rec *symbols.Record) *html.Node {
	return htmlpage.Append(htmlpage.Tag("p", "Inherited from "),
		htmlpage.Link(links.RecordURL(rec.ID, true), rec.Name),
		htmlpage.Text(":"))
}

// memberVariableSection lists the record's own variables and then, per
// flattened ancestor, the non-private variables it declares.
func (r *Renderer) memberVariableSection(main *html.Node, rec *symbols.Record, inherited []hierarchy.Inherited) {
	hasHeading := false
	heading := func() {
		if !hasHeading {
			htmlpage.Append(main, htmlpage.Tag("h2", "Member Variables"))
			hasHeading = true
		}
	}
	if len(rec.Vars) > 0 {
		heading()
		htmlpage.Append(main, r.memberVariables(rec, false))
	}
	for _, base := range inherited {
		dl := r.memberVariables(base.Record, true)
		if dl == nil {
			continue
		}
		heading()
		htmlpage.Append(main, inheritedFrom(base.Record), dl)
	}
}

// memberVariables renders the variables declared by rec as a definition
// list, or nil when nothing is listed. Inherited lists omit private members
// and link each entry to its description on the declaring record's page.
func (r *Renderer) memberVariables(rec *symbols.Record, inherited bool) *html.Node {
	dl := htmlpage.Elem("dl")
	for _, v := range ordering.SortMemberVariables(rec.Vars) {
		if inherited && v.Access == symbols.AccessPrivate {
			continue
		}
		preamble := " "
		if v.IsStatic {
			preamble = " static "
		}

		var dt *html.Node
		if inherited {
			a := htmlpage.Append(htmlpage.Elem("a", htmlpage.Attr("href", links.RecordURL(rec.ID, true)+"#var_"+v.Name)),
				htmlpage.Text(preamble), htmlpage.Tag("b", v.Name))
			dt = htmlpage.Append(htmlpage.Elem("dt"), a)
		} else {
			dt = htmlpage.Append(htmlpage.Elem("dt", htmlpage.Attr("id", "var_"+v.Name)),
				htmlpage.Raw(preamble+" "+r.links.TypeHTML(v.Type, v.Type.Name)+" "),
				htmlpage.Tag("b", v.Name))
		}
		if v.DefaultValue != "" {
			htmlpage.Append(dt, htmlpage.Text(" = "+v.DefaultValue))
		}
		htmlpage.SetAttr(dt, "class", joinClasses("is-family-code", accessClass(v.Access)))
		htmlpage.Append(dl, dt)

		if !inherited && v.DocComment != "" {
			htmlpage.Append(dl, htmlpage.Tag("dd", v.DocComment))
		}
	}
	if dl.FirstChild == nil {
		return nil
	}
	return dl
}

func (r *Renderer) memberAliasSection(ctx context.Context, main *html.Node, rec *symbols.Record) {
	if len(rec.Aliases) == 0 {
		return
	}
	ids := ordering.SortByName(rec.Aliases, ordering.Aliases(r.index))
	r.reportMissing(ctx, rec.ID, symbols.KindAlias, rec.Aliases, ids)
	if len(ids) == 0 {
		return
	}
	ul := htmlpage.Elem("ul")
	for _, id := range ids {
		a := r.index.Aliases[id]
		htmlpage.Append(ul, htmlpage.Append(
			htmlpage.Elem("li", htmlpage.Attr("class", joinClasses("is-family-code", accessClass(a.Access)))),
			htmlpage.Raw(r.aliasHTML(a))))
	}
	htmlpage.Append(main, htmlpage.Tag("h2", "Member Aliases"), ul)
}

// inheritedMethods lists the non-private methods of an ancestor, excluding
// constructors and destructors, or returns nil when none remain.
func (r *Renderer) inheritedMethods(base *symbols.Record) *html.Node {
	ul := htmlpage.Elem("ul")
	for _, id := range ordering.SortByName(base.Methods, ordering.Functions(r.index)) {
		f := r.index.Functions[id]
		if f.Access == symbols.AccessPrivate || f.IsCtorOrDtor {
			continue
		}
		entry := htmlpage.Elem("span")
		if href := r.links.FunctionURL(f.ID, true); href != "" {
			entry = htmlpage.Elem("a", htmlpage.Attr("href", href))
		}
		htmlpage.Append(entry, htmlpage.Text(f.Access.String()+" "), htmlpage.Tag("b", f.Name))
		htmlpage.Append(ul, htmlpage.Classed("li", "is-family-code", entry))
	}
	if ul.FirstChild == nil {
		return nil
	}
	return ul
}

// functionOverview is the condensed list of functions at the top of a record
// page: template clause, bold name linked to the full entry, the parameter
// list and a trailing return type.
func (r *Renderer) functionOverview(ids []symbols.SymbolID) *html.Node {
	ul := htmlpage.Elem("ul")
	for _, id := range ids {
		f := r.index.Functions[id]
		tmpl, ret, post := splitProto(f)

		li := htmlpage.Elem("li", htmlpage.Attr("class", joinClasses("is-family-code", accessClass(f.Access))))
		if tmpl != "" {
			htmlpage.Append(li, htmlpage.Tag("span", tmpl, htmlpage.Attr("class", "hdoc-overview-template")), htmlpage.Elem("br"))
		}
		htmlpage.Append(li,
			htmlpage.Append(htmlpage.Elem("a", htmlpage.Attr("href", "#"+f.ID.String())), htmlpage.Tag("b", f.Name)),
			htmlpage.Text(post))
		if ret != "" {
			htmlpage.Append(li, htmlpage.Raw(" &rarr; "), htmlpage.Text(ret))
		}
		htmlpage.Append(ul, li)
	}
	return ul
}

// splitProto cuts a prototype at the recorded offsets into the template
// clause, the return type (without a leading "inline") and everything after
// the name. Offsets outside the prototype are clamped.
func splitProto(f *symbols.Function) (tmpl, ret, post string) {
	proto := f.Proto
	clamp := func(v, lo int) int {
		return min(max(v, lo), len(proto))
	}
	postTemplate := clamp(f.PostTemplate, 0)
	nameStart := clamp(f.NameStart, postTemplate)
	nameEnd := clamp(nameStart+len(f.Name), nameStart)

	tmpl = proto[:postTemplate]
	ret = strings.TrimSpace(proto[postTemplate:nameStart])
	if ret == "inline" || strings.HasPrefix(ret, "inline ") {
		ret = strings.TrimSpace(ret[len("inline"):])
	}
	post = proto[nameEnd:]
	return tmpl, ret, post
}
