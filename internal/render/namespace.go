package render

import (
	"context"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/ordering"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
	"git.home.luguber.info/inful/symdoc/internal/util/sets"
)

const collectionNamespaces = "namespaces"

// renderNamespaces writes the namespace tree. Namespaces have no detail
// pages; breadcrumbs link to their anchors on this page.
func (r *Renderer) renderNamespaces(ctx context.Context) {
	r.runCollection(ctx, collectionNamespaces, func(*pagePool) htmlpage.Page {
		main := htmlpage.Append(htmlpage.Elem("main"), htmlpage.Tag("h1", "Namespaces"))
		if len(r.index.Namespaces) == 0 {
			htmlpage.Append(main, htmlpage.Tag("p", "No namespaces were declared in this project."))
		} else {
			htmlpage.Append(main, r.namespaceTree(ctx))
		}
		return htmlpage.Page{
			Path:  links.EntryPageURL(links.DirNamespaces, true),
			Title: r.title("Namespaces"),
			Main:  main,
		}
	})
}

func namespaceEmpty(ns *symbols.Namespace) bool {
	return len(ns.Namespaces) == 0 && len(ns.Records) == 0 && len(ns.Enums) == 0 &&
		len(ns.Aliases) == 0 && len(ns.Functions) == 0
}

// namespaceTree lays out the root namespaces and their descendants as nested
// <details> lists. The walk uses an explicit stack: each namespace's node is
// attached to its parent list before the namespace itself is expanded, so
// sibling order is fixed when the parent is processed.
func (r *Renderer) namespaceTree(ctx context.Context) *html.Node {
	type frame struct {
		ns      *symbols.Namespace
		details *html.Node
	}

	tree := htmlpage.Elem("ul")
	var stack []frame
	visited := sets.New[symbols.SymbolID]()

	// attach adds a <details> node for each non-empty namespace to list and
	// returns the frames to expand, in display order.
	attach := func(list *html.Node, ids []symbols.SymbolID) []frame {
		var frames []frame
		for _, id := range ordering.SortByName(ids, ordering.Namespaces(r.index)) {
			ns := r.index.Namespaces[id]
			if namespaceEmpty(ns) || !visited.Insert(id) {
				continue
			}
			details := htmlpage.Append(htmlpage.Elem("details"),
				htmlpage.Tag("summary", ns.Name, htmlpage.Attr("class", "is-family-code"), htmlpage.Attr("id", id.String())))
			if !ns.IsDetail {
				htmlpage.SetAttr(details, "open", "true")
			}
			htmlpage.Append(list, details)
			frames = append(frames, frame{ns: ns, details: details})
		}
		return frames
	}
	push := func(frames []frame) {
		for i := len(frames) - 1; i >= 0; i-- {
			stack = append(stack, frames[i])
		}
	}

	var roots []symbols.SymbolID
	for _, id := range r.index.NamespaceIDs() {
		if !r.index.Namespaces[id].ParentID.IsValid() {
			roots = append(roots, id)
		}
	}
	push(attach(tree, roots))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ul := htmlpage.Elem("ul")
		htmlpage.Append(cur.details, ul)
		children := attach(ul, cur.ns.Namespaces)
		r.namespaceMembers(ctx, ul, cur.ns)
		push(children)
	}
	return tree
}

func namespaceEntry(href, label string) *html.Node {
	return htmlpage.Classed("li", "is-family-code", htmlpage.Link(href, label))
}

// namespaceMembers lists the records, enums, aliases and function groups
// declared directly in ns.
func (r *Renderer) namespaceMembers(ctx context.Context, ul *html.Node, ns *symbols.Namespace) {
	records := ordering.SortByName(ns.Records, ordering.Records(r.index))
	r.reportMissing(ctx, ns.ID, symbols.KindRecord, ns.Records, records)
	for _, id := range records {
		rec := r.index.Records[id]
		htmlpage.Append(ul, namespaceEntry(links.RecordURL(id, true), rec.Type+" "+rec.Name))
	}

	enums := ordering.SortByName(ns.Enums, ordering.Enums(r.index))
	r.reportMissing(ctx, ns.ID, symbols.KindEnum, ns.Enums, enums)
	for _, id := range enums {
		e := r.index.Enums[id]
		htmlpage.Append(ul, namespaceEntry(links.EnumURL(id, true), e.Type+" "+e.Name))
	}

	aliases := ordering.SortByName(ns.Aliases, ordering.Aliases(r.index))
	r.reportMissing(ctx, ns.ID, symbols.KindAlias, ns.Aliases, aliases)
	for _, id := range aliases {
		htmlpage.Append(ul, namespaceEntry(links.AliasURL(id, true), "using "+r.index.Aliases[id].Name))
	}

	functions := ordering.SortByName(ns.Functions, ordering.Functions(r.index))
	r.reportMissing(ctx, ns.ID, symbols.KindFunction, ns.Functions, functions)
	seen := sets.New[symbols.GroupKey]()
	for _, id := range functions {
		f := r.index.Functions[id]
		if !f.IsFreestanding() || !seen.Insert(f.Group) {
			continue
		}
		htmlpage.Append(ul, namespaceEntry(r.links.GroupURL(f.Group, true), "function "+f.Name))
	}
}
