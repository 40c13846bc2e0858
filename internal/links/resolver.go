// Package links derives page URLs for symbols and turns type names and
// declarations into HTML with hyperlinks to the pages that document them.
//
// Resolution never fails: a reference that cannot be resolved yields an
// empty URL and callers render the plain name instead.
package links

import (
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

// Directory names of the per-kind page trees.
const (
	DirNamespaces = "namespaces"
	DirRecords    = "records"
	DirEnums      = "enums"
	DirFunctions  = "functions"
	DirAliases    = "aliases"
)

const pageExt = ".html"

// Resolver maps symbol identifiers to page paths. It only reads the index and
// is safe for concurrent use.
type Resolver struct {
	index *symbols.Index
}

// NewResolver returns a Resolver over ix.
func NewResolver(ix *symbols.Index) *Resolver {
	return &Resolver{index: ix}
}

func prefix(relative bool) string {
	if relative {
		return "../"
	}
	return ""
}

func symbolPath(dir string, id symbols.SymbolID, relative bool) string {
	return prefix(relative) + dir + "/" + id.String() + pageExt
}

// RecordURL is the page of the record with the given id.
func RecordURL(id symbols.SymbolID, relative bool) string {
	return symbolPath(DirRecords, id, relative)
}

// EnumURL is the page of the enum with the given id.
func EnumURL(id symbols.SymbolID, relative bool) string {
	return symbolPath(DirEnums, id, relative)
}

// AliasURL is the page of the alias with the given id.
func AliasURL(id symbols.SymbolID, relative bool) string {
	return symbolPath(DirAliases, id, relative)
}

// EntryPageURL is the overview page of a kind directory. topLevel pages sit at
// the site root; all other pages are one level below it.
func EntryPageURL(dir string, topLevel bool) string {
	return prefix(!topLevel) + dir + "/index" + pageExt
}

// URL resolves id to the page documenting it. Records, enums and aliases are
// consulted in that order; anything else yields "".
func (r *Resolver) URL(id symbols.SymbolID, relative bool) string {
	if _, ok := r.index.Record(id); ok {
		return RecordURL(id, relative)
	}
	if _, ok := r.index.Enum(id); ok {
		return EnumURL(id, relative)
	}
	if _, ok := r.index.Alias(id); ok {
		return AliasURL(id, relative)
	}
	return ""
}

// NamespacePath joins the names of the namespace chain ending at id with
// underscores, outermost first. The root namespace (NoID) yields "".
// The walk stops at the first id missing from the index and is bounded by the
// number of namespaces, so a malformed cyclic chain cannot loop forever.
func (r *Resolver) NamespacePath(id symbols.SymbolID) string {
	var names []string
	for steps := 0; id.IsValid() && steps <= len(r.index.Namespaces); steps++ {
		ns, ok := r.index.Namespace(id)
		if !ok {
			break
		}
		names = append(names, ns.Name)
		id = ns.ParentID
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "_")
}

// GroupURL is the shared page of a freestanding function group. It depends
// only on the enclosing namespace chain and the group name, so overloads merge
// while equally named functions in other namespaces do not.
func (r *Resolver) GroupURL(key symbols.GroupKey, relative bool) string {
	return prefix(relative) + DirFunctions + "/" + r.NamespacePath(key.Namespace) + "-" + groupFileName(key.Name) + pageExt
}

// groupFileName keeps the page of operator/ and operator/= in the functions
// directory. '@' never occurs in a C++ name, so the mapping cannot collide.
func groupFileName(name string) string {
	return strings.ReplaceAll(name, "/", "@")
}

// FunctionURL points at the anchor of a function on the page that renders
// it: the group page for free functions, the parent record page for members.
func (r *Resolver) FunctionURL(id symbols.SymbolID, relative bool) string {
	f, ok := r.index.Function(id)
	if !ok {
		return ""
	}
	if f.IsFreestanding() {
		return r.GroupURL(f.Group, relative) + "#" + f.ID.String()
	}
	if _, ok := r.index.Record(f.ParentID); ok {
		return RecordURL(f.ParentID, relative) + "#" + f.ID.String()
	}
	return ""
}
