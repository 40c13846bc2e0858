// Package ordering holds the deterministic orderings used by every listing
// and the blurb shown next to overview entries.
package ordering

import (
	"cmp"
	"slices"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

// NameLookup returns the display name of id and whether id is known.
type NameLookup func(id symbols.SymbolID) (string, bool)

// SortByName returns the ids ordered byte-wise by name, ascending. The sort is
// stable so equally named symbols keep their input order. Ids the lookup does
// not know are dropped.
func SortByName(ids []symbols.SymbolID, lookup NameLookup) []symbols.SymbolID {
	type entry struct {
		id   symbols.SymbolID
		name string
	}
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		if name, ok := lookup(id); ok {
			entries = append(entries, entry{id: id, name: name})
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.name, b.name)
	})
	out := make([]symbols.SymbolID, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}

// Records returns a NameLookup over the records of ix.
func Records(ix *symbols.Index) NameLookup {
	return func(id symbols.SymbolID) (string, bool) {
		r, ok := ix.Record(id)
		if !ok {
			return "", false
		}
		return r.Name, true
	}
}

// Enums returns a NameLookup over the enums of ix.
func Enums(ix *symbols.Index) NameLookup {
	return func(id symbols.SymbolID) (string, bool) {
		e, ok := ix.Enum(id)
		if !ok {
			return "", false
		}
		return e.Name, true
	}
}

// Aliases returns a NameLookup over the aliases of ix.
func Aliases(ix *symbols.Index) NameLookup {
	return func(id symbols.SymbolID) (string, bool) {
		a, ok := ix.Alias(id)
		if !ok {
			return "", false
		}
		return a.Name, true
	}
}

// Functions returns a NameLookup over the functions of ix.
func Functions(ix *symbols.Index) NameLookup {
	return func(id symbols.SymbolID) (string, bool) {
		f, ok := ix.Function(id)
		if !ok {
			return "", false
		}
		return f.Name, true
	}
}

// Namespaces returns a NameLookup over the namespaces of ix.
func Namespaces(ix *symbols.Index) NameLookup {
	return func(id symbols.SymbolID) (string, bool) {
		n, ok := ix.Namespace(id)
		if !ok {
			return "", false
		}
		return n.Name, true
	}
}

// SortGroups orders function groups with non-detail groups first, then by
// name ascending. Ties keep their input order.
func SortGroups(ix *symbols.Index, keys []symbols.GroupKey) []symbols.GroupKey {
	out := make([]symbols.GroupKey, 0, len(keys))
	for _, k := range keys {
		if _, ok := ix.Group(k); ok {
			out = append(out, k)
		}
	}
	slices.SortStableFunc(out, func(a, b symbols.GroupKey) int {
		da, db := ix.Groups[a].IsDetail, ix.Groups[b].IsDetail
		if da != db {
			if db {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// SortMemberVariables returns a copy of vars stably sorted by access:
// public, protected, private, then unknown.
func SortMemberVariables(vars []symbols.MemberVariable) []symbols.MemberVariable {
	out := slices.Clone(vars)
	slices.SortStableFunc(out, func(a, b symbols.MemberVariable) int {
		return cmp.Compare(a.Access.Rank(), b.Access.Rank())
	})
	return out
}

// Representative returns the member of g used when a whole group needs a
// single symbol, the first member in declaration order that exists.
func Representative(ix *symbols.Index, g *symbols.FunctionGroup) (*symbols.Function, bool) {
	for _, id := range g.Functions {
		if f, ok := ix.Function(id); ok {
			return f, true
		}
	}
	return nil, false
}
