package hierarchy

import (
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	// Label is the kind shown before the name: "namespace", a record keyword,
	// "function", "alias" and so on.
	Label string
	Name  string
	ID    symbols.SymbolID
	Kind  symbols.Kind
	// Current marks the terminal entry, the page being rendered.
	Current bool
}

// Breadcrumbs returns the containment trail of s, root first, ending with s
// itself labelled with label. A symbol without a parent has no trail and the
// result is nil; callers suppress the breadcrumb widget in that case.
//
// Parents are resolved as namespaces first, then records (nested classes).
// The walk stops at the root or at the first parent that is neither.
func Breadcrumbs(ix *symbols.Index, s *symbols.Symbol, label string) []Crumb {
	if s == nil || !s.ParentID.IsValid() {
		return nil
	}

	var stack []Crumb
	parent := s.ParentID
	limit := len(ix.Namespaces) + len(ix.Records)
	for steps := 0; parent.IsValid() && steps <= limit; steps++ {
		if ns, ok := ix.Namespace(parent); ok {
			stack = append(stack, Crumb{Label: "namespace", Name: ns.Name, ID: ns.ID, Kind: symbols.KindNamespace})
			parent = ns.ParentID
			continue
		}
		if rec, ok := ix.Record(parent); ok {
			stack = append(stack, Crumb{Label: rec.Type, Name: rec.Name, ID: rec.ID, Kind: symbols.KindRecord})
			parent = rec.ParentID
			continue
		}
		break
	}

	trail := make([]Crumb, 0, len(stack)+1)
	for len(stack) > 0 {
		trail = append(trail, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return append(trail, Crumb{Label: label, Name: s.Name, ID: s.ID, Current: true})
}
