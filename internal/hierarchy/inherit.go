// Package hierarchy walks the containment and inheritance relationships of
// the symbol graph. Both walks use explicit stacks so that their depth does
// not depend on the call stack.
package hierarchy

import (
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

// Inherited is an ancestor whose members are surfaced on a descendant's page,
// together with the access of the edge that reached it.
type Inherited struct {
	Record *symbols.Record
	Access symbols.Access
}

// Flatten returns the ancestors of r whose members are shown as inherited.
//
// The walk is depth-first over a literal stack seeded with r's direct bases,
// so the last declared base is visited first. Bases missing from the index and
// privately inherited bases are skipped together with everything above them.
//
// There is no visited set: an ancestor reachable along two paths (diamond
// inheritance) is listed once per path.
func Flatten(ix *symbols.Index, r *symbols.Record) []Inherited {
	if r == nil {
		return nil
	}
	var out []Inherited
	stack := make([]symbols.BaseRecord, 0, len(r.Bases))
	stack = append(stack, r.Bases...)

	for len(stack) > 0 {
		edge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		base, ok := ix.Record(edge.ID)
		if !ok {
			continue
		}
		if edge.Access == symbols.AccessPrivate {
			continue
		}
		out = append(out, Inherited{Record: base, Access: edge.Access})
		stack = append(stack, base.Bases...)
	}
	return out
}
