package ordering

import (
	"testing"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

func TestSortByNameIsByteWise(t *testing.T) {
	ix := symbols.NewIndex()
	ix.AddRecord(&symbols.Record{Symbol: symbols.Symbol{ID: 1, Name: "beta"}})
	ix.AddRecord(&symbols.Record{Symbol: symbols.Symbol{ID: 2, Name: "Gamma"}})
	ix.AddRecord(&symbols.Record{Symbol: symbols.Symbol{ID: 3, Name: "Alpha"}})
	ix.AddRecord(&symbols.Record{Symbol: symbols.Symbol{ID: 4, Name: "Alpha"}})

	got := SortByName([]symbols.SymbolID{1, 2, 4, 3, 99}, Records(ix))
	want := []symbols.SymbolID{4, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("SortByName = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortByName = %v, want %v", got, want)
		}
	}
}

func TestSortGroupsDetailLast(t *testing.T) {
	ix := symbols.NewIndex()
	add := func(id symbols.SymbolID, name string, detail bool) symbols.GroupKey {
		ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: id, Name: name, IsDetail: detail}})
		k := symbols.GroupKey{Name: name}
		ix.AddGroup(&symbols.FunctionGroup{Key: k, Functions: []symbols.SymbolID{id}, IsDetail: detail})
		return k
	}
	zeta := add(1, "zeta", false)
	alpha := add(2, "alpha", true)
	mid := add(3, "mid", false)

	got := SortGroups(ix, []symbols.GroupKey{alpha, zeta, mid, {Name: "missing"}})
	want := []symbols.GroupKey{mid, zeta, alpha}
	if len(got) != len(want) {
		t.Fatalf("SortGroups = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortGroups = %v, want %v", got, want)
		}
	}
}

func TestSortMemberVariablesStableByAccess(t *testing.T) {
	vars := []symbols.MemberVariable{
		{Name: "p1", Access: symbols.AccessPrivate},
		{Name: "n1", Access: symbols.AccessNone},
		{Name: "u1", Access: symbols.AccessPublic},
		{Name: "r1", Access: symbols.AccessProtected},
		{Name: "u2", Access: symbols.AccessPublic},
		{Name: "p2", Access: symbols.AccessPrivate},
	}
	got := SortMemberVariables(vars)
	want := []string{"u1", "u2", "r1", "p1", "p2", "n1"}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("position %d = %s, want %s (full: %+v)", i, got[i].Name, w, got)
		}
	}
	if vars[0].Name != "p1" {
		t.Error("input slice must not be reordered")
	}
}

func TestRepresentativeIsFirstDeclared(t *testing.T) {
	ix := symbols.NewIndex()
	ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: 7, Name: "f"}})
	ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: 3, Name: "f"}})
	g := &symbols.FunctionGroup{Key: symbols.GroupKey{Name: "f"}, Functions: []symbols.SymbolID{7, 3}}
	ix.AddGroup(g)

	f, ok := Representative(ix, g)
	if !ok || f.ID != 7 {
		t.Fatalf("Representative = %v, %v", f, ok)
	}
}
