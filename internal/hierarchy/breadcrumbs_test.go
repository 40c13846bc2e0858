package hierarchy

import (
	"testing"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

func TestBreadcrumbsRootSymbolHasNone(t *testing.T) {
	ix := symbols.NewIndex()
	r := rec(1, "Free")
	ix.AddRecord(r)
	if got := Breadcrumbs(ix, &r.Symbol, "struct"); got != nil {
		t.Fatalf("expected nil trail, got %+v", got)
	}
}

func TestBreadcrumbsNestedChain(t *testing.T) {
	ix := symbols.NewIndex()
	ix.AddNamespace(&symbols.Namespace{Symbol: symbols.Symbol{ID: 1, Name: "app"}})
	ix.AddNamespace(&symbols.Namespace{Symbol: symbols.Symbol{ID: 2, Name: "ui", ParentID: 1}})
	outer := &symbols.Record{Symbol: symbols.Symbol{ID: 3, Name: "Window", ParentID: 2}, Type: "class"}
	ix.AddRecord(outer)
	inner := &symbols.Enum{Symbol: symbols.Symbol{ID: 4, Name: "State", ParentID: 3}, Type: "enum class"}
	ix.AddEnum(inner)

	trail := Breadcrumbs(ix, &inner.Symbol, inner.Type)
	if len(trail) != 4 {
		t.Fatalf("expected 3 ancestors + terminal, got %d: %+v", len(trail), trail)
	}
	want := []struct {
		label, name string
		kind        symbols.Kind
	}{
		{"namespace", "app", symbols.KindNamespace},
		{"namespace", "ui", symbols.KindNamespace},
		{"class", "Window", symbols.KindRecord},
	}
	for i, w := range want {
		c := trail[i]
		if c.Label != w.label || c.Name != w.name || c.Kind != w.kind || c.Current {
			t.Errorf("crumb %d = %+v, want %+v", i, c, w)
		}
	}
	last := trail[3]
	if !last.Current || last.Label != "enum class" || last.Name != "State" || last.ID != 4 {
		t.Errorf("terminal crumb = %+v", last)
	}
}

func TestBreadcrumbsStopAtUnknownParent(t *testing.T) {
	ix := symbols.NewIndex()
	ix.AddNamespace(&symbols.Namespace{Symbol: symbols.Symbol{ID: 2, Name: "lib", ParentID: 99}})
	f := &symbols.Function{Symbol: symbols.Symbol{ID: 5, Name: "run", ParentID: 2}}

	trail := Breadcrumbs(ix, &f.Symbol, "function")
	if len(trail) != 2 || trail[0].Name != "lib" || !trail[1].Current {
		t.Fatalf("unexpected trail %+v", trail)
	}
}
