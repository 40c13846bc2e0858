package symbols

import (
	"strings"
	"testing"
)

const sampleIndex = `{
  "namespaces": [
    {"id": 1, "name": "geo", "records": [10], "functions": [20, 21, 22]}
  ],
  "records": [
    {"id": 10, "name": "Point", "type": "struct", "proto": "struct Point", "parent_id": 1,
     "bases": [{"id": 11, "name": "Base", "access": "protected"}],
     "vars": [{"name": "x", "type": {"name": "double"}, "access": "public"}],
     "methods": [23]}
  ],
  "functions": [
    {"id": 20, "name": "distance", "proto": "double distance(Point a, Point b)", "parent_id": 1, "access": "none"},
    {"id": 21, "name": "distance", "proto": "double distance(Point a)", "parent_id": 1, "is_detail": true},
    {"id": 22, "name": "origin", "proto": "Point origin()", "parent_id": 1, "is_detail": true},
    {"id": 23, "name": "norm", "proto": "double norm()", "parent_id": 10, "is_record_member": true}
  ]
}`

func TestLoadIndexDerivesGroups(t *testing.T) {
	ix, err := LoadIndex(strings.NewReader(sampleIndex))
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}

	if got := len(ix.Groups); got != 2 {
		t.Fatalf("expected 2 groups, got %d", got)
	}
	g, ok := ix.Group(GroupKey{Namespace: 1, Name: "distance"})
	if !ok {
		t.Fatal("distance group missing")
	}
	if len(g.Functions) != 2 || g.Functions[0] != 20 || g.Functions[1] != 21 {
		t.Errorf("unexpected members %v", g.Functions)
	}
	if g.IsDetail {
		t.Error("distance group has a non-detail member and must not be detail")
	}
	origin, _ := ix.Group(GroupKey{Namespace: 1, Name: "origin"})
	if !origin.IsDetail {
		t.Error("origin group has only detail members and must be detail")
	}

	norm, _ := ix.Function(23)
	if norm.IsFreestanding() {
		t.Error("record member must not be grouped")
	}
	dist, _ := ix.Function(20)
	if dist.Group != g.Key {
		t.Errorf("function 20 group = %+v", dist.Group)
	}
	if dist.Access != AccessNone {
		t.Errorf("access none should decode to AccessNone, got %v", dist.Access)
	}
	if norm.Access != AccessNone {
		t.Errorf("absent access field should decode to AccessNone, got %v", norm.Access)
	}
	if rec, _ := ix.Record(10); rec.Vars[0].Access != AccessPublic {
		t.Errorf("var access = %v", rec.Vars[0].Access)
	}

	rec, _ := ix.Record(10)
	if rec.Bases[0].Access != AccessProtected {
		t.Errorf("base access = %v", rec.Bases[0].Access)
	}
}

func TestLoadIndexExplicitGroups(t *testing.T) {
	doc := `{
	  "functions": [
	    {"id": 5, "name": "f", "proto": "void f()"},
	    {"id": 6, "name": "f", "proto": "void f(int)"}
	  ],
	  "function_groups": [
	    {"namespace": 0, "name": "f", "functions": [6, 5, 99]}
	  ]
	}`
	ix, err := LoadIndex(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	g, ok := ix.Group(GroupKey{Name: "f"})
	if !ok {
		t.Fatal("group missing")
	}
	if len(g.Functions) != 2 || g.Functions[0] != 6 {
		t.Errorf("declared member order must be kept and unknown ids dropped, got %v", g.Functions)
	}
}

func TestLoadIndexRejectsZeroID(t *testing.T) {
	_, err := LoadIndex(strings.NewReader(`{"records": [{"name": "X"}]}`))
	if err == nil {
		t.Fatal("expected error for record without id")
	}
}

func TestLookupsTreatZeroAsAbsent(t *testing.T) {
	ix := NewIndex()
	if _, ok := ix.Record(NoID); ok {
		t.Error("NoID must never resolve")
	}
	if k := ix.KindOf(NoID); k != KindUnknown {
		t.Errorf("KindOf(NoID) = %v", k)
	}
	if _, ok := ix.Group(NotGrouped); ok {
		t.Error("NotGrouped must never resolve")
	}
}

func TestKindOfPriority(t *testing.T) {
	ix := NewIndex()
	ix.AddRecord(&Record{Symbol: Symbol{ID: 7, Name: "R"}})
	ix.AddEnum(&Enum{Symbol: Symbol{ID: 8, Name: "E"}})
	ix.AddAlias(&Alias{Symbol: Symbol{ID: 9, Name: "A"}})

	cases := map[SymbolID]Kind{7: KindRecord, 8: KindEnum, 9: KindAlias, 10: KindUnknown}
	for id, want := range cases {
		if got := ix.KindOf(id); got != want {
			t.Errorf("KindOf(%d) = %v, want %v", id, got, want)
		}
	}
}

func TestAccessString(t *testing.T) {
	cases := []struct {
		in   Access
		want string
	}{
		{AccessPublic, "public"},
		{AccessProtected, "protected"},
		{AccessPrivate, "private"},
		{AccessNone, "unknown"},
		{Access(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Access(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
	if AccessPublic.Rank() >= AccessProtected.Rank() || AccessProtected.Rank() >= AccessPrivate.Rank() ||
		AccessPrivate.Rank() >= AccessNone.Rank() || AccessNone.Rank() != Access(42).Rank() {
		t.Error("access must rank public < protected < private < none")
	}
	var zero Access
	if zero != AccessNone {
		t.Error("the zero value must mean unavailable")
	}
}

func TestSymbolIDString(t *testing.T) {
	id := SymbolID(18446744073709551615)
	s := id.String()
	if s != "18446744073709551615" {
		t.Fatalf("String() = %s", s)
	}
	back, err := ParseSymbolID(s)
	if err != nil || back != id {
		t.Fatalf("ParseSymbolID(%s) = %v, %v", s, back, err)
	}
}
