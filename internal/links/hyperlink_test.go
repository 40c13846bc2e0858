package links

import (
	"testing"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

func TestBareTypeName(t *testing.T) {
	cases := map[string]string{
		"const Type<int> **":    "Type",
		"std::vector<int> &":    "std::vector",
		"volatile struct Foo *": "Foo",
		"int (*)(int)":          "int",
		"char[16]":              "char",
		"ns::Widget":            "ns::Widget",
		"const std::string &":   "std::string",
		"union U":               "U",
	}
	for in, want := range cases {
		if got := BareTypeName(in); got != want {
			t.Errorf("BareTypeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTypeHTML(t *testing.T) {
	r := NewResolver(fixtureIndex())

	indexed := r.TypeHTML(symbols.TypeRef{Name: "const Widget &", ID: 10}, "const Widget &")
	if indexed != `const <a href="../records/10.html">Widget</a> &amp;` {
		t.Errorf("indexed = %s", indexed)
	}

	std := r.TypeHTML(symbols.TypeRef{Name: "std::vector<int>"}, "std::vector<int>")
	want := `<a href="https://en.cppreference.com/w/cpp/container/vector">std::vector</a>&lt;int&gt;`
	if std != want {
		t.Errorf("std = %s", std)
	}

	plain := r.TypeHTML(symbols.TypeRef{Name: "thirdparty::Thing<T>"}, "thirdparty::Thing<T>")
	if plain != "thirdparty::Thing&lt;T&gt;" {
		t.Errorf("unresolved = %s", plain)
	}

	dangling := r.TypeHTML(symbols.TypeRef{Name: "Gone", ID: 4242}, "Gone")
	if dangling != "Gone" {
		t.Errorf("unresolvable id should render plain, got %s", dangling)
	}
}

func TestProtoHTMLLinksInOrder(t *testing.T) {
	r := NewResolver(fixtureIndex())
	f := &symbols.Function{
		Symbol:     symbols.Symbol{ID: 30, Name: "blend"},
		ReturnType: symbols.TypeRef{Name: "Widget", ID: 10},
		Params: []symbols.FunctionParam{
			{Name: "a", Type: symbols.TypeRef{Name: "const Widget &", ID: 10}},
			{Name: "n", Type: symbols.TypeRef{Name: "std::size_t"}},
		},
	}
	got := r.ProtoHTML("Widget blend(const Widget &a, std::size_t n)", f)
	want := `<a href="../records/10.html">Widget</a> blend(const <a href="../records/10.html">Widget</a> &amp;a, ` +
		`<a href="https://en.cppreference.com/w/cpp/types/size_t">std::size_t</a> n)`
	if got != want {
		t.Errorf("ProtoHTML:\n got %s\nwant %s", got, want)
	}
}

func TestExternalURLRequiresPrefix(t *testing.T) {
	if _, ok := ExternalURL("vector"); ok {
		t.Error("names without std:: must not resolve")
	}
	if _, ok := ExternalURL("std::not_a_type"); ok {
		t.Error("unknown std names must not resolve")
	}
}
