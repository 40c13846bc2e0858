package ordering

import (
	"strings"
	"testing"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

func TestBlurb(t *testing.T) {
	exact64 := strings.Repeat("a", 64)
	exact65 := strings.Repeat("b", 65)

	cases := []struct {
		name string
		sym  symbols.Symbol
		want string
	}{
		{"empty", symbols.Symbol{}, ""},
		{"doc only", symbols.Symbol{DocComment: "Draws things."}, "Draws things."},
		{"brief wins", symbols.Symbol{DocComment: "Long form.", BriefComment: "Short."}, "Short."},
		{"64 untouched", symbols.Symbol{DocComment: exact64}, exact64},
		{"65 truncated", symbols.Symbol{DocComment: exact65}, strings.Repeat("b", 63) + "..."},
		{"math suppressed", symbols.Symbol{DocComment: "Computes $$x^2$$."}, ""},
		{"math in long text", symbols.Symbol{BriefComment: strings.Repeat("c", 80) + "$$"}, ""},
		{"math in doc ignored when brief set", symbols.Symbol{DocComment: "$$", BriefComment: "ok"}, "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Blurb(&tc.sym); got != tc.want {
				t.Errorf("Blurb = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBlurbCountsRunes(t *testing.T) {
	text := strings.Repeat("é", 65)
	got := Blurb(&symbols.Symbol{DocComment: text})
	if got != strings.Repeat("é", 63)+"..." {
		t.Errorf("Blurb = %q", got)
	}
}

func TestGroupBlurbUsesFirstMemberWithText(t *testing.T) {
	ix := symbols.NewIndex()
	ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: 1, Name: "f"}})
	ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: 2, Name: "f", DocComment: "second"}})
	ix.AddFunction(&symbols.Function{Symbol: symbols.Symbol{ID: 3, Name: "f", DocComment: "third"}})
	g := &symbols.FunctionGroup{Key: symbols.GroupKey{Name: "f"}, Functions: []symbols.SymbolID{1, 2, 3}}
	ix.AddGroup(g)

	if got := GroupBlurb(ix, g); got != "second" {
		t.Errorf("GroupBlurb = %q", got)
	}

	empty := &symbols.FunctionGroup{Key: symbols.GroupKey{Name: "f"}, Functions: []symbols.SymbolID{1}}
	if got := GroupBlurb(ix, empty); got != "" {
		t.Errorf("GroupBlurb without text = %q", got)
	}
}
