package pretty

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize("void  f( int a ,\n\t int b )")
	if got != "void f(int a, int b)" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name    string
		columns int
		in      string
		want    string
	}{
		{
			name:    "fits",
			columns: 70,
			in:      "int  add( int a,  int b )",
			want:    "int add(int a, int b)",
		},
		{
			name:    "wraps parameters aligned after paren",
			columns: 30,
			in:      "void draw(int x, int y, int width, int height)",
			want: "void draw(int x, int y,\n" +
				"          int width,\n" +
				"          int height)",
		},
		{
			name:    "template clause on its own line",
			columns: 30,
			in:      "template <typename T> T max(T a, T b)",
			want:    "template <typename T>\nT max(T a, T b)",
		},
		{
			name:    "short template stays inline",
			columns: 70,
			in:      "template <typename T> T max(T a, T b)",
			want:    "template <typename T> T max(T a, T b)",
		},
		{
			name:    "call operator",
			columns: 20,
			in:      "bool operator()(int a, int b) const",
			want:    "bool operator()(int a,\n                int b) const",
		},
		{
			name:    "no parameter list",
			columns: 10,
			in:      "class VeryLongRecordName",
			want:    "class VeryLongRecordName",
		},
		{
			name:    "empty",
			columns: 10,
			in:      "  \n ",
			want:    "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.columns).Format(tc.in); got != tc.want {
				t.Errorf("Format =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestFormatLessThanOperator(t *testing.T) {
	got := New(20).Format("bool operator<(const Foo &a, const Foo &b)")
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || lines[0] != "bool operator<(const Foo &a," {
		t.Fatalf("Format = %q", got)
	}
}

func TestZeroValueUsesDefault(t *testing.T) {
	decl := "void f(" + strings.Repeat("int a, ", 5) + "int b)"
	if got := (Formatter{}).Format(decl); strings.Contains(got, "\n") {
		t.Fatalf("unexpected wrap at default width: %q", got)
	}
}
