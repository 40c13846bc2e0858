package links

import (
	"html"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

func anchor(href, text string) string {
	return `<a href="` + href + `">` + text + `</a>`
}

// replaceFirst replaces the first occurrence of old in s at or after from and
// returns the new string and the offset just past the replacement. When old is
// not found, s and from are returned unchanged.
func replaceFirst(s, old, replacement string, from int) (string, int) {
	if old == "" || from > len(s) {
		return s, from
	}
	i := strings.Index(s[from:], old)
	if i < 0 {
		return s, from
	}
	i += from
	return s[:i] + replacement + s[i+len(old):], i + len(replacement)
}

// TypeHTML renders display, the possibly formatted spelling of t, as escaped
// HTML in which the bare type name links to its page: an indexed symbol's
// page, or the external documentation of a known standard library type.
// Anything else is returned as escaped text.
func (r *Resolver) TypeHTML(t symbols.TypeRef, display string) string {
	bare := BareTypeName(t.Name)
	out := html.EscapeString(display)
	escapedBare := html.EscapeString(bare)

	if t.ID.IsValid() {
		if target := r.URL(t.ID, true); target != "" {
			out, _ = replaceFirst(out, escapedBare, anchor(target, escapedBare), 0)
		}
		return out
	}
	if ext, ok := ExternalURL(bare); ok {
		out, _ = replaceFirst(out, escapedBare, anchor(ext, escapedBare), 0)
	}
	return out
}

// ProtoHTML escapes a (formatted) function declaration and links the return
// type and the parameter types in order of appearance. Each replacement
// starts searching after the previous one so that repeated type names link
// their own occurrence.
func (r *Resolver) ProtoHTML(proto string, f *symbols.Function) string {
	out := html.EscapeString(proto)
	pos := 0

	link := func(t symbols.TypeRef) {
		bare := html.EscapeString(BareTypeName(t.Name))
		if bare == "" {
			return
		}
		if t.ID.IsValid() {
			if target := r.URL(t.ID, true); target != "" {
				out, pos = replaceFirst(out, bare, anchor(target, bare), pos)
			}
		}
		if ext, ok := ExternalURL(BareTypeName(t.Name)); ok {
			out, pos = replaceFirst(out, bare, anchor(ext, bare), pos)
		}
	}

	link(f.ReturnType)
	for _, p := range f.Params {
		link(p.Type)
	}
	return out
}
