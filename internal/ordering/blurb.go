package ordering

import (
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

const (
	blurbLimit  = 64
	blurbKeep   = 63
	ellipsis    = "..."
	displayMath = "$$"
)

// Blurb returns the one-line summary shown next to s in overview lists.
//
// The doc comment is used unless the brief comment is non-empty, in which case
// the brief comment wins. Text longer than 64 characters is cut to 63 plus an
// ellipsis. Text containing display math yields no blurb at all since it
// cannot be laid out on a single line.
func Blurb(s *symbols.Symbol) string {
	text := s.DocComment
	if s.BriefComment != "" {
		text = s.BriefComment
	}
	if text == "" || strings.Contains(text, displayMath) {
		return ""
	}
	return truncate(text)
}

// GroupBlurb is the blurb of the first member of g, in declaration order, that
// has one.
func GroupBlurb(ix *symbols.Index, g *symbols.FunctionGroup) string {
	for _, id := range g.Functions {
		f, ok := ix.Function(id)
		if !ok {
			continue
		}
		if b := Blurb(&f.Symbol); b != "" {
			return b
		}
	}
	return ""
}

// truncate counts characters, not bytes, so multi-byte text is never cut in
// the middle of a rune.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= blurbLimit {
		return text
	}
	return string(runes[:blurbKeep]) + ellipsis
}
