// Package pretty lays out C++ declaration strings for display: whitespace is
// normalised and long declarations are wrapped at a column limit, with
// parameters aligned after the opening parenthesis.
package pretty

import (
	"strings"
	"unicode/utf8"
)

// DefaultColumns is the column limit used for declarations on symbol pages.
const DefaultColumns = 70

// Formatter wraps declarations at Columns characters. The zero value uses
// DefaultColumns.
type Formatter struct {
	Columns int
}

// New returns a Formatter with the given column limit.
func New(columns int) Formatter {
	return Formatter{Columns: columns}
}

func (f Formatter) limit() int {
	if f.Columns <= 0 {
		return DefaultColumns
	}
	return f.Columns
}

// Format returns decl laid out for display. The output never contains
// trailing whitespace and is stable for identical input.
func (f Formatter) Format(decl string) string {
	s := Normalize(decl)
	if s == "" {
		return ""
	}

	var lines []string
	if head, rest, ok := splitTemplateClause(s); ok && width(s) > f.limit() {
		lines = append(lines, head)
		s = rest
	}
	lines = append(lines, f.wrapParams(s)...)
	return strings.Join(lines, "\n")
}

// Normalize collapses whitespace runs to single spaces and removes the spaces
// directly inside parentheses and before commas.
func Normalize(decl string) string {
	s := strings.Join(strings.Fields(decl), " ")
	r := strings.NewReplacer("( ", "(", " )", ")", " ,", ",")
	for {
		next := r.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

// splitTemplateClause separates a leading "template <...>" clause.
func splitTemplateClause(s string) (head, rest string, ok bool) {
	if !strings.HasPrefix(s, "template") {
		return "", "", false
	}
	open := strings.IndexByte(s, '<')
	if open < 0 || strings.TrimSpace(s[len("template"):open]) != "" {
		return "", "", false
	}
	angle, paren := 0, 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			paren++
		case ')':
			paren--
		case '<':
			if paren == 0 {
				angle++
			}
		case '>':
			if paren == 0 {
				angle--
				if angle == 0 {
					rest = strings.TrimSpace(s[i+1:])
					if rest == "" {
						return "", "", false
					}
					return s[:i+1], rest, true
				}
			}
		}
	}
	return "", "", false
}

// wrapParams fills parameters greedily onto lines no longer than the limit,
// aligning continuation lines with the first parameter.
func (f Formatter) wrapParams(s string) []string {
	if width(s) <= f.limit() {
		return []string{s}
	}
	open, closeIdx := paramList(s)
	if open < 0 {
		return []string{s}
	}

	prefix := s[:open+1]
	params := splitTopLevel(s[open+1 : closeIdx])
	suffix := s[closeIdx:]
	indent := strings.Repeat(" ", width(prefix))

	var lines []string
	line := prefix
	for i, p := range params {
		piece := p
		if i < len(params)-1 {
			piece += ","
		} else {
			piece += suffix
		}
		switch {
		case i == 0:
			line += piece
		case width(line)+1+width(piece) <= f.limit():
			line += " " + piece
		default:
			lines = append(lines, line)
			line = indent + piece
		}
	}
	if len(params) == 0 {
		line += suffix
	}
	return append(lines, line)
}

// paramList locates the outermost parenthesised group that follows the
// declarator name, skipping groups nested in template argument lists.
func paramList(s string) (open, closeIdx int) {
	angle, depth := 0, 0
	open = -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if depth == 0 && !isOperatorAt(s, i) {
				angle++
			}
		case '>':
			if depth == 0 && angle > 0 && !isOperatorAt(s, i) {
				angle--
			}
		case '(':
			if depth == 0 && strings.HasPrefix(s[i:], "()") && isOperatorAt(s, i) {
				i++
				continue
			}
			if depth == 0 && angle == 0 && open < 0 {
				open = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 && open >= 0 {
				return open, i
			}
		}
	}
	return -1, -1
}

// isOperatorAt reports whether the angle bracket at i belongs to an operator
// name such as operator< or operator<<.
func isOperatorAt(s string, i int) bool {
	j := i
	for j > 0 && (s[j-1] == '<' || s[j-1] == '>' || s[j-1] == '=') {
		j--
	}
	return strings.HasSuffix(strings.TrimRight(s[:j], " "), "operator")
}

func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '<', '[', '{':
			depth++
		case ')', '>', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(out) > 0 {
		out = append(out, last)
	}
	return out
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}
