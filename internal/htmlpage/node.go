// Package htmlpage builds HTML documents as golang.org/x/net/html node trees
// and writes them into the output directory, wrapped in the site chrome or as
// bare fragments in minimal mode.
package htmlpage

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is shorthand for an attribute without namespace.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Elem creates an element node.
func Elem(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Tag creates an element holding a single text child.
func Tag(tag, text string, attrs ...html.Attribute) *html.Node {
	return Append(Elem(tag, attrs...), Text(text))
}

// Classed creates an element with the given class attribute.
func Classed(tag, class string, children ...*html.Node) *html.Node {
	return Append(Elem(tag, Attr("class", class)), children...)
}

// Text creates an escaped text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Raw creates a node whose content is written without escaping. It is used
// for markdown output and pre-linked declarations.
func Raw(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: s}
}

// Link creates an anchor with a text label.
func Link(href, label string, attrs ...html.Attribute) *html.Node {
	return Tag("a", label, append([]html.Attribute{Attr("href", href)}, attrs...)...)
}

// Append adds children to parent and returns parent. Nil children are skipped.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// SetAttr sets or replaces an attribute on n.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, Attr(key, val))
}

// Render serialises n and its subtree.
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
