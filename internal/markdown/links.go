package markdown

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// LinkKind is the Markdown construct a link was written with.
type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

// Link is one link found in a Markdown page.
type Link struct {
	Kind        LinkKind
	Destination string
}

// PageFile returns the generated page an inline link to a Markdown file
// resolves to, without its fragment.
func (l Link) PageFile() (string, bool) {
	if l.Kind != LinkKindInline {
		return "", false
	}
	target, ok := PageLinkTarget(l.Destination)
	if !ok {
		return "", false
	}
	file, _, _ := strings.Cut(target, "#")
	return file, true
}

// PageStem is the file name of path without directory and extension.
func PageStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageFileName is the output file name of a standalone Markdown page.
func PageFileName(stem string) string {
	return "doc" + stem + ".html"
}

// PageLinkTarget maps a relative link to a Markdown file onto the page
// generated from it, keeping any fragment. Absolute URLs and links to other
// file types are reported as not rewritable.
func PageLinkTarget(dest string) (string, bool) {
	if dest == "" || strings.Contains(dest, "://") || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "mailto:") {
		return "", false
	}
	path, fragment, hasFragment := strings.Cut(dest, "#")
	if !strings.EqualFold(filepath.Ext(path), ".md") {
		return "", false
	}
	out := PageFileName(PageStem(path))
	if hasFragment {
		out += "#" + fragment
	}
	return out, true
}

// ExtractLinks parses a Markdown body and lists its link-like constructs.
// It is an analysis API and does not render anything.
func ExtractLinks(body []byte) []Link {
	root := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style links resolve to Link nodes as well.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}
