package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Options controls how a Converter renders Markdown.
type Options struct {
	// AllowRawHTML passes HTML embedded in the source through unchanged.
	AllowRawHTML bool
	// RewritePageLinks points relative links to .md files at their doc pages.
	RewritePageLinks bool
}

// Converter renders Markdown (doc comments and standalone pages) into HTML
// fragments. A Converter is safe for concurrent use once constructed.
type Converter struct {
	md   goldmark.Markdown
	opts Options
}

// New builds a Converter with GitHub flavoured Markdown enabled.
func New(opts Options) *Converter {
	rendererOpts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if opts.AllowRawHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}
	return &Converter{md: goldmark.New(rendererOpts...), opts: opts}
}

// ToHTML converts src to an HTML fragment. When the converter was built with
// RewritePageLinks, relative links to .md files are pointed at the generated
// doc pages.
func (c *Converter) ToHTML(src string) (string, error) {
	body := []byte(src)
	root := c.md.Parser().Parse(text.NewReader(body))

	if c.opts.RewritePageLinks {
		_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
			if !entering {
				return gmast.WalkContinue, nil
			}
			if link, ok := n.(*gmast.Link); ok {
				if dest, ok := PageLinkTarget(string(link.Destination)); ok {
					link.Destination = []byte(dest)
				}
			}
			return gmast.WalkContinue, nil
		})
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, body, root); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
