// Package diagram draws inheritance diagrams for record pages. The graph is
// written in DOT and laid out to SVG by Graphviz.
package diagram

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-graphviz"

	"git.home.luguber.info/inful/symdoc/internal/links"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
	"git.home.luguber.info/inful/symdoc/internal/util/sets"
)

// InheritanceDOT returns the DOT source of the base class graph above r.
// Every declared base is drawn, including private and unindexed ones; indexed
// records link to their pages. Shared ancestors appear once.
func InheritanceDOT(ix *symbols.Index, r *symbols.Record) string {
	var buf bytes.Buffer
	buf.WriteString("digraph inheritance {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=11];\n")
	buf.WriteString("  edge [arrowhead=empty, fontname=\"Helvetica\", fontsize=9];\n\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=\"#dbe9fa\"];\n", nodeName(r.ID, r.Name), r.Name)

	visited := sets.New(r.ID)
	queue := []*symbols.Record{r}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, b := range cur.Bases {
			base, indexed := ix.Record(b.ID)
			name := b.Name
			if indexed {
				name = base.Name
			}
			node := nodeName(b.ID, name)
			if !indexed || visited.Insert(b.ID) {
				attrs := []string{fmt.Sprintf("label=%q", name)}
				if indexed {
					attrs = append(attrs, fmt.Sprintf("URL=%q", links.RecordURL(b.ID, true)))
					queue = append(queue, base)
				} else {
					attrs = append(attrs, "style=\"rounded,dashed\"")
				}
				fmt.Fprintf(&buf, "  %q [%s];\n", node, strings.Join(attrs, ", "))
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeName(cur.ID, cur.Name), node, b.Access.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id symbols.SymbolID, name string) string {
	if id.IsValid() {
		return "r" + id.String()
	}
	return "ext:" + name
}

// Renderer lays out DOT graphs. Graphviz runs in one embedded wasm module
// shared by the whole process, so parsing, layout and freeing a graph all
// happen under mu.
type Renderer struct {
	mu sync.Mutex
	gv *graphviz.Graphviz
}

// NewRenderer starts the embedded Graphviz instance.
func NewRenderer(ctx context.Context) (*Renderer, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	return &Renderer{gv: gv}, nil
}

// Close releases the Graphviz instance.
func (r *Renderer) Close() error {
	return r.gv.Close()
}

// SVG lays out dot and returns an <svg> element suitable for inlining into
// an HTML page. The XML prolog and doctype Graphviz emits are removed.
func (r *Renderer) SVG(ctx context.Context, dot string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return inlineSVG(buf.String()), nil
}

func inlineSVG(svg string) string {
	if i := strings.Index(svg, "<svg"); i >= 0 {
		svg = svg[i:]
	}
	return strings.TrimSpace(svg)
}
