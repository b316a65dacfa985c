package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dashdoc/dash/pkg/view"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's inspector attributes to its label.
	// When false, only the node kind is shown.
	Detailed bool
}

// ToDOT converts a view tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Color nodes are filled with their own color. Unselected placeholders are
// drawn dashed and grey. Edges are labelled with the child's role: left and
// right for splits, the page number for pages.
func ToDOT(root view.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=18];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	view.Walk(root, func(n view.Node, path view.Path, _ int) bool {
		id := nodeID(path)
		label := fmtLabel(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(n, label), ", "))
		for i := range n.Children() {
			child := nodeID(path.Child(i))
			if role := edgeRole(n, i); role != "" {
				edges = append(edges, fmt.Sprintf("  %q -> %q [label=%q];\n", id, child, role))
			} else {
				edges = append(edges, fmt.Sprintf("  %q -> %q;\n", id, child))
			}
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID returns a DOT identifier unique within the tree.
func nodeID(path view.Path) string {
	if len(path) == 0 {
		return "root"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return "n" + strings.Join(parts, "_")
}

func edgeRole(parent view.Node, i int) string {
	switch parent.(type) {
	case *view.Split:
		if i == 0 {
			return "left"
		}
		return "right"
	case *view.Page:
		return fmt.Sprintf("page %d", i+1)
	case *view.Placeholder:
		return "selected"
	}
	return ""
}

func fmtLabel(n view.Node, detailed bool) string {
	if !detailed {
		return n.Kind()
	}
	parts := []string{n.Kind()}
	if s, ok := n.(*view.Split); ok {
		orientation := "horizontal"
		if s.Vertical() {
			orientation = "vertical"
		}
		parts = append(parts, orientation)
	}
	for _, a := range view.Attributes(n) {
		parts = append(parts, fmt.Sprintf("%s: %s", a.Label, a.Value))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n view.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch v := n.(type) {
	case *view.Color:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", v.Hex()), fmt.Sprintf("fontcolor=%q", textColor(v)))
	case *view.Placeholder:
		if v.State() == view.Unselected {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
		}
	}
	return attrs
}

// textColor picks black or white, whichever reads better on the swatch.
func textColor(c *view.Color) string {
	l, _, _ := c.Color().Clamped().Lab()
	if l < 0.55 {
		return "white"
	}
	return "black"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.Convert].
//
// [render.Convert]: github.com/dashdoc/dash/pkg/render#Convert
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so the diagram scales from
// a zero origin at its natural size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
