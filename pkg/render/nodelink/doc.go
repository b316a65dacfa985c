// Package nodelink renders view trees as node-link diagrams.
//
// # Overview
//
// Each view becomes a box and each parent-child link an arrow, laid out top
// to bottom by Graphviz. Color swatches are painted with their own color,
// unselected placeholders are dashed, and edges carry the child's role
// (left, right, page 2, selected).
//
// # Usage
//
//	dot := nodelink.ToDOT(doc.Root(), nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// With Detailed set, labels include the inspector attributes of each view.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
