// Package render turns Dash view trees into inspection output.
//
// The view content itself is never drawn; a presentation layer does that.
// The subpackages draw the shape of the tree:
//
//   - [outline]: an indented, styled listing for terminals
//   - [nodelink]: a Graphviz diagram, rendered to SVG in process
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg):
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [outline]: github.com/dashdoc/dash/pkg/render/outline
// [nodelink]: github.com/dashdoc/dash/pkg/render/nodelink
package render
