package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/cache"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/render"
	"github.com/dashdoc/dash/pkg/render/nodelink"
	"github.com/dashdoc/dash/pkg/view"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file (stdout if empty)
	format   string // dot, svg, pdf or png
	detailed bool   // include attributes in node labels
	noCache  bool   // always re-render
}

// graphCommand creates the graph command for drawing a document as a
// node-link diagram.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Draw the view tree as a node-link diagram",
		Long: `Draw the view tree with Graphviz. DOT and SVG need nothing else; PDF and
PNG are converted from SVG with rsvg-convert. When --format is not given it is
taken from the extension of --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && opts.output != "" {
				if ext := strings.TrimPrefix(filepath.Ext(opts.output), "."); ext != "" {
					opts.format = strings.ToLower(ext)
				}
			}

			doc, err := c.readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := c.renderGraph(cmd.Context(), doc.Root(), opts)
			if err != nil {
				return err
			}

			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0644); err != nil {
				return err
			}
			printSuccess("Rendered %s", strings.ToUpper(opts.format))
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show view attributes in the diagram")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) renderGraph(ctx context.Context, root view.Node, opts graphOpts) ([]byte, error) {
	switch opts.format {
	case render.FormatDOT, render.FormatSVG, render.FormatPDF, render.FormatPNG:
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported output format %q", opts.format)
	}

	prog := newProgress(c.Logger)
	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed})
	if opts.format == render.FormatDOT {
		return []byte(dot), nil
	}

	rc := c.newCache(opts.noCache)
	defer rc.Close()
	key := cache.Key("graph", dot, opts.format)
	if data, ok, err := rc.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("graph cache hit", "format", opts.format)
		return data, nil
	}

	spinner := newSpinner(ctx, "Rendering "+strings.ToUpper(opts.format)+"...")
	spinner.Start()
	defer spinner.Stop()

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	data, err := render.Convert(ctx, svg, opts.format)
	if err != nil {
		return nil, err
	}
	if err := rc.Set(ctx, key, data, renderCacheTTL); err != nil {
		c.Logger.Warn("cache render", "err", err)
	}
	prog.done("Rendered " + opts.format)
	return data, nil
}
