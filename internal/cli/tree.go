package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/render/outline"
	"github.com/dashdoc/dash/pkg/view"
)

// treeCommand creates the tree command for printing a document outline.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		opts   outline.Options
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the view tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(outline.Entries(doc.Root()))
			}
			return outline.Render(out, doc.Root(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Paths, "paths", "p", false, "prefix each view with its path")
	cmd.Flags().BoolVarP(&opts.Attributes, "attributes", "a", false, "list attributes under each view")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outline as JSON")

	return cmd
}

// inspectCommand creates the inspect command for showing one view.
func (c *CLI) inspectCommand() *cobra.Command {
	var nodePath string

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show the attributes of a view",
		Long: `Show the type and editable attributes of the view at --path (the root by
default). Paths are child indexes separated by slashes: /0/1 is the second
child of the first child of the root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			n, err := doc.Find(nodePath)
			if err != nil {
				return err
			}
			path, _ := view.ParsePath(nodePath)

			fmt.Println(StyleTitle.Render(n.Kind()) + " " + StyleDim.Render(path.String()))
			if p, ok := n.(*view.Placeholder); ok {
				printKeyValue("State", p.State().String())
				if child, ok := p.Selected(); ok {
					printKeyValue("View", child.Kind())
				}
				return nil
			}

			attrs := view.Attributes(n)
			if len(attrs) == 0 {
				printDetail("No attributes")
			}
			for _, a := range attrs {
				printKeyValue(a.Label, a.Value)
			}
			if children := n.Children(); len(children) > 0 {
				printKeyValue("Children", fmt.Sprint(len(children)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&nodePath, "path", "p", "/", "path of the view to inspect")

	return cmd
}
