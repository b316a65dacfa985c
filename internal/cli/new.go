package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/view"
)

// newCommand creates the new command for starting a document.
func (c *CLI) newCommand() *cobra.Command {
	var (
		tag   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "new [path]",
		Short: "Create a new document",
		Long: `Create a new document at path. Paths ending in .dash become bundle
directories holding contents.json; anything else is written as a plain JSON
file. The root is an empty placeholder unless --type names a view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(document.ContentsPath(path)); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}

			doc := document.NewWithRegistry(c.registry)
			if tag != "" {
				root, err := c.registry.New(tag)
				if err != nil {
					return err
				}
				doc.SetRoot(root)
			}
			if err := c.writeDocument(cmd.Context(), path, doc); err != nil {
				return err
			}

			printSuccess("Created %s document", StyleHighlight.Render(doc.Root().Kind()))
			printFile(path)
			if doc.Root().Kind() == view.TagPlaceholder {
				printNextStep("Fill it", "dash fill "+path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "type", "t", "", "root view type (SplitView, PageView, WebView, Color)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing document")

	return cmd
}
