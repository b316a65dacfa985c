package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/view"
)

// setCommand creates the set command for editing one attribute.
func (c *CLI) setCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [path] [view-path] [key] [value]",
		Short: "Change an attribute of a view",
		Long: `Change an attribute of the view at view-path and save the document.
Keys are the ones listed by dash inspect, for example:

  dash set board.dash /0 splitPosition 0.3
  dash set board.dash /1/0 url https://example.com
  dash set board.dash /1 timeOnEachPage 5`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, nodePath, key, value := args[0], args[1], args[2], args[3]

			doc, err := c.readDocument(cmd.Context(), file)
			if err != nil {
				return err
			}
			n, err := doc.Find(nodePath)
			if err != nil {
				return err
			}
			if err := view.SetAttribute(n, key, value); err != nil {
				return err
			}
			if err := c.writeDocument(cmd.Context(), file, doc); err != nil {
				return err
			}

			printSuccess("Set %s on %s", StyleHighlight.Render(key), n.Kind())
			for _, a := range view.Attributes(n) {
				if a.Key == key {
					printDetail("%s = %s", a.Label, a.Value)
				}
			}
			return nil
		},
	}
	return cmd
}

// selectCommand creates the select command for filling a placeholder.
func (c *CLI) selectCommand() *cobra.Command {
	var clearSlot bool

	cmd := &cobra.Command{
		Use:   "select [path] [view-path] [type]",
		Short: "Fill a placeholder with a new view",
		Long: `Replace the empty placeholder at view-path with the default view of the
given type. With --clear the view at view-path is replaced by an empty
placeholder instead and no type is needed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if clearSlot {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 2 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return fillableTags(c.registry), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			file, nodePath := args[0], args[1]

			doc, err := c.readDocument(cmd.Context(), file)
			if err != nil {
				return err
			}
			if clearSlot {
				old, err := replaceAt(doc, nodePath, view.NewPlaceholder())
				if err != nil {
					return err
				}
				if err := c.writeDocument(cmd.Context(), file, doc); err != nil {
					return err
				}
				printSuccess("Replaced %s at %s with an empty placeholder", old.Kind(), nodePath)
				return nil
			}

			p, err := findPlaceholder(doc, nodePath)
			if err != nil {
				return err
			}

			n, err := p.Select(c.registry, args[2])
			if err != nil {
				return err
			}
			if err := c.writeDocument(cmd.Context(), file, doc); err != nil {
				return err
			}
			printSuccess("Filled %s with %s", nodePath, StyleHighlight.Render(n.Kind()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearSlot, "clear", false, "replace the view with an empty placeholder")

	return cmd
}

// findPlaceholder returns the placeholder at nodePath in doc.
func findPlaceholder(doc *document.Document, nodePath string) (*view.Placeholder, error) {
	n, err := doc.Find(nodePath)
	if err != nil {
		return nil, err
	}
	p, ok := n.(*view.Placeholder)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "view at %s is a %s, not a placeholder", nodePath, n.Kind())
	}
	return p, nil
}

// replaceAt swaps the view at nodePath for n and returns the view it replaced.
func replaceAt(doc *document.Document, nodePath string, n view.Node) (view.Node, error) {
	path, err := view.ParsePath(nodePath)
	if err != nil {
		return nil, err
	}
	old, err := view.Find(doc.Root(), path)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		n.SetEditing(doc.Editing())
		doc.SetRoot(n)
		return old, nil
	}

	parent, err := view.Find(doc.Root(), path[:len(path)-1])
	if err != nil {
		return nil, err
	}
	i := path[len(path)-1]
	switch p := parent.(type) {
	case *view.Split:
		if i == 0 {
			p.SetLeft(n)
		} else {
			p.SetRight(n)
		}
	case *view.Page:
		if _, err := p.Replace(i, n); err != nil {
			return nil, err
		}
	case *view.Placeholder:
		p.Set(n)
	default:
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s cannot hold children", parent.Kind())
	}
	return old, nil
}

// fillableTags lists the canonical tags a placeholder can be filled with.
func fillableTags(r *view.Registry) []string {
	var tags []string
	for _, v := range r.Variants() {
		if v.Tag != view.TagPlaceholder {
			tags = append(tags, v.Tag)
		}
	}
	return tags
}

// describeTags formats tags for help and error output.
func describeTags(tags []string) string {
	return fmt.Sprintf("[%s]", strings.Join(tags, ", "))
}

// pageCommand creates the page command for editing paged views.
func (c *CLI) pageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Add or remove pages of a PageView",
	}

	cmd.AddCommand(c.pageAddCommand())
	cmd.AddCommand(c.pageRemoveCommand())

	return cmd
}

// pageAddCommand creates the "page add" subcommand.
func (c *CLI) pageAddCommand() *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "add [path] [view-path]",
		Short: "Add an empty page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, p, err := c.findPage(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if at < 0 {
				p.Append(view.NewPlaceholder())
				at = p.Len() - 1
			} else if err := p.Insert(at, view.NewPlaceholder()); err != nil {
				return err
			}
			if err := c.writeDocument(cmd.Context(), args[0], doc); err != nil {
				return err
			}
			printSuccess("Added page %d of %d", at+1, p.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", -1, "insert before this index (default: append)")

	return cmd
}

// pageRemoveCommand creates the "page remove" subcommand.
func (c *CLI) pageRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [path] [view-path] [index]",
		Short: "Remove a page",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "invalid page index %q", args[2])
			}
			doc, p, err := c.findPage(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			old, err := p.Remove(i)
			if err != nil {
				return err
			}
			if err := c.writeDocument(cmd.Context(), args[0], doc); err != nil {
				return err
			}
			printSuccess("Removed %s page, %d left", old.Kind(), p.Len())
			return nil
		},
	}
}

func (c *CLI) findPage(cmd *cobra.Command, file, nodePath string) (*document.Document, *view.Page, error) {
	doc, err := c.readDocument(cmd.Context(), file)
	if err != nil {
		return nil, nil, err
	}
	n, err := doc.Find(nodePath)
	if err != nil {
		return nil, nil, err
	}
	p, ok := n.(*view.Page)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "view at %s is a %s, not a %s", nodePath, n.Kind(), view.TagPage)
	}
	return doc, p, nil
}
