package cli

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/view"
)

// validation is the outcome of checking one document.
type validation struct {
	path  string
	nodes int
	size  int
	err   error
}

// validateAll checks paths concurrently and returns one result per path in
// input order. It only fails when ctx is cancelled.
func (c *CLI) validateAll(ctx context.Context, paths []string, onDone func(done int)) ([]validation, error) {
	results := make([]validation, len(paths))
	var finished atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(validateConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.validateOne(ctx, path)
			if onDone != nil {
				onDone(int(finished.Add(1)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *CLI) validateOne(ctx context.Context, path string) validation {
	res := validation{path: path}
	doc, err := c.readDocument(ctx, path)
	if err != nil {
		res.err = err
		return res
	}
	data, err := doc.Save()
	if err != nil {
		res.err = err
		return res
	}
	res.nodes = view.Count(doc.Root())
	res.size = len(data)
	return res
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Check that documents decode",
		Long: `Decode each document and report the first error found in it, naming the
offending key. Files are checked in parallel. The command fails if any
document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(c.Logger)

			spinner := newSpinner(ctx, fmt.Sprintf("Validating %d documents...", len(args)))
			spinner.Start()
			results, err := c.validateAll(ctx, args, func(done int) {
				spinner.SetMessage("Validating %d/%d documents...", done, len(args))
			})
			spinner.Stop()
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.err != nil {
					failed++
					printError("%s", res.err)
					continue
				}
				printSuccess("%s", res.path)
				printStats(res.nodes, res.size)
			}
			prog.done(fmt.Sprintf("Validated %d documents", len(results)))

			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidDocument, "%d of %d documents are invalid", failed, len(results))
			}
			return nil
		},
	}
}

// fmtCommand creates the fmt command for rewriting documents in normal form.
func (c *CLI) fmtCommand() *cobra.Command {
	var (
		check   bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite documents in normal form",
		Long: `Decode and re-encode each document. Aliased view types are replaced with
their canonical names, missing defaults are filled in, keys are sorted and
unknown fields are dropped. With --check nothing is written and the command
fails if any document would change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			indent := c.config.Indent && !compact

			var changed []string
			for _, path := range args {
				before, err := document.ReadContents(path)
				if err != nil {
					return err
				}
				doc := document.NewWithRegistry(c.registry)
				if err := doc.LoadContext(ctx, before); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				after, err := doc.SaveContext(ctx, indent)
				if err != nil {
					return err
				}
				if bytes.Equal(before, after) {
					c.Logger.Debug("already formatted", "path", path)
					continue
				}
				changed = append(changed, path)
				if check {
					printWarning("%s is not formatted", path)
					continue
				}
				if err := document.WriteContents(path, after); err != nil {
					return err
				}
				printSuccess("Formatted %s", path)
			}

			if check && len(changed) > 0 {
				return errors.New(errors.ErrCodeInvalidDocument, "%d documents need formatting", len(changed))
			}
			if len(changed) == 0 {
				printInfo("All %d documents already formatted", len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report unformatted documents without writing")
	cmd.Flags().BoolVar(&compact, "compact", false, "write compact JSON regardless of config")

	return cmd
}
