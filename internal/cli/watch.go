package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/view"
)

// docWatcher reports every change to one document file on disk.
type docWatcher struct {
	watcher *fsnotify.Watcher
	file    string // absolute path of the JSON file
}

// newDocWatcher starts watching the document at path. fsnotify watches the
// enclosing directory so editors that save by renaming are still seen.
func newDocWatcher(path string) (*docWatcher, error) {
	file, err := filepath.Abs(document.ContentsPath(path))
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(file)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}
	return &docWatcher{watcher: w, file: file}, nil
}

// Run calls onChange after every write to the file until ctx is done or
// the watcher fails.
func (w *docWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if abs, _ := filepath.Abs(event.Name); abs != w.file {
				continue
			}
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Revalidate a document whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			w, err := newDocWatcher(path)
			if err != nil {
				return err
			}

			check := func() {
				doc, err := c.readDocument(ctx, path)
				if err != nil {
					printError("%s", err)
					return
				}
				printSuccess("%s is valid", path)
				printDetail("%d views", view.Count(doc.Root()))
			}

			check()
			printInfo("Watching %s (ctrl+c to stop)", w.file)
			return w.Run(ctx, check)
		},
	}
}
