package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/server"
	"github.com/dashdoc/dash/pkg/storage"
)

// serveCommand creates the serve command for the HTTP document API.
func (c *CLI) serveCommand() *cobra.Command {
	var storeURL, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Long: `Serve a document store over HTTP. The store is a directory of bundles by
default; --store (or DASH_STORE, or store in the config file) selects another
backend:

  file:///var/lib/dash   bundles under a directory
  memory://              in-process, lost on exit
  redis://host:6379/0    Redis
  mongodb://host/dash    MongoDB

Documents sent with PUT are validated and stored in normal form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if storeURL == "" {
				storeURL = c.config.Store
			}
			if addr == "" {
				addr = c.config.Server.Addr
			}

			store, err := openStore(ctx, storeURL)
			if err != nil {
				return err
			}
			defer store.Close()

			if fs, ok := store.(*storage.FileStore); ok {
				printInfo("Serving bundles from %s", fs.Dir())
			}
			srv := server.New(store,
				server.WithLogger(c.Logger),
				server.WithRegistry(c.registry),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&storeURL, "store", "", "store URL (default from config)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// openStore opens rawURL, or the default file store when it is empty.
func openStore(ctx context.Context, rawURL string) (storage.Store, error) {
	if rawURL == "" {
		return storage.NewFileStore("")
	}
	return storage.Open(ctx, rawURL)
}
