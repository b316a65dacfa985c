// Package cli implements the dash command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/buildinfo"
	"github.com/dashdoc/dash/pkg/document"
	"github.com/dashdoc/dash/pkg/observability"
	"github.com/dashdoc/dash/pkg/view"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dash"

	// validateConcurrency bounds how many files validate checks at once.
	validateConcurrency = 8
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
	config     Config
	registry   *view.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		config:   defaultConfig(),
		registry: view.Default,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dash",
		Short: "Dash edits and serves view-tree dashboards",
		Long: `Dash documents describe a dashboard as a tree of views: splits, paged
carousels, web pages, solid colors and placeholders waiting to be filled.
The CLI creates, validates, inspects and edits documents, renders them as
graphs, and serves them over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default "+defaultConfigHint+")")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.selectCommand())
	root.AddCommand(c.pageCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and routes library hooks to the logger.
func (c *CLI) setup() error {
	path := c.configFile
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return err
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	c.config = cfg
	c.registry = reg

	hooks := &logHooks{logger: c.Logger}
	observability.SetDocumentHooks(hooks)
	observability.SetStoreHooks(hooks)
	c.Logger.Debug("config loaded", "path", path, "store", cfg.Store)
	return nil
}

// =============================================================================
// Document Helpers
// =============================================================================

// readDocument loads the document at path through the configured registry.
func (c *CLI) readDocument(ctx context.Context, path string) (*document.Document, error) {
	data, err := document.ReadContents(path)
	if err != nil {
		return nil, err
	}
	doc := document.NewWithRegistry(c.registry)
	if err := doc.LoadContext(ctx, data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// writeDocument saves doc at path using the configured indentation.
func (c *CLI) writeDocument(ctx context.Context, path string, doc *document.Document) error {
	data, err := doc.SaveContext(ctx, c.config.Indent)
	if err != nil {
		return err
	}
	return document.WriteContents(path, data)
}
