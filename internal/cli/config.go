package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/dict"
	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/view"
)

// envStore overrides the store setting of the config file.
const envStore = "DASH_STORE"

const defaultConfigHint = "$XDG_CONFIG_HOME/dash/config.toml"

// Config is the contents of config.toml. Every key is optional.
type Config struct {
	// Store is the store URL used by serve. Empty means the default file store.
	Store string `toml:"store"`

	// Indent pretty-prints documents written by the CLI.
	Indent bool `toml:"indent"`

	Defaults DefaultsConfig `toml:"defaults"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig holds the values new views start with when a placeholder
// is filled. Durations are in seconds.
type DefaultsConfig struct {
	URL               string  `toml:"url"`
	TimeOnEachPage    float64 `toml:"time_on_each_page"`
	AnimationDuration float64 `toml:"animation_duration"`
}

// ServerConfig configures dash serve.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	opts := view.DefaultOptions()
	return Config{
		Indent: true,
		Defaults: DefaultsConfig{
			URL:               opts.URL,
			TimeOnEachPage:    opts.TimeOnEachPage.Seconds(),
			AnimationDuration: opts.AnimationDuration.Seconds(),
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// configPath returns the config file location using XDG standard
// (~/.config/dash/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path over the defaults. A missing file is not an error.
// Unknown keys are rejected so typos do not pass silently.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, errors.New(errors.ErrCodeInvalidInput,
				"%s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	if store := os.Getenv(envStore); store != "" {
		cfg.Store = store
	}
	return cfg, nil
}

// Registry returns a view registry building default nodes from the
// [defaults] table.
func (cfg Config) Registry() (*view.Registry, error) {
	if _, err := dict.ParseURL("defaults.url", cfg.Defaults.URL); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config")
	}
	dwell, err := dict.Seconds("defaults.time_on_each_page", cfg.Defaults.TimeOnEachPage)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config")
	}
	anim, err := dict.Seconds("defaults.animation_duration", cfg.Defaults.AnimationDuration)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config")
	}
	return view.NewRegistry(view.Options{
		URL:               cfg.Defaults.URL,
		TimeOnEachPage:    dwell,
		AnimationDuration: anim,
	}), nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the dash configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.config.Store
			if store == "" {
				store = "(default file store)"
			}
			printKeyValue("store", store)
			printKeyValue("indent", fmt.Sprint(c.config.Indent))
			printKeyValue("defaults.url", c.config.Defaults.URL)
			printKeyValue("defaults.time_on_each_page", fmt.Sprint(c.config.Defaults.TimeOnEachPage))
			printKeyValue("defaults.animation_duration", fmt.Sprint(c.config.Defaults.AnimationDuration))
			printKeyValue("server.addr", c.config.Server.Addr)
			return nil
		},
	}

	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile
			if path == "" {
				var err error
				if path, err = configPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
