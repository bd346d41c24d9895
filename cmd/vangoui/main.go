// Command vangoui previews and publishes the widget gallery.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	config   string
	logLevel string
	noColor  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vangoui",
		Short: "Preview and publish the vangoui widget gallery",
		Long: `vangoui renders a gallery of the checkable button, input and tabs
widgets.

  vangoui serve     live preview with server-side event handling
  vangoui render    write a static snapshot to a file or stdout
  vangoui publish   upload the static snapshot to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor || os.Getenv("NO_COLOR") != "" {
				errors.SetColor(false)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", ".", "Configuration file, or directory holding vangoui.json/.yaml")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored error output (also NO_COLOR)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		serveCmd(flags),
		renderCmd(flags),
		publishCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration named by --config and applies --log-level.
func (f *globalFlags) load() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if ext := filepath.Ext(f.config); ext != "" {
		cfg, err = config.LoadFile(f.config)
	} else {
		cfg, err = config.LoadOrDefault(f.config)
	}
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// logger builds the process logger and installs it as the default.
func logger(cfg *config.Config) *slog.Logger {
	l := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(l)
	return l
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
