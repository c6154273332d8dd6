package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wen911119/preact/internal/config"
	"github.com/wen911119/preact/internal/errors"
	"github.com/wen911119/preact/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "preact",
		Short: "Build virtual DOM trees from JSON and YAML documents",
		Long: `preact turns element documents into normalized virtual DOM trees.

Children are flattened, booleans and nulls are dropped, numbers are
printed in canonical form and adjacent text is merged, exactly like
calls to vdom.H from Go.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: preact.json or preact.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config)")

	rootCmd.AddCommand(
		buildCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// load reads the configuration, applies flag overrides and builds the
// logger. Logs go to stderr so stdout only carries documents.
func (o *rootOptions) load(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, nil, err
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, errors.New("E101").Wrap(err)
	}
	logger, err := logging.New(level, cfg.Log.Format, stderr)
	if err != nil {
		return nil, nil, errors.New("E102").Wrap(err)
	}
	return cfg, logger, nil
}
