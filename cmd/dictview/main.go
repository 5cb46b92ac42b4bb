package main

import (
	"fmt"
	"os"

	"dictview/internal/app"
	"dictview/internal/config"
	"dictview/internal/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(afero.NewOsFs()).Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

// environment is what every subcommand needs after configuration is read.
type environment struct {
	fs     afero.Fs
	config config.Config
	logger logger.Logger
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	env := &environment{fs: fs, config: config.Default(), logger: logger.NewNop()}

	rootCommand := &cobra.Command{
		Use:           "dictview",
		Short:         "Browse JSON word lists in a small borderless window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env.setup(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApplication(env.config, env.fs, env.logger).Run()
		},
	}

	rootCommand.AddCommand(newListCommand(env))
	return rootCommand
}

// setup loads the config file and builds the logger. A broken config is
// reported and replaced by the defaults so the viewer still opens.
func (env *environment) setup(cmd *cobra.Command) {
	cfg, err := loadConfig(env.fs)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "using default configuration: %v\n", err)
		cfg = config.Default()
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v, falling back to info\n", err)
		level = logger.InfoLevel
	}

	env.config = cfg
	env.logger = logger.NewConsoleLogger(level)
}

func loadConfig(fs afero.Fs) (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, &config.InitError{Path: path, Err: err}
	}
	return config.Load(fs, path)
}
