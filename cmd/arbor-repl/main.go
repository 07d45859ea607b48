// arbor-repl is an interactive shell for building and inspecting arbor trees.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
	logLevel   string

	rootCmd = &cobra.Command{
		Use:          "arbor-repl",
		Short:        "Interactive shell for building and inspecting trees",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runREPL,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath(),
		"Path to the YAML config file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"Disable styled output even on a terminal")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); overrides the config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noColor {
		cfg.Color = false
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "path", configPath, "indent", cfg.Indent, "color", cfg.Color)

	out := cmd.OutOrStdout()
	repl := newREPL(cfg, out, logger, newStyles(colorEnabled(out, cfg.Color)))
	repl.Run(cmd.InOrStdin())
	return nil
}
