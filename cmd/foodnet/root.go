// Package main provides the entry point for the foodnet CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for foodnet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foodnet",
		Short: "Food image classifier",
		Long: `foodnet trains a convolutional network on directories of labeled food
photos, evaluates saved models, and classifies single images.

Images carry their class in the file name: the leading digit (or leading
"10") is the class id, and the class-name file maps ids to names.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .foodnet.yaml in the current directory)")

	// Add subcommands
	cmd.AddCommand(NewTrainCmd())
	cmd.AddCommand(NewEvaluateCmd())
	cmd.AddCommand(NewPredictCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// loadCommandConfig resolves the --config flag and loads the configuration,
// falling back to defaults when no file is given or found.
func loadCommandConfig(cmd *cobra.Command) (*Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return nil, err
		}
	}

	return LoadConfig(path)
}
