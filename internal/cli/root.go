// Package cli provides the command-line interface for apyxl.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/internal/cli/commands"
	"github.com/chomey/apyxl/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apyxl",
		Short: "apyxl - API definition toolchain front-end",
		Long: `apyxl parses hand-written API definitions (namespaces, DTOs, RPCs,
enums) into a normalized, queryable model and feeds it to code
generators.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./apyxl.yaml)")
	rootCmd.PersistentFlags().StringP("input-dir", "i", "", "Path to the API definition tree")
	rootCmd.PersistentFlags().StringSlice("extensions", nil, "File extensions to collect")
	rootCmd.PersistentFlags().String("generator", "", "Generator backend (dbg)")
	rootCmd.PersistentFlags().String("out", "", "Output path, or - for stdout")
	rootCmd.PersistentFlags().Int("parallelism", 0, "Parse worker bound (0 = NumCPU)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewDocsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
