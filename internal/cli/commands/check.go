package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/internal/engine"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the API definitions and report what was found",
		Long: `Parse every definition file under the input tree and assemble the
model without generating anything. A grammar error in any file fails the
whole check and reports the offending position.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	src, err := cmdCtx.Source()
	if err != nil {
		return err
	}

	api, err := cmdCtx.Engine.Build(cmd.Context(), src)
	if err != nil {
		return err
	}

	stats := engine.Collect(api)
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d namespaces, %d dtos, %d rpcs, %d enums\n",
		stats.Namespaces, stats.Dtos, stats.Rpcs, stats.Enums)
	return nil
}
