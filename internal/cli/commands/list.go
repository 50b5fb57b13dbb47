package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/internal/engine"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every declared entity with its path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
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

	entities := engine.Entities(api)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Entity"})
	for _, e := range entities {
		t.AppendRow(table.Row{e.Kind, e.Id.String()})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "(%d entities)\n", len(entities))
	return nil
}
