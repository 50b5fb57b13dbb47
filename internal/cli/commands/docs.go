package commands

import (
	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/internal/docs"
)

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Serve browsable HTML documentation of the parsed model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocs(cmd)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from config)")
	return cmd
}

func runDocs(cmd *cobra.Command) error {
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

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cmdCtx.Cfg.DocsAddr
	}
	return docs.NewServer(api, cmdCtx.Logger).Serve(addr)
}
