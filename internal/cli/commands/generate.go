package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/pkg/generator"
	"github.com/chomey/apyxl/pkg/output"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Parse the API definitions and run a generator",
		Example: `  # Print the debug rendition to stdout
  apyxl generate

  # Write it to a file
  apyxl generate --out api.dbg.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
}

func runGenerate(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	src, err := cmdCtx.Source()
	if err != nil {
		return err
	}

	gen, err := selectGenerator(cmdCtx.Cfg.Generator)
	if err != nil {
		return err
	}

	api, err := cmdCtx.Engine.Build(cmd.Context(), src)
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.OutputPath == "" || cmdCtx.Cfg.OutputPath == "-" {
		return cmdCtx.Engine.Generate(api, gen, output.NewWriter(cmd.OutOrStdout()))
	}
	out, err := output.NewFile(cmdCtx.Cfg.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := cmdCtx.Engine.Generate(api, gen, out); err != nil {
		return err
	}
	cmdCtx.Logger.Info("generated", "out", cmdCtx.Cfg.OutputPath)
	return nil
}

func selectGenerator(name string) (generator.Generator, error) {
	switch name {
	case "", "dbg":
		return generator.Dbg{}, nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
}
