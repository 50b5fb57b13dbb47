package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chomey/apyxl/internal/cli/config"
	"github.com/chomey/apyxl/internal/engine"
	"github.com/chomey/apyxl/pkg/input"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Engine *engine.Engine
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		// PersistentPreRunE did not run (tests invoking RunE directly);
		// fall back to defaults.
		var err error
		cfg, err = config.LoadConfig("", nil)
		if err != nil {
			return nil, err
		}
	}
	logger := config.GetLogger(cmd.Context())

	eng := engine.New(engine.Config{
		UserTypes:   cfg.UserTypeRules(),
		Parallelism: cfg.Parallelism,
	}, logger)

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Engine: eng,
	}, nil
}

// Source returns the chunk source for the configured input tree.
func (c *CommandContext) Source() (input.Source, error) {
	if err := c.Cfg.ValidateDirectories(); err != nil {
		return nil, err
	}
	return input.NewFileSet(c.Cfg.InputDir, c.Cfg.Extensions...), nil
}
