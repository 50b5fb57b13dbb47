// Package engine orchestrates the front-end pipeline: load chunks,
// parse each one, merge the results into a single model, and hand the
// finalized model to generators.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chomey/apyxl/pkg/generator"
	"github.com/chomey/apyxl/pkg/input"
	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/output"
	"github.com/chomey/apyxl/pkg/parser"
	"github.com/chomey/apyxl/pkg/view"
)

// Config holds engine configuration.
type Config struct {
	// UserTypes is the ordered list of user-defined type rules; order is
	// significant and preserved exactly.
	UserTypes []parser.UserTypeRule
	// Parallelism bounds the concurrent parse workers; 0 means NumCPU.
	Parallelism int
}

// Engine runs the parse-and-merge pipeline.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an engine. A nil logger defaults to slog.Default().
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Build loads every chunk from src and assembles the finalized model.
//
// Parsing is pure per chunk and runs in parallel; merging is serialized
// against one builder and applies chunks in exactly the order src
// supplied them, so declaration order within a namespace is stable no
// matter how parsing was scheduled. The operation is all-or-nothing: a
// grammar error in any chunk fails the whole build and no model is
// produced.
func (e *Engine) Build(ctx context.Context, src input.Source) (*model.Api, error) {
	chunks, err := src.Chunks()
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks: %w", err)
	}
	e.logger.Debug("loaded chunks", "count", len(chunks))

	parsed := make([][]model.NamespaceChild, len(chunks))
	parseCfg := parser.Config{UserTypes: e.cfg.UserTypes}

	g, _ := errgroup.WithContext(ctx)
	limit := e.cfg.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			children, err := parser.Parse(chunk.Data, parseCfg)
			if err != nil {
				if chunk.RelativePath != "" {
					return fmt.Errorf("%s: %w", chunk.RelativePath, err)
				}
				return err
			}
			parsed[i] = children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := model.NewBuilder()
	for i, chunk := range chunks {
		b.ClearStack()
		path := model.InferPath(chunk.RelativePath)
		b.EnterPath(path)
		b.Merge(parsed[i])
		e.logger.Debug("merged chunk",
			"path", chunk.RelativePath,
			"namespace", model.EntityId(path).String(),
			"declarations", len(parsed[i]))
	}

	api := b.Finalize()
	stats := Collect(api)
	e.logger.Info("model built",
		"chunks", len(chunks),
		"namespaces", stats.Namespaces,
		"dtos", stats.Dtos,
		"rpcs", stats.Rpcs,
		"enums", stats.Enums)
	return api, nil
}

// Generate runs gen over a plain (untransformed) view of api into out.
func (e *Engine) Generate(api *model.Api, gen generator.Generator, out output.Output) error {
	return gen.Generate(view.New(api), out)
}
