// Package generator defines the code generator interface and the built
// in debug generator. Real backends consume the view layer so callers
// can filter and rename entities per target without touching the model.
package generator

import (
	"github.com/chomey/apyxl/pkg/output"
	"github.com/chomey/apyxl/pkg/view"
)

// Generator writes some rendition of the model to an output.
type Generator interface {
	Generate(m *view.Model, out output.Output) error
}
