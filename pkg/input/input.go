// Package input supplies ordered chunks of API definition text to the
// engine. The core owns no file format; these sources are thin
// collaborators in front of it.
package input

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chomey/apyxl/pkg/model"
)

// DefaultExtension is the file extension FileSet collects when none is
// configured.
const DefaultExtension = ".apix"

// Source supplies an ordered collection of chunks. Order is stable and
// caller-determined; the builder merges chunks in exactly this order.
type Source interface {
	Chunks() ([]model.Chunk, error)
}

// Memory is an in-memory Source for embedding and tests.
type Memory struct {
	chunks []model.Chunk
}

// NewMemory creates a Source over literal chunks, kept in the given order.
func NewMemory(chunks ...model.Chunk) *Memory {
	return &Memory{chunks: chunks}
}

// Chunks returns the chunks as provided.
func (m *Memory) Chunks() ([]model.Chunk, error) {
	return m.chunks, nil
}

// FileSet walks a directory tree and yields one chunk per matching
// file, in lexical path order, with slash-separated paths relative to
// the root.
type FileSet struct {
	root string
	exts []string
}

// NewFileSet creates a Source over root. Files matching any of exts are
// collected; with no exts, DefaultExtension is used.
func NewFileSet(root string, exts ...string) *FileSet {
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}
	return &FileSet{root: root, exts: exts}
}

// Chunks walks the tree and reads every matching file.
func (f *FileSet) Chunks() ([]model.Chunk, error) {
	var chunks []model.Chunk
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !f.matches(d.Name()) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			return err
		}
		chunks = append(chunks, model.Chunk{
			RelativePath: filepath.ToSlash(rel),
			Data:         string(data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

func (f *FileSet) matches(name string) bool {
	for _, ext := range f.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
