// Package output provides the sinks generators write into.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output receives generated text.
type Output interface {
	Write(s string) error
	Newline() error
}

// Buffer accumulates generated text in memory.
type Buffer struct {
	sb strings.Builder
}

// Write appends s.
func (b *Buffer) Write(s string) error {
	b.sb.WriteString(s)
	return nil
}

// Newline appends a newline.
func (b *Buffer) Newline() error {
	b.sb.WriteByte('\n')
	return nil
}

// String returns everything written so far.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Writer streams generated text to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes s.
func (o *Writer) Write(s string) error {
	_, err := io.WriteString(o.w, s)
	return err
}

// Newline writes a newline.
func (o *Writer) Newline() error {
	_, err := io.WriteString(o.w, "\n")
	return err
}

// StdOut writes generated text to standard output, preceded by an
// optional header line on the first write.
type StdOut struct {
	header string
	wrote  bool
	w      io.Writer
}

// NewStdOut creates a StdOut with the given header, or none if empty.
func NewStdOut(header string) *StdOut {
	return &StdOut{header: header, w: os.Stdout}
}

// Write writes s, emitting the header first if configured.
func (o *StdOut) Write(s string) error {
	if !o.wrote {
		o.wrote = true
		if o.header != "" {
			if _, err := fmt.Fprintln(o.w, o.header); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(o.w, s)
	return err
}

// Newline writes a newline.
func (o *StdOut) Newline() error {
	return o.Write("\n")
}

// File writes generated text to a file created at construction.
type File struct {
	f *os.File
}

// NewFile creates (truncating) the file at path.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &File{f: f}, nil
}

// Write writes s.
func (o *File) Write(s string) error {
	_, err := io.WriteString(o.f, s)
	return err
}

// Newline writes a newline.
func (o *File) Newline() error {
	return o.Write("\n")
}

// Close flushes and closes the file.
func (o *File) Close() error {
	return o.f.Close()
}
