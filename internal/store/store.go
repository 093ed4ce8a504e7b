// Package store reads and writes the plain-text task file.
//
// The format is line-oriented UTF-8, one item per line:
//
//	TODO: <item text>
//	DONE: <item text>
//
// Line order defines list order. Any other line is a fatal parse error; a
// corrupt file must never be silently reinterpreted or partially loaded.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"twodo/internal/model"
)

const (
	todoPrefix = "TODO: "
	donePrefix = "DONE: "

	// ExportFileName is where `e` exports to: a fixed name in the working
	// directory, never derived from the loaded file's path.
	ExportFileName = "TODO"
)

// ParseError reports a task-file line matching neither recognized prefix.
// Line is 1-based.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: unrecognized item line %q (want a %q or %q prefix)",
		e.Path, e.Line, e.Text, strings.TrimSpace(todoPrefix), strings.TrimSpace(donePrefix))
}

// Load reads the task file at path into a board. On a parse error nothing is
// partially applied; the returned board is zero.
func Load(path string) (model.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Board{}, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	var b model.Board
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		switch {
		case strings.HasPrefix(text, todoPrefix):
			b.Todo.Append(strings.TrimPrefix(text, todoPrefix))
		case strings.HasPrefix(text, donePrefix):
			b.Done.Append(strings.TrimPrefix(text, donePrefix))
		default:
			return model.Board{}, &ParseError{Path: path, Line: line, Text: text}
		}
	}
	if err := sc.Err(); err != nil {
		return model.Board{}, fmt.Errorf("read task file: %w", err)
	}
	return b, nil
}

// Save writes the board back to path: all todo lines first, then all done
// lines, preserving each list's order.
func Save(path string, b model.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create task file: %w", err)
	}
	if err := write(f, b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Export writes the board to the fixed ExportFileName in the working
// directory, in the same format Save uses.
func Export(b model.Board) error {
	return Save(ExportFileName, b)
}

func write(f *os.File, b model.Board) error {
	w := bufio.NewWriter(f)
	for _, item := range b.Todo.Items {
		fmt.Fprintf(w, "%s%s\n", todoPrefix, item)
	}
	for _, item := range b.Done.Items {
		fmt.Fprintf(w, "%s%s\n", donePrefix, item)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// IsParseError reports whether err is (or wraps) a task-file format error.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
