package source

import (
	"fmt"
	"path/filepath"
)

// Stripper removes docstring statements from source text of one language.
// Strip returns the rewritten source, or an error when the input does not
// parse.
type Stripper interface {
	Strip(src []byte) ([]byte, error)
}

// Notebook cells hold Python code, so the notebook extension shares the
// Python stripper.
var strippers = map[string]Stripper{
	".py":       newPythonStripper(),
	NotebookExt: newPythonStripper(),
}

func stripperFor(path string) (Stripper, bool) {
	s, ok := strippers[filepath.Ext(path)]
	return s, ok
}

// StripDocstrings removes docstrings from text using the stripper registered
// for path's extension. Files with no registered stripper fail with an
// UnsupportedLanguageError; files that do not parse fail with a ParseError.
func StripDocstrings(path, text string) (string, error) {
	s, ok := stripperFor(path)
	if !ok {
		return "", &UnsupportedLanguageError{Path: path}
	}
	out, err := s.Strip([]byte(text))
	if err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	return string(out), nil
}

// ParseError reports source that could not be parsed for docstring
// stripping, or a notebook document that could not be decoded. Cell is the
// 1-based notebook cell number, or 0 when the whole file is at fault.
type ParseError struct {
	Path string
	Cell int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Cell > 0 {
		return fmt.Sprintf("failed to parse %s: cell %d: %v", e.Path, e.Cell, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedLanguageError reports a docstring-strip request for a file type
// with no registered stripper.
type UnsupportedLanguageError struct {
	Path string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("cannot strip docstrings from %s: unsupported language", e.Path)
}
