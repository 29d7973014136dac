// Package source reads project files and applies content transforms:
// comment, import and docstring removal for plain source files, plus
// cell extraction for notebook documents.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Options controls how file content is transformed before inclusion.
// Each flag keeps the corresponding content when true.
type Options struct {
	Comments       bool
	Imports        bool
	Docstrings     bool
	NotebookOutput bool
}

// DefaultOptions keeps comments, imports and docstrings and excludes
// notebook outputs.
func DefaultOptions() Options {
	return Options{Comments: true, Imports: true, Docstrings: true}
}

// NotebookExt marks files parsed as notebook documents.
const NotebookExt = ".ipynb"

// File reads path and returns its content transformed per opts. Notebook
// files are parsed as JSON documents; everything else is read as text
// with a fallback decoding, so the read itself never fails on encoding
// grounds.
func File(path string, opts Options) (string, error) {
	if filepath.Ext(path) == NotebookExt {
		return Notebook(path, opts)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Transform(path, decodeText(raw), opts)
}

// Transform applies the enabled filters to text. Docstring stripping runs
// first, on the unfiltered text: it needs a clean parse, while the line
// filters work on anything.
func Transform(path, text string, opts Options) (string, error) {
	if !opts.Docstrings {
		stripped, err := StripDocstrings(path, text)
		if err != nil {
			return "", err
		}
		text = stripped
	}
	if !opts.Comments {
		text = dropLines(text, isCommentLine)
	}
	if !opts.Imports {
		text = dropLines(text, isImportLine)
	}
	return text, nil
}

func dropLines(text string, drop func(string) bool) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !drop(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// isImportLine matches by prefix, not word boundary, so lines such as
// "importlib.reload(m)" go too. That matches the established filter
// behavior callers rely on.
func isImportLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "import") || strings.HasPrefix(trimmed, "from")
}

// decodeText interprets raw as UTF-8 when valid and falls back to
// Latin-1 otherwise. Latin-1 maps every byte to a code point, so the
// fallback cannot fail.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
