package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

type notebookCell struct {
	CellType string           `json:"cell_type"`
	Source   []string         `json:"source"`
	Outputs  []notebookOutput `json:"outputs"`
}

// notebookOutput holds the two output shapes that carry text: stream
// outputs with a text key, and rich outputs with a MIME-type data map.
// Other data values (images and the like) stay undecoded.
type notebookOutput struct {
	Text []string                   `json:"text"`
	Data map[string]json.RawMessage `json:"data"`
}

// Notebook reads a notebook document and returns the processed code of its
// code cells, one per line group, with each cell's output text appended
// when opts.NotebookOutput is set. Markdown and raw cells are ignored.
func Notebook(path string, opts Options) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return "", &ParseError{Path: path, Err: errors.New("invalid UTF-8")}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	rawCells, ok := doc["cells"]
	if !ok {
		return "", &ParseError{Path: path, Err: errors.New("missing cells")}
	}
	var cells []notebookCell
	if err := json.Unmarshal(rawCells, &cells); err != nil {
		return "", &ParseError{Path: path, Err: err}
	}

	var sb strings.Builder
	for i, cell := range cells {
		if cell.CellType != "code" {
			continue
		}
		code, err := transformCell(path, i+1, strings.Join(cell.Source, ""), opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(code)
		sb.WriteString("\n")
		if !opts.NotebookOutput {
			continue
		}
		for _, out := range cell.Outputs {
			text, ok, err := outputText(path, i+1, out)
			if err != nil {
				return "", err
			}
			if ok {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}

// transformCell applies the same filter sequence as Transform to one
// cell's code, wrapping parse failures with the cell's 1-based position.
func transformCell(path string, cell int, code string, opts Options) (string, error) {
	if !opts.Docstrings {
		s, ok := stripperFor(path)
		if !ok {
			return "", &UnsupportedLanguageError{Path: path}
		}
		stripped, err := s.Strip([]byte(code))
		if err != nil {
			return "", &ParseError{Path: path, Cell: cell, Err: err}
		}
		code = string(stripped)
	}
	if !opts.Comments {
		code = dropLines(code, isCommentLine)
	}
	if !opts.Imports {
		code = dropLines(code, isImportLine)
	}
	return code, nil
}

// outputText extracts the displayable text of one cell output. A present
// text key wins, even when empty; otherwise the data map's text/plain
// entry is used; anything else yields no text.
func outputText(path string, cell int, out notebookOutput) (string, bool, error) {
	if out.Text != nil {
		return strings.Join(out.Text, ""), true, nil
	}
	raw, ok := out.Data["text/plain"]
	if !ok {
		return "", false, nil
	}
	var frags []string
	if err := json.Unmarshal(raw, &frags); err != nil {
		return "", false, &ParseError{Path: path, Cell: cell, Err: err}
	}
	return strings.Join(frags, ""), true, nil
}
