package source

import (
	"context"
	"errors"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pythonStripper removes bare string-literal statements from module,
// function and class bodies, the positions where docstrings live. The
// surviving source keeps its original formatting; removal splices bytes
// out rather than re-printing the tree.
type pythonStripper struct {
	parser *sitter.Parser
}

func newPythonStripper() *pythonStripper {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &pythonStripper{parser: p}
}

// edit is a byte range to cut from the source, with an optional
// replacement.
type edit struct {
	start, end uint32
	text       string
}

func (s *pythonStripper) Strip(src []byte) ([]byte, error) {
	tree, err := s.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New("invalid syntax")
	}

	var edits []edit
	collectDocstringEdits(root, src, &edits)
	if len(edits) == 0 {
		return src, nil
	}

	// Module-level strings can follow nested definitions, so collection
	// order is not source order.
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	out := make([]byte, 0, len(src))
	var pos uint32
	for _, e := range edits {
		out = append(out, src[pos:e.start]...)
		out = append(out, e.text...)
		pos = e.end
	}
	out = append(out, src[pos:]...)
	return out, nil
}

// collectDocstringEdits walks the tree and records edits for every
// definition body. Only module, function and class bodies are scanned;
// bare strings inside if/for/while/try blocks stay put.
func collectDocstringEdits(node *sitter.Node, src []byte, edits *[]edit) {
	switch node.Type() {
	case "module":
		scanBody(node, src, edits, false)
	case "function_definition", "class_definition":
		if body := node.ChildByFieldName("body"); body != nil {
			scanBody(body, src, edits, true)
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectDocstringEdits(node.NamedChild(i), src, edits)
	}
}

// scanBody records an edit for each docstring statement among body's
// direct children. inDefinition marks function and class bodies, which
// must not be left empty: when every statement in such a body is a
// docstring, the first one becomes "pass" instead of disappearing so the
// result still parses.
func scanBody(body *sitter.Node, src []byte, edits *[]edit, inDefinition bool) {
	var docs []*sitter.Node
	remaining := 0
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch {
		case isDocstringStmt(child, src):
			docs = append(docs, child)
		case child.Type() == "comment":
			// comments are not statements
		default:
			remaining++
		}
	}

	for i, doc := range docs {
		if inDefinition && remaining == 0 && i == 0 {
			*edits = append(*edits, edit{start: doc.StartByte(), end: doc.EndByte(), text: "pass"})
			continue
		}
		start, end := cutRange(src, doc.StartByte(), doc.EndByte())
		*edits = append(*edits, edit{start: start, end: end})
	}
}

// isDocstringStmt reports whether node is a statement consisting solely of
// a plain string literal. Bytes literals and f-strings are real values,
// not docstrings, and are left alone.
func isDocstringStmt(node *sitter.Node, src []byte) bool {
	if node.Type() != "expression_statement" {
		return false
	}
	var expr *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		if expr != nil {
			return false
		}
		expr = child
	}
	if expr == nil {
		return false
	}
	switch expr.Type() {
	case "string":
		return isPlainString(expr, src)
	case "concatenated_string":
		for i := 0; i < int(expr.NamedChildCount()); i++ {
			part := expr.NamedChild(i)
			if part.Type() != "string" || !isPlainString(part, src) {
				return false
			}
		}
		return true
	}
	return false
}

// isPlainString reports whether the string literal carries no bytes or
// format prefix. Raw and unicode prefixes still make plain strings.
func isPlainString(str *sitter.Node, src []byte) bool {
	for i := str.StartByte(); i < str.EndByte(); i++ {
		switch src[i] {
		case '"', '\'':
			return true
		case 'b', 'B', 'f', 'F':
			return false
		}
	}
	return true
}

// cutRange widens a statement's byte range to swallow its whole line when
// the statement stands alone on it, so removal leaves no blank line
// behind. A statement sharing its line keeps the exact range, except that
// a trailing semicolon separator is consumed along with it.
func cutRange(src []byte, start, end uint32) (uint32, uint32) {
	lineStart := start
	for lineStart > 0 && src[lineStart-1] != '\n' {
		c := src[lineStart-1]
		if c != ' ' && c != '\t' {
			return start, end
		}
		lineStart--
	}

	i := end
	for i < uint32(len(src)) {
		switch src[i] {
		case ' ', '\t', '\r':
			i++
		case '\n':
			return lineStart, i + 1
		case ';':
			// keep the indentation, drop the separator
			i++
			for i < uint32(len(src)) && (src[i] == ' ' || src[i] == '\t') {
				i++
			}
			return start, i
		default:
			return start, end
		}
	}
	return lineStart, i
}
