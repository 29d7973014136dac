package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howell-aikit/promptpack/internal/source"
)

func TestWriteInfoAssemblesSections(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "hello.py", "print(1)")

	p := New(root, Options{})
	b := p.NewPrompt()
	require.NoError(t, p.WriteInfo(b, InfoOptions{
		Overview:  "Demo",
		Structure: true,
		Contents:  true,
	}))

	expected := "# Project Overview\nDemo\n\n\n" +
		"# Project Structure\n|   ├── hello.py\n\n\n\n" +
		"```hello.py\nprint(1)\n```"
	assert.Equal(t, expected, b.String())
}

func TestWriteInfoFileSubset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x.py", "x = 1\n")
	writeFile(t, root, "y.py", "y = 2\n")
	writeFile(t, root, "z.py", "z = 3\n")

	p := New(root, Options{})
	b := p.NewPrompt()
	require.NoError(t, p.WriteInfo(b, InfoOptions{
		Contents: true,
		Files:    []string{"z.py", "x.py", "missing.py"},
	}))

	out := b.String()
	assert.Contains(t, out, "```x.py")
	assert.Contains(t, out, "```z.py")
	assert.NotContains(t, out, "```y.py")
	// Inclusion-set order wins over the requested order.
	assert.Less(t, strings.Index(out, "```x.py"), strings.Index(out, "```z.py"))
}

func TestWriteInfoContentsDisabled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "pass\n")

	p := New(root, Options{})
	b := p.NewPrompt()
	require.NoError(t, p.WriteInfo(b, InfoOptions{Overview: "Just the overview"}))

	assert.Equal(t, "# Project Overview\nJust the overview", b.String())
}

func TestWriteInfoStopsOnTransformError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "bad.py", "def f(:\n")

	p := New(root, Options{})
	b := p.NewPrompt()
	err := p.WriteInfo(b, InfoOptions{
		Contents: true,
		Source:   source.Options{Comments: true, Imports: true},
	})

	var parseErr *source.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Path, "bad.py")
}

func TestNewPromptUsesProjectMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "pass")

	p := New(root, Options{Marker: "~~~"})
	b := p.NewPrompt()
	require.NoError(t, p.WriteInfo(b, InfoOptions{Contents: true}))

	assert.Contains(t, b.String(), "~~~a.py\npass\n~~~")
}
