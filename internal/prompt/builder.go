package prompt

import "strings"

// DefaultMarker is the delimiter wrapping each file snippet.
const DefaultMarker = "```"

const (
	overviewHeader  = "\n# Project Overview\n"
	structureHeader = "\n# Project Structure\n"
	questionHeader  = "\n# Question\n"
)

// Builder accumulates prompt sections in order. It is append-only: sections
// are never edited after being added, and the final trim happens on read.
type Builder struct {
	marker string
	buf    strings.Builder
}

// NewBuilder creates a builder using the given snippet marker.
// An empty marker falls back to DefaultMarker.
func NewBuilder(marker string) *Builder {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Builder{marker: marker}
}

// Marker returns the snippet marker in use.
func (b *Builder) Marker() string {
	return b.marker
}

// AddOverview appends the project overview section. Empty text is skipped.
func (b *Builder) AddOverview(text string) {
	if text == "" {
		return
	}
	b.buf.WriteString(overviewHeader)
	b.buf.WriteString(text)
	b.buf.WriteString("\n\n")
}

// AddStructure appends the project structure section.
func (b *Builder) AddStructure(tree string) {
	b.buf.WriteString(structureHeader)
	b.buf.WriteString(tree)
	b.buf.WriteString("\n\n")
}

// AddFile appends one file snippet: the marker and relative path on the
// opening line, the content, and the marker on the closing line. Content
// containing the marker itself is not escaped.
func (b *Builder) AddFile(relPath, content string) {
	b.buf.WriteString("\n")
	b.buf.WriteString(b.marker)
	b.buf.WriteString(relPath)
	b.buf.WriteString("\n")
	b.buf.WriteString(content)
	b.buf.WriteString("\n")
	b.buf.WriteString(b.marker)
	b.buf.WriteString("\n\n")
}

// AddQuestion appends the trailing question section. Empty text is skipped.
func (b *Builder) AddQuestion(text string) {
	if text == "" {
		return
	}
	b.buf.WriteString(questionHeader)
	b.buf.WriteString(text)
	b.buf.WriteString("\n\n")
}

// AddSection appends a titled section in the same shape as the overview
// and question sections. Empty text is skipped.
func (b *Builder) AddSection(title, text string) {
	if text == "" {
		return
	}
	b.buf.WriteString("\n# ")
	b.buf.WriteString(title)
	b.buf.WriteString("\n")
	b.buf.WriteString(text)
	b.buf.WriteString("\n\n")
}

// Len returns the size in bytes of the accumulated buffer before trimming.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// String finalizes the prompt: the accumulated sections with leading and
// trailing whitespace trimmed. The buffer is not modified, so calling
// String twice yields the same result.
func (b *Builder) String() string {
	return strings.TrimSpace(b.buf.String())
}
