// Package markdown renders prompt text for terminal display.
package markdown

import "github.com/charmbracelet/glamour"

// Renderer renders markdown for the terminal. A renderer whose
// construction failed degrades to returning input unchanged, so display
// never blocks on styling problems.
type Renderer struct {
	inner *glamour.TermRenderer
}

// NewRenderer creates a renderer using the named glamour style. An empty
// style means "dark".
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return &Renderer{}
	}
	return &Renderer{inner: r}
}

// Render returns the rendered markdown, or the input unchanged when
// rendering is unavailable.
func (r *Renderer) Render(text string) string {
	if r.inner == nil {
		return text
	}
	out, err := r.inner.Render(text)
	if err != nil {
		return text
	}
	return out
}
