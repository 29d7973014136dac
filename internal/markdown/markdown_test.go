package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContainsText(t *testing.T) {
	r := NewRenderer("dark", 80)

	out := r.Render("# Title\n\nsome body\n")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some body")
}

func TestRenderEmptyStyleDefaults(t *testing.T) {
	r := NewRenderer("", 80)

	out := r.Render("plain text")
	assert.True(t, strings.Contains(out, "plain text"))
}

func TestRenderWithoutInnerPassesThrough(t *testing.T) {
	r := &Renderer{}

	assert.Equal(t, "# raw\n", r.Render("# raw\n"))
}
