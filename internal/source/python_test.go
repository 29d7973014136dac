package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strip(t *testing.T, text string) string {
	t.Helper()
	out, err := StripDocstrings("x.py", text)
	require.NoError(t, err)
	return out
}

func TestStripModuleStrings(t *testing.T) {
	text := `"""Top."""
x = 1
"also removed"
y = 2
`
	assert.Equal(t, "x = 1\ny = 2\n", strip(t, text))
}

func TestStripFunctionAndClassDocstrings(t *testing.T) {
	text := `def f():
    """F doc."""
    return 1

class C:
    """C doc."""

    def method(self):
        """M doc."""
        x = 2
        return x
`
	expected := `def f():
    return 1

class C:

    def method(self):
        x = 2
        return x
`
	assert.Equal(t, expected, strip(t, text))
}

func TestStripEmptyBodyGetsPass(t *testing.T) {
	assert.Equal(t, "def noop():\n    pass\n",
		strip(t, "def noop():\n    \"\"\"Does nothing.\"\"\"\n"))
	assert.Equal(t, "class Empty:\n    pass\n",
		strip(t, "class Empty:\n    \"\"\"Marker class.\"\"\"\n"))
	assert.Equal(t, "def f(): pass\n",
		strip(t, "def f(): \"doc\"\n"))
}

func TestStripAsyncFunction(t *testing.T) {
	text := `async def fetch():
    """Fetch."""
    return await get()
`
	assert.Equal(t, "async def fetch():\n    return await get()\n", strip(t, text))
}

func TestStripDecoratedFunction(t *testing.T) {
	text := `@wraps(f)
def g():
    """G doc."""
    return f()
`
	assert.Equal(t, "@wraps(f)\ndef g():\n    return f()\n", strip(t, text))
}

func TestStripKeepsBytesAndFStrings(t *testing.T) {
	text := `def f():
    f"side {effect}"
    b"bytes"
    "removed"
    return 1
`
	expected := `def f():
    f"side {effect}"
    b"bytes"
    return 1
`
	assert.Equal(t, expected, strip(t, text))
}

func TestStripRawAndUnicodePrefixes(t *testing.T) {
	text := `def f():
    r"""Raw doc."""
    return 1
`
	assert.Equal(t, "def f():\n    return 1\n", strip(t, text))
}

func TestStripKeepsStringsInNestedBlocks(t *testing.T) {
	text := `def f():
    if True:
        "not a docstring"
    return 1
`
	assert.Equal(t, text, strip(t, text))
}

func TestStripConcatenatedString(t *testing.T) {
	text := `def f():
    "one " "two"
    return 1
`
	assert.Equal(t, "def f():\n    return 1\n", strip(t, text))

	mixed := `def g():
    "a" f"{b}"
    return 1
`
	assert.Equal(t, mixed, strip(t, mixed))
}

func TestStripAdjacentModuleStrings(t *testing.T) {
	text := "\"\"\"One.\"\"\"\n\"\"\"Two.\"\"\"\nx = 1\n"
	assert.Equal(t, "x = 1\n", strip(t, text))
}

func TestStripSemicolonSeparatedLine(t *testing.T) {
	assert.Equal(t, "x = 1\n", strip(t, "\"\"\"Doc.\"\"\"; x = 1\n"))
}

func TestStripAtEOFWithoutNewline(t *testing.T) {
	assert.Equal(t, "x = 1\n", strip(t, "x = 1\n\"\"\"End.\"\"\""))
}

func TestStripTwiceStable(t *testing.T) {
	text := `"""Top."""
def f():
    """Doc."""
class C:
    """C."""
    x = 1
`
	once := strip(t, text)
	assert.Equal(t, "def f():\n    pass\nclass C:\n    x = 1\n", once)
	assert.Equal(t, once, strip(t, once))
}

func TestStripInvalidSyntax(t *testing.T) {
	_, err := StripDocstrings("b.py", "def f(:\n")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "b.py", parseErr.Path)
	assert.Equal(t, 0, parseErr.Cell)
	assert.Contains(t, parseErr.Error(), "invalid syntax")
}
