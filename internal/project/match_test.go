package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesWildcard(t *testing.T) {
	patterns := []string{MatchAll}

	for _, path := range []string{"", "a", "a/b/c.py", ".hidden", "weird*name"} {
		assert.True(t, Matches(path, patterns), "wildcard should match %q", path)
	}
}

func TestMatchesWildcardAmongOthers(t *testing.T) {
	assert.True(t, Matches("no-overlap", []string{"zzz", "*"}))
}

func TestMatchesSubstring(t *testing.T) {
	assert.True(t, Matches("src/util.py", []string{".py"}))
	assert.True(t, Matches("mypy.py", []string{"py"}))
	assert.True(t, Matches("pytest.ini", []string{"py"}))
	assert.True(t, Matches("a/__pycache__/m.pyc", []string{"__pycache__"}))

	assert.False(t, Matches("src/util.go", []string{".py"}))
	assert.False(t, Matches("readme.md", []string{"test", ".py"}))
}

func TestMatchesIsNotGlob(t *testing.T) {
	// "*.py" is a literal substring, so it never matches a normal path.
	assert.False(t, Matches("src/util.py", []string{"*.py"}))
	assert.True(t, Matches("src/*.py", []string{"*.py"}))
}

func TestMatchesEmptyPatternList(t *testing.T) {
	assert.False(t, Matches("anything", nil))
	assert.False(t, Matches("anything", []string{}))
}

func TestMatchesEmptyPattern(t *testing.T) {
	// The empty string is a substring of every path.
	assert.True(t, Matches("anything", []string{""}))
}
