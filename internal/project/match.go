package project

import "strings"

// MatchAll is the pattern that matches every path.
const MatchAll = "*"

// Matches reports whether path matches any of the patterns.
// The literal "*" matches everything; any other pattern matches by
// substring containment, not by glob. An empty pattern list matches nothing.
func Matches(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == MatchAll {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
