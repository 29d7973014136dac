package prompt

import (
	"strings"
	"unicode/utf8"
)

// EstimateTokens provides a rough estimate of token count for text
// Uses the approximation of ~4 characters per token for English text
func EstimateTokens(text string) int {
	// Count characters (not bytes)
	charCount := utf8.RuneCountInString(text)
	return (charCount + 3) / 4
}

// CountLines counts the number of lines in text
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
