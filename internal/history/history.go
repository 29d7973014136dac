package history

import (
	"path/filepath"
	"time"
)

// Record is one saved prompt build.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Root      string    `json:"root"`
	Question  string    `json:"question,omitempty"`
	FileCount int       `json:"file_count"`
	Tokens    int       `json:"tokens"`
	Prompt    string    `json:"prompt"`
}

// Title returns a short label for display: the question when present,
// otherwise the base name of the project root.
func (r *Record) Title() string {
	if r.Question != "" {
		return r.Question
	}
	return filepath.Base(r.Root)
}
