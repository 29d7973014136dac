// Package clip copies text to the system clipboard.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
