package prompt

import (
	"fmt"
	"io"

	"github.com/UnknownOlympus/compass/internal/models"
)

// Render prints the result, one "caption: value" line per entry.
func Render(w io.Writer, result models.Result) error {
	if _, err := fmt.Fprintln(w, "\nThe result of calculation:"); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	for _, entry := range result.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", entry.Caption, entry.Value); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
