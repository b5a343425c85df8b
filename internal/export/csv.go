package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/basile/kvitto/internal/parsing"
)

// CSV writes pairs as a two-column flat file
type CSV struct {
	path string
}

// NewCSV creates a CSV sink writing to path
func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

// Export writes the header row and one row per pair, in order
func (c *CSV) Export(pairs []parsing.Pair, _ parsing.ScalarFields) error {
	file, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Item", "Price"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, pair := range pairs {
		if err := writer.Write([]string{pair.Item, pair.Price}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	slog.Info("Saved items to CSV", "path", c.path, "items", len(pairs))
	return nil
}
