package export

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/basile/kvitto/internal/parsing"
)

// XLSX writes the expense-split layout to a local workbook, mirroring what
// the Sheets sink publishes remotely.
type XLSX struct {
	path      string
	sheetName string
}

// NewXLSX creates an XLSX sink writing to path. An empty sheetName falls back
// to DefaultSheetName.
func NewXLSX(path, sheetName string) *XLSX {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &XLSX{path: path, sheetName: sheetName}
}

// Export writes the full layout, including the summary formulas, to a new
// workbook
func (x *XLSX) Export(pairs []parsing.Pair, fields parsing.ScalarFields) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", x.sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for r, row := range buildSheetValues(pairs, fields.PaidTotal) {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("resolving cell name: %w", err)
			}
			if formula, ok := value.(string); ok && strings.HasPrefix(formula, "=") {
				if err := workbook.SetCellFormula(x.sheetName, cell, strings.TrimPrefix(formula, "=")); err != nil {
					return fmt.Errorf("writing formula to %s: %w", cell, err)
				}
				continue
			}
			if err := workbook.SetCellValue(x.sheetName, cell, value); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	if err := workbook.SaveAs(x.path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	slog.Info("Saved items to workbook", "path", x.path, "sheet", x.sheetName, "items", len(pairs))
	return nil
}
