package dataprocessing

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the workbook does not contain the
// configured bid sheet. It is fatal: no records are produced.
var ErrSheetNotFound = errors.New("bid sheet not found in workbook")

// SheetLayout pins where the bid grid sits inside the sheet. Rows and
// columns are 1-based, matching how the workbook template is documented.
type SheetLayout struct {
	SheetName    string
	HeaderRow    int
	DataStartRow int
	StartColumn  int
}

// DefaultSheetLayout returns the layout of the standard bid workbook:
// sheet "Airline Bids", headers on row 11, data from row 12, grid starting
// at column C.
func DefaultSheetLayout() SheetLayout {
	return SheetLayout{
		SheetName:    "Airline Bids",
		HeaderRow:    11,
		DataStartRow: 12,
		StartColumn:  3,
	}
}

// Grid is the raw rectangular cell block extracted from the sheet. Every
// row spans exactly the same columns as Headers; missing cells are empty
// strings.
type Grid struct {
	Headers []string
	Rows    [][]string
}

// ReadGrid opens workbook bytes and extracts the header labels and raw data
// rows according to the layout. A blank header cell is replaced with a
// synthesized col_<n> placeholder rather than failing. Reading stops at the
// sheet's reported extents.
func ReadGrid(source []byte, layout SheetLayout, logger *slog.Logger) (*Grid, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenReader(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(layout.SheetName); idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, layout.SheetName)
	}

	rows, err := f.GetRows(layout.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", layout.SheetName, err)
	}

	// Column extent is the widest row the sheet reports
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	startCol := layout.StartColumn - 1
	headerIdx := layout.HeaderRow - 1
	if headerIdx >= len(rows) || startCol >= maxCols {
		logger.Warn("bid sheet smaller than configured layout",
			slog.String("sheet", layout.SheetName),
			slog.Int("rows", len(rows)),
			slog.Int("cols", maxCols))
		return &Grid{}, nil
	}

	headerRow := rows[headerIdx]
	headers := make([]string, 0, maxCols-startCol)
	for col := startCol; col < maxCols; col++ {
		label := ""
		if col < len(headerRow) {
			label = headerRow[col]
		}
		if label == "" {
			// Placeholder keeps the grid rectangular; 1-based to match
			// spreadsheet column numbering
			label = fmt.Sprintf("col_%d", col+1)
		}
		headers = append(headers, label)
	}

	var dataRows [][]string
	for r := layout.DataStartRow - 1; r < len(rows); r++ {
		row := rows[r]
		cells := make([]string, len(headers))
		for i := range headers {
			col := startCol + i
			if col < len(row) {
				cells[i] = row[col]
			}
		}
		dataRows = append(dataRows, cells)
	}

	logger.Debug("bid grid extracted",
		slog.String("sheet", layout.SheetName),
		slog.Int("columns", len(headers)),
		slog.Int("data_rows", len(dataRows)))

	return &Grid{Headers: headers, Rows: dataRows}, nil
}
