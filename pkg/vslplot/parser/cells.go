package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// ExtractSeries reads a trace data sheet: row 1 holds headers, the cells below
// each header are its values. Empty cells inside a column are kept as "" so
// positions line up; trailing empty cells are dropped.
func ExtractSeries(f *excelize.File, sheetName string) (*models.SeriesData, error) {
	cols, err := f.GetCols(sheetName)
	if err != nil {
		return nil, err
	}

	data := &models.SeriesData{Columns: make(map[string][]any)}
	for colIdx, col := range cols {
		if len(col) == 0 {
			continue
		}
		header := col[0]
		if header == "" {
			// Grid sheets leave A1 empty; fall back to the column letter.
			header, _ = excelize.ColumnNumberToName(colIdx + 1)
		}

		values := make([]any, 0, len(col)-1)
		for _, cellValue := range col[1:] {
			values = append(values, parseValue(cellValue))
		}
		for len(values) > 0 && values[len(values)-1] == "" {
			values = values[:len(values)-1]
		}

		data.Headers = append(data.Headers, header)
		data.Columns[header] = values
	}

	return data, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
