package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// dataSheet writes one trace's columns and hands out range references into them.
type dataSheet struct {
	f    *excelize.File
	name string
}

func newDataSheet(f *excelize.File, name string) (*dataSheet, error) {
	if _, err := f.NewSheet(name); err != nil {
		return nil, err
	}
	return &dataSheet{f: f, name: name}, nil
}

// writeColumn writes header in row 1 and values below it, in column col (1-based).
func (d *dataSheet) writeColumn(col int, header string, values []any) error {
	cell, err := excelize.CoordinatesToCellName(col, 1)
	if err != nil {
		return err
	}
	column := make([]any, 0, len(values)+1)
	column = append(column, header)
	column = append(column, values...)
	return d.f.SetSheetCol(d.name, cell, &column)
}

// writeRow writes values into row (1-based) starting at column col.
func (d *dataSheet) writeRow(row, col int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return d.f.SetSheetRow(d.name, cell, &values)
}

// ref returns an absolute reference to a single cell.
func (d *dataSheet) ref(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row, true)
	return fmt.Sprintf("%s!%s", d.name, cell)
}

// columnRange references n values below the header of column col.
func (d *dataSheet) columnRange(col, n int) string {
	return d.area(col, 2, col, n+1)
}

// rowRange references n values of row starting at column col.
func (d *dataSheet) rowRange(row, col, n int) string {
	return d.area(col, row, col+n-1, row)
}

func (d *dataSheet) area(c1, r1, c2, r2 int) string {
	from, _ := excelize.CoordinatesToCellName(c1, r1, true)
	to, _ := excelize.CoordinatesToCellName(c2, r2, true)
	return fmt.Sprintf("%s!%s:%s", d.name, from, to)
}

// cellRange is area without the sheet prefix, as conditional formats expect.
func cellRange(c1, r1, c2, r2 int) string {
	from, _ := excelize.CoordinatesToCellName(c1, r1)
	to, _ := excelize.CoordinatesToCellName(c2, r2)
	return from + ":" + to
}
