package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print area of every sheet that defines one.
// A sheet-scoped definition wins over a workbook-scoped one.
func ExtractPrintAreas(f *excelize.File) map[string]models.PrintArea {
	result := make(map[string]models.PrintArea)
	scoped := make(map[string]bool)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, area := parsePrintAreaReference(dn.RefersTo)
		if area == nil {
			continue
		}
		local := dn.Scope != "" && dn.Scope != "Workbook"
		if local {
			sheetName = dn.Scope
		}
		if sheetName == "" || (scoped[sheetName] && !local) {
			continue
		}
		result[sheetName] = *area
		scoped[sheetName] = local
	}

	return result
}

// parsePrintAreaReference parses 'Sheet'!$A$1:$D$10 or Sheet!$A$1:$D$10.
// Only the first range of a multi-range reference is kept.
func parsePrintAreaReference(ref string) (string, *models.PrintArea) {
	part, _, _ := strings.Cut(ref, ",")
	part = strings.TrimSpace(part)

	idx := strings.LastIndex(part, "!")
	if idx < 0 {
		return "", nil
	}
	sheet := strings.Trim(part[:idx], "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")
	return sheet, parseRangeToArea(part[idx+1:])
}

// parseRangeToArea parses a range like $A$1:$D$10.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	from, to, ok := strings.Cut(rangeStr, ":")
	if !ok {
		return nil
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
