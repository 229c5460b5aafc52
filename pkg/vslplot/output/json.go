// Package output serializes figures and rendered workbooks to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// ToJSON serializes v, indenting with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// FigureToJSON emits fig as a Plotly figure: {"layout": {...}, "data": [...]}.
func FigureToJSON(fig *models.Figure, pretty bool) ([]byte, error) {
	if fig.Traces == nil {
		fig = &models.Figure{Layout: fig.Layout, Traces: []models.NormalizedTrace{}}
	}
	if fig.Layout == nil {
		fig = &models.Figure{Layout: models.Layout{}, Traces: fig.Traces}
	}
	return ToJSON(fig, pretty)
}

// WorkbookToJSON serializes an inspected workbook.
func WorkbookToJSON(wb *models.RenderedWorkbook, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}
