package render

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

func seriesHeader(trace models.NormalizedTrace, fallback string) string {
	if name := trace.Name(); name != "" {
		return name
	}
	return fallback
}

// scatterChart plots y against x (or the point index when x is absent).
func (r *renderer) scatterChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	y, ok := floats(trace.Fields["y"])
	if !ok || len(y) == 0 {
		return nil, nil
	}
	x := cells(trace.Fields["x"])
	if len(x) == 0 {
		x = indexCells(len(y))
	}
	if err := sheet.writeColumn(1, "x", x); err != nil {
		return nil, err
	}
	if err := sheet.writeColumn(2, seriesHeader(trace, "y"), floatCells(y)); err != nil {
		return nil, err
	}

	mode := str(trace.Fields["mode"])
	lines := mode == "" || strings.Contains(mode, "lines")
	markers := mode == "" || strings.Contains(mode, "markers")

	series := excelize.ChartSeries{
		Name:       sheet.ref(2, 1),
		Categories: sheet.columnRange(1, len(x)),
		Values:     sheet.columnRange(2, len(y)),
	}
	line := object(trace.Fields["line"])
	if !lines {
		series.Line.Type = excelize.ChartLineNone
	} else if w, ok := toFloat(line["width"]); ok && w > 0 {
		series.Line.Width = w
	}
	marker := object(trace.Fields["marker"])
	if !markers {
		series.Marker.Symbol = "none"
	} else {
		series.Marker.Symbol = "circle"
		if size, ok := toFloat(marker["size"]); ok && size >= 2 {
			series.Marker.Size = int(size)
		}
		if c := hexColor(marker["color"]); c != "" {
			series.Marker.Fill = solidFill(c)
		}
	}

	return &excelize.Chart{
		Type:   excelize.Scatter,
		Series: []excelize.ChartSeries{series},
	}, nil
}

// barChart plots category x against value y, or the reverse for orientation "h".
func (r *renderer) barChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	chartType := excelize.Col
	catKey, valKey := "x", "y"
	if str(trace.Fields["orientation"]) == "h" {
		chartType = excelize.Bar
		catKey, valKey = "y", "x"
	}
	values, ok := floats(trace.Fields[valKey])
	if !ok || len(values) == 0 {
		return nil, nil
	}
	categories := cells(trace.Fields[catKey])
	if len(categories) == 0 {
		categories = indexCells(len(values))
	}
	series, err := r.categorySeries(sheet, trace, catKey, categories, values)
	if err != nil {
		return nil, err
	}
	if c := hexColor(object(trace.Fields["marker"])["color"]); c != "" {
		series.Fill = solidFill(c)
	}
	return &excelize.Chart{
		Type:   chartType,
		Series: []excelize.ChartSeries{series},
	}, nil
}

// pieChart plots values labelled by labels.
func (r *renderer) pieChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	values, ok := floats(trace.Fields["values"])
	if !ok || len(values) == 0 {
		return nil, nil
	}
	labels := cells(trace.Fields["labels"])
	if len(labels) == 0 {
		labels = indexCells(len(values))
	}
	series, err := r.categorySeries(sheet, trace, "labels", labels, values)
	if err != nil {
		return nil, err
	}
	return &excelize.Chart{
		Type:   excelize.Pie,
		Series: []excelize.ChartSeries{series},
		PlotArea: excelize.ChartPlotArea{
			ShowPercent: true,
		},
	}, nil
}

// histogramChart bins x (or y for horizontal histograms) and plots the counts.
func (r *renderer) histogramChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	chartType, key, nbinsKey := excelize.Col, "x", "nbinsx"
	data, ok := floats(trace.Fields["x"])
	if !ok || len(data) == 0 {
		chartType, key, nbinsKey = excelize.Bar, "y", "nbinsy"
		if data, ok = floats(trace.Fields["y"]); !ok || len(data) == 0 {
			return nil, nil
		}
	}
	labels, counts := binCounts(data, histogramBins(trace.Fields[nbinsKey]))

	labelCells := make([]any, len(labels))
	for i, l := range labels {
		labelCells[i] = l
	}
	series, err := r.categorySeries(sheet, trace, key, labelCells, counts)
	if err != nil {
		return nil, err
	}
	return &excelize.Chart{
		Type:   chartType,
		Series: []excelize.ChartSeries{series},
	}, nil
}

// categorySeries writes categories and values side by side and returns the series over them.
func (r *renderer) categorySeries(sheet *dataSheet, trace models.NormalizedTrace, catHeader string, categories []any, values []float64) (excelize.ChartSeries, error) {
	if err := sheet.writeColumn(1, catHeader, categories); err != nil {
		return excelize.ChartSeries{}, err
	}
	if err := sheet.writeColumn(2, seriesHeader(trace, "value"), floatCells(values)); err != nil {
		return excelize.ChartSeries{}, err
	}
	return excelize.ChartSeries{
		Name:       sheet.ref(2, 1),
		Categories: sheet.columnRange(1, len(categories)),
		Values:     sheet.columnRange(2, len(values)),
	}, nil
}

// bubbleChart draws a 3D scatter as a bubble chart: x, y, and z as bubble size.
func (r *renderer) bubbleChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	y, okY := floats(trace.Fields["y"])
	z, okZ := floats(trace.Fields["z"])
	if !okY || !okZ || len(y) == 0 || len(z) == 0 {
		return nil, nil
	}
	x := cells(trace.Fields["x"])
	if len(x) == 0 {
		x = indexCells(len(y))
	}
	if err := sheet.writeColumn(1, "x", x); err != nil {
		return nil, err
	}
	if err := sheet.writeColumn(2, seriesHeader(trace, "y"), floatCells(y)); err != nil {
		return nil, err
	}
	if err := sheet.writeColumn(3, "z", floatCells(z)); err != nil {
		return nil, err
	}
	return &excelize.Chart{
		Type: excelize.Bubble,
		Series: []excelize.ChartSeries{{
			Name:       sheet.ref(2, 1),
			Categories: sheet.columnRange(1, len(x)),
			Values:     sheet.columnRange(2, len(y)),
			Sizes:      sheet.columnRange(3, len(z)),
		}},
	}, nil
}

// writeGrid lays z out with x across row 1 and y down column A, returning the rows.
func writeGrid(sheet *dataSheet, trace models.NormalizedTrace) ([][]float64, int, error) {
	rows, ok := grid(trace.Fields["z"])
	if !ok {
		return nil, 0, nil
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, 0, nil
	}

	x := cells(trace.Fields["x"])
	if len(x) == 0 {
		x = indexCells(width)
	}
	y := cells(trace.Fields["y"])
	if err := sheet.writeRow(1, 2, x); err != nil {
		return nil, 0, err
	}
	for i, row := range rows {
		var label any = i + 1
		if i < len(y) {
			label = y[i]
		}
		values := append([]any{label}, floatCells(row)...)
		if err := sheet.writeRow(i+2, 1, values); err != nil {
			return nil, 0, err
		}
	}
	return rows, width, nil
}

// surfaceChart draws one surface series per grid row.
func (r *renderer) surfaceChart(sheet *dataSheet, trace models.NormalizedTrace) (*excelize.Chart, error) {
	rows, width, err := writeGrid(sheet, trace)
	if err != nil || rows == nil {
		return nil, err
	}
	series := make([]excelize.ChartSeries, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		series = append(series, excelize.ChartSeries{
			Name:       sheet.ref(1, i+2),
			Categories: sheet.rowRange(1, 2, width),
			Values:     sheet.rowRange(i+2, 2, len(row)),
		})
	}
	return &excelize.Chart{
		Type:   excelize.Surface3D,
		Series: series,
	}, nil
}

// heatmapGrid writes z and shades it with a three-color scale; Excel has no heatmap chart.
func (r *renderer) heatmapGrid(sheet *dataSheet, trace models.NormalizedTrace) error {
	rows, width, err := writeGrid(sheet, trace)
	if err != nil || rows == nil {
		return err
	}
	return sheet.f.SetConditionalFormat(sheet.name, cellRange(2, 2, width+1, len(rows)+1),
		[]excelize.ConditionalFormatOptions{{
			Type:     "3_color_scale",
			Criteria: "=",
			MinType:  "min",
			MidType:  "percentile",
			MidValue: "50",
			MaxType:  "max",
			MinColor: "#440154",
			MidColor: "#21918C",
			MaxColor: "#FDE725",
		}})
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}
