package models

// ChartSeries represents series references of a rendered chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category or X values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y values.
	YRange string `json:"y_range,omitempty"`
	// SizeRange is the range reference for bubble sizes (bubble charts only).
	SizeRange string `json:"size_range,omitempty"`
}

// RenderedChart represents a chart read back from a rendered workbook.
type RenderedChart struct {
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart family (e.g. XYScatter, Bar, Pie, Bubble).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the value axis [min, max] when both bounds are fixed.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Series is the list of series drawn by the chart.
	Series []ChartSeries `json:"series"`
	// Part is the chart part path inside the package (e.g. xl/charts/chart1.xml).
	Part string `json:"part"`
}

// SeriesData is a trace data sheet read back as header -> column values.
type SeriesData struct {
	// Headers lists the column headers in sheet order.
	Headers []string `json:"headers"`
	// Columns maps each header to the values below it.
	Columns map[string][]any `json:"columns"`
}

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// RenderedSheet holds everything read back from one sheet.
type RenderedSheet struct {
	// Charts contains charts anchored on the sheet.
	Charts []RenderedChart `json:"charts,omitempty"`
	// PrintArea is the sheet's print area, set on the figure sheet to cover the chart stack.
	PrintArea *PrintArea `json:"print_area,omitempty"`
	// Data holds the sheet's columns when the sheet is a trace data sheet.
	Data *SeriesData `json:"data,omitempty"`
}

// RenderedWorkbook is the read-back view of a rendered figure workbook.
type RenderedWorkbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its contents.
	Sheets map[string]RenderedSheet `json:"sheets"`
}
