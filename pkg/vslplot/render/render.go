// Package render draws normalized figures as native Excel charts.
package render

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/logger"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Excel's default row height and column width at 96 DPI.
const (
	rowHeightPixels = 20
	colWidthPixels  = 64
)

// Options configures rendering.
type Options struct {
	// ChartWidth is the chart width in pixels when the layout sets none.
	ChartWidth uint
	// ChartHeight is the chart height in pixels when the layout sets none.
	ChartHeight uint
	// FigureSheet names the sheet holding the charts.
	FigureSheet string
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{
		ChartWidth:  640,
		ChartHeight: 400,
		FigureSheet: "Figure",
	}
}

// DataSheetName returns the name of the sheet holding trace i's data (0-based i).
func DataSheetName(i int) string {
	return fmt.Sprintf("Trace%d", i+1)
}

type renderer struct {
	f      *excelize.File
	opts   Options
	layout models.Layout
	log    logger.Logger
	row    int
	// extent of the chart stack, in cells
	lastRow, lastCol int
}

// Render draws fig into a new workbook. The caller must Close the returned file.
func Render(ctx context.Context, fig *models.Figure, opts Options) (*excelize.File, error) {
	opts = withDefaults(opts)
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, opts.FigureSheet); err != nil {
		f.Close()
		return nil, err
	}

	r := &renderer{
		f:      f,
		opts:   opts,
		layout: fig.Layout,
		log:    logger.FromContext(ctx),
		row:    1,
	}
	for i, trace := range fig.Traces {
		if err := r.drawTrace(i, trace); err != nil {
			f.Close()
			return nil, fmt.Errorf("trace %d (%s): %w", i, trace.Type, err)
		}
	}
	if err := r.setPrintArea(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// SaveAs renders fig and writes the workbook to path.
func SaveAs(ctx context.Context, fig *models.Figure, path string, opts Options) error {
	f, err := Render(ctx, fig, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.ChartWidth == 0 {
		opts.ChartWidth = def.ChartWidth
	}
	if opts.ChartHeight == 0 {
		opts.ChartHeight = def.ChartHeight
	}
	if opts.FigureSheet == "" {
		opts.FigureSheet = def.FigureSheet
	}
	return opts
}

func (r *renderer) drawTrace(i int, trace models.NormalizedTrace) error {
	sheet, err := newDataSheet(r.f, DataSheetName(i))
	if err != nil {
		return err
	}

	var chart *excelize.Chart
	switch trace.Type {
	case models.Scatter:
		chart, err = r.scatterChart(sheet, trace)
	case models.Bar:
		chart, err = r.barChart(sheet, trace)
	case models.Pie:
		chart, err = r.pieChart(sheet, trace)
	case models.Histogram:
		chart, err = r.histogramChart(sheet, trace)
	case models.Surface:
		chart, err = r.surfaceChart(sheet, trace)
	case models.Scatter3D:
		chart, err = r.bubbleChart(sheet, trace)
	case models.Heatmap:
		err = r.heatmapGrid(sheet, trace)
	default:
		err = fmt.Errorf("no renderer for trace type %s", trace.Type)
	}
	if err != nil {
		return err
	}
	if chart == nil {
		if trace.Type != models.Heatmap {
			r.log.Warn("Skipping trace without plottable data", "trace", i, "type", trace.Type)
		}
		return nil
	}

	r.applyLayout(chart, trace)
	cell, err := excelize.CoordinatesToCellName(1, r.row)
	if err != nil {
		return err
	}
	if err := r.f.AddChart(r.opts.FigureSheet, cell, chart); err != nil {
		return err
	}
	rows := int(math.Ceil(float64(chart.Dimension.Height) / rowHeightPixels))
	cols := int(math.Ceil(float64(chart.Dimension.Width) / colWidthPixels))
	r.lastRow = r.row + rows
	r.lastCol = max(r.lastCol, cols+1)
	r.row += rows + 2
	return nil
}

// setPrintArea limits printing of the figure sheet to the chart stack.
func (r *renderer) setPrintArea() error {
	if r.lastRow == 0 {
		return nil
	}
	to, err := excelize.CoordinatesToCellName(r.lastCol, r.lastRow, true)
	if err != nil {
		return err
	}
	sheet := "'" + strings.ReplaceAll(r.opts.FigureSheet, "'", "''") + "'"
	return r.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: sheet + "!$A$1:" + to,
		Scope:    r.opts.FigureSheet,
	})
}

// applyLayout maps chart-wide layout settings onto chart.
func (r *renderer) applyLayout(chart *excelize.Chart, trace models.NormalizedTrace) {
	title := text(r.layout["title"])
	if name := trace.Name(); name != "" {
		if title == "" {
			title = name
		} else {
			title += " - " + name
		}
	}
	if title != "" {
		chart.Title = []excelize.RichTextRun{{Text: title}}
	}

	if show, ok := r.layout["showlegend"].(bool); ok && !show {
		chart.Legend = excelize.ChartLegend{Position: "none"}
	}

	chart.Dimension = excelize.ChartDimension{
		Width:  r.dimension("width", r.opts.ChartWidth),
		Height: r.dimension("height", r.opts.ChartHeight),
	}

	if chart.Type == excelize.Pie {
		return
	}
	applyAxis(&chart.XAxis, r.layout.Axis("x"))
	applyAxis(&chart.YAxis, r.layout.Axis("y"))
}

func (r *renderer) dimension(key string, fallback uint) uint {
	if v, ok := toFloat(r.layout[key]); ok && v >= 1 {
		return uint(v)
	}
	return fallback
}

// applyAxis copies an axis title and a fixed [min, max] range. A null range
// leaves the axis on automatic scaling.
func applyAxis(axis *excelize.ChartAxis, settings map[string]any) {
	if settings == nil {
		return
	}
	if title := text(settings["title"]); title != "" {
		axis.Title = []excelize.RichTextRun{{Text: title}}
	}
	bounds, ok := floats(settings["range"])
	if !ok || len(bounds) != 2 {
		return
	}
	lo, hi := bounds[0], bounds[1]
	if lo > hi {
		lo, hi = hi, lo
		axis.ReverseOrder = true
	}
	axis.Minimum = &lo
	axis.Maximum = &hi
}
