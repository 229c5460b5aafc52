package vslplot

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/logger"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/normalizer"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/parser"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/render"
)

// Build sanitizes layout and normalizes traces into a figure. Inputs are not modified.
func Build(ctx context.Context, traces []models.Trace, layout models.Layout, opts Options) (*models.Figure, error) {
	log := logger.FromContext(ctx)

	clean, err := normalizer.SanitizeLayout(ctx, layout, opts.AxisNames())
	if err != nil {
		return nil, NewStageError("sanitize", "", err)
	}

	n := normalizer.New(normalizer.DefaultRegistry(), opts.NormalizerOptions())
	normalized, err := n.NormalizeAll(ctx, traces)
	if err != nil {
		return nil, NewStageError("normalize", "", err)
	}

	log.Debug("Built figure", "traces", len(normalized), "fields", normalizer.FieldTableVersion)
	return &models.Figure{Layout: clean, Traces: normalized}, nil
}

// BuildFiles loads the data and layout documents and builds a figure from them.
func BuildFiles(ctx context.Context, dataPath, layoutPath string, opts Options) (*models.Figure, error) {
	traces, err := LoadData(dataPath)
	if err != nil {
		return nil, NewStageError("load", dataPath, err)
	}
	layout, err := LoadLayout(layoutPath)
	if err != nil {
		return nil, NewStageError("load", layoutPath, err)
	}
	return Build(ctx, traces, layout, opts)
}

// SaveAs renders fig as a workbook at path.
func SaveAs(ctx context.Context, fig *models.Figure, path string, opts Options) error {
	if err := render.SaveAs(ctx, fig, path, opts.Render); err != nil {
		return NewStageError("render", path, err)
	}
	logger.FromContext(ctx).Info("Wrote figure workbook", "path", path, "traces", len(fig.Traces))
	return nil
}

// Inspect reads a rendered figure workbook back: its charts, print areas and trace data sheets.
func Inspect(ctx context.Context, path string) (*models.RenderedWorkbook, error) {
	log := logger.FromContext(ctx)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewStageError("inspect", path, err)
	}
	defer f.Close()

	sheets := make(map[string]models.RenderedSheet)
	for _, name := range f.GetSheetList() {
		sheet := models.RenderedSheet{}
		if isDataSheet(name) {
			data, err := parser.ExtractSeries(f, name)
			if err != nil {
				log.Warn("Failed to read data sheet", "sheet", name, "error", err)
			} else {
				sheet.Data = data
			}
		}
		sheets[name] = sheet
	}

	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, NewStageError("inspect", path, err)
	}
	for name, list := range charts {
		if sheet, ok := sheets[name]; ok {
			sheet.Charts = list
			sheets[name] = sheet
		}
	}
	for name, area := range parser.ExtractPrintAreas(f) {
		if sheet, ok := sheets[name]; ok {
			sheet.PrintArea = &area
			sheets[name] = sheet
		}
	}

	return &models.RenderedWorkbook{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

// isDataSheet reports whether name follows the render.DataSheetName scheme.
func isDataSheet(name string) bool {
	digits, ok := strings.CutPrefix(name, "Trace")
	if !ok || digits == "" {
		return false
	}
	return !slices.ContainsFunc([]byte(digits), func(c byte) bool { return c < '0' || c > '9' })
}
