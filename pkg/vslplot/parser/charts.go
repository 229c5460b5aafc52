package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
}

// ExtractCharts reads every chart anchored in the workbook at xlsxPath, keyed by sheet name.
// Charts of a sheet are ordered by chart part.
func ExtractCharts(xlsxPath string) (map[string][]models.RenderedChart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := sheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.RenderedChart)
	for sheetName, sheetPath := range sheets {
		charts, err := sheetCharts(&r.Reader, sheetPath)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			result[sheetName] = charts
		}
	}
	return result, nil
}

// sheetCharts follows sheet -> drawing -> chart relationships.
func sheetCharts(r *zip.Reader, sheetPath string) ([]models.RenderedChart, error) {
	drawings, err := relatedParts(r, sheetPath, "drawing")
	if err != nil {
		return nil, err
	}

	var charts []models.RenderedChart
	for _, drawingPath := range drawings {
		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil {
			return nil, err
		}
		if drawingXML == nil {
			continue
		}
		names := parseDrawingForCharts(drawingXML)

		chartParts, err := relatedParts(r, drawingPath, "chart")
		if err != nil {
			return nil, err
		}
		for rID, chartPath := range chartParts {
			chartXML, err := readZipFile(r, chartPath)
			if err != nil {
				return nil, err
			}
			if chartXML == nil {
				continue
			}
			chart := parseChartXML(chartXML)
			chart.Name = names[rID]
			chart.Part = chartPath
			charts = append(charts, chart)
		}
	}

	sort.Slice(charts, func(i, j int) bool {
		return partNumber(charts[i].Part) < partNumber(charts[j].Part)
	})
	return charts, nil
}

// partNumber extracts N from paths like xl/charts/chartN.xml.
func partNumber(path string) int {
	base := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ".xml")
	digits := strings.TrimLeft(base, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	n, _ := strconv.Atoi(digits)
	return n
}

// parseDrawingForCharts maps chart relationship ids to drawing object names.
func parseDrawingForCharts(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var name string
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "graphicFrame":
			name = ""
		case "cNvPr":
			name = attrValue(se, "name")
		case "chart":
			if rID := attrValue(se, "id"); rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// parseChartXML parses a chart part.
func parseChartXML(data []byte) models.RenderedChart {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	chart := models.RenderedChart{ChartType: "unknown"}

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	if chart.Series == nil {
		chart.Series = []models.ChartSeries{}
	}
	return chart
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.RenderedChart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

// parsePlotArea parses the plot area. The last value axis wins, which is the
// vertical axis for every chart family the renderer emits.
func parsePlotArea(decoder *xml.Decoder, chart *models.RenderedChart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				chart.ChartType = ct
				chart.Series = append(chart.Series, parseChartSeries(decoder)...)
				depth--
			} else if t.Name.Local == "valAx" {
				title, axisRange := parseValueAxis(decoder)
				if title != "" {
					chart.YAxisTitle = title
				}
				if axisRange != nil {
					chart.YAxisRange = axisRange
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type.
func parseChartSeries(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			case "bubbleSize":
				s.SizeRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange returns the formula of a data reference element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis parses value axis element.
func parseValueAxis(decoder *xml.Decoder) (title string, axisRange []float64) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling returns [min, max] when both bounds are fixed.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min", "max":
				v, err := strconv.ParseFloat(attrValue(t, "val"), 64)
				if err != nil {
					continue
				}
				if t.Name.Local == "min" {
					min = &v
				} else {
					max = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		return []float64{*min, *max}
	}
	return nil
}
