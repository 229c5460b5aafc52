package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

func TestFigureToJSON(t *testing.T) {
	t.Run("Should emit a Plotly figure", func(t *testing.T) {
		fig := &models.Figure{
			Layout: models.Layout{"xaxis": map[string]any{"range": nil}},
			Traces: []models.NormalizedTrace{
				{Type: models.Bar, Fields: map[string]any{"x": []any{"a"}, "y": []any{1.0}}},
			},
		}

		data, err := FigureToJSON(fig, false)

		require.NoError(t, err)
		assert.JSONEq(t, `{"layout":{"xaxis":{"range":null}},"data":[{"type":"bar","x":["a"],"y":[1]}]}`, string(data))
	})

	t.Run("Should emit empty collections instead of null", func(t *testing.T) {
		data, err := FigureToJSON(&models.Figure{}, false)

		require.NoError(t, err)
		assert.JSONEq(t, `{"layout":{},"data":[]}`, string(data))
	})

	t.Run("Should indent when pretty", func(t *testing.T) {
		data, err := FigureToJSON(&models.Figure{}, true)

		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "\n  "))
	})

	t.Run("Should fail on an unknown trace type", func(t *testing.T) {
		_, err := FigureToJSON(&models.Figure{Traces: []models.NormalizedTrace{{Type: 42}}}, false)

		assert.Error(t, err)
	})
}

func TestWorkbookToJSON(t *testing.T) {
	wb := &models.RenderedWorkbook{
		BookName: "figure.xlsx",
		Sheets: map[string]models.RenderedSheet{
			"Figure": {Charts: []models.RenderedChart{{Name: "Chart 1", ChartType: "Pie", Series: []models.ChartSeries{}, Part: "xl/charts/chart1.xml"}}},
		},
	}

	data, err := WorkbookToJSON(wb, false)

	require.NoError(t, err)
	assert.JSONEq(t, `{"book_name":"figure.xlsx","sheets":{"Figure":{"charts":[{"name":"Chart 1","chart_type":"Pie","series":[],"part":"xl/charts/chart1.xml"}]}}}`, string(data))
}
