package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

func decodeLayout(t *testing.T, doc string) models.Layout {
	t.Helper()
	var layout models.Layout
	require.NoError(t, json.Unmarshal([]byte(doc), &layout))
	return layout
}

func TestSanitizeLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		axes     []string
		expected string
	}{
		{
			name:     "Should null a one-element range",
			layout:   `{"xaxis":{"range":[0]}}`,
			expected: `{"xaxis":{"range":null}}`,
		},
		{
			name:     "Should keep a two-element range",
			layout:   `{"title":"t","xaxis":{"range":[0,10],"title":"x"},"yaxis":{"range":[-1,1]}}`,
			expected: `{"title":"t","xaxis":{"range":[0,10],"title":"x"},"yaxis":{"range":[-1,1]}}`,
		},
		{
			name:     "Should null empty, long and scalar ranges",
			layout:   `{"xaxis":{"range":[]},"yaxis":{"range":[1,2,3]},"zaxis":{"range":5}}`,
			axes:     []string{"x", "y", "z"},
			expected: `{"xaxis":{"range":null},"yaxis":{"range":null},"zaxis":{"range":null}}`,
		},
		{
			name:     "Should leave axes outside the checked set alone",
			layout:   `{"xaxis2":{"range":[1]}}`,
			expected: `{"xaxis2":{"range":[1]}}`,
		},
		{
			name:     "Should not add range keys that are absent",
			layout:   `{"xaxis":{"title":"x"},"yaxis":"not an object"}`,
			expected: `{"xaxis":{"title":"x"},"yaxis":"not an object"}`,
		},
		{
			name:     "Should check extra configured axes",
			layout:   `{"xaxis2":{"range":[1]}}`,
			axes:     []string{"x", "y", "x2"},
			expected: `{"xaxis2":{"range":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SanitizeLayout(t.Context(), decodeLayout(t, tt.layout), tt.axes)
			require.NoError(t, err)

			got, err := json.Marshal(out)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(got))

			again, err := SanitizeLayout(t.Context(), out, tt.axes)
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestSanitizeLayout_DoesNotMutateInput(t *testing.T) {
	layout := decodeLayout(t, `{"xaxis":{"range":[0]}}`)

	_, err := SanitizeLayout(t.Context(), layout, nil)

	require.NoError(t, err)
	assert.Equal(t, []any{0.0}, layout.Axis("x")["range"])
}

func TestSanitizeLayout_Nil(t *testing.T) {
	out, err := SanitizeLayout(t.Context(), nil, nil)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	t.Run("Should register every trace type", func(t *testing.T) {
		for _, tt := range models.TraceTypes() {
			got, ok := r.Resolve(int(tt))
			require.True(t, ok, tt.String())
			assert.Equal(t, tt, got)
			assert.NotEmpty(t, r.Fields(tt))
		}
	})

	t.Run("Should keep type-specific fields apart", func(t *testing.T) {
		assert.True(t, r.Accepts(models.Pie, "labels"))
		assert.False(t, r.Accepts(models.Scatter, "labels"))
		assert.True(t, r.Accepts(models.Histogram, "nbinsx"))
		assert.False(t, r.Accepts(models.Bar, "nbinsx"))
		assert.True(t, r.Accepts(models.Surface, "z"))
		assert.False(t, r.Accepts(models.Pie, "x"))
		assert.False(t, r.Accepts(models.Scatter, "x_str"))
	})

	t.Run("Should report its version", func(t *testing.T) {
		assert.Equal(t, FieldTableVersion, r.Version())
	})
}
