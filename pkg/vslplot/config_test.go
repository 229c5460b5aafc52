package vslplot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should decode every key", func(t *testing.T) {
		path := writeFile(t, "vslplot.yaml", `
data: in/data.json
layout: in/layout.json
output: out/figure.xlsx
json: out/figure.json
axes: [x, y, x2]
custom_keys: [x_str, meta]
keep_zero: true
workers: 4
log:
  level: debug
  json: true
render:
  chart_width: 800
  chart_height: 500
`)

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "in/data.json", cfg.Data)
		assert.Equal(t, "out/figure.json", cfg.JSON)
		assert.Equal(t, []string{"x", "y", "x2"}, cfg.Axes)
		assert.True(t, cfg.KeepZero)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.JSON)
		assert.Equal(t, 800, cfg.Render.ChartWidth)
		require.NoError(t, cfg.Validate())
	})

	t.Run("Should reject unknown keys", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "vslplot.yaml", "workerz: 2\n"))

		assert.Error(t, err)
	})

	t.Run("Should report a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))

		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"blank axis", Config{Axes: []string{"x", " "}}, "axes[1]"},
		{"empty custom key", Config{CustomKeys: []string{""}}, "custom_keys[0]"},
		{"negative workers", Config{Workers: -1}, "workers"},
		{"negative width", Config{Render: RenderConfig{ChartWidth: -5}}, "chart dimensions"},
		{"unknown log level", Config{Log: LogConfig{Level: "loud"}}, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	t.Run("Should fill render defaults for unset dimensions", func(t *testing.T) {
		cfg := Config{Workers: 2, Render: RenderConfig{ChartHeight: 300}}

		opts := cfg.Options()

		assert.Equal(t, 2, opts.Workers)
		assert.Equal(t, uint(640), opts.Render.ChartWidth)
		assert.Equal(t, uint(300), opts.Render.ChartHeight)
		assert.Equal(t, []string{"x", "y"}, opts.AxisNames())
	})

	t.Run("Should pass normalizer settings through", func(t *testing.T) {
		cfg := Config{KeepZero: true, CustomKeys: []string{"meta"}}

		n := cfg.Options().NormalizerOptions()

		assert.True(t, n.KeepZero)
		assert.Equal(t, []string{"meta"}, n.CustomKeys)
	})
}
