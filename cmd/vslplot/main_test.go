package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/vslplot-go/pkg/vslplot"
)

func writeDocs(t *testing.T) (dir, data, layout string) {
	t.Helper()
	dir = t.TempDir()
	data = filepath.Join(dir, "data.json")
	layout = filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(data, []byte(`[
		{"trace_type":5,"x_str":["a","b"],"y":[1,2],"visible":false},
		{"trace_type":1,"labels":["p","q"],"values":[1,3],"marker":{"opacity":0.3}}
	]`), 0o644))
	require.NoError(t, os.WriteFile(layout, []byte(`{"title":"Sales","yaxis":{"range":[1]}}`), 0o644))
	return dir, data, layout
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level=disabled"))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("Should write the workbook and figure JSON", func(t *testing.T) {
		dir, data, layout := writeDocs(t)
		xlsx := filepath.Join(dir, "figure.xlsx")
		figJSON := filepath.Join(dir, "figure.json")

		_, err := execute(t, "--data", data, "--layout", layout, "-o", xlsx, "--json", figJSON)

		require.NoError(t, err)
		assert.FileExists(t, xlsx)
		encoded, err := os.ReadFile(figJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"layout": {"title":"Sales","yaxis":{"range":null}},
			"data": [
				{"type":"bar","x":["a","b"],"y":[1,2]},
				{"type":"pie","labels":["p","q"],"values":[1,3]}
			]
		}`, string(encoded))
	})

	t.Run("Should keep zero values when asked", func(t *testing.T) {
		dir, data, layout := writeDocs(t)
		figJSON := filepath.Join(dir, "figure.json")

		_, err := execute(t, "--data", data, "--layout", layout, "--json", figJSON, "--keep-zero")

		require.NoError(t, err)
		encoded, err := os.ReadFile(figJSON)
		require.NoError(t, err)
		var fig map[string]any
		require.NoError(t, json.Unmarshal(encoded, &fig))
		bar := fig["data"].([]any)[0].(map[string]any)
		assert.Equal(t, false, bar["visible"])
	})

	t.Run("Should let flags override the config file", func(t *testing.T) {
		dir, data, layout := writeDocs(t)
		figJSON := filepath.Join(dir, "figure.json")
		cfg := filepath.Join(dir, "vslplot.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte(
			"data: "+data+"\nlayout: "+layout+"\njson: "+filepath.Join(dir, "ignored.json")+"\nworkers: 2\n",
		), 0o644))

		_, err := execute(t, "--config", cfg, "--json", figJSON)

		require.NoError(t, err)
		assert.FileExists(t, figJSON)
		assert.NoFileExists(t, filepath.Join(dir, "ignored.json"))
	})

	t.Run("Should fail without any output", func(t *testing.T) {
		_, data, layout := writeDocs(t)

		_, err := execute(t, "--data", data, "--layout", layout)

		assert.ErrorContains(t, err, "nothing to write")
	})

	t.Run("Should fail on a missing data document", func(t *testing.T) {
		dir, _, layout := writeDocs(t)

		_, err := execute(t, "--data", filepath.Join(dir, "none.json"), "--layout", layout, "--json", "-")

		assert.ErrorContains(t, err, "file not found")
	})
}

func TestRootCommand_JSONToStdout(t *testing.T) {
	_, data, layout := writeDocs(t)

	out, err := execute(t, "--data", data, "--layout", layout, "--json", "-")

	require.NoError(t, err)
	var fig struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fig))
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "bar", fig.Data[0]["type"])
}

func TestConfigLogging(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		cfg         vslplot.LogConfig
		wantLevel   string
		wantJSON    bool
		wantChanged bool
	}{
		{"no config", nil, vslplot.LogConfig{}, "info", false, false},
		{"json without level", nil, vslplot.LogConfig{JSON: true}, "info", true, true},
		{"level without json", nil, vslplot.LogConfig{Level: "debug"}, "debug", false, true},
		{"flags win", []string{"--log-level=warn", "--log-json=false"}, vslplot.LogConfig{Level: "debug", JSON: true}, "warn", false, false},
		{"same as flags", []string{"--log-json"}, vslplot.LogConfig{JSON: true}, "info", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			level, logJSON, _, changed, err := configLogging(cmd, &vslplot.Config{Log: tt.cfg})

			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantJSON, logJSON)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestInspectCommand(t *testing.T) {
	dir, data, layout := writeDocs(t)
	xlsx := filepath.Join(dir, "figure.xlsx")
	_, err := execute(t, "--data", data, "--layout", layout, "-o", xlsx)
	require.NoError(t, err)

	out, err := execute(t, "inspect", xlsx)

	require.NoError(t, err)
	var wb struct {
		BookName string `json:"book_name"`
		Sheets   map[string]struct {
			Charts []struct {
				ChartType string `json:"chart_type"`
			} `json:"charts"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &wb))
	assert.Equal(t, "figure.xlsx", wb.BookName)
	require.Len(t, wb.Sheets["Figure"].Charts, 2)
	assert.Equal(t, "Bar", wb.Sheets["Figure"].Charts[0].ChartType)
	assert.Equal(t, "Pie", wb.Sheets["Figure"].Charts[1].ChartType)
}
