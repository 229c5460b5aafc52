package render

import (
	"encoding/json"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// toFloat converts a decoded JSON number into float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// floats returns v as numbers when it is an array of numbers.
func floats(v any) ([]float64, bool) {
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(seq))
	for _, e := range seq {
		f, ok := toFloat(e)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// cells returns v as sheet values when it is an array.
func cells(v any) []any {
	seq, _ := v.([]any)
	return seq
}

// floatCells widens numbers for sheet writers.
func floatCells(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// indexCells returns 1..n, used when a trace omits its x values.
func indexCells(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// grid returns v as rows of numbers.
func grid(v any) ([][]float64, bool) {
	seq, ok := v.([]any)
	if !ok || len(seq) == 0 {
		return nil, false
	}
	rows := make([][]float64, 0, len(seq))
	for _, r := range seq {
		row, ok := floats(r)
		if !ok {
			return nil, false
		}
		rows = append(rows, row)
	}
	return rows, true
}

// text extracts a title-like value: a string or an object with a "text" key.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		s, _ := t["text"].(string)
		return s
	default:
		return ""
	}
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

var namedColors = map[string]string{
	"black":  "000000",
	"white":  "FFFFFF",
	"red":    "FF0000",
	"green":  "008000",
	"blue":   "0000FF",
	"yellow": "FFFF00",
	"orange": "FFA500",
	"purple": "800080",
	"gray":   "808080",
	"grey":   "808080",
	"cyan":   "00FFFF",
}

// hexColor converts "#rrggbb", "#rgb" or a basic color name into the RRGGBB form
// excelize expects. Unsupported values return "".
func hexColor(v any) string {
	s := strings.ToLower(strings.TrimSpace(str(v)))
	if c, ok := namedColors[s]; ok {
		return c
	}
	// colorful.Hex scans with Sscanf, which accepts short and trailing fields.
	if (len(s) != 4 && len(s) != 7) || strings.Trim(s[1:], "0123456789abcdef") != "" {
		return ""
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}
