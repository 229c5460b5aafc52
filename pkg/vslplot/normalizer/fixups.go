package normalizer

import (
	"fmt"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// pie markers accept these through generic filtering but the renderer rejects them.
var pieMarkerInvalid = []string{"opacity", "colorscale"}

// applyFixups runs the type-specific rewrites on a filtered, pruned trace.
func applyFixups(index int, t models.TraceType, fields map[string]any) error {
	if t == models.Pie {
		if err := fixPieMarker(index, fields); err != nil {
			return err
		}
	}

	if xs, ok := fields["x_str"]; ok {
		if t == models.Bar {
			fields["x"] = xs
		}
		delete(fields, "x_str")
	}

	switch t {
	case models.Scatter3D:
		z, ok := fields["z"]
		if !ok {
			return &MalformedTraceError{Index: index, Field: "z", Reason: "scatter3d requires z"}
		}
		flat, err := flattenZ(z)
		if err != nil {
			return &MalformedTraceError{Index: index, Field: "z", Reason: err.Error()}
		}
		fields["z"] = flat
	case models.Surface:
		if z, ok := fields["z"]; ok {
			if _, err := gridRows(z); err != nil {
				return &MalformedTraceError{Index: index, Field: "z", Reason: err.Error()}
			}
		}
	}
	return nil
}

func fixPieMarker(index int, fields map[string]any) error {
	raw, ok := fields["marker"]
	if !ok {
		return nil
	}
	marker, ok := raw.(map[string]any)
	if !ok {
		return &MalformedTraceError{Index: index, Field: "marker", Reason: fmt.Sprintf("expected object, got %T", raw)}
	}
	for _, k := range pieMarkerInvalid {
		delete(marker, k)
	}
	if len(marker) == 0 {
		delete(fields, "marker")
	}
	return nil
}

// flattenZ turns a 2D grid into a row-major flat sequence. A flat numeric
// sequence is returned unchanged so flattening twice is a no-op.
func flattenZ(z any) ([]any, error) {
	seq, ok := z.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", z)
	}
	if isNumberSeq(seq) {
		return seq, nil
	}
	rows, err := gridRows(seq)
	if err != nil {
		return nil, err
	}
	flat := make([]any, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("grid has no values")
	}
	return flat, nil
}

// gridRows checks that z is a non-empty 2D grid of numbers and returns its rows.
func gridRows(z any) ([][]any, error) {
	seq, ok := z.([]any)
	if !ok {
		return nil, fmt.Errorf("expected 2D array, got %T", z)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("expected 2D array, got empty array")
	}
	rows := make([][]any, 0, len(seq))
	for i, r := range seq {
		row, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d: expected array, got %T", i, r)
		}
		if !isNumberSeq(row) {
			return nil, fmt.Errorf("row %d: expected numbers", i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isNumberSeq(seq []any) bool {
	for _, v := range seq {
		if _, ok := toFloat(v); !ok {
			return false
		}
	}
	return true
}
