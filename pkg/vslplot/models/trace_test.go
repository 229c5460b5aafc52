package models

import (
	"encoding/json"
	"testing"
)

func TestParseTraceType(t *testing.T) {
	tests := []struct {
		input    any
		expected TraceType
		ok       bool
	}{
		{0.0, Scatter, true},
		{float64(6), Histogram, true},
		{4, Scatter3D, true},
		{int64(5), Bar, true},
		{json.Number("2"), Heatmap, true},
		{"surface", Surface, true},
		{"pie", Pie, true},
		{"Pie", 0, false},
		{7.0, 0, false},
		{-1.0, 0, false},
		{2.5, 0, false},
		{json.Number("1.5"), 0, false},
		{json.Number("1.0"), Pie, true},
		{json.Number("6e0"), Histogram, true},
		{json.Number("1e30"), 0, false},
		{1e30, 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseTraceType(tt.input)
		if ok != tt.ok || (ok && result != tt.expected) {
			t.Errorf("ParseTraceType(%#v) = %v, %v, expected %v, %v",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestTraceTypeString(t *testing.T) {
	expected := []string{"scatter", "pie", "heatmap", "surface", "scatter3d", "bar", "histogram"}
	types := TraceTypes()
	if len(types) != len(expected) {
		t.Fatalf("Expected %d trace types, got %d", len(expected), len(types))
	}
	for i, tt := range types {
		if int(tt) != i || tt.String() != expected[i] {
			t.Errorf("TraceTypes()[%d] = %d/%q, expected %d/%q", i, int(tt), tt.String(), i, expected[i])
		}
	}
	if s := TraceType(42).String(); s != "TraceType(42)" {
		t.Errorf("TraceType(42).String() = %q", s)
	}
}

func TestNormalizedTraceMarshalJSON(t *testing.T) {
	nt := NormalizedTrace{Type: Bar, Fields: map[string]any{"x": []any{"a"}, "name": "n"}}

	data, err := json.Marshal(nt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["type"] != "bar" || decoded["name"] != "n" {
		t.Errorf("Unexpected encoding: %s", data)
	}
	if nt.Name() != "n" {
		t.Errorf("Name() = %q, expected %q", nt.Name(), "n")
	}
	if _, ok := nt.Fields["type"]; ok {
		t.Errorf("MarshalJSON must not modify Fields")
	}

	if _, err := json.Marshal(NormalizedTrace{Type: TraceType(9)}); err == nil {
		t.Errorf("Expected error for unknown type")
	}
}
