// Package models defines data structures for plot documents and rendered figures.
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TraceType identifies the kind of series a trace describes.
type TraceType int

const (
	Scatter TraceType = iota
	Pie
	Heatmap
	Surface
	Scatter3D
	Bar
	Histogram
)

// TraceTypeKey is the trace field carrying the trace type identifier.
const TraceTypeKey = "trace_type"

// traceTypeNames is indexed by TraceType.
var traceTypeNames = [...]string{
	Scatter:   "scatter",
	Pie:       "pie",
	Heatmap:   "heatmap",
	Surface:   "surface",
	Scatter3D: "scatter3d",
	Bar:       "bar",
	Histogram: "histogram",
}

// TraceTypes returns every trace type in enumeration order.
func TraceTypes() []TraceType {
	types := make([]TraceType, len(traceTypeNames))
	for i := range traceTypeNames {
		types[i] = TraceType(i)
	}
	return types
}

// Valid reports whether t is one of the enumerated trace types.
func (t TraceType) Valid() bool {
	return t >= 0 && int(t) < len(traceTypeNames)
}

func (t TraceType) String() string {
	if !t.Valid() {
		return "TraceType(" + strconv.Itoa(int(t)) + ")"
	}
	return traceTypeNames[t]
}

// ParseTraceType resolves a trace type identifier as found in a data document:
// an integer index (possibly decoded as float64 or json.Number) or a type name.
func ParseTraceType(v any) (TraceType, bool) {
	switch id := v.(type) {
	case string:
		for i, name := range traceTypeNames {
			if name == id {
				return TraceType(i), true
			}
		}
		return 0, false
	case float64:
		return floatTraceType(id)
	case int:
		return indexTraceType(id)
	case int64:
		return indexTraceType(int(id))
	case json.Number:
		f, err := id.Float64()
		if err != nil {
			return 0, false
		}
		return floatTraceType(f)
	default:
		return 0, false
	}
}

// floatTraceType resolves a decoded JSON number; only integral indexes name a type.
func floatTraceType(f float64) (TraceType, bool) {
	if f != math.Trunc(f) || f < 0 || f >= float64(len(traceTypeNames)) {
		return 0, false
	}
	return indexTraceType(int(f))
}

func indexTraceType(i int) (TraceType, bool) {
	t := TraceType(i)
	return t, t.Valid()
}

// Trace is one series as produced by the plot front-end: string keys mapped to JSON values.
type Trace map[string]any

// NormalizedTrace is a trace whose fields are all accepted by its renderer object.
type NormalizedTrace struct {
	// Type is the resolved trace type.
	Type TraceType
	// Fields holds the filtered, pruned and fixed-up trace fields.
	Fields map[string]any
}

// MarshalJSON encodes the trace as a Plotly trace object ("type" plus the fields).
func (t NormalizedTrace) MarshalJSON() ([]byte, error) {
	if !t.Type.Valid() {
		return nil, fmt.Errorf("cannot encode trace of unknown type %d", int(t.Type))
	}
	obj := make(map[string]any, len(t.Fields)+1)
	for k, v := range t.Fields {
		obj[k] = v
	}
	obj["type"] = t.Type.String()
	return json.Marshal(obj)
}

// Name returns the trace display name, or "" when none is set.
func (t NormalizedTrace) Name() string {
	name, _ := t.Fields["name"].(string)
	return name
}
