// Package vslplot normalizes VSL plot documents into Plotly-compatible figures
// and renders them as Excel workbooks.
package vslplot

import (
	"github.com/ukaji3/vslplot-go/pkg/vslplot/normalizer"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/render"
)

// Options configures the plot pipeline.
type Options struct {
	// Axes lists the axis names whose range the layout sanitizer checks.
	// If nil, normalizer.DefaultAxes is used.
	Axes []string
	// CustomKeys are accepted for every trace type in addition to the field table.
	// If nil, normalizer.DefaultCustomKeys is used.
	CustomKeys []string
	// KeepZero keeps false and numeric zero trace values.
	KeepZero bool
	// Workers normalizes traces concurrently when greater than 1.
	Workers int
	// Render configures workbook rendering.
	Render render.Options
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		Render: render.DefaultOptions(),
	}
}

// AxisNames returns the axes checked by the layout sanitizer.
func (o Options) AxisNames() []string {
	if o.Axes != nil {
		return o.Axes
	}
	return normalizer.DefaultAxes
}

// NormalizerOptions returns the trace normalizer settings.
func (o Options) NormalizerOptions() normalizer.Options {
	return normalizer.Options{
		CustomKeys: o.CustomKeys,
		KeepZero:   o.KeepZero,
		Workers:    o.Workers,
	}
}
