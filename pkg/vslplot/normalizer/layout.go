package normalizer

import (
	"context"
	"fmt"

	"github.com/ukaji3/vslplot-go/pkg/logger"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// DefaultAxes are the axis names checked when none are configured.
var DefaultAxes = []string{"x", "y"}

// SanitizeLayout returns a copy of layout where every checked axis range that
// is not exactly [min, max] is set to null, leaving the renderer to auto-range.
// Sanitizing an already sanitized layout changes nothing.
func SanitizeLayout(ctx context.Context, layout models.Layout, axes []string) (models.Layout, error) {
	log := logger.FromContext(ctx)
	if axes == nil {
		axes = DefaultAxes
	}

	copied, err := deepCopyMap(layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	out := models.Layout(copied)

	for _, name := range axes {
		axis := out.Axis(name)
		if axis == nil {
			continue
		}
		r, ok := axis["range"]
		if !ok || validRange(r) {
			continue
		}
		if r != nil {
			log.Warn("Ignoring malformed axis range", "axis", models.AxisKey(name), "range", r)
		}
		axis["range"] = nil
	}
	return out, nil
}

func validRange(r any) bool {
	seq, ok := r.([]any)
	return ok && len(seq) == 2
}
