package models

// Layout holds chart-wide settings (titles, margins, "<name>axis" entries).
type Layout map[string]any

// AxisKey returns the layout key for an axis name (e.g. "x" -> "xaxis").
func AxisKey(name string) string {
	return name + "axis"
}

// Axis returns the axis settings for name, or nil when absent or not an object.
func (l Layout) Axis(name string) map[string]any {
	axis, _ := l[AxisKey(name)].(map[string]any)
	return axis
}

// Figure is a sanitized layout plus the normalized traces, ready to render.
type Figure struct {
	// Layout is the sanitized layout.
	Layout Layout `json:"layout"`
	// Traces are the normalized traces in input order.
	Traces []NormalizedTrace `json:"data"`
}
