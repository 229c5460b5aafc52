// Package normalizer turns front-end plot documents into renderer-ready traces and layouts.
package normalizer

import (
	"sort"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// FieldTableVersion identifies the Plotly graph_objects release the field table mirrors.
const FieldTableVersion = "plotly-5.24"

// DefaultCustomKeys are extension keys the front-end emits on top of the renderer fields.
var DefaultCustomKeys = []string{"x_str"}

// fields shared by every trace object.
var commonFields = []string{
	"customdata", "customdatasrc", "hoverinfo", "hoverinfosrc", "hoverlabel",
	"hovertemplate", "hovertemplatesrc", "hovertext", "hovertextsrc", "ids", "idssrc",
	"legend", "legendgroup", "legendgrouptitle", "legendrank", "legendwidth",
	"meta", "metasrc", "name", "opacity", "showlegend", "stream", "uid", "uirevision", "visible",
}

// fields of traces drawn on a cartesian x/y subplot.
var cartesianFields = []string{
	"x", "xsrc", "y", "ysrc", "xaxis", "yaxis", "xcalendar", "ycalendar",
	"xhoverformat", "yhoverformat", "zorder",
}

var periodFields = []string{
	"x0", "dx", "xperiod", "xperiod0", "xperiodalignment",
	"y0", "dy", "yperiod", "yperiod0", "yperiodalignment",
}

var colorscaleFields = []string{
	"autocolorscale", "coloraxis", "colorbar", "colorscale", "reversescale", "showscale",
}

var barLikeFields = []string{
	"alignmentgroup", "cliponaxis", "constraintext", "error_x", "error_y",
	"insidetextanchor", "insidetextfont", "marker", "offsetgroup", "orientation",
	"outsidetextfont", "selected", "selectedpoints", "text", "textangle", "textfont",
	"textposition", "textpositionsrc", "textsrc", "texttemplate", "texttemplatesrc", "unselected",
}

var typeFields = map[models.TraceType][][]string{
	models.Scatter: {commonFields, cartesianFields, periodFields, {
		"cliponaxis", "connectgaps", "error_x", "error_y", "fill", "fillcolor",
		"fillgradient", "fillpattern", "groupnorm", "hoveron", "line", "marker", "mode",
		"offsetgroup", "orientation", "selected", "selectedpoints", "stackgaps", "stackgroup",
		"text", "textfont", "textposition", "textpositionsrc", "textsrc", "texttemplate",
		"texttemplatesrc", "unselected",
	}},
	models.Pie: {commonFields, {
		"automargin", "direction", "dlabel", "domain", "hole", "insidetextfont",
		"insidetextorientation", "label0", "labels", "labelssrc", "marker", "outsidetextfont",
		"pull", "pullsrc", "rotation", "scalegroup", "sort", "text", "textfont", "textinfo",
		"textposition", "textpositionsrc", "textsrc", "texttemplate", "texttemplatesrc",
		"title", "values", "valuessrc",
	}},
	models.Heatmap: {commonFields, cartesianFields, periodFields, colorscaleFields, {
		"connectgaps", "hoverongaps", "text", "textfont", "textsrc", "texttemplate",
		"transpose", "xgap", "xtype", "ygap", "ytype", "z", "zauto", "zhoverformat",
		"zmax", "zmid", "zmin", "zsmooth", "zsrc",
	}},
	models.Surface: {commonFields, colorscaleFields, {
		"cauto", "cmax", "cmid", "cmin", "connectgaps", "contours", "hidesurface",
		"lighting", "lightposition", "opacityscale", "scene", "surfacecolor",
		"surfacecolorsrc", "text", "textsrc", "x", "xcalendar", "xhoverformat", "xsrc",
		"y", "ycalendar", "yhoverformat", "ysrc", "z", "zcalendar", "zhoverformat", "zsrc",
	}},
	models.Scatter3D: {commonFields, {
		"connectgaps", "error_x", "error_y", "error_z", "line", "marker", "mode",
		"projection", "scene", "surfaceaxis", "surfacecolor", "text", "textfont",
		"textposition", "textpositionsrc", "textsrc", "texttemplate", "texttemplatesrc",
		"x", "xcalendar", "xhoverformat", "xsrc", "y", "ycalendar", "yhoverformat", "ysrc",
		"z", "zcalendar", "zhoverformat", "zsrc",
	}},
	models.Bar: {commonFields, cartesianFields, periodFields, barLikeFields, {
		"base", "basesrc", "offset", "offsetsrc", "width", "widthsrc",
	}},
	models.Histogram: {commonFields, cartesianFields, barLikeFields, {
		"autobinx", "autobiny", "bingroup", "cumulative", "histfunc", "histnorm",
		"nbinsx", "nbinsy", "xbins", "ybins",
	}},
}

// Registry maps each trace type to the field set its renderer object accepts.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	version string
	fields  map[models.TraceType]map[string]struct{}
}

// DefaultRegistry builds the registry for every enumerated trace type.
func DefaultRegistry() *Registry {
	r := &Registry{
		version: FieldTableVersion,
		fields:  make(map[models.TraceType]map[string]struct{}, len(typeFields)),
	}
	for t, groups := range typeFields {
		set := make(map[string]struct{})
		for _, group := range groups {
			for _, f := range group {
				set[f] = struct{}{}
			}
		}
		r.fields[t] = set
	}
	return r
}

// Version returns the field table version.
func (r *Registry) Version() string {
	return r.version
}

// Resolve maps a trace type identifier to a registered trace type.
func (r *Registry) Resolve(id any) (models.TraceType, bool) {
	t, ok := models.ParseTraceType(id)
	if !ok {
		return 0, false
	}
	_, registered := r.fields[t]
	return t, registered
}

// Accepts reports whether field is accepted by the renderer object for t.
func (r *Registry) Accepts(t models.TraceType, field string) bool {
	_, ok := r.fields[t][field]
	return ok
}

// Fields returns the sorted accepted field names for t.
func (r *Registry) Fields(t models.TraceType) []string {
	set := r.fields[t]
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
