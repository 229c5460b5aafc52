package render

import (
	"math"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
	gonumfloats "gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// maxHistogramBins keeps one bin per data row below the header.
const maxHistogramBins = excelize.TotalRows - 1

// sturgesBins is the default bin count for n samples.
func sturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// histogramBins reads a requested bin count; anything not a positive number means default.
func histogramBins(v any) int {
	n, ok := toFloat(v)
	if !ok || !(n >= 1) {
		return 0
	}
	return int(math.Min(n, maxHistogramBins))
}

// binCounts splits data into nbins equal-width bins over [min, max]. Every
// bin is half-open except the last, which also holds max. There are never
// more bins than samples. A range too wide or too narrow to split in float64
// yields a single bin.
func binCounts(data []float64, nbins int) (labels []string, counts []float64) {
	if len(data) == 0 {
		return nil, nil
	}
	if nbins < 1 {
		nbins = sturgesBins(len(data))
	}
	nbins = min(nbins, len(data), maxHistogramBins)

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []string{formatBound(lo)}, []float64{float64(len(data))}
	}
	width := (hi - lo) / float64(nbins)
	if math.IsInf(hi-lo, 0) || width == 0 || lo+width == lo {
		return []string{formatBound(lo) + "-" + formatBound(hi)}, []float64{float64(len(data))}
	}

	dividers := gonumfloats.Span(make([]float64, nbins+1), lo, hi)
	labels = make([]string, nbins)
	for i := range labels {
		labels[i] = formatBound(dividers[i]) + "-" + formatBound(dividers[i+1])
	}
	// stat.Histogram bins are half-open; widen the top edge so max lands in the last bin.
	dividers[nbins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, sorted, nil)
	return labels, counts
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}
