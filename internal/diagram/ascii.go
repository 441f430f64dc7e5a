package diagram

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"Girder/internal/analysis"
)

func finiteSeries(samples []analysis.Sample, value func(analysis.Sample) float64) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		y := value(s)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		out = append(out, y)
	}
	return out
}

// ASCIIShear renders the shear series as a terminal graph.
func ASCIIShear(samples []analysis.Sample) string {
	series := finiteSeries(samples, func(s analysis.Sample) float64 { return s.Shear })
	if len(series) == 0 {
		return "(no finite shear values)"
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("Shear (kN) along the span"))
}

// ASCIIMoment renders the moment series as a terminal graph.
func ASCIIMoment(samples []analysis.Sample) string {
	series := finiteSeries(samples, func(s analysis.Sample) float64 { return s.Moment })
	if len(series) == 0 {
		return "(no finite moment values)"
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("Moment (kNm) along the span"))
}
