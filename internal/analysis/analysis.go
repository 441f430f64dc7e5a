package analysis

import (
	"sort"
)

// Load is a concentrated downward force on the beam, kN at meters from
// the left support.
type Load struct {
	Position  float64 `json:"position_m"`
	Magnitude float64 `json:"load_kn"`
}

// Sample is one evaluated point of the shear and moment diagrams.
type Sample struct {
	X      float64 `json:"x"`
	Shear  float64 `json:"shear"`
	Moment float64 `json:"moment"`
}

// Result holds the sampled diagrams plus the support reactions. RA and RB
// are zero when the samples were supplied by the user rather than computed.
type Result struct {
	Samples []Sample `json:"samples"`
	RA      float64  `json:"r_a"`
	RB      float64  `json:"r_b"`
}

// Mode says whether the engine computed the diagrams or passed user
// results through.
type Mode int

const (
	ModeCalculate Mode = iota
	ModePlotOnly
)

func (m Mode) String() string {
	if m == ModePlotOnly {
		return "PLOT_ONLY"
	}
	return "CALCULATE"
}

const (
	defaultSpan = 10.0
	gridPoints  = 500
	eps         = 1e-6
)

// SpanLength derives the beam length: at least 10 m, and at least 1 m
// beyond the furthest load.
func SpanLength(loads []Load) float64 {
	length := defaultSpan
	for _, ld := range loads {
		if ld.Position+1.0 > length {
			length = ld.Position + 1.0
		}
	}
	return length
}

// Reactions solves the two support reactions of the simply supported beam:
// moment equilibrium about A gives RB, vertical equilibrium gives RA.
func Reactions(loads []Load) (length, rA, rB float64) {
	length = SpanLength(loads)
	var sumForces, sumMoments float64
	for _, ld := range loads {
		sumForces += ld.Magnitude
		sumMoments += ld.Magnitude * ld.Position
	}
	rB = sumMoments / length
	rA = sumForces - rB
	return length, rA, rB
}

// At evaluates shear and moment at a single position. Only loads strictly
// left of x have been passed; a load exactly at x has not dropped the shear
// yet. The diagram renderer relies on that convention at the jump points.
func At(x float64, loads []Load, rA float64) (shear, moment float64) {
	shear = rA
	moment = rA * x
	for _, ld := range loads {
		if ld.Position < x {
			shear -= ld.Magnitude
			moment -= ld.Magnitude * (x - ld.Position)
		}
	}
	return shear, moment
}

// Grid builds the sampling positions for the diagrams: 500 evenly spaced
// points over [0, length], plus every load position and a point just before
// and just after it so the shear step is not smeared into a ramp by the
// straight-line plot segments. Deduplicated, clipped to the span, ascending.
func Grid(length float64, positions []float64) []float64 {
	xs := make([]float64, 0, gridPoints+3*len(positions))
	for i := 0; i < gridPoints; i++ {
		xs = append(xs, length*float64(i)/float64(gridPoints-1))
	}
	for _, p := range positions {
		xs = append(xs, p, p-eps, p+eps)
	}
	sort.Float64s(xs)

	out := xs[:0]
	for _, x := range xs {
		if x < 0 || x > length {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == x {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Analyze runs the full statics computation for a set of point loads.
func Analyze(loads []Load) Result {
	sorted := make([]Load, len(loads))
	copy(sorted, loads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	length, rA, rB := Reactions(sorted)

	positions := make([]float64, len(sorted))
	for i, ld := range sorted {
		positions[i] = ld.Position
	}

	grid := Grid(length, positions)
	samples := make([]Sample, len(grid))
	for i, x := range grid {
		// Each point is evaluated from scratch; the grid spacing is not
		// uniform, so no running sums are carried between points.
		v, m := At(x, sorted, rA)
		samples[i] = Sample{X: x, Shear: v, Moment: m}
	}

	return Result{Samples: samples, RA: rA, RB: rB}
}

// FromSamples wraps user-supplied diagram values without recomputation.
// The zero reactions mark them as not calculated.
func FromSamples(samples []Sample) Result {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return Result{Samples: sorted}
}
