package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"Girder/internal/analysis"
)

var (
	shearLine  = color.RGBA{B: 255, A: 255}
	shearFill  = color.RGBA{B: 255, A: 77}
	momentLine = color.RGBA{R: 255, A: 255}
	momentFill = color.RGBA{R: 255, A: 77}
)

// finitePoints extracts plottable (x, value) pairs, dropping any sample
// where either coordinate is NaN or infinite.
func finitePoints(samples []analysis.Sample, value func(analysis.Sample) float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		y := value(s)
		if math.IsNaN(s.X) || math.IsInf(s.X, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: s.X, Y: y})
	}
	return pts
}

func saveDiagram(pts plotter.XYs, title, yLabel string, line, fill color.Color, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	// An all-non-finite series still produces a diagram, just an empty one.
	if len(pts) >= 3 {
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Color = line
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	} else if len(pts) > 0 {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = line
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// SaveShear renders the shear-force diagram as a blue filled polygon PNG.
func SaveShear(samples []analysis.Sample, filename string) error {
	pts := finitePoints(samples, func(s analysis.Sample) float64 { return s.Shear })
	return saveDiagram(pts, "Shear Force Diagram", "Shear (kN)", shearLine, shearFill, filename)
}

// SaveMoment renders the bending-moment diagram as a red filled polygon PNG.
func SaveMoment(samples []analysis.Sample, filename string) error {
	pts := finitePoints(samples, func(s analysis.Sample) float64 { return s.Moment })
	return saveDiagram(pts, "Bending Moment Diagram", "Moment (kNm)", momentLine, momentFill, filename)
}

// SaveDefaultBeam draws the stand-in beam configuration figure used when no
// image is uploaded: a rectangle beam with a pinned triangle under the left
// support and a roller circle under the right one.
func SaveDefaultBeam(filename string) error {
	p := plot.New()
	p.Title.Text = "Simply Supported Beam (Default)"
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 6
	p.Y.Min, p.Y.Max = 0, 2

	beam, err := plotter.NewPolygon(plotter.XYs{
		{X: 0.5, Y: 0.9}, {X: 5.5, Y: 0.9}, {X: 5.5, Y: 1.1}, {X: 0.5, Y: 1.1},
	})
	if err != nil {
		return err
	}
	beam.Color = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	beam.LineStyle.Color = color.Black
	beam.LineStyle.Width = vg.Points(1)
	p.Add(beam)

	pin, err := plotter.NewPolygon(plotter.XYs{
		{X: 0.5, Y: 0.9}, {X: 0.4, Y: 0.7}, {X: 0.6, Y: 0.7},
	})
	if err != nil {
		return err
	}
	pin.Color = color.Black
	p.Add(pin)

	roller, err := plotter.NewScatter(plotter.XYs{{X: 5.4, Y: 0.8}})
	if err != nil {
		return err
	}
	roller.GlyphStyle.Color = color.Black
	roller.GlyphStyle.Radius = vg.Points(6)
	roller.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(roller)

	return p.Save(6*vg.Inch, 2*vg.Inch, filename)
}
