package main

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch

	minBins = 5
	maxBins = 20
)

const (
	histogramFile = "histogram.png"
	outliersFile  = "outliers.png"
	zScoresFile   = "zscores.png"
)

// Series is the hand-off between the transform stage and the plots.
type Series struct {
	Index      []float64
	Sample     []float64
	Normalized []float64
	ZScores    []float64
}

// renderPlots writes the histogram, the normalized scatter and the z-score
// scatter as PNG files under dir and returns their paths in that order.
// bins <= 0 picks recommendedBins.
func renderPlots(dir string, s Series, bins int) ([]string, error) {
	if len(s.Sample) == 0 {
		return nil, ErrEmptySample
	}
	if bins <= 0 {
		bins = recommendedBins(len(s.Sample))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create plot dir %s", dir)
	}

	hist, err := histogramPlot(s.Sample, bins)
	if err != nil {
		return nil, err
	}
	outliers, err := scatterPlot("Values over Time to Identify Outliers", "0-1 Normalised Value", s.Index, s.Normalized)
	if err != nil {
		return nil, err
	}
	z, err := scatterPlot("Z-Scores of Data Points", "Z-Score", s.Index, s.ZScores)
	if err != nil {
		return nil, err
	}

	figures := []struct {
		name string
		fig  *plot.Plot
	}{
		{histogramFile, hist},
		{outliersFile, outliers},
		{zScoresFile, z},
	}
	paths := make([]string, 0, len(figures))
	for _, f := range figures {
		path := filepath.Join(dir, f.name)
		if err := f.fig.Save(plotWidth, plotHeight, path); err != nil {
			return paths, errors.Wrapf(err, "save %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// recommendedBins applies Sturges' rule, clamped to [minBins, maxBins].
func recommendedBins(n int) int {
	if n <= 1 {
		return minBins
	}
	k := int(math.Ceil(math.Log2(float64(n)))) + 1
	if k < minBins {
		return minBins
	}
	if k > maxBins {
		return maxBins
	}
	return k
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func histogramPlot(sample []float64, bins int) (*plot.Plot, error) {
	p := newPlot("Histogram", "Data Reading Number (Counts)", "Frequency (Counts)")
	h, err := plotter.NewHist(plotter.Values(sample), bins)
	if err != nil {
		return nil, errors.Wrap(err, "histogram")
	}
	p.Add(h)
	return p, nil
}

func scatterPlot(title, yLabel string, x, y []float64) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, errors.Errorf("%s: %d index values for %d points", title, len(x), len(y))
	}
	p := newPlot(title, "Data Reading (Time)", yLabel)
	pts := make(plotter.XYs, len(y))
	for i := range y {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, title)
	}
	p.Add(sc)
	return p, nil
}
