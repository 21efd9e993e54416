// Package viz renders a sample set together with a fitted regression line.
//
// WritePNG/SavePNG draw a static image with gonum/plot; WriteHTML produces an
// interactive go-echarts page.
package viz

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

// Line is a fitted model that can be drawn.
type Line interface {
	PredictOne(x float64) (float64, error)
	Describe() (string, error)
}

const (
	pngWidth  = 6 * vg.Inch
	pngHeight = 4 * vg.Inch
)

// WritePNG draws the samples as a scatter plot and the fitted line across
// the sample range, and writes the image to w as PNG.
func WritePNG(w io.Writer, line Line, x, y []float64) error {
	const op = "viz.WritePNG"

	title, err := checkInput(op, line, x, y)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter plot")
	}

	fn := plotter.NewFunction(func(v float64) float64 {
		pred, _ := line.PredictOne(v)
		return pred
	})
	fn.XMin = floats.Min(x)
	fn.XMax = floats.Max(x)
	fn.Samples = 2

	p.Add(scatter, fn)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("fit", fn)

	wt, err := p.WriterTo(pngWidth, pngHeight, "png")
	if err != nil {
		return errors.Wrap(err, "failed to render plot")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write png")
	}
	return nil
}

// SavePNG writes the plot produced by WritePNG to path.
func SavePNG(path string, line Line, x, y []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if err := WritePNG(f, line, x, y); err != nil {
		return err
	}
	log.GetLoggerWithName("viz").Info("plot saved", log.OperationKey, log.OperationExport, "path", path)
	return nil
}

// ScatterFit builds an echarts scatter chart of the samples overlaid with the
// fitted line.
func ScatterFit(line Line, x, y []float64) (*charts.Scatter, error) {
	title, err := checkInput("viz.ScatterFit", line, x, y)
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	points := make([]opts.ScatterData, 0, len(x))
	for i := range x {
		points = append(points, opts.ScatterData{Value: []interface{}{x[i], y[i]}})
	}
	scatter.AddSeries("samples", points)

	lo, hi := floats.Min(x), floats.Max(x)
	yLo, _ := line.PredictOne(lo)
	yHi, _ := line.PredictOne(hi)

	fit := charts.NewLine()
	fit.AddSeries("fit", []opts.LineData{
		{Value: []interface{}{lo, yLo}},
		{Value: []interface{}{hi, yHi}},
	})
	scatter.Overlap(fit)

	return scatter, nil
}

// Residuals builds a bar chart of y - ŷ for each sample, in input order.
func Residuals(line Line, x, y []float64) (*charts.Bar, error) {
	if _, err := checkInput("viz.Residuals", line, x, y); err != nil {
		return nil, err
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Residuals",
			},
		),
	)

	labels := make([]float64, len(x))
	data := make([]opts.BarData, len(x))
	for i := range x {
		pred, _ := line.PredictOne(x[i])
		labels[i] = x[i]
		data[i] = opts.BarData{Value: y[i] - pred}
	}
	bar.SetXAxis(labels).AddSeries("residual", data)
	return bar, nil
}

// WriteHTML renders the fit and residual charts as one HTML page.
func WriteHTML(w io.Writer, line Line, x, y []float64) error {
	scatter, err := ScatterFit(line, x, y)
	if err != nil {
		return err
	}
	residuals, err := Residuals(line, x, y)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(scatter, residuals)
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "failed to render html")
	}
	return nil
}

// SaveHTML writes the page produced by WriteHTML to path.
func SaveHTML(path string, line Line, x, y []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if err := WriteHTML(f, line, x, y); err != nil {
		return err
	}
	log.GetLoggerWithName("viz").Info("chart saved", log.OperationKey, log.OperationExport, "path", path)
	return nil
}

// checkInput validates the samples and returns the fitted equation, which
// doubles as the chart title. An unfitted line fails here.
func checkInput(op string, line Line, x, y []float64) (string, error) {
	if len(x) != len(y) {
		return "", errors.NewDimensionError(op, len(x), len(y), 0)
	}
	if len(x) == 0 {
		return "", errors.NewValueErrorWithCause(op, "nothing to plot", errors.ErrEmptyData)
	}
	if err := errors.CheckFinite(op, "x", x); err != nil {
		return "", err
	}
	if err := errors.CheckFinite(op, "y", y); err != nil {
		return "", err
	}
	return line.Describe()
}
