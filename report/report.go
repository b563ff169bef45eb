package report

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/ohline/study"
	"github.com/katalvlaran/ohline/telegraph"
)

// ErrEmptyProfile is returned when there is nothing to plot.
var ErrEmptyProfile = errors.New("report: empty profile")

// SaveProfilePNG plots the voltage magnitude of a longitudinal profile and
// writes it as a PNG image.
func SaveProfilePNG(path, title string, profile []telegraph.Sample) error {
	if len(profile) == 0 {
		return ErrEmptyProfile
	}

	xys := make(plotter.XYs, len(profile))
	for i, s := range profile {
		xys[i].X = s.Distance
		xys[i].Y = cmplx.Abs(s.Voltage)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("report: build line: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance (km)"
	p.Y.Label.Text = "Pipeline voltage (V)"
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}

// WriteSectionTable prints the per-section sweep results and the summary
// the way interference studies are usually tabulated.
func WriteSectionTable(w io.Writer, res *study.Result) error {
	const rule = 65
	if _, err := fmt.Fprintf(w, "Section | Length (m) | Separation (m) | EMF (V/km) | Voltage (V)\n%s\n",
		strings.Repeat("-", rule)); err != nil {
		return err
	}
	for i, s := range res.Sections {
		if _, err := fmt.Fprintf(w, "   %2d   |   %6.0f   |     %7.1f    |   %6.2f   |   %7.2f\n",
			i+1, s.Length, s.Separation, cmplx.Abs(s.EMF), cmplx.Abs(s.Voltage)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\nTotal length: %.2f km\nMean EMF: %.2f V/km, max EMF: %.2f V/km\nTotal induced voltage: %.2f V (%s)\nAssessment: %s\n",
		strings.Repeat("-", rule),
		res.TotalLength()/1000,
		res.MeanEMF(), res.MaxEMF(),
		cmplx.Abs(res.Total), formatPhasor(res.Total),
		res.Assessment())
	return err
}

func formatPhasor(v complex128) string {
	return fmt.Sprintf("%.2f%+.2fj", real(v), imag(v))
}
