package delphesplot

import (
	"fmt"
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Outputs holds the file names of the saved plots.
type Outputs struct {
	TOFMuons     string
	TOFElectrons string
	JetPT        string
	Mass         string
}

// OutputNames derives the plot file names from a run label.
func OutputNames(label string) Outputs {
	return Outputs{
		TOFMuons:     "histTOFmuons_" + label + ".png",
		TOFElectrons: "histTOFelectrons_" + label + ".png",
		JetPT:        "histJetPT_" + label + ".png",
		Mass:         "histMass_" + label + ".png",
	}
}

// In returns the names joined to dir.
func (o Outputs) In(dir string) Outputs {
	return Outputs{
		TOFMuons:     filepath.Join(dir, o.TOFMuons),
		TOFElectrons: filepath.Join(dir, o.TOFElectrons),
		JetPT:        filepath.Join(dir, o.JetPT),
		Mass:         filepath.Join(dir, o.Mass),
	}
}

// NewHistPlot draws h with the summary legend used for single histograms.
func NewHistPlot(h *hbook.H1D, title, xLabel, yLabel string) *hplot.Plot {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	hh := hplot.NewH1D(h)
	hh.Infos.Style = hplot.HInfoSummary
	p.Add(hh)

	return p
}

// Render draws p onto an in-memory image canvas.
func Render(p *hplot.Plot) *vgimg.Canvas {
	img := vgimg.New(plotWidth, plotHeight)
	p.Draw(draw.New(img))
	return img
}

func SavePlot(p *hplot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("could not save plot %q: %w", path, err)
	}
	return nil
}

// Plots are the rendered distributions of an Analysis.
type Plots struct {
	JetPT        *hplot.Plot
	Mass         *hplot.Plot
	TOFMuons     *hplot.Plot
	TOFElectrons *hplot.Plot
}

func (a *Analysis) Plots() Plots {
	return Plots{
		JetPT:        NewHistPlot(a.JetPT, "jet P_T", "P_T (GeV)", "N"),
		Mass:         NewHistPlot(a.Mass, "M_inv(e_1, e_2)", "M (GeV)", "N"),
		TOFMuons:     NewHistPlot(a.TOFMuons, "TOF μ", "t [ns]", "N"),
		TOFElectrons: NewHistPlot(a.TOFElectrons, "TOF electrons", "t [ns]", "N"),
	}
}

type plotFile struct {
	plot *hplot.Plot
	path string
}

// Save renders all four plots and writes the time-of-flight ones to
// disk. When all is set the jet pT and mass plots are written as well.
// It returns the paths written.
func (p Plots) Save(out Outputs, all bool) ([]string, error) {
	Render(p.JetPT)
	Render(p.Mass)

	saves := []plotFile{
		{p.TOFMuons, out.TOFMuons},
		{p.TOFElectrons, out.TOFElectrons},
	}
	if all {
		saves = append(saves, plotFile{p.JetPT, out.JetPT}, plotFile{p.Mass, out.Mass})
	}

	var written []string
	for _, s := range saves {
		if err := SavePlot(s.plot, s.path); err != nil {
			return written, err
		}
		written = append(written, s.path)
	}
	return written, nil
}
