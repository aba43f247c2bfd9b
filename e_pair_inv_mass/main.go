package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/delphesplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-files>...

Overlays the di-electron invariant mass of every electron pair, one
histogram per input file.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		title        = flag.String("title", "", "plot title")
		output       = flag.String("output", "out.png", "output file")
		oppositeSign = flag.Bool("os", true, "only use opposite-sign pairs")
		bins         = delphesplot.Binning{NBins: 50, Low: 2.9, High: 3.3}
	)
	flag.Var(&bins, "bins", "mass binning as nbins:low:high")
	flag.Usage = printUsage
	flag.Parse()

	logger := delphesplot.NewLogger(os.Stderr, slog.LevelInfo)
	delphesplot.SetLogger(logger)

	if flag.NArg() < 1 {
		printUsage()
		logger.Error("Invalid arguments")
		os.Exit(1)
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = "Mass (GeV)"
	p.X.Tick.Marker = delphesplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = delphesplot.PreciseTicks{NSuggestedTicks: 5}

	for i, filename := range flag.Args() {
		hist, err := makeInvMassHist(filename, bins, *oppositeSign)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}

		lineColor := color.RGBA{A: 255}
		switch i {
		case 1:
			lineColor = color.RGBA{G: 255, A: 255}
		case 2:
			lineColor = color.RGBA{B: 255, A: 255}
		case 3:
			lineColor = color.RGBA{R: 255, B: 127, G: 127, A: 255}
		}

		h := hplot.NewH1D(hist)
		h.LineStyle.Color = lineColor
		if flag.NArg() == 1 {
			h.Infos.Style = hplot.HInfoSummary
		}

		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func makeInvMassHist(filename string, bins delphesplot.Binning, oppositeSign bool) (*hbook.H1D, error) {
	invMassHist := hbook.NewH1D(bins.NBins, bins.Low, bins.High)

	reader, err := delphesplot.Open(filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	err = reader.Read(func(evt *delphesplot.Event) error {
		fillPairs(invMassHist, evt.Electrons, oppositeSign)
		return nil
	})
	return invMassHist, err
}

// fillPairs fills h with the mass of every electron pair that falls in the
// histogram range.
func fillPairs(h *hbook.H1D, electrons []delphesplot.Lepton, oppositeSign bool) {
	for i := 0; i < len(electrons); i++ {
		for j := i + 1; j < len(electrons); j++ {
			if oppositeSign && electrons[i].Charge*electrons[j].Charge > 0 {
				continue
			}

			invMass := delphesplot.InvMass(electrons[i], electrons[j])
			if invMass > h.XMin() && invMass < h.XMax() {
				h.Fill(invMass, 1)
			}
		}
	}
}

