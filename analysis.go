// Package delphesplot fills and plots jet, di-electron and time-of-flight
// distributions from Delphes detector-simulation output.
package delphesplot

import (
	"context"

	"go-hep.org/x/hep/hbook"
)

// Binnings books the histograms of an Analysis.
type Binnings struct {
	JetPT Binning `json:"jet_pt"`
	Mass  Binning `json:"mass"`
	TOF   Binning `json:"tof"`
}

func DefaultBinnings() Binnings {
	return Binnings{
		JetPT: Binning{NBins: 100, Low: 0, High: 100},
		Mass:  Binning{NBins: 100, Low: 0, High: 30},
		TOF:   Binning{NBins: 15, Low: 0, High: 15},
	}
}

func (b Binnings) Validate() error {
	for _, bin := range []Binning{b.JetPT, b.Mass, b.TOF} {
		if err := bin.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Analysis fills the jet pT, di-electron mass and time-of-flight
// distributions from a sequence of events.
type Analysis struct {
	JetPT        *hbook.H1D
	Mass         *hbook.H1D
	TOFMuons     *hbook.H1D
	TOFElectrons *hbook.H1D

	// Weighted fills with Event.Weight instead of unit weights.
	Weighted bool
}

func NewAnalysis(b Binnings) *Analysis {
	return &Analysis{
		JetPT:        newH1D(b.JetPT),
		Mass:         newH1D(b.Mass),
		TOFMuons:     newH1D(b.TOF),
		TOFElectrons: newH1D(b.TOF),
	}
}

func newH1D(b Binning) *hbook.H1D {
	return hbook.NewH1D(b.NBins, b.Low, b.High)
}

// Process fills the histograms from a single event. Each collection is
// looked at independently and always through its first entries.
func (a *Analysis) Process(evt *Event) {
	w := 1.0
	if a.Weighted {
		w = evt.Weight
	}

	if len(evt.Jets) > 0 {
		a.JetPT.Fill(evt.Jets[0].PT, w)
	}

	if len(evt.Electrons) > 1 {
		a.Mass.Fill(InvMass(evt.Electrons[0], evt.Electrons[1]), w)
	}

	if len(evt.Muons) > 0 {
		a.TOFMuons.Fill(evt.Muons[0].TOF(), w)
	}

	if len(evt.Electrons) > 0 {
		a.TOFElectrons.Fill(evt.Electrons[0].TOF(), w)
	}
}

// Run processes every event of r in order and returns the number of
// events seen.
func (a *Analysis) Run(ctx context.Context, r EventReader) (int64, error) {
	var n int64
	err := r.Read(func(evt *Event) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Process(evt)
		n++
		if n%10000 == 0 {
			logger.Debug("processing event", "n", n)
		}
		return nil
	})
	return n, err
}
