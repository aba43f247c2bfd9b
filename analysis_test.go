package delphesplot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceReader []Event

func (r sliceReader) Entries() int64 { return int64(len(r)) }

func (r sliceReader) Read(f func(evt *Event) error) error {
	for i := range r {
		if err := f(&r[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r sliceReader) Close() error { return nil }

// threeEvents is the reference sample: 1 jet/0 electrons/1 muon, then
// 2 jets/3 electrons/0 muons, then an empty event.
func threeEvents() sliceReader {
	return sliceReader{
		{
			Weight: 1,
			Jets:   []Jet{{PT: 42}},
			Muons:  []Lepton{{PT: 7, T: 1e-9, TOuter: 6e-9}},
		},
		{
			Weight: 1,
			Jets:   []Jet{{PT: 30}, {PT: 80}},
			Electrons: []Lepton{
				{PT: 10, Phi: 0, T: 0, TOuter: 3e-9},
				{PT: 10, Phi: 3.141592653589793, T: 0, TOuter: 9e-9},
				{PT: 50, Eta: 2, T: 0, TOuter: 1e-9},
			},
		},
		{Weight: 1},
	}
}

func TestAnalysisThreeEvents(t *testing.T) {
	a := NewAnalysis(DefaultBinnings())
	n, err := a.Run(context.Background(), threeEvents())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.Equal(t, int64(2), a.JetPT.Entries())
	assert.InDelta(t, (42.+30.)/2, a.JetPT.XMean(), 1e-9)

	assert.Equal(t, int64(1), a.Mass.Entries())
	assert.InDelta(t, 20, a.Mass.XMean(), 1e-6)

	assert.Equal(t, int64(1), a.TOFMuons.Entries())
	assert.InDelta(t, 5, a.TOFMuons.XMean(), 1e-9)

	assert.Equal(t, int64(1), a.TOFElectrons.Entries())
	assert.InDelta(t, 3, a.TOFElectrons.XMean(), 1e-9)
}

func TestAnalysisNoJets(t *testing.T) {
	a := NewAnalysis(DefaultBinnings())
	a.Process(&Event{Muons: []Lepton{{TOuter: 1e-9}}})
	assert.Equal(t, int64(0), a.JetPT.Entries())
	assert.Equal(t, int64(1), a.TOFMuons.Entries())
}

func TestAnalysisSingleElectron(t *testing.T) {
	for _, muons := range [][]Lepton{nil, {{TOuter: 2e-9}}} {
		a := NewAnalysis(DefaultBinnings())
		a.Process(&Event{
			Electrons: []Lepton{{PT: 15, T: 1e-9, TOuter: 5e-9}},
			Muons:     muons,
		})
		assert.Equal(t, int64(0), a.Mass.Entries())
		assert.Equal(t, int64(1), a.TOFElectrons.Entries())
		assert.InDelta(t, 4, a.TOFElectrons.XMean(), 1e-9)
		assert.Equal(t, int64(len(muons)), a.TOFMuons.Entries())
	}
}

func TestAnalysisMassIgnoresExtraElectrons(t *testing.T) {
	first := Lepton{PT: 6, Eta: 0.2, Phi: 0.1}
	second := Lepton{PT: 4, Eta: -0.7, Phi: 2.5}
	want := InvMass(first, second)

	for _, extra := range [][]Lepton{nil, {{PT: 90, Eta: 1}}, {{PT: 1}, {PT: 3, Phi: 1}}} {
		a := NewAnalysis(DefaultBinnings())
		electrons := append([]Lepton{first, second}, extra...)
		a.Process(&Event{Electrons: electrons})
		require.Equal(t, int64(1), a.Mass.Entries())
		assert.InDelta(t, want, a.Mass.XMean(), 1e-9)
	}
}

func TestAnalysisFirstEntryNotLeading(t *testing.T) {
	a := NewAnalysis(DefaultBinnings())
	a.Process(&Event{Jets: []Jet{{PT: 5}, {PT: 95}}})
	assert.InDelta(t, 5, a.JetPT.XMean(), 1e-9)
}

func TestAnalysisNegativeTOFNotClamped(t *testing.T) {
	b := DefaultBinnings()
	b.TOF = Binning{NBins: 10, Low: -5, High: 5}
	a := NewAnalysis(b)
	a.Process(&Event{Muons: []Lepton{{T: 3e-9, TOuter: 1e-9}}})
	assert.InDelta(t, -2, a.TOFMuons.XMean(), 1e-9)
}

func TestAnalysisWeighted(t *testing.T) {
	evt := &Event{Weight: 0.25, Jets: []Jet{{PT: 10}}}

	a := NewAnalysis(DefaultBinnings())
	a.Process(evt)
	assert.InDelta(t, 1, a.JetPT.SumW(), 1e-12)

	a = NewAnalysis(DefaultBinnings())
	a.Weighted = true
	a.Process(evt)
	assert.InDelta(t, 0.25, a.JetPT.SumW(), 1e-12)
}

func TestAnalysisRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalysis(DefaultBinnings())
	n, err := a.Run(ctx, threeEvents())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int64(0), n)
	assert.Equal(t, int64(0), a.JetPT.Entries())
}

func TestBinningsValidate(t *testing.T) {
	require.NoError(t, DefaultBinnings().Validate())

	b := DefaultBinnings()
	b.Mass = Binning{NBins: 10, Low: 3, High: 3}
	assert.ErrorIs(t, b.Validate(), ErrInvalidBinning)
}
