package delphesplot

import (
	"go-hep.org/x/hep/fmom"
)

// Event holds the reconstructed objects of one detector event that the
// analyses look at. Collections keep the storage order of the input file.
type Event struct {
	Weight    float64
	Jets      []Jet
	Electrons []Lepton
	Muons     []Lepton
}

type Jet struct {
	PT   float64
	Eta  float64
	Phi  float64
	Mass float64
}

// Lepton is an electron or a muon. T is the time at the production vertex
// and TOuter the time at the outer tracker layer, both in seconds.
type Lepton struct {
	PT     float64
	Eta    float64
	Phi    float64
	Charge int
	T      float64
	TOuter float64
}

// P4 returns the massless four-momentum of the lepton.
func (l Lepton) P4() fmom.PtEtaPhiM {
	return fmom.NewPtEtaPhiM(l.PT, l.Eta, l.Phi, 0)
}

// TOF returns the time of flight to the outer layer in ns.
func (l Lepton) TOF() float64 {
	return (l.TOuter - l.T) * 1e9
}

// InvMass returns the invariant mass of the pair a+b.
func InvMass(a, b Lepton) float64 {
	p1 := a.P4()
	p2 := b.P4()
	return fmom.Add(&p1, &p2).M()
}
