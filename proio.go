package delphesplot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fmom"
)

const (
	pdgElectron = 11
	pdgMuon     = 13
)

// ProioReader reads the generator-level stable particles of proio streams.
// Electrons and muons carry no timing information; events have no jets.
type ProioReader struct {
	paths []string
}

func OpenProio(paths ...string) (*ProioReader, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	for _, path := range paths {
		reader, err := proio.Open(path)
		if err != nil {
			return nil, &ErrOpenFile{Filename: path, Err: err}
		}
		reader.Close()
	}

	return &ProioReader{paths: paths}, nil
}

// Entries is not recorded by proio streams.
func (r *ProioReader) Entries() int64 {
	return -1
}

func (r *ProioReader) Read(f func(evt *Event) error) error {
	for _, path := range r.paths {
		if err := r.readFile(path, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProioReader) readFile(path string, f func(evt *Event) error) error {
	reader, err := proio.Open(path)
	if err != nil {
		return &ErrOpenFile{Filename: path, Err: err}
	}
	defer reader.Close()

	var evt Event
	for event := range reader.ScanEvents() {
		evt.Weight = 1
		evt.Jets = evt.Jets[:0]
		evt.Electrons = evt.Electrons[:0]
		evt.Muons = evt.Muons[:0]

		for _, id := range event.TaggedEntries("GenStable") {
			part, ok := event.GetEntry(id).(*eic.Particle)
			if !ok {
				continue
			}

			switch pdg := part.GetPdg(); pdg {
			case pdgElectron, -pdgElectron:
				evt.Electrons = append(evt.Electrons, truthLepton(part))
			case pdgMuon, -pdgMuon:
				evt.Muons = append(evt.Muons, truthLepton(part))
			}
		}

		if err := f(&evt); err != nil {
			return err
		}
	}

	if err := scanErr(reader.Err); err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}
	return nil
}

// scanErr returns the error, if any, left by a finished event scan.
func scanErr(errs <-chan error) error {
	select {
	case err := <-errs:
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	default:
		return nil
	}
}

func (r *ProioReader) Close() error {
	return nil
}

func truthLepton(part *eic.Particle) Lepton {
	px := float64(part.GetP().GetX())
	py := float64(part.GetP().GetY())
	pz := float64(part.GetP().GetZ())
	p4 := fmom.NewPxPyPzE(px, py, pz, math.Sqrt(px*px+py*py+pz*pz))

	return Lepton{
		PT:     p4.Pt(),
		Eta:    p4.Eta(),
		Phi:    p4.Phi(),
		Charge: int(part.GetCharge()),
	}
}
