package delphesplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

// DelphesTree is the name of the tree written by Delphes.
const DelphesTree = "Delphes"

// DelphesReader chains the Delphes trees of several ROOT files.
type DelphesReader struct {
	files   []*riofs.File
	trees   []rtree.Tree
	names   []string
	entries int64
}

func OpenDelphes(paths ...string) (*DelphesReader, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	r := &DelphesReader{}
	for _, path := range paths {
		f, err := groot.Open(path)
		if err != nil {
			r.Close()
			return nil, &ErrOpenFile{Filename: path, Err: err}
		}
		r.files = append(r.files, f)

		o, err := riofs.Dir(f).Get(DelphesTree)
		if err != nil {
			r.Close()
			return nil, &ErrMissingTree{Filename: path, Tree: DelphesTree, Err: err}
		}
		tree, ok := o.(rtree.Tree)
		if !ok {
			r.Close()
			return nil, &ErrMissingTree{Filename: path, Tree: DelphesTree, Err: fmt.Errorf("object is a %T", o)}
		}

		r.trees = append(r.trees, tree)
		r.names = append(r.names, path)
		r.entries += tree.Entries()
	}

	return r, nil
}

func (r *DelphesReader) Entries() int64 {
	return r.entries
}

func (r *DelphesReader) Read(f func(evt *Event) error) error {
	for i, tree := range r.trees {
		if err := readDelphesTree(tree, f); err != nil {
			return fmt.Errorf("could not read %q: %w", r.names[i], err)
		}
	}
	return nil
}

func (r *DelphesReader) Close() error {
	var firstErr error
	for _, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.files = nil
	r.trees = nil
	return firstErr
}

// leaves selected from a tree, keyed by branch name. Absent branches are
// missing from the map and read as zero.
type delphesLeaves map[string]any

func readDelphesTree(tree rtree.Tree, f func(evt *Event) error) error {
	available := make(map[string]rtree.ReadVar)
	for _, rv := range rtree.NewReadVars(tree) {
		available[rv.Name] = rv
	}

	for coll, leaf := range delphesCollections {
		_, readable := available[leaf]
		if tree.Branch(coll) != nil && !readable {
			return &ErrUnsupportedLayout{Tree: tree.Name(), Branch: coll, Leaf: leaf}
		}
	}

	var (
		rvars  []rtree.ReadVar
		leaves = make(delphesLeaves)
	)
	for _, name := range delphesBranches() {
		rv, ok := available[name]
		if !ok {
			continue
		}
		rvars = append(rvars, rv)
		leaves[name] = rv.Value
	}

	var evt Event
	if len(rvars) == 0 {
		logger.Warn("no known branches in tree, events are empty", "tree", tree.Name(), "entries", tree.Entries())
		for i := int64(0); i < tree.Entries(); i++ {
			leaves.fill(&evt)
			if err := f(&evt); err != nil {
				return err
			}
		}
		return nil
	}

	r, err := rtree.NewReader(tree, rvars)
	if err != nil {
		return fmt.Errorf("could not create tree reader: %w", err)
	}
	defer r.Close()

	return r.Read(func(ctx rtree.RCtx) error {
		leaves.fill(&evt)
		return f(&evt)
	})
}

// delphesCollections maps the TClonesArray branches read by delphesBranches
// to a leaf that must be readable when the branch is present.
var delphesCollections = map[string]string{
	"Event":    "Event.Weight",
	"Jet":      "Jet.PT",
	"Electron": "Electron.PT",
	"Muon":     "Muon.PT",
}

func delphesBranches() []string {
	names := []string{"Event.Weight", "Jet.PT", "Jet.Eta", "Jet.Phi", "Jet.Mass"}
	for _, coll := range []string{"Electron", "Muon"} {
		for _, leaf := range []string{"PT", "Eta", "Phi", "Charge", "T", "TOuter"} {
			names = append(names, coll+"."+leaf)
		}
	}
	return names
}

func (l delphesLeaves) fill(evt *Event) {
	evt.Weight = 1
	if w, ok := l["Event.Weight"]; ok && leafLen(w) > 0 {
		evt.Weight = leafAt(w, 0)
	}

	evt.Jets = evt.Jets[:0]
	for i := 0; i < l.size("Jet", "PT", "Eta", "Phi", "Mass"); i++ {
		evt.Jets = append(evt.Jets, Jet{
			PT:   l.at("Jet.PT", i),
			Eta:  l.at("Jet.Eta", i),
			Phi:  l.at("Jet.Phi", i),
			Mass: l.at("Jet.Mass", i),
		})
	}

	evt.Electrons = l.leptons(evt.Electrons[:0], "Electron")
	evt.Muons = l.leptons(evt.Muons[:0], "Muon")
}

func (l delphesLeaves) leptons(dst []Lepton, coll string) []Lepton {
	n := l.size(coll, "PT", "Eta", "Phi", "Charge", "T", "TOuter")
	for i := 0; i < n; i++ {
		dst = append(dst, Lepton{
			PT:     l.at(coll+".PT", i),
			Eta:    l.at(coll+".Eta", i),
			Phi:    l.at(coll+".Phi", i),
			Charge: int(l.at(coll+".Charge", i)),
			T:      l.at(coll+".T", i),
			TOuter: l.at(coll+".TOuter", i),
		})
	}
	return dst
}

// size returns the number of entries of a collection: the shortest of its
// present leaves, or zero when the collection has no PT leaf.
func (l delphesLeaves) size(coll string, leaves ...string) int {
	if _, ok := l[coll+".PT"]; !ok {
		return 0
	}
	n := -1
	for _, leaf := range leaves {
		v, ok := l[coll+"."+leaf]
		if !ok {
			continue
		}
		if m := leafLen(v); n < 0 || m < n {
			n = m
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

func (l delphesLeaves) at(name string, i int) float64 {
	v, ok := l[name]
	if !ok {
		return 0
	}
	return leafAt(v, i)
}

func leafLen(v any) int {
	switch v := v.(type) {
	case *[]float32:
		return len(*v)
	case *[]float64:
		return len(*v)
	case *[]int32:
		return len(*v)
	case *[]int64:
		return len(*v)
	case *[]uint32:
		return len(*v)
	case *float32, *float64, *int32, *int64, *uint32:
		return 1
	}
	return 0
}

func leafAt(v any, i int) float64 {
	switch v := v.(type) {
	case *[]float32:
		return float64((*v)[i])
	case *[]float64:
		return (*v)[i]
	case *[]int32:
		return float64((*v)[i])
	case *[]int64:
		return float64((*v)[i])
	case *[]uint32:
		return float64((*v)[i])
	case *float32:
		return float64(*v)
	case *float64:
		return *v
	case *int32:
		return float64(*v)
	case *int64:
		return float64(*v)
	case *uint32:
		return float64(*v)
	}
	return 0
}
