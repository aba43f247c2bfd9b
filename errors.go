package delphesplot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBinning = errors.New("invalid binning")
	ErrMixedInputs    = errors.New("input files of different formats")
	ErrUnknownFormat  = errors.New("unknown input format")
	ErrNoInputs       = errors.New("no input files")
)

// ErrOpenFile represents an error when opening an input file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrMissingTree is returned when a ROOT file has no usable tree of the
// requested name.
type ErrMissingTree struct {
	Filename string
	Tree     string
	Err      error
}

func (e *ErrMissingTree) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no tree %q in file %q: %v", e.Tree, e.Filename, e.Err)
	}
	return fmt.Sprintf("no tree %q in file %q", e.Tree, e.Filename)
}

func (e *ErrMissingTree) Unwrap() error { return e.Err }

// ErrUnsupportedLayout is returned when a collection branch exists but its
// per-object leaves cannot be read.
type ErrUnsupportedLayout struct {
	Tree   string
	Branch string
	Leaf   string
}

func (e *ErrUnsupportedLayout) Error() string {
	return fmt.Sprintf("tree %q: branch %q has no readable leaf %q", e.Tree, e.Branch, e.Leaf)
}
