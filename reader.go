package delphesplot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EventReader delivers events in storage order.
type EventReader interface {
	// Entries returns the total number of events, or -1 when the format
	// does not record it.
	Entries() int64
	// Read calls f for each event. The Event is only valid during the call.
	// An error from f stops the iteration and is returned.
	Read(f func(evt *Event) error) error
	Close() error
}

// Open opens the input files as one chained sequence of events. The format
// is taken from the file extension: ".root" for Delphes trees, ".proio" for
// generator-level proio streams.
func Open(paths ...string) (EventReader, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	format := ""
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".root", ".proio":
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
		}
		if format != "" && ext != format {
			return nil, fmt.Errorf("%w: %q is not %s", ErrMixedInputs, path, format)
		}
		format = ext
	}

	switch format {
	case ".proio":
		return OpenProio(paths...)
	default:
		return OpenDelphes(paths...)
	}
}
