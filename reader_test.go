package delphesplot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenFormats(t *testing.T) {
	_, err := Open()
	assert.ErrorIs(t, err, ErrNoInputs)

	_, err = Open("events.lhe")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Open("a.root", "b.proio")
	assert.ErrorIs(t, err, ErrMixedInputs)

	_, err = Open("missing.ROOT")
	var openErr *ErrOpenFile
	assert.True(t, errors.As(err, &openErr))

	_, err = Open("missing.proio")
	assert.True(t, errors.As(err, &openErr))
	assert.Equal(t, "missing.proio", openErr.Filename)
}
