package delphesplot

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinningSet(t *testing.T) {
	var b Binning
	require.NoError(t, b.Set("20:-1.5:3"))
	assert.Equal(t, Binning{NBins: 20, Low: -1.5, High: 3}, b)
	assert.Equal(t, "20:-1.5:3", b.String())
}

func TestBinningSetInvalid(t *testing.T) {
	for _, value := range []string{"", "10", "10:0", "x:0:1", "10:a:1", "10:0:b", "0:0:1", "-3:0:1", "10:5:5", "10:6:5"} {
		b := Binning{NBins: 7, Low: 1, High: 2}
		err := b.Set(value)
		assert.ErrorIs(t, err, ErrInvalidBinning, value)
		assert.Equal(t, Binning{NBins: 7, Low: 1, High: 2}, b, "binning changed by %q", value)
	}
}

func TestBinningFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	b := DefaultBinnings().TOF
	fs.Var(&b, "tof-bins", "")
	require.NoError(t, fs.Parse([]string{"-tof-bins", "30:-15:15"}))
	assert.Equal(t, Binning{NBins: 30, Low: -15, High: 15}, b)

	require.Error(t, fs.Parse([]string{"-tof-bins", "oops"}))
}
