package delphesplot

import (
	"fmt"
	"strconv"
	"strings"
)

// Binning is a fixed-width histogram binning. It implements flag.Value
// with the form "nbins:low:high".
type Binning struct {
	NBins int     `json:"nbins"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

func (b *Binning) Set(valueStr string) error {
	fields := strings.Split(valueStr, ":")
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q is not of the form nbins:low:high", ErrInvalidBinning, valueStr)
	}

	nBins, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinning, err)
	}
	low, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinning, err)
	}
	high, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinning, err)
	}

	value := Binning{NBins: nBins, Low: low, High: high}
	if err := value.Validate(); err != nil {
		return err
	}

	*b = value
	return nil
}

func (b *Binning) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%d:%g:%g", b.NBins, b.Low, b.High)
}

// Validate reports whether the binning can book a histogram.
func (b Binning) Validate() error {
	if b.NBins <= 0 {
		return fmt.Errorf("%w: need at least one bin, got %d", ErrInvalidBinning, b.NBins)
	}
	if b.High <= b.Low {
		return fmt.Errorf("%w: empty range [%g, %g)", ErrInvalidBinning, b.Low, b.High)
	}
	return nil
}
