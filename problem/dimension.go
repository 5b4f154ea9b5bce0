// Package problem defines the workload shape of a convolution layer.
package problem

import (
	"fmt"
	"strings"
)

// Dimension is one of the loop bounds of a convolution layer.
type Dimension int

// The dimensions in canonical ordinal order.
const (
	R Dimension = iota // filter height
	S                  // filter width
	P                  // output height
	Q                  // output width
	C                  // input channels
	K                  // output channels
	N                  // batch size

	NumDimensions = 7
)

// Name returns the one-letter name of the dimension.
func (d Dimension) Name() string {
	switch d {
	case R:
		return "R"
	case S:
		return "S"
	case P:
		return "P"
	case Q:
		return "Q"
	case C:
		return "C"
	case K:
		return "K"
	case N:
		return "N"
	default:
		panic(fmt.Sprintf("invalid dimension %d", int(d)))
	}
}

func (d Dimension) String() string {
	return d.Name()
}

// Valid reports whether d is one of the seven dimensions.
func (d Dimension) Valid() bool {
	return d >= 0 && int(d) < NumDimensions
}

// ParseDimension converts a one-letter name into a Dimension. The match is
// case-insensitive.
func ParseDimension(name string) (Dimension, error) {
	for _, d := range AllDimensions() {
		if strings.EqualFold(d.Name(), strings.TrimSpace(name)) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("unknown dimension %q", name)
}

// ParseDimensionList parses a string such as "RSC" or "R,S,C" into an ordered
// list of dimensions.
func ParseDimensionList(s string) ([]Dimension, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	dims := make([]Dimension, 0, len(s))
	for _, r := range s {
		d, err := ParseDimension(string(r))
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}

	return dims, nil
}

// AllDimensions returns every dimension in canonical order.
func AllDimensions() []Dimension {
	dims := make([]Dimension, NumDimensions)
	for i := range dims {
		dims[i] = Dimension(i)
	}

	return dims
}

// FormatDimensions renders an ordered dimension list, e.g. "RSPQCKN".
func FormatDimensions(dims []Dimension) string {
	var sb strings.Builder
	for _, d := range dims {
		sb.WriteString(d.Name())
	}

	return sb.String()
}
