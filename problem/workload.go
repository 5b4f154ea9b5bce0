package problem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidWorkload is returned when a workload fails validation.
var ErrInvalidWorkload = errors.New("invalid workload")

// BoundsSource gives access to the loop bound of each dimension.
type BoundsSource interface {
	GetBound(dim Dimension) uint64
}

// Bounds holds one loop bound per dimension, indexed by ordinal.
type Bounds [NumDimensions]uint64

// GetBound returns the bound of the given dimension.
func (b Bounds) GetBound(dim Dimension) uint64 {
	if !dim.Valid() {
		panic(fmt.Sprintf("invalid dimension %d", int(dim)))
	}

	return b[dim]
}

func (b Bounds) String() string {
	parts := make([]string, 0, NumDimensions)
	for _, d := range AllDimensions() {
		parts = append(parts, fmt.Sprintf("%s=%d", d.Name(), b[d]))
	}

	return strings.Join(parts, " ")
}

// DataType identifies one of the tensors of a convolution.
type DataType int

// The tensors of a convolution.
const (
	Weight DataType = iota
	Input
	Output

	NumDataTypes = 3
)

// Name returns the name of the data type.
func (t DataType) Name() string {
	switch t {
	case Weight:
		return "Weight"
	case Input:
		return "Input"
	case Output:
		return "Output"
	default:
		panic("invalid data type")
	}
}

// Densities holds the fraction of non-zero values per tensor.
type Densities [NumDataTypes]float64

// UniformDensities returns densities where every tensor has the same value.
func UniformDensities(d float64) Densities {
	return Densities{d, d, d}
}

// Workload is a fully resolved layer: bounds plus the parameters that travel
// with them. Only the bounds are consumed by the mapping spaces.
type Workload struct {
	Name      string
	Bounds    Bounds    `validate:"dive,gte=1"`
	WStride   int       `validate:"gte=1"`
	HStride   int       `validate:"gte=1"`
	WDilation int       `validate:"gte=1"`
	HDilation int       `validate:"gte=1"`
	Densities Densities `validate:"dive,gte=0,lte=1"`
}

// NewWorkload creates a workload with unit strides, unit dilations and dense
// tensors.
func NewWorkload(name string, bounds Bounds) Workload {
	return Workload{
		Name:      name,
		Bounds:    bounds,
		WStride:   1,
		HStride:   1,
		WDilation: 1,
		HDilation: 1,
		Densities: UniformDensities(1.0),
	}
}

// GetBound returns the bound of the given dimension.
func (w Workload) GetBound(dim Dimension) uint64 {
	return w.Bounds.GetBound(dim)
}

var workloadValidate = validator.New()

// Validate checks that every bound, stride and dilation is positive and that
// densities lie in [0, 1].
func (w Workload) Validate() error {
	err := workloadValidate.Struct(w)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)",
				fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}

		return fmt.Errorf("%w %q: %s",
			ErrInvalidWorkload, w.Name, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w %q: %v", ErrInvalidWorkload, w.Name, err)
}
