package mapspace

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/sarchlab/mapspace/numeric"
	"github.com/sarchlab/mapspace/problem"
)

// IndexFactorizationSpace enumerates the tiling factors of every dimension at
// every level. One id selects one cofactor tuple per dimension; dimension 0
// (R) is the least significant digit.
type IndexFactorizationSpace struct {
	dimensionFactors [problem.NumDimensions]*numeric.Factors
	counter          *numeric.CartesianCounter
}

// Init builds the factor set of every dimension. cofactorsOrder gives the
// number of levels each dimension is split over; prefactors optionally pins
// the cofactor of a dimension at a level. A failed Init leaves the space
// uninitialized.
func (s *IndexFactorizationSpace) Init(
	bounds problem.BoundsSource,
	cofactorsOrder [problem.NumDimensions]int,
	prefactors [problem.NumDimensions]map[int]uint64,
) error {
	s.counter = nil

	radices := make([]*big.Int, problem.NumDimensions)
	for _, dim := range problem.AllDimensions() {
		factors, err := numeric.NewFactors(
			bounds.GetBound(dim), cofactorsOrder[dim], prefactors[dim])
		if err != nil {
			return fmt.Errorf("dimension %s: %w", dim.Name(), err)
		}

		s.dimensionFactors[dim] = factors
		radices[dim] = big.NewInt(int64(factors.Len()))
	}

	counter, err := numeric.NewCartesianCounter(radices)
	if err != nil {
		return err
	}
	s.counter = counter

	return nil
}

// LogSummary writes the space size at Info level and the option count of
// every dimension at Debug level, and publishes the size gauge.
func (s *IndexFactorizationSpace) LogSummary() {
	size := s.Size()

	slog.Info("Initializing index factorization subspace", "Size", size.String())
	for _, dim := range problem.AllDimensions() {
		slog.Debug("Factorization options",
			"Dimension", dim.Name(),
			"Bound", s.dimensionFactors[dim].Bound(),
			"Options", s.dimensionFactors[dim].Len(),
		)
	}

	recordCardinality(spaceIndexFactorization, size)
}

// Size returns the number of distinct factorizations.
func (s *IndexFactorizationSpace) Size() *big.Int {
	s.mustBeInitialized()
	return s.counter.Total()
}

// GetFactor returns the tiling factor of dim at level for the given id.
func (s *IndexFactorizationSpace) GetFactor(
	id *big.Int,
	dim problem.Dimension,
	level int,
) uint64 {
	mustBeDimension(dim)

	digits := s.decode(id)

	return s.dimensionFactors[dim].Cofactor(int(digits[dim]), level)
}

// GetFactors decodes id once and returns, per dimension, the factor at every
// level.
func (s *IndexFactorizationSpace) GetFactors(
	id *big.Int,
) [problem.NumDimensions][]uint64 {
	digits := s.decode(id)

	var out [problem.NumDimensions][]uint64
	for dim, f := range s.dimensionFactors {
		out[dim] = f.At(int(digits[dim]))
	}

	return out
}

// DimensionFactors returns the factor set of a dimension.
func (s *IndexFactorizationSpace) DimensionFactors(
	dim problem.Dimension,
) *numeric.Factors {
	s.mustBeInitialized()
	mustBeDimension(dim)

	return s.dimensionFactors[dim]
}

func (s *IndexFactorizationSpace) decode(id *big.Int) []uint64 {
	s.mustBeInitialized()
	return s.counter.DecodeUint64(id)
}

func (s *IndexFactorizationSpace) mustBeInitialized() {
	if s.counter == nil {
		panic("index factorization space is not initialized")
	}
}

func mustBeDimension(dim problem.Dimension) {
	if !dim.Valid() {
		panic(fmt.Sprintf("invalid dimension %d", int(dim)))
	}
}
