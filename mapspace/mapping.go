package mapspace

import (
	"fmt"
	"math/big"

	"github.com/sarchlab/mapspace/problem"
)

// IDs selects one point in each of the three spaces.
type IDs struct {
	Factor      *big.Int
	Permutation *big.Int
	Split       *big.Int
}

// NewIDs creates IDs from 64-bit values.
func NewIDs(factor, permutation, split uint64) IDs {
	return IDs{
		Factor:      new(big.Int).SetUint64(factor),
		Permutation: new(big.Int).SetUint64(permutation),
		Split:       new(big.Int).SetUint64(split),
	}
}

// Mapping is a decoded point of a MapSpace.
type Mapping struct {
	IDs IDs

	// Factors[dim][level] is the tiling factor of dim at level.
	Factors [problem.NumDimensions][]uint64

	// LoopOrders[level] lists every dimension in loop order.
	LoopOrders [][]problem.Dimension

	Splits Splits
}

// NumLevels returns the number of levels of the mapping.
func (m Mapping) NumLevels() int {
	return len(m.LoopOrders)
}

// TileFactor returns the tiling factor of dim at level.
func (m Mapping) TileFactor(level int, dim problem.Dimension) uint64 {
	mustBeDimension(dim)
	return m.Factors[dim][level]
}

// SpatialDimensions returns the dimensions of level that are spatially
// distributed. It is empty for a temporal level.
func (m Mapping) SpatialDimensions(level int) []problem.Dimension {
	order := m.levelOrder(level)

	split, ok := m.Splits.At(level)
	if !ok {
		return nil
	}

	return order[:split]
}

// TemporalDimensions returns the dimensions of level iterated in time.
func (m Mapping) TemporalDimensions(level int) []problem.Dimension {
	order := m.levelOrder(level)

	split, ok := m.Splits.At(level)
	if !ok {
		return order
	}

	return order[split:]
}

func (m Mapping) levelOrder(level int) []problem.Dimension {
	if level < 0 || level >= len(m.LoopOrders) {
		panic(fmt.Sprintf("level %d outside [0, %d)", level, len(m.LoopOrders)))
	}

	return m.LoopOrders[level]
}
