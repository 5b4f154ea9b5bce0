package mapspace

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/sarchlab/mapspace/numeric"
	"github.com/sarchlab/mapspace/problem"
)

// LevelSplit is the decoded split of one spatial level: the first Split
// dimensions of the level's loop order are spatially distributed and the
// rest are temporal.
type LevelSplit struct {
	Level int
	Split uint32
	Fixed bool
}

// Splits lists the spatial levels in increasing level order.
type Splits []LevelSplit

// At returns the split of level and whether the level is spatial.
func (s Splits) At(level int) (uint32, bool) {
	for _, ls := range s {
		if ls.Level == level {
			return ls.Split, true
		}
	}

	return 0, false
}

type splitLevel struct {
	configured  bool
	fixed       bool
	split       uint32
	unitFactors uint32
	size        uint64
}

// SpatialSplitSpace enumerates how many dimensions are spatial at each
// spatial level. Levels that are never configured are not spatial and take
// no part in the space.
type SpatialSplitSpace struct {
	levels      []splitLevel
	initialized bool
}

// Init discards any previous configuration and prepares numLevels levels, none
// of them spatial.
func (s *SpatialSplitSpace) Init(numLevels int) error {
	s.levels = nil
	s.initialized = false

	if numLevels < 0 {
		return fmt.Errorf("%d levels: %w", numLevels, ErrInvalidLevel)
	}

	s.levels = make([]splitLevel, numLevels)
	s.initialized = true

	return nil
}

// NumLevels returns the number of levels given to Init.
func (s *SpatialSplitSpace) NumLevels() int {
	return len(s.levels)
}

// InitLevel makes level spatial with a free split in
// [unitFactors, NumDimensions].
func (s *SpatialSplitSpace) InitLevel(level int, unitFactors int) error {
	if err := s.checkLevel(level); err != nil {
		return err
	}

	if unitFactors < 0 || unitFactors > problem.NumDimensions {
		return fmt.Errorf("level %d: %d unit factors outside [0, %d]: %w",
			level, unitFactors, problem.NumDimensions, ErrInvalidSplit)
	}

	s.levels[level] = splitLevel{
		configured:  true,
		unitFactors: uint32(unitFactors),
		size:        uint64(problem.NumDimensions + 1 - unitFactors),
	}

	Trace("Spatial split level", "Level", level, "UnitFactors", unitFactors)

	return nil
}

// InitLevelUserSpecified makes level spatial with a fixed split.
func (s *SpatialSplitSpace) InitLevelUserSpecified(level int, split uint32) error {
	if err := s.checkLevel(level); err != nil {
		return err
	}

	if split > problem.NumDimensions {
		return fmt.Errorf("level %d: split %d exceeds %d dimensions: %w",
			level, split, problem.NumDimensions, ErrInvalidSplit)
	}

	s.levels[level] = splitLevel{
		configured: true,
		fixed:      true,
		split:      split,
		size:       1,
	}

	Trace("Spatial split level", "Level", level, "FixedSplit", split)

	return nil
}

// IsSpatial reports whether level has been configured.
func (s *SpatialSplitSpace) IsSpatial(level int) bool {
	s.mustBeInitialized()
	return level >= 0 && level < len(s.levels) && s.levels[level].configured
}

// Size returns the number of split combinations over the spatial levels.
func (s *SpatialSplitSpace) Size() *big.Int {
	s.mustBeInitialized()

	size := big.NewInt(1)
	radix := new(big.Int)
	for _, l := range s.levels {
		if l.configured {
			size.Mul(size, radix.SetUint64(l.size))
		}
	}

	return size
}

// GetSplits returns the split of every spatial level for the given id.
// Spatial levels are consumed in increasing order, lowest first.
func (s *SpatialSplitSpace) GetSplits(id *big.Int) Splits {
	numeric.MustBeInRange(id, s.Size())

	out := make(Splits, 0, len(s.levels))
	rest := new(big.Int).Set(id)
	radix, digit := new(big.Int), new(big.Int)
	for level, l := range s.levels {
		switch {
		case !l.configured:
			continue
		case l.fixed:
			out = append(out, LevelSplit{Level: level, Split: l.split, Fixed: true})
		default:
			rest.QuoRem(rest, radix.SetUint64(l.size), digit)
			out = append(out, LevelSplit{
				Level: level,
				Split: l.unitFactors + uint32(digit.Uint64()),
			})
		}
	}

	return out
}

// LogSummary writes the space size at Info level and publishes the size
// gauge.
func (s *SpatialSplitSpace) LogSummary() {
	size := s.Size()
	slog.Info("Initializing spatial split subspace", "Size", size.String())
	recordCardinality(spaceSpatialSplit, size)
}

func (s *SpatialSplitSpace) checkLevel(level int) error {
	if !s.initialized {
		return fmt.Errorf("spatial split space not initialized: %w", ErrInvalidLevel)
	}

	if level < 0 || level >= len(s.levels) {
		return fmt.Errorf("level %d outside [0, %d): %w",
			level, len(s.levels), ErrInvalidLevel)
	}

	return nil
}

func (s *SpatialSplitSpace) mustBeInitialized() {
	if !s.initialized {
		panic("spatial split space is not initialized")
	}
}
