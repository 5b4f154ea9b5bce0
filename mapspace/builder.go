// Package mapspace addresses the space of mappings of a convolution layer onto
// a multi-level hardware hierarchy.
//
// A mapping is made of three independent choices, each with its own space:
//
//   - IndexFactorizationSpace: the tiling factor of every dimension at every
//     level.
//   - PermutationSpace: the loop order at every level.
//   - SpatialSplitSpace: how many of a spatial level's ordered dimensions are
//     distributed across processing elements.
//
// Every space reports an exact Size and decodes any id in [0, Size()) into its
// part of a mapping without enumerating the space. Sizes are math/big
// integers since they routinely exceed 64 bits. Once configured, spaces are
// read-only and can be queried from many goroutines at once.
//
// The three ids are kept separate. Combining them into a single mapping id is
// left to the search driver.
package mapspace

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/sarchlab/mapspace/problem"
)

type prefactor struct {
	dim   problem.Dimension
	level int
	value uint64
}

type levelPrefix struct {
	level int
	dims  []problem.Dimension
}

type spatialLevel struct {
	level int
	fixed bool
	split uint32
}

// Builder configures and builds a MapSpace.
type Builder struct {
	workload      problem.Workload
	numLevels     int
	prefactors    []prefactor
	prefixes      []levelPrefix
	pruneUnitDims bool
	spatialLevels []spatialLevel
}

// MakeBuilder creates a builder for a three-level hierarchy.
func MakeBuilder() Builder {
	return Builder{numLevels: 3}
}

// WithWorkload sets the layer to map.
func (b Builder) WithWorkload(w problem.Workload) Builder {
	b.workload = w
	return b
}

// WithNumLevels sets the number of levels of the hierarchy.
func (b Builder) WithNumLevels(n int) Builder {
	b.numLevels = n
	return b
}

// WithPrefactor pins the tiling factor of dim at level.
func (b Builder) WithPrefactor(
	dim problem.Dimension,
	level int,
	value uint64,
) Builder {
	b.prefactors = append(slices.Clip(b.prefactors),
		prefactor{dim: dim, level: level, value: value})
	return b
}

// WithPermutationPrefix fixes the outermost part of the loop order at level.
func (b Builder) WithPermutationPrefix(
	level int,
	dims ...problem.Dimension,
) Builder {
	b.prefixes = append(slices.Clip(b.prefixes),
		levelPrefix{level: level, dims: slices.Clone(dims)})
	return b
}

// WithUnitDimensionPruning bakes dimensions whose bound is 1 into the front of
// every loop order and counts them as unit factors of every free spatial
// level.
func (b Builder) WithUnitDimensionPruning(prune bool) Builder {
	b.pruneUnitDims = prune
	return b
}

// WithSpatialLevel makes level spatial with a free split.
func (b Builder) WithSpatialLevel(level int) Builder {
	b.spatialLevels = append(slices.Clip(b.spatialLevels),
		spatialLevel{level: level})
	return b
}

// WithFixedSplit makes level spatial with the given split.
func (b Builder) WithFixedSplit(level int, split uint32) Builder {
	b.spatialLevels = append(slices.Clip(b.spatialLevels),
		spatialLevel{level: level, fixed: true, split: split})
	return b
}

// Build validates the configuration and initializes the three spaces.
func (b Builder) Build() (*MapSpace, error) {
	if err := b.workload.Validate(); err != nil {
		return nil, err
	}

	if b.numLevels < 1 {
		return nil, fmt.Errorf("%d levels: %w", b.numLevels, ErrInvalidLevel)
	}

	m := &MapSpace{
		workload:  b.workload,
		numLevels: b.numLevels,
	}

	pruned := b.unitDimensions()

	if err := b.buildIndexFactorization(&m.indexFactorization); err != nil {
		return nil, err
	}

	if err := b.buildPermutation(&m.permutation, pruned); err != nil {
		return nil, err
	}

	if err := b.buildSpatialSplit(&m.spatialSplit, len(pruned)); err != nil {
		return nil, err
	}

	return m, nil
}

func (b Builder) unitDimensions() []problem.Dimension {
	if !b.pruneUnitDims {
		return nil
	}

	var dims []problem.Dimension
	for _, d := range problem.AllDimensions() {
		if b.workload.Bounds[d] == 1 {
			dims = append(dims, d)
		}
	}

	return dims
}

func (b Builder) buildIndexFactorization(s *IndexFactorizationSpace) error {
	var order [problem.NumDimensions]int
	var pins [problem.NumDimensions]map[int]uint64

	for d := range order {
		order[d] = b.numLevels
	}

	for _, p := range b.prefactors {
		if !p.dim.Valid() {
			return fmt.Errorf("prefactor for dimension %d: %w",
				int(p.dim), ErrInvalidDimension)
		}

		if pins[p.dim] == nil {
			pins[p.dim] = make(map[int]uint64)
		}
		pins[p.dim][p.level] = p.value
	}

	if err := s.Init(b.workload, order, pins); err != nil {
		return err
	}

	s.LogSummary()

	return nil
}

func (b Builder) buildPermutation(
	s *PermutationSpace,
	pruned []problem.Dimension,
) error {
	if err := s.Init(b.numLevels); err != nil {
		return err
	}

	prefixes := make(map[int][]problem.Dimension, len(b.prefixes))
	for _, p := range b.prefixes {
		if p.level < 0 || p.level >= b.numLevels {
			return fmt.Errorf("prefix for level %d outside [0, %d): %w",
				p.level, b.numLevels, ErrInvalidLevel)
		}

		if _, dup := prefixes[p.level]; dup {
			return fmt.Errorf("level %d prefix given twice: %w",
				p.level, ErrInvalidPattern)
		}
		prefixes[p.level] = p.dims
	}

	for level := 0; level < b.numLevels; level++ {
		var err error
		prefix, ok := prefixes[level]
		if !ok && len(pruned) == 0 {
			err = s.InitLevelCanonical(level)
		} else {
			err = s.InitLevel(level, prefix, pruned)
		}

		if err != nil {
			return err
		}
	}

	s.LogSummary()

	return nil
}

func (b Builder) buildSpatialSplit(s *SpatialSplitSpace, unitFactors int) error {
	if err := s.Init(b.numLevels); err != nil {
		return err
	}

	seen := make(map[int]bool, len(b.spatialLevels))
	for _, sl := range b.spatialLevels {
		if seen[sl.level] {
			return fmt.Errorf("level %d made spatial twice: %w",
				sl.level, ErrInvalidSplit)
		}
		seen[sl.level] = true

		var err error
		if sl.fixed {
			err = s.InitLevelUserSpecified(sl.level, sl.split)
		} else {
			err = s.InitLevel(sl.level, unitFactors)
		}

		if err != nil {
			return err
		}
	}

	s.LogSummary()

	return nil
}

// MapSpace bundles the three spaces of one workload and hierarchy.
type MapSpace struct {
	workload  problem.Workload
	numLevels int

	indexFactorization IndexFactorizationSpace
	permutation        PermutationSpace
	spatialSplit       SpatialSplitSpace
}

// Workload returns the workload the space was built for.
func (m *MapSpace) Workload() problem.Workload {
	return m.workload
}

// NumLevels returns the depth of the hierarchy.
func (m *MapSpace) NumLevels() int {
	return m.numLevels
}

// IndexFactorization returns the tiling factor space.
func (m *MapSpace) IndexFactorization() *IndexFactorizationSpace {
	return &m.indexFactorization
}

// Permutation returns the loop order space.
func (m *MapSpace) Permutation() *PermutationSpace {
	return &m.permutation
}

// SpatialSplit returns the spatial split space.
func (m *MapSpace) SpatialSplit() *SpatialSplitSpace {
	return &m.spatialSplit
}

// Sizes holds the size of each space.
type Sizes struct {
	Factor      *big.Int
	Permutation *big.Int
	Split       *big.Int
}

// Product returns the number of complete mappings.
func (s Sizes) Product() *big.Int {
	p := new(big.Int).Mul(s.Factor, s.Permutation)
	return p.Mul(p, s.Split)
}

// Sizes returns the size of each space.
func (m *MapSpace) Sizes() Sizes {
	return Sizes{
		Factor:      m.indexFactorization.Size(),
		Permutation: m.permutation.Size(),
		Split:       m.spatialSplit.Size(),
	}
}

// Decode turns one id per space into a mapping.
func (m *MapSpace) Decode(ids IDs) Mapping {
	return Mapping{
		IDs:        ids,
		Factors:    m.indexFactorization.GetFactors(ids.Factor),
		LoopOrders: m.permutation.GetPatterns(ids.Permutation),
		Splits:     m.spatialSplit.GetSplits(ids.Split),
	}
}
