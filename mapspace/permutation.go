package mapspace

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/sarchlab/mapspace/numeric"
	"github.com/sarchlab/mapspace/problem"
)

// Pattern is the loop order template of one level. BakedPrefix is emitted as
// is; PermutableSuffix holds the remaining dimensions in canonical order and
// is reordered by the id.
type Pattern struct {
	BakedPrefix      []problem.Dimension
	PermutableSuffix []problem.Dimension
}

type permutationLevel struct {
	pattern    Pattern
	size       *big.Int
	configured bool
}

// PermutationSpace enumerates the loop order of every level. Level 0 is the
// least significant digit of an id.
type PermutationSpace struct {
	levels      []permutationLevel
	initialized bool
}

// Init discards any previous configuration and prepares numLevels empty
// levels.
func (s *PermutationSpace) Init(numLevels int) error {
	s.levels = nil
	s.initialized = false

	if numLevels < 0 {
		return fmt.Errorf("%d levels: %w", numLevels, ErrInvalidLevel)
	}

	s.levels = make([]permutationLevel, numLevels)
	s.initialized = true

	return nil
}

// NumLevels returns the number of levels given to Init.
func (s *PermutationSpace) NumLevels() int {
	return len(s.levels)
}

// InitLevelCanonical leaves every dimension of the level free to permute.
func (s *PermutationSpace) InitLevelCanonical(level int) error {
	return s.InitLevel(level, nil, nil)
}

// InitLevel configures one level. The baked prefix is prunedDimensions
// followed by the entries of userPrefix not already pruned, both in the order
// given. All other dimensions form the permutable suffix.
func (s *PermutationSpace) InitLevel(
	level int,
	userPrefix []problem.Dimension,
	prunedDimensions []problem.Dimension,
) error {
	if err := s.checkLevel(level); err != nil {
		return err
	}

	if err := checkDimensionList("pruned dimensions", prunedDimensions); err != nil {
		return err
	}

	if err := checkDimensionList("user prefix", userPrefix); err != nil {
		return err
	}

	var inPrefix [problem.NumDimensions]bool
	baked := make([]problem.Dimension, 0, problem.NumDimensions)
	for _, d := range prunedDimensions {
		baked = append(baked, d)
		inPrefix[d] = true
	}

	for _, d := range userPrefix {
		if !inPrefix[d] {
			baked = append(baked, d)
			inPrefix[d] = true
		}
	}

	suffix := make([]problem.Dimension, 0, problem.NumDimensions-len(baked))
	for _, d := range problem.AllDimensions() {
		if !inPrefix[d] {
			suffix = append(suffix, d)
		}
	}

	s.levels[level] = permutationLevel{
		pattern: Pattern{
			BakedPrefix:      baked,
			PermutableSuffix: suffix,
		},
		size:       numeric.Factorial(len(suffix)),
		configured: true,
	}

	Trace("Permutation level",
		"Level", level,
		"BakedPrefix", problem.FormatDimensions(baked),
		"PermutableSuffix", problem.FormatDimensions(suffix),
	)

	return nil
}

// Pattern returns the template of a configured level.
func (s *PermutationSpace) Pattern(level int) Pattern {
	l := s.mustGetLevel(level)

	return Pattern{
		BakedPrefix:      append([]problem.Dimension(nil), l.pattern.BakedPrefix...),
		PermutableSuffix: append([]problem.Dimension(nil), l.pattern.PermutableSuffix...),
	}
}

// Size returns the number of loop order combinations across all levels. It
// panics if a level has not been configured.
func (s *PermutationSpace) Size() *big.Int {
	s.mustBeInitialized()

	size := big.NewInt(1)
	for level := range s.levels {
		size.Mul(size, s.mustGetLevel(level).size)
	}

	return size
}

// GetPatterns returns the loop order of every level for the given id.
func (s *PermutationSpace) GetPatterns(id *big.Int) [][]problem.Dimension {
	numeric.MustBeInRange(id, s.Size())

	out := make([][]problem.Dimension, 0, len(s.levels))
	rest := new(big.Int).Set(id)
	digit := new(big.Int)
	for i := range s.levels {
		l := &s.levels[i]

		order := make([]problem.Dimension, 0, problem.NumDimensions)
		order = append(order, l.pattern.BakedPrefix...)

		if len(l.pattern.PermutableSuffix) > 0 {
			rest.QuoRem(rest, l.size, digit)
			order = append(order,
				numeric.Permute(l.pattern.PermutableSuffix, digit)...)
		}

		out = append(out, order)
	}

	return out
}

// LogSummary writes the space size at Info level and the per-level sizes at
// Debug level, and publishes the size gauge.
func (s *PermutationSpace) LogSummary() {
	size := s.Size()

	slog.Info("Initializing permutation subspace", "Size", size.String())
	for level, l := range s.levels {
		slog.Debug("Permutation options",
			"Level", level,
			"Options", l.size.String(),
		)
	}

	recordCardinality(spacePermutation, size)
}

func (s *PermutationSpace) checkLevel(level int) error {
	if !s.initialized {
		return fmt.Errorf("permutation space not initialized: %w", ErrInvalidLevel)
	}

	if level < 0 || level >= len(s.levels) {
		return fmt.Errorf("level %d outside [0, %d): %w",
			level, len(s.levels), ErrInvalidLevel)
	}

	return nil
}

func (s *PermutationSpace) mustGetLevel(level int) *permutationLevel {
	s.mustBeInitialized()

	if level < 0 || level >= len(s.levels) {
		panic(fmt.Sprintf("level %d outside [0, %d)", level, len(s.levels)))
	}

	l := &s.levels[level]
	if !l.configured {
		panic(fmt.Sprintf("permutation level %d is not initialized", level))
	}

	return l
}

func (s *PermutationSpace) mustBeInitialized() {
	if !s.initialized {
		panic("permutation space is not initialized")
	}
}

func checkDimensionList(what string, dims []problem.Dimension) error {
	var seen [problem.NumDimensions]bool
	for _, d := range dims {
		if !d.Valid() {
			return fmt.Errorf("%s: invalid dimension %d: %w",
				what, int(d), ErrInvalidPattern)
		}

		if seen[d] {
			return fmt.Errorf("%s: %s listed twice: %w",
				what, d.Name(), ErrInvalidPattern)
		}
		seen[d] = true
	}

	return nil
}
