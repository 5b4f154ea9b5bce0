// Package numeric provides the combinatorial building blocks of the mapping
// spaces: ordered cofactor decomposition, a mixed-radix counter over wide
// integers and factoradic permutation ranking.
package numeric

import (
	"errors"
	"fmt"
	"slices"
)

// Configuration errors reported by NewFactors.
var (
	ErrInvalidBound      = errors.New("bound must be positive")
	ErrInvalidOrder      = errors.New("cofactor order must be positive")
	ErrUnsatisfiablePins = errors.New("pinned cofactors cannot be satisfied")
)

// Factors is the list of every ordered way to write a bound as the product of
// Order() positive cofactors, optionally with some positions pinned to a
// caller-specified value.
//
// Tuples are ordered lexicographically with position 0 most significant.
// Each non-final position walks the divisors of the remaining quotient in
// ascending order and the final position takes whatever is left.
type Factors struct {
	bound  uint64
	order  int
	tuples []uint64 // Len() * order cofactors, row-major
}

// NewFactors enumerates the cofactor tuples of bound. A nil or empty pins map
// leaves every position free.
func NewFactors(bound uint64, order int, pins map[int]uint64) (*Factors, error) {
	if bound == 0 {
		return nil, fmt.Errorf("factorizing %d: %w", bound, ErrInvalidBound)
	}

	if order < 1 {
		return nil, fmt.Errorf("factorizing %d into %d cofactors: %w",
			bound, order, ErrInvalidOrder)
	}

	for level, v := range pins {
		if level < 0 || level >= order {
			return nil, fmt.Errorf("pin at level %d outside [0, %d): %w",
				level, order, ErrUnsatisfiablePins)
		}

		if v == 0 || bound%v != 0 {
			return nil, fmt.Errorf("pin %d at level %d does not divide %d: %w",
				v, level, bound, ErrUnsatisfiablePins)
		}
	}

	f := &Factors{bound: bound, order: order}
	g := factorGenerator{
		divisors: Divisors(bound),
		pins:     pins,
		order:    order,
		current:  make([]uint64, order),
		out:      &f.tuples,
	}
	g.generate(0, bound)

	if len(f.tuples) == 0 {
		return nil, fmt.Errorf("factorizing %d with pins %v: %w",
			bound, pins, ErrUnsatisfiablePins)
	}

	return f, nil
}

type factorGenerator struct {
	divisors []uint64
	pins     map[int]uint64
	order    int
	current  []uint64
	out      *[]uint64
}

func (g *factorGenerator) generate(level int, remaining uint64) {
	pin, pinned := g.pins[level]

	if level == g.order-1 {
		if pinned && pin != remaining {
			return
		}

		g.current[level] = remaining
		*g.out = append(*g.out, g.current...)

		return
	}

	if pinned {
		if remaining%pin != 0 {
			return
		}

		g.current[level] = pin
		g.generate(level+1, remaining/pin)

		return
	}

	for _, d := range g.divisors {
		if d > remaining {
			break
		}

		if remaining%d != 0 {
			continue
		}

		g.current[level] = d
		g.generate(level+1, remaining/d)
	}
}

// Len returns the number of cofactor tuples.
func (f *Factors) Len() int {
	return len(f.tuples) / f.order
}

// Bound returns the factorized value.
func (f *Factors) Bound() uint64 {
	return f.bound
}

// Order returns the number of cofactors in each tuple.
func (f *Factors) Order() int {
	return f.order
}

// At returns a copy of the i-th cofactor tuple.
func (f *Factors) At(i int) []uint64 {
	f.mustHaveIndex(i)

	tuple := make([]uint64, f.order)
	copy(tuple, f.tuples[i*f.order:(i+1)*f.order])

	return tuple
}

// Cofactor returns position level of the i-th tuple without copying the
// tuple.
func (f *Factors) Cofactor(i, level int) uint64 {
	f.mustHaveIndex(i)

	if level < 0 || level >= f.order {
		panic(fmt.Sprintf("level %d outside [0, %d)", level, f.order))
	}

	return f.tuples[i*f.order+level]
}

func (f *Factors) mustHaveIndex(i int) {
	if i < 0 || i >= f.Len() {
		panic(fmt.Sprintf("factor index %d outside [0, %d)", i, f.Len()))
	}
}

// Divisors returns every divisor of n in ascending order.
func Divisors(n uint64) []uint64 {
	if n == 0 {
		return nil
	}

	var small, large []uint64
	for d := uint64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}

		small = append(small, d)
		if d != n/d {
			large = append(large, n/d)
		}
	}

	slices.Reverse(large)

	return append(small, large...)
}
