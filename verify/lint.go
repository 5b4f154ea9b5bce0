package verify

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
)

// decodeFunc decodes id and returns a key identifying the decoded value
// together with the issues found in it.
type decodeFunc func(id *big.Int) (string, []Issue)

// linter holds what the checks need from a MapSpace. Prefixes are copied
// once per run rather than once per id.
type linter struct {
	m         *mapspace.MapSpace
	bounds    problem.Bounds
	numLevels int
	prefixes  [][]problem.Dimension
}

func newLinter(m *mapspace.MapSpace) *linter {
	l := &linter{
		m:         m,
		bounds:    m.Workload().Bounds,
		numLevels: m.NumLevels(),
	}

	for level := 0; level < l.numLevels; level++ {
		l.prefixes = append(l.prefixes, m.Permutation().Pattern(level).BakedPrefix)
	}

	return l
}

func (l *linter) factorPoint(id *big.Int) (string, []Issue) {
	factors := l.m.IndexFactorization().GetFactors(id)
	return fmt.Sprint(factors), l.lintFactors(id, factors)
}

func (l *linter) permutationPoint(id *big.Int) (string, []Issue) {
	orders := l.m.Permutation().GetPatterns(id)

	var key strings.Builder
	for _, order := range orders {
		key.WriteString(problem.FormatDimensions(order))
		key.WriteByte('|')
	}

	return key.String(), l.lintPatterns(id, orders)
}

func (l *linter) splitPoint(id *big.Int) (string, []Issue) {
	splits := l.m.SpatialSplit().GetSplits(id)
	return fmt.Sprint(splits), l.lintSplits(id, splits)
}

func (l *linter) lintFactors(
	id *big.Int,
	factors [problem.NumDimensions][]uint64,
) []Issue {
	var issues []Issue

	for _, dim := range problem.AllDimensions() {
		bound := l.bounds[dim]
		f := factors[dim]

		if len(f) != l.numLevels {
			issues = append(issues, Issue{
				Type:  IssueProduct,
				Space: SpaceFactor,
				ID:    id,
				Message: fmt.Sprintf("%s has %d factors for %d levels",
					dim.Name(), len(f), l.numLevels),
				Details: map[string]interface{}{"dimension": dim.Name()},
			})
			continue
		}

		// Dividing keeps a wrong tuple from overflowing the product.
		rest := bound
		ok := true
		for _, v := range f {
			if v == 0 || rest%v != 0 {
				ok = false
				break
			}
			rest /= v
		}

		if !ok || rest != 1 {
			issues = append(issues, Issue{
				Type:  IssueProduct,
				Space: SpaceFactor,
				ID:    id,
				Message: fmt.Sprintf("%s factors %v do not multiply to %d",
					dim.Name(), f, bound),
				Details: map[string]interface{}{
					"dimension": dim.Name(),
					"factors":   f,
					"bound":     bound,
				},
			})
		}
	}

	return issues
}

func (l *linter) lintPatterns(id *big.Int, orders [][]problem.Dimension) []Issue {
	var issues []Issue

	if len(orders) != l.numLevels {
		return append(issues, Issue{
			Type:    IssueOrder,
			Space:   SpacePermutation,
			ID:      id,
			Message: fmt.Sprintf("%d loop orders for %d levels", len(orders), l.numLevels),
		})
	}

	for level, order := range orders {
		if msg := checkPermutation(order); msg != "" {
			issues = append(issues, Issue{
				Type:    IssueOrder,
				Space:   SpacePermutation,
				ID:      id,
				Message: fmt.Sprintf("level %d: %s", level, msg),
				Details: map[string]interface{}{"level": level},
			})
			continue
		}

		prefix := l.prefixes[level]
		if !hasPrefix(order, prefix) {
			issues = append(issues, Issue{
				Type:  IssueOrder,
				Space: SpacePermutation,
				ID:    id,
				Message: fmt.Sprintf("level %d: order %s does not start with %s",
					level,
					problem.FormatDimensions(order),
					problem.FormatDimensions(prefix)),
				Details: map[string]interface{}{"level": level},
			})
		}
	}

	return issues
}

func (l *linter) lintSplits(id *big.Int, splits mapspace.Splits) []Issue {
	var issues []Issue

	lastLevel := -1
	for _, s := range splits {
		var msg string
		switch {
		case s.Level <= lastLevel:
			msg = fmt.Sprintf("level %d reported after level %d", s.Level, lastLevel)
		case !l.m.SpatialSplit().IsSpatial(s.Level):
			msg = fmt.Sprintf("level %d is not spatial", s.Level)
		case s.Split > problem.NumDimensions:
			msg = fmt.Sprintf("level %d: split %d exceeds %d dimensions",
				s.Level, s.Split, problem.NumDimensions)
		}

		if msg != "" {
			issues = append(issues, Issue{
				Type:    IssueSplit,
				Space:   SpaceSplit,
				ID:      id,
				Message: msg,
				Details: map[string]interface{}{"level": s.Level},
			})
		}

		lastLevel = s.Level
	}

	return issues
}

func checkPermutation(order []problem.Dimension) string {
	if len(order) != problem.NumDimensions {
		return fmt.Sprintf("%d dimensions in loop order", len(order))
	}

	var seen [problem.NumDimensions]bool
	for _, d := range order {
		if !d.Valid() {
			return fmt.Sprintf("invalid dimension %d", int(d))
		}

		if seen[d] {
			return fmt.Sprintf("%s appears twice", d.Name())
		}
		seen[d] = true
	}

	return ""
}

func hasPrefix(order, prefix []problem.Dimension) bool {
	return len(prefix) <= len(order) && slices.Equal(order[:len(prefix)], prefix)
}
