// Package verify checks that the spaces of a MapSpace behave as bijections
// from ids to mapping parts.
//
// Every space goes through two stages:
//
// 1. Lint (lint.go): checks on each decoded value
//   - PRODUCT: the tiling factors of a dimension multiply to its bound
//   - ORDER: each loop order holds every dimension once and starts with the
//     level's baked prefix
//   - SPLIT: splits are reported for spatial levels only, in level order,
//     and never exceed the number of dimensions
//
// 2. Sweep (sweep.go): ids are decoded in parallel and two ids decoding to
// the same value are reported as a COLLISION.
//
// A space no larger than Options.Limit is swept exhaustively, so a clean
// report proves the decode is injective. Larger spaces are sampled at evenly
// spaced ids that always include the first and the last.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"runtime"

	"github.com/sarchlab/mapspace/mapspace"
)

// ErrInvalidOptions is returned when a sweep is asked for no ids or no
// workers.
var ErrInvalidOptions = errors.New("invalid verify options")

// IssueType categorizes issues.
type IssueType string

const (
	IssueProduct   IssueType = "PRODUCT"   // factors do not multiply to the bound
	IssueOrder     IssueType = "ORDER"     // malformed loop order
	IssueSplit     IssueType = "SPLIT"     // malformed spatial split
	IssueCollision IssueType = "COLLISION" // two ids decode to the same value
)

// Space names one of the three spaces of a MapSpace.
type Space string

const (
	SpaceFactor      Space = "index_factorization"
	SpacePermutation Space = "permutation"
	SpaceSplit       Space = "spatial_split"
)

// Issue is a single problem found while decoding an id.
type Issue struct {
	Type    IssueType
	Space   Space
	ID      *big.Int
	Message string
	Details map[string]interface{}
}

// Options controls how many ids are decoded and by how many goroutines.
type Options struct {
	Limit   uint64 // ids decoded per space
	Workers int
}

// DefaultOptions decodes up to 65536 ids per space on every available CPU.
func DefaultOptions() Options {
	return Options{
		Limit:   1 << 16,
		Workers: runtime.GOMAXPROCS(0),
	}
}

func (o Options) validate() error {
	if o.Limit == 0 {
		return fmt.Errorf("limit must be positive: %w", ErrInvalidOptions)
	}

	if o.Workers < 1 {
		return fmt.Errorf("%d workers: %w", o.Workers, ErrInvalidOptions)
	}

	return nil
}

// Run sweeps the three spaces of m and collects the issues found. An error
// is returned only for bad options or a cancelled context.
func Run(
	ctx context.Context,
	m *mapspace.MapSpace,
	opts Options,
) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Workload:  m.Workload().Name,
		NumLevels: m.NumLevels(),
	}

	l := newLinter(m)
	sizes := m.Sizes()

	sweeps := []struct {
		space  Space
		size   *big.Int
		decode decodeFunc
	}{
		{SpaceFactor, sizes.Factor, l.factorPoint},
		{SpacePermutation, sizes.Permutation, l.permutationPoint},
		{SpaceSplit, sizes.Split, l.splitPoint},
	}

	for _, s := range sweeps {
		result, issues, err := sweep(ctx, s.space, s.size, opts, s.decode)
		if err != nil {
			return nil, fmt.Errorf("sweeping %s: %w", s.space, err)
		}

		report.Spaces = append(report.Spaces, result)
		report.Issues = append(report.Issues, issues...)
	}

	slog.Info("Verification finished",
		"Workload", report.Workload,
		"Issues", len(report.Issues),
	)

	return report, nil
}
