package verify

import (
	"context"
	"log/slog"
	"math/big"

	"golang.org/x/sync/errgroup"
)

const chunksPerWorker = 4

type point struct {
	id  *big.Int
	key string
}

type chunkResult struct {
	points []point
	issues []Issue
}

// SpaceResult summarizes the sweep of one space.
type SpaceResult struct {
	Space      Space
	Size       *big.Int
	Checked    uint64
	Exhaustive bool
}

// sampler maps sample indices in [0, n) onto ids in [0, size). With n equal
// to size it is the identity; otherwise the ids are spread evenly and the
// first and last ids are always included.
type sampler struct {
	size *big.Int
	n    uint64
}

func newSampler(size *big.Int, limit uint64) sampler {
	if size.IsUint64() && size.Uint64() <= limit {
		return sampler{size: size, n: size.Uint64()}
	}

	return sampler{size: size, n: limit}
}

func (s sampler) exhaustive() bool {
	return s.size.IsUint64() && s.n == s.size.Uint64()
}

func (s sampler) id(i uint64) *big.Int {
	if s.exhaustive() || s.n == 1 {
		return new(big.Int).SetUint64(i)
	}

	// i * (size-1) / (n-1) grows by at least one per step as size > n.
	id := new(big.Int).Sub(s.size, big.NewInt(1))
	id.Mul(id, new(big.Int).SetUint64(i))

	return id.Quo(id, new(big.Int).SetUint64(s.n-1))
}

func sweep(
	ctx context.Context,
	space Space,
	size *big.Int,
	opts Options,
	decode decodeFunc,
) (SpaceResult, []Issue, error) {
	s := newSampler(size, opts.Limit)

	slog.Info("Sweeping space",
		"Space", string(space),
		"Size", size.String(),
		"Samples", s.n,
		"Exhaustive", s.exhaustive(),
	)

	numChunks := uint64(opts.Workers * chunksPerWorker)
	if numChunks > s.n {
		numChunks = s.n
	}

	results := make([]chunkResult, numChunks)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for c := uint64(0); c < numChunks; c++ {
		c := c
		lo := s.n * c / numChunks
		hi := s.n * (c + 1) / numChunks

		g.Go(func() error {
			r := chunkResult{points: make([]point, 0, hi-lo)}
			for i := lo; i < hi; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}

				id := s.id(i)
				key, issues := decode(id)
				r.points = append(r.points, point{id: id, key: key})
				r.issues = append(r.issues, issues...)
			}

			results[c] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SpaceResult{}, nil, err
	}

	issues := findCollisions(space, results)
	for _, r := range results {
		issues = append(issues, r.issues...)
	}

	result := SpaceResult{
		Space:      space,
		Size:       new(big.Int).Set(size),
		Checked:    s.n,
		Exhaustive: s.exhaustive(),
	}

	slog.Debug("Space swept", "Space", string(space), "Issues", len(issues))

	return result, issues, nil
}

func findCollisions(space Space, results []chunkResult) []Issue {
	var issues []Issue

	seen := make(map[string]*big.Int)
	for _, r := range results {
		for _, p := range r.points {
			first, dup := seen[p.key]
			if !dup {
				seen[p.key] = p.id
				continue
			}

			issues = append(issues, Issue{
				Type:    IssueCollision,
				Space:   space,
				ID:      p.id,
				Message: "decodes to the same value as id " + first.String(),
				Details: map[string]interface{}{
					"first": first.String(),
					"value": p.key,
				},
			})
		}
	}

	return issues
}
