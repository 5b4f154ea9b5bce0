package verify

import (
	"math/big"

	g "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
)

var _ = g.Describe("linter", func() {
	var l *linter

	g.BeforeEach(func() {
		m, err := mapspace.MakeBuilder().
			WithWorkload(problem.NewWorkload("small",
				problem.Bounds{2, 1, 4, 1, 1, 1, 1})).
			WithNumLevels(2).
			WithPermutationPrefix(0, problem.K).
			WithSpatialLevel(0).
			Build()
		Expect(err).NotTo(HaveOccurred())

		l = newLinter(m)
	})

	g.It("should flag factors that do not multiply to the bound", func() {
		var factors [problem.NumDimensions][]uint64
		for d := range factors {
			factors[d] = []uint64{1, 1}
		}
		factors[problem.R] = []uint64{2, 1}
		factors[problem.P] = []uint64{2, 4}
		factors[problem.C] = []uint64{0, 1}
		factors[problem.K] = []uint64{1}

		issues := l.lintFactors(big.NewInt(0), factors)
		Expect(issues).To(HaveLen(3))
		for _, issue := range issues {
			Expect(issue.Type).To(Equal(IssueProduct))
		}
	})

	g.It("should flag malformed loop orders", func() {
		good := []problem.Dimension{
			problem.K, problem.R, problem.S, problem.P,
			problem.Q, problem.C, problem.N}
		dup := []problem.Dimension{
			problem.K, problem.K, problem.S, problem.P,
			problem.Q, problem.C, problem.N}

		Expect(l.lintPatterns(big.NewInt(0),
			[][]problem.Dimension{good, problem.AllDimensions()})).To(BeEmpty())

		issues := l.lintPatterns(big.NewInt(0),
			[][]problem.Dimension{problem.AllDimensions(), dup})
		Expect(issues).To(HaveLen(2))
		Expect(issues[0].Message).To(ContainSubstring("does not start with K"))
		Expect(issues[1].Message).To(ContainSubstring("K appears twice"))

		Expect(l.lintPatterns(big.NewInt(0), [][]problem.Dimension{good})).
			To(HaveLen(1))
	})

	g.It("should flag malformed splits", func() {
		Expect(l.lintSplits(big.NewInt(0),
			mapspace.Splits{{Level: 0, Split: 7}})).To(BeEmpty())

		issues := l.lintSplits(big.NewInt(0), mapspace.Splits{
			{Level: 0, Split: 8},
			{Level: 1, Split: 1},
			{Level: 0, Split: 1},
		})
		Expect(issues).To(HaveLen(3))
		Expect(issues[0].Message).To(ContainSubstring("exceeds"))
		Expect(issues[1].Message).To(ContainSubstring("not spatial"))
		Expect(issues[2].Message).To(ContainSubstring("reported after"))
	})
})

var _ = g.Describe("sampler", func() {
	g.It("should cover a small space exactly", func() {
		s := newSampler(big.NewInt(5), 10)

		Expect(s.exhaustive()).To(BeTrue())
		Expect(s.n).To(Equal(uint64(5)))
		Expect(s.id(4).Int64()).To(Equal(int64(4)))
	})

	g.It("should spread samples over a large space", func() {
		size := new(big.Int).Lsh(big.NewInt(1), 80)
		s := newSampler(size, 10)

		Expect(s.exhaustive()).To(BeFalse())
		Expect(s.id(0).Sign()).To(BeZero())

		last := new(big.Int).Sub(size, big.NewInt(1))
		Expect(s.id(9).Cmp(last)).To(BeZero())

		for i := uint64(1); i < 10; i++ {
			Expect(s.id(i).Cmp(s.id(i - 1))).To(Equal(1))
		}
	})

	g.It("should keep the first id when only one sample is allowed", func() {
		s := newSampler(big.NewInt(100), 1)
		Expect(s.id(0).Sign()).To(BeZero())
	})
})

var _ = g.Describe("findCollisions", func() {
	g.It("should report every repeated key", func() {
		issues := findCollisions(SpaceSplit, []chunkResult{
			{points: []point{{big.NewInt(0), "a"}, {big.NewInt(1), "b"}}},
			{points: []point{{big.NewInt(2), "a"}, {big.NewInt(3), "a"}}},
		})

		Expect(issues).To(HaveLen(2))
		Expect(issues[0].Type).To(Equal(IssueCollision))
		Expect(issues[0].ID.Int64()).To(Equal(int64(2)))
		Expect(issues[1].Details["first"]).To(Equal("0"))
	})
})
