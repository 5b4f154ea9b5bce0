package verify_test

import (
	"bytes"
	"context"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
	"github.com/sarchlab/mapspace/verify"
)

var _ = Describe("Run", func() {
	var m *mapspace.MapSpace

	BeforeEach(func() {
		var err error
		m, err = mapspace.MakeBuilder().
			WithWorkload(problem.NewWorkload("TEST",
				problem.Bounds{3, 3, 40, 40, 64, 1, 1})).
			WithNumLevels(2).
			WithSpatialLevel(1).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should find no issue in a well-formed space", func() {
		report, err := verify.Run(context.Background(), m, verify.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(report.OK()).To(BeTrue())
		Expect(report.Workload).To(Equal("TEST"))
		Expect(report.Spaces).To(HaveLen(3))

		factor := report.Spaces[0]
		Expect(factor.Space).To(Equal(verify.SpaceFactor))
		Expect(factor.Exhaustive).To(BeTrue())
		Expect(factor.Checked).To(Equal(uint64(2 * 2 * 8 * 8 * 7)))

		perm := report.Spaces[1]
		Expect(perm.Exhaustive).To(BeFalse())
		Expect(perm.Checked).To(Equal(uint64(1 << 16)))

		split := report.Spaces[2]
		Expect(split.Exhaustive).To(BeTrue())
		Expect(split.Checked).To(Equal(uint64(8)))

		total := new(big.Int).Mul(big.NewInt(1792*8), big.NewInt(5040*5040))
		Expect(report.MappingCount().Cmp(total)).To(BeZero())
	})

	It("should give the same result with a single worker", func() {
		report, err := verify.Run(context.Background(), m,
			verify.Options{Limit: 500, Workers: 1})
		Expect(err).NotTo(HaveOccurred())

		Expect(report.OK()).To(BeTrue())
		for _, s := range report.Spaces {
			Expect(s.Checked).To(BeNumerically("<=", 500))
		}
	})

	It("should reject invalid options", func() {
		_, err := verify.Run(context.Background(), m, verify.Options{Workers: 1})
		Expect(err).To(MatchError(verify.ErrInvalidOptions))

		_, err = verify.Run(context.Background(), m, verify.Options{Limit: 10})
		Expect(err).To(MatchError(verify.ErrInvalidOptions))
	})

	It("should stop on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := verify.Run(ctx, m, verify.DefaultOptions())
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should write a readable report", func() {
		report, err := verify.Run(context.Background(), m,
			verify.Options{Limit: 64, Workers: 2})
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		report.WriteReport(&buf)

		out := buf.String()
		Expect(out).To(ContainSubstring("MAPSPACE VERIFICATION REPORT: TEST, 2 levels"))
		Expect(out).To(ContainSubstring("index_factorization"))
		Expect(out).To(ContainSubstring("sampled"))
		Expect(out).To(ContainSubstring("No issues found."))
	})
})

var _ = Describe("Report", func() {
	It("should list issues by type", func() {
		report := &verify.Report{
			Workload:  "custom",
			NumLevels: 1,
			Spaces: []verify.SpaceResult{
				{Space: verify.SpaceFactor, Size: big.NewInt(4), Checked: 4, Exhaustive: true},
			},
			Issues: []verify.Issue{
				{
					Type:    verify.IssueCollision,
					Space:   verify.SpaceFactor,
					ID:      big.NewInt(3),
					Message: "decodes to the same value as id 1",
				},
			},
		}

		Expect(report.OK()).To(BeFalse())
		Expect(report.IssuesOf(verify.IssueCollision)).To(HaveLen(1))
		Expect(report.IssuesOf(verify.IssueOrder)).To(BeEmpty())

		var buf bytes.Buffer
		report.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("COLLISION ISSUES (1):"))
		Expect(buf.String()).To(ContainSubstring("[index_factorization id=3]"))
	})
})
