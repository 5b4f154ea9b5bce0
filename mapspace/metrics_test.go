package mapspace_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
)

func cardinalityGauge(space string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	Expect(err).NotTo(HaveOccurred())

	for _, mf := range families {
		if mf.GetName() != "mapspace_cardinality_log2" {
			continue
		}

		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "space" && lp.GetValue() == space {
					return m.GetGauge().GetValue()
				}
			}
		}
	}

	Fail("no cardinality gauge for " + space)

	return 0
}

var _ = Describe("Cardinality gauge", func() {
	It("should be published for every space by Build", func() {
		_, err := mapspace.MakeBuilder().
			WithWorkload(testWorkload()).
			WithSpatialLevel(1).
			Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(cardinalityGauge("index_factorization")).
			To(BeNumerically("~", math.Log2(226800), 1e-9))
		Expect(cardinalityGauge("permutation")).
			To(BeNumerically("~", 3*math.Log2(5040), 1e-9))
		Expect(cardinalityGauge("spatial_split")).
			To(BeNumerically("~", 3, 1e-9))
	})

	It("should be published by LogSummary and not by configuration alone", func() {
		_, err := mapspace.MakeBuilder().
			WithWorkload(testWorkload()).
			WithSpatialLevel(1).
			Build()
		Expect(err).NotTo(HaveOccurred())

		factors := &mapspace.IndexFactorizationSpace{}
		var noPins [problem.NumDimensions]map[int]uint64
		Expect(factors.Init(problem.Bounds{2, 1, 1, 1, 1, 1, 1},
			uniformOrder(1), noPins)).To(Succeed())

		perms := &mapspace.PermutationSpace{}
		Expect(perms.Init(1)).To(Succeed())
		Expect(perms.InitLevel(0, problem.AllDimensions()[:5], nil)).To(Succeed())

		splits := &mapspace.SpatialSplitSpace{}
		Expect(splits.Init(1)).To(Succeed())
		Expect(splits.InitLevel(0, 6)).To(Succeed())

		Expect(cardinalityGauge("index_factorization")).
			To(BeNumerically("~", math.Log2(226800), 1e-9))
		Expect(cardinalityGauge("permutation")).
			To(BeNumerically("~", 3*math.Log2(5040), 1e-9))
		Expect(cardinalityGauge("spatial_split")).
			To(BeNumerically("~", 3, 1e-9))

		factors.LogSummary()
		perms.LogSummary()
		splits.LogSummary()

		Expect(cardinalityGauge("index_factorization")).To(BeZero())
		Expect(cardinalityGauge("permutation")).To(BeNumerically("~", 1, 1e-9))
		Expect(cardinalityGauge("spatial_split")).To(BeNumerically("~", 1, 1e-9))
	})
})
