package cnn_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/mapspace/cnn"
	"github.com/sarchlab/mapspace/problem"
)

var _ = Describe("WorkloadConfig", func() {
	var catalog *cnn.Catalog

	BeforeEach(func() {
		catalog = cnn.NewCatalog()
	})

	It("should resolve a layer with defaults", func() {
		w, err := cnn.DefaultWorkloadConfig("ALEX_conv3").Resolve(catalog)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Name).To(Equal("ALEX_conv3"))
		Expect(w.Bounds[problem.P]).To(Equal(uint64(15)))
		Expect(w.WStride).To(Equal(1))
		Expect(w.Densities).To(Equal(problem.UniformDensities(1)))
	})

	It("should apply overrides on top of the layer", func() {
		cfg := cnn.DefaultWorkloadConfig("TEST")
		cfg.Overrides[problem.N] = 16
		cfg.HStride = 2

		w, err := cfg.Resolve(catalog)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Bounds).To(Equal(problem.Bounds{3, 3, 40, 40, 64, 1, 16}))
		Expect(w.HStride).To(Equal(2))
	})

	It("should prefer the common density", func() {
		common := 0.5
		dens := problem.Densities{0.1, 0.2, 0.3}
		cfg := cnn.DefaultWorkloadConfig("TEST")
		cfg.CommonDensity = &common
		cfg.Densities = &dens

		w, err := cfg.Resolve(catalog)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Densities).To(Equal(problem.UniformDensities(0.5)))
	})

	It("should accept explicit densities", func() {
		dens := problem.Densities{0.1, 0.2, 0.3}
		cfg := cnn.DefaultWorkloadConfig("TEST")
		cfg.Densities = &dens

		w, err := cfg.Resolve(catalog)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Densities).To(Equal(dens))
	})

	It("should accept fully explicit bounds", func() {
		cfg := cnn.WorkloadConfig{
			Overrides: problem.Bounds{1, 1, 8, 8, 16, 16, 1},
		}

		w, err := cfg.Resolve(catalog)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Name).To(Equal("custom"))
		Expect(w.Bounds).To(Equal(cfg.Overrides))
	})

	It("should require every bound without a layer", func() {
		cfg := cnn.WorkloadConfig{
			Overrides: problem.Bounds{1, 1, 8, 8, 16, 0, 1},
		}

		_, err := cfg.Resolve(catalog)

		Expect(err).To(MatchError(cnn.ErrMissingBound))
	})

	It("should surface unknown layers", func() {
		_, err := cnn.DefaultWorkloadConfig("nope").Resolve(catalog)
		Expect(err).To(MatchError(cnn.ErrUnknownLayer))
	})

	It("should reject invalid parameters", func() {
		bad := 2.0
		cfg := cnn.DefaultWorkloadConfig("TEST")
		cfg.CommonDensity = &bad

		_, err := cfg.Resolve(catalog)

		Expect(err).To(MatchError(problem.ErrInvalidWorkload))
	})
})
