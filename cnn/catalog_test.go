package cnn_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/mapspace/cnn"
	"github.com/sarchlab/mapspace/problem"
)

var _ = Describe("Catalog", func() {
	var catalog *cnn.Catalog

	BeforeEach(func() {
		catalog = cnn.NewCatalog()
	})

	It("should hold the reference layers", func() {
		Expect(catalog.Len()).To(Equal(74))
		Expect(catalog.Names()).To(ContainElements(
			"TEST", "ALEX_conv1", "VGG_conv5_3", "inception_5b-5x5"))
		Expect(catalog.Layers()[0].Name).To(Equal("TEST"))
	})

	It("should look up the TEST layer", func() {
		b, err := catalog.Lookup("TEST", false)

		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(problem.Bounds{3, 3, 40, 40, 64, 1, 1}))
	})

	It("should pad primes when asked", func() {
		raw, err := catalog.Lookup("ALEX_conv1", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw[problem.P]).To(Equal(uint64(57)))

		padded, err := catalog.Lookup("ALEX_conv1", true)
		Expect(err).NotTo(HaveOccurred())
		Expect(padded[problem.P]).To(Equal(uint64(60)))
		Expect(padded[problem.Q]).To(Equal(uint64(60)))
		Expect(padded[problem.R]).To(Equal(uint64(3)))
	})

	It("should report unknown layers with a typed error", func() {
		_, err := catalog.Lookup("RESNET_conv1", true)

		Expect(errors.Is(err, cnn.ErrUnknownLayer)).To(BeTrue())

		var unknown *cnn.UnknownLayerError
		Expect(errors.As(err, &unknown)).To(BeTrue())
		Expect(unknown.Name).To(Equal("RESNET_conv1"))
	})

	It("should not expose its internal storage", func() {
		layers := catalog.Layers()
		layers[0].Bounds[problem.R] = 99

		b, _ := catalog.Lookup("TEST", false)
		Expect(b[problem.R]).To(Equal(uint64(3)))
	})

	It("should reject duplicate names", func() {
		_, err := cnn.NewCatalogFrom([]cnn.Layer{
			{Name: "a", Bounds: problem.Bounds{1, 1, 1, 1, 1, 1, 1}},
			{Name: "a", Bounds: problem.Bounds{1, 1, 1, 1, 1, 1, 1}},
		})
		Expect(err).To(HaveOccurred())
	})

	It("should reject zero bounds", func() {
		_, err := cnn.NewCatalogFrom([]cnn.Layer{
			{Name: "a", Bounds: problem.Bounds{1, 1, 1, 0, 1, 1, 1}},
		})
		Expect(err).To(HaveOccurred())
	})

	It("should only substitute listed primes", func() {
		b := cnn.PadPrimes(problem.Bounds{11, 13, 27, 55, 57, 7, 1})
		Expect(b).To(Equal(problem.Bounds{12, 15, 28, 56, 60, 7, 1}))
	})
})
