package numeric_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/mapspace/numeric"
)

func product(tuple []uint64) uint64 {
	p := uint64(1)
	for _, v := range tuple {
		p *= v
	}
	return p
}

var _ = Describe("Divisors", func() {
	It("should list divisors in ascending order", func() {
		Expect(numeric.Divisors(36)).To(Equal(
			[]uint64{1, 2, 3, 4, 6, 9, 12, 18, 36}))
		Expect(numeric.Divisors(1)).To(Equal([]uint64{1}))
		Expect(numeric.Divisors(13)).To(Equal([]uint64{1, 13}))
	})
})

var _ = Describe("Factors", func() {
	It("should enumerate ordered pairs", func() {
		f, err := numeric.NewFactors(12, 2, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(f.Len()).To(Equal(6))
		Expect(f.At(0)).To(Equal([]uint64{1, 12}))
		Expect(f.At(2)).To(Equal([]uint64{3, 4}))
		Expect(f.At(5)).To(Equal([]uint64{12, 1}))
	})

	DescribeTable("should count ordered 3-tuples",
		func(bound uint64, expected int) {
			f, err := numeric.NewFactors(bound, 3, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(expected))
		},
		Entry("unit", uint64(1), 1),
		Entry("prime", uint64(3), 3),
		Entry("2^3*5", uint64(40), 30),
		Entry("2^6", uint64(64), 28),
		Entry("2^5*7", uint64(224), 63),
	)

	It("should keep the product of every tuple equal to the bound", func() {
		for _, bound := range []uint64{1, 7, 40, 64, 96, 224, 512} {
			for order := 1; order <= 5; order++ {
				f, err := numeric.NewFactors(bound, order, nil)
				Expect(err).NotTo(HaveOccurred())

				seen := map[string]bool{}
				for i := 0; i < f.Len(); i++ {
					tuple := f.At(i)
					Expect(tuple).To(HaveLen(order))
					Expect(product(tuple)).To(Equal(bound))

					key := fmt.Sprint(tuple)
					Expect(seen).NotTo(HaveKey(key))
					seen[key] = true
				}
			}
		}
	})

	It("should honor pinned levels", func() {
		f, err := numeric.NewFactors(12, 3, map[int]uint64{1: 2})

		Expect(err).NotTo(HaveOccurred())
		Expect(f.Len()).To(Equal(4))
		for i := 0; i < f.Len(); i++ {
			Expect(f.Cofactor(i, 1)).To(Equal(uint64(2)))
			Expect(product(f.At(i))).To(Equal(uint64(12)))
		}
		Expect(f.At(0)).To(Equal([]uint64{1, 2, 6}))
		Expect(f.At(3)).To(Equal([]uint64{6, 2, 1}))
	})

	It("should honor a pin on the last level", func() {
		f, err := numeric.NewFactors(8, 2, map[int]uint64{1: 4})

		Expect(err).NotTo(HaveOccurred())
		Expect(f.Len()).To(Equal(1))
		Expect(f.At(0)).To(Equal([]uint64{2, 4}))
	})

	It("should reject a zero bound", func() {
		_, err := numeric.NewFactors(0, 3, nil)
		Expect(err).To(MatchError(numeric.ErrInvalidBound))
	})

	It("should reject a non-positive order", func() {
		_, err := numeric.NewFactors(4, 0, nil)
		Expect(err).To(MatchError(numeric.ErrInvalidOrder))
	})

	It("should reject a pin that does not divide the bound", func() {
		_, err := numeric.NewFactors(12, 2, map[int]uint64{0: 5})
		Expect(err).To(MatchError(numeric.ErrUnsatisfiablePins))
	})

	It("should reject a pin outside the level range", func() {
		_, err := numeric.NewFactors(12, 2, map[int]uint64{2: 1})
		Expect(err).To(MatchError(numeric.ErrUnsatisfiablePins))
	})

	It("should reject an over-constrained pin set", func() {
		_, err := numeric.NewFactors(12, 2, map[int]uint64{0: 3, 1: 3})
		Expect(err).To(MatchError(numeric.ErrUnsatisfiablePins))
	})

	It("should panic on an out-of-range index", func() {
		f, _ := numeric.NewFactors(12, 2, nil)
		Expect(func() { f.At(6) }).To(Panic())
		Expect(func() { f.Cofactor(0, 2) }).To(Panic())
	})
})
