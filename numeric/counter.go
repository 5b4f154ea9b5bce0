package numeric

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidRadix is returned when a counter axis has fewer than one value.
var ErrInvalidRadix = errors.New("radix must be at least 1")

// CartesianCounter addresses the cartesian product of several axes with a
// single integer. Axis 0 is the least significant digit.
//
// A counter is immutable after construction. Decode allocates its result, so
// one counter can be shared by any number of goroutines.
type CartesianCounter struct {
	radices []*big.Int
	total   *big.Int
}

// NewCartesianCounter creates a counter over the given radices. The radices
// are copied.
func NewCartesianCounter(radices []*big.Int) (*CartesianCounter, error) {
	c := &CartesianCounter{
		radices: make([]*big.Int, len(radices)),
		total:   big.NewInt(1),
	}

	for i, r := range radices {
		if r == nil || r.Sign() <= 0 {
			return nil, fmt.Errorf("axis %d radix %v: %w", i, r, ErrInvalidRadix)
		}

		c.radices[i] = new(big.Int).Set(r)
		c.total.Mul(c.total, r)
	}

	return c, nil
}

// NewCartesianCounterUint64 is a convenience constructor for radices that fit
// in 64 bits.
func NewCartesianCounterUint64(radices []uint64) (*CartesianCounter, error) {
	wide := make([]*big.Int, len(radices))
	for i, r := range radices {
		wide[i] = new(big.Int).SetUint64(r)
	}

	return NewCartesianCounter(wide)
}

// Len returns the number of axes.
func (c *CartesianCounter) Len() int {
	return len(c.radices)
}

// Total returns the product of all radices.
func (c *CartesianCounter) Total() *big.Int {
	return new(big.Int).Set(c.total)
}

// Decode splits id into one digit per axis. It panics if id is outside
// [0, Total()).
func (c *CartesianCounter) Decode(id *big.Int) []*big.Int {
	c.mustContain(id)

	digits := make([]*big.Int, len(c.radices))
	rest := new(big.Int).Set(id)
	for i, r := range c.radices {
		digits[i] = new(big.Int)
		rest.QuoRem(rest, r, digits[i])
	}

	return digits
}

// DecodeUint64 is Decode for counters whose radices fit in 64 bits.
func (c *CartesianCounter) DecodeUint64(id *big.Int) []uint64 {
	wide := c.Decode(id)

	digits := make([]uint64, len(wide))
	for i, d := range wide {
		if !d.IsUint64() {
			panic(fmt.Sprintf("digit %v of axis %d exceeds 64 bits", d, i))
		}
		digits[i] = d.Uint64()
	}

	return digits
}

// Encode is the inverse of Decode. It panics if the digit count does not
// match or any digit is outside its radix.
func (c *CartesianCounter) Encode(digits []*big.Int) *big.Int {
	if len(digits) != len(c.radices) {
		panic(fmt.Sprintf("got %d digits for %d axes",
			len(digits), len(c.radices)))
	}

	id := new(big.Int)
	for i := len(c.radices) - 1; i >= 0; i-- {
		d := digits[i]
		if d.Sign() < 0 || d.Cmp(c.radices[i]) >= 0 {
			panic(fmt.Sprintf("digit %v outside [0, %v) on axis %d",
				d, c.radices[i], i))
		}

		id.Mul(id, c.radices[i])
		id.Add(id, d)
	}

	return id
}

func (c *CartesianCounter) mustContain(id *big.Int) {
	MustBeInRange(id, c.total)
}

// MustBeInRange panics unless 0 <= id < size.
func MustBeInRange(id, size *big.Int) {
	if id == nil {
		panic("nil id")
	}

	if id.Sign() < 0 || id.Cmp(size) >= 0 {
		panic(fmt.Sprintf("id %v outside [0, %v)", id, size))
	}
}
