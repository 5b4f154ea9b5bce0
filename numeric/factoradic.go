package numeric

import (
	"fmt"
	"math/big"
)

// Factorial returns n! as a wide integer.
func Factorial(n int) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("factorial of negative number %d", n))
	}

	return new(big.Int).MulRange(1, int64(n))
}

// Permute returns the rank-th permutation of seq. At each position the
// element chosen is the floor(rank / (remaining-1)!)-th of those not yet
// used, kept in their original relative order. Rank 0 leaves seq unchanged
// and rank len(seq)!-1 reverses it.
//
// seq is not modified. Permute panics if rank is outside [0, len(seq)!).
func Permute[T any](seq []T, rank *big.Int) []T {
	n := len(seq)
	MustBeInRange(rank, Factorial(n))

	pool := make([]T, n)
	copy(pool, seq)

	out := make([]T, 0, n)
	rest := new(big.Int).Set(rank)
	quo, rem := new(big.Int), new(big.Int)
	for i := 0; i < n; i++ {
		quo.QuoRem(rest, Factorial(n-1-i), rem)
		rest.Set(rem)

		idx := int(quo.Int64())
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return out
}

// PermuteUint64 is Permute for ranks that fit in 64 bits.
func PermuteUint64[T any](seq []T, rank uint64) []T {
	return Permute(seq, new(big.Int).SetUint64(rank))
}

// Rank is the inverse of Permute: it returns r such that
// Permute(seq, r) equals perm. Elements of seq must be distinct.
func Rank[T comparable](seq, perm []T) (*big.Int, error) {
	if len(seq) != len(perm) {
		return nil, fmt.Errorf("permutation of length %d for sequence of length %d",
			len(perm), len(seq))
	}

	pool := make([]T, len(seq))
	copy(pool, seq)

	rank := new(big.Int)
	term := new(big.Int)
	for i, v := range perm {
		idx := -1
		for j, p := range pool {
			if p == v {
				idx = j
				break
			}
		}

		if idx < 0 {
			return nil, fmt.Errorf("element %v at position %d is not available", v, i)
		}

		term.Mul(big.NewInt(int64(idx)), Factorial(len(seq)-1-i))
		rank.Add(rank, term)
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return rank, nil
}
