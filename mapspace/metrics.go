package mapspace

import (
	"math"
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var spaceCardinality = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "mapspace_cardinality_log2",
	Help: "Base-2 logarithm of the number of points in the most recently configured space",
}, []string{"space"})

// Label values of spaceCardinality.
const (
	spaceIndexFactorization = "index_factorization"
	spacePermutation        = "permutation"
	spaceSpatialSplit       = "spatial_split"
)

func recordCardinality(space string, size *big.Int) {
	spaceCardinality.WithLabelValues(space).Set(Log2(size))
}

// Log2 returns log2(size) for a positive size and 0 otherwise.
func Log2(size *big.Int) float64 {
	if size.Sign() <= 0 {
		return 0
	}

	f, _ := new(big.Float).SetInt(size).Float64()
	if math.IsInf(f, 0) {
		return float64(size.BitLen())
	}

	return math.Log2(f)
}
