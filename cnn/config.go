package cnn

import (
	"errors"
	"fmt"

	"github.com/sarchlab/mapspace/problem"
)

// ErrMissingBound is returned when a workload without a layer name leaves a
// dimension unspecified.
var ErrMissingBound = errors.New("missing bound")

// WorkloadConfig describes a workload either by layer name, with optional
// per-dimension overrides, or by explicit bounds.
type WorkloadConfig struct {
	// Layer selects a catalog entry. When empty every bound must be given in
	// Overrides.
	Layer string

	// PadPrimes applies the nearest-composite substitution to catalog bounds.
	PadPrimes bool

	// Overrides replaces individual bounds. Zero leaves a bound unchanged.
	Overrides problem.Bounds

	// Zero strides and dilations default to 1.
	WStride, HStride     int
	WDilation, HDilation int

	// CommonDensity, when set, is used for every tensor and takes precedence
	// over Densities.
	CommonDensity *float64
	Densities     *problem.Densities
}

// DefaultWorkloadConfig returns a config for the named layer with prime
// padding enabled.
func DefaultWorkloadConfig(layer string) WorkloadConfig {
	return WorkloadConfig{
		Layer:     layer,
		PadPrimes: true,
	}
}

// Resolve looks up the layer, applies overrides and defaults, and validates
// the result.
func (cfg WorkloadConfig) Resolve(catalog *Catalog) (problem.Workload, error) {
	var bounds problem.Bounds
	name := cfg.Layer

	if cfg.Layer != "" {
		var err error
		bounds, err = catalog.Lookup(cfg.Layer, cfg.PadPrimes)
		if err != nil {
			return problem.Workload{}, err
		}
	} else {
		name = "custom"
		for _, d := range problem.AllDimensions() {
			if cfg.Overrides[d] == 0 {
				return problem.Workload{}, fmt.Errorf(
					"no layer given and %s unspecified: %w",
					d.Name(), ErrMissingBound)
			}
		}
	}

	for _, d := range problem.AllDimensions() {
		if cfg.Overrides[d] != 0 {
			bounds[d] = cfg.Overrides[d]
		}
	}

	w := problem.NewWorkload(name, bounds)
	w.WStride = orDefault(cfg.WStride, 1)
	w.HStride = orDefault(cfg.HStride, 1)
	w.WDilation = orDefault(cfg.WDilation, 1)
	w.HDilation = orDefault(cfg.HDilation, 1)

	switch {
	case cfg.CommonDensity != nil:
		w.Densities = problem.UniformDensities(*cfg.CommonDensity)
	case cfg.Densities != nil:
		w.Densities = *cfg.Densities
	}

	if err := w.Validate(); err != nil {
		return problem.Workload{}, err
	}

	return w, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
