package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/mapspace/cnn"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
	"github.com/spf13/cobra"
)

var errBadFlag = errors.New("malformed flag value")

// spaceOptions collects the flags that describe a workload and a hierarchy.
type spaceOptions struct {
	layer      string
	noPad      bool
	bounds     string
	wStride    int
	hStride    int
	wDilation  int
	hDilation  int
	density    float64
	levels     int
	prefixes   []string
	prefactors []string
	spatial    []int
	fixed      []string
	prune      bool
}

func (o *spaceOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.layer, "layer", "l", "TEST",
		"catalog layer; empty to give every bound with --bounds")
	f.BoolVar(&o.noPad, "no-pad", false,
		"keep prime catalog bounds instead of padding to the nearest composite")
	f.StringVar(&o.bounds, "bounds", "",
		"bound overrides, e.g. C=64,K=128")
	f.IntVar(&o.wStride, "wstride", 1, "horizontal stride")
	f.IntVar(&o.hStride, "hstride", 1, "vertical stride")
	f.IntVar(&o.wDilation, "wdilation", 1, "horizontal dilation")
	f.IntVar(&o.hDilation, "hdilation", 1, "vertical dilation")
	f.Float64Var(&o.density, "density", 1.0, "density of every tensor")
	f.IntVarP(&o.levels, "levels", "n", 3, "levels of the hierarchy")
	f.StringArrayVar(&o.prefixes, "prefix", nil,
		"fixed outermost loop order of a level, e.g. 0:KC (repeatable)")
	f.StringArrayVar(&o.prefactors, "prefactor", nil,
		"pinned tiling factor, e.g. C:0=16 (repeatable)")
	f.IntSliceVar(&o.spatial, "spatial", nil,
		"levels with a free spatial split")
	f.StringArrayVar(&o.fixed, "fixed-split", nil,
		"spatial level with a fixed split, e.g. 1=3 (repeatable)")
	f.BoolVar(&o.prune, "prune", false,
		"bake unit-bound dimensions into every loop order")
}

func (o *spaceOptions) workloadConfig() (cnn.WorkloadConfig, error) {
	overrides, err := parseBounds(o.bounds)
	if err != nil {
		return cnn.WorkloadConfig{}, err
	}

	density := o.density

	return cnn.WorkloadConfig{
		Layer:         o.layer,
		PadPrimes:     !o.noPad,
		Overrides:     overrides,
		WStride:       o.wStride,
		HStride:       o.hStride,
		WDilation:     o.wDilation,
		HDilation:     o.hDilation,
		CommonDensity: &density,
	}, nil
}

func (o *spaceOptions) builder(catalog *cnn.Catalog) (mapspace.Builder, error) {
	cfg, err := o.workloadConfig()
	if err != nil {
		return mapspace.Builder{}, err
	}

	w, err := cfg.Resolve(catalog)
	if err != nil {
		return mapspace.Builder{}, err
	}

	b := mapspace.MakeBuilder().
		WithWorkload(w).
		WithNumLevels(o.levels).
		WithUnitDimensionPruning(o.prune)

	for _, s := range o.prefixes {
		level, dims, err := parsePrefix(s)
		if err != nil {
			return mapspace.Builder{}, err
		}
		b = b.WithPermutationPrefix(level, dims...)
	}

	for _, s := range o.prefactors {
		dim, level, value, err := parsePrefactor(s)
		if err != nil {
			return mapspace.Builder{}, err
		}
		b = b.WithPrefactor(dim, level, value)
	}

	for _, level := range o.spatial {
		b = b.WithSpatialLevel(level)
	}

	for _, s := range o.fixed {
		level, split, err := parseFixedSplit(s)
		if err != nil {
			return mapspace.Builder{}, err
		}
		b = b.WithFixedSplit(level, split)
	}

	return b, nil
}

func (o *spaceOptions) build() (*mapspace.MapSpace, error) {
	b, err := o.builder(cnn.NewCatalog())
	if err != nil {
		return nil, err
	}

	return b.Build()
}

// parseBounds reads "C=64,K=128" into a bounds override.
func parseBounds(s string) (problem.Bounds, error) {
	var bounds problem.Bounds
	if s == "" {
		return bounds, nil
	}

	for _, item := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			return bounds, fmt.Errorf("bound %q: %w", item, errBadFlag)
		}

		dim, err := problem.ParseDimension(name)
		if err != nil {
			return bounds, err
		}

		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return bounds, fmt.Errorf("bound %q: %w", item, errBadFlag)
		}

		bounds[dim] = v
	}

	return bounds, nil
}

// parsePrefix reads "0:KC".
func parsePrefix(s string) (int, []problem.Dimension, error) {
	levelStr, dimsStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, nil, fmt.Errorf("prefix %q: %w", s, errBadFlag)
	}

	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return 0, nil, fmt.Errorf("prefix %q: %w", s, errBadFlag)
	}

	dims, err := problem.ParseDimensionList(dimsStr)
	if err != nil {
		return 0, nil, err
	}

	return level, dims, nil
}

// parsePrefactor reads "C:0=16".
func parsePrefactor(s string) (problem.Dimension, int, uint64, error) {
	dimStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, 0, fmt.Errorf("prefactor %q: %w", s, errBadFlag)
	}

	levelStr, valueStr, ok := strings.Cut(rest, "=")
	if !ok {
		return 0, 0, 0, fmt.Errorf("prefactor %q: %w", s, errBadFlag)
	}

	dim, err := problem.ParseDimension(dimStr)
	if err != nil {
		return 0, 0, 0, err
	}

	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("prefactor %q: %w", s, errBadFlag)
	}

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("prefactor %q: %w", s, errBadFlag)
	}

	return dim, level, value, nil
}

// parseFixedSplit reads "1=3".
func parseFixedSplit(s string) (int, uint32, error) {
	levelStr, splitStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("fixed split %q: %w", s, errBadFlag)
	}

	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return 0, 0, fmt.Errorf("fixed split %q: %w", s, errBadFlag)
	}

	split, err := strconv.ParseUint(splitStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("fixed split %q: %w", s, errBadFlag)
	}

	return level, uint32(split), nil
}
