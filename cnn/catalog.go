// Package cnn provides the catalog of reference convolution layers and turns a
// layer request into a validated workload.
package cnn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sarchlab/mapspace/problem"
)

// ErrUnknownLayer is matched by the error returned for a missing layer.
var ErrUnknownLayer = errors.New("unknown layer")

// UnknownLayerError reports a layer name that is not in the catalog.
type UnknownLayerError struct {
	Name string
}

func (e *UnknownLayerError) Error() string {
	return fmt.Sprintf("layer %q not found in catalog", e.Name)
}

// Is makes errors.Is(err, ErrUnknownLayer) hold.
func (e *UnknownLayerError) Is(target error) bool {
	return target == ErrUnknownLayer
}

// Layer is a named set of loop bounds.
type Layer struct {
	Name   string
	Bounds problem.Bounds
}

// nearestComposite replaces awkward primes with a close value that factors
// well. Only these values are substituted.
var nearestComposite = map[uint64]uint64{
	11: 12,
	13: 15,
	27: 28,
	55: 56,
	57: 60,
}

// Catalog is an immutable set of layers addressable by name.
type Catalog struct {
	layers []Layer
	index  map[string]int
}

// NewCatalog returns a catalog holding the reference layers.
func NewCatalog() *Catalog {
	c, err := NewCatalogFrom(referenceLayers)
	if err != nil {
		panic(err)
	}

	return c
}

// NewCatalogFrom builds a catalog from the given layers. Names must be unique
// and every bound positive.
func NewCatalogFrom(layers []Layer) (*Catalog, error) {
	c := &Catalog{
		layers: make([]Layer, 0, len(layers)),
		index:  make(map[string]int, len(layers)),
	}

	for _, l := range layers {
		if _, dup := c.index[l.Name]; dup {
			return nil, fmt.Errorf("duplicate layer %q", l.Name)
		}

		for _, d := range problem.AllDimensions() {
			if l.Bounds[d] == 0 {
				return nil, fmt.Errorf("layer %q has zero bound for %s",
					l.Name, d.Name())
			}
		}

		c.index[l.Name] = len(c.layers)
		c.layers = append(c.layers, l)
	}

	return c, nil
}

// Len returns the number of layers.
func (c *Catalog) Len() int {
	return len(c.layers)
}

// Layers returns the layers in catalog order.
func (c *Catalog) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)

	return out
}

// Names returns the layer names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.layers))
	for _, l := range c.layers {
		names = append(names, l.Name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the bounds of the named layer. With padPrimes set, bounds
// listed in the nearest-composite table are replaced.
func (c *Catalog) Lookup(name string, padPrimes bool) (problem.Bounds, error) {
	i, ok := c.index[name]
	if !ok {
		return problem.Bounds{}, &UnknownLayerError{Name: name}
	}

	bounds := c.layers[i].Bounds
	if padPrimes {
		bounds = PadPrimes(bounds)
	}

	return bounds, nil
}

// PadPrimes substitutes bounds found in the nearest-composite table.
func PadPrimes(b problem.Bounds) problem.Bounds {
	for d, v := range b {
		if r, ok := nearestComposite[v]; ok {
			b[d] = r
		}
	}

	return b
}
