package main

import (
	"fmt"
	"math/big"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/sarchlab/mapspace/problem"
	"github.com/spf13/cobra"
)

var errIDOutOfRange = fmt.Errorf("id out of range: %w", errBadFlag)

func newDecodeCmd() *cobra.Command {
	var opts spaceOptions

	cmd := &cobra.Command{
		Use:   "decode <factor-id> <permutation-id> <split-id>",
		Short: "Decode one id per subspace into a mapping",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.build()
			if err != nil {
				return err
			}

			return runDecode(cmd, m, args)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runDecode(cmd *cobra.Command, m *mapspace.MapSpace, args []string) error {
	sizes := m.Sizes()

	ids := mapspace.IDs{}
	targets := []struct {
		name string
		dst  **big.Int
		size *big.Int
	}{
		{"factor", &ids.Factor, sizes.Factor},
		{"permutation", &ids.Permutation, sizes.Permutation},
		{"split", &ids.Split, sizes.Split},
	}

	for i, target := range targets {
		id, err := parseID(args[i], target.size)
		if err != nil {
			return fmt.Errorf("%s id: %w", target.name, err)
		}
		*target.dst = id
	}

	writeMapping(cmd, m.Decode(ids))

	return nil
}

// parseID reads a decimal id and checks it lies in [0, size).
func parseID(s string, size *big.Int) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, errBadFlag)
	}

	if id.Sign() < 0 || id.Cmp(size) >= 0 {
		return nil, fmt.Errorf("%s not in [0, %s): %w", id, size, errIDOutOfRange)
	}

	return id, nil
}

func writeMapping(cmd *cobra.Command, mapping mapspace.Mapping) {
	t := table.NewWriter()
	t.SetTitle("Mapping")

	header := table.Row{"Level", "Loop order", "Spatial"}
	for _, d := range problem.AllDimensions() {
		header = append(header, d.Name())
	}
	t.AppendHeader(header)

	// Outermost level first, as in a loop nest.
	for level := mapping.NumLevels() - 1; level >= 0; level-- {
		spatial := "-"
		if _, ok := mapping.Splits.At(level); ok {
			spatial = problem.FormatDimensions(mapping.SpatialDimensions(level))
		}

		row := table.Row{
			level,
			problem.FormatDimensions(mapping.LoopOrders[level]),
			spatial,
		}
		for _, d := range problem.AllDimensions() {
			row = append(row, mapping.TileFactor(level, d))
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
}
