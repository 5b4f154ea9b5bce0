package main

import (
	"fmt"
	"math/big"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sarchlab/mapspace/mapspace"
	"github.com/spf13/cobra"
)

func newSizeCmd() *cobra.Command {
	var (
		opts        spaceOptions
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the size of every subspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.build()
			if err != nil {
				return err
			}

			writeSizes(cmd, m)

			if metricsFile != "" {
				return prometheus.WriteToTextfile(metricsFile,
					prometheus.DefaultGatherer)
			}

			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "",
		"write the cardinality gauges to this file in text exposition format")

	return cmd
}

func writeSizes(cmd *cobra.Command, m *mapspace.MapSpace) {
	sizes := m.Sizes()

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s over %d levels", m.Workload().Name, m.NumLevels()))
	t.AppendHeader(table.Row{"Space", "Size", "log2"})
	for _, row := range []struct {
		name string
		size *big.Int
	}{
		{"index factorization", sizes.Factor},
		{"permutation", sizes.Permutation},
		{"spatial split", sizes.Split},
	} {
		t.AppendRow(table.Row{row.name, row.size.String(), log2String(row.size)})
	}

	total := sizes.Product()
	t.AppendFooter(table.Row{"mappings", total.String(), log2String(total)})

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
}

func log2String(size *big.Int) string {
	return fmt.Sprintf("%.2f", mapspace.Log2(size))
}
