package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/mapspace/cnn"
	"github.com/sarchlab/mapspace/problem"
	"github.com/spf13/cobra"
)

func newLayersCmd() *cobra.Command {
	var noPad bool

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List the layers of the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayers(cmd, cnn.NewCatalog(), !noPad)
		},
	}

	cmd.Flags().BoolVar(&noPad, "no-pad", false,
		"show catalog bounds without prime padding")

	return cmd
}

func runLayers(cmd *cobra.Command, catalog *cnn.Catalog, padPrimes bool) error {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Layers (%d)", catalog.Len()))

	header := table.Row{"Name"}
	for _, d := range problem.AllDimensions() {
		header = append(header, d.Name())
	}
	t.AppendHeader(header)

	for _, name := range catalog.Names() {
		bounds, err := catalog.Lookup(name, padPrimes)
		if err != nil {
			return err
		}

		row := table.Row{name}
		for _, b := range bounds {
			row = append(row, b)
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())

	return nil
}
