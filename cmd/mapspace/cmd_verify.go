package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sarchlab/mapspace/verify"
	"github.com/spf13/cobra"
)

var errVerificationFailed = errors.New("verification failed")

func newVerifyCmd() *cobra.Command {
	var (
		opts    spaceOptions
		limit   uint64
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Decode ids in parallel and check every subspace is a bijection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.build()
			if err != nil {
				return err
			}

			if workers == 0 {
				workers = runtime.GOMAXPROCS(0)
			}

			report, err := verify.Run(cmd.Context(), m, verify.Options{
				Limit:   limit,
				Workers: workers,
			})
			if err != nil {
				return err
			}

			report.WriteReport(cmd.OutOrStdout())

			if output != "" {
				if err := report.SaveReportToFile(output); err != nil {
					return err
				}
			}

			if !report.OK() {
				return fmt.Errorf("%d issues: %w",
					len(report.Issues), errVerificationFailed)
			}

			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().Uint64Var(&limit, "limit", 1<<16,
		"ids decoded per subspace; smaller subspaces are swept exhaustively")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"decoding goroutines (default: GOMAXPROCS)")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"also write the report to this file")

	return cmd
}
