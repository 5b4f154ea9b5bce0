package main

import (
	"log/slog"
	"os"

	"github.com/sarchlab/mapspace/mapspace"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose, trace bool

	root := &cobra.Command{
		Use:          "mapspace",
		Short:        "Size, decode and verify the mapping space of a CNN layer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose, trace)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log at debug level")
	root.PersistentFlags().BoolVar(&trace, "trace", false,
		"log per-level configuration details")

	root.AddCommand(
		newLayersCmd(),
		newSizeCmd(),
		newDecodeCmd(),
		newVerifyCmd(),
	)

	return root
}

func setupLogging(verbose, trace bool) {
	level := slog.LevelInfo
	switch {
	case trace:
		level = mapspace.LevelTrace
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
