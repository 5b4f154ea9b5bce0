// Command mapspace inspects the mapping space of a convolution layer: the
// sizes of its three subspaces, the mapping behind a triple of ids, and a
// parallel check that decoding is a bijection.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
