// Command tilesearch drives the sliding-tile engines from the shell: solve
// one scrambled instance, sweep a benchmark grid into CSV, then aggregate
// or chart the results.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	// Ctrl-C cancels in-flight searches; they surface as timeout rows.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.StandardLogger().Error(err)
		os.Exit(1)
	}
}
