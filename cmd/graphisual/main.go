// SPDX-License-Identifier: MIT

// Command graphisual draws a preset graph through the tool controller and
// plays BFS, DFS or Dijkstra over it on the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
