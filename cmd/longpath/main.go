// Command longpath reads a weighted edge list and prints the longest simple
// path of the corresponding directed graph.
//
// Usage:
//
//	cat edges.txt | longpath
//
// Each input line has the form "u, v, w". The vertices of the longest path are
// written to standard output, one per line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
