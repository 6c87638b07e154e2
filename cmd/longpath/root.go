package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/rhartert/longpath/parser"
	"github.com/rhartert/longpath/search"
	"github.com/spf13/cobra"
)

type options struct {
	input   string
	workers int
	prune   bool
	verbose bool
}

func newRootCmd(in io.Reader, out io.Writer, errOut io.Writer) *cobra.Command {
	defaults := search.DefaultConfig()
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "longpath",
		Short: "Print the longest simple path of a weighted directed graph",
		Long: `Read a directed graph as a list of weighted edges and print the
simple path (no repeated vertex) with the largest total weight.

Input lines have the form "u, v, w" where u and v are integer vertex
identifiers and w is the weight of the edge from u to v. Blank and
malformed lines are ignored. The vertices of the path are printed one per
line, from the first to the last.

Examples:
  cat edges.txt | longpath
  longpath --input edges.txt --workers 8`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOptions(opts); err != nil {
				return fmt.Errorf("error validating flags: %w", err)
			}
			return run(cmd.Context(), in, out, opts, newLogger(errOut, opts.verbose))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "Path to the edge list (default: standard input)")
	flags.IntVar(&opts.workers, "workers", defaults.Workers, "Number of start vertices explored concurrently (0: one per CPU)")
	flags.BoolVar(&opts.prune, "prune", defaults.Prune, "Prune branches that cannot lead to a longer path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to standard error")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func validateOptions(opts *options) error {
	if n := opts.workers; n < 0 {
		return fmt.Errorf("number of workers must be non-negative, got: %d", n)
	}
	if opts.workers == 0 {
		opts.workers = runtime.NumCPU()
	}
	return nil
}

func run(ctx context.Context, in io.Reader, out io.Writer, opts *options, logger *slog.Logger) error {
	if opts.input != "" {
		file, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("error opening edge list: %w", err)
		}
		defer file.Close()
		in = file
	}

	parseStart := time.Now()
	g, summary, err := parser.ReadGraph(in)
	if err != nil {
		return err
	}
	logger.Debug("Edge list parsed",
		"lines", summary.Lines,
		"blank", summary.Blank,
		"dropped", summary.Dropped,
		"vertices", g.NumVertices(),
		"edges", len(g.Edges),
		"duration", time.Since(parseStart),
	)
	if g.NumVertices() == 0 {
		logger.Debug("Empty graph, nothing to search")
		return nil
	}

	searchStart := time.Now()
	path, stats, err := search.Search(ctx, g, search.Config{
		Workers: opts.workers,
		Prune:   opts.prune,
	})
	if err != nil {
		logger.Debug("Search interrupted",
			"starts", stats.Starts,
			"expanded", stats.Expanded,
			"duration", time.Since(searchStart),
		)
		return fmt.Errorf("error searching longest path: %w", err)
	}
	logger.Debug("Search completed",
		"distance", path.Distance,
		"length", path.Length(),
		"starts", stats.Starts,
		"skipped", stats.Skipped,
		"expanded", stats.Expanded,
		"pruned", stats.Pruned,
		"workers", opts.workers,
		"duration", time.Since(searchStart),
	)

	if err := parser.WritePath(out, path); err != nil {
		return fmt.Errorf("error writing path: %w", err)
	}
	return nil
}
