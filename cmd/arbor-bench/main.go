// arbor-bench builds many independent trees in parallel and measures the
// navigation and mutation operations of the arbor package.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	opts Options

	rootCmd = &cobra.Command{
		Use:          "arbor-bench",
		Short:        "Benchmark and stress test for the arbor tree",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runBench,
	}
)

func init() {
	rootCmd.Flags().IntVar(&opts.Trees, "trees", 64, "Number of independent trees")
	rootCmd.Flags().IntVar(&opts.Depth, "depth", 6, "Levels below each root")
	rootCmd.Flags().IntVar(&opts.Fanout, "fanout", 4, "Children per inner node")
	rootCmd.Flags().IntVar(&opts.Workers, "workers", runtime.GOMAXPROCS(0), "Parallel workers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	out := cmd.OutOrStdout()

	if opts.Trees < 1 || opts.Depth < 0 || opts.Fanout < 0 {
		return fmt.Errorf("invalid sizes: trees=%d depth=%d fanout=%d", opts.Trees, opts.Depth, opts.Fanout)
	}

	fmt.Fprintln(out, "Arbor Benchmark and Stress Test")
	fmt.Fprintln(out, "===============================")
	fmt.Fprintf(out, "Trees: %d, depth: %d, fanout: %d, workers: %d\n",
		opts.Trees, opts.Depth, opts.Fanout, opts.Workers)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintln(out)

	results, err := Run(cmd.Context(), opts)
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	if err != nil {
		logger.Error("bench failed", "error", err)
		return err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Heap in use: %d MB\n", m.HeapInuse/(1024*1024))
	fmt.Fprintf(out, "Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
	return nil
}
