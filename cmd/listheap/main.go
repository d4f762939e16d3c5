// Sorts a fixed sample doubly linked list with heap sort and prints the list after every swap.

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nobletooth/listheap/pkg/config"
	"github.com/nobletooth/listheap/pkg/heapsort"
	"github.com/nobletooth/listheap/pkg/list"
	"github.com/nobletooth/listheap/pkg/trace"
	"github.com/nobletooth/listheap/pkg/utils"
)

var (
	printVersion = flag.Bool("print_version", false, "Print the version and exit.")
	siftMode     = flag.String("sift_mode", string(heapsort.SiftModeFull),
		"How values are sifted down the heap: full (always sorts) or legacy (replays the classic trace).")
)

// sampleValues is the list every run sorts.
var sampleValues = []int{12, 11, 13, 5, 6, 7}

// run sorts the sample list with `mode` and writes the whole trace to `out`.
func run(out io.Writer, mode heapsort.SiftMode) error {
	samples := list.New(sampleValues...)
	defer samples.Clear()

	printer := trace.NewPrinter(out)
	printer.Original(samples)
	heapsort.Sort(samples, len(sampleValues), mode, printer.Step)
	printer.Sorted(samples)
	if err := printer.Flush(); err != nil {
		return fmt.Errorf("failed to print heap sort trace: %w", err)
	}
	slog.Debug("Heap sort finished.", "mode", mode, "steps", printer.Steps())
	return nil
}

func main() {
	config.InitFlags()
	utils.InitLogging()

	if *printVersion {
		slog.Info("listheap build info.", "version", utils.Version, "commit", utils.Commit, "build", utils.BuildTime)
		return
	}

	mode, err := heapsort.ParseSiftMode(*siftMode)
	if err != nil {
		slog.Error("Invalid sift mode.", "err", err)
		os.Exit(1)
	}
	if err := run(os.Stdout, mode); err != nil {
		slog.Error("listheap stopped.", "err", err)
		os.Exit(1)
	}
}
