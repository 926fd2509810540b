// Command shmallocdump exercises a buddy allocator segment from the
// command line: create one, run a handful of allocations against it, and
// print the resulting free-list counters. It is a smoke-test harness, not
// a production tool — every invocation creates its own segment and tears
// it down on exit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaigai-boost/shmbuddy/buddy"
	"github.com/kaigai-boost/shmbuddy/segment"
)

// log is the package logger. It discards everything unless -v is set, so
// a plain run stays quiet and scriptable.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	segSize   int64
	hugePages bool
	verbose   bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shmallocdump:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shmallocdump",
		Short: "Create a buddy allocator segment and report its free-list state",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}
	root.PersistentFlags().Int64Var(&segSize, "size", 1<<20, "segment size in bytes")
	root.PersistentFlags().BoolVar(&hugePages, "huge-pages", false, "request huge-page backed segment")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each step to stderr")

	root.AddCommand(initCmd(), allocCmd(), dumpCmd())
	return root
}

func openSegment() (*segment.Segment, *buddy.Allocator, error) {
	s, err := segment.Create(segment.Options{Size: segSize, HugePages: hugePages})
	if err != nil {
		return nil, nil, fmt.Errorf("create segment: %w", err)
	}
	log.Debug("segment created", "size", segSize, "id", s.Header().SegmentID)

	a, err := buddy.New(s)
	if err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("attach allocator: %w", err)
	}
	return s, a, nil
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create and bootstrap a segment, then print its initial free lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, a, err := openSegment()
			if err != nil {
				return err
			}
			defer s.Close()
			printStats(cmd.OutOrStdout(), a.Snapshot())
			return nil
		},
	}
}

func allocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc <bytes>",
		Short: "Create a segment, allocate a single chunk, and print the resulting state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var size int64
			if _, err := fmt.Sscanf(args[0], "%d", &size); err != nil {
				return fmt.Errorf("invalid byte count %q: %w", args[0], err)
			}

			s, a, err := openSegment()
			if err != nil {
				return err
			}
			defer s.Close()

			ref, err := a.Alloc(size)
			if err != nil {
				return fmt.Errorf("allocation of %d bytes failed: %w", size, err)
			}
			log.Debug("allocated", "bytes", size, "ref", ref)

			fmt.Fprintf(cmd.OutOrStdout(), "ref=%d\n", ref)
			printStats(cmd.OutOrStdout(), a.Snapshot())

			return a.Free(ref)
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Create a segment and print its free-list counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, a, err := openSegment()
			if err != nil {
				return err
			}
			defer s.Close()
			printStats(cmd.OutOrStdout(), a.Snapshot())
			return nil
		},
	}
}

func printStats(w io.Writer, stats buddy.Stats) {
	fmt.Fprintf(w, "%-6s %10s %10s\n", "class", "active", "free")
	for c := segment.MinClass; c <= segment.MaxClass; c++ {
		if stats.Active[c] == 0 && stats.Free[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "%-6d %10d %10d\n", c, stats.Active[c], stats.Free[c])
	}
}
