package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/rangetree/tree/avl"
)

type options struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "avlrange",
		Short: "Build weighted AVL trees and count values in ranges",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRandomCmd(opts), newCountCmd(opts))
	return root
}

func newRandomCmd(opts *options) *cobra.Command {
	var (
		num    int
		seed   int64
		sorted bool
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from 0..n-1 and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if num < 0 {
				return fmt.Errorf("-n must not be negative, got %d", num)
			}

			var tr *avl.Tree[int]
			if sorted {
				opts.logger.Debug("building sorted tree", "n", num)
				tr = avl.BuildSorted(num)
			} else {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				opts.logger.Debug("building shuffled tree", "n", num, "seed", seed)
				tr = avl.BuildRandom(num, seed)
			}

			if check {
				if err := tr.Check(); err != nil {
					return err
				}
				opts.logger.Info("tree invariants hold", "size", tr.Size())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, tr.String())
			fmt.Fprintln(out, "size:", tr.Size(), "height:", tr.Height())
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of values in the tree")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "shuffle seed (default current unix time in ns)")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "insert in increasing order instead of shuffling")
	cmd.Flags().BoolVar(&check, "check", false, "verify tree invariants after building")

	return cmd
}

func newCountCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count LOWER UPPER",
		Short: "Read integers from stdin and count those in [LOWER, UPPER)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lower, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("LOWER: %w", err)
			}
			upper, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("UPPER: %w", err)
			}
			if lower > upper {
				opts.logger.Warn("empty range", "lower", lower, "upper", upper)
			}

			tr, err := readTree(cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.logger.Debug("read values", "size", tr.Size(), "height", tr.Height())

			fmt.Fprintln(cmd.OutOrStdout(), tr.Distance(lower, upper))
			return nil
		},
	}
}

// readTree adds every whitespace-separated integer in r to a new tree.
func readTree(r io.Reader) (*avl.Tree[int], error) {
	tr := avl.New[int]()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("reading value %d: %w", tr.Size()+1, err)
		}
		tr.Add(v)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return tr, nil
}
