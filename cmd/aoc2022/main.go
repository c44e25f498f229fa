// Command aoc2022 solves one part of an Advent of Code 2022 puzzle and
// prints the answer.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/internal/config"
	"github.com/maisem/aoc2022/solutions"
)

var version = "dev"

type options struct {
	day        int
	part       int
	file       string
	sample     bool
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:     "aoc2022",
		Short:   "Solve Advent of Code 2022 puzzles, days 1-14",
		Version: version,
		Long: `aoc2022 reads the input for the selected day and part and prints the answer.

Without --file the input is read from input/day_DD/input.txt (see the
input_dir and input_pattern config settings).

Example:
  aoc2022 -d 7 -p 2
  aoc2022 -d 13 -p 1 -f ~/inputs/13.txt
  aoc2022 -d 10 -p 2 --sample`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config (or set "+config.EnvVar+")")
	root.Flags().IntVarP(&opts.day, "day", "d", 1, "Which day's puzzle to solve (1-14)")
	root.Flags().IntVarP(&opts.part, "part", "p", 1, "Which part of the day's puzzle to solve (1-2)")
	root.Flags().StringVarP(&opts.file, "file", "f", "", "Path to input file")
	root.Flags().BoolVarP(&opts.sample, "sample", "s", false, "Run the built-in example and check its answer")
	root.MarkFlagsMutuallyExclusive("file", "sample")

	root.AddCommand(newListCmd(opts))
	return root
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available days and parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, d := range solutions.New(opts.logger).Registry().Days() {
				parts := make([]string, len(d.Parts))
				for i, p := range d.Parts {
					parts[i] = fmt.Sprint(p.Num)
				}
				fmt.Fprintf(w, "day %2d: parts %s\n", d.Num, strings.Join(parts, ", "))
			}
			return nil
		},
	}
}

func (o *options) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return aoc.Errorf(aoc.InvalidArgument, "load config: %w", err)
	}
	o.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if o.verbose || cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	o.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (o *options) run(w io.Writer) error {
	reg := solutions.New(o.logger).Registry()
	fn, err := reg.Lookup(o.day, o.part)
	if err != nil {
		return err
	}

	if o.sample {
		s, err := aoc.LookupSample(o.day, o.part)
		if err != nil {
			return err
		}
		got, err := s.Check(fn)
		if err != nil {
			return fmt.Errorf("day %d part %d sample: %w", o.day, o.part, err)
		}
		return writeAnswer(w, got)
	}

	path := o.file
	if path == "" {
		path = o.cfg.InputPath(o.day)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return aoc.Errorf(aoc.IO, "could not read input file %s: %w", path, err)
	}
	input := string(data)
	o.logger.Debug("read input",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
		zap.String("fingerprint", aoc.Fingerprint(input)))

	t0 := time.Now()
	got, err := fn(input)
	if err != nil {
		return err
	}
	o.logger.Debug("solved",
		zap.Int("day", o.day),
		zap.Int("part", o.part),
		zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
	return writeAnswer(w, got)
}

// writeAnswer prints the answer followed by exactly one newline.
func writeAnswer(w io.Writer, answer string) error {
	_, err := fmt.Fprintln(w, strings.TrimSuffix(answer, "\n"))
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
