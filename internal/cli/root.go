package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfc/solver"
)

// config holds the parsed flags of one invocation.
type config struct {
	input    string
	output   string
	n        int
	width    int
	height   int
	seed     int64
	retries  int
	workers  int
	strategy string
	tokens   bool
	verbose  bool
}

// NewRootCommand builds the wfcgen command. A fresh command per call keeps
// flag state out of package globals.
func NewRootCommand() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "wfcgen",
		Short: "Grow a raster from an exemplar with Wave Function Collapse",
		Long: `Grow a larger raster whose N×N neighborhoods all occur (up to rotation)
in a small exemplar. The exemplar is read one row per line; each rune is a
symbol unless --tokens is set.

Examples:
  wfcgen
  wfcgen -i map.txt -n 3 --width 40 --height 20
  wfcgen -i tiles.txt --tokens --seed 7 --retries 50`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.input, "input", "i", "", "Exemplar file (\"-\" for stdin; empty uses the built-in sample)")
	f.StringVarP(&cfg.output, "output", "o", "", "Output file (default stdout)")
	f.IntVarP(&cfg.n, "window", "n", solver.DefaultN, "Pattern window size N")
	f.IntVar(&cfg.width, "width", solver.DefaultWidth, "Output width in cells")
	f.IntVar(&cfg.height, "height", solver.DefaultHeight, "Output height in cells")
	f.Int64Var(&cfg.seed, "seed", 0, "Random seed of the first attempt")
	f.IntVarP(&cfg.retries, "retries", "r", 10, "Attempts before giving up on contradictions")
	f.IntVar(&cfg.workers, "workers", 0, "Rule-builder goroutines (0 = GOMAXPROCS)")
	f.StringVar(&cfg.strategy, "strategy", solver.Worklist.String(), "Propagation strategy: worklist or sweep")
	f.BoolVar(&cfg.tokens, "tokens", false, "Treat whitespace-separated words as symbols")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log every collapse decision")

	return cmd
}

// run loads the exemplar, generates with retries, and writes the raster.
func run(cmd *cobra.Command, cfg *config) error {
	log := newLogger(cmd.ErrOrStderr(), cfg.verbose)

	if cfg.retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", cfg.retries)
	}
	strategy, err := solver.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}
	sample, err := loadExemplar(cmd.InOrStdin(), cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows": len(sample),
		"cols": len(sample[0]),
		"n":    cfg.n,
	}).Info("exemplar loaded")

	opts := solver.DefaultOptions()
	opts.N = cfg.n
	opts.Width, opts.Height = cfg.width, cfg.height
	opts.Workers = cfg.workers
	opts.Strategy = strategy
	if cfg.verbose {
		opts.OnCollapse = func(x, y, id int) {
			log.WithFields(logrus.Fields{"x": x, "y": y, "pattern": id}).Debug("collapse")
		}
	}

	raster, err := generate(cmd, log, sample, opts, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.output != "" {
		fh, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer fh.Close()
		out = fh
	}

	return writeRaster(out, raster, cfg.tokens)
}

// generate retries on contradiction with a derived seed per attempt.
// Any other error is returned immediately.
func generate(cmd *cobra.Command, log *logrus.Logger, sample [][]string, opts solver.Options, cfg *config) ([][]string, error) {
	for attempt := 0; attempt < cfg.retries; attempt++ {
		opts.Seed = cfg.seed
		if attempt > 0 {
			opts.Seed = solver.DeriveSeed(cfg.seed, uint64(attempt))
		}
		entry := log.WithFields(logrus.Fields{"attempt": attempt + 1, "seed": opts.Seed})
		entry.Info("generating")

		raster, err := solver.GenerateWithOptions(cmd.Context(), sample, opts)
		switch {
		case err == nil:
			entry.Info("solved")
			return raster, nil
		case errors.Is(err, solver.ErrContradiction):
			entry.WithError(err).Warn("contradiction, retrying")
		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("no solution after %d attempts: %w", cfg.retries, solver.ErrContradiction)
}

// loadExemplar reads --input, stdin for "-", or the built-in sample.
func loadExemplar(stdin io.Reader, cfg *config) ([][]string, error) {
	switch cfg.input {
	case "":
		return readExemplar(strings.NewReader(strings.Join(defaultExemplar, "\n")), false)
	case "-":
		return readExemplar(stdin, cfg.tokens)
	default:
		fh, err := os.Open(cfg.input)
		if err != nil {
			return nil, fmt.Errorf("open exemplar: %w", err)
		}
		defer fh.Close()
		return readExemplar(fh, cfg.tokens)
	}
}

// newLogger writes text logs to w; debug level when verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
