// Command wordladder prints the shortest word ladder for each start/goal pair
// given on the command line.
//
//	wordladder [flags] <vocabularyFile> [start goal ...]
//
// Each pair yields one line on stdout: the ladder, a NO POSSIBLE PATH notice,
// or the words missing from the vocabulary. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

// exitFailure is reported as 255 by POSIX shells.
const exitFailure = -1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the raw command-line overrides.
type flags struct {
	configPath string
	algorithm  string
	workers    int
	logLevel   string
	textfile   string
	stats      bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "Please specify some arguments.")
		return exitFailure
	}

	fs := flag.NewFlagSet("wordladder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wordladder [flags] <vocabularyFile> [start goal ...]")
		fs.PrintDefaults()
	}
	var f flags
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config")
	fs.StringVar(&f.algorithm, "algo", "", "Search algorithm: astar or bfs")
	fs.IntVar(&f.workers, "workers", 0, "Pairs solved concurrently")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&f.textfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	fs.BoolVar(&f.stats, "stats", false, "Print graph statistics before the pairs")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitFailure
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(stdout, "Please specify some arguments.")
		return exitFailure
	}
	queries, err := ladder.ParsePairs(rest[1:])
	switch {
	case errors.Is(err, ladder.ErrNoPairs):
		fmt.Fprintln(stdout, "No word pairs given - program terminating.")
		return exitFailure
	case errors.Is(err, ladder.ErrOddArgs):
		fmt.Fprintln(stdout, "Invalid number of arguments!")
		return exitFailure
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stdout, "Invalid configuration: %v\n", err)
		return exitFailure
	}
	logger := newLogger(cfg.Log, stderr).With("run", uuid.NewString())

	code := solve(ctx, cfg, rest[0], queries, f.stats, stdout, logger)

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error("metrics export failed", "path", cfg.Metrics.Textfile, "err", err)
			return exitFailure
		}
		logger.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}

	return code
}

// solve loads the vocabulary, builds the solver and prints one line per
// query.
func solve(ctx context.Context, cfg *config.Config, path string, queries []ladder.Query,
	stats bool, stdout io.Writer, logger *slog.Logger,
) int {
	v, err := vocab.Load(path)
	if err != nil {
		fmt.Fprintf(stdout, "Unable to read dictionary %s: %v\n", path, err)
		return exitFailure
	}
	logger.Info("vocabulary loaded", "path", path, "words", v.Size())

	s, err := ladder.New(v, solverOptions(ctx, cfg, stats, logger)...)
	if err != nil {
		logger.Error("graph build failed", "err", err)
		return exitFailure
	}
	if stats {
		fmt.Fprintln(stdout, s.Stats())
	}

	outcomes, err := s.SolveAll(ctx, queries)
	for _, o := range outcomes {
		fmt.Fprintln(stdout, o)
	}
	if err != nil {
		logger.Error("search failed", "err", err)
		return exitFailure
	}

	return 0
}

// loadConfig reads the optional config file, applies explicitly set flags
// on top and validates the result.
func loadConfig(fs *flag.FlagSet, f flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "algo":
			cfg.Search.Algorithm = f.algorithm
		case "workers":
			cfg.Search.Workers = f.workers
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "metrics-textfile":
			cfg.Metrics.Textfile = f.textfile
		}
	})

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func solverOptions(ctx context.Context, cfg *config.Config, stats bool, logger *slog.Logger) []ladder.Option {
	opts := []ladder.Option{
		ladder.WithContext(ctx),
		ladder.WithAlgorithm(ladder.Algorithm(cfg.Search.Algorithm)),
		ladder.WithWorkers(cfg.Search.Workers),
		ladder.WithBuildWorkers(cfg.Graph.Workers),
		ladder.WithLogger(logger),
	}
	switch cfg.Graph.Alphabet {
	case "":
	case config.AlphabetAuto:
		opts = append(opts, ladder.WithDerivedAlphabet())
	default:
		opts = append(opts, ladder.WithAlphabet(cfg.Graph.Alphabet))
	}
	if cfg.Search.ComponentPrecheck {
		opts = append(opts, ladder.WithComponentPrecheck())
	}
	if stats {
		opts = append(opts, ladder.WithComponents())
	}

	return opts
}

// newLogger builds the stderr logger. Level and format were validated.
func newLogger(c config.LogConf, w io.Writer) *slog.Logger {
	level, _ := config.ParseLevel(c.Level)
	hopts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}
