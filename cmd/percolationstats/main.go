// Command percolationstats estimates the percolation threshold of an N×N grid
// by Monte Carlo simulation.
//
//	percolationstats [--grid-size N] [--trials T] [--seed S] [--log-level L] [--config FILE]
//	percolationstats N T
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/percolate/config"
	"github.com/katalvlaran/percolate/internal/logger"
	"github.com/katalvlaran/percolate/montecarlo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "percolationstats:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load(config.NewFlagSet("percolationstats"), args)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := []montecarlo.Option{
		montecarlo.WithLogger(log),
		montecarlo.WithConfidence(cfg.Confidence),
	}
	if cfg.Seed != 0 {
		opts = append(opts, montecarlo.WithSeed(cfg.Seed))
	}
	log.Debug("starting run",
		zap.Int("grid_size", cfg.GridSize),
		zap.Int("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed),
	)

	res, err := montecarlo.Run(ctx, cfg.GridSize, cfg.Trials, opts...)
	if err != nil {
		return err
	}

	return report(out, res)
}

// report prints the summary in the fixed layout of the original tool.
func report(w io.Writer, res *montecarlo.Result) error {
	_, err := fmt.Fprintf(w,
		"\n grid size               = %d\n"+
			" samples                 = %d\n"+
			" mean                    = %v\n"+
			" stddev                  = %v\n"+
			" %-23s = %v, %v\n",
		res.GridSize, res.Trials, res.Mean, res.StdDev,
		intervalLabel(res.Confidence), res.ConfidenceLo, res.ConfidenceHi)
	return err
}

// intervalLabel names the interval by coverage for the default z and by
// z-value otherwise.
func intervalLabel(z float64) string {
	if z == montecarlo.DefaultConfidence {
		return "95% confidence interval"
	}
	return fmt.Sprintf("confidence interval (z=%g)", z)
}
