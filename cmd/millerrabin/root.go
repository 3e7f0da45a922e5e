package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GottfriedHerold/MillerRabin/internal/numberfile"
	"github.com/GottfriedHerold/MillerRabin/millerrabin"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "millerrabin [flags] FILE...",
		Short:         "Test the decimal numbers stored in files for primality",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.logLevel, stderr)
		defer logger.Sync() //nolint:errcheck
		return checkFiles(cmd.Context(), cfg, logger, stdout, args)
	}
	return cmd
}

type fileResult struct {
	verdict bool
	err     error
}

// checkFiles tests all files, up to cfg.workers at a time, and reports the verdicts in argument order.
// A file that cannot be read or parsed does not stop the others; the returned error reports how many files failed.
func checkFiles(ctx context.Context, cfg *config, logger *zap.Logger, stdout io.Writer, paths []string) error {
	results := make([]fileResult, len(paths))
	var group errgroup.Group
	group.SetLimit(cfg.workers)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			results[i].verdict, results[i].err = checkFile(ctx, cfg, logger, path, i)
			return nil
		})
	}
	_ = group.Wait()

	failed := 0
	for i, path := range paths {
		if results[i].err != nil {
			failed++
			logger.Error("checking file failed", zap.String("path", path), zap.Error(results[i].err))
			continue
		}
		verdict := "composite"
		if results[i].verdict {
			verdict = "prime"
		}
		if _, err := fmt.Fprintf(stdout, "checking %v\nfile %v contains a %v\n", path, path, verdict); err != nil {
			return errors.Wrap(err, "writing results failed")
		}
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "interrupted")
	}
	if failed > 0 {
		return errors.Errorf("%v of %v files could not be checked", failed, len(paths))
	}
	return nil
}

func checkFile(ctx context.Context, cfg *config, logger *zap.Logger, path string, fileIndex int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Wrapf(err, "skipped %v", path)
	}
	logger.Debug("checking", zap.String("path", path))
	n, err := numberfile.ReadNumberFile(path)
	if err != nil {
		return false, err
	}
	start := time.Now()
	verdict, err := millerrabin.IsProbablePrimeBigIntParallel(ctx, n, cfg.rounds, cfg.roundWorkers, wordSourceFactory(cfg.seed, fileIndex))
	if err != nil {
		return false, errors.WithMessagef(err, "testing %v", path)
	}
	logger.Info("checked",
		zap.String("path", path),
		zap.Int("bits", n.BitLen()),
		zap.Uint("rounds", cfg.rounds),
		zap.Bool("probablyPrime", verdict),
		zap.Duration("elapsed", time.Since(start)),
	)
	return verdict, nil
}

// wordSourceFactory returns crypto/rand sources for seed 0 and otherwise deterministic sources derived from seed and fileIndex.
func wordSourceFactory(seed int64, fileIndex int) func() millerrabin.WordSource {
	if seed == 0 {
		return func() millerrabin.WordSource { return millerrabin.CryptoWordSource{} }
	}
	var created atomic.Int64
	fileSeed := seed + int64(fileIndex)<<20
	return func() millerrabin.WordSource {
		return rand.New(rand.NewSource(fileSeed + created.Add(1)))
	}
}
