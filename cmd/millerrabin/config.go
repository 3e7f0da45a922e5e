package main

import (
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GottfriedHerold/MillerRabin/millerrabin"
)

const envPrefix = "MILLERRABIN"

const (
	keyRounds       = "rounds"
	keyWorkers      = "workers"
	keyRoundWorkers = "round-workers"
	keyLogLevel     = "log-level"
	keySeed         = "seed"
)

type config struct {
	rounds       uint
	workers      int // files tested concurrently
	roundWorkers int // goroutines per file
	logLevel     zapcore.Level
	seed         int64 // 0 means crypto/rand
}

func addFlags(flags *pflag.FlagSet) {
	flags.Uint(keyRounds, millerrabin.DefaultRounds, "number of Miller-Rabin rounds per number")
	flags.Int(keyWorkers, runtime.NumCPU(), "number of files tested concurrently")
	flags.Int(keyRoundWorkers, 1, "number of goroutines sharing the rounds for a single number")
	flags.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.Int64(keySeed, 0, "seed for reproducible base selection; 0 uses crypto/rand")
}

// newViper binds the flags and the MILLERRABIN_* environment variables. Flags take precedence.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "binding flags failed")
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*config, error) {
	cfg := &config{
		rounds:       v.GetUint(keyRounds),
		workers:      v.GetInt(keyWorkers),
		roundWorkers: v.GetInt(keyRoundWorkers),
		seed:         v.GetInt64(keySeed),
	}
	if err := cfg.logLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, errors.Wrapf(err, "invalid %v", keyLogLevel)
	}
	if cfg.workers < 1 {
		return nil, errors.Errorf("%v must be positive, got %v", keyWorkers, cfg.workers)
	}
	if cfg.roundWorkers < 1 {
		return nil, errors.Errorf("%v must be positive, got %v", keyRoundWorkers, cfg.roundWorkers)
	}
	return cfg, nil
}

// newLogger logs human-readable lines to w.
func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).Named("millerrabin")
}
