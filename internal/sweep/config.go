package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/tarai/internal/binding"
	"github.com/on-the-ground/tarai/internal/configkeys"
	"github.com/on-the-ground/tarai/internal/dispatch"
)

const (
	DefaultMin        = -4
	DefaultMax        = 8
	DefaultNumWorkers = 4
	DefaultBufferSize = 64
	// DefaultNaiveSpan keeps the naive variant to a few hundred thousand calls per triple.
	DefaultNaiveSpan = 8
)

// Bounds keep Total within int and the reorder window near a million outcomes.
const (
	MaxCoordinate = 1 << 16
	MaxNumWorkers = 1 << 8
	MaxBufferSize = 1 << 12
)

var (
	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("invalid sweep range")
	// ErrOutOfBounds is returned when a setting exceeds its Max* bound.
	ErrOutOfBounds = errors.New("sweep setting out of bounds")
)

type Config struct {
	Min, Max   int
	NumWorkers int
	BufferSize int
	// NaiveSpan is the largest x-y the naive variant is run on.
	NaiveSpan int
}

// ConfigFrom reads the sweep configuration bound in ctx, using defaults for
// missing keys.
func ConfigFrom(ctx context.Context) (Config, error) {
	var (
		cfg  Config
		errs []error
	)
	read := func(dst *int, key string, fallback int) {
		v, err := binding.GetOr(ctx, key, fallback)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", key, err))
			return
		}
		*dst = v
	}
	read(&cfg.Min, configkeys.ConfigSweepMin, DefaultMin)
	read(&cfg.Max, configkeys.ConfigSweepMax, DefaultMax)
	read(&cfg.NumWorkers, configkeys.ConfigSweepNumWorkers, DefaultNumWorkers)
	read(&cfg.BufferSize, configkeys.ConfigSweepBufferSize, DefaultBufferSize)
	read(&cfg.NaiveSpan, configkeys.ConfigSweepNaiveSpan, DefaultNaiveSpan)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Min < -MaxCoordinate || c.Max > MaxCoordinate {
		return fmt.Errorf("%w: range [%d, %d] exceeds ±%d", ErrOutOfBounds, c.Min, c.Max, MaxCoordinate)
	}
	if c.NumWorkers > MaxNumWorkers {
		return fmt.Errorf("%w: %d workers, max %d", ErrOutOfBounds, c.NumWorkers, MaxNumWorkers)
	}
	if c.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: buffer size %d, max %d", ErrOutOfBounds, c.BufferSize, MaxBufferSize)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, c.Min, c.Max)
	}
	return nil
}

func (c Config) side() int {
	return c.Max - c.Min + 1
}

// Total is the number of triples in [Min, Max]^3.
func (c Config) Total() int {
	s := c.side()
	return s * s * s
}

// window is the number of jobs allowed between dispatch and the report: one
// running and BufferSize queued per worker.
func (c Config) window() int {
	d := dispatch.NewConfig(c.BufferSize, c.NumWorkers)
	return d.NumWorkers * (d.BufferSize + 1)
}

// triple returns the seq-th triple in x-major order.
func (c Config) triple(seq int) (x, y, z int) {
	s := c.side()
	return c.Min + seq/(s*s), c.Min + seq/s%s, c.Min + seq%s
}
