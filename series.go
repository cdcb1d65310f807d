package exppager

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
)

const (
	DefaultExponentBase     = 10
	DefaultExponentMax      = 3
	DefaultPagesPerExponent = 3
)

// SeriesConfig defines the shape of the exponential offset series: for every
// exponent tier j in [0, exponentMax], the series contains pagesPerExponent
// offsets spaced exponentBase^j apart.
//
// A SeriesConfig is immutable after construction. The generated series is
// computed once on first use and may be shared read-only by any number of
// concurrent readers.
type SeriesConfig struct {
	exponentBase     int
	exponentMax      int
	pagesPerExponent int

	series func() []int
}

// NewSeriesConfig validates the three series knobs and returns a ready
// configuration. Returns ErrInvalidArgument if base <= 0, max < 0 or
// perExponent <= 0.
func NewSeriesConfig(base, max, perExponent int) (*SeriesConfig, error) {
	if base <= 0 {
		return nil, fmt.Errorf("%w: exponent base must be positive, got %d", ErrInvalidArgument, base)
	}
	if max < 0 {
		return nil, fmt.Errorf("%w: exponent max must be non-negative, got %d", ErrInvalidArgument, max)
	}
	if perExponent <= 0 {
		return nil, fmt.Errorf("%w: pages per exponent must be positive, got %d", ErrInvalidArgument, perExponent)
	}

	c := &SeriesConfig{
		exponentBase:     base,
		exponentMax:      max,
		pagesPerExponent: perExponent,
	}
	c.series = sync.OnceValue(c.generate)

	return c, nil
}

// DefaultSeriesConfig returns the configuration with base 10, exponent max 3
// and 3 pages per exponent (a 23-element series).
func DefaultSeriesConfig() *SeriesConfig {
	c, err := NewSeriesConfig(DefaultExponentBase, DefaultExponentMax, DefaultPagesPerExponent)
	if err != nil {
		panic(fmt.Errorf("cannot build default series config: %w", err))
	}

	return c
}

// ExponentBase returns the geometric base of the series.
func (c *SeriesConfig) ExponentBase() int {
	return c.exponentBase
}

// ExponentMax returns the highest exponent tier of the series.
func (c *SeriesConfig) ExponentMax() int {
	return c.exponentMax
}

// PagesPerExponent returns the number of offsets contributed by each tier.
func (c *SeriesConfig) PagesPerExponent() int {
	return c.pagesPerExponent
}

// PagesPerSet returns the length of the full series:
//
//	1 + 2*(pagesPerExponent*(exponentMax+1) - 1)
//
// Always odd: the series is symmetric about its single zero element.
func (c *SeriesConfig) PagesPerSet() int {
	return 1 + 2*(c.pagesPerExponent*(c.exponentMax+1)-1)
}

// Series returns the full symmetric offset series in strictly increasing
// order: the negated, reversed positive half, then 0, then the positive half.
//
// The returned slice is the cached instance; callers must treat it as
// read-only.
func (c *SeriesConfig) Series() []int {
	return c.series()
}

// generate builds the series. The positive half accumulates pagesPerExponent
// offsets per tier, each tier stepping by exponentBase^j; the first offset of
// tier 0 is always 0, so the current page itself is always in the set.
func (c *SeriesConfig) generate() []int {
	half := make([]int, 0, c.pagesPerExponent*(c.exponentMax+1))

	step := 1
	for j := 0; j <= c.exponentMax; j++ {
		a := step
		for i := 0; i < c.pagesPerExponent; i++ {
			half = append(half, a-1)
			a += step
		}
		step *= c.exponentBase
	}

	// Mirror: negate everything but the leading 0, reverse, prepend.
	mirrored := lo.Reverse(lo.Map(half[1:], func(offset int, _ int) int {
		return -offset
	}))

	return append(mirrored, half...)
}
