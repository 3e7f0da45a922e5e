package primality

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
)

// MaxBitLen is the largest bit length supported by [IsProbablePrimeBigInt].
const MaxBitLen = 8192

// IsProbablePrimeBigInt runs the Miller-Rabin test on an arbitrary-precision integer.
//
// n is converted to the smallest supported fixed width that holds it. Negative n and n with more than [MaxBitLen] bits are rejected with an error.
// src must not be used concurrently by others during the call.
func IsProbablePrimeBigInt(n *big.Int, rounds uint, src fixedUints.WordSource) (bool, error) {
	checker, err := checkerFor(n)
	if err != nil {
		return false, err
	}
	return checker.check(context.Background(), rounds, 1, func() fixedUints.WordSource { return src })
}

// IsProbablePrimeBigIntParallel is like [IsProbablePrimeBigInt], but distributes the rounds over up to workers goroutines, see [IsProbablePrimeParallel].
// newSource is called once per goroutine.
func IsProbablePrimeBigIntParallel(ctx context.Context, n *big.Int, rounds uint, workers int, newSource func() fixedUints.WordSource) (bool, error) {
	checker, err := checkerFor(n)
	if err != nil {
		return false, err
	}
	return checker.check(ctx, rounds, workers, newSource)
}

// WidthFor returns the number of 64-bit words of the fixed width used for n, or 0 if n is negative or too large.
func WidthFor(n *big.Int) int {
	checker, err := checkerFor(n)
	if err != nil {
		return 0
	}
	return checker.wordCount()
}

type widthChecker interface {
	check(ctx context.Context, rounds uint, workers int, newSource func() fixedUints.WordSource) (bool, error)
	wordCount() int
}

func checkerFor(n *big.Int) (widthChecker, error) {
	if n.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeInput, "got %v", n)
	}
	bitLen := n.BitLen()
	switch {
	case bitLen <= 64:
		return newFixedWidthChecker[fixedUints.Words1](n), nil
	case bitLen <= 128:
		return newFixedWidthChecker[fixedUints.Words2](n), nil
	case bitLen <= 192:
		return newFixedWidthChecker[fixedUints.Words3](n), nil
	case bitLen <= 256:
		return newFixedWidthChecker[fixedUints.Words4](n), nil
	case bitLen <= 384:
		return newFixedWidthChecker[fixedUints.Words6](n), nil
	case bitLen <= 512:
		return newFixedWidthChecker[fixedUints.Words8](n), nil
	case bitLen <= 1024:
		return newFixedWidthChecker[fixedUints.Words16](n), nil
	case bitLen <= 2048:
		return newFixedWidthChecker[fixedUints.Words32](n), nil
	case bitLen <= 4096:
		return newFixedWidthChecker[fixedUints.Words64](n), nil
	case bitLen <= MaxBitLen:
		return newFixedWidthChecker[fixedUints.Words128](n), nil
	default:
		return nil, errors.Wrapf(ErrModulusTooLarge, "got %v bits, at most %v are supported", bitLen, MaxBitLen)
	}
}

type fixedWidthChecker[W fixedUints.WordArray] struct {
	n fixedUints.UInt[W]
}

func newFixedWidthChecker[W fixedUints.WordArray](n *big.Int) *fixedWidthChecker[W] {
	return &fixedWidthChecker[W]{n: fixedUints.BigIntToUInt[W](n)}
}

func (c *fixedWidthChecker[W]) wordCount() int {
	return c.n.WordCount()
}

func (c *fixedWidthChecker[W]) check(ctx context.Context, rounds uint, workers int, newSource func() fixedUints.WordSource) (bool, error) {
	newBases := func() BaseSource[W] { return NewUniformBases[W](newSource()) }
	// A single worker still goes through the parallel tester, which checks ctx between rounds.
	return IsProbablePrimeParallel(ctx, &c.n, rounds, workers, newBases)
}
