// Package millerrabin is the entry point for probabilistic primality testing of fixed-width and arbitrary-precision integers.
//
// The actual implementation lives in the subpackages fixedUints (fixed-width integers and Montgomery arithmetic) and primality (the Miller-Rabin test);
// this package forwards the parts most users need.
package millerrabin

import (
	"context"
	"math/big"

	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
	"github.com/GottfriedHerold/MillerRabin/millerrabin/primality"
)

type (
	UInt64   = fixedUints.UInt64
	UInt128  = fixedUints.UInt128
	UInt192  = fixedUints.UInt192
	UInt256  = fixedUints.UInt256
	UInt384  = fixedUints.UInt384
	UInt512  = fixedUints.UInt512
	UInt1024 = fixedUints.UInt1024
	UInt2048 = fixedUints.UInt2048
	UInt4096 = fixedUints.UInt4096
	UInt8192 = fixedUints.UInt8192

	WordSource       = fixedUints.WordSource
	CryptoWordSource = primality.CryptoWordSource
)

var (
	ErrNegativeInput   = primality.ErrNegativeInput
	ErrModulusTooLarge = primality.ErrModulusTooLarge
	ErrInvalidHexDigit = fixedUints.ErrInvalidHexDigit
	ErrEmptyHexString  = fixedUints.ErrEmptyHexString
)

// DefaultRounds is the number of rounds used by the command line tool unless configured otherwise.
const DefaultRounds = 1000

// IsProbablePrime runs rounds many Miller-Rabin rounds on n, with bases drawn from src. See [primality.IsProbablePrime].
func IsProbablePrime[W fixedUints.WordArray](n *fixedUints.UInt[W], rounds uint, src WordSource) bool {
	return primality.IsProbablePrime(n, rounds, primality.NewUniformBases[W](src))
}

// IsProbablePrimeBigInt runs the Miller-Rabin test on an arbitrary-precision n. See [primality.IsProbablePrimeBigInt].
func IsProbablePrimeBigInt(n *big.Int, rounds uint, src WordSource) (bool, error) {
	return primality.IsProbablePrimeBigInt(n, rounds, src)
}

// IsProbablePrimeBigIntParallel spreads the rounds over workers goroutines. See [primality.IsProbablePrimeBigIntParallel].
func IsProbablePrimeBigIntParallel(ctx context.Context, n *big.Int, rounds uint, workers int, newSource func() WordSource) (bool, error) {
	return primality.IsProbablePrimeBigIntParallel(ctx, n, rounds, workers, newSource)
}
