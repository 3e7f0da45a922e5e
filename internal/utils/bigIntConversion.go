package utils

import (
	"encoding/binary"
	"math/big"
)

const ErrorPrefix = "millerrabin / internal / utils: "

// WordsToBigInt converts a low-endian slice of uint64 words to a new big.Int.
// The slice is not retained.
func WordsToBigInt(words []uint64) *big.Int {
	bigEndianBytes := make([]byte, 8*len(words))
	for i, word := range words {
		offset := 8 * (len(words) - 1 - i)
		binary.BigEndian.PutUint64(bigEndianBytes[offset:offset+8], word)
	}
	return new(big.Int).SetBytes(bigEndianBytes)
}

// BigIntToWords writes x into the low-endian word slice target, using all of target.
// We assume 0 <= x < 2^(64*len(target)).
//
// As this is an internal function, panic is OK for error handling.
func BigIntToWords(x *big.Int, target []uint64) {
	if x.Sign() < 0 {
		panic(ErrorPrefix + "BigIntToWords: Trying to convert negative big Int")
	}
	if x.BitLen() > 64*len(target) {
		panic(ErrorPrefix + "BigIntToWords: big Int too large to fit into the given number of words")
	}
	bigEndianBytes := make([]byte, 8*len(target))
	x.FillBytes(bigEndianBytes)
	for i := range target {
		offset := 8 * (len(target) - 1 - i)
		target[i] = binary.BigEndian.Uint64(bigEndianBytes[offset : offset+8])
	}
}

// InitIntFromString initializes a big.Int from a given string.
// This internally uses big.Int's SetString and understands exactly those string formats.
// In particular, the given string can be a decimal, hex, octal or binary representation, but needs to be prefixed if not decimal.
//
// This function panics on failure, which is appropriate for its use case:
// It is supposed to be used to initialize package-level variables and test constants from constant string literals.
func InitIntFromString(input string) *big.Int {
	var t *big.Int = big.NewInt(0)
	var success bool
	t, success = t.SetString(input, 0)
	if !success {
		panic(ErrorPrefix + "String used to initialize big.Int not recognized as a valid number: " + input)
	}
	return t
}

// TwoToThePower returns a new big.Int holding 2^exponent.
func TwoToThePower(exponent uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), exponent)
}
