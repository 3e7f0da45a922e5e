// Package fixedUints provides unsigned integers of a fixed, compile-time word count together with
// the Montgomery-form modular arithmetic needed for primality testing.
//
// The central type is [UInt], parameterized by its backing word array (e.g. UInt[[4]uint64] is a 256-bit integer, aliased as [UInt256]).
// Words are stored low-endian, i.e. word 0 is the least significant one. All arithmetic silently wraps modulo 2^(64*W).
//
// Methods follow the convention of math/big: z.Op(x, y) sets z to the result of the operation applied to x and y.
// The receiver may alias any of the arguments.
//
// Modular arithmetic is provided by [MontgomeryContext], which holds the per-modulus constants.
// Moduli must be odd; there is no support for even moduli, division or general multi-word multiplication.
//
// Contract violations (shifts by a full word or more, even moduli, invalid constants passed to MustFromHex) cause a panic.
// Invalid user input (hex strings) is reported as an error wrapping one of the errors in errors.go.
package fixedUints
