package fixedUints

// extendedGCD returns (x, y) with a*x + b*y == gcd(a, b), where all arithmetic is modulo 2^64.
//
// The true Bezout coefficients may be negative; the results are their residues modulo 2^64,
// which is all that NegativeInverse64 needs. The recursion depth is bounded by that of Euclid's algorithm on 64-bit inputs.
func extendedGCD(a, b uint64) (x, y uint64) {
	if a == 0 {
		return 0, 1
	}
	x1, y1 := extendedGCD(b%a, a)
	return y1 - (b/a)*x1, x1
}

// NegativeInverse64 returns -1/n modulo 2^64 for odd n. Even n panics.
//
// This is the constant mc with n*mc == -1 mod 2^64 used by Montgomery reduction.
func NegativeInverse64(n uint64) uint64 {
	if n&1 == 0 {
		panic(ErrorPrefix + "NegativeInverse64 called with even argument")
	}
	// 2^64 == q*n + rem, computed without representing 2^64.
	negN := -n
	rem := negN % n
	q := negN/n + 1
	// x1*rem + y1*n == 1 for coprime rem and n, hence n*(y1 - q*x1) == 1 mod 2^64.
	x1, y1 := extendedGCD(rem, n)
	inverse := y1 - q*x1
	return ^inverse + 1
}
