package fixedUints

import (
	"math/bits"
)

// MontgomeryContext holds the constants for Montgomery arithmetic modulo a fixed odd modulus n, with R = 2^(64*W).
//
// A number x is represented in Montgomery form as x*R mod n.
// A MontgomeryContext is read-only after construction and may be shared between goroutines.
type MontgomeryContext[W WordArray] struct {
	modulus  UInt[W]
	mc       uint64  // -1/n mod 2^64
	rModN    UInt[W] // R mod n, i.e. 1 in Montgomery form
	rSquared UInt[W] // R^2 mod n, used to convert into Montgomery form
}

// NewMontgomeryContext computes the Montgomery constants for the modulus n. n must be odd; we panic otherwise.
func NewMontgomeryContext[W WordArray](n *UInt[W]) *MontgomeryContext[W] {
	if !n.IsOdd() {
		panic(ErrorPrefix + "Montgomery arithmetic requires an odd modulus")
	}
	ret := &MontgomeryContext[W]{modulus: *n, mc: NegativeInverse64(n.words[0])}

	var r UInt[W] // 1 mod n
	if !n.IsOne() {
		r.SetOne()
	}
	bitCapacity := 64 * len(n.words)
	for i := 0; i < bitCapacity; i++ {
		r.doubleMod(n)
	}
	ret.rModN = r
	for i := 0; i < bitCapacity; i++ {
		r.doubleMod(n)
	}
	ret.rSquared = r
	return ret
}

// doubleMod sets z = 2*z mod n, assuming z < n.
func (z *UInt[W]) doubleMod(n *UInt[W]) {
	carry := z.AddAndReturnCarry(z, z)
	// On carry, the true value 2^(64*W) + z exceeds n and the wrapped-around subtraction is exact.
	if carry != 0 || !z.IsLess(n) {
		z.Sub(z, n)
	}
}

// Modulus returns the modulus n.
func (mctx *MontgomeryContext[W]) Modulus() UInt[W] {
	return mctx.modulus
}

// NegativeInverse returns the constant -1/n mod 2^64.
func (mctx *MontgomeryContext[W]) NegativeInverse() uint64 {
	return mctx.mc
}

// MontgomeryOne returns R mod n, which is the Montgomery form of 1.
func (mctx *MontgomeryContext[W]) MontgomeryOne() UInt[W] {
	return mctx.rModN
}

// ConversionConstant returns R^2 mod n.
func (mctx *MontgomeryContext[W]) ConversionConstant() UInt[W] {
	return mctx.rSquared
}

// MulMontgomery sets z = x*y/R mod n. We require x < R and y < n (or vice versa). The result is fully reduced.
func (mctx *MontgomeryContext[W]) MulMontgomery(z, x, y *UInt[W]) {
	MulMontgomery(z, x, y, &mctx.modulus, mctx.mc)
}

// ToMontgomery sets z = x*R mod n. x need not be reduced.
func (mctx *MontgomeryContext[W]) ToMontgomery(z, x *UInt[W]) {
	MulMontgomery(z, x, &mctx.rSquared, &mctx.modulus, mctx.mc)
}

// FromMontgomery sets z = x/R mod n, converting out of Montgomery form.
func (mctx *MontgomeryContext[W]) FromMontgomery(z, x *UInt[W]) {
	one := One[W]()
	MulMontgomery(z, x, &one, &mctx.modulus, mctx.mc)
}

// MulMod sets z = x*y mod n for ordinary (non-Montgomery) residues. Neither x nor y needs to be reduced.
func (mctx *MontgomeryContext[W]) MulMod(z, x, y *UInt[W]) {
	var xMontgomery UInt[W]
	mctx.ToMontgomery(&xMontgomery, x)
	// (x*R) * y / R == x*y
	MulMontgomery(z, &xMontgomery, y, &mctx.modulus, mctx.mc)
}

// ExpMontgomery sets z = base^exponent in Montgomery form, where base is also in Montgomery form (and reduced).
//
// We scan the exponent from the most significant bit, squaring on every bit and multiplying by base on set bits.
func (mctx *MontgomeryContext[W]) ExpMontgomery(z, base, exponent *UInt[W]) {
	IncrementCallCounter(CallCounterExp)
	b := *base // base may alias z
	acc := mctx.rModN
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		mctx.MulMontgomery(&acc, &acc, &acc)
		if exponent.Bit(i) == 1 {
			mctx.MulMontgomery(&acc, &acc, &b)
		}
	}
	*z = acc
}

// Exp sets z = base^exponent mod n for an ordinary residue base (not necessarily reduced). 0^0 is 1 mod n.
func (mctx *MontgomeryContext[W]) Exp(z, base, exponent *UInt[W]) {
	var acc UInt[W]
	mctx.ToMontgomery(&acc, base)
	mctx.ExpMontgomery(&acc, &acc, exponent)
	mctx.FromMontgomery(z, &acc)
}

// PowMod returns base^exponent mod modulus. modulus must be odd; we panic otherwise.
//
// This computes the Montgomery constants on each call; use a [MontgomeryContext] for repeated use of the same modulus.
func PowMod[W WordArray](base, exponent, modulus *UInt[W]) (z UInt[W]) {
	NewMontgomeryContext(modulus).Exp(&z, base, exponent)
	return
}

// MulMontgomery sets z = x*y/R mod n for R = 2^(64*W), where mc == -1/n mod 2^64.
// We require n odd, x < R and y < n (or vice versa). The result is in [0, n).
//
// This is word-by-word Montgomery multiplication (coarsely integrated operand scanning):
// for each word y[i], we add x*y[i] to the accumulator, add a multiple of n that makes the lowest word 0
// and shift down by one word. The accumulator has W words plus two carry words res1, res2 that are carried across iterations.
// The accumulator stays below 2n, so a single conditional subtraction suffices at the end.
func MulMontgomery[W WordArray](z, x, y, n *UInt[W], mc uint64) {
	IncrementCallCounter(CallCounterMulMontgomery)
	var t W
	var res1, res2 uint64
	N := len(t)
	for i := 0; i < N; i++ {
		// t += x * y[i]
		yi := y.words[i]
		var carry uint64
		for j := 0; j < N; j++ {
			carry, t[j] = mulAdd64(x.words[j], yi, t[j], carry)
		}
		res1, carry = bits.Add64(res1, carry, 0)
		res2 = carry

		// t += m * n with m chosen such that t[0] becomes 0, then t >>= 64. We write one index behind.
		m := t[0] * mc
		carry, _ = mulAdd64(m, n.words[0], t[0], 0)
		for j := 1; j < N; j++ {
			carry, t[j-1] = mulAdd64(m, n.words[j], t[j], carry)
		}
		t[N-1], carry = bits.Add64(res1, carry, 0)
		res1 = res2 + carry
	}

	// t + res1*R < 2n; subtract n if t + res1*R >= n.
	var reduced W
	var borrow uint64
	for j := 0; j < N; j++ {
		reduced[j], borrow = bits.Sub64(t[j], n.words[j], borrow)
	}
	if res1 != 0 || borrow == 0 {
		t = reduced
	}
	z.words = t
}

// mulAdd64 returns x*y + a + b as a 128-bit value (hi, lo). This cannot overflow.
func mulAdd64(x, y, a, b uint64) (hi, lo uint64) {
	var carry uint64
	hi, lo = bits.Mul64(x, y)
	lo, carry = bits.Add64(lo, a, 0)
	hi += carry
	lo, carry = bits.Add64(lo, b, 0)
	hi += carry
	return
}
