// Package primality implements the Miller-Rabin probabilistic primality test on top of the fixed-width integers of package fixedUints.
//
// A "composite" verdict is always correct. A "probably prime" verdict after k rounds is wrong with probability at most 4^(-k),
// provided the bases are drawn uniformly.
package primality

import (
	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
)

// IsProbablePrime runs the Miller-Rabin test with the given number of rounds on n, drawing bases from the given source.
//
// It returns false if n is definitely composite (or < 2) and true if n is prime with high probability.
// 2 and 3 are prime; even numbers > 2 are rejected before any round is run. For rounds == 0, every odd n >= 5 is reported as probably prime.
func IsProbablePrime[W fixedUints.WordArray](n *fixedUints.UInt[W], rounds uint, bases BaseSource[W]) bool {
	if verdict, decided := trivialVerdict(n); decided {
		return verdict
	}
	if rounds == 0 {
		return true
	}
	tester := newWitnessTester(n)
	for i := uint(0); i < rounds; i++ {
		a := tester.drawBase(bases)
		if tester.isWitness(&a) {
			return false
		}
	}
	return true
}

// trivialVerdict decides n < 4 and even n. For all other n, decided is false.
func trivialVerdict[W fixedUints.WordArray](n *fixedUints.UInt[W]) (verdict bool, decided bool) {
	if n.BitLen() <= 2 { // n < 4
		return n.Word(0) >= 2, true
	}
	if !n.IsOdd() {
		return false, true
	}
	return false, false
}

// witnessTester holds the per-modulus state shared by all rounds. It is read-only after creation.
type witnessTester[W fixedUints.WordArray] struct {
	mctx                   *fixedUints.MontgomeryContext[W]
	nMinusOne              fixedUints.UInt[W]
	d                      fixedUints.UInt[W] // n - 1 == 2^r * d, with d odd
	r                      int
	oneMontgomery          fixedUints.UInt[W]
	minusOneMontgomery     fixedUints.UInt[W]
	lowerBound, upperBound fixedUints.UInt[W] // admissible bases are in [2, n-2]
}

// newWitnessTester requires n odd and n >= 5.
func newWitnessTester[W fixedUints.WordArray](n *fixedUints.UInt[W]) *witnessTester[W] {
	wt := &witnessTester[W]{mctx: fixedUints.NewMontgomeryContext(n)}
	wt.nMinusOne.SubWord(n, 1)
	wt.d = wt.nMinusOne
	for !wt.d.IsOdd() {
		wt.d.ShiftRight(&wt.d, 1)
		wt.r++
	}
	wt.oneMontgomery = wt.mctx.MontgomeryOne()
	// -1 in Montgomery form is n - R mod n; R mod n is non-zero as n is odd and > 1.
	wt.minusOneMontgomery.Sub(n, &wt.oneMontgomery)
	wt.lowerBound = fixedUints.Two[W]()
	wt.upperBound.SubWord(n, 2)
	return wt
}

// drawBase draws candidates until one lies in [2, n-2].
func (wt *witnessTester[W]) drawBase(bases BaseSource[W]) fixedUints.UInt[W] {
	modulus := wt.mctx.Modulus()
	for {
		candidate := bases.NextCandidate(&modulus)
		if !candidate.IsLess(&wt.lowerBound) && !wt.upperBound.IsLess(&candidate) {
			return candidate
		}
	}
}

// isWitness runs a single round with base a in [2, n-2] and reports whether a proves n composite.
func (wt *witnessTester[W]) isWitness(a *fixedUints.UInt[W]) bool {
	fixedUints.IncrementCallCounter(CallCounterWitnessRound)
	var x fixedUints.UInt[W]
	wt.mctx.ToMontgomery(&x, a)
	wt.mctx.ExpMontgomery(&x, &x, &wt.d)
	if x.IsEqual(&wt.oneMontgomery) || x.IsEqual(&wt.minusOneMontgomery) {
		return false
	}
	for i := 1; i < wt.r; i++ {
		wt.mctx.MulMontgomery(&x, &x, &x)
		if x.IsEqual(&wt.minusOneMontgomery) {
			return false
		}
		// once x is 1, it stays 1 and never reaches n-1
		if x.IsEqual(&wt.oneMontgomery) {
			return true
		}
	}
	return true
}
