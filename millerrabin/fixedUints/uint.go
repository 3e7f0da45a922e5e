package fixedUints

import (
	"math/bits"
)

// WordArray is the constraint on the backing arrays of [UInt]. Each allowed type fixes the word count W.
type WordArray interface {
	~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 | ~[6]uint64 | ~[8]uint64 | ~[16]uint64 | ~[32]uint64 | ~[64]uint64 | ~[128]uint64
}

type (
	Words1   = [1]uint64
	Words2   = [2]uint64
	Words3   = [3]uint64
	Words4   = [4]uint64
	Words6   = [6]uint64
	Words8   = [8]uint64
	Words16  = [16]uint64
	Words32  = [32]uint64
	Words64  = [64]uint64
	Words128 = [128]uint64
)

// UInt is an unsigned integer of 64*W bits, where W is the length of the word array.
//
// The zero value is 0 and ready to use. UInts are values; copying them copies the number.
type UInt[W WordArray] struct {
	words W // low-endian
}

type (
	UInt64   = UInt[Words1]
	UInt128  = UInt[Words2]
	UInt192  = UInt[Words3]
	UInt256  = UInt[Words4]
	UInt384  = UInt[Words6]
	UInt512  = UInt[Words8]
	UInt1024 = UInt[Words16]
	UInt2048 = UInt[Words32]
	UInt4096 = UInt[Words64]
	UInt8192 = UInt[Words128]
)

// WordSource is a source of uniformly random 64-bit words. *math/rand.Rand satisfies it.
type WordSource interface {
	Uint64() uint64
}

func Zero[W WordArray]() (z UInt[W]) { return }

func One[W WordArray]() (z UInt[W]) {
	z.words[0] = 1
	return
}

func Two[W WordArray]() (z UInt[W]) {
	z.words[0] = 2
	return
}

func Three[W WordArray]() (z UInt[W]) {
	z.words[0] = 3
	return
}

// FromWord returns a UInt whose low word is v and whose other words are zero.
func FromWord[W WordArray](v uint64) (z UInt[W]) {
	z.words[0] = v
	return
}

// WordCount returns the number W of 64-bit words of z's type.
func (z *UInt[W]) WordCount() int {
	return len(z.words)
}

// BitCapacity returns 64*W, the number of bits z's type can hold.
func (z *UInt[W]) BitCapacity() int {
	return 64 * len(z.words)
}

// Word returns the i'th word of z, where word 0 is the least significant one.
func (z *UInt[W]) Word(i int) uint64 {
	return z.words[i]
}

// SetWord sets the i'th word of z to v.
func (z *UInt[W]) SetWord(i int, v uint64) {
	z.words[i] = v
}

// Words returns a copy of z's words as a low-endian slice of length W.
func (z *UInt[W]) Words() []uint64 {
	ret := make([]uint64, len(z.words))
	for i := 0; i < len(z.words); i++ {
		ret[i] = z.words[i]
	}
	return ret
}

// SetWords sets z from a low-endian slice of words. Missing high words are zero; a slice longer than W panics.
func (z *UInt[W]) SetWords(words []uint64) {
	if len(words) > len(z.words) {
		panic(ErrorPrefix + "SetWords called with more words than the type can hold")
	}
	z.words = *new(W)
	for i, word := range words {
		z.words[i] = word
	}
}

func (z *UInt[W]) Set(x *UInt[W]) {
	z.words = x.words
}

func (z *UInt[W]) SetZero() {
	z.words = *new(W)
}

func (z *UInt[W]) SetOne() {
	z.words = *new(W)
	z.words[0] = 1
}

// SetUint64 sets z to the (single-word) value v.
func (z *UInt[W]) SetUint64(v uint64) {
	z.words = *new(W)
	z.words[0] = v
}

// IsZero checks whether z == 0.
func (z *UInt[W]) IsZero() bool {
	for i := 0; i < len(z.words); i++ {
		if z.words[i] != 0 {
			return false
		}
	}
	return true
}

// IsOne checks whether z == 1.
func (z *UInt[W]) IsOne() bool {
	if z.words[0] != 1 {
		return false
	}
	for i := 1; i < len(z.words); i++ {
		if z.words[i] != 0 {
			return false
		}
	}
	return true
}

// LowBit returns the parity of z as 0 or 1.
func (z *UInt[W]) LowBit() uint {
	return uint(z.words[0] & 1)
}

func (z *UInt[W]) IsOdd() bool {
	return z.words[0]&1 == 1
}

// Bit returns the i'th bit of z as 0 or 1. Indices outside [0, 64*W) give 0.
func (z *UInt[W]) Bit(i int) uint {
	if i < 0 || i >= 64*len(z.words) {
		return 0
	}
	return uint(z.words[i/64]>>(uint(i)%64)) & 1
}

// BitLen returns the minimal number of bits needed to represent z. BitLen of 0 is 0.
func (z *UInt[W]) BitLen() int {
	for i := len(z.words) - 1; i >= 0; i-- {
		if z.words[i] != 0 {
			return 64*i + bits.Len64(z.words[i])
		}
	}
	return 0
}

// Cmp compares z and x and returns -1 if z < x, 0 if z == x and +1 if z > x.
//
// Words are compared from the most significant one down; the first differing word decides.
func (z *UInt[W]) Cmp(x *UInt[W]) int {
	for i := len(z.words) - 1; i >= 0; i-- {
		if z.words[i] != x.words[i] {
			if z.words[i] < x.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (z *UInt[W]) IsEqual(x *UInt[W]) bool {
	for i := 0; i < len(z.words); i++ {
		if z.words[i] != x.words[i] {
			return false
		}
	}
	return true
}

// IsLess checks whether z < x.
func (z *UInt[W]) IsLess(x *UInt[W]) bool {
	return z.Cmp(x) < 0
}

// AddWord sets z = x + v modulo 2^(64*W) and returns the carry (0 or 1).
//
// The carry is only propagated as far as needed.
func (z *UInt[W]) AddWord(x *UInt[W], v uint64) (carry uint64) {
	z.words = x.words
	carry = v
	for i := 0; i < len(z.words) && carry != 0; i++ {
		z.words[i], carry = bits.Add64(z.words[i], carry, 0)
	}
	return
}

// SubWord sets z = x - v modulo 2^(64*W) and returns the borrow (0 or 1).
func (z *UInt[W]) SubWord(x *UInt[W], v uint64) (borrow uint64) {
	z.words = x.words
	borrow = v
	for i := 0; i < len(z.words) && borrow != 0; i++ {
		z.words[i], borrow = bits.Sub64(z.words[i], borrow, 0)
	}
	return
}

// Increment sets z = z + 1 modulo 2^(64*W).
func (z *UInt[W]) Increment() {
	z.AddWord(z, 1)
}

// Decrement sets z = z - 1 modulo 2^(64*W).
func (z *UInt[W]) Decrement() {
	z.SubWord(z, 1)
}

// Add sets z = x + y modulo 2^(64*W).
func (z *UInt[W]) Add(x, y *UInt[W]) {
	z.AddAndReturnCarry(x, y)
}

// AddAndReturnCarry sets z = x + y modulo 2^(64*W) and returns the carry (0 or 1).
func (z *UInt[W]) AddAndReturnCarry(x, y *UInt[W]) (carry uint64) {
	// word + word + carry can overflow in either addition; bits.Add64 folds both into a single carry-out.
	for i := 0; i < len(z.words); i++ {
		z.words[i], carry = bits.Add64(x.words[i], y.words[i], carry)
	}
	return
}

// Sub sets z = x - y modulo 2^(64*W).
func (z *UInt[W]) Sub(x, y *UInt[W]) {
	z.SubAndReturnBorrow(x, y)
}

// SubAndReturnBorrow sets z = x - y modulo 2^(64*W) and returns the borrow (0 or 1). The borrow is 1 iff x < y.
func (z *UInt[W]) SubAndReturnBorrow(x, y *UInt[W]) (borrow uint64) {
	for i := 0; i < len(z.words); i++ {
		z.words[i], borrow = bits.Sub64(x.words[i], y.words[i], borrow)
	}
	return
}

// ShiftLeft sets z = x << k modulo 2^(64*W). k must be < 64; larger shifts panic.
func (z *UInt[W]) ShiftLeft(x *UInt[W], k uint) {
	if k >= 64 {
		panic(ErrorPrefix + "ShiftLeft only supports shifts by less than 64 bits")
	}
	// high to low, so we never read a word of x after it was overwritten (if z == x)
	for i := len(z.words) - 1; i > 0; i-- {
		z.words[i] = x.words[i]<<k | x.words[i-1]>>(64-k)
	}
	z.words[0] = x.words[0] << k
}

// ShiftRight sets z = x >> k. k must be < 64; larger shifts panic.
func (z *UInt[W]) ShiftRight(x *UInt[W], k uint) {
	if k >= 64 {
		panic(ErrorPrefix + "ShiftRight only supports shifts by less than 64 bits")
	}
	last := len(z.words) - 1
	for i := 0; i < last; i++ {
		z.words[i] = x.words[i]>>k | x.words[i+1]<<(64-k)
	}
	z.words[last] = x.words[last] >> k
}

// SetRandomBits sets z to a uniformly random value in [0, 2^bitLen), drawing one word from src for each non-zero word.
//
// bitLen must be in [0, 64*W].
func (z *UInt[W]) SetRandomBits(src WordSource, bitLen int) {
	if bitLen < 0 || bitLen > 64*len(z.words) {
		panic(ErrorPrefix + "SetRandomBits called with bit length outside the capacity of the type")
	}
	for i := 0; i < len(z.words); i++ {
		switch {
		case 64*(i+1) <= bitLen:
			z.words[i] = src.Uint64()
		case 64*i < bitLen:
			z.words[i] = src.Uint64() & (1<<uint(bitLen-64*i) - 1)
		default:
			z.words[i] = 0
		}
	}
}
