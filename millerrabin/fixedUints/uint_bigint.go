package fixedUints

import (
	"math/big"

	"github.com/GottfriedHerold/MillerRabin/internal/utils"
)

// ToBigInt returns a new *big.Int holding the value of z.
func (z *UInt[W]) ToBigInt() *big.Int {
	return utils.WordsToBigInt(z.Words())
}

// SetBigInt sets z to x. x must be in [0, 2^(64*W)); we panic otherwise.
func (z *UInt[W]) SetBigInt(x *big.Int) {
	words := make([]uint64, len(z.words))
	utils.BigIntToWords(x, words)
	z.SetWords(words)
}

// BigIntToUInt converts x in [0, 2^(64*W)) to a UInt. Out-of-range values panic.
func BigIntToUInt[W WordArray](x *big.Int) (z UInt[W]) {
	z.SetBigInt(x)
	return
}
