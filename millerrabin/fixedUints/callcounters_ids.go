package fixedUints

import "github.com/GottfriedHerold/MillerRabin/internal/callcounters"

// Ids of the call counters maintained by this package, see [IncrementCallCounter].
const (
	CallCounterMulMontgomery callcounters.Id = "MulMontgomery"
	CallCounterExp           callcounters.Id = "Exp"
)
