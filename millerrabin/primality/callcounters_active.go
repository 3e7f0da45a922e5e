//go:build callcounters

package primality

import "github.com/GottfriedHerold/MillerRabin/internal/callcounters"

var _ = callcounters.AddNewCallCounter(CallCounterWitnessRound, "Miller-Rabin round", "")
