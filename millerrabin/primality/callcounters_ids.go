package primality

import "github.com/GottfriedHerold/MillerRabin/internal/callcounters"

// CallCounterWitnessRound counts Miller-Rabin rounds. Only maintained with -tags=callcounters.
const CallCounterWitnessRound callcounters.Id = "WitnessRound"
