package primality

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
)

// IsProbablePrimeParallel is like [IsProbablePrime], but distributes the rounds over up to workers goroutines.
//
// Each goroutine obtains its own BaseSource from newBases. The first round that proves compositeness stops all others.
// If ctx is cancelled before a verdict is reached, the context's error is returned.
func IsProbablePrimeParallel[W fixedUints.WordArray](ctx context.Context, n *fixedUints.UInt[W], rounds uint, workers int, newBases func() BaseSource[W]) (bool, error) {
	if workers < 1 {
		return false, errors.Wrapf(ErrInvalidWorkerNum, "got %v", workers)
	}
	if verdict, decided := trivialVerdict(n); decided {
		return verdict, nil
	}
	if rounds == 0 {
		return true, nil
	}
	if uint(workers) > rounds {
		workers = int(rounds)
	}
	tester := newWitnessTester(n)

	var roundsDone atomic.Uint64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	share, remainder := rounds/uint(workers), rounds%uint(workers)
	for i := 0; i < workers; i++ {
		myRounds := share
		if uint(i) < remainder {
			myRounds++
		}
		group.Go(func() error {
			bases := newBases()
			for j := uint(0); j < myRounds; j++ {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				a := tester.drawBase(bases)
				if tester.isWitness(&a) {
					return errCompositeFound
				}
				roundsDone.Add(1)
			}
			return nil
		})
	}
	err := group.Wait()
	switch {
	case errors.Is(err, errCompositeFound):
		return false, nil
	case err != nil:
		return false, errors.Wrapf(err, "Miller-Rabin test aborted after %v of %v rounds", roundsDone.Load(), rounds)
	default:
		return true, nil
	}
}
