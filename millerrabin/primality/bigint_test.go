package primality

import (
	"context"
	"math/big"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GottfriedHerold/MillerRabin/internal/utils"
	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
)

func TestWidthFor(t *testing.T) {
	minusOne := big.NewInt(-1)
	cases := []struct {
		n     *big.Int
		words int
	}{
		{big.NewInt(0), 1},
		{new(big.Int).Sub(utils.TwoToThePower(64), big.NewInt(1)), 1},
		{utils.TwoToThePower(64), 2},
		{utils.TwoToThePower(191), 3},
		{utils.TwoToThePower(192), 4},
		{utils.TwoToThePower(300), 6},
		{utils.TwoToThePower(500), 8},
		{utils.TwoToThePower(520), 16},
		{utils.TwoToThePower(2047), 32},
		{utils.TwoToThePower(2048), 64},
		{new(big.Int).Sub(utils.TwoToThePower(8192), big.NewInt(1)), 128},
		{utils.TwoToThePower(8192), 0},
		{minusOne, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.words, WidthFor(c.n), "wrong width for 2-log %v", c.n.BitLen())
	}
}

func TestBigIntErrors(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	_, err := IsProbablePrimeBigInt(big.NewInt(-7), 10, src)
	assert.True(t, errors.Is(err, ErrNegativeInput), "got %v", err)
	_, err = IsProbablePrimeBigInt(utils.TwoToThePower(MaxBitLen), 10, src)
	assert.True(t, errors.Is(err, ErrModulusTooLarge), "got %v", err)
	_, err = IsProbablePrimeBigIntParallel(context.Background(), big.NewInt(-7), 10, 2, func() fixedUints.WordSource { return src })
	assert.True(t, errors.Is(err, ErrNegativeInput), "got %v", err)
}

func TestBigIntAgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	src := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		bitLen := 1 + rng.Intn(600)
		n := new(big.Int).Rand(rng, utils.TwoToThePower(uint(bitLen)))
		n.SetBit(n, 0, 1)
		verdict, err := IsProbablePrimeBigInt(n, 20, src)
		require.NoError(t, err)
		require.Equal(t, n.ProbablyPrime(20), verdict, "wrong verdict for %v", n)
	}
}

func TestBigIntKnownValues(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	primes := []string{
		"258985507362441370122387459197868438613",
		"0x7fffffffffffffffffffffffffffffff",
		"0x1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", // 2^521 - 1
	}
	for _, s := range primes {
		verdict, err := IsProbablePrimeBigInt(utils.InitIntFromString(s), 5, src)
		require.NoError(t, err)
		assert.True(t, verdict, "%v reported composite", s)
	}
	composites := []string{"210868207638344878262949693535893677867", "3215031751", "0", "1", "4"}
	for _, s := range composites {
		verdict, err := IsProbablePrimeBigInt(utils.InitIntFromString(s), 20, src)
		require.NoError(t, err)
		assert.False(t, verdict, "%v reported prime", s)
	}

	verdict, err := IsProbablePrimeBigIntParallel(context.Background(), utils.InitIntFromString(primes[0]), 100, 4,
		func() fixedUints.WordSource { return CryptoWordSource{} })
	require.NoError(t, err)
	assert.True(t, verdict)
}

func TestBigIntCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mersenne521 := new(big.Int).Sub(utils.TwoToThePower(521), big.NewInt(1))
	for _, workers := range []int{1, 2} {
		created := 0
		verdict, err := IsProbablePrimeBigIntParallel(ctx, mersenne521, 200, workers, func() fixedUints.WordSource {
			created++
			return rand.New(rand.NewSource(int64(created)))
		})
		require.Error(t, err, "cancelled context ignored with %v workers", workers)
		assert.True(t, errors.Is(err, context.Canceled), "unexpected error %v", err)
		assert.False(t, verdict)
	}

	// decided without drawing bases, so no rounds need to run
	verdict, err := IsProbablePrimeBigIntParallel(ctx, big.NewInt(4), 200, 1, func() fixedUints.WordSource { return CryptoWordSource{} })
	require.NoError(t, err)
	assert.False(t, verdict)
}
