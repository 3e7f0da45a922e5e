package primality

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/GottfriedHerold/MillerRabin/millerrabin/fixedUints"
)

// BaseSource provides candidate bases for Miller-Rabin rounds.
//
// Candidates need not lie in the admissible interval [2, n-2]; the tester silently discards and redraws those.
// A BaseSource is used by a single goroutine at a time.
type BaseSource[W fixedUints.WordArray] interface {
	NextCandidate(n *fixedUints.UInt[W]) fixedUints.UInt[W]
}

// UniformBases draws candidates uniformly from [0, 2^BitLen(n)). At least a quarter of all draws is admissible for n >= 5.
type UniformBases[W fixedUints.WordArray] struct {
	src fixedUints.WordSource
}

func NewUniformBases[W fixedUints.WordArray](src fixedUints.WordSource) *UniformBases[W] {
	if src == nil {
		panic(ErrorPrefix + "NewUniformBases called with nil source")
	}
	return &UniformBases[W]{src: src}
}

func (ub *UniformBases[W]) NextCandidate(n *fixedUints.UInt[W]) (candidate fixedUints.UInt[W]) {
	candidate.SetRandomBits(ub.src, n.BitLen())
	return
}

// ScriptedBases hands out a fixed list of candidates in order. It is meant for reproducible tests.
//
// Running out of candidates panics.
type ScriptedBases[W fixedUints.WordArray] struct {
	candidates []fixedUints.UInt[W]
	next       int
}

func NewScriptedBases[W fixedUints.WordArray](candidates ...fixedUints.UInt[W]) *ScriptedBases[W] {
	return &ScriptedBases[W]{candidates: append([]fixedUints.UInt[W](nil), candidates...)}
}

func (sb *ScriptedBases[W]) NextCandidate(*fixedUints.UInt[W]) fixedUints.UInt[W] {
	if sb.next >= len(sb.candidates) {
		panic(fmt.Sprintf(ErrorPrefix+"ScriptedBases exhausted after %v candidates", len(sb.candidates)))
	}
	sb.next++
	return sb.candidates[sb.next-1]
}

// Used returns the number of candidates handed out so far.
func (sb *ScriptedBases[W]) Used() int {
	return sb.next
}

// CryptoWordSource is a [fixedUints.WordSource] backed by crypto/rand. Unlike *math/rand.Rand, it is safe for concurrent use.
type CryptoWordSource struct{}

func (CryptoWordSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(ErrorPrefix + "reading from crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
