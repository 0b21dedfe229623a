// Package random provides the random byte source used by the RND instruction.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Random is a source of uniformly distributed random bytes.
type Random struct {
	rng *rand.Rand
}

// New returns a new random source. A seed of zero seeds the generator from the
// operating system entropy source, any other value gives a reproducible sequence.
func New(seed uint64) (*Random, error) {
	if seed != 0 {
		return &Random{
			rng: rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
		}, nil
	}

	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("reading random seed: %w", err)
	}
	return &Random{
		rng: rand.New(rand.NewChaCha8(key)),
	}, nil
}

// Byte returns a random byte.
func (r *Random) Byte() byte {
	return byte(r.rng.Uint32())
}
