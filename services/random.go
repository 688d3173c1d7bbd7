package services

import (
	"math/rand/v2"

	"github.com/Dosada05/championship/brackets"
)

// sharedRandom draws from the runtime's goroutine-safe generator.
type sharedRandom struct{}

func (sharedRandom) IntN(n int) int {
	return rand.IntN(n)
}

// randomFor returns a reproducible source for a seed, or the shared one.
func randomFor(seed *uint64) brackets.RandomSource {
	if seed == nil {
		return sharedRandom{}
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}
