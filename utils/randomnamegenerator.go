package utils

import (
	"math/rand"

	"github.com/Pallinder/go-randomdata"
)

// RandomNameGenerator hands out placeholder names for nodes that have
// none. Seeding is explicit so repeated exports of the same scene name
// their anonymous nodes identically.
type RandomNameGenerator struct {
	seen map[string]struct{}
}

func NewRandomNameGenerator(seed int64) *RandomNameGenerator {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	return &RandomNameGenerator{seen: make(map[string]struct{})}
}

func (rng *RandomNameGenerator) RandomName() string {
	for {
		name := randomdata.SillyName()
		if _, exists := rng.seen[name]; !exists {
			rng.seen[name] = struct{}{}
			return name
		}
	}
}
