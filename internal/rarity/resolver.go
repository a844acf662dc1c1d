// Package rarity implements the weighted rarity draw shared by every
// roll pool. Weights are walked in canonical rarity order so a fixed
// random value always lands on the same tier.
package rarity

import (
	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// Weights maps rarities to relative roll weights. Zero and missing
// entries are equivalent.
type Weights map[domain.Rarity]float64

// LuckMultiplier returns the weight amplifier for a given luck level.
func LuckMultiplier(luckLevel int) float64 {
	if luckLevel < 0 {
		luckLevel = 0
	}
	return 1 + 0.1*float64(luckLevel)
}

// Adjusted returns a copy of the table with Rare-and-above weights
// scaled by the luck multiplier. Common and Uncommon never benefit.
func Adjusted(weights Weights, luckLevel int) Weights {
	mult := LuckMultiplier(luckLevel)
	out := make(Weights, len(weights))
	for r, w := range weights {
		if r.LuckBoosted() {
			w *= mult
		}
		out[r] = w
	}
	return out
}

// Resolve draws a rarity from the table, luck-adjusted. rnd must return
// a value in [0,1). A table whose adjusted weights sum to zero or less
// yields domain.ErrZeroWeightTable.
func Resolve(weights Weights, luckLevel int, rnd func() float64) (domain.Rarity, error) {
	adjusted := Adjusted(weights, luckLevel)

	var total float64
	for _, w := range adjusted {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return "", domain.ErrZeroWeightTable
	}

	roll := rnd() * total
	var last domain.Rarity
	for _, r := range domain.RarityOrder() {
		w := adjusted[r]
		if w <= 0 {
			continue
		}
		if roll < w {
			return r, nil
		}
		roll -= w
		last = r
	}

	// Floating point drift can leave a sliver past the final band.
	return last, nil
}
