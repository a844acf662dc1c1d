package rarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

func fixedRnd(v float64) func() float64 {
	return func() float64 { return v }
}

func TestResolve_WalksBandsInOrder(t *testing.T) {
	weights := Weights{
		domain.RarityCommon:   50,
		domain.RarityUncommon: 30,
		domain.RarityRare:     20,
	}

	tests := []struct {
		name string
		rnd  float64
		want domain.Rarity
	}{
		{"start of first band", 0.0, domain.RarityCommon},
		{"end of first band", 0.49, domain.RarityCommon},
		{"second band", 0.5, domain.RarityUncommon},
		{"third band", 0.81, domain.RarityRare},
		{"top of range", 0.999, domain.RarityRare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(weights, 0, fixedRnd(tt.rnd))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ZeroWeightTable(t *testing.T) {
	_, err := Resolve(Weights{domain.RarityEpic: 0}, 0, fixedRnd(0.5))
	assert.ErrorIs(t, err, domain.ErrZeroWeightTable)

	_, err = Resolve(Weights{}, 3, fixedRnd(0.5))
	assert.ErrorIs(t, err, domain.ErrZeroWeightTable)
}

func TestResolve_SkipsZeroWeightTiers(t *testing.T) {
	weights := Weights{
		domain.RarityCommon:    0,
		domain.RarityLegendary: 10,
	}

	got, err := Resolve(weights, 0, fixedRnd(0.0))
	require.NoError(t, err)
	assert.Equal(t, domain.RarityLegendary, got)
}

func TestAdjusted_LuckOnlyBoostsRareAndAbove(t *testing.T) {
	weights := Weights{
		domain.RarityCommon:   100,
		domain.RarityUncommon: 50,
		domain.RarityRare:     10,
		domain.RarityDivine:   1,
	}

	adjusted := Adjusted(weights, 5) // 1.5x

	assert.Equal(t, 100.0, adjusted[domain.RarityCommon])
	assert.Equal(t, 50.0, adjusted[domain.RarityUncommon])
	assert.InDelta(t, 15.0, adjusted[domain.RarityRare], 1e-9)
	assert.InDelta(t, 1.5, adjusted[domain.RarityDivine], 1e-9)
}

func TestLuckMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, LuckMultiplier(0))
	assert.InDelta(t, 1.5, LuckMultiplier(5), 1e-9)
	assert.Equal(t, 1.0, LuckMultiplier(-2))
}

func TestResolve_LuckShiftsBandBoundary(t *testing.T) {
	weights := Weights{
		domain.RarityCommon: 50,
		domain.RarityRare:   50,
	}

	// Without luck: total 100, 0.5*100=50 falls into the Rare band.
	got, err := Resolve(weights, 0, fixedRnd(0.5))
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, got)

	// With luck 10 the Rare weight doubles: total 150, roll 0.32*150=48
	// stays Common while 0.34*150=51 lands on Rare.
	got, err = Resolve(weights, 10, fixedRnd(0.32))
	require.NoError(t, err)
	assert.Equal(t, domain.RarityCommon, got)

	got, err = Resolve(weights, 10, fixedRnd(0.34))
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, got)
}
