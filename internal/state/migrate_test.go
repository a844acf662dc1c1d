package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

func TestMigrate_CorruptJSON(t *testing.T) {
	_, err := Migrate([]byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
}

func TestMigrate_EmptyObjectGetsDefaults(t *testing.T) {
	gs, err := Migrate([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 1, gs.ClickPowerLevel)
	assert.Equal(t, 1.0, gs.Multiplier)
	assert.True(t, gs.SoundEnabled)
	assert.Empty(t, gs.Cookies)
	assert.False(t, gs.CheatMode)
}

func TestMigrate_DurabilityBackfilledFromRarity(t *testing.T) {
	raw := []byte(`{
		"cookies": [
			{"instance_id": "c_red_1", "name": "Red Velvet", "rarity": "Rare", "base_value": 2},
			{"instance_id": "c_x_1", "name": "Mystery", "rarity": "NotARarity", "base_value": 1}
		]
	}`)

	gs, err := Migrate(raw)
	require.NoError(t, err)
	require.Len(t, gs.Cookies, 2)

	assert.Equal(t, 250, gs.Cookies[0].Durability)
	assert.Equal(t, 250, gs.Cookies[0].MaxDurability)
	// Unknown rarity falls back to the Uncommon ceiling.
	assert.Equal(t, 100, gs.Cookies[1].MaxDurability)
}

func TestMigrate_ExplicitValuesSurviveDefaults(t *testing.T) {
	raw := []byte(`{
		"bits": 0,
		"sound_enabled": false,
		"multiplier": 5,
		"cheat_mode": true,
		"cookies": [
			{"instance_id": "a", "name": "A", "rarity": "Common", "base_value": 1, "durability": 7, "max_durability": 50}
		]
	}`)

	gs, err := Migrate(raw)
	require.NoError(t, err)

	assert.Equal(t, 0.0, gs.Bits)
	assert.False(t, gs.SoundEnabled)
	assert.Equal(t, 5.0, gs.Multiplier)
	assert.True(t, gs.CheatMode)
	assert.Equal(t, 7, gs.Cookies[0].Durability)
}

func TestMigrate_DanglingEquippedReferenceCleared(t *testing.T) {
	raw := []byte(`{"equipped_cookie_id": "gone", "cookies": []}`)

	gs, err := Migrate(raw)
	require.NoError(t, err)
	assert.Empty(t, gs.EquippedCookieID)
}
