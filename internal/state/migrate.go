package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// snapshotDTO mirrors GameState with pointer scalars so missing fields
// in older saves are distinguishable from zero values.
type snapshotDTO struct {
	Bits            *float64 `json:"bits"`
	TotalBitsEarned *float64 `json:"total_bits_earned"`
	ClickCount      *int64   `json:"click_count"`

	ClickPowerLevel  *int `json:"click_power_level"`
	LuckLevel        *int `json:"luck_level"`
	AutoClickerLevel *int `json:"auto_clicker_level"`
	AscensionLevel   *int `json:"ascension_level"`

	Multiplier          *float64   `json:"multiplier"`
	MultiplierExpiresAt *time.Time `json:"multiplier_expires_at"`
	ShieldClicks        *int       `json:"shield_clicks"`

	EquippedCookieID *string          `json:"equipped_cookie_id"`
	Cookies          []cookieDTO      `json:"cookies"`
	UnlockedRarities *[]domain.Rarity `json:"unlocked_rarities"`
	ClaimedQuestIDs  *[]string        `json:"claimed_quest_ids"`

	CheatMode             *bool `json:"cheat_mode"`
	ChronoSpawnerUnlocked *bool `json:"chrono_spawner_unlocked"`
	SoundEnabled          *bool `json:"sound_enabled"`
}

type cookieDTO struct {
	InstanceID    string        `json:"instance_id"`
	TemplateID    string        `json:"template_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Rarity        domain.Rarity `json:"rarity"`
	BaseValue     float64       `json:"base_value"`
	ColorHex      string        `json:"color_hex"`
	Durability    *int          `json:"durability"`
	MaxDurability *int          `json:"max_durability"`
	ObtainedAt    int64         `json:"obtained_at"`
	AIGenerated   bool          `json:"ai_generated"`
}

// Migrate decodes a saved snapshot onto fresh defaults. Fields absent
// from the save keep their new-game value; cookies missing durability
// are backfilled from their rarity's ceiling.
func Migrate(raw []byte) (*domain.GameState, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}

	gs := domain.NewGameState()

	setFloat(&gs.Bits, dto.Bits)
	setFloat(&gs.TotalBitsEarned, dto.TotalBitsEarned)
	if dto.ClickCount != nil {
		gs.ClickCount = *dto.ClickCount
	}

	setInt(&gs.ClickPowerLevel, dto.ClickPowerLevel)
	setInt(&gs.LuckLevel, dto.LuckLevel)
	setInt(&gs.AutoClickerLevel, dto.AutoClickerLevel)
	setInt(&gs.AscensionLevel, dto.AscensionLevel)

	setFloat(&gs.Multiplier, dto.Multiplier)
	if gs.Multiplier <= 0 {
		gs.Multiplier = 1
	}
	if dto.MultiplierExpiresAt != nil {
		gs.MultiplierExpiresAt = *dto.MultiplierExpiresAt
	}
	setInt(&gs.ShieldClicks, dto.ShieldClicks)

	if dto.EquippedCookieID != nil {
		gs.EquippedCookieID = *dto.EquippedCookieID
	}
	if dto.UnlockedRarities != nil {
		gs.UnlockedRarities = *dto.UnlockedRarities
	}
	if dto.ClaimedQuestIDs != nil {
		gs.ClaimedQuestIDs = *dto.ClaimedQuestIDs
	}

	setBool(&gs.CheatMode, dto.CheatMode)
	setBool(&gs.ChronoSpawnerUnlocked, dto.ChronoSpawnerUnlocked)
	setBool(&gs.SoundEnabled, dto.SoundEnabled)

	gs.Cookies = make([]domain.Cookie, 0, len(dto.Cookies))
	for _, c := range dto.Cookies {
		gs.Cookies = append(gs.Cookies, migrateCookie(c))
	}

	// A dangling equipped reference falls back to the implicit most
	// valuable cookie at read time; clear it here to keep saves clean.
	if gs.EquippedCookieID != "" && gs.CookieByID(gs.EquippedCookieID) == nil {
		gs.EquippedCookieID = ""
	}

	return gs, nil
}

func migrateCookie(c cookieDTO) domain.Cookie {
	def := domain.RarityMaxDurability[c.Rarity]
	if def == 0 {
		def = domain.RarityMaxDurability[domain.RarityUncommon]
	}

	maxDur := def
	if c.MaxDurability != nil && *c.MaxDurability > 0 {
		maxDur = *c.MaxDurability
	}
	dur := maxDur
	if c.Durability != nil && *c.Durability > 0 {
		dur = *c.Durability
	}

	return domain.Cookie{
		InstanceID:    c.InstanceID,
		TemplateID:    c.TemplateID,
		Name:          c.Name,
		Description:   c.Description,
		Rarity:        c.Rarity,
		BaseValue:     c.BaseValue,
		ColorHex:      c.ColorHex,
		Durability:    dur,
		MaxDurability: maxDur,
		ObtainedAt:    c.ObtainedAt,
		AIGenerated:   c.AIGenerated,
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
