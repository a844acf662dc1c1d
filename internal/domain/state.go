package domain

import "time"

// GameState is the full single-player game aggregate. One process owns
// exactly one of these; all mutation happens through the state store.
type GameState struct {
	Bits            float64 `json:"bits"`
	TotalBitsEarned float64 `json:"total_bits_earned"`
	ClickCount      int64   `json:"click_count"`

	ClickPowerLevel  int `json:"click_power_level"`
	LuckLevel        int `json:"luck_level"`
	AutoClickerLevel int `json:"auto_clicker_level"`
	AscensionLevel   int `json:"ascension_level"`

	Multiplier          float64   `json:"multiplier"`
	MultiplierExpiresAt time.Time `json:"multiplier_expires_at,omitzero"`
	ShieldClicks        int       `json:"shield_clicks"`

	EquippedCookieID string   `json:"equipped_cookie_id,omitempty"`
	Cookies          []Cookie `json:"cookies"`
	UnlockedRarities []Rarity `json:"unlocked_rarities"`
	ClaimedQuestIDs  []string `json:"claimed_quest_ids"`

	CheatMode             bool `json:"cheat_mode"`
	ChronoSpawnerUnlocked bool `json:"chrono_spawner_unlocked"`
	SoundEnabled          bool `json:"sound_enabled"`

	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NewGameState returns the aggregate for a brand-new save.
func NewGameState() *GameState {
	return &GameState{
		ClickPowerLevel:  1,
		Multiplier:       1,
		SoundEnabled:     true,
		Cookies:          []Cookie{},
		UnlockedRarities: []Rarity{},
		ClaimedQuestIDs:  []string{},
	}
}

// CookieByID returns a pointer into the collection, or nil.
func (g *GameState) CookieByID(instanceID string) *Cookie {
	for i := range g.Cookies {
		if g.Cookies[i].InstanceID == instanceID {
			return &g.Cookies[i]
		}
	}
	return nil
}

// RemoveCookie drops the instance from the collection and clears the
// equipped slot if it pointed at the removed cookie.
func (g *GameState) RemoveCookie(instanceID string) bool {
	for i := range g.Cookies {
		if g.Cookies[i].InstanceID == instanceID {
			g.Cookies = append(g.Cookies[:i], g.Cookies[i+1:]...)
			if g.EquippedCookieID == instanceID {
				g.EquippedCookieID = ""
			}
			return true
		}
	}
	return false
}

// MostValuableCookie returns the owned cookie with the highest base
// value, or nil for an empty collection.
func (g *GameState) MostValuableCookie() *Cookie {
	var best *Cookie
	for i := range g.Cookies {
		if best == nil || g.Cookies[i].BaseValue > best.BaseValue {
			best = &g.Cookies[i]
		}
	}
	return best
}

// ActiveCookie resolves the cookie clicks act on: the equipped cookie if
// the reference is still valid, otherwise the most valuable one.
func (g *GameState) ActiveCookie() *Cookie {
	if g.EquippedCookieID != "" {
		if c := g.CookieByID(g.EquippedCookieID); c != nil {
			return c
		}
	}
	return g.MostValuableCookie()
}

// UnlockRarity records the rarity in the unlocked set, once.
func (g *GameState) UnlockRarity(r Rarity) {
	for _, v := range g.UnlockedRarities {
		if v == r {
			return
		}
	}
	g.UnlockedRarities = append(g.UnlockedRarities, r)
}

// CollectionBaseValueSum is the sum of base values across all owned
// cookies. It feeds both click power and auto income.
func (g *GameState) CollectionBaseValueSum() float64 {
	var sum float64
	for _, c := range g.Cookies {
		sum += c.BaseValue
	}
	return sum
}

// DistinctCookieNames counts unique cookie names in the collection.
func (g *GameState) DistinctCookieNames() int {
	seen := make(map[string]struct{}, len(g.Cookies))
	for _, c := range g.Cookies {
		seen[c.Name] = struct{}{}
	}
	return len(seen)
}

// QuestClaimed reports whether the quest reward was already collected.
func (g *GameState) QuestClaimed(questID string) bool {
	for _, id := range g.ClaimedQuestIDs {
		if id == questID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand outside the store lock.
func (g *GameState) Clone() *GameState {
	out := *g
	out.Cookies = make([]Cookie, len(g.Cookies))
	copy(out.Cookies, g.Cookies)
	out.UnlockedRarities = make([]Rarity, len(g.UnlockedRarities))
	copy(out.UnlockedRarities, g.UnlockedRarities)
	out.ClaimedQuestIDs = make([]string, len(g.ClaimedQuestIDs))
	copy(out.ClaimedQuestIDs, g.ClaimedQuestIDs)
	return &out
}
