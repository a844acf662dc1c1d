package domain

import "math"

// IndestructibleDurability marks a cookie that never breaks. Click
// durability still decrements but can never reach zero in practice.
const IndestructibleDurability = math.MaxInt32

// CookieTemplate is a rollable cookie definition within a pool.
type CookieTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rarity      Rarity  `json:"rarity"`
	BaseValue   float64 `json:"base_value"`
	ColorHex    string  `json:"color_hex"`
}

// Cookie is an owned instance of a template. Instances carry their own
// durability and a unique instance ID so duplicates coexist.
type Cookie struct {
	InstanceID    string  `json:"instance_id"`
	TemplateID    string  `json:"template_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Rarity        Rarity  `json:"rarity"`
	BaseValue     float64 `json:"base_value"`
	ColorHex      string  `json:"color_hex"`
	Durability    int     `json:"durability"`
	MaxDurability int     `json:"max_durability"`
	ObtainedAt    int64   `json:"obtained_at"`
	AIGenerated   bool    `json:"ai_generated,omitempty"`
}

// Indestructible reports whether the cookie is flagged as unbreakable.
func (c Cookie) Indestructible() bool {
	return c.MaxDurability >= IndestructibleDurability
}
