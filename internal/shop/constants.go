package shop

import "time"

// Shop item ids
const (
	ItemRepairKit = "repair_kit"
	ItemShield    = "shield"
	ItemSugarRush = "buff_sugar"
)

// Item is one purchasable consumable.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// Items returns the consumable catalog in display order.
func Items() []Item {
	return []Item{
		{ID: ItemRepairKit, Name: "Baker's Glue", Description: "Repairs the currently equipped cookie by 50%.", Cost: 250},
		{ID: ItemShield, Name: "Titanium Wrapper", Description: "Prevents durability loss for the next 100 clicks.", Cost: 500},
		{ID: ItemSugarRush, Name: "Sugar Rush Vial", Description: "Doubles your click power for 60 seconds.", Cost: 400},
	}
}

// Shield and sugar tunables
const (
	ShieldClicksPerCharge = 100
	SugarRushMultiplier   = 2.0
	SugarRushDuration     = 60 * time.Second
)

// BundleItem is one line of a bundle's contents.
type BundleItem struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// Bundle is a limited-time discounted pack.
type Bundle struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Items        []BundleItem  `json:"items"`
	Cost         float64       `json:"cost"`
	OriginalCost float64       `json:"original_cost"`
	Duration     time.Duration `json:"-"`
}

// Bundle ids
const (
	BundleSafety = "b_safety"
	BundleRush   = "b_rush"
	BundleMega   = "b_mega"
)

// Bundles returns the spawnable bundle table.
func Bundles() []Bundle {
	return []Bundle{
		{
			ID:           BundleSafety,
			Name:         "Safety First",
			Description:  "Keep your cookies in one piece.",
			Items:        []BundleItem{{ItemID: ItemRepairKit, Count: 1}, {ItemID: ItemShield, Count: 1}},
			Cost:         550,
			OriginalCost: 750,
			Duration:     15 * time.Second,
		},
		{
			ID:           BundleRush,
			Name:         "Adrenaline Pack",
			Description:  "Double the sugar, double the speed.",
			Items:        []BundleItem{{ItemID: ItemSugarRush, Count: 2}},
			Cost:         600,
			OriginalCost: 800,
			Duration:     12 * time.Second,
		},
		{
			ID:           BundleMega,
			Name:         "Mechanic Special",
			Description:  "Everything you need to keep clicking.",
			Items:        []BundleItem{{ItemID: ItemRepairKit, Count: 2}, {ItemID: ItemShield, Count: 2}, {ItemID: ItemSugarRush, Count: 1}},
			Cost:         1200,
			OriginalCost: 1900,
			Duration:     20 * time.Second,
		},
	}
}

// BundleSpawnChance is the probability of an offer appearing on each
// spawn tick when none is active.
const BundleSpawnChance = 0.15

// Log messages
const (
	LogMsgItemPurchased   = "Shop item purchased"
	LogMsgBundleSpawned   = "Bundle offer spawned"
	LogMsgBundlePurchased = "Bundle purchased"
)
