package domain

// Rarity is the tier of a cookie. Tiers are ordered from most to least
// common; weighted rolls walk them in this order.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityUltraRare Rarity = "UltraRare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythical  Rarity = "Mythical"
	RarityAscended  Rarity = "Ascended"
	RarityDivine    Rarity = "Divine"
)

var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityUltraRare,
	RarityEpic,
	RarityLegendary,
	RarityMythical,
	RarityAscended,
	RarityDivine,
}

// RarityOrder returns all rarities from most to least common.
func RarityOrder() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// Index returns the position of the rarity in the canonical order, or -1
// for an unknown rarity.
func (r Rarity) Index() int {
	for i, v := range rarityOrder {
		if v == r {
			return i
		}
	}
	return -1
}

// Valid reports whether the rarity is one of the known tiers.
func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

// LuckBoosted reports whether luck upgrades amplify this rarity's roll
// weight. Luck only helps Rare and above.
func (r Rarity) LuckBoosted() bool {
	return r.Index() >= RarityRare.Index()
}

// RarityColors maps each rarity to its display aura color.
var RarityColors = map[Rarity]string{
	RarityCommon:    "#A0A0A0",
	RarityUncommon:  "#4ADE80",
	RarityRare:      "#60A5FA",
	RarityUltraRare: "#9333EA",
	RarityEpic:      "#C084FC",
	RarityLegendary: "#FACC15",
	RarityMythical:  "#F43F5E",
	RarityAscended:  "#22D3EE",
	RarityDivine:    "#FFFFFF",
}

// RarityMaxDurability maps each rarity to the click durability of a fresh
// cookie of that tier.
var RarityMaxDurability = map[Rarity]int{
	RarityCommon:    50,
	RarityUncommon:  100,
	RarityRare:      250,
	RarityUltraRare: 600,
	RarityEpic:      1000,
	RarityLegendary: 2500,
	RarityMythical:  5000,
	RarityAscended:  10000,
	RarityDivine:    25000,
}
