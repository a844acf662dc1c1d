package item

import (
	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/rarity"
)

// Definition is a fully-specified roll pool: its entry cost, the rarity
// weight table, and the cookies it can produce.
type Definition struct {
	Pool      Pool
	Cost      float64
	Weights   rarity.Weights
	Templates []domain.CookieTemplate
}

var standardCookies = []domain.CookieTemplate{
	{ID: "c_rust", Name: "Rust Cookie", Description: "Tastes like old metal.", Rarity: domain.RarityCommon, BaseValue: 1, ColorHex: "#8B4513"},
	{ID: "c_sugar", Name: "Sugar Cookie", Description: "Just pure sugar.", Rarity: domain.RarityCommon, BaseValue: 1, ColorHex: "#F5F5DC"},
	{ID: "c_ice", Name: "Ice Cookie", Description: "Freezing cold to the touch.", Rarity: domain.RarityUncommon, BaseValue: 1.5, ColorHex: "#A5F2F3"},
	{ID: "c_hard", Name: "Hard Cookie", Description: "You might break a tooth.", Rarity: domain.RarityUncommon, BaseValue: 1.6, ColorHex: "#708090"},
	{ID: "c_red", Name: "Red Velvet", Description: "Rich and smooth.", Rarity: domain.RarityRare, BaseValue: 2, ColorHex: "#990000"},
	{ID: "c_macha", Name: "Macha Delight", Description: "Earthy green tea flavor.", Rarity: domain.RarityRare, BaseValue: 2.4, ColorHex: "#90EE90"},
	{ID: "c_smoke", Name: "Smoke Cookie", Description: "Made of solidified smoke.", Rarity: domain.RarityUltraRare, BaseValue: 2.8, ColorHex: "#696969"},
	{ID: "c_dark", Name: "Dark Cookie", Description: "Absorbs all light.", Rarity: domain.RarityUltraRare, BaseValue: 3.0, ColorHex: "#111111"},
}

var rareCookies = []domain.CookieTemplate{
	{ID: "c_cloud", Name: "Cloud Cookie", Description: "Light as air.", Rarity: domain.RarityCommon, BaseValue: 2.5, ColorHex: "#E0FFFF"},
	{ID: "c_basic", Name: "Basic Batch", Description: "A standard issue cookie.", Rarity: domain.RarityCommon, BaseValue: 1.5, ColorHex: "#C0C0C0"},
	{ID: "c_red_velvet", Name: "Red Velvet", Description: "Rich and smooth red delight.", Rarity: domain.RarityRare, BaseValue: 2, ColorHex: "#990000"},
	{ID: "c_scookie", Name: "Scookie", Description: "A mysterious striped cookie.", Rarity: domain.RarityRare, BaseValue: 3, ColorHex: "#5D4037"},
	{ID: "c_gookie", Name: "Gookie", Description: "Ideally gooey inside.", Rarity: domain.RarityRare, BaseValue: 3.5, ColorHex: "#76FF03"},
	{ID: "c_ricky", Name: "Ricky Cookie", Description: "The fan favorite.", Rarity: domain.RarityRare, BaseValue: 3.9, ColorHex: "#FF4081"},
	{ID: "c_cook", Name: "Cook Cookie", Description: "Baked to absolute perfection.", Rarity: domain.RarityUltraRare, BaseValue: 4, ColorHex: "#6200EA"},
	{ID: "c_super", Name: "Super Cookie", Description: "Radiating immense power.", Rarity: domain.RarityLegendary, BaseValue: 5, ColorHex: "#FFD700"},
}

var epicCookies = []domain.CookieTemplate{
	{ID: "c_gold_leaf", Name: "Gold Leaf", Description: "Covered in edible gold.", Rarity: domain.RarityRare, BaseValue: 6, ColorHex: "#FFD700"},
	{ID: "c_emerald", Name: "Emerald Chip", Description: "Hard as a gem.", Rarity: domain.RarityUltraRare, BaseValue: 7, ColorHex: "#50C878"},
	{ID: "c_amethyst", Name: "Amethyst Bite", Description: "Crystalline crunch.", Rarity: domain.RarityUltraRare, BaseValue: 7.5, ColorHex: "#9966CC"},
	{ID: "c_fortune", Name: "Fortune Cookie", Description: "Contains a vague prophecy.", Rarity: domain.RarityEpic, BaseValue: 10, ColorHex: "#F4C430"},
	{ID: "c_sapphire", Name: "Sapphire Swirl", Description: "Deep blue mystery.", Rarity: domain.RarityEpic, BaseValue: 11, ColorHex: "#0F52BA"},
	{ID: "c_ruby", Name: "Ruby Glaze", Description: "Red hot value.", Rarity: domain.RarityLegendary, BaseValue: 18, ColorHex: "#E0115F"},
}

var mythicalCookies = []domain.CookieTemplate{
	{ID: "c_golden_chip", Name: "Golden Chip", Description: "A rare cookie with real gold flakes.", Rarity: domain.RarityRare, BaseValue: 5, ColorHex: "#DAA520"},
	{ID: "c_plasma", Name: "Plasma Cookie", Description: "Vibrating with high energy.", Rarity: domain.RarityEpic, BaseValue: 8, ColorHex: "#D946EF"},
	{ID: "c_magma", Name: "Magma Cookie", Description: "Still molten on the inside.", Rarity: domain.RarityEpic, BaseValue: 8.5, ColorHex: "#EA580C"},
	{ID: "c_dragon", Name: "Dragon Scale", Description: "Forged in dragonfire.", Rarity: domain.RarityLegendary, BaseValue: 12, ColorHex: "#DC143C"},
	{ID: "c_unicorn", Name: "Unicorn Horn", Description: "Spiral shaped and magical.", Rarity: domain.RarityLegendary, BaseValue: 13, ColorHex: "#EC4899"},
	{ID: "c_super_myth", Name: "Super Cookie", Description: "Radiating immense power.", Rarity: domain.RarityLegendary, BaseValue: 5, ColorHex: "#FFD700"},
	{ID: "c_nebula", Name: "Nebula Swirl", Description: "Contains a baby universe.", Rarity: domain.RarityMythical, BaseValue: 25, ColorHex: "#4B0082"},
	{ID: "c_void", Name: "Void Biscuit", Description: "Stares back at you.", Rarity: domain.RarityMythical, BaseValue: 28, ColorHex: "#000000"},
	{ID: "c_chrono", Name: "Chrono-Crunch", Description: "Tastes like time itself.", Rarity: domain.RarityMythical, BaseValue: 30, ColorHex: "#06B6D4"},
}

var ascendedCookies = []domain.CookieTemplate{
	{ID: "c_universe", Name: "Universe Cookie", Description: "Contains the dust of a billion stars.", Rarity: domain.RarityLegendary, BaseValue: 14, ColorHex: "#4B0082"},
	{ID: "c_blackhole", Name: "Black Hole", Description: "Consumes light, emits flavor.", Rarity: domain.RarityLegendary, BaseValue: 20, ColorHex: "#121212"},
	{ID: "c_void_cookie", Name: "Void Cookie", Description: "Absolute emptiness, absolute power.", Rarity: domain.RarityMythical, BaseValue: 30, ColorHex: "#2E0249"},
	{ID: "c_lord", Name: "Lord of Cookies", Description: "Bow before the Lord.", Rarity: domain.RarityAscended, BaseValue: 50, ColorHex: "#22D3EE"},
	{ID: "c_god", Name: "Cookie God", Description: "The Creator of all crumbs.", Rarity: domain.RarityDivine, BaseValue: 225, ColorHex: "#FFFFFF"},
}

// Pools returns all roll pool definitions keyed by pool id.
func Pools() map[Pool]Definition {
	return map[Pool]Definition{
		PoolStandard: {Pool: PoolStandard, Cost: StandardRollCost, Weights: standardWeights, Templates: standardCookies},
		PoolRare:     {Pool: PoolRare, Cost: RareRollCost, Weights: rareWeights, Templates: rareCookies},
		PoolEpic:     {Pool: PoolEpic, Cost: EpicRollCost, Weights: epicWeights, Templates: epicCookies},
		PoolMythical: {Pool: PoolMythical, Cost: MythicalRollCost, Weights: mythicalWeights, Templates: mythicalCookies},
		PoolAscended: {Pool: PoolAscended, Cost: AscendedRollCost, Weights: ascendedWeights, Templates: ascendedCookies},
	}
}
