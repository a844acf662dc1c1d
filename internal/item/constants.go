package item

import (
	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/rarity"
)

// Pool identifies a roll pool.
type Pool string

const (
	PoolStandard Pool = "standard"
	PoolRare     Pool = "rare"
	PoolEpic     Pool = "epic"
	PoolMythical Pool = "mythical"
	PoolAscended Pool = "ascended"
)

// Roll costs in Bits
const (
	StandardRollCost = 100
	RareRollCost     = 200
	EpicRollCost     = 500
	MythicalRollCost = 1000
	AscendedRollCost = 200000
)

// Weight tables per pool
var (
	standardWeights = rarity.Weights{
		domain.RarityCommon:    5000,
		domain.RarityUncommon:  3000,
		domain.RarityRare:      1500,
		domain.RarityUltraRare: 400,
	}

	rareWeights = rarity.Weights{
		domain.RarityCommon:    4500,
		domain.RarityRare:      3000,
		domain.RarityUltraRare: 500,
		domain.RarityLegendary: 10,
	}

	epicWeights = rarity.Weights{
		domain.RarityRare:      3000,
		domain.RarityUltraRare: 4000,
		domain.RarityEpic:      2500,
		domain.RarityLegendary: 500,
	}

	mythicalWeights = rarity.Weights{
		domain.RarityRare:      4000,
		domain.RarityUltraRare: 3000,
		domain.RarityEpic:      2000,
		domain.RarityLegendary: 800,
		domain.RarityMythical:  200,
	}

	ascendedWeights = rarity.Weights{
		domain.RarityLegendary: 6000,
		domain.RarityMythical:  3000,
		domain.RarityAscended:  900,
		domain.RarityDivine:    100,
	}
)

// Cache sizing
const templateCacheSize = 64

// Log messages
const (
	LogMsgCookieRolled = "Cookie rolled"
)
