package crate

import "time"

// Outcome kinds
const (
	OutcomeCurrency = "currency"
	OutcomeRepair   = "repair"
	OutcomeBuff     = "buff"
	OutcomeJackpot  = "jackpot"
)

// Outcome is one probability band of a crate. UpTo is the cumulative
// upper bound of the band on a [0,1) roll. Currency payouts draw
// Min + floor(r*Span) from an independent roll.
type Outcome struct {
	UpTo       float64
	Kind       string
	Min        float64
	Span       float64
	Multiplier float64
	Duration   time.Duration
	Message    string
}

// Definition describes a purchasable crate.
type Definition struct {
	ID          string
	Name        string
	Cost        float64
	Description string
	Outcomes    []Outcome
}

// Crate ids
const (
	CrateRusty   = "crate_rusty"
	CrateIron    = "crate_iron"
	CrateGilded  = "crate_gilded"
	CrateDiamond = "crate_diamond"
)

// Definitions returns all crates keyed by id.
func Definitions() map[string]Definition {
	return map[string]Definition{
		CrateRusty: {
			ID:          CrateRusty,
			Name:        "Rusty Lockbox",
			Cost:        500,
			Description: "A rusty old box. Usually contains pocket change.",
			Outcomes: []Outcome{
				{UpTo: 0.2, Kind: OutcomeCurrency, Min: 100, Span: 200, Message: "Scraps found."},
				{UpTo: 0.9, Kind: OutcomeCurrency, Min: 400, Span: 500, Message: "Solid haul."},
				{UpTo: 1.0, Kind: OutcomeCurrency, Min: 1000, Span: 1000, Message: "Lucky find!"},
			},
		},
		CrateIron: {
			ID:          CrateIron,
			Name:        "Iron Strongbox",
			Cost:        2500,
			Description: "Sturdy and reliable. Good bits and occasional repairs.",
			Outcomes: []Outcome{
				{UpTo: 0.3, Kind: OutcomeRepair, Message: "Emergency Repair Kit found!"},
				{UpTo: 0.8, Kind: OutcomeCurrency, Min: 1500, Span: 1000, Message: "Iron-clad earnings."},
				{UpTo: 1.0, Kind: OutcomeCurrency, Min: 3000, Span: 3000, Message: "Heavy payout!"},
			},
		},
		CrateGilded: {
			ID:          CrateGilded,
			Name:        "Gilded Treasury",
			Cost:        10000,
			Description: "High stakes, high rewards. Jackpots and multipliers inside.",
			Outcomes: []Outcome{
				{UpTo: 0.4, Kind: OutcomeCurrency, Min: 5000, Span: 3000, Message: "A disappointing chest..."},
				{UpTo: 0.8, Kind: OutcomeCurrency, Min: 12000, Span: 8000, Message: "Golden Riches!"},
				{UpTo: 0.95, Kind: OutcomeBuff, Multiplier: 5, Duration: 20 * time.Second, Message: "FRENZY! 5x Power for 20s"},
				{UpTo: 1.0, Kind: OutcomeJackpot, Min: 50000, Message: "JACKPOT! 50,000 Bits!"},
			},
		},
		CrateDiamond: {
			ID:          CrateDiamond,
			Name:        "Shiny Diamond Crate",
			Cost:        50000,
			Description: "A blindingly bright box. Extreme risk, extreme power.",
			Outcomes: []Outcome{
				{UpTo: 0.05, Kind: OutcomeCurrency, Min: 1, Message: "Just... coal. (1 Bit)"},
				{UpTo: 0.30, Kind: OutcomeCurrency, Min: 50000, Message: "Money Back Guarantee."},
				{UpTo: 0.70, Kind: OutcomeCurrency, Min: 100000, Span: 100000, Message: "Shiny Profits!"},
				{UpTo: 0.90, Kind: OutcomeBuff, Multiplier: 20, Duration: 30 * time.Second, Message: "TIME WARP! 20x Power for 30s"},
				{UpTo: 1.0, Kind: OutcomeJackpot, Min: 1000000, Message: "DIAMOND RAIN! 1M Bits!"},
			},
		},
	}
}

// Log messages
const (
	LogMsgCrateOpened = "Crate opened"
)
