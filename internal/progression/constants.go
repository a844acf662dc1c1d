package progression

import "math"

// Track identifies an upgrade line.
type Track string

const (
	TrackClickPower  Track = "click_power"
	TrackLuck        Track = "luck"
	TrackAutoClicker Track = "auto_clicker"
)

// Cheat-mode shortcut levels
const (
	cheatLuckLevel       = 5
	cheatAutoLevel       = 5
	cheatAscensionLevel  = 2
	cheatClickPowerLevel = 100
)

// ClickPowerCost returns the price of the next click power level.
func ClickPowerCost(level int) float64 {
	return math.Floor(50 * math.Pow(1.5, float64(level)))
}

// LuckCost returns the price of the next luck level. Early levels use a
// hand-tuned table; past it the cost grows exponentially.
func LuckCost(level int) float64 {
	switch level {
	case 0:
		return 250
	case 1:
		return 500
	case 2:
		return 600
	case 3:
		return 700
	case 4:
		return 888
	case 5:
		return 1000
	default:
		return math.Floor(1000 * math.Pow(1.5, float64(level-4)))
	}
}

// AutoClickerCost returns the price of the next auto-clicker level.
func AutoClickerCost(level int) float64 {
	switch level {
	case 0:
		return 300
	case 1:
		return 500
	case 2:
		return 680
	case 3:
		return 790
	case 4:
		return 1000
	default:
		return math.Floor(1000 * math.Pow(1.5, float64(level-4)))
	}
}

// AscensionCost returns the price of the next ascension. The third tier
// is priced as a hard cap.
func AscensionCost(level int) float64 {
	switch level {
	case 0:
		return 100000
	case 1:
		return 500000
	default:
		return 999999999
	}
}

// Log messages
const (
	LogMsgUpgradePurchased = "Upgrade purchased"
	LogMsgAscended         = "Ascension completed"
	LogMsgCheatMaximized   = "Cheat mode upgrade shortcut applied"
)
