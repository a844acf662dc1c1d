package economy

// Derivation tunables
const (
	CollectionBonusRate = 0.1 // click power gained per point of collection base value
	AutoIncomePerLevel  = 0.5 // base Bits per second per auto-clicker level
)

// AscensionClickBonus is the flat click power added per ascension tier.
// Tier 1 grants +3; tier 2 and beyond grant +8.
func AscensionClickBonus(level int) float64 {
	switch {
	case level >= 2:
		return 8
	case level == 1:
		return 3
	default:
		return 0
	}
}

// Log messages
const (
	LogMsgClickApplied   = "Click applied"
	LogMsgCookieCrumbled = "Cookie crumbled"
	LogMsgAutoIncome     = "Auto income granted"
)
