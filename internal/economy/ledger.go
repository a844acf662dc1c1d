package economy

import "github.com/knedy989-code/Cookie-RNG/internal/domain"

// Spend deducts Bits from the balance. It must be the first mutation
// attempted inside a store update so a rejection leaves the aggregate
// untouched. Cheat mode makes everything free.
func Spend(gs *domain.GameState, amount float64) error {
	if gs.CheatMode {
		return nil
	}
	if gs.Bits < amount {
		return domain.ErrInsufficientFunds
	}
	gs.Bits -= amount
	return nil
}

// CanAfford reports whether a spend of the given amount would succeed.
func CanAfford(gs *domain.GameState, amount float64) bool {
	return gs.CheatMode || gs.Bits >= amount
}

// Earn credits Bits and counts them toward lifetime earnings, which
// drive quest progress.
func Earn(gs *domain.GameState, amount float64) {
	gs.Bits += amount
	gs.TotalBitsEarned += amount
}

// Credit adds Bits to the balance without touching lifetime earnings.
// Selling a cookie is a refund, not income.
func Credit(gs *domain.GameState, amount float64) {
	gs.Bits += amount
}

// ClickPower derives the Bits granted by one click from upgrade levels,
// ascension tier, the collection bonus, and the active multiplier.
func ClickPower(gs *domain.GameState) float64 {
	base := float64(gs.ClickPowerLevel)
	ascension := AscensionClickBonus(gs.AscensionLevel)
	collection := gs.CollectionBaseValueSum() * CollectionBonusRate
	return (base + ascension + collection) * gs.Multiplier
}

// AutoIncomePerSecond derives passive income from the auto-clicker
// level, amplified by the collection bonus.
func AutoIncomePerSecond(gs *domain.GameState) float64 {
	if gs.AutoClickerLevel <= 0 {
		return 0
	}
	base := float64(gs.AutoClickerLevel) * AutoIncomePerLevel
	return base * (1 + gs.CollectionBaseValueSum()*CollectionBonusRate)
}
