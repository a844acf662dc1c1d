package inventory

// Tunables
const (
	SellValueRate  = 10.0 // Bits credited per point of base value
	RepairFraction = 0.5  // portion of max durability healed per repair charge
)

// Log messages
const (
	LogMsgCookieEquipped = "Cookie equipped"
	LogMsgCookieSold     = "Cookie sold"
)
