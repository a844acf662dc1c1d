package domain

// Event type names published on the in-memory bus.
const (
	EventTypeClick           = "game.click"
	EventTypeCookieRolled    = "cookie.rolled"
	EventTypeCookieBroken    = "cookie.broken"
	EventTypeCookieSold      = "cookie.sold"
	EventTypeCrateOpened     = "crate.opened"
	EventTypeBuffGranted     = "buff.granted"
	EventTypeQuestClaimed    = "quest.claimed"
	EventTypeAscended        = "ascension.completed"
	EventTypeBundleSpawned   = "bundle.spawned"
	EventTypeBundlePurchased = "bundle.purchased"
	EventTypeCodeRedeemed    = "code.redeemed"
)
