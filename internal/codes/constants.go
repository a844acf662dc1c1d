package codes

import "time"

// Recognized codes. Input is trimmed and lowercased before matching.
const (
	codeGodMode      = "chronocookie"
	codeEternalPower = "chronocookie1"
)

// Effect identifiers reported to the caller and the event bus.
const (
	EffectGodMode      = "god_mode"
	EffectEternalPower = "eternal_power"
	EffectChronoSpawn  = "chrono_spawn"
)

// God mode tunables
const (
	godModeBits = 999999999999999
)

// Eternal power tunables
const (
	eternalBitsGrant     = 5000000
	eternalMultiplier    = 5.0
	eternalBuffDuration  = 100 * 365 * 24 * time.Hour
	chronoName           = "Eternal Chrono Cookie"
	chronoDescription    = "A cookie frozen in time. It will never break."
	chronoBaseValue      = 100
	chronoColorHex       = "#06B6D4"
	replicaName          = "Replicated Chrono Cookie"
	replicaDescription   = "A cookie duplicated from the timeline."
)

// User-facing messages
const (
	MsgGodMode      = "TIMELINE ALTERED. GOD MODE ACTIVE."
	MsgEternalPower = "ETERNAL POWER GRANTED. SPAWNER UNLOCKED."
	MsgChronoSpawn  = "Chrono Cookie Materialized."
)

// Log messages
const (
	LogMsgCodeRedeemed   = "Secret code redeemed"
	LogMsgChronoSpawned  = "Chrono cookie spawned"
	LogMsgUnknownCode    = "Unknown secret code rejected"
)
