package oracle

// RollCost is the price of one Oracle Oven bake.
const RollCost = 1000000

// Prompt sent to the generation backend.
const bakePrompt = `You are the Oracle Oven, a mythical entity that bakes cookies with divine properties.
Create a unique, fantasy-themed cookie.

The cookie should be:
- Rarity: Divine (Extremely powerful and unique)
- Name: Creative, mythical, or sci-fi inspired.
- Description: A one-sentence lore description.
- ColorHex: A hex color code representing the cookie's aura.
- BaseValue: A number between 80 and 200.

Return the result in strictly valid JSON format matching the schema.`

// Fallback cookie minted when the backend is unreachable or returns
// garbage. The player paid, so they always get something.
const (
	glitchName        = "Glitch Cookie"
	glitchDescription = "The Oracle Oven sputtered and produced this anomaly."
	glitchBaseValue   = 77
	glitchColorHex    = "#333333"
)

// Log messages
const (
	LogMsgOracleBaked       = "Oracle cookie baked"
	LogMsgOracleMalfunction = "Oracle Oven malfunctioned, serving fallback"
)
