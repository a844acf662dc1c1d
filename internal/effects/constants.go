package effects

// Log messages
const (
	LogMsgBuffExpired = "Click multiplier expired"
)
