package event

// EventSchemaVersion is the current payload schema version
const EventSchemaVersion = "1.0"

// Log message formats
const (
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
