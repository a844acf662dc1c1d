package state

// Log messages
const (
	LogMsgSnapshotFlushFailed = "Snapshot flush failed"
)
