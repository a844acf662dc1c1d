package domain

import "errors"

// Error message constants
const (
	ErrMsgInsufficientFunds   = "insufficient bits"
	ErrMsgCookieNotFound      = "cookie not found"
	ErrMsgNoCookieEquipped    = "no cookie equipped"
	ErrMsgUnknownPool         = "unknown roll pool"
	ErrMsgUnknownCrate        = "unknown crate"
	ErrMsgUnknownShopItem     = "unknown shop item"
	ErrMsgUnknownUpgrade      = "unknown upgrade track"
	ErrMsgUnknownQuest        = "unknown quest"
	ErrMsgQuestNotComplete    = "quest not complete"
	ErrMsgQuestAlreadyClaimed = "quest already claimed"
	ErrMsgNoActiveBundle      = "no active bundle offer"
	ErrMsgUnknownCode         = "unknown code"
	ErrMsgSpawnerLocked       = "chrono spawner locked"
	ErrMsgZeroWeightTable     = "weight table sums to zero"
	ErrMsgSnapshotNotFound    = "snapshot not found"
	ErrMsgSnapshotCorrupt     = "snapshot corrupt"
)

// Sentinel domain errors. Services wrap these with context; handlers map
// them to HTTP responses with errors.Is.
var (
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrCookieNotFound      = errors.New(ErrMsgCookieNotFound)
	ErrNoCookieEquipped    = errors.New(ErrMsgNoCookieEquipped)
	ErrUnknownPool         = errors.New(ErrMsgUnknownPool)
	ErrUnknownCrate        = errors.New(ErrMsgUnknownCrate)
	ErrUnknownShopItem     = errors.New(ErrMsgUnknownShopItem)
	ErrUnknownUpgrade      = errors.New(ErrMsgUnknownUpgrade)
	ErrUnknownQuest        = errors.New(ErrMsgUnknownQuest)
	ErrQuestNotComplete    = errors.New(ErrMsgQuestNotComplete)
	ErrQuestAlreadyClaimed = errors.New(ErrMsgQuestAlreadyClaimed)
	ErrNoActiveBundle      = errors.New(ErrMsgNoActiveBundle)
	ErrUnknownCode         = errors.New(ErrMsgUnknownCode)
	ErrSpawnerLocked       = errors.New(ErrMsgSpawnerLocked)
	ErrZeroWeightTable     = errors.New(ErrMsgZeroWeightTable)
	ErrSnapshotNotFound    = errors.New(ErrMsgSnapshotNotFound)
	ErrSnapshotCorrupt     = errors.New(ErrMsgSnapshotCorrupt)
)
