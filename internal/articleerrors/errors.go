package articleerrors

import "errors"

// Ledger-level errors
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrPersistence     = errors.New("ledger write failed")
)

// business logic errors
var (
	ErrInvalidArticle   = errors.New("invalid article data")
	ErrInvalidArticleID = errors.New("malformed article ID")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrArticleNotActive = errors.New("article no longer accepts bids")
	ErrDisallowedFile   = errors.New("file extension not allowed")
	ErrInvalidStatus    = errors.New("unknown article status")
)
