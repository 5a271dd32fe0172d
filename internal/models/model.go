package models

import "time"

// ArticleStatus drives visibility and whether an article still accepts bids.
type ArticleStatus string

const (
	StatusActive  ArticleStatus = "active"
	StatusExpired ArticleStatus = "expired"
	StatusDraft   ArticleStatus = "draft"
)

// Valid reports whether s is one of the defined statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusDraft:
		return true
	}
	return false
}

// MaxImageSlots is the fixed number of image references an article carries.
// Unused slots hold the empty string, never nil.
const MaxImageSlots = 5

// User represents a participant in the auction
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Article represents an auctioned listing with its embedded bid history.
// Biddings are stored in insertion order, which equals acceptance order.
type Article struct {
	ArticleID     string        `json:"article_id"`
	Status        ArticleStatus `json:"status"`
	AddedByUserID string        `json:"added_by_user_id"`
	AddedAt       time.Time     `json:"added_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
	Remark        string        `json:"remark"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	StartingPrice int64         `json:"starting_price"` // cents
	Images        []string      `json:"images"`         // always MaxImageSlots entries
	Biddings      []Bid         `json:"biddings"`
}

// Bid represents a user's accepted bid on an article
type Bid struct {
	BidID     string    `json:"bid_id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"` // cents
	CreatedAt time.Time `json:"created_at"`
}

// ArticlePatch describes a partial article update. A nil field means "leave
// unchanged"; a non-nil field is written even when it points at the zero
// value, so clearing a field remains expressible.
type ArticlePatch struct {
	Status        *ArticleStatus
	AddedByUserID *string
	AddedAt       *time.Time
	Remark        *string
	Title         *string
	Description   *string
	StartingPrice *int64
	ExpiresAt     *time.Time
	Images        *[]string
	Biddings      *[]Bid
}
