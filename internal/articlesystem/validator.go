package articlesystem

import (
	"fmt"

	"github.com/fsi-tue/rri/internal/articleerrors"
	"github.com/fsi-tue/rri/internal/models"
)

// HighestBid returns the currently highest bid amount in cents for the given
// article, or the starting price if no bids have been placed yet. The value
// is recomputed from the full bid history on every call; the history is the
// single source of truth and never cached.
func HighestBid(article models.Article) int64 {
	highest := article.StartingPrice
	for _, bid := range article.Biddings {
		if bid.Amount > highest {
			highest = bid.Amount
		}
	}
	return highest
}

// ValidateBid checks a prospective bid amount against the article's current
// highest bid. A bid must be strictly greater; equal is rejected. The
// validator deliberately places no restriction on who bids, not even the
// article owner; callers wanting owner exclusion must layer it on top.
func ValidateBid(article models.Article, amount int64) error {
	if highest := HighestBid(article); amount <= highest {
		return fmt.Errorf("%w: current highest bid is %d", articleerrors.ErrBidTooLow, highest)
	}
	return nil
}
