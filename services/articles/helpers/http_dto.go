package helpers

import (
	"time"

	model "github.com/fsi-tue/rri/internal/models"
)

// DateLayout is the wire format for expiry dates
const DateLayout = "2006-01-02"

// Request/Response DTOs
type CreateArticleRequest struct {
	OwnerID       string `json:"owner_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	StartingPrice int64  `json:"starting_price" binding:"gte=0"`
	ExpiresOn     string `json:"expires_on" binding:"required"` // YYYY-MM-DD
	Description   string `json:"description"`
}

type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PatchArticleRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Remark        *string `json:"remark"`
	StartingPrice *int64  `json:"starting_price"`
	ExpiresOn     *string `json:"expires_on"` // YYYY-MM-DD
}

type ReportOutdatedRequest struct {
	Username string `json:"username" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	ArticleID string `json:"article_id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type ArticleResponse struct {
	ArticleID     string        `json:"article_id"`
	Status        string        `json:"status"`
	AddedByUserID string        `json:"added_by_user_id"`
	AddedAt       string        `json:"added_at"`
	ExpiresAt     string        `json:"expires_at"`
	Remark        string        `json:"remark"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	StartingPrice int64         `json:"starting_price"`
	Images        []string      `json:"images"`
	Biddings      []BidResponse `json:"biddings"`
	HighestBid    int64         `json:"highest_bid"`
}

type HighestBidResponse struct {
	ArticleID  string `json:"article_id"`
	HighestBid int64  `json:"highest_bid"`
}

// ToBidResponse converts a bid model to its wire form
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ArticleID: bid.ArticleID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToArticleResponse converts an article model to its wire form
func ToArticleResponse(article model.Article, highestBid int64) ArticleResponse {
	biddings := make([]BidResponse, 0, len(article.Biddings))
	for _, bid := range article.Biddings {
		biddings = append(biddings, ToBidResponse(bid))
	}
	return ArticleResponse{
		ArticleID:     article.ArticleID,
		Status:        string(article.Status),
		AddedByUserID: article.AddedByUserID,
		AddedAt:       article.AddedAt.UTC().Format(time.RFC3339),
		ExpiresAt:     article.ExpiresAt.UTC().Format(time.RFC3339),
		Remark:        article.Remark,
		Title:         article.Title,
		Description:   article.Description,
		StartingPrice: article.StartingPrice,
		Images:        article.Images,
		Biddings:      biddings,
		HighestBid:    highestBid,
	}
}
