package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/services/articles/helpers"
)

func createArticle(t *testing.T, router *gin.Engine, ownerID string, startingPrice int64, expiresOn string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/articles", helpers.CreateArticleRequest{
		OwnerID:       ownerID,
		Title:         "article of " + ownerID,
		StartingPrice: startingPrice,
		ExpiresOn:     expiresOn,
		Description:   "integration test article",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	articleID := data["article_id"].(string)
	require.NotEmpty(t, articleID)
	return articleID
}

// The full bid admission flow over HTTP: rejections below and at the current
// highest bid, acceptance strictly above it.
func TestBiddingFlow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	router, _ := SetupTestStack(now)

	articleID := createArticle(t, router, "owner1", 1000, "2026-09-08")

	bidsURL := fmt.Sprintf("/articles/%s/bids", articleID)
	highestURL := fmt.Sprintf("/articles/%s/highest", articleID)

	// no bids yet: highest equals the starting price
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, highestURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1000), resp["data"].(map[string]any)["highest_bid"])

	// below the starting price
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, bidsURL, helpers.PlaceBidRequest{UserID: "user1", Amount: 900})
	require.Equal(t, http.StatusConflict, w.Code)

	// equal to the starting price, not strictly greater
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, bidsURL, helpers.PlaceBidRequest{UserID: "user1", Amount: 1000})
	require.Equal(t, http.StatusConflict, w.Code)

	// strictly above
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, bidsURL, helpers.PlaceBidRequest{UserID: "user1", Amount: 1001})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(1001), resp["data"].(map[string]any)["highest_bid"])

	// outbid by a second user
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, bidsURL, helpers.PlaceBidRequest{UserID: "user2", Amount: 1500})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(1500), resp["data"].(map[string]any)["highest_bid"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, highestURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1500), resp["data"].(map[string]any)["highest_bid"])

	// full history is preserved in acceptance order
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/articles/"+articleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	biddings := resp["data"].(map[string]any)["biddings"].([]any)
	require.Len(t, biddings, 2)
	require.Equal(t, float64(1001), biddings[0].(map[string]any)["amount"])
	require.Equal(t, float64(1500), biddings[1].(map[string]any)["amount"])
}

func TestExpiryFlow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	router, system := SetupTestStack(now)

	articleID := createArticle(t, router, "owner1", 1000, "2026-09-01")

	// the sweep the day after transitions the article
	expired, err := system.SweepExpired(now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, articleID, expired[0].ArticleID)

	// a repeated sweep reports nothing
	expired, err = system.SweepExpired(now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Empty(t, expired)

	// the expired article rejects further bids
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, fmt.Sprintf("/articles/%s/bids", articleID),
		helpers.PlaceBidRequest{UserID: "user1", Amount: 2000})
	require.Equal(t, http.StatusConflict, w.Code)

	// and no longer shows up in the active listing
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/articles?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/articles?status=expired", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)
}

func TestLifecycleFlow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	router, _ := SetupTestStack(now)

	articleID := createArticle(t, router, "owner1", 1000, "2026-09-08")

	// partial update: only the title changes
	newTitle := "renamed article"
	_, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/articles/"+articleID,
		helpers.PatchArticleRequest{Title: &newTitle})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/articles/"+articleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "renamed article", data["title"])
	require.Equal(t, "integration test article", data["description"])
	require.Equal(t, string(models.StatusActive), data["status"])

	// explicit status update
	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/articles/"+articleID+"/status",
		helpers.UpdateStatusRequest{Status: "expired"})
	require.Equal(t, http.StatusOK, w.Code)

	// report as outdated
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/articles/"+articleID+"/report",
		helpers.ReportOutdatedRequest{Username: "reporter"})
	require.Equal(t, http.StatusOK, w.Code)

	// delete, then the article is gone
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/articles/"+articleID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/articles/"+articleID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportUnknownArticle(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	router, _ := SetupTestStack(now)

	// well-formed but unknown ID
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost,
		"/articles/123e4567-e89b-12d3-a456-426614174000/report",
		helpers.ReportOutdatedRequest{Username: "reporter"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// malformed ID
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/articles/42/report",
		helpers.ReportOutdatedRequest{Username: "reporter"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
