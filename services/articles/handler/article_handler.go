package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsi-tue/rri/internal/articleerrors"
	"github.com/fsi-tue/rri/internal/articlesystem"
	model "github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/services/articles/helpers"
	"github.com/fsi-tue/rri/utils"
)

type ArticleSystemInterface interface {
	GetArticle(articleID string) (model.Article, error)
	ListArticles(status *model.ArticleStatus) ([]model.Article, error)
	CreateArticle(ownerID, title string, startingPrice int64, expiresOn time.Time, description string, uploads []articlesystem.ImageUpload) (model.Article, error)
	PlaceBid(articleID string, amount int64, bidderID string) (model.Article, error)
	UpdateArticleStatus(articleID string, status model.ArticleStatus) error
	UpdateArticle(articleID string, patch model.ArticlePatch) error
	DeleteArticle(article model.Article) error
	ReportOutdated(articleID, reportingUsername string) error
}

type ArticleHandler struct {
	system ArticleSystemInterface
}

func NewArticleHandler(system ArticleSystemInterface) *ArticleHandler {
	return &ArticleHandler{system: system}
}

// CreateArticleHandler handles POST /articles
func (h *ArticleHandler) CreateArticleHandler(c *gin.Context) {
	var req helpers.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateArticleHandler", err)
		return
	}

	expiresOn, err := time.Parse(helpers.DateLayout, req.ExpiresOn)
	if err != nil {
		helpers.HandleBindError(c, "CreateArticleHandler", fmt.Errorf("expires_on must be YYYY-MM-DD: %w", err))
		return
	}

	article, err := h.system.CreateArticle(req.OwnerID, req.Title, req.StartingPrice, expiresOn, req.Description, nil)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateArticleHandler: failed to create article", map[string]any{
			"owner_id": req.OwnerID,
			"title":    req.Title,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.ToArticleResponse(article, articlesystem.HighestBid(article))
	utils.JSONResponse(c, http.StatusCreated, resp, "article created successfully")
	helpers.LogSuccess("CreateArticleHandler", "article created successfully", map[string]any{
		"article_id": article.ArticleID,
		"owner_id":   article.AddedByUserID,
	})
}

// ListArticlesHandler handles GET /articles with an optional status filter
func (h *ArticleHandler) ListArticlesHandler(c *gin.Context) {
	var statusFilter *model.ArticleStatus
	if raw, ok := c.GetQuery("status"); ok {
		status := model.ArticleStatus(raw)
		if !status.Valid() {
			utils.JSONError(c, http.StatusBadRequest, articleerrors.ErrInvalidStatus, "unknown article status")
			return
		}
		statusFilter = &status
	}

	articles, err := h.system.ListArticles(statusFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListArticlesHandler: error retrieving articles", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		resp = append(resp, helpers.ToArticleResponse(article, articlesystem.HighestBid(article)))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "articles retrieved successfully")
	helpers.LogSuccess("ListArticlesHandler", "articles retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetArticleHandler handles GET /articles/:article_id
func (h *ArticleHandler) GetArticleHandler(c *gin.Context) {
	articleID := c.Param("article_id")
	article, err := h.system.GetArticle(articleID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetArticleHandler: error retrieving article", map[string]any{"article_id": articleID, "error": err.Error()})
		return
	}

	resp := helpers.ToArticleResponse(article, articlesystem.HighestBid(article))
	utils.JSONResponse(c, http.StatusOK, resp, "article retrieved successfully")
}

// PlaceBidHandler handles POST /articles/:article_id/bids
func (h *ArticleHandler) PlaceBidHandler(c *gin.Context) {
	articleID := c.Param("article_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	article, err := h.system.PlaceBid(articleID, req.Amount, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"article_id": articleID,
			"user_id":    req.UserID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ToArticleResponse(article, articlesystem.HighestBid(article))
	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"article_id": articleID,
		"user_id":    req.UserID,
		"amount":     req.Amount,
	})
}

// GetHighestBidHandler handles GET /articles/:article_id/highest
func (h *ArticleHandler) GetHighestBidHandler(c *gin.Context) {
	articleID := c.Param("article_id")
	article, err := h.system.GetArticle(articleID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: error retrieving article", map[string]any{"article_id": articleID, "error": err.Error()})
		return
	}

	resp := helpers.HighestBidResponse{
		ArticleID:  article.ArticleID,
		HighestBid: articlesystem.HighestBid(article),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "highest bid retrieved successfully")
}

// UpdateStatusHandler handles PUT /articles/:article_id/status
func (h *ArticleHandler) UpdateStatusHandler(c *gin.Context) {
	articleID := c.Param("article_id")

	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	if err := h.system.UpdateArticleStatus(articleID, model.ArticleStatus(req.Status)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateStatusHandler: failed to update status", map[string]any{
			"article_id": articleID,
			"status":     req.Status,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "article status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "article status updated successfully", map[string]any{
		"article_id": articleID,
		"status":     req.Status,
	})
}

// PatchArticleHandler handles PATCH /articles/:article_id. Absent fields are
// left unchanged.
func (h *ArticleHandler) PatchArticleHandler(c *gin.Context) {
	articleID := c.Param("article_id")

	var req helpers.PatchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PatchArticleHandler", err)
		return
	}

	patch := model.ArticlePatch{
		Title:         req.Title,
		Description:   req.Description,
		Remark:        req.Remark,
		StartingPrice: req.StartingPrice,
	}
	if req.ExpiresOn != nil {
		expiresOn, err := time.Parse(helpers.DateLayout, *req.ExpiresOn)
		if err != nil {
			helpers.HandleBindError(c, "PatchArticleHandler", fmt.Errorf("expires_on must be YYYY-MM-DD: %w", err))
			return
		}
		patch.ExpiresAt = &expiresOn
	}

	if err := h.system.UpdateArticle(articleID, patch); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PatchArticleHandler: failed to update article", map[string]any{
			"article_id": articleID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "article updated successfully")
	helpers.LogSuccess("PatchArticleHandler", "article updated successfully", map[string]any{
		"article_id": articleID,
	})
}

// DeleteArticleHandler handles DELETE /articles/:article_id
func (h *ArticleHandler) DeleteArticleHandler(c *gin.Context) {
	articleID := c.Param("article_id")

	article, err := h.system.GetArticle(articleID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteArticleHandler: error retrieving article", map[string]any{"article_id": articleID, "error": err.Error()})
		return
	}

	if err := h.system.DeleteArticle(article); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteArticleHandler: failed to delete article", map[string]any{
			"article_id": articleID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "article deleted successfully")
	helpers.LogSuccess("DeleteArticleHandler", "article deleted successfully", map[string]any{
		"article_id": articleID,
	})
}

// ReportOutdatedHandler handles POST /articles/:article_id/report
func (h *ArticleHandler) ReportOutdatedHandler(c *gin.Context) {
	articleID := c.Param("article_id")

	var req helpers.ReportOutdatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReportOutdatedHandler", err)
		return
	}

	if err := h.system.ReportOutdated(articleID, req.Username); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ReportOutdatedHandler: failed to report article", map[string]any{
			"article_id": articleID,
			"username":   req.Username,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "article reported successfully")
	helpers.LogSuccess("ReportOutdatedHandler", "article reported successfully", map[string]any{
		"article_id": articleID,
		"username":   req.Username,
	})
}
