package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsi-tue/rri/internal/articleerrors"
	"github.com/fsi-tue/rri/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, articleerrors.ErrArticleNotFound):
		return http.StatusNotFound, "article not found"
	case errors.Is(err, articleerrors.ErrInvalidArticleID):
		return http.StatusBadRequest, "malformed article ID"
	case errors.Is(err, articleerrors.ErrInvalidArticle):
		return http.StatusBadRequest, "invalid article data"
	case errors.Is(err, articleerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, articleerrors.ErrInvalidStatus):
		return http.StatusBadRequest, "unknown article status"
	case errors.Is(err, articleerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, articleerrors.ErrArticleNotActive):
		return http.StatusConflict, "article no longer accepts bids"
	case errors.Is(err, articleerrors.ErrDisallowedFile):
		return http.StatusInternalServerError, "article resources can not be cleaned up"
	case errors.Is(err, articleerrors.ErrPersistence):
		return http.StatusInternalServerError, "persistence failure"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
