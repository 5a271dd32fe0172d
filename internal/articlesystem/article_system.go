package articlesystem

import (
	"fmt"
	"io"
	"time"

	"github.com/fsi-tue/rri/internal/articleerrors"
	"github.com/fsi-tue/rri/internal/clock"
	"github.com/fsi-tue/rri/internal/filestore"
	"github.com/fsi-tue/rri/internal/ledger"
	"github.com/fsi-tue/rri/internal/mailer"
	"github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/utils"
)

// ImageUpload is one uploaded image to attach to a new article
type ImageUpload struct {
	Data      io.Reader
	Extension string // without leading dot
}

// ArticleSystem owns the article lifecycle: creation, bid admission, status
// transitions, the expiry sweep and deletion. It is the sole writer of
// Article.Status and Article.Biddings; every read-modify-write runs under a
// per-article mutex so concurrent bids on one article serialize.
type ArticleSystem struct {
	ledger     ledger.ArticleLedger
	clk        clock.Clock
	files      filestore.FileStore
	mail       mailer.Mailer
	adminEmail string
	locks      *articleLocks
}

// NewArticleSystem creates a new ArticleSystem instance
func NewArticleSystem(l ledger.ArticleLedger, clk clock.Clock, files filestore.FileStore, mail mailer.Mailer, adminEmail string) *ArticleSystem {
	return &ArticleSystem{
		ledger:     l,
		clk:        clk,
		files:      files,
		mail:       mail,
		adminEmail: adminEmail,
		locks:      newArticleLocks(),
	}
}

// GetArticle returns the article with the given ID
func (s *ArticleSystem) GetArticle(articleID string) (models.Article, error) {
	if articleID == "" {
		return models.Article{}, fmt.Errorf("system: %w - empty article ID", articleerrors.ErrInvalidArticleID)
	}
	article, err := s.ledger.GetArticle(articleID)
	if err != nil {
		return models.Article{}, fmt.Errorf("system: failed to get article %s: %w", articleID, err)
	}
	return article, nil
}

// ListArticles returns all articles, optionally filtered by status
func (s *ArticleSystem) ListArticles(status *models.ArticleStatus) ([]models.Article, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("system: %w: %q", articleerrors.ErrInvalidStatus, *status)
	}
	articles, err := s.ledger.ListArticles(status)
	if err != nil {
		return nil, fmt.Errorf("system: failed to list articles: %w", err)
	}
	return articles, nil
}

// CreateArticle stores the uploaded images under fresh random names, builds
// the article in active status with its expiry normalized to the end of the
// chosen day, and inserts it through the ledger.
func (s *ArticleSystem) CreateArticle(ownerID, title string, startingPrice int64, expiresOn time.Time, description string, uploads []ImageUpload) (models.Article, error) {
	if ownerID == "" || title == "" {
		return models.Article{}, fmt.Errorf("system: %w - missing owner or title", articleerrors.ErrInvalidArticle)
	}
	if startingPrice < 0 {
		return models.Article{}, fmt.Errorf("system: %w - negative starting price", articleerrors.ErrInvalidArticle)
	}
	if len(uploads) > models.MaxImageSlots {
		return models.Article{}, fmt.Errorf("system: %w - at most %d images", articleerrors.ErrInvalidArticle, models.MaxImageSlots)
	}

	images := make([]string, 0, models.MaxImageSlots)
	for _, upload := range uploads {
		if upload.Data == nil || upload.Extension == "" {
			continue
		}
		name := utils.GenerateID() + "." + upload.Extension
		if !filestore.ExtensionAllowed(name) {
			return models.Article{}, fmt.Errorf("system: %w: %s", articleerrors.ErrDisallowedFile, name)
		}
		if err := s.files.Store(upload.Data, name); err != nil {
			return models.Article{}, fmt.Errorf("system: failed to store image: %w", err)
		}
		images = append(images, name)
	}
	for len(images) < models.MaxImageSlots {
		images = append(images, "")
	}

	article := models.Article{
		Status:        models.StatusActive,
		AddedByUserID: ownerID,
		AddedAt:       s.clk.Now(),
		ExpiresAt:     endOfDay(expiresOn),
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		Images:        images,
		Biddings:      []models.Bid{},
	}

	article, err := s.ledger.InsertArticle(article)
	if err != nil {
		utils.Error("failed to insert article", map[string]any{"title": title, "error": err.Error()})
		return models.Article{}, fmt.Errorf("system: failed to insert article: %w", err)
	}
	return article, nil
}

// PlaceBid validates and records a bid on an article. The whole
// read-validate-write runs under the article's mutex, so two concurrent bids
// that are each valid against a stale read cannot both be admitted.
func (s *ArticleSystem) PlaceBid(articleID string, amount int64, bidderID string) (models.Article, error) {
	if articleID == "" || bidderID == "" {
		return models.Article{}, fmt.Errorf("system: %w - missing articleID or bidderID", articleerrors.ErrInvalidBid)
	}

	unlock := s.locks.lock(articleID)
	defer unlock()

	article, err := s.ledger.GetArticle(articleID)
	if err != nil {
		return models.Article{}, fmt.Errorf("system: failed to get article %s: %w", articleID, err)
	}
	if article.Status != models.StatusActive {
		return models.Article{}, fmt.Errorf("system: %w - status is %s", articleerrors.ErrArticleNotActive, article.Status)
	}
	if err := ValidateBid(article, amount); err != nil {
		return models.Article{}, fmt.Errorf("system: %w", err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ArticleID: article.ArticleID,
		UserID:    bidderID,
		Amount:    amount,
		CreatedAt: s.clk.Now(),
	}
	article.Biddings = append(article.Biddings, bid)

	if err := s.ledger.UpdateArticle(article); err != nil {
		// prior ledger state stays authoritative, nothing was applied
		return models.Article{}, fmt.Errorf("system: failed to record bid on article %s: %w", articleID, err)
	}
	return article, nil
}

// UpdateArticleStatus sets only the status of the article with the given ID
func (s *ArticleSystem) UpdateArticleStatus(articleID string, status models.ArticleStatus) error {
	if !status.Valid() {
		return fmt.Errorf("system: %w: %q", articleerrors.ErrInvalidStatus, status)
	}
	return s.UpdateArticle(articleID, models.ArticlePatch{Status: &status})
}

// UpdateArticle applies a partial update as a read-modify-write under the
// article's mutex. Nil patch fields are preserved unchanged.
func (s *ArticleSystem) UpdateArticle(articleID string, patch models.ArticlePatch) error {
	if articleID == "" {
		return fmt.Errorf("system: %w - empty article ID", articleerrors.ErrInvalidArticleID)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("system: %w: %q", articleerrors.ErrInvalidStatus, *patch.Status)
	}
	if patch.ExpiresAt != nil {
		// expiry is always the end of the chosen day, same as on creation
		normalized := endOfDay(*patch.ExpiresAt)
		patch.ExpiresAt = &normalized
	}

	unlock := s.locks.lock(articleID)
	defer unlock()

	article, err := s.ledger.GetArticle(articleID)
	if err != nil {
		return fmt.Errorf("system: failed to get article %s: %w", articleID, err)
	}

	applyPatch(&article, patch)

	if err := s.ledger.UpdateArticle(article); err != nil {
		return fmt.Errorf("system: failed to update article %s: %w", articleID, err)
	}
	return nil
}

// SweepExpired transitions every article whose expiry lies strictly before
// now and that is not yet expired, and returns the articles transitioned in
// this call. Repeated sweeps with non-decreasing now are idempotent. A
// failure to persist one transition is logged and does not abort the rest.
func (s *ArticleSystem) SweepExpired(now time.Time) ([]models.Article, error) {
	articles, err := s.ledger.ListArticles(nil)
	if err != nil {
		return nil, fmt.Errorf("system: failed to list articles for sweep: %w", err)
	}

	transitioned := []models.Article{}
	for _, candidate := range articles {
		if candidate.Status == models.StatusExpired || !candidate.ExpiresAt.Before(now) {
			continue
		}

		unlock := s.locks.lock(candidate.ArticleID)
		// re-read under the lock; a concurrent bid may have changed the record
		article, err := s.ledger.GetArticle(candidate.ArticleID)
		if err != nil {
			unlock()
			utils.Error("sweep: failed to re-read article", map[string]any{"article_id": candidate.ArticleID, "error": err.Error()})
			continue
		}
		if article.Status == models.StatusExpired || !article.ExpiresAt.Before(now) {
			unlock()
			continue
		}

		article.Status = models.StatusExpired
		err = s.ledger.UpdateArticle(article)
		unlock()
		if err != nil {
			utils.Error("sweep: failed to persist expiry", map[string]any{"article_id": article.ArticleID, "error": err.Error()})
			continue
		}
		transitioned = append(transitioned, article)
	}
	return transitioned, nil
}

// DeleteArticle removes the article's image files and then its ledger record.
// If any referenced file exists but carries a disallowed extension, nothing
// is removed and the operation fails.
func (s *ArticleSystem) DeleteArticle(article models.Article) error {
	var imageFiles []string
	for _, name := range article.Images {
		if name != "" && s.files.Exists(name) {
			imageFiles = append(imageFiles, name)
		}
	}

	// validate everything before removing anything
	for _, name := range imageFiles {
		if !filestore.ExtensionAllowed(name) {
			utils.Error("can not delete file that is not an image file", map[string]any{"article_id": article.ArticleID, "file": name})
			return fmt.Errorf("system: %w: %s", articleerrors.ErrDisallowedFile, name)
		}
	}
	for _, name := range imageFiles {
		if err := s.files.Remove(name); err != nil {
			return fmt.Errorf("system: failed to remove image %s: %w", name, err)
		}
	}

	if err := s.ledger.DeleteArticle(article.ArticleID); err != nil {
		return fmt.Errorf("system: failed to delete article %s: %w", article.ArticleID, err)
	}
	s.locks.forget(article.ArticleID)
	return nil
}

// ReportOutdated mails the admins that a user flagged the article as
// outdated. Article state is not touched; mail delivery is fire-and-forget.
func (s *ArticleSystem) ReportOutdated(articleID, reportingUsername string) error {
	if !utils.IsWellFormedID(articleID) {
		return fmt.Errorf("system: %w: %q", articleerrors.ErrInvalidArticleID, articleID)
	}
	article, err := s.ledger.GetArticle(articleID)
	if err != nil {
		return fmt.Errorf("system: can not report article %s as outdated: %w", articleID, err)
	}

	message := fmt.Sprintf("The user %s has reported that the article %s with ID %s is outdated. Please verify this and handle it (if necessary).",
		reportingUsername, article.Title, articleID)
	if err := s.mail.Send(s.adminEmail, "Article reported as outdated in RRI", message); err != nil {
		utils.Error("failed to send outdated report mail", map[string]any{"article_id": articleID, "error": err.Error()})
	}
	return nil
}

// applyPatch copies every provided field onto the article
func applyPatch(article *models.Article, patch models.ArticlePatch) {
	if patch.Status != nil {
		article.Status = *patch.Status
	}
	if patch.AddedByUserID != nil {
		article.AddedByUserID = *patch.AddedByUserID
	}
	if patch.AddedAt != nil {
		article.AddedAt = *patch.AddedAt
	}
	if patch.Remark != nil {
		article.Remark = *patch.Remark
	}
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.StartingPrice != nil {
		article.StartingPrice = *patch.StartingPrice
	}
	if patch.ExpiresAt != nil {
		article.ExpiresAt = *patch.ExpiresAt
	}
	if patch.Images != nil {
		article.Images = *patch.Images
	}
	if patch.Biddings != nil {
		article.Biddings = *patch.Biddings
	}
}

// endOfDay normalizes a date to the last second of its calendar day
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
