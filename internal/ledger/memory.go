package ledger

import (
	"fmt"
	"sync"

	"github.com/fsi-tue/rri/internal/articleerrors"
	model "github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/utils"
)

// MemoryLedger is a concurrency-safe in-memory implementation of ArticleLedger
type MemoryLedger struct {
	mu       sync.RWMutex
	articles map[string]model.Article // key: articleID
	order    []string                 // insertion order of articleIDs
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		articles: make(map[string]model.Article),
	}
}

// GetArticle returns the article with the given ID
func (l *MemoryLedger) GetArticle(articleID string) (model.Article, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	article, ok := l.articles[articleID]
	if !ok {
		return model.Article{}, fmt.Errorf("get article %s: %w", articleID, articleerrors.ErrArticleNotFound)
	}
	return copyArticle(article), nil
}

// ListArticles returns all articles in insertion order, optionally filtered by status
func (l *MemoryLedger) ListArticles(status *model.ArticleStatus) ([]model.Article, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	articles := make([]model.Article, 0, len(l.order))
	for _, id := range l.order {
		article, ok := l.articles[id]
		if !ok {
			continue
		}
		if status != nil && article.Status != *status {
			continue
		}
		articles = append(articles, copyArticle(article))
	}
	return articles, nil
}

// InsertArticle stores a new article and assigns its identifier
func (l *MemoryLedger) InsertArticle(article model.Article) (model.Article, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	article.ArticleID = utils.GenerateID()
	l.articles[article.ArticleID] = copyArticle(article)
	l.order = append(l.order, article.ArticleID)
	return article, nil
}

// UpdateArticle replaces the stored article record
func (l *MemoryLedger) UpdateArticle(article model.Article) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.articles[article.ArticleID]; !ok {
		return fmt.Errorf("update article %s: %w", article.ArticleID, articleerrors.ErrArticleNotFound)
	}
	l.articles[article.ArticleID] = copyArticle(article)
	return nil
}

// DeleteArticle removes the article and its embedded bids
func (l *MemoryLedger) DeleteArticle(articleID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.articles[articleID]; !ok {
		return fmt.Errorf("delete article %s: %w", articleID, articleerrors.ErrArticleNotFound)
	}
	delete(l.articles, articleID)
	for i, id := range l.order {
		if id == articleID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// copyArticle returns a deep copy so callers never share slices with the store.
// Empty slices stay empty rather than collapsing to nil, so records round-trip
// unchanged.
func copyArticle(a model.Article) model.Article {
	if a.Images != nil {
		a.Images = append([]string{}, a.Images...)
	}
	if a.Biddings != nil {
		a.Biddings = append([]model.Bid{}, a.Biddings...)
	}
	return a
}
