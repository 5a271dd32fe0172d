package ledger

import (
	model "github.com/fsi-tue/rri/internal/models"
)

// ArticleLedger defines the durable article store for the auction system.
// Articles are stored whole, bid history embedded; UpdateArticle replaces
// the entire record, there is no field-level patching at this layer.
type ArticleLedger interface {
	GetArticle(articleID string) (model.Article, error)
	ListArticles(status *model.ArticleStatus) ([]model.Article, error)
	InsertArticle(article model.Article) (model.Article, error)
	UpdateArticle(article model.Article) error
	DeleteArticle(articleID string) error
}
