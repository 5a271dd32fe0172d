package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fsi-tue/rri/internal/articleerrors"
	model "github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/utils"

	_ "github.com/lib/pq"
)

// PostgresLedger is a durable ArticleLedger backed by PostgreSQL. An article
// is one row in articles plus its rows in biddings; UpdateArticle replaces
// both inside a single transaction so readers never observe a half-written
// record.
type PostgresLedger struct {
	db *sql.DB
}

// NewPostgresLedger opens the connection, verifies it and creates the schema
func NewPostgresLedger(connStr string) (*PostgresLedger, error) {
	const op = "ledger.postgres.New"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id VARCHAR(36) PRIMARY KEY,
		status VARCHAR(50) NOT NULL,
		added_by_user_id VARCHAR(255) NOT NULL,
		added_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		remark TEXT NOT NULL DEFAULT '',
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		starting_price BIGINT NOT NULL,
		image1 VARCHAR(255) NOT NULL DEFAULT '',
		image2 VARCHAR(255) NOT NULL DEFAULT '',
		image3 VARCHAR(255) NOT NULL DEFAULT '',
		image4 VARCHAR(255) NOT NULL DEFAULT '',
		image5 VARCHAR(255) NOT NULL DEFAULT '',
		position BIGSERIAL
	);

	CREATE TABLE IF NOT EXISTS biddings (
		id VARCHAR(36) PRIMARY KEY,
		article_id VARCHAR(36) NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
		user_id VARCHAR(255) NOT NULL,
		amount BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		position BIGSERIAL
	);

	CREATE INDEX IF NOT EXISTS idx_biddings_article_id ON biddings(article_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostgresLedger{db: db}, nil
}

// GetArticle returns the article with the given ID including its bid history
func (l *PostgresLedger) GetArticle(articleID string) (model.Article, error) {
	const op = "ledger.postgres.GetArticle"

	row := l.db.QueryRow(`
	SELECT id, status, added_by_user_id, added_at, expires_at, remark, title,
	       description, starting_price, image1, image2, image3, image4, image5
	FROM articles WHERE id = $1
	`, articleID)

	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Article{}, fmt.Errorf("%s: article %s: %w", op, articleID, articleerrors.ErrArticleNotFound)
	}
	if err != nil {
		return model.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	if article.Biddings, err = l.loadBiddings(articleID); err != nil {
		return model.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	return article, nil
}

// ListArticles returns all articles in insertion order, optionally filtered by status
func (l *PostgresLedger) ListArticles(status *model.ArticleStatus) ([]model.Article, error) {
	const op = "ledger.postgres.ListArticles"

	query := `
	SELECT id, status, added_by_user_id, added_at, expires_at, remark, title,
	       description, starting_price, image1, image2, image3, image4, image5
	FROM articles`
	args := []any{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, string(*status))
	}
	query += " ORDER BY position"

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range articles {
		if articles[i].Biddings, err = l.loadBiddings(articles[i].ArticleID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return articles, nil
}

// InsertArticle stores a new article and assigns its identifier
func (l *PostgresLedger) InsertArticle(article model.Article) (model.Article, error) {
	const op = "ledger.postgres.InsertArticle"

	article.ArticleID = utils.GenerateID()
	images := paddedImages(article.Images)

	_, err := l.db.Exec(`
	INSERT INTO articles(id, status, added_by_user_id, added_at, expires_at, remark,
	                     title, description, starting_price, image1, image2, image3, image4, image5)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, article.ArticleID, string(article.Status), article.AddedByUserID, article.AddedAt,
		article.ExpiresAt, article.Remark, article.Title, article.Description,
		article.StartingPrice, images[0], images[1], images[2], images[3], images[4])
	if err != nil {
		return model.Article{}, fmt.Errorf("%s: %w: %w", op, articleerrors.ErrPersistence, err)
	}

	if err := l.replaceBiddings(l.db, article.ArticleID, article.Biddings); err != nil {
		return model.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	return article, nil
}

// UpdateArticle replaces the stored article row and its bid rows transactionally
func (l *PostgresLedger) UpdateArticle(article model.Article) error {
	const op = "ledger.postgres.UpdateArticle"

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, articleerrors.ErrPersistence, err)
	}
	defer tx.Rollback()

	images := paddedImages(article.Images)
	res, err := tx.Exec(`
	UPDATE articles SET status = $2, added_by_user_id = $3, added_at = $4, expires_at = $5,
	       remark = $6, title = $7, description = $8, starting_price = $9,
	       image1 = $10, image2 = $11, image3 = $12, image4 = $13, image5 = $14
	WHERE id = $1
	`, article.ArticleID, string(article.Status), article.AddedByUserID, article.AddedAt,
		article.ExpiresAt, article.Remark, article.Title, article.Description,
		article.StartingPrice, images[0], images[1], images[2], images[3], images[4])
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, articleerrors.ErrPersistence, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: article %s: %w", op, article.ArticleID, articleerrors.ErrArticleNotFound)
	}

	if err := l.replaceBiddings(tx, article.ArticleID, article.Biddings); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, articleerrors.ErrPersistence, err)
	}
	return nil
}

// DeleteArticle removes the article; bid rows cascade
func (l *PostgresLedger) DeleteArticle(articleID string) error {
	const op = "ledger.postgres.DeleteArticle"

	res, err := l.db.Exec(`DELETE FROM articles WHERE id = $1`, articleID)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, articleerrors.ErrPersistence, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: article %s: %w", op, articleID, articleerrors.ErrArticleNotFound)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (l *PostgresLedger) replaceBiddings(e execer, articleID string, biddings []model.Bid) error {
	if _, err := e.Exec(`DELETE FROM biddings WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("%w: %w", articleerrors.ErrPersistence, err)
	}
	for _, bid := range biddings {
		if bid.BidID == "" {
			bid.BidID = utils.GenerateID()
		}
		_, err := e.Exec(`
		INSERT INTO biddings(id, article_id, user_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		`, bid.BidID, articleID, bid.UserID, bid.Amount, bid.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", articleerrors.ErrPersistence, err)
		}
	}
	return nil
}

func (l *PostgresLedger) loadBiddings(articleID string) ([]model.Bid, error) {
	rows, err := l.db.Query(`
	SELECT id, article_id, user_id, amount, created_at
	FROM biddings WHERE article_id = $1 ORDER BY position
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var biddings []model.Bid
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.BidID, &bid.ArticleID, &bid.UserID, &bid.Amount, &bid.CreatedAt); err != nil {
			return nil, err
		}
		biddings = append(biddings, bid)
	}
	return biddings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (model.Article, error) {
	var article model.Article
	var status string
	images := make([]string, model.MaxImageSlots)
	err := row.Scan(&article.ArticleID, &status, &article.AddedByUserID, &article.AddedAt,
		&article.ExpiresAt, &article.Remark, &article.Title, &article.Description,
		&article.StartingPrice, &images[0], &images[1], &images[2], &images[3], &images[4])
	if err != nil {
		return model.Article{}, err
	}
	article.Status = model.ArticleStatus(status)
	article.Images = images
	return article, nil
}

// paddedImages normalizes a slice to exactly MaxImageSlots entries
func paddedImages(images []string) []string {
	padded := make([]string, model.MaxImageSlots)
	copy(padded, images)
	return padded
}
