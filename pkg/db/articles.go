package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/simplifeed/feedsync/pkg/domain"
)

// CreateArticle inserts a normalized article under the given identity,
// returns ErrConflict when the identity is already stored
func (db *DB) CreateArticle(ctx context.Context, id string, article *domain.Article) error {
	dbArticle := &Article{
		ID:         id,
		FeedID:     article.FeedID,
		Title:      article.Title,
		ArticleURL: article.ArticleURL,
		PubDate:    article.PubDate,
		ImageURL:   article.ImageURL,
		Author:     article.Author,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (id, feed_id, title, article_url, pub_date, image_url, author)
			VALUES (:id, :feed_id, :title, :article_url, :pub_date, :image_url, :author)
			ON CONFLICT(id) DO NOTHING
		`
		result, err := db.conn.NamedExecContext(ctx, query, dbArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert article: %w", err)}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if rowsAffected == 0 {
			return &criticalError{err: ErrConflict}
		}
		return nil
	}, ErrConflict)
}

// GetArticle retrieves an article by id
func (db *DB) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var dbArticle Article
	err := db.conn.GetContext(ctx, &dbArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return toDomainArticle(&dbArticle), nil
}

// ListArticlesByFeed retrieves a feed's articles, newest first
func (db *DB) ListArticlesByFeed(ctx context.Context, feedID string, limit, offset int) ([]domain.Article, error) {
	var dbArticles []Article
	query := `
		SELECT * FROM articles
		WHERE feed_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`
	if err := db.conn.SelectContext(ctx, &dbArticles, query, feedID, limit, offset); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, len(dbArticles))
	for i := range dbArticles {
		articles[i] = *toDomainArticle(&dbArticles[i])
	}
	return articles, nil
}

// CountArticlesByFeed returns the number of stored articles for a feed
func (db *DB) CountArticlesByFeed(ctx context.Context, feedID string) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// DeleteStaleArticles removes a feed's articles older than the cutoff while
// always keeping the newest keep records, returns the number of rows removed
func (db *DB) DeleteStaleArticles(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM articles
		WHERE feed_id = ? AND created_at < ?
		  AND id NOT IN (SELECT id FROM articles WHERE feed_id = ? ORDER BY created_at DESC LIMIT ?)
	`
	result, err := db.conn.ExecContext(ctx, query, feedID, cutoff.UTC(), feedID, keep)
	if err != nil {
		return 0, fmt.Errorf("delete stale articles: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rowsAffected, nil
}

func toDomainArticle(a *Article) *domain.Article {
	return &domain.Article{
		Title:      a.Title,
		ArticleURL: a.ArticleURL,
		PubDate:    a.PubDate,
		ImageURL:   a.ImageURL,
		Author:     a.Author,
		FeedID:     a.FeedID,
	}
}
