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

// CreateFeed inserts a new feed subscription, returns ErrConflict when a feed
// with the same id already exists
func (db *DB) CreateFeed(ctx context.Context, feed *domain.FeedSource) error {
	dbFeed := &Feed{
		ID:                    feed.ID,
		Title:                 feed.Title,
		RSSURL:                feed.RSSURL,
		ImageURL:              feed.ImageURL,
		Kind:                  string(feed.Kind),
		LastUpdate:            feed.LastUpdate.UTC(),
		UpdateIntervalMinutes: feed.UpdateIntervalMinutes,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO feeds (id, title, rss_url, image_url, kind, last_update, update_interval_minutes)
			VALUES (:id, :title, :rss_url, :image_url, :kind, :last_update, :update_interval_minutes)
			ON CONFLICT(id) DO NOTHING
		`
		result, err := db.conn.NamedExecContext(ctx, query, dbFeed)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert feed: %w", err)}
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

// GetFeed retrieves a feed by id
func (db *DB) GetFeed(ctx context.Context, id string) (*domain.FeedSource, error) {
	var dbFeed Feed
	err := db.conn.GetContext(ctx, &dbFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return toDomainFeed(&dbFeed), nil
}

// ListFeeds retrieves feeds ordered by title with pagination
func (db *DB) ListFeeds(ctx context.Context, limit, offset int) ([]domain.FeedSource, error) {
	var dbFeeds []Feed
	query := `SELECT * FROM feeds ORDER BY title, id LIMIT ? OFFSET ?`
	if err := db.conn.SelectContext(ctx, &dbFeeds, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	feeds := make([]domain.FeedSource, len(dbFeeds))
	for i := range dbFeeds {
		feeds[i] = *toDomainFeed(&dbFeeds[i])
	}
	return feeds, nil
}

// CountFeeds returns the total number of subscriptions
func (db *DB) CountFeeds(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM feeds"); err != nil {
		return 0, fmt.Errorf("count feeds: %w", err)
	}
	return count, nil
}

// UpdateFeedRefreshed moves the feed's last update marker forward
func (db *DB) UpdateFeedRefreshed(ctx context.Context, id string, at time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, "UPDATE feeds SET last_update = ? WHERE id = ?", at.UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed refreshed: %w", err)}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if rowsAffected == 0 {
			return &criticalError{err: ErrNotFound}
		}
		return nil
	}, ErrNotFound)
}

// UpdateFeedInterval changes how often the feed is refreshed
func (db *DB) UpdateFeedInterval(ctx context.Context, id string, intervalMinutes int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := db.conn.ExecContext(ctx,
			"UPDATE feeds SET update_interval_minutes = ? WHERE id = ?", intervalMinutes, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed interval: %w", err)}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if rowsAffected == 0 {
			return &criticalError{err: ErrNotFound}
		}
		return nil
	}, ErrNotFound)
}

// DeleteFeed removes a feed and, via cascade, all its articles and episodes
func (db *DB) DeleteFeed(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func toDomainFeed(f *Feed) *domain.FeedSource {
	return &domain.FeedSource{
		ID:                    f.ID,
		Title:                 f.Title,
		RSSURL:                f.RSSURL,
		ImageURL:              f.ImageURL,
		Kind:                  domain.FeedKind(f.Kind),
		LastUpdate:            f.LastUpdate,
		UpdateIntervalMinutes: f.UpdateIntervalMinutes,
	}
}
