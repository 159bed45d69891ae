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

// CreateEpisode inserts a normalized episode under the given identity,
// returns ErrConflict when the identity is already stored
func (db *DB) CreateEpisode(ctx context.Context, id string, episode *domain.Episode) error {
	dbEpisode := &Episode{
		ID:              id,
		FeedID:          episode.FeedID,
		Title:           episode.Title,
		AudioURL:        episode.AudioURL,
		AudioMimeType:   episode.AudioMimeType,
		Description:     episode.Description,
		PubDate:         episode.PubDate,
		DurationSeconds: episode.DurationSeconds,
		ImageURL:        episode.ImageURL,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO episodes (id, feed_id, title, audio_url, audio_mime_type, description,
				pub_date, duration_seconds, image_url)
			VALUES (:id, :feed_id, :title, :audio_url, :audio_mime_type, :description,
				:pub_date, :duration_seconds, :image_url)
			ON CONFLICT(id) DO NOTHING
		`
		result, err := db.conn.NamedExecContext(ctx, query, dbEpisode)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert episode: %w", err)}
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

// GetEpisode retrieves an episode by id
func (db *DB) GetEpisode(ctx context.Context, id string) (*domain.Episode, error) {
	var dbEpisode Episode
	err := db.conn.GetContext(ctx, &dbEpisode, "SELECT * FROM episodes WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get episode: %w", err)
	}
	return toDomainEpisode(&dbEpisode), nil
}

// ListEpisodesByFeed retrieves a feed's episodes, newest first
func (db *DB) ListEpisodesByFeed(ctx context.Context, feedID string, limit, offset int) ([]domain.Episode, error) {
	var dbEpisodes []Episode
	query := `
		SELECT * FROM episodes
		WHERE feed_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`
	if err := db.conn.SelectContext(ctx, &dbEpisodes, query, feedID, limit, offset); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	episodes := make([]domain.Episode, len(dbEpisodes))
	for i := range dbEpisodes {
		episodes[i] = *toDomainEpisode(&dbEpisodes[i])
	}
	return episodes, nil
}

// CountEpisodesByFeed returns the number of stored episodes for a feed
func (db *DB) CountEpisodesByFeed(ctx context.Context, feedID string) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM episodes WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}
	return count, nil
}

// DeleteStaleEpisodes removes a feed's episodes older than the cutoff while
// always keeping the newest keep records, returns the number of rows removed
func (db *DB) DeleteStaleEpisodes(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM episodes
		WHERE feed_id = ? AND created_at < ?
		  AND id NOT IN (SELECT id FROM episodes WHERE feed_id = ? ORDER BY created_at DESC LIMIT ?)
	`
	result, err := db.conn.ExecContext(ctx, query, feedID, cutoff.UTC(), feedID, keep)
	if err != nil {
		return 0, fmt.Errorf("delete stale episodes: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rowsAffected, nil
}

func toDomainEpisode(e *Episode) *domain.Episode {
	return &domain.Episode{
		Title:           e.Title,
		AudioURL:        e.AudioURL,
		AudioMimeType:   e.AudioMimeType,
		Description:     e.Description,
		PubDate:         e.PubDate,
		DurationSeconds: e.DurationSeconds,
		ImageURL:        e.ImageURL,
		FeedID:          e.FeedID,
	}
}
