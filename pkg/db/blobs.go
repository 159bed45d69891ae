package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// PutBlob stores data under a bucket and id, overwriting any previous value
func (db *DB) PutBlob(ctx context.Context, bucket, id, data string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO blobs (bucket, id, data)
			VALUES (?, ?, ?)
			ON CONFLICT(bucket, id) DO UPDATE SET data = excluded.data, created_at = datetime('now')
		`
		if _, err := db.conn.ExecContext(ctx, query, bucket, id, data); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("put blob: %w", err)}
		}
		return nil
	})
}

// GetBlob retrieves the data stored under a bucket and id
func (db *DB) GetBlob(ctx context.Context, bucket, id string) (string, error) {
	var data string
	err := db.conn.GetContext(ctx, &data, "SELECT data FROM blobs WHERE bucket = ? AND id = ?", bucket, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get blob: %w", err)
	}
	return data, nil
}

// DeleteBlob removes a single record
func (db *DB) DeleteBlob(ctx context.Context, bucket, id string) error {
	result, err := db.conn.ExecContext(ctx, "DELETE FROM blobs WHERE bucket = ? AND id = ?", bucket, id)
	if err != nil {
		return fmt.Errorf("delete blob: %w", err)
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

// DeleteBlobsOlderThan removes all records in a bucket written before the
// cutoff, returns the number of rows removed
func (db *DB) DeleteBlobsOlderThan(ctx context.Context, bucket string, cutoff time.Time) (int64, error) {
	result, err := db.conn.ExecContext(ctx,
		"DELETE FROM blobs WHERE bucket = ? AND created_at < ?", bucket, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old blobs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rowsAffected, nil
}
