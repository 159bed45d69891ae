package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/simplifeed/feedsync/pkg/db"
	"github.com/simplifeed/feedsync/pkg/domain"
	"github.com/simplifeed/feedsync/pkg/feed"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Fetcher retrieves raw feed documents
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Store persists normalized records and refresh markers
type Store interface {
	CreateArticle(ctx context.Context, id string, article *domain.Article) error
	CreateEpisode(ctx context.Context, id string, episode *domain.Episode) error
	UpdateFeedRefreshed(ctx context.Context, id string, at time.Time) error
}

// Config holds indexer configuration
type Config struct {
	ConflictWindow int // consecutive conflicts before assuming the rest of the feed is known
}

// Indexer runs the fetch, parse, normalize and store pipeline for one feed
type Indexer struct {
	fetcher        Fetcher
	store          Store
	conflictWindow int
	now            func() time.Time
}

// New creates an indexer
func New(fetcher Fetcher, store Store, cfg Config) *Indexer {
	if cfg.ConflictWindow <= 0 {
		cfg.ConflictWindow = 3
	}
	return &Indexer{
		fetcher:        fetcher,
		store:          store,
		conflictWindow: cfg.ConflictWindow,
		now:            time.Now,
	}
}

// Refresh indexes a single feed. A fetch or parse failure is fatal: it returns
// a non-nil error along with a Failure outcome and leaves the feed's refresh
// marker untouched. Once items are being processed the run always completes,
// the per-item results are rolled up into the returned outcome and the refresh
// marker moves forward regardless of it.
func (ix *Indexer) Refresh(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
	raw, err := ix.fetcher.Fetch(ctx, source.RSSURL)
	if err != nil {
		lgr.Printf("[WARN] fetch failed for feed %s: %v", source.ID, err)
		return domain.FeedFailure, fmt.Errorf("fetch feed %s: %w", source.RSSURL, err)
	}

	parsed, err := feed.Parse(raw)
	if err != nil {
		lgr.Printf("[WARN] parse failed for feed %s: %v", source.ID, err)
		return domain.FeedFailure, fmt.Errorf("parse feed %s: %w", source.RSSURL, err)
	}

	// item images fall back to feed-level artwork
	imageURL := parsed.ImageURL
	if imageURL == "" {
		imageURL = source.ImageURL
	}

	var outcomes []domain.ItemOutcome
	var created, conflicted, failed, skipped int

	for i := range parsed.Items {
		outcome, ok := ix.storeItem(ctx, source, parsed.Items[i], imageURL)
		if !ok {
			skipped++
			continue // incomplete item, no outcome recorded
		}
		outcomes = append(outcomes, outcome)

		switch outcome {
		case domain.ItemSuccess:
			created++
		case domain.ItemConflict:
			conflicted++
		case domain.ItemFailure:
			failed++
		}

		// a run of conflicts means we've reached previously indexed territory
		if ix.trailingConflicts(outcomes) {
			lgr.Printf("[DEBUG] feed %s: %d consecutive conflicts, stopping early", source.ID, ix.conflictWindow)
			break
		}
	}

	rollup := domain.Rollup(outcomes)

	if err := ix.store.UpdateFeedRefreshed(ctx, source.ID, ix.now()); err != nil {
		lgr.Printf("[ERROR] failed to update refresh marker for feed %s: %v", source.ID, err)
	}

	lgr.Printf("[INFO] refreshed feed %s (%s): %s, %d created, %d known, %d failed, %d skipped",
		source.ID, source.Title, rollup, created, conflicted, failed, skipped)
	return rollup, nil
}

// storeItem normalizes and persists one item, the second return is false when
// the item is incomplete and produced no outcome
func (ix *Indexer) storeItem(ctx context.Context, source *domain.FeedSource, item domain.GenericFeedItem, imageURL string) (domain.ItemOutcome, bool) {
	var err error

	switch source.Kind {
	case domain.KindPodcast:
		episode, ok := feed.NormalizeEpisode(item, source.ID, imageURL)
		if !ok {
			return 0, false
		}
		err = ix.store.CreateEpisode(ctx, feed.EpisodeID(episode), &episode)
	default:
		article, ok := feed.NormalizeArticle(item, source.ID, imageURL)
		if !ok {
			return 0, false
		}
		err = ix.store.CreateArticle(ctx, feed.ArticleID(article), &article)
	}

	switch {
	case err == nil:
		return domain.ItemSuccess, true
	case errors.Is(err, db.ErrConflict):
		return domain.ItemConflict, true
	default:
		lgr.Printf("[WARN] failed to store item %q for feed %s: %v", item.Title, source.ID, err)
		return domain.ItemFailure, true
	}
}

// trailingConflicts reports whether the last conflictWindow outcomes are all conflicts
func (ix *Indexer) trailingConflicts(outcomes []domain.ItemOutcome) bool {
	if len(outcomes) < ix.conflictWindow {
		return false
	}
	for _, o := range outcomes[len(outcomes)-ix.conflictWindow:] {
		if o != domain.ItemConflict {
			return false
		}
	}
	return true
}
