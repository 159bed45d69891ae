package domain

import "time"

// FeedKind tells what a feed source produces: articles or podcast episodes
type FeedKind string

// feed kinds
const (
	KindArticle FeedKind = "article"
	KindPodcast FeedKind = "podcast"
)

// Valid reports if the kind is one of the known values
func (k FeedKind) Valid() bool {
	return k == KindArticle || k == KindPodcast
}

// FeedSource is a subscribed feed. LastUpdate advances only after a refresh
// that made it past fetch and parse, so a failed or cancelled refresh leaves
// the feed due again on the next pass.
type FeedSource struct {
	ID                    string
	Title                 string
	RSSURL                string
	ImageURL              string
	Kind                  FeedKind
	LastUpdate            time.Time
	UpdateIntervalMinutes int
}

// Due reports if the feed should be refreshed at the given moment,
// i.e. more than UpdateIntervalMinutes elapsed since the last update.
// The comparison is strictly greater, a feed exactly at its interval waits
// for the next pass.
func (f *FeedSource) Due(now time.Time) bool {
	elapsed := now.Sub(f.LastUpdate).Minutes()
	return elapsed > float64(f.UpdateIntervalMinutes)
}
