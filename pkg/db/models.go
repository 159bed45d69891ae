package db

import "time"

// Feed represents a feed subscription row
type Feed struct {
	ID                    string    `db:"id"`
	Title                 string    `db:"title"`
	RSSURL                string    `db:"rss_url"`
	ImageURL              string    `db:"image_url"`
	Kind                  string    `db:"kind"`
	LastUpdate            time.Time `db:"last_update"`
	UpdateIntervalMinutes int       `db:"update_interval_minutes"`
	CreatedAt             time.Time `db:"created_at"`
}

// Article represents a normalized article row
type Article struct {
	ID         string    `db:"id"`
	FeedID     string    `db:"feed_id"`
	Title      string    `db:"title"`
	ArticleURL string    `db:"article_url"`
	PubDate    string    `db:"pub_date"`
	ImageURL   string    `db:"image_url"`
	Author     string    `db:"author"`
	CreatedAt  time.Time `db:"created_at"`
}

// Episode represents a normalized podcast episode row
type Episode struct {
	ID              string    `db:"id"`
	FeedID          string    `db:"feed_id"`
	Title           string    `db:"title"`
	AudioURL        string    `db:"audio_url"`
	AudioMimeType   string    `db:"audio_mime_type"`
	Description     string    `db:"description"`
	PubDate         string    `db:"pub_date"`
	DurationSeconds int       `db:"duration_seconds"`
	ImageURL        string    `db:"image_url"`
	CreatedAt       time.Time `db:"created_at"`
}

// Blob represents a bucketed key-value record
type Blob struct {
	Bucket    string    `db:"bucket"`
	ID        string    `db:"id"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}
