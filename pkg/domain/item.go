package domain

// Enclosure is a media attachment declared by a feed item
type Enclosure struct {
	URL         string
	MimeType    string
	LengthBytes int64
}

// GenericFeedItem is the dialect-agnostic intermediate produced by the feed
// parser and consumed by the normalizer within a single parse pass
type GenericFeedItem struct {
	Title         string
	PrimaryLink   string
	PublishedText string
	Author        string
	ContentHTML   string
	DurationText  string // itunes-style duration as delivered, not yet parsed
	Enclosures    []Enclosure
}

// Article is a canonical news item. Title is trimmed and rendered to plain
// text when the source delivered markup in it.
type Article struct {
	Title      string
	ArticleURL string
	PubDate    string
	ImageURL   string
	Author     string
	FeedID     string
}

// Episode is a canonical podcast episode
type Episode struct {
	Title           string
	AudioURL        string
	AudioMimeType   string
	Description     string
	PubDate         string
	DurationSeconds int
	ImageURL        string
	FeedID          string
}
