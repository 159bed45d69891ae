package feed

import (
	"crypto/md5" //nolint:gosec // identity key, not a security boundary; must stay stable across runs and languages
	"encoding/hex"

	"github.com/simplifeed/feedsync/pkg/domain"
)

// FeedID derives the stable identity of a feed subscription from its RSS URL,
// so re-adding the same URL maps to the same record
func FeedID(rssURL string) string {
	return digest(rssURL)
}

// ArticleID derives the stable storage identity of an article. Articles are
// deduplicated purely by destination link: titles get edited upstream, the
// link is what identifies the piece.
func ArticleID(a domain.Article) string {
	return digest(a.ArticleURL)
}

// EpisodeID derives the stable storage identity of an episode from title plus
// audio URL. Same audio under a different title counts as a distinct episode,
// re-titled re-releases are kept apart rather than merged.
func EpisodeID(e domain.Episode) string {
	return digest(e.Title + e.AudioURL)
}

func digest(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec // see import note
	return hex.EncodeToString(sum[:])
}
