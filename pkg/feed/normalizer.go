package feed

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/simplifeed/feedsync/pkg/domain"
)

// NormalizeArticle maps a generic item to a canonical Article. The second
// return is false when the item lacks the required fields and should be
// skipped; a malformed item never aborts the feed.
func NormalizeArticle(item domain.GenericFeedItem, feedID, feedImageURL string) (a domain.Article, ok bool) {
	if item.Title == "" || item.PrimaryLink == "" {
		return a, false
	}

	a = domain.Article{
		Title:      cleanTitle(item.Title),
		ArticleURL: item.PrimaryLink,
		PubDate:    item.PublishedText,
		ImageURL:   feedImageURL,
		Author:     item.Author,
		FeedID:     feedID,
	}
	return a, true
}

// NormalizeEpisode maps a generic item to a canonical Episode. Requires a
// title and an enclosure with an audio mime type, otherwise the item is
// skipped.
func NormalizeEpisode(item domain.GenericFeedItem, feedID, feedImageURL string) (e domain.Episode, ok bool) {
	audio, found := audioEnclosure(item)
	if item.Title == "" || !found {
		return e, false
	}

	e = domain.Episode{
		Title:           cleanTitle(item.Title),
		AudioURL:        audio.URL,
		AudioMimeType:   audio.MimeType,
		PubDate:         item.PublishedText,
		DurationSeconds: ParseDurationSeconds(item.DurationText),
		ImageURL:        feedImageURL,
		FeedID:          feedID,
	}
	if item.ContentHTML != "" {
		e.Description = renderPlainText(item.ContentHTML)
	}
	return e, true
}

// audioEnclosure picks the first enclosure whose declared type is audio
func audioEnclosure(item domain.GenericFeedItem) (domain.Enclosure, bool) {
	for _, enc := range item.Enclosures {
		if strings.Contains(enc.MimeType, "audio") {
			return enc, true
		}
	}
	return domain.Enclosure{}, false
}

// ParseDurationSeconds parses an itunes-style duration: a bare integer is
// seconds, a colon-separated value counts from the right (seconds, minutes,
// hours), anything unparseable is zero. The enclosure byte length is never a
// substitute, an unknown duration stays unknown.
func ParseDurationSeconds(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}

	parts := strings.Split(s, ":")
	total, mult := 0, 1
	for i := len(parts) - 1; i >= 0; i-- {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 {
			return 0
		}
		total += v * mult
		mult *= 60
	}
	return total
}

// cleanTitle trims the title and renders embedded markup to plain text
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if strings.Contains(title, "<") && strings.Contains(title, ">") {
		title = renderPlainText(title)
	}
	return title
}

// renderPlainText strips markup keeping the text, segments joined with single
// spaces the way reading mode renders titles and descriptions
func renderPlainText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var segments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				segments = append(segments, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(segments, " ")
}
