package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/simplifeed/feedsync/pkg/domain"
)

// Source is feed-level metadata plus the item sequence produced by one parse pass
type Source struct {
	Title    string
	ImageURL string
	Author   string
	Items    []domain.GenericFeedItem
}

// ParseReason classifies parse failures
type ParseReason int

// parse failure reasons
const (
	ReasonMalformedXML ParseReason = iota
	ReasonNoEntries
)

// ParseError is a fatal feed-level parse failure
type ParseError struct {
	Reason ParseReason
	Err    error
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonNoEntries:
		return "no entries found in feed"
	default:
		if e.Err != nil {
			return fmt.Sprintf("malformed feed xml: %v", e.Err)
		}
		return "malformed feed xml"
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// node is a generic XML element tree, matched by local name only so namespaced
// tags (atom:link, dc:creator, itunes:duration) need no namespace resolution
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Parse turns raw feed bytes into feed metadata and a generic item sequence.
// It tolerates both RSS (items under a channel element) and Atom (entries
// directly under the root), and survives the unescaped ampersands common in
// real-world feeds.
func Parse(raw []byte) (*Source, error) {
	var root node
	if err := xml.Unmarshal(sanitizeEntities(raw), &root); err != nil {
		return nil, &ParseError{Reason: ReasonMalformedXML, Err: err}
	}

	src := &Source{}
	var items []node

	if channel := findChild(&root, "channel"); channel != nil {
		// RSS: feed metadata and items live under the channel
		for i := range channel.Children {
			c := &channel.Children[i]
			name := c.XMLName.Local
			switch {
			case name == "title":
				src.Title = strings.TrimSpace(c.Text)
			case name == "image":
				if u := findChild(c, "url"); u != nil {
					src.ImageURL = strings.TrimSpace(u.Text)
				}
			case strings.Contains(name, "author"):
				if t := strings.TrimSpace(c.Text); t != "" {
					src.Author = t
				}
			case strings.Contains(name, "item"):
				items = append(items, *c)
			}
		}
	} else {
		// Atom: entries are direct children of the root
		for i := range root.Children {
			c := &root.Children[i]
			name := c.XMLName.Local
			switch {
			case name == "title":
				src.Title = strings.TrimSpace(c.Text)
			case strings.Contains(name, "image"):
				src.ImageURL = strings.TrimSpace(c.Text)
			case strings.Contains(name, "author"):
				if nm := findChild(c, "name"); nm != nil {
					src.Author = strings.TrimSpace(nm.Text)
				}
			case strings.Contains(name, "entry"):
				items = append(items, *c)
			}
		}
	}

	if len(items) == 0 {
		return nil, &ParseError{Reason: ReasonNoEntries}
	}

	src.Items = make([]domain.GenericFeedItem, 0, len(items))
	for i := range items {
		src.Items = append(src.Items, parseItem(&items[i]))
	}
	return src, nil
}

// sanitizeEntities unescapes all entities and re-escapes every remaining
// ampersand. Deliberately not spec-correct XML: feeds in the wild carry bare
// ampersands that would otherwise kill the structural parse.
func sanitizeEntities(raw []byte) []byte {
	s := html.UnescapeString(string(raw))
	return []byte(strings.ReplaceAll(s, "&", "&amp;"))
}

func findChild(n *node, local string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

// parseItem extracts one generic item. Tag matching is substring-based on the
// local name to survive the many dialect variations seen in real feeds.
func parseItem(n *node) domain.GenericFeedItem {
	item := domain.GenericFeedItem{}
	for i := range n.Children {
		c := &n.Children[i]
		name := c.XMLName.Local
		text := strings.TrimSpace(c.Text)
		switch {
		case strings.Contains(name, "title"):
			// entity-escaped markup became real child elements in the
			// leniency pass, collect text from the whole subtree
			item.Title = innerText(c)
		case strings.Contains(name, "link"):
			url := text
			if url == "" {
				url = c.attr("href") // Atom links carry the target as an attribute
			}
			if url != "" {
				item.PrimaryLink = url
			}
			if mime := c.attr("type"); mime != "" && url != "" {
				item.Enclosures = append(item.Enclosures, enclosure(url, mime, c.attr("length")))
			}
		case strings.Contains(name, "enclosure"):
			url := c.attr("url")
			if url == "" {
				url = text
			}
			if mime := c.attr("type"); mime != "" && url != "" {
				item.Enclosures = append(item.Enclosures, enclosure(url, mime, c.attr("length")))
			}
		case strings.Contains(name, "pubDate") || strings.Contains(name, "published"):
			item.PublishedText = text
		case strings.Contains(name, "creator"):
			item.Author = text
		case strings.Contains(name, "author"):
			if item.Author == "" {
				if nm := findChild(c, "name"); nm != nil {
					item.Author = strings.TrimSpace(nm.Text)
				}
			}
		case strings.Contains(name, "duration"):
			item.DurationText = text
		case strings.Contains(name, "description") || strings.Contains(name, "summary"):
			item.ContentHTML = innerText(c)
		}
	}
	return item
}

// innerText joins all character data in the subtree with single spaces
func innerText(n *node) string {
	var segments []string
	var walk func(*node)
	walk = func(m *node) {
		if t := strings.Join(strings.Fields(m.Text), " "); t != "" {
			segments = append(segments, t)
		}
		for i := range m.Children {
			walk(&m.Children[i])
		}
	}
	walk(n)
	return strings.Join(segments, " ")
}

func enclosure(url, mime, length string) domain.Enclosure {
	size, _ := strconv.ParseInt(strings.TrimSpace(length), 10, 64)
	return domain.Enclosure{URL: url, MimeType: mime, LengthBytes: size}
}
