package feed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RSS(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
	<title>Test Feed</title>
	<image>
		<url>http://example.com/logo.png</url>
	</image>
	<item>
		<title>First Article</title>
		<link>http://example.com/articles/1</link>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<dc:creator>Jane Roe</dc:creator>
		<description>Some text</description>
	</item>
	<item>
		<title>Second Article</title>
		<link>http://example.com/articles/2</link>
	</item>
</channel>
</rss>`

	src, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Test Feed", src.Title)
	assert.Equal(t, "http://example.com/logo.png", src.ImageURL)

	require.Len(t, src.Items, 2)
	item := src.Items[0]
	assert.Equal(t, "First Article", item.Title)
	assert.Equal(t, "http://example.com/articles/1", item.PrimaryLink)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 -0700", item.PublishedText)
	assert.Equal(t, "Jane Roe", item.Author, "dc:creator matched by local name")
	assert.Equal(t, "Some text", item.ContentHTML)
	assert.Equal(t, "Second Article", src.Items[1].Title)
}

func TestParse_Atom(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Feed</title>
	<entry>
		<title>Entry One</title>
		<link href="http://example.com/entries/1"/>
		<published>2006-01-02T15:04:05Z</published>
		<author>
			<name>John Doe</name>
		</author>
		<summary>entry summary</summary>
	</entry>
</feed>`

	src, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Atom Feed", src.Title)
	require.Len(t, src.Items, 1)

	item := src.Items[0]
	assert.Equal(t, "Entry One", item.Title)
	assert.Equal(t, "http://example.com/entries/1", item.PrimaryLink, "empty link element falls back to href")
	assert.Equal(t, "2006-01-02T15:04:05Z", item.PublishedText)
	assert.Equal(t, "John Doe", item.Author, "author name read from nested child")
	assert.Equal(t, "entry summary", item.ContentHTML)
}

func TestParse_UnescapedAmpersand(t *testing.T) {
	raw := `<rss><channel>
	<title>News &amp; Views</title>
	<item>
		<title>Cats & Dogs</title>
		<link>http://example.com/1</link>
	</item>
</channel></rss>`

	src, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "News & Views", src.Title)
	require.Len(t, src.Items, 1)
	assert.Equal(t, "Cats & Dogs", src.Items[0].Title, "bare ampersand survives as literal text")
}

func TestParse_PodcastEnclosures(t *testing.T) {
	raw := `<rss><channel>
	<title>Pod Feed</title>
	<itunes:author xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">Host</itunes:author>
	<item>
		<title>Episode 1</title>
		<link>http://example.com/ep1</link>
		<enclosure url="http://example.com/ep1.mp3" type="audio/mpeg" length="12345678"/>
		<itunes:duration xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">1:02:03</itunes:duration>
		<description>&lt;p&gt;show notes&lt;/p&gt;</description>
	</item>
</channel></rss>`

	src, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Host", src.Author)

	require.Len(t, src.Items, 1)
	item := src.Items[0]
	assert.Equal(t, "http://example.com/ep1", item.PrimaryLink)
	assert.Equal(t, "1:02:03", item.DurationText)
	assert.Equal(t, "show notes", item.ContentHTML, "escaped markup reduced to text")

	require.Len(t, item.Enclosures, 1)
	enc := item.Enclosures[0]
	assert.Equal(t, "http://example.com/ep1.mp3", enc.URL)
	assert.Equal(t, "audio/mpeg", enc.MimeType)
	assert.Equal(t, int64(12345678), enc.LengthBytes)
}

func TestParse_AtomAudioLink(t *testing.T) {
	raw := `<feed>
	<title>Audio Atom</title>
	<entry>
		<title>Episode</title>
		<link rel="enclosure" type="audio/mp4" href="http://example.com/a.m4a" length="99"/>
	</entry>
</feed>`

	src, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.Len(t, src.Items, 1)

	item := src.Items[0]
	require.Len(t, item.Enclosures, 1)
	assert.Equal(t, "http://example.com/a.m4a", item.Enclosures[0].URL)
	assert.Equal(t, "audio/mp4", item.Enclosures[0].MimeType)
	assert.Equal(t, int64(99), item.Enclosures[0].LengthBytes)
}

func TestParse_Errors(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		raw := `<rss><channel><title>Empty</title></channel></rss>`
		_, err := Parse([]byte(raw))
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, ReasonNoEntries, perr.Reason)
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, err := Parse([]byte("this is not a feed"))
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, ReasonMalformedXML, perr.Reason)
	})

	t.Run("truncated document", func(t *testing.T) {
		raw := `<rss><channel><title>Broken</title><item><title>x</title>`
		_, err := Parse([]byte(raw))
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, ReasonMalformedXML, perr.Reason)
	})
}
