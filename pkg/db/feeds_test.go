package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplifeed/feedsync/pkg/domain"
)

func testFeed(id, title string) *domain.FeedSource {
	return &domain.FeedSource{
		ID:                    id,
		Title:                 title,
		RSSURL:                "http://example.com/" + id + ".xml",
		ImageURL:              "http://example.com/" + id + ".png",
		Kind:                  domain.KindArticle,
		UpdateIntervalMinutes: 60,
	}
}

func TestDB_CreateFeed(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	t.Run("create and get back", func(t *testing.T) {
		require.NoError(t, database.CreateFeed(ctx, testFeed("f1", "First")))

		got, err := database.GetFeed(ctx, "f1")
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.Equal(t, "http://example.com/f1.xml", got.RSSURL)
		assert.Equal(t, domain.KindArticle, got.Kind)
		assert.Equal(t, 60, got.UpdateIntervalMinutes)
		assert.True(t, got.LastUpdate.IsZero(), "new feed has never been refreshed")
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		err := database.CreateFeed(ctx, testFeed("f1", "First Again"))
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestDB_GetFeedNotFound(t *testing.T) {
	database := setupTestDB(t)
	_, err := database.GetFeed(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDB_ListFeeds(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateFeed(ctx, testFeed("f1", "Charlie")))
	require.NoError(t, database.CreateFeed(ctx, testFeed("f2", "Alpha")))
	require.NoError(t, database.CreateFeed(ctx, testFeed("f3", "Bravo")))

	t.Run("ordered by title", func(t *testing.T) {
		feeds, err := database.ListFeeds(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, feeds, 3)
		assert.Equal(t, "Alpha", feeds[0].Title)
		assert.Equal(t, "Bravo", feeds[1].Title)
		assert.Equal(t, "Charlie", feeds[2].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		feeds, err := database.ListFeeds(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, feeds, 1)
		assert.Equal(t, "Charlie", feeds[0].Title)
	})

	t.Run("count", func(t *testing.T) {
		count, err := database.CountFeeds(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestDB_UpdateFeedRefreshed(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateFeed(ctx, testFeed("f1", "First")))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, database.UpdateFeedRefreshed(ctx, "f1", now))

	got, err := database.GetFeed(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, now, got.LastUpdate.UTC().Truncate(time.Second))

	assert.ErrorIs(t, database.UpdateFeedRefreshed(ctx, "missing", now), ErrNotFound)
}

func TestDB_UpdateFeedInterval(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateFeed(ctx, testFeed("f1", "First")))
	require.NoError(t, database.UpdateFeedInterval(ctx, "f1", 15))

	got, err := database.GetFeed(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, 15, got.UpdateIntervalMinutes)

	assert.ErrorIs(t, database.UpdateFeedInterval(ctx, "missing", 15), ErrNotFound)
}

func TestDB_DeleteFeed(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateFeed(ctx, testFeed("f1", "First")))
	require.NoError(t, database.CreateArticle(ctx, "a1", &domain.Article{
		Title: "Article", ArticleURL: "http://example.com/a1", FeedID: "f1",
	}))

	require.NoError(t, database.DeleteFeed(ctx, "f1"))

	_, err := database.GetFeed(ctx, "f1")
	assert.ErrorIs(t, err, ErrNotFound)

	// cascade removed the feed's articles
	_, err = database.GetArticle(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, database.DeleteFeed(ctx, "f1"), ErrNotFound)
}
