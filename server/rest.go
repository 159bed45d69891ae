package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/simplifeed/feedsync/pkg/db"
	"github.com/simplifeed/feedsync/pkg/domain"
	"github.com/simplifeed/feedsync/pkg/feed"
)

// feedInfo is the JSON representation of a feed subscription
type feedInfo struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	RSSURL                string    `json:"rss_url"`
	ImageURL              string    `json:"image_url,omitempty"`
	Kind                  string    `json:"kind"`
	LastUpdate            time.Time `json:"last_update"`
	UpdateIntervalMinutes int       `json:"update_interval_minutes"`
}

// articleInfo is the JSON representation of a stored article
type articleInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ArticleURL string `json:"article_url"`
	PubDate    string `json:"pub_date,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	Author     string `json:"author,omitempty"`
	FeedID     string `json:"feed_id"`
}

// episodeInfo is the JSON representation of a stored episode
type episodeInfo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	AudioURL        string `json:"audio_url"`
	AudioMimeType   string `json:"audio_mime_type"`
	Description     string `json:"description,omitempty"`
	PubDate         string `json:"pub_date,omitempty"`
	DurationSeconds int    `json:"duration_seconds"`
	ImageURL        string `json:"image_url,omitempty"`
	FeedID          string `json:"feed_id"`
}

func toFeedInfo(f *domain.FeedSource) feedInfo {
	return feedInfo{
		ID:                    f.ID,
		Title:                 f.Title,
		RSSURL:                f.RSSURL,
		ImageURL:              f.ImageURL,
		Kind:                  string(f.Kind),
		LastUpdate:            f.LastUpdate,
		UpdateIntervalMinutes: f.UpdateIntervalMinutes,
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountFeeds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to count feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"feeds":   count,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// createFeedHandler handles feed creation
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Title                 string `json:"title"`
		RSSURL                string `json:"rss_url"`
		ImageURL              string `json:"image_url"`
		Kind                  string `json:"kind"`
		UpdateIntervalMinutes int    `json:"update_interval_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.RSSURL == "" {
		renderError(w, r, fmt.Errorf("rss_url is required"), http.StatusBadRequest)
		return
	}

	kind := domain.FeedKind(req.Kind)
	if req.Kind == "" {
		kind = domain.KindArticle
	}
	if !kind.Valid() {
		renderError(w, r, fmt.Errorf("invalid kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	if req.UpdateIntervalMinutes <= 0 {
		req.UpdateIntervalMinutes = 60
	}

	// zero LastUpdate makes the feed due on the next scheduler pass
	source := &domain.FeedSource{
		ID:                    feed.FeedID(req.RSSURL),
		Title:                 req.Title,
		RSSURL:                req.RSSURL,
		ImageURL:              req.ImageURL,
		Kind:                  kind,
		UpdateIntervalMinutes: req.UpdateIntervalMinutes,
	}

	if err := s.store.CreateFeed(ctx, source); err != nil {
		if errors.Is(err, db.ErrConflict) {
			renderError(w, r, fmt.Errorf("feed already exists"), http.StatusConflict)
			return
		}
		lgr.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// first index runs in the background, it outlives the request
	go func() {
		if _, err := s.indexer.Refresh(context.Background(), source); err != nil {
			lgr.Printf("[WARN] initial refresh failed for feed %s: %v", source.ID, err)
		}
	}()

	renderJSON(w, r, http.StatusCreated, toFeedInfo(source))
}

// listFeedsHandler returns a page of subscriptions with the total count
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := parsePaging(r)

	feeds, err := s.store.ListFeeds(ctx, limit, offset)
	if err != nil {
		lgr.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	total, err := s.store.CountFeeds(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]feedInfo, len(feeds))
	for i := range feeds {
		infos[i] = toFeedInfo(&feeds[i])
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"feeds":  infos,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// getFeedHandler returns a single subscription
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	source, err := s.store.GetFeed(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toFeedInfo(source))
}

// updateFeedHandler changes the refresh interval of a subscription
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req struct {
		UpdateIntervalMinutes int `json:"update_interval_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UpdateIntervalMinutes < 1 {
		renderError(w, r, fmt.Errorf("update_interval_minutes must be at least 1"), http.StatusBadRequest)
		return
	}

	if err := s.store.UpdateFeedInterval(ctx, id, req.UpdateIntervalMinutes); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to update feed interval: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	source, err := s.store.GetFeed(ctx, id)
	if err != nil {
		lgr.Printf("[ERROR] failed to reload feed after update: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toFeedInfo(source))
}

// deleteFeedHandler removes a subscription and its stored items
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteFeed(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to delete feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// indexFeedHandler refreshes one feed and reports the rollup outcome through
// the response status code
func (s *Server) indexFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	source, err := s.store.GetFeed(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	outcome, err := s.indexer.Refresh(ctx, source)
	if err != nil {
		lgr.Printf("[ERROR] failed to refresh feed %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, outcome.HTTPStatus(), map[string]string{
		"feed_id": id,
		"outcome": outcome.String(),
	})
}

// refreshHandler triggers a scheduler pass over all subscriptions. By default
// the pass runs in the background, with ?wait=1 the request blocks and returns
// the pass summary.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("wait") != "1" {
		go func() {
			// background context, the pass outlives the request
			if _, err := s.scheduler.RunPass(context.Background()); err != nil {
				lgr.Printf("[ERROR] background refresh pass failed: %v", err)
			}
		}()
		renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "refresh started"})
		return
	}

	res, err := s.scheduler.RunPass(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] refresh pass failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	results := make([]map[string]string, 0, len(res.Results))
	for _, fr := range res.Results {
		entry := map[string]string{
			"feed_id": fr.FeedID,
			"title":   fr.Title,
			"outcome": fr.Outcome.String(),
		}
		if fr.Err != nil {
			entry["error"] = fr.Err.Error()
		}
		results = append(results, entry)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"checked": res.Checked,
		"due":     res.Due,
		"results": results,
	})
}

// listArticlesHandler returns a page of stored articles for a feed
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	limit, offset := parsePaging(r)

	if _, err := s.store.GetFeed(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	articles, err := s.store.ListArticlesByFeed(ctx, id, limit, offset)
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]articleInfo, len(articles))
	for i, a := range articles {
		infos[i] = articleInfo{
			ID:         feed.ArticleID(a),
			Title:      a.Title,
			ArticleURL: a.ArticleURL,
			PubDate:    a.PubDate,
			ImageURL:   a.ImageURL,
			Author:     a.Author,
			FeedID:     a.FeedID,
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": infos,
		"limit":    limit,
		"offset":   offset,
	})
}

// listEpisodesHandler returns a page of stored episodes for a feed
func (s *Server) listEpisodesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	limit, offset := parsePaging(r)

	if _, err := s.store.GetFeed(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	episodes, err := s.store.ListEpisodesByFeed(ctx, id, limit, offset)
	if err != nil {
		lgr.Printf("[ERROR] failed to list episodes: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]episodeInfo, len(episodes))
	for i, e := range episodes {
		infos[i] = episodeInfo{
			ID:              feed.EpisodeID(e),
			Title:           e.Title,
			AudioURL:        e.AudioURL,
			AudioMimeType:   e.AudioMimeType,
			Description:     e.Description,
			PubDate:         e.PubDate,
			DurationSeconds: e.DurationSeconds,
			ImageURL:        e.ImageURL,
			FeedID:          e.FeedID,
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"episodes": infos,
		"limit":    limit,
		"offset":   offset,
	})
}

// extractHandler pulls readable text out of an arbitrary page URL
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	content, err := s.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to extract content from %s: %v", req.URL, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"url":     req.URL,
		"content": content,
	})
}

// summaryHandler returns an LLM summary for a stored article
func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if s.summarizer == nil {
		renderError(w, r, fmt.Errorf("summaries are disabled"), http.StatusNotImplemented)
		return
	}

	article, err := s.store.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get article: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	summary, cached, err := s.summarizer.Summarize(ctx, id, article.ArticleURL)
	if err != nil {
		lgr.Printf("[ERROR] failed to summarize article %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"article_id": id,
		"summary":    summary,
		"cached":     cached,
	})
}

// parsePaging reads limit and offset query parameters with sane bounds
func parsePaging(r *http.Request) (limit, offset int) {
	limit = 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
