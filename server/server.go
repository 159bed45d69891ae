package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/simplifeed/feedsync/pkg/domain"
	"github.com/simplifeed/feedsync/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/indexer.go -pkg mocks -skip-ensure -fmt goimports . Indexer
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	store      Store
	indexer    Indexer
	scheduler  Scheduler
	summarizer Summarizer
	extractor  Extractor
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server operations
type Store interface {
	CreateFeed(ctx context.Context, feed *domain.FeedSource) error
	GetFeed(ctx context.Context, id string) (*domain.FeedSource, error)
	ListFeeds(ctx context.Context, limit, offset int) ([]domain.FeedSource, error)
	CountFeeds(ctx context.Context) (int, error)
	UpdateFeedInterval(ctx context.Context, id string, intervalMinutes int) error
	DeleteFeed(ctx context.Context, id string) error
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	ListArticlesByFeed(ctx context.Context, feedID string, limit, offset int) ([]domain.Article, error)
	ListEpisodesByFeed(ctx context.Context, feedID string, limit, offset int) ([]domain.Episode, error)
}

// Indexer refreshes a single feed on demand
type Indexer interface {
	Refresh(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error)
}

// Scheduler runs refresh passes over all subscriptions
type Scheduler interface {
	RunPass(ctx context.Context) (*scheduler.PassResult, error)
}

// Summarizer produces article summaries, optional
type Summarizer interface {
	Summarize(ctx context.Context, articleID, articleURL string) (summary string, cached bool, err error)
}

// Extractor pulls readable text out of web pages
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance. Summarizer may be nil when summaries
// are disabled, the endpoint then reports http.StatusNotImplemented.
func New(cfg ConfigProvider, store Store, indexer Indexer, sched Scheduler,
	summarizer Summarizer, extractor Extractor, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		store:      store,
		indexer:    indexer,
		scheduler:  sched,
		summarizer: summarizer,
		extractor:  extractor,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedsync", "simplifeed", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("GET /feeds/{id}", s.getFeedHandler)
		r.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("POST /index/{id}", s.indexFeedHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)

		r.HandleFunc("GET /feeds/{id}/articles", s.listArticlesHandler)
		r.HandleFunc("GET /feeds/{id}/episodes", s.listEpisodesHandler)

		r.HandleFunc("POST /extract", s.extractHandler)
		r.HandleFunc("POST /articles/{id}/summary", s.summaryHandler)
	})
}
