package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/playlists.go -pkg mocks -skip-ensure -fmt goimports . PlaylistFinder
//go:generate moq -out mocks/feedback.go -pkg mocks -skip-ensure -fmt goimports . FeedbackStore
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . Detector

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	catalog   Catalog
	ranker    Recommender
	playlists PlaylistFinder
	feedback  FeedbackStore
	detector  Detector
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Catalog interface for product store operations
type Catalog interface {
	GetByID(id int64) (domain.Item, bool)
	Search(query string) []domain.Item
	Add(item domain.Item) error
	All() []domain.Item
}

// Recommender ranks catalog items for a detected emotion
type Recommender interface {
	Rank(emotion string, items []domain.Item, topN int) []domain.Item
}

// PlaylistFinder searches mood-matched playlists
type PlaylistFinder interface {
	Available() bool
	GetByMood(ctx context.Context, mood string, topN int) []domain.Playlist
}

// FeedbackStore records and aggregates user feedback
type FeedbackStore interface {
	Append(rec domain.Record) error
	Summarize() (*domain.Summary, error)
}

// Detector classifies facial emotion from an uploaded image
type Detector interface {
	Detect(ctx context.Context, imageData []byte) domain.Detection
	Meets(det domain.Detection) bool
	Threshold() float64
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetRecommendConfig() config.RecommendConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, catalog Catalog, ranker Recommender, playlists PlaylistFinder,
	feedback FeedbackStore, detector Detector, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		catalog:   catalog,
		ranker:    ranker,
		playlists: playlists,
		feedback:  feedback,
		detector:  detector,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

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
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("moodshop", "moodshop", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // 10MB, image uploads included
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /detect", s.detectHandler)
		r.HandleFunc("GET /recommendations", s.recommendationsHandler)
		r.HandleFunc("GET /playlists", s.playlistsHandler)

		r.HandleFunc("GET /products", s.listProductsHandler)
		r.HandleFunc("POST /products", s.addProductHandler)
		r.HandleFunc("GET /products/search", s.searchProductsHandler)
		r.HandleFunc("GET /products/{id}", s.getProductHandler)

		r.HandleFunc("POST /feedback", s.addFeedbackHandler)
		r.HandleFunc("GET /feedback/summary", s.feedbackSummaryHandler)
	})
}
