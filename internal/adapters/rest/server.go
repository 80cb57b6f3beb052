package rest

import (
	"context"
	"fmt"
	core_port "listing-service/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// NewRouter собирает маршруты. Вынесен отдельно, чтобы тесты могли гонять его через httptest.
func NewRouter(cfg ServerConfig, catalog *CatalogHandler, content *ContentHandler, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", catalog.ListProperties)
			r.Get("/{propertyID}", catalog.GetProperty)
		})

		r.Route("/content", func(r chi.Router) {
			r.Use(PreviewMiddleware)

			r.Get("/hero", content.GetHero)
			r.Get("/properties", content.ListProperties)
			r.Get("/properties/featured", content.ListFeatured)
			r.Get("/properties/{propertyID}", content.GetProperty)
		})
	})

	return r
}

func NewServer(cfg ServerConfig, catalog *CatalogHandler, content *ContentHandler, baseLogger core_port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, catalog, content, baseLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(core_port.Fields{"component": "rest_server"}),
	}
}

// Start запускает HTTP-сервер и блокируется до остановки.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
