package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/api"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/router"
	"github.com/pageza/moodbites/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires services, handlers and routes around an open database.
func New(cfg *config.Config, db *gorm.DB) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	handlers := api.NewHandlers(api.Services{
		Auth:     auth,
		Profile:  service.NewProfileService(db),
		Recipes:  service.NewRecipeService(db),
		Feedback: service.NewFeedbackService(db),
		External: service.NewExternalRecipeService(cfg.ExternalRecipesURL, cfg.ExternalRecipesTimeout),
	}, db)

	engine := router.SetupRouter(handlers, auth)

	return &Server{
		router: engine,
		db:     db,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.http.Shutdown(ctx)
	dbErr := database.Close(s.db)
	return errors.Join(httpErr, dbErr)
}
