// Package rest exposes the shared place catalog over HTTP. It is a
// driving adapter: handlers call core services and never touch the pod
// directly.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// shutdownTimeout bounds graceful shutdown on context cancellation.
const shutdownTimeout = 5 * time.Second

// Server serves the catalog API.
type Server struct {
	engine  *gin.Engine
	catalog driving.CatalogService
	addr    string
}

// NewServer builds a server listening on addr.
func NewServer(addr string, catalog driving.CatalogService) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       time.Hour,
	}))

	s := &Server{
		engine:  engine,
		catalog: catalog,
		addr:    addr,
	}
	s.registerRoutes()
	return s
}

// registerRoutes wires the handler set.
func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/places", s.listPlaces)
}

// Engine returns the underlying router (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("serving catalog API on %s", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		return err
	}
}
