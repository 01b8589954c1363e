// Package server exposes the menu over a json-server compatible REST API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/colonyops/confusion/internal/core/logging"
	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/pkg/profiler"
)

// Options configures the HTTP server.
type Options struct {
	Addr            string
	ImagesDir       string // served under /images; empty disables the route
	ShutdownTimeout time.Duration
	Pprof           bool // mount the runtime profiler under /debug/pprof/
}

// Server serves dishes and comments from a menu.Repository.
type Server struct {
	repo menu.Repository
	opts Options
	log  zerolog.Logger
	http *http.Server
}

// New builds the router and the underlying http.Server.
func New(repo menu.Repository, log zerolog.Logger, opts Options) *Server {
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{repo: repo, opts: opts, log: logging.WithContextHook(log)}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(s.log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", headerRequestID},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", s.healthz)
	router.GET("/dishes", s.listDishes)
	router.GET("/dishes/:id", s.getDish)
	router.GET("/comments", s.listComments)
	router.POST("/comments", s.postComment)

	if s.opts.ImagesDir != "" {
		router.Static("/images", s.opts.ImagesDir)
	}

	if s.opts.Pprof {
		router.Any(profiler.Prefix+"*path", gin.WrapH(profiler.Handler()))
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("serving menu api")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.log.Info().Msg("shutting down menu api")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
