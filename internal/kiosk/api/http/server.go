package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-kiosk/internal/config"
	"cafe-kiosk/internal/kiosk/api/http/handle"
	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/internal/kiosk/service"
	"cafe-kiosk/internal/kiosk/state"
	"cafe-kiosk/pkg/logger"
)

var ErrServerClosed = errors.New("server closed")

type Server struct {
	ctx    context.Context
	cfg    *config.Config
	mylog  *logger.Logger
	engine *gin.Engine
	srv    *http.Server
	mu     sync.Mutex
}

func NewServer(ctx context.Context, cfg *config.Config, mylog *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(mylog))

	return &Server{
		ctx:    ctx,
		cfg:    cfg,
		mylog:  mylog,
		engine: engine,
	}
}

// Run seeds the state store, wires the routes and starts listening. It
// returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	menu, err := state.SeedMenu()
	if err != nil {
		mylog.Action("seed_failed").Error("Failed to load seed menu", err)
		return err
	}

	store := state.New(s.cfg.Kiosk.TokenStart, menu)
	kioskService := service.New(store, core.KioskParams{
		MaxQuantity: s.cfg.Kiosk.MaxQuantity,
		MaxNotesLen: s.cfg.Kiosk.MaxNotesLen,
	}, s.mylog)

	s.configure(kioskService)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	s.mu.Unlock()

	mylog.With("address", addr, "token_start", s.cfg.Kiosk.TokenStart).Info("server is running")
	return s.startHTTPServer()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) configure(kioskService *service.KioskService) {
	menuHandler := handle.NewMenuHandler(kioskService, s.mylog)
	cartHandler := handle.NewCartHandler(kioskService, s.mylog)
	orderHandler := handle.NewOrderHandler(kioskService, s.mylog)
	boardHandler := handle.NewBoardHandler(kioskService, s.mylog)

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		menu := v1.Group("/menu")
		{
			menu.GET("", menuHandler.List)
			menu.GET("/categories", menuHandler.Categories)
			menu.POST("", menuHandler.Create)
			menu.PUT("/:id", menuHandler.Update)
			menu.DELETE("/:id", menuHandler.Delete)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.Get)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.Clear)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		v1.GET("/board", boardHandler.Board)
		v1.GET("/dashboard/overview", boardHandler.Overview)
	}
}

func requestLogger(mylog *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		mylog.Action("http_request").Debug("HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
