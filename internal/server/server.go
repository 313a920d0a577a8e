package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tutorbook/internal/booking"
	"tutorbook/internal/config"
	"tutorbook/internal/logger"
	"tutorbook/internal/slot"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

var summaryMethods = []string{http.MethodGet, http.MethodOptions}

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	stop       context.CancelFunc
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	ctx, stop := context.WithCancel(context.Background())

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.WithError(err).Warn("ignoring trusted proxies, client ip taken from the connection")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		RecoveryMiddleware(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
	)

	limiter := RateLimitMiddleware(NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

	bookingHandler := booking.NewHandler(booking.NewService(
		booking.NewRepository(db),
		booking.Options{ExclusiveSlots: cfg.ExclusiveSlots()},
	))
	slotHandler := slot.NewHandler(slot.NewService(
		slot.NewRepository(db),
		slot.Options{ExclusiveSlots: cfg.ExclusiveSlots()},
	))

	bookings := router.Group("/bookings", corsMiddleware(booking.AllowedMethods), limiter)
	{
		bookings.Any("", bookingHandler.Handle)
	}

	summary := router.Group("/bookings/summary", corsMiddleware(summaryMethods), limiter)
	{
		summary.GET("", bookingHandler.GetSummary)
		summary.OPTIONS("", preflight)
	}

	slots := router.Group("/slots", corsMiddleware(slot.AllowedMethods), limiter)
	{
		slots.Any("", slotHandler.Handle)
	}

	router.NoRoute(noRoute(map[string]bool{
		"/bookings":         true,
		"/bookings/summary": true,
		"/slots":            true,
	}))

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		router:     router,
		httpServer: httpServer,
		db:         db,
		config:     cfg,
		stop:       stop,
	}
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops background work.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.stop()
	return s.httpServer.Shutdown(ctx)
}

// preflight is never reached: corsMiddleware answers OPTIONS first.
func preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
