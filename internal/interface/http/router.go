package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/equigrid-api/internal/infra/config"
	"github.com/yanqian/equigrid-api/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, recorder *metrics.Recorder) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger := handler.logger

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		metricsMiddleware(recorder),
		corsMiddleware(cfg.HTTP.CORS),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)
	router.NoRoute(handler.NotFound)
	router.NoMethod(handler.MethodNotAllowed)

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Healthz)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))
	}

	api := router.Group("/api/energy")
	{
		api.GET("/zone/", handler.Zone)
		api.GET("/zone/:zoneId", handler.Zone)
		api.GET("/zone/:zoneId/cleaner-hours", handler.CleanerHours)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
