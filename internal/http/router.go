package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/example/containerno/internal/core"
	"github.com/example/containerno/internal/http/middleware"
	"github.com/example/containerno/internal/metrics"
	"github.com/example/containerno/internal/rate"
)

type Options struct {
	BaseURL     string
	CORSOrigins []string
	RateLimiter *rate.Limiter // used for POST /api/generate only
}

// NewRouter sets up all routes and middleware.
func NewRouter(svc *core.Service, opts Options) *gin.Engine {
	r := gin.New()
	// Treat all upstreams as untrusted (removes the warning).
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("SetTrustedProxies")
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recover())
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(metrics.Middleware())

	h := NewHandlers(svc, opts.BaseURL)

	r.GET("/health", h.Health)
	r.GET("/metrics", metrics.Handler())

	// Optional tiny UI (inline HTML)
	RegisterStatic(r, svc.MaxBatch())

	api := r.Group("/api")
	if opts.RateLimiter != nil {
		api.POST("/generate", middleware.RateLimit(opts.RateLimiter), h.Generate)
	} else {
		api.POST("/generate", h.Generate)
	}
	api.GET("/validate/:code", h.ValidatePath)
	api.POST("/validate", h.ValidateBody)
	api.GET("/check-digit", h.CheckDigit)

	return r
}
