package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/example/containerno/internal/config"
	"github.com/example/containerno/internal/core"
	httpapi "github.com/example/containerno/internal/http"
	"github.com/example/containerno/internal/iso6346"
	"github.com/example/containerno/internal/rate"
)

const (
	sweepEvery = time.Minute
	sweepIdle  = 10 * time.Minute

	shutdownTimeout = 10 * time.Second
)

// App wires config, core service, rate limiter, and the HTTP router.
type App struct {
	Cfg     config.Config
	Service *core.Service
	Limiter *rate.Limiter
	Router  *gin.Engine

	stop context.CancelFunc
	done chan struct{}
}

// New builds a fully-wired application instance.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	svc := core.NewService(iso6346.NewGenerator(nil), cfg.MaxBatch)

	// In-memory rate limiter for POST /api/generate
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpapi.NewRouter(svc, httpapi.Options{
		BaseURL:     cfg.BaseURL,
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: limiter,
	})

	ctx, stop := context.WithCancel(ctx)
	a := &App{
		Cfg:     cfg,
		Service: svc,
		Limiter: limiter,
		Router:  router,
		stop:    stop,
		done:    make(chan struct{}),
	}
	go a.sweep(ctx)
	return a, nil
}

// sweep drops idle rate-limit buckets until ctx is done.
func (a *App) sweep(ctx context.Context) {
	defer close(a.done)
	if a.Limiter == nil {
		return
	}
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := a.Limiter.Sweep(sweepIdle); n > 0 {
				log.Debug().Int("clients", n).Msg("swept idle rate-limit buckets")
			}
		}
	}
}

// Addr returns the HTTP listen address, e.g. ":8080".
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.Cfg.Port)
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Close stops background work.
func (a *App) Close() error {
	a.stop()
	<-a.done
	return nil
}
