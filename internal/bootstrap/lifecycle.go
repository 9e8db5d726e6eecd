package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"citypulse/pkg/logger"
)

// Lifecycle manages the ops HTTP server and coordinated shutdown.
type Lifecycle struct {
	opsServer       *http.Server
	shutdownTimeout time.Duration
	log             *logger.Logger
}

// NewLifecycle prepares the ops server on the configured port.
func NewLifecycle(c *Container) *Lifecycle {
	return &Lifecycle{
		opsServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", c.Config.Server.OpsPort),
			Handler:           c.Health.Mux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: 10 * time.Second,
		log:             c.Log,
	}
}

// StartOps serves the health and metrics endpoints in the background.
func (l *Lifecycle) StartOps() {
	go func() {
		l.log.Infow("ops server listening", "addr", l.opsServer.Addr)
		if err := l.opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.log.Errorf("ops server failed: %v", err)
		}
	}()
}

// Shutdown stops the ops server and flushes telemetry.
// Order matters: stop accepting traffic first, flush errors and logs last.
func (l *Lifecycle) Shutdown(c *Container) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), l.shutdownTimeout)
	defer cancel()

	l.log.Info("stopping ops server...")
	if err := l.opsServer.Shutdown(shutdownCtx); err != nil {
		l.log.Errorw("ops server shutdown failed", "error", err)
	}

	if c.ErrorTracker != nil {
		if err := c.ErrorTracker.Flush(shutdownCtx); err != nil {
			l.log.Errorw("error tracker flush failed", "error", err)
		}
	}

	_ = logger.Sync()
	l.log.Info("shutdown complete")
}
