package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"employee-directory/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func NewHTTPServer(router *gin.Engine, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// StartHTTPServer serves router until SIGINT/SIGTERM, then shuts down
// gracefully within cfg.ShutdownTimeout.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger audit.Logger,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, NewHTTPServer(router, cfg), cfg.ShutdownTimeout, auditLogger)
}

// Serve runs server until ctx is cancelled or the listener fails.
func Serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, auditLogger audit.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			zap.L().Error("ListenAndServe error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("Shutdown signal received")
	auditLogger.Log(context.Background(), audit.Entry{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"addr": server.Addr},
	})

	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
		return err
	}
	zap.L().Info("Server exited gracefully")
	return nil
}
