package main

import (
	"time"

	"employee-directory/internal/app"
	"employee-directory/internal/bootstrap"
	"employee-directory/internal/shared/apperror"
	"employee-directory/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	auditLogger := audit.NewStdoutLogger(logger)
	if err := app.BuildApp(r, cfg, logger, auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		auditLogger,
	)
	if err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}

func newLogger(cfg app.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
