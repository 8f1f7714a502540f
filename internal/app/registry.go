package app

import (
	"employee-directory/internal/employee"
	"employee-directory/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	logger *zap.Logger,
	auditLogger audit.Logger,
) error {
	var seed []employee.Employee
	if cfg.SeedDemo {
		seed = employee.DemoEmployees()
	}

	// --- Stores ---
	employeeStore := employee.NewStore(newIDGenerator(cfg, len(seed)))
	if err := employeeStore.Seed(seed); err != nil {
		return err
	}
	logger.Info("employee directory ready",
		zap.Int("seeded", employeeStore.Len()),
		zap.String("id_strategy", cfg.IDStrategy),
	)

	// --- Services ---
	employeeService := employee.NewServiceWithAudit(employeeStore, auditLogger, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}

	return nil
}
