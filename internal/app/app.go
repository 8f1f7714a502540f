package app

import (
	"fmt"
	"net/http"
	"strings"

	"employee-directory/internal/employee"
	"employee-directory/internal/middleware"
	"employee-directory/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

type Config struct {
	Port           string
	Env            string
	IDStrategy     string
	SeedDemo       bool
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads the process environment through viper. Call
// godotenv.Load first to pick up a .env file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("EMPLOYEE_ID_STRATEGY", IDStrategyUUID)
	v.SetDefault("EMPLOYEE_SEED_DEMO", true)
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	seedDemo, err := cast.ToBoolE(v.Get("EMPLOYEE_SEED_DEMO"))
	if err != nil {
		return Config{}, fmt.Errorf("EMPLOYEE_SEED_DEMO: %w", err)
	}
	rps, err := cast.ToFloat64E(v.Get("RATE_LIMIT_RPS"))
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: invalid value %q", v.GetString("RATE_LIMIT_RPS"))
	}
	burst, err := cast.ToIntE(v.Get("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: invalid value %q", v.GetString("RATE_LIMIT_BURST"))
	}

	cfg := Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("APP_ENV"),
		IDStrategy:     strings.ToLower(v.GetString("EMPLOYEE_ID_STRATEGY")),
		SeedDemo:       seedDemo,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}

	switch cfg.IDStrategy {
	case IDStrategyUUID, IDStrategySequence:
	default:
		return Config{}, fmt.Errorf("EMPLOYEE_ID_STRATEGY: unknown strategy %q", cfg.IDStrategy)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// BuildApp installs global middleware and every module's routes on router.
func BuildApp(router *gin.Engine, cfg Config, logger *zap.Logger, auditLogger audit.Logger) error {
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return registerModules(router, cfg, logger, auditLogger)
}

func newIDGenerator(cfg Config, seeded int) employee.IDGenerator {
	if cfg.IDStrategy == IDStrategySequence {
		return employee.NewSequenceGenerator("e", 7, int64(seeded)+1)
	}
	return employee.NewUUIDGenerator()
}
