package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	freePlanLimitEnvKey  = "FREE_PLAN_TODO_LIMIT"
	logLevelEnvKey       = "LOG_LEVEL"
	rateLimitRPSEnvKey   = "RATE_LIMIT_RPS"
	rateLimitBurstEnvKey = "RATE_LIMIT_BURST"

	defaultFreePlanLimit = 10
)

type App struct {
	Port           string
	FreePlanLimit  int
	LogLevel       zapcore.Level
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	freePlanLimit := defaultFreePlanLimit
	if value, ok := os.LookupEnv(freePlanLimitEnvKey); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return App{}, fmt.Errorf("invalid %s %q: must be a positive integer", freePlanLimitEnvKey, value)
		}
		freePlanLimit = parsed
	}

	logLevel := zapcore.InfoLevel
	if value, ok := os.LookupEnv(logLevelEnvKey); ok {
		if err := logLevel.UnmarshalText([]byte(value)); err != nil {
			return App{}, fmt.Errorf("invalid %s: %w", logLevelEnvKey, err)
		}
	}

	var rps float64
	if value, ok := os.LookupEnv(rateLimitRPSEnvKey); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return App{}, fmt.Errorf("invalid %s: %w", rateLimitRPSEnvKey, err)
		}
		rps = parsed
	}

	var burst int
	if value, ok := os.LookupEnv(rateLimitBurstEnvKey); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return App{}, fmt.Errorf("invalid %s: %w", rateLimitBurstEnvKey, err)
		}
		burst = parsed
	}

	return App{
		Port:           port,
		FreePlanLimit:  freePlanLimit,
		LogLevel:       logLevel,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}, nil
}
