package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"todolist/internal/config"
	"todolist/internal/core"
	"todolist/internal/http/handler"
	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/payload"
	"todolist/internal/http/server"
	"todolist/internal/storage"
	"todolist/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		logger := log.NewZapLogger("todolist", zapcore.InfoLevel)
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("todolist", config.LogLevel)
	defer func() { _ = logger.Sync() }()

	// store
	store := storage.NewMemoryStore()

	// todo list
	todoList := core.NewTodoList(logger, store, config.FreePlanLimit)

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.DecodeValidator{},
		todoList)

	// register routes
	mux := http.NewServeMux()
	todoHlr.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	metrics, err := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Errorw("failed to register metrics", "error", err)
		return err
	}
	hdlr := middleware.NewSerializeMiddleware().Serialize(mux)
	hdlr = metrics.Metrics(hdlr)
	hdlr = middleware.NewRateLimitMiddleware(logger, config.RateLimitRPS, config.RateLimitBurst).RateLimit(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	logger.Infow("starting todo list api",
		"port", config.Port,
		"free_plan_limit", config.FreePlanLimit,
		"rate_limit_rps", config.RateLimitRPS)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return nil
}
