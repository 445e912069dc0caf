package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"greeter/internal/adapter/http"
	"greeter/internal/adapter/usecase"
	"greeter/internal/config"
	"greeter/internal/logging"
)

// main is the entry point of the greeter service. It loads configuration,
// binds the listener, then serves until a termination signal arrives and
// shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := logging.New(cfg.Log, os.Stdout)

	svc := usecase.NewGreetUseCase()
	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		TrustProxy: cfg.HTTP.TrustProxy,
		CORS:       cfg.CORS,
	})
	srv := &http.Server{
		Handler:  handler.Router(),
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// Bind before serving so that an unavailable port aborts startup.
	ln, err := net.Listen("tcp", cfg.HTTP.Addr())
	if err != nil {
		logger.Error("failed to bind listener", slog.String("addr", cfg.HTTP.Addr()), slog.Any("error", err))
		return
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("env", cfg.Env),
			slog.String("addr", ln.Addr().String()),
			slog.String("url", fmt.Sprintf("http://localhost:%d", cfg.HTTP.ListenPort())),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
