package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/adapter/http/routes"
	"ecertidoes/internal/infrastructure/config"
	"ecertidoes/internal/infrastructure/logger"
	"ecertidoes/pkg"
)

// @title           e-Certidões API
// @version         1.0
// @description     Pedidos de certidões, pagamentos Mercado Pago e administração.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Suporte e-Certidões
// @contact.email  contato@e-certidoes.net.br

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	os.Exit(exitCode(os.Stderr, run()))
}

// exitCode reports err on w. Startup can fail before any logger exists.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "api: %v\n", err)
	return 1
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogEncoding, cfg.App.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)
	pkg.SetExposeDetails(cfg.App.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.close(log)

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           middleware.CORS(cfg.App.CORSOrigins, cfg.App.FrontendURL)(routes.NewRouter(app.handlers, app.routeOpts)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr), zap.String("env", cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	if err := app.webhooks.Stop(shutdownCtx); err != nil {
		log.Warn("webhook workers did not drain", zap.Error(err))
	}
	return nil
}
