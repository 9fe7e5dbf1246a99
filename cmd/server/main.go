// Package main initializes and starts the todo API server, setting up
// configuration, logging, the database connection, the auth backend client,
// services and handlers.
package main

import (
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/imalykh/todolist/internal/config"
	"github.com/imalykh/todolist/internal/db"
	"github.com/imalykh/todolist/internal/gotrue"
	"github.com/imalykh/todolist/internal/logger"
	"github.com/imalykh/todolist/internal/repository"
	"github.com/imalykh/todolist/internal/server/handler/http"
	"github.com/imalykh/todolist/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// orDefault returns s if it is non-empty, otherwise def. It mirrors
// cmp.Or for strings, which is unavailable on the Go 1.21 toolchain.
func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT secret is not configured")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize the record store and auth backend adapters.
	todoRepo := repository.NewPostgresTodoRepository(postgresDB)
	credStore := gotrue.New(options.AuthURL, options.AuthKey)

	// Initialize business-logic services.
	authService := service.NewAuthService(credStore)
	todoService := service.NewTodoService(todoRepo)

	// Create HTTP handlers for auth and todo endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Log: zapLogger}
	todoHandler := &http.TodoHandler{TodoService: todoService, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		todoHandler,
		[]byte(options.JWTSecret),
		options.JWTIssuer,
		options.JWTAudience,
		zapLogger,
	)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
