// Package main запускает HTTP-сервис командного календаря
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"team-calendar-service/config"
	httpapi "team-calendar-service/internal/http"
	"team-calendar-service/internal/identity"
	"team-calendar-service/internal/repository"
	"team-calendar-service/internal/service"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Чтение конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))

	// Миграции схемы
	if err := runMigrations(ctx, cfg); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Инициализация репозиториев
	teamRepo := repository.NewTeamRepo(db)
	userRepo := repository.NewUserRepo(db)
	eventRepo := repository.NewEventRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Провайдер идентификации (режим local; ldap — отдельная реализация Provider)
	provider := identity.NewLocalProvider(userRepo)

	// 4. Инициализация сервисов
	identityService := service.NewIdentityService(userRepo, provider)
	teamService := service.NewTeamService(teamRepo, userRepo, txManager)
	userService := service.NewUserService(userRepo)
	schedulingService := service.NewSchedulingService(eventRepo, userRepo)

	// 5. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(teamService, userService, schedulingService, identityService, logger)

	server := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

// runMigrations применяет goose-миграции через database/sql.
func runMigrations(ctx context.Context, cfg *config.Config) error {
	sqlDB, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open sql: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	migrateCtx, cancelMigrate := context.WithTimeout(ctx, cfg.Postgres.MigrateTimeout)
	defer cancelMigrate()

	if err := goose.UpContext(migrateCtx, sqlDB, cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
