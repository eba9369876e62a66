package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"thecorner/backend/internal/api/handler"
	"thecorner/backend/internal/broker"
	"thecorner/backend/internal/config"
	"thecorner/backend/internal/moderation"
	"thecorner/backend/internal/report"
)

func main() {
	log.Println("Starting The Corner backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := newLogger(cfg.LogLevel)

	censor, err := moderation.NewCensor(config.DefaultDenylist)
	if err != nil {
		log.Fatalf("Failed to build message censor: %v", err)
	}

	b := broker.New(censor, logger)
	reports := report.NewService(logger, setupSinks(cfg, logger)...)

	h := handler.New(b, reports, cfg.JWTSecret, logger)
	r := gin.Default()
	h.Register(r)

	// No global write timeout: the /events and /ws streams live for the
	// whole client session.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    1 << 20,
	}

	logger.Info("listening", "addr", cfg.Addr())
	log.Fatal(server.ListenAndServe())
}

// setupSinks builds the report sinks: the append-only log file always, plus
// Postgres and Redis when configured. A backend that fails to come up is
// fatal at boot; at runtime sink errors are logged and swallowed.
func setupSinks(cfg config.Config, logger *slog.Logger) []report.Sink {
	sinks := []report.Sink{report.NewFileSink(cfg.ReportsFile)}

	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect PostgreSQL: %v", err)
		}
		store, err := report.NewStoreSink(db)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		sinks = append(sinks, store)
		logger.Info("report store enabled")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect Redis: %v", err)
		}
		sinks = append(sinks, report.NewPublisher(rdb))
		logger.Info("report publisher enabled", "channel", report.ReportsChannel)
	}

	return sinks
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
