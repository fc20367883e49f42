package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wardview/internal/config"
	"wardview/internal/core"
	httpserver "wardview/internal/http"
	"wardview/internal/llm"
	"wardview/internal/logger"
	"wardview/internal/notes"
	"wardview/internal/store"

	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "wardview")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Patient snapshot: built-in seed, optionally hydrated from Postgres.
	seed := store.SeedPatients()
	var dbConn *sql.DB
	if cfg.DBEnabled {
		dbConn = openDatabase(cfg, zlog)
		if dbConn != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			loaded, err := store.LoadPatients(ctx, dbConn)
			cancel()
			switch {
			case err != nil:
				zlog.Warn("patient load failed, using built-in seed", zap.Error(err))
			case len(loaded) > 0:
				seed = loaded
				zlog.Info("patient snapshot hydrated from database", zap.Int("count", len(loaded)))
			default:
				zlog.Info("patient table empty, using built-in seed")
			}
		}
	}
	patients := store.NewMemoryStore(seed)

	// Note store: Redis when enabled, in-process otherwise.
	var noteStore notes.Store = notes.NewMemoryStore()
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			zlog.Warn("redis unavailable, notes will not survive restarts", zap.Error(err))
		} else {
			noteStore = notes.NewRedisStore(rdb)
		}
	}

	llmClient, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		Endpoint: cfg.LLM.Endpoint,
		Timeout:  cfg.LLM.Timeout,
	}, zlog)
	if err != nil {
		zlog.Fatal("failed to build completion client", zap.Error(err))
	}

	assist := core.NewAssistService(patients, llmClient, zlog)
	srv := httpserver.NewServer(patients, noteStore, assist, dbConn, zlog)

	zlog.Info("listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("llm_provider", llmClient.Name()),
		zap.Int("patients", len(patients.Snapshot())),
	)
	if err := http.ListenAndServe(cfg.HTTP.Addr, srv); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}

// openDatabase connects and migrates. Any failure degrades to the built-in
// seed instead of aborting startup.
func openDatabase(cfg *config.Config, zlog *zap.Logger) *sql.DB {
	dbConn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		zlog.Warn("failed to open database, using built-in seed", zap.Error(err))
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		zlog.Warn("database unreachable, using built-in seed", zap.Error(err))
		_ = dbConn.Close()
		return nil
	}
	if err := store.Migrate(ctx, dbConn); err != nil {
		zlog.Warn("migration failed, using built-in seed", zap.Error(err))
		_ = dbConn.Close()
		return nil
	}
	return dbConn
}
