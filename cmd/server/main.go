package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tradebitsix/Drive-time/docs"
	"github.com/tradebitsix/Drive-time/internal/api"
	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/service"
	"github.com/tradebitsix/Drive-time/internal/infrastructure/config"
	mongodb "github.com/tradebitsix/Drive-time/internal/infrastructure/db/mongo"
	redisdb "github.com/tradebitsix/Drive-time/internal/infrastructure/db/redis"
	"github.com/tradebitsix/Drive-time/pkg/logger"
)

// @title        Drive-time API
// @version      1.0
// @description  Administrative backend for a driver-education school.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// No logger yet: config (including the required JWT secret) is a
		// startup precondition.
		logger.Init(logger.Options{})
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// One-time admin bootstrap; a no-op when the account already exists.
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, hasher, log)
	if err := userService.EnsureAdmin(ctx, cfg.SeedAdmin.Username, cfg.SeedAdmin.Password); err != nil {
		log.Fatal().Err(err).Msg("seed admin bootstrap failed")
	}

	rules := domain.DefaultRuleRegistry()

	e := api.NewRouter(cfg, db, rdb, rules, log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
