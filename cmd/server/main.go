// @title        User Portal Registration API
// @version      1.0
// @description  User registration and admin authentication service.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/userportal/registration-system/internal/api"
	"github.com/userportal/registration-system/internal/core/service"
	"github.com/userportal/registration-system/internal/infrastructure/config"
	mongostore "github.com/userportal/registration-system/internal/infrastructure/db/mongo"
	redisstore "github.com/userportal/registration-system/internal/infrastructure/db/redis"
	"github.com/userportal/registration-system/internal/infrastructure/hash"
	"github.com/userportal/registration-system/internal/infrastructure/token"
	"github.com/userportal/registration-system/pkg/logger"

	_ "github.com/userportal/registration-system/docs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	users := mongostore.NewUserRepository(db)
	admins := mongostore.NewAdminRepository(db)
	cache := redisstore.NewUserListCache(rdb)
	hasher := hash.NewBcryptHasher(cfg.BcryptCost)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		digest, err := hasher.Hash(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash seed admin password: %w", err)
		}
		if err := admins.Seed(ctx, cfg.AdminUsername, digest); err != nil {
			return err
		}
		log.Info().Str("username", cfg.AdminUsername).Msg("admin account ensured")
	}

	authService := service.NewAuthService(users, admins, hasher, tokens, cache, log)
	userService := service.NewUserService(users, cache, log)

	e := api.NewRouter(api.Dependencies{
		Auth:   authService,
		Users:  userService,
		Tokens: tokens,
		Mongo:  db,
		Redis:  rdb,
		Log:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
