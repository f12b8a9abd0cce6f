package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cityconnect/issue-reporting/internal/api"
	"github.com/cityconnect/issue-reporting/internal/core/service"
	"github.com/cityconnect/issue-reporting/internal/infrastructure/config"
	mongodb "github.com/cityconnect/issue-reporting/internal/infrastructure/db/mongo"
	redisdb "github.com/cityconnect/issue-reporting/internal/infrastructure/db/redis"
	"github.com/cityconnect/issue-reporting/internal/infrastructure/queue"
	"github.com/cityconnect/issue-reporting/internal/infrastructure/storage"
	"github.com/cityconnect/issue-reporting/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	users := mongodb.NewUserRepository(db)
	issues := mongodb.NewIssueRepository(db)
	events := mongodb.NewEventRepository(db)

	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)

	if err := service.EnsureAdmin(ctx, users, hasher, service.AdminBootstrap{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	activity := service.NewActivityService(events, log)
	dispatcher := queue.NewDispatcher(0, activity, log)
	dispatcher.Start(ctx)

	issueService := service.NewIssueService(issues, events, dispatcher, uploads, log)
	authService := service.NewAuthService(users, hasher, tokens, log)
	userService := service.NewUserService(users, issueService, log)
	throttle := redisdb.NewLoginThrottle(redisClient, cfg.Login.AttemptLimit, cfg.Login.AttemptWindow)

	e := api.NewRouter(api.Dependencies{
		AuthService:  authService,
		UserService:  userService,
		IssueService: issueService,
		FileStorage:  uploads,
		Tokens:       tokens,
		Users:        users,
		Throttle:     throttle,
		UploadsDir:   cfg.Uploads.Dir,
		Mongo:        db,
		Redis:        redisClient,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
