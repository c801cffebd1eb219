package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unified-backend/internal/auth"
	"unified-backend/internal/config"
	"unified-backend/internal/files"
	"unified-backend/internal/httpapi"
	"unified-backend/internal/plagiarism"
	"unified-backend/internal/projects"
	"unified-backend/internal/users"
	"unified-backend/pkg/logger"
	"unified-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	store, err := files.NewStorage(cfg.Files.UploadDir)
	if err != nil {
		log.Error("file storage init failed", "err", err)
		os.Exit(1)
	}

	userRepo := users.NewPostgresRepo(db)
	projectRepo := projects.NewPostgresRepo(db)

	h := httpapi.Handlers{
		Tokens:   tokens,
		Authn:    auth.NewAuthenticator(users.CredentialSource{Repo: userRepo}),
		Users:    users.NewService(userRepo),
		Projects: projects.NewService(projectRepo),
	}
	fileHandler := files.Handler{Store: store}
	plagiarismHandler := plagiarism.Handler{
		Service: plagiarism.NewService(
			plagiarism.NewClient(cfg.Plagiarism.APIKey, cfg.Plagiarism.BaseURL),
			rdb,
			cfg.Plagiarism.CacheTTL,
		),
	}

	policy := auth.NewPolicy(cfg.Routes.PublicPrefixes)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.Use(auth.Authenticate(tokens))
	r.Use(policy.Enforce())

	registerRoutes(r, db, h, fileHandler, plagiarismHandler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
