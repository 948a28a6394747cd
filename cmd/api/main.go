package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"matchdb-jobs-service/config"
	_ "matchdb-jobs-service/docs" // Important for Swagger
	v1 "matchdb-jobs-service/internal/delivery/http/v1"
	"matchdb-jobs-service/internal/repository/postgres"
	redisrepo "matchdb-jobs-service/internal/repository/redis"
	"matchdb-jobs-service/internal/usecase"
	"matchdb-jobs-service/pkg/database"
	"matchdb-jobs-service/pkg/email"
	"matchdb-jobs-service/pkg/logger"
	"matchdb-jobs-service/pkg/redis"
	"matchdb-jobs-service/pkg/validation"
)

// @title           MatchDB Jobs Service API
// @version         1.0
// @description     Job board backend with candidate/job matching, append-only profiles and pokes.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobs service", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (poke caps and global rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, poke caps disabled and rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	pokeRepo := postgres.NewPokeRepository(dbPool)
	pokeLimiter := redisrepo.NewPokeLimiter(redis.Client())

	// 6. Setup Email Service
	emailSender := email.NewSender(cfg)
	if !emailSender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - poke notification emails will be skipped")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, validate)
	profileUC := usecase.NewProfileUsecase(candidateRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	matchUC := usecase.NewMatchUsecase(jobRepo, candidateRepo)
	pokeUC := usecase.NewPokeUsecase(pokeRepo, candidateRepo, pokeLimiter, emailSender, validate, cfg.PokeMonthlyCap)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		ProfileUC:     profileUC,
		ApplicationUC: applicationUC,
		MatchUC:       matchUC,
		PokeUC:        pokeUC,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
