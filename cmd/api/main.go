package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillmatch-backend/config"
	_ "skillmatch-backend/docs" // Important for Swagger
	v1 "skillmatch-backend/internal/delivery/http/v1"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/repository/memory"
	"skillmatch-backend/internal/repository/postgres"
	"skillmatch-backend/internal/skill"
	"skillmatch-backend/internal/usecase"
	"skillmatch-backend/pkg/auth"
	"skillmatch-backend/pkg/database"
	"skillmatch-backend/pkg/gemini"
	"skillmatch-backend/pkg/logger"
	"skillmatch-backend/pkg/pdftext"
	"skillmatch-backend/pkg/redis"
	"skillmatch-backend/pkg/security"
	"skillmatch-backend/pkg/security/antivirus"
	"skillmatch-backend/pkg/storage"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Skill Matcher API
// @version         1.0
// @description     Resume skill extraction, posting matching and eligibility analysis for internships and hackathons.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateAuth(); err != nil {
		log.Fatalf("Invalid auth config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting skill matcher", "port", cfg.Port)

	audit := security.NewSecurityLogger("skillmatch-backend")
	defer audit.Sync()

	ctx := context.Background()
	health := map[string]usecase.Pinger{}

	// 3. Setup Document Store
	var store domain.DocumentStore
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, logger.Log)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		pgStore := postgres.NewDocumentStore(dbPool, cfg.DocumentsTable)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Log.Error("Failed to prepare documents table", "error", err)
			os.Exit(1)
		}
		store = pgStore
		health["store"] = pgStore
	} else {
		memStore := memory.NewDocumentStore()
		store = memStore
		health["store"] = memStore
	}

	// 4. Setup Redis (optional, rate limit counters)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limits", "error", err)
		} else {
			defer redisClient.Close()
			health["redis"] = redis.Pinger{Client: redisClient}
		}
	}

	// 5. Setup Resume Archive (optional)
	s3Cfg := storage.S3Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	}
	var archive domain.ResumeArchive
	if s3Cfg.Enabled() {
		a, err := storage.NewResumeArchive(ctx, s3Cfg)
		if err != nil {
			logger.Log.Warn("Resume archive disabled", "error", err)
		} else {
			archive = a
		}
	}

	// 6. Setup Malware Scanner (optional)
	var scanner antivirus.Scanner
	if cfg.ClamAVAddress != "" {
		clam := antivirus.NewClamAVScanner(cfg.ClamAVAddress, time.Duration(cfg.ClamAVTimeoutSeconds)*time.Second)
		scanner = clam
		health["antivirus"] = clam
	}

	// 7. Setup Inference Client
	var inference domain.InferenceClient = gemini.Unconfigured{}
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Error("Failed to create inference client", "error", err)
			os.Exit(1)
		}
		inference = client
		logger.Log.Info("Inference client ready", "model", client.Model())
	}

	// 8. Setup UseCases
	postingUC := usecase.NewPostingUsecase(store)
	matchUC := usecase.NewMatchUsecase(store, postingUC)
	resumeUC := usecase.NewResumeUsecase(usecase.ResumeUsecaseDeps{
		Store:    store,
		Text:     pdftext.NewExtractor(),
		Skills:   skill.NewExtractor(cfg.SkillVocabulary),
		Archive:  archive,
		Scanner:  scanner,
		Audit:    audit,
		MaxBytes: cfg.UploadMaxBytes,
		Logger:   logger.Log,
	})
	analysisUC := usecase.NewAnalysisUsecase(store, inference, cfg.AnalysisResumeMaxChars, logger.Log)
	healthUC := usecase.NewHealthUsecase(health)

	// 9. Setup Identity Verifier (JWKS only when bound to a project)
	var keys *auth.Provider
	if cfg.FirebaseProjectID != "" {
		keys = auth.NewProvider(cfg.AuthJWKSURL)
	}
	verifier := auth.NewTokenVerifier(keys, auth.VerifierConfig{
		ProjectID:  cfg.FirebaseProjectID,
		HMACSecret: cfg.AuthJWTSecret,
	})

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PostingUC:  postingUC,
		MatchUC:    matchUC,
		ResumeUC:   resumeUC,
		AnalysisUC: analysisUC,
		HealthUC:   healthUC,
		Verifier:   verifier,
		Config:     cfg,
		Redis:      redisClient,
		Logger:     logger.Log,
		Audit:      audit,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
