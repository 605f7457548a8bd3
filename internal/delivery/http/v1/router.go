package v1

import (
	"log/slog"
	"net/http"
	"time"

	"skillmatch-backend/config"
	"skillmatch-backend/internal/delivery/http/middleware"
	"skillmatch-backend/internal/delivery/http/response"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/usecase"
	"skillmatch-backend/pkg/security"
	"skillmatch-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// LivenessMessage is the plain text body of GET /.
const LivenessMessage = "Skill matcher API is running"

type RouterDeps struct {
	PostingUC  domain.PostingUsecase
	MatchUC    domain.MatchUsecase
	ResumeUC   domain.ResumeUsecase
	AnalysisUC domain.AnalysisUsecase
	HealthUC   usecase.HealthUsecase
	Verifier   domain.IdentityVerifier
	Config     *config.Config
	Redis      *goredis.Client // optional, shared rate limit counters
	Logger     *slog.Logger
	Audit      *security.SecurityLogger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterValidators(v); err != nil {
			log.Error("Failed to register validators", "error", err)
		}
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(log))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessMessage)
	})

	r.GET("/healthz", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		status, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Error: "Dependency check failed", Data: status})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	public := r.Group("")
	NewPostingHandler(public, deps.PostingUC)

	// Protected routes
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	uploadLimit := middleware.UploadRateLimitConfig(deps.Redis, cfg.RateLimitUploadThreshold, window)
	uploadLimit.Logger = log
	uploadLimit.Audit = deps.Audit
	uploadLimit.FailClosed = cfg.RateLimitFailClosed
	analysisLimit := middleware.AnalysisRateLimitConfig(deps.Redis, cfg.RateLimitAnalysisThreshold, window)
	analysisLimit.Logger = log
	analysisLimit.Audit = deps.Audit
	analysisLimit.FailClosed = cfg.RateLimitFailClosed

	maxBytes := cfg.UploadMaxBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, log, deps.Audit))
	{
		NewMatchHandler(protected, deps.MatchUC)
		NewResumeHandler(protected, deps.ResumeUC, maxBytes, middleware.RateLimitMiddleware(uploadLimit))
		NewAnalysisHandler(protected, deps.AnalysisUC, middleware.RateLimitMiddleware(analysisLimit))
	}

	return r
}
