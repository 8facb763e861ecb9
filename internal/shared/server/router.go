package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/compliance"
	"compliance-backend/internal/documents"
	"compliance-backend/internal/remediation"
	"compliance-backend/internal/shared/config"
	"compliance-backend/internal/shared/metrics"
	"compliance-backend/internal/shared/server/middleware"
	"compliance-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	DocumentsHandler   *documents.Handler
	ComplianceHandler  *compliance.Handler
	RemediationHandler *remediation.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env, cfg.APIKeys),
		middleware.RateLimit(correctionRateLimit(cfg)),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.ComplianceHandler != nil {
		deps.ComplianceHandler.RegisterRoutes(api)
	}
	if deps.RemediationHandler != nil {
		deps.RemediationHandler.RegisterRoutes(api)
	}

	if cfg.Env == "dev" && deps.ComplianceHandler != nil {
		dev := api.Group("/dev")
		deps.ComplianceHandler.RegisterDevRoutes(dev)
	}

	return r
}

func correctionRateLimit(cfg config.Config) middleware.RateLimitConfig {
	perMin := cfg.CorrectionRatePerMin
	if perMin <= 0 {
		perMin = 6
	}
	burst := cfg.CorrectionBurst
	if burst <= 0 {
		burst = 2
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupCorrection: {
				Rate:  perMin / 60.0,
				Burst: burst,
			},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/correct") {
				return middleware.GroupCorrection
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
