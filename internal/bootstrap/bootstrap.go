package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/compliance"
	"compliance-backend/internal/documents"
	"compliance-backend/internal/llm"
	openai "compliance-backend/internal/llm/openai"
	"compliance-backend/internal/remediation"
	"compliance-backend/internal/shared/config"
	"compliance-backend/internal/shared/server"
	"compliance-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	DocumentsRepo      documents.Repo
	ComplianceRepo     compliance.Repo
	LLM                llm.Client
	DocumentsService   *documents.Service
	RemediationService *remediation.Service
	DocumentsHandler   *documents.Handler
	ComplianceHandler  *compliance.Handler
	RemediationHandler *remediation.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		DocumentsHandler:   app.DocumentsHandler,
		ComplianceHandler:  app.ComplianceHandler,
		RemediationHandler: app.RemediationHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.ComplianceRepo = &compliance.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.ComplianceRepo = compliance.NewMemoryRepo()
	}

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}
	app.LLM = llmClient

	app.DocumentsService = &documents.Service{Repo: app.DocumentsRepo}
	app.RemediationService = &remediation.Service{
		Docs:             app.DocumentsRepo,
		Compliance:       app.ComplianceRepo,
		LLM:              app.LLM,
		SystemPromptFile: app.Config.SystemPromptFile,
	}

	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.ComplianceHandler = compliance.NewHandler(app.ComplianceRepo)
	app.RemediationHandler = remediation.NewHandler(app.RemediationService)
	return nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: OPENAI_API_KEY empty; correction calls will fail until configured")
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.CorrectionTemp, cfg.CorrectionMaxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
