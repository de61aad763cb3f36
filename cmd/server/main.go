// @title         cooked API
// @version       1.0
// @description   Résumé analyzer: extracts contact details and skills from a PDF, predicts a career field, scores section coverage and recommends courses.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token from /admin/login. Accepts "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	apihttp "github.com/artem13815/cooked/api/http"
	"github.com/artem13815/cooked/api/http/handlers"
	_ "github.com/artem13815/cooked/docs"
	"github.com/artem13815/cooked/pkg/analysis"
	"github.com/artem13815/cooked/pkg/auth"
	"github.com/artem13815/cooked/pkg/classify"
	"github.com/artem13815/cooked/pkg/config"
	"github.com/artem13815/cooked/pkg/health"
	"github.com/artem13815/cooked/pkg/health/checkers"
	"github.com/artem13815/cooked/pkg/llm/openrouter"
	"github.com/artem13815/cooked/pkg/nlp"
	pgrepo "github.com/artem13815/cooked/pkg/repository/postgres"
	"github.com/artem13815/cooked/pkg/resume"
	"github.com/artem13815/cooked/pkg/security/jwt"
	"github.com/artem13815/cooked/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		fatal(log, "load field catalog", err)
	}
	classifier := classify.NewClassifier(catalog)
	extractor := nlp.NewExtractor(personFinder(cfg, log), log)

	if cfg.UsesDefaultJWTSecret() {
		log.Warn("JWT_SECRET is not set, tokens are signed with the public default key")
	}
	saveTTL := time.Duration(cfg.SaveTokenTTLMinutes) * time.Minute
	opts := []analysis.Option{
		analysis.WithLogger(log),
		analysis.WithMaxBytes(cfg.MaxUploadBytes()),
		analysis.WithReportSigner(jwt.NewReportSigner(cfg.JWTSecret, cfg.JWTIssuer, saveTTL)),
	}
	var deps []health.Checker

	// Saving is optional; without a database the analyzer still works.
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			fatal(log, "postgres connect", err)
		}
		defer pool.Close()
		opts = append(opts, analysis.WithRepository(pgrepo.NewAnalysisRepository(pool)))
		deps = append(deps, checkers.NewPostgresChecker(pool))
	} else {
		log.Warn("DATABASE_URL is empty, saving analyses is disabled")
	}
	if cfg.UploadDir != "" {
		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			fatal(log, "create upload dir", err)
		}
		deps = append(deps, checkers.NewUploadDirChecker(cfg.UploadDir))
	}

	analysisUC := analysis.NewService(resume.NewPDFReader(), extractor, classifier, opts...)

	verifier, err := adminVerifier(cfg, log)
	if err != nil {
		fatal(log, "admin credentials", err)
	}
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	adminUC := auth.NewAdminService(verifier, jwtGen, log)

	app := fiber.New(fiber.Config{
		AppName:   "cooked",
		BodyLimit: max(cfg.MaxUploadBytes(), 4<<20) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	apihttp.Register(app, apihttp.Handlers{
		Health:   handlers.NewHealthHandler(health.NewService(deps...)),
		Auth:     handlers.NewAuthHandler(adminUC),
		Catalog:  handlers.NewCatalogHandler(classifier),
		Resume:   handlers.NewResumeHandler(analysisUC, int64(cfg.MaxUploadBytes()), cfg.UploadDir, log),
		Analysis: handlers.NewAnalysisHandler(analysisUC),
	}, jwt.NewAdminMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

func loadCatalog(path string) (classify.Catalog, error) {
	if path == "" {
		return classify.DefaultCatalog()
	}
	return classify.LoadCatalog(path)
}

func personFinder(cfg config.Config, log *slog.Logger) nlp.PersonFinder {
	switch cfg.NERProvider {
	case "none":
		return nil
	case "llm":
		if cfg.OpenRouterAPIKey != "" {
			client := openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModel,
				openrouter.WithTitle("cooked"))
			return nlp.NewLLMFinder(client)
		}
		log.Warn("NER_PROVIDER=llm without OPENROUTER_API_KEY, using prose")
	}
	return nlp.NewProseFinder()
}

func adminVerifier(cfg config.Config, log *slog.Logger) (auth.CredentialVerifier, error) {
	switch {
	case cfg.AdminUsername == "":
		log.Warn("ADMIN_USERNAME is empty, admin panel is disabled")
		return auth.NewStaticVerifier("", ""), nil
	case cfg.UsesDefaultJWTSecret():
		// anyone could mint an admin token with the public key
		log.Error("ADMIN_USERNAME is set but JWT_SECRET is not, admin panel is disabled")
		return auth.NewStaticVerifier("", ""), nil
	case cfg.AdminPasswordHash != "":
		return auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPasswordHash), nil
	case cfg.AdminPassword != "":
		log.Warn("ADMIN_PASSWORD is plaintext, prefer ADMIN_PASSWORD_HASH")
		return auth.NewStaticVerifierFromPassword(cfg.AdminUsername, cfg.AdminPassword)
	default:
		log.Warn("no admin password configured, admin panel is disabled")
		return auth.NewStaticVerifier("", ""), nil
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
