package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/AhsanAsc/Social-Support-App/internal/adapter/http"
	"github.com/AhsanAsc/Social-Support-App/internal/adapter/middleware"
	"github.com/AhsanAsc/Social-Support-App/internal/adapter/repository/sqlite"
	"github.com/AhsanAsc/Social-Support-App/internal/config"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/ai"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/blob"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/cache"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/db"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/logger"
	appuc "github.com/AhsanAsc/Social-Support-App/internal/usecase/application"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/eligibility"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/ingest"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/rag"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.OpenGorm(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	blobs, err := blob.NewStore(cfg.BlobDir)
	if err != nil {
		log.Fatal(err)
	}

	policy, err := eligibility.LoadPolicy(cfg.RulesConfig)
	if err != nil {
		log.Fatal(err)
	}

	aiTimeout := time.Duration(cfg.AITimeoutSecs) * time.Second
	extractor := ai.NewHTTPExtractor(cfg.ExtractorURL, aiTimeout)
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIEmbedModel, cfg.AIChatModel, aiTimeout)

	apps := sqlite.NewApplicationRepository(gdb)
	docs := sqlite.NewDocumentRepository(gdb)
	chunks := sqlite.NewChunkRepository(gdb)
	evals := sqlite.NewEvaluationRepository(gdb)
	tx := sqlite.NewGormUoW(gdb)

	ingestUC := ingest.NewUsecase(
		apps, docs, tx, blobs, extractor, ingest.NewLockArena(), zl,
		time.Duration(cfg.ParseTimeoutSecs)*time.Second, cfg.ParseAllConcurrency,
	)
	appUC := appuc.NewUsecase(apps, docs)
	eligibilityUC := eligibility.NewUsecase(apps, docs, chunks, evals, policy)
	ragUC := rag.NewUsecase(apps, docs, chunks, aiClient, aiClient, ingestUC.Locks(), zl)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	docH := httpadp.NewDocumentHandler(ingestUC)
	evalH := httpadp.NewEvaluationHandler(eligibilityUC, ragUC)
	ragH := httpadp.NewRAGHandler(ragUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// idempotency is best-effort: without redis the API still serves
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			zl.Warn("redis unavailable, idempotency replay disabled", map[string]interface{}{"err": err.Error()})
		} else {
			e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		}
	}

	// routes
	e.GET("/health", h.Health)

	e.POST("/applications", appH.CreateApplication)
	e.GET("/applications/:id/status", appH.GetStatus)

	e.POST("/applications/:id/documents", docH.UploadDocument)
	e.GET("/applications/:id/documents", docH.ListDocuments)
	e.POST("/documents/:id/parse", docH.ParseDocument)
	e.POST("/applications/:id/parse_all", docH.ParseAll)

	e.POST("/applications/:id/evaluate", evalH.Evaluate)
	e.POST("/applications/:id/justify", evalH.Justify)

	e.POST("/applications/:id/reindex", ragH.Reindex)
	e.GET("/applications/:id/search", ragH.Search)
	e.POST("/applications/:id/qa", ragH.QA)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
