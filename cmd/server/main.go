package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bizos/backend/internal/aiflow"
	biapp "github.com/bizos/backend/internal/application/bi"
	businessapp "github.com/bizos/backend/internal/application/business"
	crmapp "github.com/bizos/backend/internal/application/crm"
	docapp "github.com/bizos/backend/internal/application/documents"
	financeapp "github.com/bizos/backend/internal/application/finance"
	hrapp "github.com/bizos/backend/internal/application/hr"
	identityapp "github.com/bizos/backend/internal/application/identity"
	invapp "github.com/bizos/backend/internal/application/inventory"
	opsapp "github.com/bizos/backend/internal/application/operations"
	voiceapp "github.com/bizos/backend/internal/application/voice"
	"github.com/bizos/backend/internal/infrastructure/ai"
	"github.com/bizos/backend/internal/infrastructure/auth"
	"github.com/bizos/backend/internal/infrastructure/cache"
	"github.com/bizos/backend/internal/infrastructure/config"
	"github.com/bizos/backend/internal/infrastructure/csvimport"
	"github.com/bizos/backend/internal/infrastructure/docparse"
	"github.com/bizos/backend/internal/infrastructure/logger"
	"github.com/bizos/backend/internal/infrastructure/persistence"
	"github.com/bizos/backend/internal/infrastructure/printing"
	"github.com/bizos/backend/internal/infrastructure/scrape"
	"github.com/bizos/backend/internal/infrastructure/storage"
	"github.com/bizos/backend/internal/infrastructure/telemetry"
	"github.com/bizos/backend/internal/interfaces/http/handler"
	"github.com/bizos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry: tracing, metrics, continuous profiling.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = logProvider.Attach(log)
	profiler, err := telemetry.NewProfiler(cfg.Profiling, cfg.Telemetry.ServiceName, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	flowMetrics, err := telemetry.NewFlowMetrics(meterProvider.Meter("bizos/flows"), log)
	if err != nil {
		log.Fatal("Failed to register flow metrics", zap.Error(err))
	}
	aiflow.SetObserver(flowMetrics.RecordRun)

	// Database.
	gormLog := logger.NewGormLogger(log, gormlogger.Warn)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, cfg.Database.DBName, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Repositories.
	userRepo := persistence.NewGormUserRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	jobRepo := persistence.NewGormJobPostingRepository(db.DB)
	candidateRepo := persistence.NewGormCandidateRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)

	// Authentication.
	jwtService := auth.NewJWTService(cfg.Auth)
	apiKeys := auth.NewAPIKeyAuthenticator(userRepo)

	// Generation provider, optionally behind a result cache.
	client, err := ai.NewClient(ctx, ai.Config{
		APIKey:            cfg.AI.APIKey,
		Model:             cfg.AI.Model,
		TTSModel:          cfg.AI.TTSModel,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize generation client", zap.Error(err))
	}

	var gen aiflow.Generator = client
	if cfg.AI.CacheEnabled {
		store, err := cache.NewStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
		if err != nil {
			log.Fatal("Failed to create generation cache", zap.Error(err))
		}
		cached := ai.NewCachedGenerator(client, store, cfg.AI.CacheTTL, log)
		cached.SetCacheObserver(func(ctx context.Context, hit bool) {
			if hit {
				flowMetrics.RecordCacheHit(ctx)
			} else {
				flowMetrics.RecordCacheMiss(ctx)
			}
		})
		gen = cached
		log.Info("Generation result cache enabled", zap.Duration("ttl", cfg.AI.CacheTTL))
	}

	// Object storage for logos, resumes and exports.
	var objects storage.ObjectStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3Storage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objects = s3
		log.Info("S3 object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objects = storage.NewMemoryStorage()
		log.Warn("Object storage disabled, uploads are kept in memory")
	}

	// PDF rendering through headless Chrome.
	var renderer printing.PDFRenderer
	if cfg.Printing.Enabled {
		chromeRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.Timeout,
			RemoteURL:      cfg.Printing.RemoteURL,
			NoSandbox:      cfg.Printing.NoSandbox,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		defer func() { _ = chromeRenderer.Close() }()
		renderer = chromeRenderer
	} else {
		log.Info("PDF rendering disabled, report export routes will reject requests")
	}

	docParser := docparse.NewParser()
	fetcher := scrape.NewFetcher(cfg.Scrape)

	// Application services.
	authService := identityapp.NewAuthService(userRepo, jwtService)
	profileService := businessapp.NewProfileService(profileRepo, objects, log)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	reportService := financeapp.NewReportService(expenseRepo, profileRepo, gen, renderer)
	jobService := hrapp.NewJobService(jobRepo)
	candidateService := hrapp.NewCandidateService(candidateRepo, jobRepo, docParser, objects, gen, log)
	clientService := crmapp.NewClientService(clientRepo, gen)
	taskService := opsapp.NewTaskService(taskRepo, gen)
	itemService := invapp.NewItemService(itemRepo, gen)
	vendorService := invapp.NewVendorService(vendorRepo)
	biService := biapp.NewService(profileRepo, gen, csvimport.NewParser(), fetcher, log)
	documentService := docapp.NewService(docParser, gen, log)
	speechService := voiceapp.NewSpeechService(client, cfg.AI.TTSVoice)

	engine := router.New(router.Deps{
		Config:  cfg,
		Logger:  log,
		DB:      db,
		APIKeys: apiKeys,
		JWT:     jwtService,

		Auth:       handler.NewAuthHandler(authService),
		Business:   handler.NewBusinessHandler(profileService),
		Finance:    handler.NewFinanceHandler(expenseService, reportService),
		HR:         handler.NewHRHandler(jobService, candidateService),
		CRM:        handler.NewCRMHandler(clientService),
		Operations: handler.NewOperationsHandler(taskService),
		Inventory:  handler.NewInventoryHandler(itemService, vendorService),
		BI:         handler.NewBIHandler(biService),
		Documents:  handler.NewDocumentsHandler(documentService),
		Voice:      handler.NewVoiceHandler(speechService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server error", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := tracerProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Tracer shutdown failed", zap.Error(err))
	}
	if err := meterProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Meter shutdown failed", zap.Error(err))
	}
	if err := logProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Logger provider shutdown failed", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Profiler stop failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
