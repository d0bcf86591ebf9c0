package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"ebook-library/core/catalog"
	"ebook-library/core/config"
	"ebook-library/core/database"
	"ebook-library/core/loader"
	"ebook-library/core/logger"
	"ebook-library/core/metrics"
	"ebook-library/core/middleware"
	"ebook-library/core/reconcile"
	"ebook-library/core/scanner"
	"ebook-library/core/server"
	"ebook-library/core/storage"

	"ebook-library/feature/books"
	"ebook-library/feature/dataset"
	"ebook-library/feature/integrity"
	"ebook-library/feature/scan"
	"ebook-library/feature/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ebook-library/docs/swagger"
)

// @title E-book Library API
// @version 1.0
// @description Catalog, search and maintenance API for a personal e-book library.
// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the library server",
	Long:  `Starts the HTTP server, imports the dataset into an empty catalog and schedules rescans.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the catalog
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		store := catalog.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			logg.Fatal("Failed to migrate catalog", zap.Error(err))
		}
		logg.Info("Catalog ready", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))

		// 4. Optional bucket for dataset import/export
		var bucket storage.Client
		if cfg.Storage.Enabled {
			if bucket, err = storage.NewClient(cfg.Storage); err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		if cfg.Library.ImportOnEmpty {
			imp := dataset.NewImporter(store, bucket, cfg.Storage, cfg.Library.UnknownAuthor, logg)
			if _, err := imp.ImportIfEmpty(ctx, cfg.Library.DatasetPath); err != nil {
				logg.Error("Initial dataset import failed", zap.Error(err))
			}
		}

		// 5. Scan pipeline shared by the API and the scheduler
		m := metrics.New()
		sc := scanner.New(cfg.Scanner, logg)
		scanSvc := scan.NewService(reconcile.NewEngine(sc, store, logg), cfg.Library.UnknownAuthor, m, logg)

		var sched *scan.Scheduler
		if cfg.Library.RescanCron != "" && len(cfg.Library.Roots) > 0 {
			if sched, err = scan.NewScheduler(cfg.Library.RescanCron, cfg.Library.Roots, scanSvc, logg); err != nil {
				logg.Fatal("Failed to schedule rescans", zap.Error(err))
			}
			sched.Start()
		}

		// 6. Initialize Fiber App
		app := server.NewApp(logg)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(middleware.RayID())
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CorsOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.APIKeyHeader,
		}))
		app.Use(logger.Middleware(logg))
		app.Use(m.Middleware())

		// Public endpoints
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", m.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Load Features under /api, protected when an API key is set
		api := app.Group("/api", middleware.Auth(cfg.Server.ApiKey))

		mgr := loader.NewManager(logg)
		mgr.Register(
			books.NewFeature(store, cfg.Library, books.NewCommandOpener(), logg),
			stats.NewFeature(store, logg),
			scan.NewFeature(scanSvc),
			integrity.NewFeature(sc, store, cfg.Library.UnknownAuthor, logg),
			dataset.NewFeature(dataset.NewExporter(store, bucket, cfg.Storage, logg), logg),
		)
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Static client with SPA fallback
		if dir := cfg.Server.StaticDir; dir != "" {
			app.Static("/", dir)
			index := filepath.Join(dir, "index.html")
			app.Get("*", func(c *fiber.Ctx) error {
				if strings.HasPrefix(c.Path(), "/api/") {
					return fiber.ErrNotFound
				}
				return c.SendFile(index)
			})
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		timeout := time.Duration(cfg.Server.ShutdownSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if sched != nil {
			sched.Stop(shutdownCtx)
		}
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
