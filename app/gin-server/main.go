package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/selamstaff/backend/config"
	"github.com/selamstaff/backend/internal/api/handlers"
	"github.com/selamstaff/backend/internal/api/middleware"
	"github.com/selamstaff/backend/internal/api/routes"
	"github.com/selamstaff/backend/internal/cache"
	"github.com/selamstaff/backend/internal/logger"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()
	cfg := config.LoadApp()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	db := config.PostgresDB
	if err := db.AutoMigrate(&models.Candidate{}, &models.Employer{}, &models.Agency{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Redis backs the dashboard stats cache and is optional.
	var statsCache cache.Cache
	if ok, err := config.InitRedis(); err != nil {
		l.Warnf("Redis unavailable, stats cache disabled: %v", err)
	} else if ok {
		statsCache = cache.NewRedisCache(config.RedisClient)
		l.Info("Redis connected")
	}

	store := storage.NewDiskStore(cfg.UploadDir)

	candidateRepo := pgrepo.NewRecordRepo[models.Candidate](db)
	employerRepo := pgrepo.NewRecordRepo[models.Employer](db)
	agencyRepo := pgrepo.NewRecordRepo[models.Agency](db)

	candidateSvc := services.NewCandidateService(candidateRepo, store)
	employerSvc := services.NewEmployerService(employerRepo, store)
	agencySvc := services.NewAgencyService(agencyRepo, store)
	statsSvc := services.NewStatsService(candidateRepo, employerRepo, agencyRepo, statsCache, cfg.StatsCacheTTL)
	exportSvc := services.NewExportService(candidateRepo, employerRepo, agencyRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Candidates: handlers.NewCandidateHandler(candidateSvc, cfg.MaxUploadBytes),
		Employers:  handlers.NewEmployerHandler(employerSvc, cfg.MaxUploadBytes),
		Agencies:   handlers.NewAgencyHandler(agencySvc, cfg.MaxUploadBytes),
		Dashboard:  handlers.NewDashboardHandler(statsSvc),
		Export:     handlers.NewExportHandler(exportSvc),
	})

	// Uploaded files are public, mirrored 1:1 with the stored relative paths.
	r.Static("/uploads", cfg.UploadDir)

	l.Infof("listening on :%s (public base %s)", cfg.Port, cfg.PublicBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
