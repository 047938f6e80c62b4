package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/instaguera/turnos-api/internal/config"
	dbpkg "github.com/instaguera/turnos-api/internal/db"
	"github.com/instaguera/turnos-api/internal/logger"
	"github.com/instaguera/turnos-api/internal/middleware"
	"github.com/instaguera/turnos-api/internal/routes"
	"github.com/instaguera/turnos-api/internal/seed"
	"github.com/instaguera/turnos-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	if !timezone.IsValid(cfg.StudioTZ) {
		log.Warnf("invalid STUDIO_TZ %q, falling back to %s", cfg.StudioTZ, timezone.DefaultTimezone)
	}
	loc := timezone.Location(cfg.StudioTZ)

	if cfg.SeedDemoData {
		if err := seed.Run(db, log, loc); err != nil {
			log.WithError(err).Warn("seed failed")
		}
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
