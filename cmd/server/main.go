package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/medsbuddy/medsbuddy/internal/adherence"
	"github.com/medsbuddy/medsbuddy/internal/auth"
	"github.com/medsbuddy/medsbuddy/internal/config"
	"github.com/medsbuddy/medsbuddy/internal/database"
	"github.com/medsbuddy/medsbuddy/internal/health"
	"github.com/medsbuddy/medsbuddy/internal/logging"
	"github.com/medsbuddy/medsbuddy/internal/medications"
)

func main() {
	// Load .env if present (development convenience; real env vars win)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := database.RunMigrations(db, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedDevData {
		if err := database.SeedDevData(db); err != nil {
			log.Fatalf("Failed to seed dev data: %v", err)
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := NewRouter(cfg, db, logger)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	secret := []byte(cfg.JWTSecret)
	medsSvc := medications.NewService(db)
	logsSvc := adherence.NewService(db)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the MedsBuddy API")
	})
	router.GET("/api/health", gin.WrapF(health.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", auth.HandleSignup(db, secret))
		authGroup.POST("/login", auth.HandleLogin(db, secret))
	}

	// gin requires one wildcard name per segment position, so :id stands for
	// the owner user id on the list route and the medication id elsewhere.
	meds := router.Group("/api/meds")
	meds.Use(auth.RequireAuth(secret))
	{
		meds.GET("/:id", medications.ListHandler(medsSvc))
		meds.POST("", medications.CreateHandler(medsSvc))
		meds.PUT("/:id", medications.UpdateHandler(medsSvc))
		meds.DELETE("/:id", medications.DeleteHandler(medsSvc))
		meds.POST("/:id/log", adherence.LogDoseHandler(logsSvc))
		meds.GET("/:id/logs", adherence.LogsHandler(logsSvc))
		meds.GET("/:id/adherence", adherence.AdherenceHandler(logsSvc))
		meds.GET("/:id/stats", adherence.StatsHandler(logsSvc))
	}

	return router
}
