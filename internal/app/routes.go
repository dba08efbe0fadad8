package app

import (
	"github.com/anapiyani/Checkdaily-backend/internal/auth"
	"github.com/anapiyani/Checkdaily-backend/internal/cache"
	"github.com/anapiyani/Checkdaily-backend/internal/config"
	"github.com/anapiyani/Checkdaily-backend/internal/handlers"
	"github.com/anapiyani/Checkdaily-backend/internal/repo"
	"github.com/anapiyani/Checkdaily-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/logout", authHandler.Logout)

	protected := api.Group("", auth.RequireSession(sessionStore))
	protected.GET("/auth/me", authHandler.Me)

	checkRepo := repo.NewPGCheckRepo(db)
	checkCache := cache.NewCheckCache(rdb, cfg.Redis.DefaultTTL.Duration())
	checkSvc := service.NewCheckService(checkRepo, checkCache)
	registerCheckRoutes(protected, handlers.NewCheckHandler(checkSvc))

	statsHandler := handlers.NewStatsHandler(checkSvc)
	protected.GET("/stats/yearly-activity", statsHandler.YearlyActivity)

	settingsHandler := handlers.NewSettingsHandler(userSvc)
	protected.GET("/user/settings", settingsHandler.Get)
	protected.PUT("/user/settings", settingsHandler.Update)
	protected.DELETE("/user/account", settingsHandler.DeleteAccount)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "CheckDaily API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerCheckRoutes(api *gin.RouterGroup, h *handlers.CheckHandler) {
	api.POST("/checks", h.Create)
	api.GET("/checks", h.List)
	api.GET("/checks/:id", h.GetByID)
	api.PUT("/checks/:id", h.Update)
	api.DELETE("/checks/:id", h.Delete)
	api.POST("/checks/:id/check-today", h.CheckToday)
	api.POST("/checks/:id/uncheck-today", h.UncheckToday)
}
