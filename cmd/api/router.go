package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/container"
)

const (
	scopeAdmin  = "ADMIN"
	scopeAuthor = "AUTHOR"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)

	v1 := router.Group(response.BasePath)
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)

	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/books", c.AuthorHandler.Books)
		authors.POST("", auth, middleware.RequireScope(scopeAdmin), c.AuthorHandler.Create)
		authors.PATCH("/:id", auth, middleware.RequireScope(scopeAdmin), c.AuthorHandler.Patch)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/isbn/:isbn", c.BookHandler.GetByIsbn)
		books.GET("/isbn/:isbn/authors", c.BookHandler.Authors)
		books.GET("/title/:title", c.BookHandler.ByTitle)
		books.GET("/genre/:genre", c.BookHandler.ByGenre)
		books.POST("", auth, middleware.RequireScope(scopeAuthor), c.BookHandler.Publish)
	}
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "error: " + err.Error()
		}
		if dbStatus != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if appCtx.Redis == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Redis.HealthCheck(ctx); err != nil {
			redisStatus = "error: " + err.Error()
		}
		if redisStatus != "ok" {
			status = "degraded"
		}

		version := ""
		if appCtx.Config != nil {
			version = appCtx.Config.App.Version
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
