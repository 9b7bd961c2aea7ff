package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Widget page
	app.router.GET("/", app.handleIndex)
	app.router.POST("/search", app.handleSubmitSearch)

	// JSON API
	v1 := app.router.Group("/api/v1")
	v1.GET("/search", app.handleSearch)
	v1.GET("/session", app.handleGetSession)
	v1.GET("/weather-codes", app.handleListWeatherCodes)
	v1.GET("/weather-codes/:code", app.handleGetWeatherCode)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
