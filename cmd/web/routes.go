package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOpsRoutes()
	a.setupHealthCheck()
	a.setupBrowserRoutes()
}

// setupOpsRoutes configures metrics and profiling
func (a *App) setupOpsRoutes() {
	// Expose pprof profiling endpoints (disable in production)
	if !a.Config.IsProduction() {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck reports liveness only; the listings backend is not probed.
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": a.Sessions.Len()})
	})
}

// setupBrowserRoutes configures the listing browser
func (a *App) setupBrowserRoutes() {
	browser := a.Router.Group("/")
	browser.Use(a.sessionMiddleware())
	{
		browser.GET("/", a.BrowserHandler.Page)
		browser.POST("/filters", a.BrowserHandler.ApplyFilters)
		browser.POST("/filters/reset", a.BrowserHandler.ResetFilters)
		browser.POST("/view/:mode", a.BrowserHandler.SetViewMode)
		browser.POST("/properties/:id/select", a.BrowserHandler.SelectProperty)

		detail := browser.Group("/detail")
		{
			detail.POST("/close", a.DetailHandler.Close)
			detail.POST("/photos/:index", a.DetailHandler.SelectPhoto)
			detail.POST("/contact/open", a.DetailHandler.OpenContact)
			detail.POST("/contact/close", a.DetailHandler.CloseContact)
			detail.POST("/contact", a.ContactHandler.Submit)
		}
	}

	mapView := a.Router.Group("/map.json")
	mapView.Use(a.setupCORS(), a.sessionMiddleware())
	mapView.GET("", a.BrowserHandler.MapView)
	mapView.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}
